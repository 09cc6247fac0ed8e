package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/dmitrymomot/recordkit/pkg/record"
)

// maxLineSize bounds one JSON line read from stdin.
const maxLineSize = 1 << 20

type lineResult struct {
	Source     string            `json:"source"`
	Valid      bool              `json:"valid"`
	Record     *record.Record    `json:"record,omitempty"`
	Violations record.Violations `json:"violations,omitempty"`
	Error      string            `json:"error,omitempty"`
}

// runValidate prints one JSON result per record. Exit status is 2 when a
// record could not be read or decoded, else 1 when any record was rejected.
func runValidate(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("validate", flag.ContinueOnError)
	fs.SetOutput(stderr)
	schemaPath := fs.String("schema", "", "schema file (.json, .yaml or .yml)")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if *schemaPath == "" {
		fmt.Fprintln(stderr, "recordkit validate: -schema is required")
		fs.Usage()
		return exitUsage
	}
	schema, err := record.LoadFile(*schemaPath)
	if err != nil {
		fmt.Fprintf(stderr, "recordkit validate: %v\n", err)
		return exitUsage
	}

	v := &validator{schema: schema, enc: json.NewEncoder(stdout)}
	if fs.NArg() == 0 {
		v.lines("stdin", stdin)
	} else {
		for _, path := range fs.Args() {
			v.file(path)
		}
	}

	switch {
	case v.inputErrors > 0:
		return exitUsage
	case v.rejected > 0:
		return exitRejected
	default:
		return exitOK
	}
}

type validator struct {
	schema      *record.Schema
	enc         *json.Encoder
	rejected    int
	inputErrors int
}

func (v *validator) file(path string) {
	f, err := os.Open(path)
	if err != nil {
		v.fail(path, err)
		return
	}
	defer f.Close()
	in, err := record.DecodeJSON(f)
	if err != nil {
		v.fail(path, err)
		return
	}
	v.check(path, in)
}

// lines validates one JSON object per non-blank line.
func (v *validator) lines(name string, r io.Reader) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	n := 0
	for sc.Scan() {
		n++
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 {
			continue
		}
		source := fmt.Sprintf("%s:%d", name, n)
		in, err := record.DecodeJSON(bytes.NewReader(line))
		if err != nil {
			v.fail(source, err)
			continue
		}
		v.check(source, in)
	}
	if err := sc.Err(); err != nil {
		v.fail(name, err)
	}
}

func (v *validator) check(source string, in map[string]any) {
	res := v.schema.Validate(in)
	out := lineResult{Source: source, Valid: res.OK()}
	if res.OK() {
		rec := res.Record()
		out.Record = &rec
	} else {
		v.rejected++
		out.Violations = res.Violations()
	}
	v.emit(out)
}

func (v *validator) fail(source string, err error) {
	v.inputErrors++
	v.emit(lineResult{Source: source, Error: err.Error()})
}

func (v *validator) emit(out lineResult) {
	if err := v.enc.Encode(out); err != nil {
		v.inputErrors++
	}
}
