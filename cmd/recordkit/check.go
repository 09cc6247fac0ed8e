package main

import (
	"fmt"
	"io"

	"github.com/dmitrymomot/recordkit/pkg/record"
)

// runCheckSchema parses every file and prints the schema or the error.
func runCheckSchema(paths []string, stdout, stderr io.Writer) int {
	if len(paths) == 0 {
		fmt.Fprintln(stderr, "recordkit check-schema: no files given")
		return exitUsage
	}
	code := exitOK
	for _, path := range paths {
		schema, err := record.LoadFile(path)
		if err != nil {
			fmt.Fprintf(stderr, "FAIL %v\n", err)
			code = exitRejected
			continue
		}
		fmt.Fprintf(stdout, "ok   %s %s\n", path, schema)
	}
	return code
}
