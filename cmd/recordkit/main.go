// Command recordkit validates records against typed schemas, from the
// command line or as an HTTP service.
//
// Usage:
//
//	recordkit validate -schema FILE [RECORD.json ...]
//	recordkit check-schema FILE ...
//	recordkit serve
//	recordkit mcp
//
// serve and mcp read their configuration from the environment (and a .env
// file when present); see appConfig for the variables.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
)

var version = "dev"

const (
	exitOK       = 0
	exitRejected = 1
	exitUsage    = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		usage(stderr)
		return exitUsage
	}
	switch args[0] {
	case "validate":
		return runValidate(args[1:], stdin, stdout, stderr)
	case "check-schema":
		return runCheckSchema(args[1:], stdout, stderr)
	case "serve":
		return runServe(ctx, args[1:], stderr)
	case "mcp":
		return runMCP(ctx, args[1:], stderr)
	case "version":
		fmt.Fprintln(stdout, version)
		return exitOK
	case "help", "-h", "-help", "--help":
		usage(stdout)
		return exitOK
	default:
		fmt.Fprintf(stderr, "recordkit: unknown command %q\n", args[0])
		usage(stderr)
		return exitUsage
	}
}

func usage(w io.Writer) {
	fmt.Fprint(w, `usage:
  recordkit validate -schema FILE [RECORD.json ...]   validate records (stdin: JSON lines)
  recordkit check-schema FILE ...                     parse schema files
  recordkit serve                                     run the HTTP API
  recordkit mcp                                       serve MCP tools on stdio
  recordkit version
`)
}
