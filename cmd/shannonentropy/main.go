package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// defaultProgramName is used when the argument vector is empty
const defaultProgramName = "shannonentropy"

func main() {
	// Entry point: create a root context and run the application.
	ctx := context.Background()

	// Pass in the command line arguments, environment variables and standard
	// streams so the run function can be tested in isolation.
	if err := run(ctx, os.Args, os.Getenv, os.Stdout, os.Stderr); err != nil {
		reportError(os.Stderr, programName(os.Args), err)
		os.Exit(1)
	}
}

// reportError writes a usage line for errUsage, or "<program>: <error>" otherwise
func reportError(w io.Writer, program string, err error) {
	if errors.Is(err, errUsage) {
		fmt.Fprintf(w, "Usage: %s file\n", program)
		return
	}
	fmt.Fprintf(w, "%s: %s\n", program, err)
}

// programName returns the base name the binary was invoked as
func programName(args []string) string {
	if len(args) == 0 || args[0] == "" {
		return defaultProgramName
	}
	return filepath.Base(args[0])
}
