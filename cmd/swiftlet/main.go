package main

// This is the command line front end for the swiftlet language.

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	if err := Execute(); err != nil {
		var exit *exitError
		if errors.As(err, &exit) {
			os.Exit(exit.code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// exitError carries a process status out of a command. The diagnostics have
// already been reported when it is returned.
type exitError struct {
	code int
}

func (err *exitError) Error() string {
	return fmt.Sprintf("exit status %d", err.code)
}
