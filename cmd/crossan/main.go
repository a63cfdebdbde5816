package main

import (
	"errors"
	"fmt"
	"os"
)

// Exit codes for different failure modes
const (
	ExitSuccess   = 0 // Analysis produced a report
	ExitNoResults = 1 // No result records matched the filters
	ExitError     = 2 // Configuration or runtime error
)

// NoResultsError indicates that the analysis ran successfully but no result
// records were found under the results directory with the given filters.
type NoResultsError struct {
	Message string
}

func (e *NoResultsError) Error() string {
	return e.Message
}

func main() {
	if err := execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)

		var noResultsErr *NoResultsError
		if errors.As(err, &noResultsErr) {
			os.Exit(ExitNoResults)
		}

		// All other errors are configuration/runtime errors
		os.Exit(ExitError)
	}
}
