package cmd

import (
	"github.com/harou24/oa-cli/internal/failure"
)

// Exit codes for oa.
const (
	ExitOK          = 0 // Result printed.
	ExitInvalidArgs = 1 // Bad arguments, flags or input file.
	ExitCredential  = 2 // No API key, or the config file could not be read.
	ExitTransport   = 3 // Network failure before an HTTP answer.
	ExitHTTPStatus  = 4 // Provider answered with a non-2xx status.
	ExitMalformed   = 5 // Provider answer lacked an expected field.
)

func exitCode(err error) int {
	switch failure.KindOf(err) {
	case failure.NoCredential, failure.ConfigRead:
		return ExitCredential
	case failure.Transport:
		return ExitTransport
	case failure.HTTPStatus:
		return ExitHTTPStatus
	case failure.MalformedResponse:
		return ExitMalformed
	default:
		return ExitInvalidArgs
	}
}

// describe turns err into the line shown to the user.
func describe(err error) string {
	if failure.Is(err, failure.NoCredential) {
		return "No OpenAI API key found. Exiting... (" + err.Error() + ")"
	}
	return "Error: " + err.Error()
}

// reportedError marks an error already written to the output, as the JSON
// envelope does, so run only sets the exit code.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }
