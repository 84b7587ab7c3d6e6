package subtitles

import (
	"errors"
	"fmt"

	"subweave/internal/services"
)

// ErrMalformed is matched by every ParseError.
var ErrMalformed = errors.New("malformed subtitle block")

// ParseError reports a structurally invalid cue block. Block is 1-based;
// Line is the 1-based line number in the source where the block starts.
type ParseError struct {
	Block  int
	Line   int
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("block %d (line %d): %s", e.Block, e.Line, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap exposes the parse marker, ErrMalformed, and the underlying cause.
func (e *ParseError) Unwrap() []error {
	errs := []error{services.ErrParse, ErrMalformed}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

func ioError(operation, path string, err error) error {
	return services.Wrap(services.ErrIO, "subtitles", operation, path, err)
}
