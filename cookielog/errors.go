package cookielog

import (
	"errors"
	"fmt"
)

// Validation errors returned while reading a cookie log. Reader failures
// (I/O problems on the underlying stream) are returned as-is and do not
// match any of these.
var (
	// ErrEmptySource is returned when the input contains no data at all,
	// not even a header line.
	ErrEmptySource = errors.New("empty input: no header line")

	// ErrInvalidHeader is returned when the first line does not start with
	// the "cookie" column name.
	ErrInvalidHeader = errors.New("invalid header: expected leading \"cookie\" column")

	// ErrMalformedRecord is returned when a data line does not split into
	// two non-empty fields on its first comma.
	ErrMalformedRecord = errors.New("malformed record")

	// ErrInvalidTimestamp is returned when the timestamp field does not
	// parse as an offset date-time.
	ErrInvalidTimestamp = errors.New("invalid timestamp")
)

// A ParseError reports a validation failure on a specific line of the log.
// It wraps one of the sentinel errors above.
type ParseError struct {
	Line int // 1-based, counting the header as line 1
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
