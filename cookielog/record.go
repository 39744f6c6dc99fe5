package cookielog

import (
	"fmt"
	"strings"
	"time"
)

// A Record is one entry in a cookie log: an opaque cookie identifier and
// the offset-aware instant it was logged at.
type Record struct {
	Cookie    string
	Timestamp time.Time
}

// Date returns the UTC calendar date of the record's timestamp.
func (r Record) Date() Date {
	return DateOf(r.Timestamp)
}

// ParseRecord parses a single data line of the form "cookie,timestamp".
// The line is split on its first comma only, so a comma inside the
// timestamp field stays with the timestamp. The timestamp must be an
// ISO 8601 date-time with an explicit UTC offset, e.g.
// 2018-12-09T14:19:00+00:00. lineNum is used for error reporting and is
// 1-based.
func ParseRecord(line string, lineNum int) (Record, error) {
	parts := strings.SplitN(line, ",", 2)
	if len(parts) != 2 {
		return Record{}, &ParseError{
			Line: lineNum,
			Err:  fmt.Errorf("%w: expected \"cookie,timestamp\"", ErrMalformedRecord),
		}
	}
	cookie := strings.TrimSpace(parts[0])
	timestamp := strings.TrimSpace(parts[1])
	if cookie == "" {
		return Record{}, &ParseError{
			Line: lineNum,
			Err:  fmt.Errorf("%w: empty cookie name", ErrMalformedRecord),
		}
	}
	if timestamp == "" {
		return Record{}, &ParseError{
			Line: lineNum,
			Err:  fmt.Errorf("%w: empty timestamp", ErrMalformedRecord),
		}
	}
	t, err := time.Parse(time.RFC3339, timestamp)
	if err != nil {
		return Record{}, &ParseError{
			Line: lineNum,
			Err:  fmt.Errorf("%w: %q", ErrInvalidTimestamp, timestamp),
		}
	}
	return Record{Cookie: cookie, Timestamp: t}, nil
}
