package cookielog

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// The header's leading column name, matched case-insensitively. Anything
// after it (e.g. a ",timestamp" column name) is not validated.
const headerColumn = "cookie"

// A Scanner reads a cookie log record by record. The first call to Scan
// consumes and validates the header line; each subsequent call yields the
// next data record. Blank lines are skipped but still count toward line
// numbers. Any malformed data line stops the scan with an error.
type Scanner struct {
	s       *bufio.Scanner
	started bool
	header  string
	line    int
	text    string
	rec     Record
	err     error
}

// NewScanner returns a Scanner reading from r.
func NewScanner(r io.Reader) *Scanner {
	return &Scanner{s: bufio.NewScanner(r)}
}

// Scan advances to the next record. It returns false when the input is
// exhausted or an error occurs; call Err to tell the two apart.
func (s *Scanner) Scan() bool {
	if s.err != nil {
		return false
	}
	if !s.started {
		s.started = true
		if !s.s.Scan() {
			if err := s.s.Err(); err != nil {
				s.err = err
			} else {
				s.err = ErrEmptySource
			}
			return false
		}
		s.line = 1
		s.header = s.s.Text()
		if !strings.HasPrefix(strings.ToLower(s.header), headerColumn) {
			s.err = fmt.Errorf("%w, got %q", ErrInvalidHeader, s.header)
			return false
		}
	}
	for s.s.Scan() {
		s.line++
		text := s.s.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}
		rec, err := ParseRecord(text, s.line)
		if err != nil {
			s.err = err
			return false
		}
		s.text = text
		s.rec = rec
		return true
	}
	s.err = s.s.Err()
	return false
}

// Record returns the record produced by the last successful Scan.
func (s *Scanner) Record() Record {
	return s.rec
}

// Text returns the raw line of the last successful Scan.
func (s *Scanner) Text() string {
	return s.text
}

// Header returns the header line. Valid after the first call to Scan.
func (s *Scanner) Header() string {
	return s.header
}

// Line returns the 1-based line number of the last successful Scan.
func (s *Scanner) Line() int {
	return s.line
}

// Err returns the first error encountered, or nil if the input was
// consumed cleanly.
func (s *Scanner) Err() error {
	return s.err
}
