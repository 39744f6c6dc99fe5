package cookielog

import (
	"errors"
	"strings"
	"testing"
)

func TestScannerWalksRecords(t *testing.T) {
	sc := NewScanner(strings.NewReader(sampleLog))
	var cookies []string
	for sc.Scan() {
		cookies = append(cookies, sc.Record().Cookie)
	}
	if err := sc.Err(); err != nil {
		t.Fatal(err)
	}
	if len(cookies) != 8 {
		t.Fatalf("scanned %d records, want 8", len(cookies))
	}
	if sc.Header() != "cookie,timestamp" {
		t.Errorf("header = %q", sc.Header())
	}
	if sc.Line() != 9 {
		t.Errorf("last line = %d, want 9", sc.Line())
	}
}

func TestScannerTextIsRawLine(t *testing.T) {
	log := "cookie,timestamp\nAtY0laUfhglK3lC7,2018-12-09T14:19:00+00:00\n"
	sc := NewScanner(strings.NewReader(log))
	if !sc.Scan() {
		t.Fatal(sc.Err())
	}
	if sc.Text() != "AtY0laUfhglK3lC7,2018-12-09T14:19:00+00:00" {
		t.Errorf("text = %q", sc.Text())
	}
}

func TestScannerEmptyInput(t *testing.T) {
	sc := NewScanner(strings.NewReader(""))
	if sc.Scan() {
		t.Fatal("Scan returned true on empty input")
	}
	if !errors.Is(sc.Err(), ErrEmptySource) {
		t.Fatalf("got %v, want ErrEmptySource", sc.Err())
	}
}

func TestScannerStopsOnBadHeader(t *testing.T) {
	sc := NewScanner(strings.NewReader("foo,bar\na,2018-12-09T14:19:00+00:00\n"))
	if sc.Scan() {
		t.Fatal("Scan returned true past a bad header")
	}
	if !errors.Is(sc.Err(), ErrInvalidHeader) {
		t.Fatalf("got %v, want ErrInvalidHeader", sc.Err())
	}
}

func TestScannerStaysStoppedAfterError(t *testing.T) {
	sc := NewScanner(strings.NewReader("cookie,timestamp\nbad\n"))
	if sc.Scan() {
		t.Fatal("Scan returned true for a malformed line")
	}
	if sc.Scan() {
		t.Fatal("Scan returned true after an error")
	}
	if !errors.Is(sc.Err(), ErrMalformedRecord) {
		t.Fatalf("got %v, want ErrMalformedRecord", sc.Err())
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("disk on fire")
}

// Reader failures surface as themselves, not as validation errors, so
// callers can tell bad data from a bad environment.
func TestScannerPropagatesReadErrors(t *testing.T) {
	sc := NewScanner(failingReader{})
	if sc.Scan() {
		t.Fatal("Scan returned true on a failing reader")
	}
	err := sc.Err()
	if err == nil || err.Error() != "disk on fire" {
		t.Fatalf("got %v, want the reader's error", err)
	}
	if errors.Is(err, ErrEmptySource) {
		t.Fatal("read error must not look like ErrEmptySource")
	}
}
