// Package cookielog parses cookie activity logs and reports the most
// active cookie(s) on a given UTC calendar date.
//
// A cookie log is line-oriented text: a header line whose first column is
// named "cookie", followed by "cookie,timestamp" records sorted by
// timestamp, most recent first. Timestamps are ISO 8601 date-times with an
// explicit UTC offset.
package cookielog

import (
	"io"
	"sort"
)

// FindMostActive reads a cookie log from r and returns the cookie(s) with
// the most entries on the target date, sorted lexicographically. Ties are
// all included. If no entry falls on the target date the result is empty.
//
// The log is assumed to be sorted by timestamp in descending order:
// scanning stops at the first record dated before the target, without
// reading the rest of the input. If older-than-target records are
// interleaved out of order ahead of target-date records, those later
// records are never seen and the counts are silently low. Records dated
// after the target are skipped and do not stop the scan.
//
// Any malformed data line aborts with an error naming the line; no
// partial result is returned.
func FindMostActive(r io.Reader, target Date) ([]string, error) {
	counts := make(map[string]int)
	sc := NewScanner(r)
	for sc.Scan() {
		rec := sc.Record()
		date := rec.Date()
		if date == target {
			counts[rec.Cookie]++
		} else if date.Before(target) {
			// Sorted most-recent-first: nothing below this line can
			// match the target date.
			break
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return mostFrequent(counts), nil
}

// mostFrequent returns the keys holding the maximum count, sorted.
func mostFrequent(counts map[string]int) []string {
	max := 0
	for _, n := range counts {
		if n > max {
			max = n
		}
	}
	var cookies []string
	for cookie, n := range counts {
		if n == max {
			cookies = append(cookies, cookie)
		}
	}
	sort.Strings(cookies)
	return cookies
}
