// Command cookiedays summarizes a cookie log per UTC date. For each date
// it prints a tab-separated line: date, number of records, number of
// distinct cookies. Reads the file given with -f, or stdin.
//
// Distinct cookies are tracked as 64-bit hashes rather than strings so a
// very large log does not hold every identifier in memory.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/cespare/xxhash/v2"
	log "github.com/sirupsen/logrus"

	"github.com/jsha/cookiestats/cookielog"
)

type daily struct {
	records int
	cookies map[uint64]struct{}
}

func main() {
	filename := flag.String("f", "", "Path to the cookie log file (default stdin)")
	flag.Parse()

	var in io.Reader = os.Stdin
	if *filename != "" {
		f, err := os.Open(*filename)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		in = f
	}

	days := make(map[cookielog.Date]*daily)
	sc := cookielog.NewScanner(in)
	for sc.Scan() {
		rec := sc.Record()
		date := rec.Date()
		day := days[date]
		if day == nil {
			day = &daily{cookies: make(map[uint64]struct{})}
			days[date] = day
		}
		day.records++
		day.cookies[xxhash.Sum64String(rec.Cookie)] = struct{}{}
	}
	if err := sc.Err(); err != nil {
		log.Fatal(err)
	}

	dates := make([]cookielog.Date, 0, len(days))
	for date := range days {
		dates = append(dates, date)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	for _, date := range dates {
		day := days[date]
		fmt.Printf("%s\t%d\t%d\n", date, day.records, len(day.cookies))
	}
}
