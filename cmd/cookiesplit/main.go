// Command cookiesplit reads a cookie log and splits its records into one
// file per UTC date, named like 2018-12-09.csv in the current directory.
// Each output file starts with the input's header line, so the shards are
// themselves valid cookie logs. Reads the file given with -f, or stdin.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/jsha/cookiestats/cookielog"
)

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

	files := make(map[cookielog.Date]*os.File)
	sc := cookielog.NewScanner(in)
	for sc.Scan() {
		rec := sc.Record()
		date := rec.Date()
		out, ok := files[date]
		if !ok {
			var err error
			out, err = os.OpenFile(date.String()+".csv", os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0600)
			if err != nil {
				log.Fatal(err)
			}
			if _, err := fmt.Fprintln(out, sc.Header()); err != nil {
				log.Fatal(err)
			}
			files[date] = out
		}
		if _, err := fmt.Fprintln(out, sc.Text()); err != nil {
			log.Fatal(err)
		}
	}
	if err := sc.Err(); err != nil {
		log.Fatal(err)
	}

	for _, out := range files {
		if err := out.Close(); err != nil {
			log.Fatal(err)
		}
	}
}
