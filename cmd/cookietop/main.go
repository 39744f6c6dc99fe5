// Command cookietop prints an approximate ranking of the most touched
// cookies across a whole log, using the space-saving algorithm. Unlike
// mostactive it does not answer for one date exactly; it bounds memory to
// a fixed number of slots, so it works on logs too large to count
// exactly. Output is one tab-separated line per tracked cookie: cookie,
// low rate estimate, high rate estimate.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/cloudflare/golibs/spacesaving"
	log "github.com/sirupsen/logrus"

	"github.com/jsha/cookiestats/cookielog"
)

func main() {
	filename := flag.String("f", "", "Path to the cookie log file (default stdin)")
	slots := flag.Uint("slots", 64, "Number of cookies to track")
	halfLife := flag.Duration("halflife", 24*time.Hour, "Rate decay half-life")
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

	ss := spacesaving.Rate{}
	ss.Init(uint32(*slots), *halfLife)

	var lastTime time.Time
	sc := cookielog.NewScanner(in)
	for sc.Scan() {
		rec := sc.Record()
		ss.Touch(rec.Cookie, rec.Timestamp)
		lastTime = rec.Timestamp
	}
	if err := sc.Err(); err != nil {
		log.Fatal(err)
	}

	for _, e := range ss.GetAll(lastTime) {
		fmt.Printf("%s\t%f\t%f\n", e.Key, e.LoRate, e.HiRate)
	}
}
