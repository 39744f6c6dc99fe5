// Command mostactive prints the most active cookie(s) in a cookie log for
// a given UTC day, one per line.
//
// Usage: mostactive -f cookie_log.csv -d 2018-12-09
package main

import (
	"flag"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/jsha/cookiestats/cookielog"
)

func main() {
	filename := flag.String("f", "", "Path to the cookie log file")
	dateStr := flag.String("d", "", "Date to search, YYYY-MM-DD (UTC)")
	verbose := flag.Bool("v", false, "Enable debug logging")
	flag.Parse()

	if *filename == "" || *dateStr == "" {
		flag.Usage()
		os.Exit(2)
	}
	if *verbose {
		log.SetLevel(log.DebugLevel)
	}

	target, err := cookielog.ParseDate(*dateStr)
	if err != nil {
		log.Fatalf("invalid date %q: expected YYYY-MM-DD", *dateStr)
	}

	f, err := os.Open(*filename)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	log.Debugf("processing %s for date %s", *filename, target)
	cookies, err := cookielog.FindMostActive(f, target)
	if err != nil {
		log.Fatal(err)
	}

	if len(cookies) == 0 {
		log.Infof("no cookies found for date %s", target)
	}
	for _, cookie := range cookies {
		fmt.Println(cookie)
	}
}
