// Command xiangqi-engine runs the UCCI driver over stdin/stdout,
// wiring together configuration, logging and the opening book before
// handing off to the dispatcher loop.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/op/go-logging"

	"xiangqi/book"
	"xiangqi/config"
	"xiangqi/ucci"
)

var log = logging.MustGetLogger("xiangqi-engine")

func main() {
	configPath := flag.String("config", "", "path to a TOML configuration file (optional)")
	bookPath := flag.String("book", "", "path to an opening book file, overrides config")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *bookPath != "" {
		cfg.Engine.BookPath = *bookPath
	}

	setupLogging(cfg.Log.Level)

	bk := loadBook(cfg.Engine.BookPath)

	d := ucci.New(cfg, bk, os.Stdout)
	d.Run(os.Stdin)
}

func setupLogging(level string) {
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	formatter := logging.MustStringFormatter(`%{time:15:04:05.000} %{level:.4s} %{module}: %{message}`)
	formatted := logging.NewBackendFormatter(backend, formatter)
	logging.SetBackend(formatted)

	lvl, err := logging.LogLevel(level)
	if err != nil {
		lvl = logging.INFO
	}
	logging.SetLevel(lvl, "")
}

// loadBook reads the opening book at path. A missing or unreadable
// book file is not fatal — the engine plays on without one.
func loadBook(path string) book.Book {
	f, err := os.Open(path)
	if err != nil {
		log.Warningf("opening book unavailable at %q: %v", path, err)
		bk, _ := book.Load(strings.NewReader(""))
		return bk
	}
	defer f.Close()

	bk, errs := book.Load(f)
	for _, e := range errs {
		log.Warningf("book load: %v", e)
	}
	log.Infof("loaded %d book entries from %q", bk.Len(), path)
	return bk
}
