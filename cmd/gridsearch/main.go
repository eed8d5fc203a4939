// Command gridsearch runs YAML grid-search scenarios and prints their reports.
//
//	gridsearch -scenario maze.yaml [-v] [-format yaml] [-timeout 30s]
//
// Extra arguments are treated as further scenario files.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/ransoing/AoC24/scenario"
)

func main() {
	var (
		path    = flag.String("scenario", "", "path to a scenario .yaml")
		verbose = flag.Bool("v", false, "log search progress")
		format  = flag.String("format", "text", "report format: text or yaml")
		timeout = flag.Duration("timeout", 0, "abort each scenario after this long (0 = no limit)")
	)
	flag.Parse()

	paths := flag.Args()
	if *path != "" {
		paths = append([]string{*path}, paths...)
	}
	if len(paths) == 0 {
		fmt.Fprintln(os.Stderr, "missing -scenario")
		os.Exit(2)
	}
	if *format != "text" && *format != "yaml" {
		fmt.Fprintf(os.Stderr, "unknown -format %q\n", *format)
		os.Exit(2)
	}

	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	failed := false
	for _, p := range paths {
		if err := runOne(ctx, p, *format, *timeout, log); err != nil {
			log.WithError(err).WithField("file", p).Error("scenario failed")
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}

func runOne(ctx context.Context, path, format string, timeout time.Duration, log *logrus.Logger) error {
	sc, err := scenario.Load(path)
	if err != nil {
		return err
	}
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	start := time.Now()
	rep, err := scenario.Run(ctx, sc, log)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"scenario": sc.Name,
		"elapsed":  time.Since(start).Round(time.Millisecond),
	}).Info("scenario done")

	if format == "yaml" {
		out, err := yaml.Marshal(rep)
		if err != nil {
			return err
		}
		fmt.Printf("---\n%s", out)
		return nil
	}
	fmt.Print(rep)
	return nil
}
