// Command mazesolve loads a text maze and prints the path found by
// breadth-first, depth-first and uniform-cost search.
//
//	mazesolve [flags] [maze-file]
//
// When no maze file is given by argument, -file or MAZESOLVE_FILE, the
// filename is read from standard input. Results go to stdout, one line per
// strategy:
//
//	BFS: Path: EESS Cost = 44
//	DFS: Path: SSEE Cost = 44
//	UCS: Path: ESES Cost = 34
//
// Diagnostics are logged to stderr.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/mazepath/internal/config"
	"github.com/katalvlaran/mazepath/mazefile"
	"github.com/katalvlaran/mazepath/search"
)

// Exit codes.
const (
	exitOK     = 0
	exitFailed = 1
	exitUsage  = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run is main without the process boundary.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := config.Load(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return exitOK
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	logger := logrus.New()
	logger.SetOutput(stderr)
	logger.SetLevel(cfg.LogLevel)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	log := logger.WithField("run", uuid.NewString())
	if cfg.EnvLoaded != "" {
		log.WithField("env_file", cfg.EnvLoaded).Debug("loaded .env")
	}

	file := cfg.File
	if file == "" {
		if file, err = promptFilename(stdin, stdout); err != nil {
			log.WithError(err).Error("reading maze filename")
			return exitUsage
		}
	}
	log = log.WithField("file", file)

	g, start, err := mazefile.Load(file)
	if err != nil {
		log.WithError(err).Error("loading maze")
		return exitFailed
	}
	h, w := g.LogicalSize()
	log.WithFields(logrus.Fields{"height": h, "width": w, "start": start, "goals": len(g.Goals())}).Debug("maze loaded")

	ctx := context.Background()
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	limit := 1
	if cfg.Parallel {
		limit = 0
	}
	opts := []search.Option{search.WithMaxSteps(cfg.MaxSteps)}
	if logger.IsLevelEnabled(logrus.TraceLevel) {
		opts = append(opts, search.WithOnVisit(func(n search.Node) error {
			log.WithFields(logrus.Fields{"pos": n.Pos, "cost": n.Cost, "path": n.Path.String()}).Trace("visit")
			return nil
		}))
	}

	results, err := search.RunAll(ctx, g, start, cfg.Strategies, limit, opts...)
	if err != nil {
		log.WithError(err).Error("search aborted")
		return exitFailed
	}

	for _, res := range results {
		log.WithFields(logrus.Fields{
			"strategy": res.Strategy,
			"found":    res.Found,
			"cost":     res.Cost(),
			"moves":    len(res.Path()),
			"expanded": res.Expanded,
		}).Debug("search finished")
		fmt.Fprintf(stdout, "%s: %s\n", res.Strategy, res)
	}
	fmt.Fprintln(stdout)

	return exitOK
}

// promptFilename asks for a maze file on stdout and reads the first
// whitespace-separated word from stdin.
func promptFilename(stdin io.Reader, stdout io.Writer) (string, error) {
	fmt.Fprintln(stdout, "Enter filename:")
	sc := bufio.NewScanner(stdin)
	sc.Split(bufio.ScanWords)
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return "", err
		}
		return "", io.ErrUnexpectedEOF
	}
	return sc.Text(), nil
}
