// Command ieds explores every reduction path of a two-player matrix game
// under iterated elimination of dominated strategies and reports the
// reduced games it ends in.
//
// Usage:
//
//	ieds [flags] <matrix-file>
//	ieds [flags] -game prisoners-dilemma
//	ieds [flags] -load search.snapshot
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/golang/glog"
	"github.com/pkg/errors"

	"github.com/timpalpant/go-ieds"
	"github.com/timpalpant/go-ieds/games"
	"github.com/timpalpant/go-ieds/matrixio"
)

const progressInterval = 100000

func main() {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	cfg.registerFlags(flag.CommandLine)
	flag.Usage = usage
	flag.Parse()
	defer glog.Flush()

	if err := cfg.validate(); err != nil {
		glog.Exit(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, flag.Args(), os.Stdout); err != nil {
		glog.Exit(err)
	}
}

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] <matrix-file>\n\nBuilt-in games: %s\n\n",
		os.Args[0], strings.Join(games.Names(), ", "))
	flag.PrintDefaults()
}

func run(ctx context.Context, cfg config, args []string, out io.Writer) error {
	if cfg.Load != "" {
		m, log, err := loadSnapshot(cfg.Load)
		if err != nil {
			return err
		}

		glog.Infof("Loaded %d nodes of a %dx%d game from %s", log.Len(), m.NumRows(), m.NumCols(), cfg.Load)
		return writeReport(out, cfg, log, nil)
	}

	m, err := loadMatrix(cfg, args)
	if err != nil {
		return err
	}

	params, err := cfg.params()
	if err != nil {
		return err
	}

	log, closeStore, err := stores[cfg.Store](cfg.StorePath, m)
	if err != nil {
		return errors.Wrapf(err, "open %s store", cfg.Store)
	}
	defer func() {
		if err := closeStore(); err != nil {
			glog.Warningf("Error closing %s store: %v", cfg.Store, err)
		}
	}()

	stats, err := search(ctx, cfg, params, m, log)
	if err != nil {
		return err
	}

	if cfg.Save != "" {
		if err := saveSnapshot(cfg.Save, m, log); err != nil {
			return err
		}
	}

	return writeReport(out, cfg, log, &stats)
}

func search(ctx context.Context, cfg config, params ieds.Params, m *ieds.Matrix, log ieds.NodeLog) (ieds.Stats, error) {
	root, err := ieds.NewRoot(m, m.AllRows(), m.AllCols())
	if err != nil {
		return ieds.Stats{}, err
	}

	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	glog.Infof("Exploring %dx%d game (order=%v, batch=%d, store=%s)",
		m.NumRows(), m.NumCols(), params.Order, params.BatchSize, cfg.Store)
	explorer := ieds.NewExplorer(params, log)
	next := progressInterval
	stats, err := explorer.Run(ctx, root, func(expanded int) {
		if expanded >= next {
			glog.Infof("Expanded %d nodes", expanded)
			next += progressInterval
		}
	})
	if err != nil {
		return stats, errors.Wrap(err, "search failed")
	}

	if stats.Status == ieds.StatusCancelled {
		glog.Warningf("Search cancelled after %d expansions; reporting partial results", stats.Expanded)
	}

	return stats, nil
}

func loadMatrix(cfg config, args []string) (*ieds.Matrix, error) {
	if cfg.Game != "" {
		if len(args) > 0 {
			return nil, errors.New("cannot use both -game and a matrix file")
		}

		return games.Get(cfg.Game)
	}

	if len(args) != 1 {
		return nil, errors.New("expected exactly one matrix file")
	}

	f, err := os.Open(args[0])
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := matrixio.Parse(f)
	return m, errors.Wrapf(err, "parse %s", args[0])
}

func saveSnapshot(path string, m *ieds.Matrix, log ieds.NodeLog) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := ieds.SaveSnapshot(f, m, log); err != nil {
		f.Close()
		return errors.Wrapf(err, "save snapshot to %s", path)
	}

	glog.Infof("Saved %d nodes to %s", log.Len(), path)
	return f.Close()
}

func loadSnapshot(path string) (*ieds.Matrix, *ieds.Log, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	m, log, err := ieds.LoadSnapshot(f)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "load snapshot from %s", path)
	}

	return m, log, nil
}

func writeReport(out io.Writer, cfg config, log ieds.NodeLog, stats *ieds.Stats) error {
	r, err := buildReport(log, stats, cfg.Top, cfg.Unique)
	if err != nil {
		return err
	}

	if cfg.Format == "json" {
		return r.writeJSON(out)
	}

	return r.writeText(out)
}
