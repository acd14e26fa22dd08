package main

import (
	"flag"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"

	"github.com/timpalpant/go-ieds"
)

// config holds the command line settings. Defaults come from IEDS_*
// environment variables and are overridden by flags.
type config struct {
	BatchSize int           `env:"IEDS_BATCH_SIZE" envDefault:"25"`
	Order     string        `env:"IEDS_ORDER"      envDefault:"dfs"`
	Store     string        `env:"IEDS_STORE"      envDefault:"memory"`
	StorePath string        `env:"IEDS_STORE_PATH"`
	Timeout   time.Duration `env:"IEDS_TIMEOUT"`
	Format    string        `env:"IEDS_FORMAT"     envDefault:"text"`
	Top       int           `env:"IEDS_TOP"        envDefault:"10"`
	Unique    bool          `env:"IEDS_UNIQUE"`

	Game string
	Save string
	Load string
}

func loadConfig() (config, error) {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		return cfg, errors.Wrap(err, "parse env")
	}

	return cfg, nil
}

func (c *config) registerFlags(fs *flag.FlagSet) {
	fs.IntVar(&c.BatchSize, "batch", c.BatchSize, "Number of nodes to expand between yields")
	fs.StringVar(&c.Order, "order", c.Order, "Exploration order: dfs or bfs")
	fs.StringVar(&c.Store, "store", c.Store, "Node log backend: "+storeNames())
	fs.StringVar(&c.StorePath, "store_path", c.StorePath, "Database directory for disk-backed node logs")
	fs.DurationVar(&c.Timeout, "timeout", c.Timeout, "Cancel the search after this long (0 for no limit)")
	fs.StringVar(&c.Format, "format", c.Format, "Output format: text or json")
	fs.IntVar(&c.Top, "top", c.Top, "Number of solutions to report (0 for all)")
	fs.BoolVar(&c.Unique, "unique", c.Unique, "Report unique reduced games instead of every path")
	fs.StringVar(&c.Game, "game", "", "Explore a built-in game instead of a matrix file")
	fs.StringVar(&c.Save, "save", "", "Write a snapshot of the node log to this file")
	fs.StringVar(&c.Load, "load", "", "Report on a saved snapshot instead of searching")
}

func (c config) params() (ieds.Params, error) {
	order, err := ieds.ParseOrder(c.Order)
	if err != nil {
		return ieds.Params{}, err
	}

	if c.BatchSize <= 0 {
		return ieds.Params{}, errors.Errorf("batch size must be positive, got %d", c.BatchSize)
	}

	return ieds.Params{BatchSize: c.BatchSize, Order: order}, nil
}

func (c config) validate() error {
	if c.Format != "text" && c.Format != "json" {
		return errors.Errorf("unknown output format %q", c.Format)
	}

	if _, ok := stores[c.Store]; !ok {
		return errors.Errorf("unknown store %q, expected one of %s", c.Store, storeNames())
	}

	if c.Top < 0 {
		return errors.Errorf("top must not be negative, got %d", c.Top)
	}

	return nil
}
