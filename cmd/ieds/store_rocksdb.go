//go:build rocksdb

package main

import (
	"github.com/timpalpant/go-ieds"
	"github.com/timpalpant/go-ieds/rdbstore"
)

func init() {
	stores["rocksdb"] = openRocksDBStore
}

func openRocksDBStore(path string, m *ieds.Matrix) (ieds.NodeLog, func() error, error) {
	dir, cleanup, err := tempDirIfEmpty(path)
	if err != nil {
		return nil, nil, err
	}

	params := rdbstore.DefaultParams(dir)
	log, err := rdbstore.New(params, m)
	if err != nil {
		params.Close()
		cleanup()
		return nil, nil, err
	}

	return log, func() error {
		log.Close()
		params.Close()
		return cleanup()
	}, nil
}
