package main

import (
	"os"
	"sort"
	"strings"

	"github.com/syndtr/goleveldb/leveldb/opt"

	"github.com/timpalpant/go-ieds"
	"github.com/timpalpant/go-ieds/ldbstore"
)

// storeFactory opens a node log for m. The returned close function
// releases the store and any temporary files it created.
type storeFactory func(path string, m *ieds.Matrix) (ieds.NodeLog, func() error, error)

var stores = map[string]storeFactory{
	"memory":  openMemoryStore,
	"leveldb": openLevelDBStore,
}

func storeNames() string {
	names := make([]string, 0, len(stores))
	for name := range stores {
		names = append(names, name)
	}

	sort.Strings(names)
	return strings.Join(names, ", ")
}

func openMemoryStore(string, *ieds.Matrix) (ieds.NodeLog, func() error, error) {
	return ieds.NewLog(), func() error { return nil }, nil
}

// tempDirIfEmpty returns path, or a new temporary directory that
// cleanup removes.
func tempDirIfEmpty(path string) (dir string, cleanup func() error, err error) {
	if path != "" {
		return path, func() error { return nil }, nil
	}

	dir, err = os.MkdirTemp("", "ieds-")
	if err != nil {
		return "", nil, err
	}

	return dir, func() error { return os.RemoveAll(dir) }, nil
}

func openLevelDBStore(path string, m *ieds.Matrix) (ieds.NodeLog, func() error, error) {
	dir, cleanup, err := tempDirIfEmpty(path)
	if err != nil {
		return nil, nil, err
	}

	log, err := ldbstore.New(dir, &opt.Options{}, m)
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	return log, func() error {
		if err := log.Close(); err != nil {
			return err
		}

		return cleanup()
	}, nil
}
