//go:build rocksdb

package rdbstore

import (
	rocksdb "github.com/tecbot/gorocksdb"
)

// Params configures the RocksDB database behind a Log.
type Params struct {
	Path    string
	Options *rocksdb.Options
	// ReadOptions are used for point lookups with Log.Get.
	ReadOptions *rocksdb.ReadOptions
	// ScanOptions are used for full scans by Walk, Reset and New, which
	// touch every node once and should not evict lookups from the cache.
	ScanOptions  *rocksdb.ReadOptions
	WriteOptions *rocksdb.WriteOptions
}

// DefaultParams returns Params that create the database at path if it
// does not exist yet, and reopen it otherwise.
//
// Nodes are written once and then mostly read back in ID order, so the
// defaults favor sequential writes and uncached scans.
func DefaultParams(path string) Params {
	opts := rocksdb.NewDefaultOptions()
	opts.SetCreateIfMissing(true)
	opts.SetCompression(rocksdb.SnappyCompression)

	scanOpts := rocksdb.NewDefaultReadOptions()
	scanOpts.SetFillCache(false)

	return Params{
		Path:         path,
		Options:      opts,
		ReadOptions:  rocksdb.NewDefaultReadOptions(),
		ScanOptions:  scanOpts,
		WriteOptions: rocksdb.NewDefaultWriteOptions(),
	}
}

// Close releases the native option handles. It must be called after the
// Log opened with p is closed.
func (p Params) Close() {
	p.Options.Destroy()
	p.ReadOptions.Destroy()
	p.ScanOptions.Destroy()
	p.WriteOptions.Destroy()
}
