// Package rdbstore implements IEDS storage components that keep data
// in a RocksDB database, rather than in memory datastructures.
//
// These implementations are substantially slower than the corresponding in-memory
// components but can record searches whose node logs do not fit in memory.
//
// RocksDB is linked through cgo, so the package is only built with the
// rocksdb build tag.
package rdbstore
