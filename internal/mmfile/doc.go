// Package mmfile maps plot files for reading and makes written plot files
// durable.
//
// Map uses mmap on Unix and falls back to reading the whole file elsewhere.
// Sync flushes file data with the strongest cheap primitive each platform
// offers: fdatasync on Linux and FreeBSD, fsync or F_FULLFSYNC on macOS, and
// os.File.Sync on everything else.
package mmfile
