// Package logtail reads the tail of tagdeck's log file and decodes its logfmt
// records for the logs command.
//
// Tail keeps a ring buffer of the last n lines, so memory stays proportional
// to n no matter how large the file grows. A missing file is not an error:
// nothing has been logged yet.
//
// Parse understands the keys written by the logging package (time, level,
// prefix, msg); every other key lands in Fields in file order. Lines that are
// not logfmt, such as a panic trace, are returned with only Raw set.
package logtail
