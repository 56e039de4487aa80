// Package logger provides the process-wide Logger used by the CLI.
//
// Diagnostics meant for the operator are printed to standard output by the
// commands themselves; this logger carries the surrounding trace (swallowed
// pre-load errors, resolved paths, backend selection) to stderr or a rotated file.
package logger
