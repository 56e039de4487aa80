// Package app contains the diagnostic services behind the CLI commands: the loader
// diagnostics that walk the fallback load strategies, and the algorithm listing that
// queries a pqc.Binding section by section.
package app
