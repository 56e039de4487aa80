// Package nativelib defines the contracts and models for loading a native shared library
// from disk: the loader abstraction, the fallback load strategies and the report a
// diagnostic run produces.
package nativelib
