// Package liboqs binds the algorithm enumeration entry points of the Open Quantum Safe
// C library at runtime. Symbols are resolved through a nativelib.Library and wrapped with
// purego, so no cgo toolchain is needed to build the CLI.
package liboqs
