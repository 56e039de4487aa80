// Package circl provides an in-process pqc.Binding over the KEM and signature schemes
// compiled into cloudflare/circl. It needs no native library and serves as a reference
// listing to compare a liboqs build against.
package circl
