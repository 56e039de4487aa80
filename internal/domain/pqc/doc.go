// Package pqc defines the binding contract for a post-quantum cryptography provider and the
// models used to report the KEM and signature mechanisms it exposes.
package pqc
