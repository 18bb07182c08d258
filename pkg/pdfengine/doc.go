// Package pdfengine provides safe, validated, single-process access to a
// non-reentrant document-processing engine. The engine keeps process-global
// state and must never be entered from two goroutines at once, so every
// native-touching operation serializes through one coarse guard held for the
// full call. Inputs are validated before any lock is taken, and native error
// codes are translated into a fixed set of descriptions.
package pdfengine
