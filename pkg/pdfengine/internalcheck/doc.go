// Package internalcheck provides internal validation and testing utilities.
//
// The tests here enforce structural invariants of the module that the
// compiler cannot: most importantly that the non-reentrant bindings layer is
// only ever reached through the serializing facade. It is not intended for
// external use and the API may change without notice.
package internalcheck
