// Package types contains the shared types and interfaces used across ida.
//
// It deliberately has no dependencies on other ida packages so that any
// package can import it without creating cycles. The most important member
// is the FS interface, which every filesystem-touching component accepts
// instead of calling the os package directly; tests substitute the in-memory
// implementation from pkg/testutil.
package types
