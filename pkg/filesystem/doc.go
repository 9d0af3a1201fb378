// Package filesystem provides the production types.FS implementation backed
// by the os package. Tests use pkg/testutil.MemoryFS instead.
package filesystem
