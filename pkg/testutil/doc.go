// Package testutil provides test infrastructure: an in-memory types.FS with
// symlink support, must-style filesystem helpers, and recorder doubles for
// the process-signaler, package-installer and content-hasher boundaries.
package testutil
