// Package packages reads the repo's package manifest and drives the OS
// package managers named in it. The manifest groups package lists per
// manager; ida invokes each manager once with its full list and reports
// the exit status without interpreting manager output.
package packages
