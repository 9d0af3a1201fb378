// Package theme implements the wallpaper-driven theme pipeline: identity
// derivation, the per-identity cache, semantic color override resolution,
// template rendering, and the generators that produce per-application color
// files from the base palette.
//
// The base palette itself comes from an external extraction tool that leaves
// theme.json and semantic.json in the current snapshot directory; this
// package consumes those files opaquely and never re-runs the extractor.
package theme
