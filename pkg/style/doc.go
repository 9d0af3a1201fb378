// Package style renders ida's terminal output: per-item link status lines,
// run summaries, validation reports, and theme color swatches. Rendering
// functions return strings; callers decide where they go.
package style
