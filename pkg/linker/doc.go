// Package linker implements the symlink engine and the tree linker.
//
// The engine resolves a single (source, target) pair to an action under the
// active install mode and applies it; conflicts with existing targets are
// configuration, not errors. The tree linker walks a source directory one
// level deep and applies the engine to each immediate child, with the
// scripts-tree executability test and the fish-variables preservation
// exception layered on top.
package linker
