// Package filesystem provides filesystem implementations for codepack.
//
// This package contains implementations of the types.FS interface:
// the host OS filesystem used by the CLI and an afero-backed filesystem
// used to pack in-memory trees in tests.
package filesystem
