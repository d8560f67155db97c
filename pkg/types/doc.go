// Package types defines the core types and interfaces shared across codepack.
// This includes the FS collaborator interface used by the packer and the
// Record and Result structures describing a pack run.
package types
