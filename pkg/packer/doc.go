// Package packer concatenates the source files of a directory tree into a
// single text file.
//
// The tree is walked depth-first and top-down: a directory's own files are
// written before any of its subdirectories are visited, and siblings are
// visited in name order. Subdirectories whose basename is in the ignore set
// are pruned at every level. A file is selected when its name ends with one
// of the configured extensions (case-sensitive, leading dot included).
//
// Each selected file becomes one record in the output:
//
//	\n
//	==================================================
//	FILE PATH: ./a/x.cpp
//	==================================================
//	\n
//	<content>\n
//
// A file that cannot be read, or is not valid UTF-8, is written as
// "[Error reading file: <reason>]" in place of its content and the walk
// continues. Only failures on the output itself or on listing a directory
// stop a run.
package packer
