package types

import (
	"io"
	"io/fs"
)

// FS is the filesystem a Packer reads the tree from and writes its output to
type FS interface {
	// ReadDir lists a directory; symlinks are reported as such, not followed
	ReadDir(name string) ([]fs.DirEntry, error)

	// Stat follows symlinks, so a link to a directory reports IsDir
	Stat(name string) (fs.FileInfo, error)

	ReadFile(name string) ([]byte, error)

	// Create creates or truncates the named file for writing
	Create(name string) (io.WriteCloser, error)
}
