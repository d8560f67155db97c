package packer

import (
	"bufio"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/codepack/codepack/pkg/config"
	"github.com/codepack/codepack/pkg/errors"
	"github.com/codepack/codepack/pkg/filesystem"
	"github.com/codepack/codepack/pkg/logging"
	"github.com/codepack/codepack/pkg/types"
	"github.com/rs/zerolog"
)

// Packer walks a tree and writes every matching file into one output file
type Packer struct {
	extensions []string
	ignore     map[string]bool
	output     string
	fs         types.FS
	logger     zerolog.Logger
}

// New creates a packer for cfg reading and writing through fsys
func New(cfg *config.Config, fsys types.FS) *Packer {
	ignore := make(map[string]bool)
	for _, dir := range cfg.IgnoreDirs() {
		ignore[dir] = true
	}
	return &Packer{
		extensions: cfg.Extensions(),
		ignore:     ignore,
		output:     cfg.Output(),
		fs:         fsys,
		logger:     logging.GetLogger("packer"),
	}
}

// Run packs the current working directory on the host filesystem
func Run(cfg *config.Config) (*types.Result, error) {
	return New(cfg, filesystem.NewOS()).Pack(".")
}

// walkState carries the per-run state through the recursive walk
type walkState struct {
	w       *bufio.Writer
	outPath string
	result  *types.Result
}

// Pack packs the tree rooted at root. A relative output path is resolved
// against root.
func (p *Packer) Pack(root string) (result *types.Result, err error) {
	done := logging.LogOperationStart(p.logger, "pack")
	defer done()

	outPath := p.output
	if !filepath.IsAbs(outPath) {
		outPath = filepath.Join(root, outPath)
	}

	out, err := p.fs.Create(outPath)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrOutputCreate, "cannot create output file %s", outPath).
			WithDetail("output", outPath)
	}

	st := &walkState{
		w:       bufio.NewWriter(out),
		outPath: filepath.Clean(outPath),
		result:  &types.Result{Output: outPath},
	}

	defer func() {
		flushErr := st.w.Flush()
		closeErr := out.Close()
		if err != nil {
			return
		}
		if flushErr != nil {
			err = errors.Wrap(flushErr, errors.ErrOutputWrite, "failed to flush output")
		} else if closeErr != nil {
			err = errors.Wrap(closeErr, errors.ErrOutputWrite, "failed to close output")
		}
		if err != nil {
			result = nil
		}
	}()

	p.logger.Info().
		Str("root", root).
		Str("output", outPath).
		Strs("extensions", p.extensions).
		Msg("Packing tree")

	if err := p.walk(st, root, "."); err != nil {
		return nil, err
	}

	p.logger.Info().
		Int("files", st.result.Files()).
		Int("failed", st.result.Failed()).
		Int("skipped", st.result.Skipped).
		Int("prunedDirs", st.result.PrunedDirs).
		Msg("Pack complete")

	return st.result, nil
}

// walk emits dir's matching files, then descends into its kept subdirectories
func (p *Packer) walk(st *walkState, dir, display string) error {
	entries, err := p.fs.ReadDir(dir)
	if err != nil {
		return errors.Wrapf(err, errors.ErrWalk, "cannot list directory %s", display).
			WithDetail("dir", dir)
	}

	files, subdirs := p.split(dir, entries)

	for _, name := range files {
		path := filepath.Join(dir, name)
		if filepath.Clean(path) == st.outPath {
			p.logger.Debug().Str("path", path).Msg("Skipping output file")
			continue
		}
		if !p.Matches(name) {
			st.result.Skipped++
			p.logger.Trace().Str("file", name).Msg("No matching extension")
			continue
		}
		if err := p.pack(st, path, display+string(filepath.Separator)+name); err != nil {
			return err
		}
	}

	for _, name := range subdirs {
		if p.Ignored(name) {
			st.result.PrunedDirs++
			p.logger.Debug().Str("dir", display+string(filepath.Separator)+name).Msg("Pruning ignored directory")
			continue
		}
		if err := p.walk(st, filepath.Join(dir, name), display+string(filepath.Separator)+name); err != nil {
			return err
		}
	}

	return nil
}

// split separates entries into file names and directory names, each sorted.
// Symlinks to directories are neither descended nor packed; other symlinks,
// dangling ones included, count as files.
func (p *Packer) split(dir string, entries []fs.DirEntry) (files, subdirs []string) {
	for _, entry := range entries {
		name := entry.Name()
		switch {
		case entry.IsDir():
			subdirs = append(subdirs, name)
		case entry.Type()&fs.ModeSymlink != 0:
			info, err := p.fs.Stat(filepath.Join(dir, name))
			if err == nil && info.IsDir() {
				p.logger.Debug().Str("dir", name).Msg("Not following directory symlink")
				continue
			}
			files = append(files, name)
		default:
			files = append(files, name)
		}
	}
	sort.Strings(files)
	sort.Strings(subdirs)
	return files, subdirs
}

// Matches reports whether name ends with one of the configured extensions
func (p *Packer) Matches(name string) bool {
	for _, ext := range p.extensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

// Ignored reports whether a directory with this basename is pruned
func (p *Packer) Ignored(name string) bool {
	return p.ignore[name]
}

// pack writes one record. Read failures are inlined; only write failures
// are returned.
func (p *Packer) pack(st *walkState, path, display string) error {
	rec := types.Record{Path: display}

	content, readErr := p.fs.ReadFile(path)
	if readErr != nil {
		rec.Err = errors.Wrap(readErr, errors.ErrFileRead, "cannot read file").WithDetail("path", display)
	} else if encErr := checkUTF8(content); encErr != nil {
		rec.Err = encErr
	}

	w := st.w
	if _, err := w.WriteString(Header(display)); err != nil {
		return errors.Wrap(err, errors.ErrOutputWrite, "failed to write header").WithDetail("path", display)
	}

	var err error
	if rec.Err != nil {
		p.logger.Warn().Err(rec.Err).Str("path", display).Msg("Unreadable file, writing placeholder")
		_, err = w.WriteString(ErrorPlaceholder(rec.Err))
	} else {
		rec.Bytes, err = w.Write(content)
	}
	if err == nil {
		err = w.WriteByte('\n')
	}
	if err != nil {
		return errors.Wrap(err, errors.ErrOutputWrite, "failed to write content").WithDetail("path", display)
	}

	p.logger.Debug().Str("path", display).Int("bytes", rec.Bytes).Msg("Packed file")
	st.result.Records = append(st.result.Records, rec)
	return nil
}
