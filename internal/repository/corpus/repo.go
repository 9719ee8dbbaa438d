// Package corpus implements the example repository over a directory tree.
// Each direct subdirectory of the root is one example; nothing is cached between calls.
package corpus

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"
	"unicode/utf8"

	"github.com/kailas-cloud/scriptdex/internal/domain"
	"github.com/kailas-cloud/scriptdex/internal/domain/example"
)

// Repo implements the usecase repository contracts on top of an fs.FS.
type Repo struct {
	fsys   fs.FS
	root   string
	layout example.Layout
}

// New creates a repository rooted at the directory root.
func New(root string, layout example.Layout) *Repo {
	return NewFS(os.DirFS(root), root, layout)
}

// NewFS creates a repository over fsys. root is only used in error messages.
func NewFS(fsys fs.FS, root string, layout example.Layout) *Repo {
	return &Repo{fsys: fsys, root: root, layout: layout}
}

// Root returns the corpus root label.
func (r *Repo) Root() string { return r.root }

// Layout returns the canonical file layout used for classification.
func (r *Repo) Layout() example.Layout { return r.layout }

// Ping checks that the corpus root exists and is a directory.
func (r *Repo) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	info, err := fs.Stat(r.fsys, ".")
	if err != nil {
		return fmt.Errorf("%w: %s: %w", domain.ErrCorpusUnavailable, r.root, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", domain.ErrCorpusUnavailable, r.root)
	}
	return nil
}

// List discovers every example, ordered by directory name.
// Hidden directories and directories without a script-like file are skipped.
func (r *Repo) List(ctx context.Context) ([]example.Example, error) {
	if err := r.Ping(ctx); err != nil {
		return nil, err
	}
	entries, err := fs.ReadDir(r.fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", domain.ErrCorpusUnavailable, r.root, err)
	}

	var out []example.Example
	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		name := e.Name()
		// ValidateName rejects hidden entries too
		if example.ValidateName(name) != nil || !r.isDir(e) {
			continue
		}
		ex, err := r.load(name)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				// removed between ReadDir and load
				continue
			}
			return nil, fmt.Errorf("load example %s: %w", name, err)
		}
		if ex.IsBundle() {
			out = append(out, ex)
		}
	}
	return out, nil
}

// Get resolves one example. Invalid, missing, or script-less directories are ErrExampleNotFound.
func (r *Repo) Get(ctx context.Context, name string) (example.Example, error) {
	ex, err := r.Open(ctx, name)
	if err != nil {
		return example.Example{}, err
	}
	if !ex.IsBundle() {
		return example.Example{}, domain.NewExampleError(name, domain.ErrExampleNotFound)
	}
	return ex, nil
}

// Open resolves any visible directory under the root, bundle or not.
func (r *Repo) Open(ctx context.Context, name string) (example.Example, error) {
	if err := example.ValidateName(name); err != nil {
		return example.Example{}, domain.NewExampleError(name, domain.ErrExampleNotFound)
	}
	if err := r.Ping(ctx); err != nil {
		return example.Example{}, err
	}

	info, err := fs.Stat(r.fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return example.Example{}, domain.NewExampleError(name, domain.ErrExampleNotFound)
		}
		return example.Example{}, fmt.Errorf("stat example %s: %w", name, err)
	}
	if !info.IsDir() {
		return example.Example{}, domain.NewExampleError(name, domain.ErrExampleNotFound)
	}

	ex, err := r.load(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return example.Example{}, domain.NewExampleError(name, domain.ErrExampleNotFound)
		}
		return example.Example{}, fmt.Errorf("load example %s: %w", name, err)
	}
	return ex, nil
}

// ReadFile returns the content of a direct file of an example.
// A file that no longer exists is reported as ErrFileVanished.
func (r *Repo) ReadFile(ctx context.Context, name, file string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if example.ValidateName(name) != nil || file == "" || strings.ContainsAny(file, `/\`) {
		return nil, domain.NewFileError(name, file, domain.ErrFileVanished)
	}

	data, err := fs.ReadFile(r.fsys, path.Join(name, file))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, domain.NewFileError(name, file, domain.ErrFileVanished)
		}
		return nil, fmt.Errorf("read %s/%s: %w", name, file, err)
	}
	return data, nil
}

// ReadText reads a direct file and requires it to be valid UTF-8.
func (r *Repo) ReadText(ctx context.Context, name, file string) (string, error) {
	data, err := r.ReadFile(ctx, name, file)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", domain.NewFileError(name, file, domain.ErrInvalidEncoding)
	}
	return string(data), nil
}

// load lists the direct regular files of dir. Subdirectories are ignored.
func (r *Repo) load(dir string) (example.Example, error) {
	entries, err := fs.ReadDir(r.fsys, dir)
	if err != nil {
		return example.Example{}, err
	}
	files := make([]string, 0, len(entries))
	for _, e := range entries {
		if r.isRegular(dir, e) {
			files = append(files, e.Name())
		}
	}
	return example.New(dir, files, r.layout)
}

func (r *Repo) isDir(e fs.DirEntry) bool {
	if e.Type()&fs.ModeSymlink == 0 {
		return e.IsDir()
	}
	info, err := fs.Stat(r.fsys, e.Name())
	return err == nil && info.IsDir()
}

func (r *Repo) isRegular(dir string, e fs.DirEntry) bool {
	if e.Type()&fs.ModeSymlink == 0 {
		return e.Type().IsRegular()
	}
	info, err := fs.Stat(r.fsys, path.Join(dir, e.Name()))
	return err == nil && info.Mode().IsRegular()
}
