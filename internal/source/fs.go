// SPDX-License-Identifier: Apache-2.0

package source

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/vesper-lang/vesperc/internal/diag"
)

// Ext is the conventional extension for Vesper source files. Directory
// listings on a local FileSystem only pick up files with this extension.
const Ext = ".vsp"

var _ FileSystem = Multi{}

// Multi is an ordered set of FileSystems tried in turn. It does not support
// Write; writes must target a single concrete backend.
type Multi []FileSystem

func (m Multi) Open(ctx context.Context, uri string) ([]File, error) {
	for _, f := range m {
		files, err := f.Open(ctx, uri)
		if err != nil {
			continue
		}
		return files, nil
	}
	return nil, diag.New(diag.Location{URI: uri}, diag.CodeFileNotFound, fmt.Sprintf("could not open %s from any file system", uri))
}

func (m Multi) Write(ctx context.Context, uri string, content string) error {
	return diag.New(diag.Location{URI: uri}, diag.CodeUnsupportedFileSystemOp, "cannot write to a composite file system")
}

type LocalOption func(*local)

// WithFSFactory overrides the underlying fs.FS factory. The default is
// os.DirFS.
func WithFSFactory(v func(root string) fs.FS) LocalOption {
	return func(l *local) { l.fsFactory = v }
}

type local struct {
	root      string
	fsFactory func(string) fs.FS
}

// NewLocal creates a FileSystem rooted at root on the local disk.
func NewLocal(root string, opts ...LocalOption) (FileSystem, error) {
	absroot, err := filepath.Abs(root)
	if err != nil {
		return nil, diag.WrapUnknown(diag.Location{URI: root}, err)
	}
	l := &local{root: absroot, fsFactory: os.DirFS}
	for _, opt := range opts {
		opt(l)
	}
	return l, nil
}

func (l *local) Open(ctx context.Context, uri string) ([]File, error) {
	p := uri
	if u, err := url.Parse(uri); err == nil {
		p = u.Path
	}
	p = filepath.Join("/", p)

	dirfs := l.fsFactory(l.root)
	clean := filepath.Clean(p)
	if clean == "" || clean == "/" {
		clean = "."
	}
	clean = strings.TrimPrefix(clean, "/")

	d, err := dirfs.Open(clean)
	if err != nil {
		return nil, fsErr(clean, err)
	}
	defer d.Close()

	stat, _ := d.Stat()
	if !stat.IsDir() {
		return []File{NewFileFunc(p, func() (io.ReadCloser, error) { return dirfs.Open(clean) })}, nil
	}

	entries, err := d.(fs.ReadDirFile).ReadDir(0)
	if err != nil {
		return nil, fsErr(clean, err)
	}
	var files []File
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != Ext {
			continue
		}
		entryPath := filepath.Join(clean, e.Name())
		files = append(files, NewFileFunc(entryPath, func() (io.ReadCloser, error) { return dirfs.Open(entryPath) }))
	}
	if len(files) == 0 {
		return nil, diag.New(diag.Location{URI: p}, diag.CodeFileNotFound, fmt.Sprintf("found directory %s but it contains no %s files", p, Ext))
	}
	return files, nil
}

func (l *local) Write(ctx context.Context, uri string, content string) error {
	p := uri
	if u, err := url.Parse(uri); err == nil {
		p = u.Path
	}
	p = filepath.Join(l.root, "/", p)
	clean := filepath.Clean(p)

	if err := os.MkdirAll(filepath.Dir(clean), 0o755); err != nil {
		return fsErr(filepath.Dir(clean), err)
	}
	if err := os.WriteFile(clean, []byte(content), 0o644); err != nil {
		return fsErr(clean, err)
	}
	return nil
}

func fsErr(path string, err error) error {
	var pe *fs.PathError
	if e, ok := err.(*fs.PathError); ok {
		pe = e
	}
	if pe != nil {
		switch {
		case pe.Err == fs.ErrNotExist:
			return diag.Wrap(diag.Location{URI: pe.Path}, diag.CodeFileNotFound, pe)
		case pe.Err == fs.ErrPermission:
			return diag.Wrap(diag.Location{URI: pe.Path}, diag.CodePermissionDenied, pe)
		default:
			return diag.WrapUnknown(diag.Location{URI: pe.Path}, pe)
		}
	}
	return diag.WrapUnknown(diag.Location{URI: path}, err)
}
