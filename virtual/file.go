package virtual

import (
	"bytes"
	"io/fs"
	"time"
)

// renderFile is a page rendered into memory.
type renderFile struct {
	*bytes.Reader

	info fileInfo
}

// newRenderFile returns a read-only file holding b.
func newRenderFile(name string, modTime time.Time, b []byte) *renderFile {
	return &renderFile{
		Reader: bytes.NewReader(b),
		info: fileInfo{
			name:    name,
			size:    int64(len(b)),
			mode:    0444,
			modTime: modTime,
		},
	}
}

// Stat returns a FileInfo describing the rendered file.
func (f *renderFile) Stat() (fs.FileInfo, error) {
	return f.info, nil
}

// Close closes the file. Rendered files are in memory, so this function does nothing.
func (f *renderFile) Close() error {
	return nil
}

// fileInfo describes a file that only exists in the virtual view.
type fileInfo struct {
	name    string
	size    int64
	mode    fs.FileMode
	modTime time.Time
}

func (fi fileInfo) Name() string       { return fi.name }
func (fi fileInfo) Size() int64        { return fi.size }
func (fi fileInfo) Mode() fs.FileMode  { return fi.mode }
func (fi fileInfo) ModTime() time.Time { return fi.modTime }
func (fi fileInfo) IsDir() bool        { return fi.mode.IsDir() }
func (fi fileInfo) Sys() any           { return nil }

// dirEntry is a directory entry for a file that only exists in the virtual view.
type dirEntry struct {
	fileInfo
}

// Type returns the type bits for the entry.
func (di dirEntry) Type() fs.FileMode {
	return di.mode.Type()
}

// Info returns the FileInfo for the entry.
func (di dirEntry) Info() (fs.FileInfo, error) {
	return di.fileInfo, nil
}

// renamedEntry presents an underlying Markdown file under its page name.
type renamedEntry struct {
	fs.DirEntry

	name string
}

// Name returns the page name of the entry.
func (e renamedEntry) Name() string {
	return e.name
}

// Info returns the FileInfo of the underlying file under the page name.
// The size is that of the Markdown source.
func (e renamedEntry) Info() (fs.FileInfo, error) {
	fi, err := e.DirEntry.Info()
	if err != nil {
		return nil, err
	}
	return renamedInfo{FileInfo: fi, name: e.name}, nil
}

// renamedInfo is a FileInfo with a different name.
type renamedInfo struct {
	fs.FileInfo

	name string
}

// Name returns the base name of the file.
func (fi renamedInfo) Name() string {
	return fi.name
}
