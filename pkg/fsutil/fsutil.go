// Package fsutil reads template files and writes them back atomically,
// refusing to overwrite a file that changed since it was read.
package fsutil

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// DefaultFileMode is used when a write creates a new file.
const DefaultFileMode os.FileMode = 0o644

var (
	// ErrModified means the file on disk no longer matches the snapshot.
	ErrModified = errors.New("file modified since it was read")

	// ErrIsDirectory means the path names a directory.
	ErrIsDirectory = errors.New("path is a directory")
)

// Snapshot records the state of a file at read time.
type Snapshot struct {
	Path string
	Mode os.FileMode
	Hash [sha256.Size]byte
}

// Read returns the file content and a snapshot for a later WriteBack.
func Read(ctx context.Context, path string) ([]byte, Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, Snapshot{}, fmt.Errorf("read %s: %w", path, err)
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, Snapshot{}, fmt.Errorf("stat %s: %w", path, err)
	}
	if stat.IsDir() {
		return nil, Snapshot{}, fmt.Errorf("%w: %s", ErrIsDirectory, path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, Snapshot{}, fmt.Errorf("read %s: %w", path, err)
	}

	return content, Snapshot{
		Path: path,
		Mode: stat.Mode().Perm(),
		Hash: sha256.Sum256(content),
	}, nil
}

// WriteBack replaces the snapshot's file with content. It fails with
// ErrModified when the file changed or disappeared after Read.
func WriteBack(ctx context.Context, snap Snapshot, content []byte) error {
	current, err := os.ReadFile(snap.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrModified, snap.Path)
		}
		return fmt.Errorf("read %s: %w", snap.Path, err)
	}
	if sha256.Sum256(current) != snap.Hash {
		return fmt.Errorf("%w: %s", ErrModified, snap.Path)
	}

	return WriteAtomic(ctx, snap.Path, content, snap.Mode)
}

// WriteAtomic writes content to a temp file next to path and renames it
// into place. A zero mode means DefaultFileMode.
func WriteAtomic(ctx context.Context, path string, content []byte, mode os.FileMode) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if mode == 0 {
		mode = DefaultFileMode
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp.*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	done := false
	defer func() {
		if !done {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(content); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, mode); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}

	done = true
	return nil
}
