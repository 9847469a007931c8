package fsutil

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultFileMode is the permission mode for rendered output and new configs.
const DefaultFileMode os.FileMode = 0o644

// WriteAtomic replaces path with content by writing a sibling temp file and
// renaming it into place, so readers never observe a partial file. A zero mode
// means DefaultFileMode. On failure path is untouched.
func WriteAtomic(ctx context.Context, path string, content []byte, mode os.FileMode) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if mode == 0 {
		mode = DefaultFileMode
	}

	tmpPath, err := writeTemp(filepath.Dir(path), filepath.Base(path), content, mode)
	if err != nil {
		return err
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return errors.Join(
			fmt.Errorf("rename into place: %w", err),
			removeQuietly(tmpPath),
		)
	}
	return nil
}

// WriteAtomicIfChanged calls WriteAtomic unless path already holds content.
// It reports whether the file was written.
func WriteAtomicIfChanged(ctx context.Context, path string, content []byte, mode os.FileMode) (bool, error) {
	existing, err := os.ReadFile(path)
	switch {
	case err == nil && bytes.Equal(existing, content):
		return false, nil
	case err != nil && !errors.Is(err, os.ErrNotExist):
		return false, classify(path, err)
	}

	if err := WriteAtomic(ctx, path, content, mode); err != nil {
		return false, err
	}
	return true, nil
}

// writeTemp creates a synced temp file in dir and returns its path.
func writeTemp(dir, base string, content []byte, mode os.FileMode) (string, error) {
	tmp, err := os.CreateTemp(dir, "."+base+".tmp.*")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", classify(dir, err))
	}

	tmpPath := tmp.Name()
	fail := func(step string, err error) (string, error) {
		_ = tmp.Close()
		return "", errors.Join(fmt.Errorf("%s temp file: %w", step, err), removeQuietly(tmpPath))
	}

	if _, err := tmp.Write(content); err != nil {
		return fail("write", err)
	}
	if err := tmp.Chmod(mode); err != nil {
		return fail("chmod", err)
	}
	if err := tmp.Sync(); err != nil {
		return fail("sync", err)
	}
	if err := tmp.Close(); err != nil {
		return "", errors.Join(fmt.Errorf("close temp file: %w", err), removeQuietly(tmpPath))
	}

	return tmpPath, nil
}

func removeQuietly(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove temp file: %w", err)
	}
	return nil
}
