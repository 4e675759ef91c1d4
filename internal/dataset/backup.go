package dataset

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Backup copies path to path+BackupSuffix, overwriting an older backup,
// and returns the backup path.
func Backup(path string) (string, error) {
	backup := path + BackupSuffix

	src, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open %s for backup: %w", path, err)
	}
	defer func() { _ = src.Close() }()

	info, err := src.Stat()
	if err != nil {
		return "", fmt.Errorf("failed to stat %s: %w", path, err)
	}

	dst, err := os.OpenFile(backup, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return "", fmt.Errorf("failed to create backup %s: %w", backup, err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		_ = dst.Close()
		return "", fmt.Errorf("failed to write backup %s: %w", backup, err)
	}
	if err := dst.Close(); err != nil {
		return "", fmt.Errorf("failed to close backup %s: %w", backup, err)
	}
	return backup, nil
}

// ReplaceFile writes dest through fn into a temporary file in the same
// directory and renames it over dest once fn succeeds. On failure dest is
// left untouched.
func ReplaceFile(dest string, fn func(w io.Writer) error) (err error) {
	perm := os.FileMode(0o644)
	if info, statErr := os.Stat(dest); statErr == nil {
		perm = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(dest), "."+filepath.Base(dest)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmpPath)
		}
	}()

	bw := bufio.NewWriter(tmp)
	if err = fn(bw); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = bw.Flush(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to flush temp file: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err = os.Chmod(tmpPath, perm); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}
	if err = os.Rename(tmpPath, dest); err != nil {
		return fmt.Errorf("failed to replace %s: %w", dest, err)
	}
	return nil
}
