package shared

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// FileExists checks if a file exists at the given path
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// PathExists checks if anything (file or directory) exists at the given path
func PathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// CreateDirIfNotExists creates a directory if it does not exist
func CreateDirIfNotExists(dir string) error {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return os.MkdirAll(dir, 0755)
	}
	return nil
}

// TruncateString truncates a string to the given length, appending "..." when cut
func TruncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}

// MoveFile moves a file, falling back to copy+delete when a plain rename
// fails (e.g. across filesystems). It fails loudly when the source is gone.
func MoveFile(sourcePath, destPath string) error {
	if _, err := os.Stat(sourcePath); err != nil {
		return fmt.Errorf("source no longer exists: %w", err)
	}
	if err := os.Rename(sourcePath, destPath); err == nil {
		return nil
	}
	if err := copyFile(sourcePath, destPath); err != nil {
		return err
	}
	return os.Remove(sourcePath)
}

func copyFile(sourcePath, destPath string) error {
	src, err := os.Open(sourcePath)
	if err != nil {
		return fmt.Errorf("failed to open source: %w", err)
	}
	defer src.Close()

	if err := CreateDirIfNotExists(filepath.Dir(destPath)); err != nil {
		return fmt.Errorf("failed to create destination directory: %w", err)
	}
	dst, err := os.Create(destPath)
	if err != nil {
		return fmt.Errorf("failed to create destination: %w", err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(destPath)
		return fmt.Errorf("failed to copy data: %w", err)
	}
	return dst.Close()
}
