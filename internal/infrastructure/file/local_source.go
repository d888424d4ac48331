package file

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

var ErrTooLarge = errors.New("file exceeds the size limit")

// LocalSource reads upload files from disk for operator tooling.
type LocalSource struct {
	BaseDir  string
	MaxBytes int64
}

func NewLocalSource(baseDir string, maxBytes int64) *LocalSource {
	if baseDir == "" {
		baseDir = "."
	}
	return &LocalSource{BaseDir: baseDir, MaxBytes: maxBytes}
}

// Resolve joins relative paths onto BaseDir.
func (s *LocalSource) Resolve(sourcePath string) string {
	if filepath.IsAbs(sourcePath) {
		return filepath.Clean(sourcePath)
	}
	return filepath.Join(s.BaseDir, sourcePath)
}

func (s *LocalSource) ReadAll(ctx context.Context, sourcePath string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := s.Resolve(sourcePath)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat file %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("open file %s: is a directory", path)
	}
	if s.MaxBytes > 0 && info.Size() > s.MaxBytes {
		return nil, fmt.Errorf("%w: %s is %d bytes, limit %d", ErrTooLarge, path, info.Size(), s.MaxBytes)
	}

	var r io.Reader = f
	if s.MaxBytes > 0 {
		r = io.LimitReader(f, s.MaxBytes+1)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read file %s: %w", path, err)
	}
	if s.MaxBytes > 0 && int64(len(data)) > s.MaxBytes {
		return nil, fmt.Errorf("%w: %s, limit %d", ErrTooLarge, path, s.MaxBytes)
	}
	return data, nil
}
