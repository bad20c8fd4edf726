// Package export delivers downloaded report files to their destination:
// the local export directory or an S3-compatible bucket.
package export

import (
	"context"
	"errors"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/sitrack/internal/filex"
)

var ErrEmptyName = errors.New("export name is empty")

// Sink stores one exported file and returns where it ended up.
type Sink interface {
	Put(ctx context.Context, name, contentType string, data []byte) (string, error)
}

// FileSink writes exports into Dir, replacing files of the same name.
type FileSink struct {
	Dir string
}

func NewFileSink(dir string) *FileSink {
	return &FileSink{Dir: dir}
}

func (s *FileSink) Put(_ context.Context, name, _ string, data []byte) (string, error) {
	name, err := cleanName(name)
	if err != nil {
		return "", err
	}

	dir, err := filex.EnsureDir(s.Dir)
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, name)
	if err := filex.WriteFile(path, data); err != nil {
		return "", err
	}
	return path, nil
}

// cleanName keeps only the base name so a server-suggested filename cannot
// escape the export directory.
func cleanName(name string) (string, error) {
	name = filepath.Base(strings.ReplaceAll(strings.TrimSpace(name), `\`, "/"))
	if name == "" || name == "." || name == "/" || name == ".." {
		return "", ErrEmptyName
	}
	return name, nil
}
