package pageviews

import (
	"compress/bzip2"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang/snappy"
	"github.com/klauspost/pgzip"
	"github.com/pierrec/lz4/v4"
	"github.com/ulikunitz/xz"
)

type readCloser struct {
	io.Reader
	closers []io.Closer
}

func (rc *readCloser) Close() error {
	var first error
	for _, c := range rc.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// Open открывает дамп просмотров и распаковывает его по расширению
// (.bz2, .gz, .xz, .lz4, .sz/.snappy). Остальные файлы читаются как текст
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &FilesystemError{Op: "open", Path: path, Err: err}
	}

	var rd io.Reader
	closers := []io.Closer{f}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".bz2":
		rd = bzip2.NewReader(f)
	case ".gz":
		zr, err := pgzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, &FilesystemError{Op: "gunzip", Path: path, Err: err}
		}
		rd = zr
		closers = append([]io.Closer{zr}, closers...)
	case ".xz":
		xr, err := xz.NewReader(f)
		if err != nil {
			f.Close()
			return nil, &FilesystemError{Op: "unxz", Path: path, Err: err}
		}
		rd = xr
	case ".lz4":
		rd = lz4.NewReader(f)
	case ".sz", ".snappy":
		rd = snappy.NewReader(f)
	default:
		rd = f
	}

	return &readCloser{Reader: rd, closers: closers}, nil
}
