package logsource

import (
	"errors"
	"io"
	"io/fs"
	"os"

	"github.com/aalvaropc/benchstats/internal/domain"
)

// FileSource reads logs from the local filesystem.
type FileSource struct{}

func NewFileSource() *FileSource {
	return &FileSource{}
}

func (FileSource) Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		kind := domain.KindIO
		if errors.Is(err, fs.ErrNotExist) {
			kind = domain.KindNotFound
		}
		return nil, &domain.OpError{
			Op:   "logsource.open",
			Kind: kind,
			Path: path,
			Err:  err,
		}
	}
	return f, nil
}
