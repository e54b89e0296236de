package ports

import "io"

// LogSource opens the benchmark log for reading (e.g., from the filesystem).
type LogSource interface {
	Open(path string) (io.ReadCloser, error)
}
