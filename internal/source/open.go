package source

import (
	"io"
	"os"

	"grab/internal/diag"
)

// Input is an opened line source.
type Input struct {
	Name string
	io.Reader
	closer io.Closer
}

// Open opens path for reading; "" and "-" designate stdin.
func Open(path string, stdin io.Reader) (*Input, error) {
	if IsStdin(path) {
		if stdin == nil {
			stdin = os.Stdin
		}
		return &Input{Name: StdinName, Reader: stdin}, nil
	}
	// #nosec G304 -- path is provided by the caller
	f, err := os.Open(path)
	if err != nil {
		return nil, diag.Wrap(diag.IOOpenInput, path, err)
	}
	return &Input{Name: path, Reader: f, closer: f}, nil
}

// Close releases the underlying file. Closing stdin is a no-op.
func (in *Input) Close() error {
	if in == nil || in.closer == nil {
		return nil
	}
	return in.closer.Close()
}
