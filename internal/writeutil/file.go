package writeutil

import (
	"bytes"
	"errors"
	"io"
	"os"

	"github.com/google/renameio"
)

var errClosed = errors.New("write to closed output")

// Output returns a writer for the named file, or for stdout when name is
// "" or "-". File output is buffered and atomically replaces name on Close,
// so readers never see a partial document; nothing is written if Close is
// never called.
func Output(name string, stdout io.Writer) io.WriteCloser {
	if name == "" || name == "-" {
		return nopCloser{stdout}
	}
	return &fileOutput{name: name}
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

type fileOutput struct {
	name   string
	buf    bytes.Buffer
	closed bool
}

func (fo *fileOutput) Write(p []byte) (int, error) {
	if fo.closed {
		return 0, errClosed
	}
	return fo.buf.Write(p)
}

func (fo *fileOutput) Close() error {
	if fo.closed {
		return nil
	}
	fo.closed = true
	return WriteFile(fo.name, fo.buf.Bytes())
}

// WriteFile atomically replaces the named file with data.
func WriteFile(name string, data []byte) error {
	return renameio.WriteFile(name, data, 0666)
}

// ReadInput reads all of the named file, or of stdin when name is "" or "-".
func ReadInput(name string, stdin io.Reader) ([]byte, error) {
	if name == "" || name == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(name)
}
