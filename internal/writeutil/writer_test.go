package writeutil_test

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/jcorbin/mdtoc/internal/writeutil"
)

func TestPrefixWriter(t *testing.T) {
	var out bytes.Buffer
	pw := PrefixWriter("> ", &out)
	io.WriteString(pw, "one\ntw")
	assert.Equal(t, "> one\n", out.String(), "partial line held back")
	io.WriteString(pw, "o\nthree")
	require.NoError(t, pw.Close())
	assert.Equal(t, "> one\n> two\n> three", out.String())
}

type failWriter struct{ n int }

func (fw *failWriter) Write(p []byte) (int, error) {
	if fw.n--; fw.n < 0 {
		return 0, errors.New("boom")
	}
	return len(p), nil
}

func TestWriteLines(t *testing.T) {
	var out bytes.Buffer
	n := 0
	require.NoError(t, WriteLines(&out, func(w io.Writer) bool {
		if n++; n > 3 {
			return false
		}
		fmt.Fprintf(w, "%v.\n", n)
		return true
	}))
	assert.Equal(t, "1.\n2.\n3.\n", out.String())

	calls := 0
	err := WriteLines(&failWriter{n: 1}, func(w io.Writer) bool {
		calls++
		io.WriteString(w, "line\n")
		return true
	})
	assert.EqualError(t, err, "boom")
	assert.Equal(t, 2, calls, "stops after first write error")
}

func TestOutput(t *testing.T) {
	var stdout bytes.Buffer
	w := Output("-", &stdout)
	io.WriteString(w, "to stdout")
	require.NoError(t, w.Close())
	assert.Equal(t, "to stdout", stdout.String())

	name := filepath.Join(t.TempDir(), "out.html")
	require.NoError(t, os.WriteFile(name, []byte("old"), 0644))

	w = Output(name, &stdout)
	io.WriteString(w, "<p>new</p>")
	data, err := os.ReadFile(name)
	require.NoError(t, err)
	assert.Equal(t, "old", string(data), "unchanged before close")

	require.NoError(t, w.Close())
	data, err = os.ReadFile(name)
	require.NoError(t, err)
	assert.Equal(t, "<p>new</p>", string(data))

	_, err = io.WriteString(w, "late")
	assert.Error(t, err)
}

func TestReadInput(t *testing.T) {
	data, err := ReadInput("", strings.NewReader("# stdin"))
	require.NoError(t, err)
	assert.Equal(t, "# stdin", string(data))

	_, err = ReadInput(filepath.Join(t.TempDir(), "missing.md"), nil)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
