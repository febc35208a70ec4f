// Package writeutil provides the output plumbing of the mdtoc command.
package writeutil

import (
	"bytes"
	"io"
)

// LineBuffer collects writes, passing complete lines on to To whenever
// Flush or FlushLines is called.
type LineBuffer struct {
	To io.Writer
	bytes.Buffer
}

// Flush writes all buffered bytes, partial final line included.
func (buf *LineBuffer) Flush() error {
	_, err := buf.WriteTo(buf.To)
	return err
}

// FlushLines writes buffered bytes through the last newline.
func (buf *LineBuffer) FlushLines() error {
	b := buf.Bytes()
	if i := bytes.LastIndexByte(b, '\n'); i >= 0 {
		m, err := buf.To.Write(b[:i+1])
		buf.Next(m)
		return err
	}
	return nil
}

// ErrWriter wraps a writer, tracking its first error, and dropping all
// writes after it.
type ErrWriter struct {
	io.Writer
	Err error
}

// Write passes through to Writer if Err is nil, retaining any returned error.
func (ew *ErrWriter) Write(p []byte) (n int, err error) {
	if ew.Err == nil {
		n, ew.Err = ew.Writer.Write(p)
	}
	return n, ew.Err
}

// PrefixWriter returns a writer that prepends the given string before every
// line written through it.
// The caller SHOULD close it if they care to flush any partial final line.
func PrefixWriter(prefix string, w io.Writer) io.WriteCloser {
	p := &prefixer{prefix: prefix}
	p.buf.To = w
	return p
}

type prefixer struct {
	buf    LineBuffer
	prefix string
	mid    bool // within a line
}

func (p *prefixer) Close() error { return p.buf.Flush() }

func (p *prefixer) Write(b []byte) (n int, err error) {
	for len(b) > 0 {
		if !p.mid {
			p.buf.WriteString(p.prefix)
		}
		line := b
		if i := bytes.IndexByte(b, '\n'); i >= 0 {
			line = b[:i+1]
		}
		b = b[len(line):]
		m, _ := p.buf.Write(line)
		n += m
		p.mid = line[len(line)-1] != '\n'
	}
	return n, p.buf.FlushLines()
}

// WriteLines calls next with a buffered writer until it returns false,
// flushing complete lines after every call. Iteration stops early after a
// write error, which is returned.
func WriteLines(to io.Writer, next func(w io.Writer) bool) error {
	ew, _ := to.(*ErrWriter)
	if ew == nil {
		ew = &ErrWriter{Writer: to}
	}
	var buf LineBuffer
	buf.To = ew
	for ew.Err == nil && next(&buf) {
		buf.FlushLines()
	}
	buf.Flush()
	return ew.Err
}
