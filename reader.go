package zippy

import (
	"bytes"
	"errors"
	"io"
)

var errReaderClosed = errors.New("zippy: Reader is closed")

// Reader adapts the one-shot Inflate core to the io.Reader interface, in
// the same spirit as the teacher package's own NewReader: callers that
// have a stream instead of an in-memory buffer can still use the
// familiar io.Copy-friendly shape. It does not decode incrementally — the
// DEFLATE core's contract (the non-goal of streaming/resumable decoding)
// is preserved; Reader simply buffers the whole source on first use and
// then serves bytes out of the fully decoded result.
type Reader struct {
	src io.Reader
	out *bytes.Reader
	err error
}

// NewReader returns a Reader that decodes the DEFLATE stream read from src.
func NewReader(src io.Reader) *Reader {
	return &Reader{src: src}
}

func (r *Reader) Read(p []byte) (n int, err error) {
	if r.out == nil && r.err == nil {
		raw, readErr := io.ReadAll(r.src)
		if readErr != nil {
			r.err = readErr
		} else if decoded, decErr := Inflate(raw); decErr != nil {
			r.err = decErr
		} else {
			r.out = bytes.NewReader(decoded)
		}
	}
	if r.out != nil {
		return r.out.Read(p)
	}
	return 0, r.err
}

// Close releases the Reader's reference to its source. It is not an error
// to Close a Reader that has already reached EOF or an error.
func (r *Reader) Close() error {
	if r.src == nil {
		return errReaderClosed
	}
	r.src = nil
	return nil
}
