// Package textio opens text streams for buffered reading in a named
// charset, skipping a leading UTF-8 byte order mark.
package textio

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	npathserrors "github.com/arthur-debert/npaths/pkg/errors"
	"github.com/arthur-debert/npaths/pkg/logging"
	"github.com/arthur-debert/npaths/pkg/types"
)

// UTF8 is the default charset
const UTF8 = "utf-8"

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Reader is a buffered reader that decodes to UTF-8
type Reader struct {
	*bufio.Reader

	// Charset is the canonical name of the decoded charset
	Charset string

	closer io.Closer
}

// Close closes the underlying stream when it was opened by Open or is an
// io.Closer
func (r *Reader) Close() error {
	if r.closer == nil {
		return nil
	}
	return r.closer.Close()
}

// NewReader wraps r for reading in charset. An empty charset means UTF-8.
// For UTF-8 a leading byte order mark is consumed; otherwise nothing is.
// Unknown charsets fail with ErrCharset before r is read.
func NewReader(r io.Reader, charset string) (*Reader, error) {
	enc, name, err := lookup(charset)
	if err != nil {
		return nil, err
	}
	return newReader(r, enc, name)
}

// Open opens p on fsys for reading in charset. The charset is checked
// before the file is opened; open errors are returned unchanged.
func Open(fsys types.FS, p types.Path, charset string) (*Reader, error) {
	if fsys == nil || p == nil {
		return nil, npathserrors.New(npathserrors.ErrInvalidInput, "open needs a filesystem and a path")
	}
	enc, name, err := lookup(charset)
	if err != nil {
		return nil, err
	}

	f, err := fsys.Open(p.String())
	if err != nil {
		return nil, err
	}
	r, err := newReader(f, enc, name)
	if err != nil {
		f.Close()
		return nil, err
	}
	return r, nil
}

func newReader(r io.Reader, enc encoding.Encoding, name string) (*Reader, error) {
	closer, _ := r.(io.Closer)

	if enc == nil {
		br := bufio.NewReader(r)
		head, err := br.Peek(len(utf8BOM))
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
		if bytes.Equal(head, utf8BOM) {
			if _, err := br.Discard(len(utf8BOM)); err != nil {
				return nil, err
			}
			logger := logging.GetLogger("textio")
			logger.Trace().Msg("Skipped UTF-8 byte order mark")
		}
		return &Reader{Reader: br, Charset: name, closer: closer}, nil
	}

	decoded := transform.NewReader(r, enc.NewDecoder())
	return &Reader{Reader: bufio.NewReader(decoded), Charset: name, closer: closer}, nil
}

// lookup resolves charset. A nil encoding means UTF-8, read as is.
func lookup(charset string) (encoding.Encoding, string, error) {
	name := strings.ToLower(strings.TrimSpace(charset))
	switch name {
	case "", "utf-8", "utf8":
		return nil, UTF8, nil
	case "utf-16":
		return unicode.UTF16(unicode.BigEndian, unicode.UseBOM), name, nil
	case "utf-16be":
		return unicode.UTF16(unicode.BigEndian, unicode.UseBOM), name, nil
	case "utf-16le":
		return unicode.UTF16(unicode.LittleEndian, unicode.UseBOM), name, nil
	}

	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, "", npathserrors.Newf(npathserrors.ErrCharset, "unsupported charset: %s", charset).
			WithDetail("charset", charset)
	}
	canonical, err := htmlindex.Name(enc)
	if err != nil {
		canonical = name
	}
	if canonical == UTF8 {
		return nil, UTF8, nil
	}
	return enc, canonical, nil
}

// CanonicalName returns the canonical name of charset, or ErrCharset when
// it is not supported
func CanonicalName(charset string) (string, error) {
	_, name, err := lookup(charset)
	return name, err
}
