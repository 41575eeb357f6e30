/*
Package record decodes the fixed layout records stored in the game's save
archives.

Every record is a packed sequence of little-endian 16-bit integers and fixed
width, NUL padded text fields with no header or length prefix; the layout is
implied by the type of record being decoded. Text is stored in a legacy
codepage so the encoding used to turn it into a string is configurable.
*/
package record

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/encoding/unicode"
)

// ErrTruncatedRecord is returned when a record is shorter than its layout
var ErrTruncatedRecord = errors.New("record: truncated record")

// Encodings maps the supported text encoding names to their implementation
var Encodings = map[string]encoding.Encoding{
	"utf-8":   unicode.UTF8,
	"gbk":     simplifiedchinese.GBK,
	"gb18030": simplifiedchinese.GB18030,
	"big5":    traditionalchinese.Big5,
}

// LookupEncoding returns the encoding registered under name, ignoring case
func LookupEncoding(name string) (encoding.Encoding, error) {
	e, ok := Encodings[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("record: unknown encoding %q", name)
	}
	return e, nil
}

// Decoder decodes records, converting text fields from Encoding. A nil
// Encoding treats text as UTF-8.
type Decoder struct {
	Encoding encoding.Encoding
}

var defaultDecoder Decoder

type reader struct {
	b   []byte
	off int
	enc encoding.Encoding
}

func (d *Decoder) reader(b []byte, size int) (*reader, error) {
	if len(b) < size {
		return nil, fmt.Errorf("%w: %d bytes, need %d", ErrTruncatedRecord, len(b), size)
	}
	return &reader{b: b[:size], enc: d.Encoding}, nil
}

// Callers have already checked the record length so these never run off
// the end.
func (r *reader) int16() int16 {
	v := int16(binary.LittleEndian.Uint16(r.b[r.off:]))
	r.off += 2
	return v
}

func (r *reader) uint16() uint16 {
	v := binary.LittleEndian.Uint16(r.b[r.off:])
	r.off += 2
	return v
}

func (r *reader) int16s(v []int16) {
	for i := range v {
		v[i] = r.int16()
	}
}

func (r *reader) text(n int) string {
	b := r.b[r.off : r.off+n]
	r.off += n

	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}

	// Invalid sequences become replacement characters rather than failing
	// the whole record
	if r.enc == nil {
		return strings.ToValidUTF8(string(b), "�")
	}

	s, err := r.enc.NewDecoder().Bytes(b)
	if err != nil {
		return strings.ToValidUTF8(string(b), "�")
	}
	return string(s)
}

func table[T any](b []byte, size int, decode func([]byte) (*T, error)) ([]*T, error) {
	out := make([]*T, 0, len(b)/size)
	for off := 0; off < len(b); off += size {
		v, err := decode(b[off:min(off+size, len(b))])
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", len(out), err)
		}
		out = append(out, v)
	}
	return out, nil
}
