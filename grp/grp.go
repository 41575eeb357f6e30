/*
Package grp implements the indexed record container used by the game data
files.

A container is split across two files. The data file, usually with a .grp
extension, is a plain concatenation of variable-length records. The index
file shares the same base name with an .idx extension and holds one unsigned
32-bit little-endian integer per record, the offset of the end of that record
within the data file. The start of the first record is implied to be zero.
*/
package grp

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// IndexExt is the extension of the index file accompanying a data file
const IndexExt = ".idx"

// ErrMissingIndex is returned by Open when the index file doesn't exist. The
// returned Archive is still usable but holds no records.
var ErrMissingIndex = errors.New("grp: missing index")

// Archive is a read-only view of a data file and its index. Records returned
// by an Archive share its underlying buffer and must not be modified.
type Archive struct {
	offsets []int
	data    []byte
}

// New returns an Archive using the raw index and data. A nil or empty index
// results in an Archive with no records. Any trailing index bytes that don't
// form a complete offset are ignored.
func New(index, data []byte) *Archive {
	a := &Archive{
		offsets: make([]int, 1, len(index)/4+1),
		data:    data,
	}

	r := bytes.NewReader(index)
	for {
		var offset uint32
		if err := binary.Read(r, binary.LittleEndian, &offset); err != nil {
			break
		}
		a.offsets = append(a.offsets, int(offset))
	}

	return a
}

// IndexFile returns the name of the index file for the given data file
func IndexFile(file string) string {
	return strings.TrimSuffix(file, filepath.Ext(file)) + IndexExt
}

// Open reads the data file and its index into memory. If the index file
// doesn't exist the Archive is returned along with ErrMissingIndex.
func Open(file string) (*Archive, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}

	index, err := os.ReadFile(IndexFile(file))
	switch {
	case errors.Is(err, os.ErrNotExist):
		return New(nil, data), fmt.Errorf("%w: %s", ErrMissingIndex, IndexFile(file))
	case err != nil:
		return nil, err
	}

	return New(index, data), nil
}

// Len returns the number of index slots in the Archive. Some slots may still
// be empty, see Record.
func (a *Archive) Len() int {
	return len(a.offsets) - 1
}

// Indexed reports whether the Archive was built with at least one offset
func (a *Archive) Indexed() bool {
	return a.Len() > 0
}

// Size returns the length of the data file in bytes
func (a *Archive) Size() int {
	return len(a.data)
}

func (a *Archive) offset(i int) int {
	if i < 0 || i >= len(a.offsets) {
		return 0
	}
	return a.offsets[i]
}

// Record returns the bytes of record i. The boolean is false when the record
// is empty, out of range, or the index points backwards or beyond the data.
func (a *Archive) Record(i int) ([]byte, bool) {
	if i < 0 {
		return nil, false
	}

	cur, next := a.offset(i), a.offset(i+1)
	if next <= cur || next > len(a.data) {
		return nil, false
	}

	return a.data[cur:next:next], true
}

// Encode builds the index and data for the given records, the inverse of New
func Encode(records [][]byte) ([]byte, []byte) {
	index := new(bytes.Buffer)
	data := new(bytes.Buffer)

	for _, r := range records {
		data.Write(r)
		// Writes to a bytes.Buffer can't fail
		_ = binary.Write(index, binary.LittleEndian, uint32(data.Len()))
	}

	return index.Bytes(), data.Bytes()
}
