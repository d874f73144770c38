// Package row implements the fixed-width row format for tinytable.
//
// EDUCATIONAL NOTES:
// ------------------
// tinytable stores every row in exactly the same number of bytes. This is
// the simplest possible record format:
// 1. No length prefixes - a row's fields live at fixed offsets
// 2. O(1) addressing - row N starts at byte N * RowSize within its page
// 3. The same layout works unchanged if rows are ever written to disk
//
// The trade-off is wasted space: a 5-character username still occupies the
// full 32-byte field, padded with zero bytes.

package row

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/pkg/errors"
)

// Field widths of the fixed schema, in bytes.
const (
	IDSize       = 4
	UsernameSize = 32
	EmailSize    = 255
)

// Field offsets within a serialized row. Each field starts immediately
// after the previous one; there is no padding between fields.
const (
	IDOffset       = 0
	UsernameOffset = IDOffset + IDSize
	EmailOffset    = UsernameOffset + UsernameSize

	// RowSize is the total serialized size of one row.
	RowSize = IDSize + UsernameSize + EmailSize
)

// ErrFieldTooLong is returned when a text field exceeds its declared width.
// It must be checked before any bytes are copied into a page.
var ErrFieldTooLong = errors.New("field too long")

// Row is a single record in the table's fixed schema.
type Row struct {
	ID       uint32
	Username string
	Email    string
}

// String formats the row the way the REPL prints it.
func (r Row) String() string {
	return fmt.Sprintf("(%d, %s, %s)", r.ID, r.Username, r.Email)
}

// Validate checks that both text fields fit within their declared widths.
// Lengths are measured in bytes, not runes, because the serialized form
// stores raw bytes.
func (r Row) Validate() error {
	if len(r.Username) > UsernameSize {
		return errors.Wrapf(ErrFieldTooLong, "username is %d bytes, max %d", len(r.Username), UsernameSize)
	}
	if len(r.Email) > EmailSize {
		return errors.Wrapf(ErrFieldTooLong, "email is %d bytes, max %d", len(r.Email), EmailSize)
	}
	return nil
}

// Serialize writes the row into dst at the fixed field offsets.
// dst must be at least RowSize bytes. The caller is responsible for
// validating field widths first; Serialize does not truncate.
//
// EDUCATIONAL NOTE:
// -----------------
// We use little-endian byte order for the id because it's the native
// format on most modern CPUs (x86, ARM). Text fields are copied verbatim
// and zero-padded to their full width, so a page that starts zeroed needs
// no explicit padding step.
func (r Row) Serialize(dst []byte) {
	_ = dst[:RowSize]

	binary.LittleEndian.PutUint32(dst[IDOffset:IDOffset+IDSize], r.ID)
	copyPadded(dst[UsernameOffset:UsernameOffset+UsernameSize], r.Username)
	copyPadded(dst[EmailOffset:EmailOffset+EmailSize], r.Email)
}

// Deserialize reconstructs a row from a RowSize-byte slice.
// Trailing zero padding is stripped from the text fields, so
// Deserialize(Serialize(r)) == r for any row within the declared widths.
func Deserialize(src []byte) Row {
	_ = src[:RowSize]

	return Row{
		ID:       binary.LittleEndian.Uint32(src[IDOffset : IDOffset+IDSize]),
		Username: trimPadding(src[UsernameOffset : UsernameOffset+UsernameSize]),
		Email:    trimPadding(src[EmailOffset : EmailOffset+EmailSize]),
	}
}

// copyPadded copies s into dst and zero-fills the remainder of the field.
func copyPadded(dst []byte, s string) {
	n := copy(dst, s)
	for i := n; i < len(dst); i++ {
		dst[i] = 0
	}
}

// trimPadding returns the field content with trailing zero bytes removed.
func trimPadding(field []byte) string {
	return string(bytes.TrimRight(field, "\x00"))
}
