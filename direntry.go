package compoundfile

import (
	"encoding/binary"
	"fmt"
	"strings"

	"golang.org/x/text/encoding/unicode"
)

// Field offsets within one 128-byte directory entry record.
const (
	dirEntryNameLen     = 64
	dirEntryNameLenOff  = 64
	dirEntryObjTypeOff  = 66
	dirEntryColorOff    = 67
	dirEntryLeftOff     = 68
	dirEntryRightOff    = 72
	dirEntryChildOff    = 76
	dirEntryClsidOff    = 80
	dirEntryStateOff    = 96
	dirEntryCreatedOff  = 100
	dirEntryModifiedOff = 108
	dirEntryStartOff    = 116
	dirEntrySizeOff     = 120
)

var utf16le = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// DirEntry is one decoded 128-byte directory entry record. Field values are
// passed through raw; CLSID and timestamps are not interpreted, and the
// sibling/child ids are not traversed.
type DirEntry struct {
	RawName      [64]byte
	Name         string
	NameLen      uint16
	ObjType      uint8
	ColorFlag    uint8
	LeftSibling  int32
	RightSibling int32
	Child        int32
	CLSID        [16]byte
	StateBits    uint32
	CreationTime uint64
	ModifiedTime uint64

	StartingSector uint32
	StreamSize     uint64
}

// ParseDirEntry decodes a single 128-byte directory entry record. The name
// field is decoded as UTF-16LE with trailing nulls trimmed; the raw name
// bytes are preserved alongside.
func ParseDirEntry(record []byte) (*DirEntry, error) {
	if len(record) < DIR_ENTRY_LEN {
		return nil, fmt.Errorf("directory entry needs %v bytes, got %v: %w",
			DIR_ENTRY_LEN, len(record), ErrFormat)
	}

	dir := DirEntry{}
	copy(dir.RawName[:], record[:dirEntryNameLen])

	decoded, err := utf16le.NewDecoder().Bytes(record[:dirEntryNameLen])
	if err != nil {
		return nil, fmt.Errorf("directory entry name is not UTF-16: %w", ErrFormat)
	}
	dir.Name = strings.TrimRight(string(decoded), "\x00")

	dir.NameLen = binary.LittleEndian.Uint16(record[dirEntryNameLenOff:])
	dir.ObjType = record[dirEntryObjTypeOff]
	dir.ColorFlag = record[dirEntryColorOff]
	dir.LeftSibling = int32(binary.LittleEndian.Uint32(record[dirEntryLeftOff:]))
	dir.RightSibling = int32(binary.LittleEndian.Uint32(record[dirEntryRightOff:]))
	dir.Child = int32(binary.LittleEndian.Uint32(record[dirEntryChildOff:]))
	copy(dir.CLSID[:], record[dirEntryClsidOff:dirEntryStateOff])
	dir.StateBits = binary.LittleEndian.Uint32(record[dirEntryStateOff:])
	dir.CreationTime = binary.LittleEndian.Uint64(record[dirEntryCreatedOff:])
	dir.ModifiedTime = binary.LittleEndian.Uint64(record[dirEntryModifiedOff:])
	dir.StartingSector = binary.LittleEndian.Uint32(record[dirEntryStartOff:])
	dir.StreamSize = binary.LittleEndian.Uint64(record[dirEntrySizeOff:])

	return &dir, nil
}

func (d *DirEntry) ObjectType() ObjectType {
	return ObjectFromByte(d.ObjType)
}

func (d *DirEntry) Color() Color {
	return ColorFromByte(d.ColorFlag)
}
