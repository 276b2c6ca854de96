package compoundfile

import (
	"encoding/binary"
	"fmt"
)

// SectorType classifies a decoded sector id: a regular addressable sector
// or one of the four reserved sentinels.
type SectorType int

const (
	SectorRegular SectorType = iota
	SectorFree
	SectorEndOfChain
	SectorFat
	SectorDifat
)

func (t SectorType) String() string {
	switch t {
	case SectorRegular:
		return "REGULAR"
	case SectorFree:
		return "FREESECT"
	case SectorEndOfChain:
		return "ENDOFCHAIN"
	case SectorFat:
		return "FATSECT"
	case SectorDifat:
		return "DIFSECT"
	default:
		return "INVALID"
	}
}

// SectorId is a decoded sector reference: the raw signed id, its
// classification, and for regular sectors the byte offset within the file.
// Sentinel ids carry no offset.
type SectorId struct {
	Id     int32
	Type   SectorType
	Offset int64
}

func (s SectorId) IsRegular() bool {
	return s.Type == SectorRegular
}

func endOfChain() SectorId {
	return SectorId{Id: END_OF_CHAIN, Type: SectorEndOfChain}
}

// DecodeSectorId translates 4 raw little-endian bytes into a SectorId.
// The offset of a regular sector is sectorLen + id*sectorLen; the fixed
// 512-byte header occupies what would otherwise be sector -1, so sector 0
// starts one sector length into the file.
func DecodeSectorId(raw []byte, sectorLen int) (SectorId, error) {
	if len(raw) < 4 {
		return SectorId{}, fmt.Errorf("sector id needs 4 bytes, got %v: %w", len(raw), ErrFormat)
	}

	id := int32(binary.LittleEndian.Uint32(raw))
	if id < 0 {
		var sectorType SectorType
		switch id {
		case FREE_SECTOR:
			sectorType = SectorFree
		case END_OF_CHAIN:
			sectorType = SectorEndOfChain
		case FAT_SECTOR:
			sectorType = SectorFat
		case DIFAT_SECTOR:
			sectorType = SectorDifat
		default:
			return SectorId{}, fmt.Errorf("sector id %v: %w", id, ErrUnknownSentinel)
		}
		return SectorId{Id: id, Type: sectorType}, nil
	}

	return SectorId{
		Id:     id,
		Type:   SectorRegular,
		Offset: int64(sectorLen) + int64(id)*int64(sectorLen),
	}, nil
}

// Sectors gives bounds-checked access to the sectors of an in-memory file.
type Sectors struct {
	Version    Version
	NumSectors uint32

	data []byte
}

func NewSectors(v Version, data []byte) *Sectors {
	sectorLen := v.SectorLen()
	numSectors := (int64(len(data)) + int64(sectorLen) - 1) / int64(sectorLen)
	if numSectors > 0 {
		// The header occupies the first sector-sized slot.
		numSectors--
	}

	return &Sectors{
		Version:    v,
		NumSectors: uint32(numSectors),
		data:       data,
	}
}

func (s *Sectors) SectorLen() int {
	return s.Version.SectorLen()
}

// ReadSector returns the bytes of one regular sector. A sector that spans
// past the end of the file fails rather than truncating.
func (s *Sectors) ReadSector(id SectorId) ([]byte, error) {
	if !id.IsRegular() {
		return nil, fmt.Errorf("tried to read %v sector %v: %w", id.Type, id.Id, ErrFormat)
	}

	end := id.Offset + int64(s.SectorLen())
	if end > int64(len(s.data)) {
		return nil, fmt.Errorf("sector %v spans bytes %v..%v, but file is only %v bytes: %w",
			id.Id, id.Offset, end, len(s.data), ErrFormat)
	}

	return s.data[id.Offset:end], nil
}
