package compoundfile

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

type Header struct {
	Version          Version
	SectorShift      uint16
	NumFatSectors    uint32
	FirstDirSector   SectorId
	FirstDifatSector SectorId
	NumDifatSectors  uint32

	// InitialDifat is the raw 436-byte DIFAT array embedded in the header,
	// 109 little-endian sector id entries.
	InitialDifat []byte
}

// parseHeader extracts the fixed-offset scalar fields from the first 512
// bytes of the file. It only reads; the DIFAT and FAT stages interpret the
// sector ids it returns.
func parseHeader(data []byte, validation Validation) (*Header, error) {
	if len(data) < HEADER_LEN {
		return nil, fmt.Errorf("file is %v bytes, header needs %v: %w", len(data), HEADER_LEN, ErrNotCompoundFile)
	}

	if !bytes.Equal(data[:len(MAGIC_NUMBER)], MAGIC_NUMBER) {
		return nil, fmt.Errorf("bad magic number % X: %w", data[:len(MAGIC_NUMBER)], ErrNotCompoundFile)
	}

	if validation.IsStrict() {
		byteOrderMark := binary.LittleEndian.Uint16(data[BYTE_ORDER_OFFSET:])
		if byteOrderMark != BYTE_ORDER_MARK {
			return nil, fmt.Errorf("invalid byte order mark (expected 0x%04X, found 0x%04X): %w",
				BYTE_ORDER_MARK, byteOrderMark, ErrFormat)
		}
	}

	sectorShift := binary.LittleEndian.Uint16(data[SECTOR_SHIFT_OFFSET:])
	version, err := VersionForSectorShift(sectorShift)
	if err != nil {
		return nil, err
	}
	sectorLen := version.SectorLen()

	firstDirSector, err := DecodeSectorId(data[FIRST_DIR_SECT_OFFSET:FIRST_DIR_SECT_OFFSET+4], sectorLen)
	if err != nil {
		return nil, fmt.Errorf("first directory sector: %w", err)
	}

	firstDifatSector, err := DecodeSectorId(data[FIRST_DIFAT_SECT_OFFSET:FIRST_DIFAT_SECT_OFFSET+4], sectorLen)
	if err != nil {
		return nil, fmt.Errorf("first DIFAT sector: %w", err)
	}

	// Some CFB implementations use FREE_SECTOR to indicate END_OF_CHAIN.
	if firstDifatSector.Type == SectorFree {
		firstDifatSector = endOfChain()
	}

	return &Header{
		Version:          version,
		SectorShift:      sectorShift,
		NumFatSectors:    binary.LittleEndian.Uint32(data[NUM_FAT_SECTS_OFFSET:]),
		FirstDirSector:   firstDirSector,
		FirstDifatSector: firstDifatSector,
		NumDifatSectors:  binary.LittleEndian.Uint32(data[NUM_DIFAT_SECTS_OFFSET:]),
		InitialDifat:     data[HEADER_DIFAT_OFFSET : HEADER_DIFAT_OFFSET+HEADER_DIFAT_SIZE],
	}, nil
}
