package compoundfile

import "fmt"

const (
	V3 Version = 3
	V4 Version = 4
)

type Version int

// VersionForSectorShift maps a header sector shift to the CFB version that
// mandates it. Version 3 files use 512-byte sectors, version 4 files use
// 4096-byte sectors; no other shift is valid.
func VersionForSectorShift(shift uint16) (Version, error) {
	switch shift {
	case 9:
		return V3, nil
	case 12:
		return V4, nil
	default:
		return 0, fmt.Errorf("unsupported sector shift %v: %w", shift, ErrFormat)
	}
}

// Returns the sector shift used in this version.
func (v Version) SectorShift() uint16 {
	return uint16(v * 3)
}

// Returns the length of sectors used in this version.
func (v Version) SectorLen() int {
	return 1 << v.SectorShift()
}

// Returns the number of directory entries per sector in this version.
func (v Version) DirEntriesPerSector() int {
	return v.SectorLen() / DIR_ENTRY_LEN
}
