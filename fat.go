package compoundfile

import "fmt"

// Fat is the flat file allocation table: entry n is the id of the sector
// that follows sector n in its chain, or a terminal sentinel. It is built
// once per parse and read-only afterwards.
type Fat struct {
	Entries []SectorId
}

// buildFat reads every FAT sector named by the DIFAT and concatenates the
// decoded 4-byte entries into one flat table. The number of FAT sectors the
// DIFAT names must equal the count the header declares.
func buildFat(header *Header, difat []SectorId, sectors *Sectors) (*Fat, error) {
	if uint32(len(difat)) != header.NumFatSectors {
		return nil, fmt.Errorf("DIFAT names %v FAT sectors, header declares %v: %w",
			len(difat), header.NumFatSectors, ErrConsistency)
	}

	sectorLen := sectors.SectorLen()
	raw := make([]byte, 0, len(difat)*sectorLen)
	for i, id := range difat {
		sector, err := sectors.ReadSector(id)
		if err != nil {
			return nil, fmt.Errorf("FAT sector %v (id %v): %w", i, id.Id, err)
		}
		raw = append(raw, sector...)
	}

	entries := make([]SectorId, 0, len(raw)/4)
	for i := 0; i+4 <= len(raw); i += 4 {
		id, err := DecodeSectorId(raw[i:i+4], sectorLen)
		if err != nil {
			return nil, fmt.Errorf("FAT entry %v: %w", i/4, err)
		}
		entries = append(entries, id)
	}

	return &Fat{Entries: entries}, nil
}

// Next returns the sector that follows the given sector index in its chain,
// or a sentinel.
func (f *Fat) Next(index uint32) (SectorId, error) {
	if index >= uint32(len(f.Entries)) {
		return SectorId{}, fmt.Errorf("sector %v is outside the FAT (%v entries): %w",
			index, len(f.Entries), ErrFormat)
	}
	return f.Entries[index], nil
}
