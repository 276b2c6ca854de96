package compoundfile

import (
	"encoding/binary"
	"fmt"
)

// assembleDifat concatenates the 109 header-embedded DIFAT entries with the
// entries held in chained DIFAT extension sectors, then decodes the result
// into the ordered list of FAT sector ids.
//
// Each extension sector contributes all but its last 4 bytes as entries;
// the last 4 bytes point at the next extension sector. Decoding stops at
// the first sentinel entry: everything after it is padding. Permissive
// validation ignores the padding (matching most writers); strict validation
// requires every padding entry to be FREE_SECTOR.
func assembleDifat(header *Header, sectors *Sectors, validation Validation) ([]SectorId, error) {
	sectorLen := sectors.SectorLen()

	raw := make([]byte, 0, len(header.InitialDifat))
	raw = append(raw, header.InitialDifat...)

	if header.NumDifatSectors > 0 && header.FirstDifatSector.IsRegular() {
		current := header.FirstDifatSector
		seen := make(map[int32]bool)

		for i := uint32(0); i < header.NumDifatSectors; i++ {
			if !current.IsRegular() {
				return nil, fmt.Errorf("DIFAT chain ends after %v of %v sectors: %w",
					i, header.NumDifatSectors, ErrFormat)
			}
			if seen[current.Id] {
				return nil, fmt.Errorf("DIFAT chain repeats sector %v: %w", current.Id, ErrChainLoop)
			}
			seen[current.Id] = true

			sector, err := sectors.ReadSector(current)
			if err != nil {
				return nil, fmt.Errorf("DIFAT sector %v of %v: %w", i, header.NumDifatSectors, err)
			}

			raw = append(raw, sector[:sectorLen-4]...)
			current, err = DecodeSectorId(sector[sectorLen-4:], sectorLen)
			if err != nil {
				return nil, fmt.Errorf("next DIFAT sector pointer: %w", err)
			}
		}
	}

	difat := make([]SectorId, 0, len(raw)/4)
	for i := 0; i+4 <= len(raw); i += 4 {
		id, err := DecodeSectorId(raw[i:i+4], sectorLen)
		if err != nil {
			return nil, fmt.Errorf("DIFAT entry %v: %w", i/4, err)
		}
		if !id.IsRegular() {
			if validation.IsStrict() {
				for j := i; j+4 <= len(raw); j += 4 {
					pad := int32(binary.LittleEndian.Uint32(raw[j : j+4]))
					if pad != FREE_SECTOR {
						return nil, fmt.Errorf("DIFAT entry %v past end of table is %v, not FREESECT: %w",
							j/4, pad, ErrFormat)
					}
				}
			}
			break
		}
		difat = append(difat, id)
	}

	return difat, nil
}
