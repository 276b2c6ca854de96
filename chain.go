package compoundfile

import "fmt"

// Chain is one fully materialized sector chain: the ordered sector ids it
// visited and the concatenated bytes of every sector.
type Chain struct {
	SectorIds []SectorId
	Data      []byte
}

// followChain walks the FAT from a starting sector, appending each sector's
// bytes, until END_OF_CHAIN. Any other sentinel, or an index outside the
// FAT, is fatal. The walk is bounded by the total number of sectors the
// file can hold, so a cyclic chain fails instead of spinning.
func followChain(start SectorId, fat *Fat, sectors *Sectors) (*Chain, error) {
	chain := &Chain{}
	maxSectors := int(sectors.NumSectors) + 1

	current := start
	for {
		if !current.IsRegular() {
			if current.Type == SectorEndOfChain {
				break
			}
			return nil, fmt.Errorf("chain from sector %v hit %v sector %v: %w",
				start.Id, current.Type, current.Id, ErrFormat)
		}

		if len(chain.SectorIds) >= maxSectors {
			return nil, fmt.Errorf("chain from sector %v exceeds %v sectors: %w",
				start.Id, maxSectors, ErrChainLoop)
		}

		sector, err := sectors.ReadSector(current)
		if err != nil {
			return nil, err
		}
		chain.SectorIds = append(chain.SectorIds, current)
		chain.Data = append(chain.Data, sector...)

		current, err = fat.Next(uint32(current.Id))
		if err != nil {
			return nil, err
		}
	}

	return chain, nil
}

func (c *Chain) NumSectors() uint32 {
	return uint32(len(c.SectorIds))
}
