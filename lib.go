// Package compoundfile decodes the Microsoft Compound File Binary (CFB,
// OLE2) container format far enough to list its directory entries: it
// resolves sector addressing from the header, assembles the FAT from the
// header-embedded DIFAT plus any DIFAT extension sectors, follows the FAT
// chain of the directory stream, and decodes the 128-byte entry records.
//
// Stream payloads and the mini-FAT are out of scope; the package is meant
// for triage of legacy Office documents, not content extraction.
package compoundfile

// CompoundFile is the result of parsing one container: the decoded header,
// the assembled FAT, and the directory entry sequence.
type CompoundFile struct {
	Header    *Header
	Fat       *Fat
	Directory *Directory
}

// Parse decodes the compound file held in data. The parse is a strict
// linear pipeline (header, DIFAT, FAT, directory stream, entries) with no
// backtracking; any stage failure aborts the whole parse. The input slice
// is never mutated, and Parse keeps no shared state between calls.
func Parse(data []byte, validation Validation) (*CompoundFile, error) {
	header, err := parseHeader(data, validation)
	if err != nil {
		return nil, err
	}

	sectors := NewSectors(header.Version, data)

	difat, err := assembleDifat(header, sectors, validation)
	if err != nil {
		return nil, err
	}

	fat, err := buildFat(header, difat, sectors)
	if err != nil {
		return nil, err
	}

	stream, err := followChain(header.FirstDirSector, fat, sectors)
	if err != nil {
		return nil, err
	}

	directory, err := newDirectory(stream, header.FirstDirSector, validation)
	if err != nil {
		return nil, err
	}

	return &CompoundFile{
		Header:    header,
		Fat:       fat,
		Directory: directory,
	}, nil
}

// Entries returns the consumer-facing entry sequence in stream order.
func (c *CompoundFile) Entries() []*Entry {
	entries := make([]*Entry, 0, len(c.Directory.Entries))
	for _, dirEntry := range c.Directory.Entries {
		entries = append(entries, NewEntry(dirEntry))
	}
	return entries
}

// RootEntry returns the root storage entry, or nil if the directory stream
// held no entries.
func (c *CompoundFile) RootEntry() *Entry {
	root := c.Directory.RootEntry()
	if root == nil {
		return nil
	}
	return NewEntry(root)
}
