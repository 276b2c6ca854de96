package compoundfile

import "fmt"

// Directory holds the decoded directory entry records in stream order. The
// sibling/child ids describe a red-black tree, but the tree is not
// reconstructed here; consumers get the flat sequence with the raw ids.
type Directory struct {
	Entries        []*DirEntry
	DirStartSector SectorId
}

// newDirectory slices the assembled directory stream into 128-byte records
// and decodes each one. A trailing partial record is discarded, as are
// trailing unallocated records, which pad the last directory sector.
func newDirectory(stream *Chain, start SectorId, validation Validation) (*Directory, error) {
	entries := make([]*DirEntry, 0, len(stream.Data)/DIR_ENTRY_LEN)
	for i := 0; i+DIR_ENTRY_LEN <= len(stream.Data); i += DIR_ENTRY_LEN {
		entry, err := ParseDirEntry(stream.Data[i : i+DIR_ENTRY_LEN])
		if err != nil {
			return nil, fmt.Errorf("directory entry %v: %w", i/DIR_ENTRY_LEN, err)
		}
		entries = append(entries, entry)
	}

	// entries pop
	for len(entries) > 0 && entries[len(entries)-1].ObjType == OBJ_TYPE_UNALLOCATED {
		entries = entries[:len(entries)-1]
	}

	dir := &Directory{
		Entries:        entries,
		DirStartSector: start,
	}

	if validation.IsStrict() {
		if err := dir.Validate(); err != nil {
			return nil, err
		}
	}

	return dir, nil
}

func (d *Directory) Validate() error {
	if len(d.Entries) == 0 {
		return fmt.Errorf("directory has no entries: %w", ErrFormat)
	}

	root := d.Entries[0]
	if root.ObjType != OBJ_TYPE_ROOT {
		return fmt.Errorf("first directory entry has object type %v, expected root: %w",
			root.ObjType, ErrFormat)
	}

	return nil
}

// RootEntry returns the root storage entry, the first record of the stream,
// or nil for an empty directory.
func (d *Directory) RootEntry() *DirEntry {
	if len(d.Entries) == 0 {
		return nil
	}
	return d.Entries[0]
}

// IsExcel reports whether the directory names a legacy Excel workbook
// stream.
func (d *Directory) IsExcel() bool {
	for _, entry := range d.Entries {
		if entry.Name == "Book" || entry.Name == "Workbook" {
			return true
		}
	}
	return false
}
