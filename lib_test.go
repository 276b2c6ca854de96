package compoundfile

import (
	"bytes"
	"errors"
	"testing"
)

// freeFatSector returns one 512-byte FAT sector with every entry FREE_SECTOR.
func freeFatSector() []byte {
	return bytes.Repeat([]byte{0xff, 0xff, 0xff, 0xff}, 128)
}

// minimalContainer crafts the smallest useful version 3 container: the
// header, one FAT sector at sector 0, and one directory sector at sector 1
// holding a single root entry.
func minimalContainer() []byte {
	header := buildHeader(1, 1, 0xffffffff, 0, []uint32{0})

	fat := freeFatSector()
	putU32(fat, 0, 0xfffffffd) // sector 0 holds the FAT itself
	putU32(fat, 4, 0xfffffffe) // directory chain ends at sector 1

	dir := make([]byte, 512)
	copy(dir, buildDirEntryRecord(ROOT_DIR_NAME, OBJ_TYPE_ROOT, COLOR_BLACK,
		0xffffffff, 0xffffffff, 0xffffffff, 0xfffffffe, 0))

	data := append(header, fat...)
	return append(data, dir...)
}

func TestParseMinimalContainer(t *testing.T) {
	for _, validation := range []Validation{ValidationPermissive, ValidationStrict} {
		cfb, err := Parse(minimalContainer(), validation)
		if err != nil {
			t.Fatalf("Parse() error = %v", err)
		}

		entries := cfb.Entries()
		if len(entries) != 1 {
			t.Fatalf("got %v entries, want 1", len(entries))
		}
		if entries[0].Name != ROOT_DIR_NAME {
			t.Errorf("Name = %q, want %q", entries[0].Name, ROOT_DIR_NAME)
		}
		if entries[0].ObjType != OBJ_TYPE_ROOT {
			t.Errorf("ObjType = %v, want %v", entries[0].ObjType, OBJ_TYPE_ROOT)
		}
		if cfb.RootEntry() == nil || cfb.RootEntry().Name != ROOT_DIR_NAME {
			t.Errorf("RootEntry() = %+v", cfb.RootEntry())
		}
		if len(cfb.Fat.Entries) != 128 {
			t.Errorf("FAT has %v entries, want 128", len(cfb.Fat.Entries))
		}
	}
}

func TestParseMultipleEntries(t *testing.T) {
	data := minimalContainer()
	dirSector := data[1024:]
	copy(dirSector[DIR_ENTRY_LEN:], buildDirEntryRecord("Workbook", OBJ_TYPE_STREAM, COLOR_BLACK,
		0xffffffff, 0xffffffff, 0xffffffff, 2, 800))

	cfb, err := Parse(data, ValidationPermissive)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	entries := cfb.Entries()
	if len(entries) != 2 {
		t.Fatalf("got %v entries, want 2", len(entries))
	}
	if entries[1].Name != "Workbook" || entries[1].StreamSize != 800 {
		t.Errorf("entry 1 = %+v", entries[1])
	}
	if !cfb.Directory.IsExcel() {
		t.Errorf("IsExcel() = false, want true")
	}
}

func TestParseFatCountMismatch(t *testing.T) {
	data := minimalContainer()
	// Header declares two FAT sectors, DIFAT only names one.
	putU32(data, NUM_FAT_SECTS_OFFSET, 2)

	if _, err := Parse(data, ValidationPermissive); !errors.Is(err, ErrConsistency) {
		t.Errorf("Parse() error = %v, want %v", err, ErrConsistency)
	}
}

func TestParseDirectoryChainLoop(t *testing.T) {
	data := minimalContainer()
	// Sector 1 points back at itself.
	putU32(data, 512+4, 1)

	if _, err := Parse(data, ValidationPermissive); !errors.Is(err, ErrChainLoop) {
		t.Errorf("Parse() error = %v, want %v", err, ErrChainLoop)
	}
}

func TestParseDirectorySectorOutOfBounds(t *testing.T) {
	data := minimalContainer()
	putU32(data, FIRST_DIR_SECT_OFFSET, 100)

	err := parseFails(t, data)
	if !errors.Is(err, ErrFormat) {
		t.Errorf("Parse() error = %v, want %v", err, ErrFormat)
	}
	if errors.Is(err, ErrConsistency) || errors.Is(err, ErrChainLoop) {
		t.Errorf("Parse() error = %v, wrong error kind", err)
	}
}

func parseFails(t *testing.T, data []byte) error {
	t.Helper()
	_, err := Parse(data, ValidationPermissive)
	if err == nil {
		t.Fatal("Parse() succeeded, want error")
	}
	return err
}

func TestParseDirectoryChainHitsWrongSentinel(t *testing.T) {
	data := minimalContainer()
	// Directory chain runs into a FREESECT entry instead of ENDOFCHAIN.
	putU32(data, 512+4, 0xffffffff)

	err := parseFails(t, data)
	if !errors.Is(err, ErrFormat) {
		t.Errorf("Parse() error = %v, want %v", err, ErrFormat)
	}
}

func TestParseFatWithUnknownSentinel(t *testing.T) {
	data := minimalContainer()
	// 0xfffffffb is not one of the four reserved sentinels.
	putU32(data, 512+8, 0xfffffffb)

	err := parseFails(t, data)
	if !errors.Is(err, ErrUnknownSentinel) {
		t.Errorf("Parse() error = %v, want %v", err, ErrUnknownSentinel)
	}
}

func TestParseDifatPaddingStrictness(t *testing.T) {
	data := minimalContainer()
	// Entry 1 terminates the DIFAT table; entry 2 is garbage padding. The
	// permissive mode keeps the original tool's behavior and ignores it.
	putU32(data, HEADER_DIFAT_OFFSET+4, 0xfffffffe)
	putU32(data, HEADER_DIFAT_OFFSET+8, 5)

	if _, err := Parse(data, ValidationPermissive); err != nil {
		t.Errorf("Parse(permissive) error = %v", err)
	}
	if _, err := Parse(data, ValidationStrict); !errors.Is(err, ErrFormat) {
		t.Errorf("Parse(strict) error = %v, want %v", err, ErrFormat)
	}
}

// extensionContainer crafts a container large enough to need one DIFAT
// extension sector: sector 0 holds the DIFAT extension, sectors 1..110 are
// the 110 FAT sectors, sector 111 is the directory.
func extensionContainer() []byte {
	embedded := make([]uint32, NUM_DIFAT_ENTRIES_IN_HEADER)
	for i := range embedded {
		embedded[i] = uint32(i + 1)
	}
	header := buildHeader(110, 111, 0, 1, embedded)

	sectors := bytes.Repeat([]byte{0xff}, 112*512)

	// DIFAT extension: one more FAT sector id, then FREESECT padding, with
	// the chain terminator in the last 4 bytes.
	putU32(sectors, 0, 110)
	putU32(sectors, 508, 0xfffffffe)

	// First FAT sector covers sector indices 0..127.
	fat := sectors[512:1024]
	putU32(fat, 0, 0xfffffffc) // DIFAT extension sector
	for i := 1; i <= 110; i++ {
		putU32(fat, i*4, 0xfffffffd)
	}
	putU32(fat, 111*4, 0xfffffffe) // directory chain ends

	dir := sectors[111*512 : 112*512]
	for i := range dir {
		dir[i] = 0
	}
	copy(dir, buildDirEntryRecord(ROOT_DIR_NAME, OBJ_TYPE_ROOT, COLOR_BLACK,
		0xffffffff, 0xffffffff, 0xffffffff, 0xfffffffe, 0))

	return append(header, sectors...)
}

func TestParseWithDifatExtensionSector(t *testing.T) {
	cfb, err := Parse(extensionContainer(), ValidationPermissive)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if len(cfb.Fat.Entries) != 110*128 {
		t.Errorf("FAT has %v entries, want %v", len(cfb.Fat.Entries), 110*128)
	}

	entries := cfb.Entries()
	if len(entries) != 1 || entries[0].Name != ROOT_DIR_NAME {
		t.Errorf("entries = %+v, want single root entry", entries)
	}
}

func TestParseDifatChainTooShort(t *testing.T) {
	data := extensionContainer()
	// Header claims two extension sectors but the chain ends after one.
	putU32(data, NUM_DIFAT_SECTS_OFFSET, 2)

	err := parseFails(t, data)
	if !errors.Is(err, ErrFormat) {
		t.Errorf("Parse() error = %v, want %v", err, ErrFormat)
	}
}

func TestParseStrictRejectsNonRootFirstEntry(t *testing.T) {
	data := minimalContainer()
	data[1024+dirEntryObjTypeOff] = OBJ_TYPE_STORAGE

	if _, err := Parse(data, ValidationPermissive); err != nil {
		t.Errorf("Parse(permissive) error = %v", err)
	}
	if _, err := Parse(data, ValidationStrict); !errors.Is(err, ErrFormat) {
		t.Errorf("Parse(strict) error = %v, want %v", err, ErrFormat)
	}
}
