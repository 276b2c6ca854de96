package compoundfile

// ========================================================================= //

const (
	HEADER_LEN                  int = 512 // length of CFB file header, in bytes
	DIR_ENTRY_LEN               int = 128 // length of directory entry, in bytes
	NUM_DIFAT_ENTRIES_IN_HEADER int = 109
)

// Constants for CFB file header values:
var MAGIC_NUMBER = []byte{0xd0, 0xcf, 0x11, 0xe0, 0xa1, 0xb1, 0x1a, 0xe1}

const BYTE_ORDER_MARK uint16 = 0xfffe

// Fixed byte offsets of the header fields this parser reads:
const (
	BYTE_ORDER_OFFSET       int = 28
	SECTOR_SHIFT_OFFSET     int = 30
	NUM_FAT_SECTS_OFFSET    int = 44
	FIRST_DIR_SECT_OFFSET   int = 48
	FIRST_DIFAT_SECT_OFFSET int = 68
	NUM_DIFAT_SECTS_OFFSET  int = 72
	HEADER_DIFAT_OFFSET     int = 76
	HEADER_DIFAT_SIZE       int = NUM_DIFAT_ENTRIES_IN_HEADER * 4
)

// Sentinel sector ids. Stored on disk as 32-bit little-endian values; read
// back signed, the four reserved values come out as small negatives. Any
// other negative value is invalid.
const (
	FREE_SECTOR  int32 = -1 // unallocated sector
	END_OF_CHAIN int32 = -2 // terminates a sector chain
	FAT_SECTOR   int32 = -3 // sector holds FAT data
	DIFAT_SECTOR int32 = -4 // sector holds DIFAT data
)

// Constants for directory entries:
const (
	ROOT_DIR_NAME               = "Root Entry"
	OBJ_TYPE_UNALLOCATED  uint8 = 0
	OBJ_TYPE_STORAGE      uint8 = 1
	OBJ_TYPE_STREAM       uint8 = 2
	OBJ_TYPE_ROOT         uint8 = 5
	COLOR_RED             uint8 = 0
	COLOR_BLACK           uint8 = 1
	NO_STREAM             int32 = -1
)
