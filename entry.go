package compoundfile

import (
	"github.com/google/uuid"
)

// Entry is the consumer-facing view of a directory entry, shaped for
// serialization with stable field names.
type Entry struct {
	Name           string    `json:"name_decoded"`
	NameLen        uint16    `json:"name_length"`
	ObjType        uint8     `json:"object_type"`
	ColorFlag      uint8     `json:"color_flag"`
	LeftSibling    int32     `json:"left_sibling"`
	RightSibling   int32     `json:"right_sibling"`
	Child          int32     `json:"child_id"`
	CLSID          uuid.UUID `json:"clsid"`
	StateBits      uint32    `json:"state"`
	CreationTime   uint64    `json:"creation_time"`
	ModifiedTime   uint64    `json:"modification_time"`
	StartingSector uint32    `json:"starting_sector"`
	StreamSize     uint64    `json:"stream_size"`
}

func NewEntry(dirEntry *DirEntry) *Entry {
	entry := Entry{
		Name:           dirEntry.Name,
		NameLen:        dirEntry.NameLen,
		ObjType:        dirEntry.ObjType,
		ColorFlag:      dirEntry.ColorFlag,
		LeftSibling:    dirEntry.LeftSibling,
		RightSibling:   dirEntry.RightSibling,
		Child:          dirEntry.Child,
		CLSID:          uuid.UUID(dirEntry.CLSID),
		StateBits:      dirEntry.StateBits,
		CreationTime:   dirEntry.CreationTime,
		ModifiedTime:   dirEntry.ModifiedTime,
		StartingSector: dirEntry.StartingSector,
		StreamSize:     dirEntry.StreamSize,
	}

	return &entry
}
