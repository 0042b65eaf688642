package mo

import (
	"encoding/binary"
	"fmt"

	"friendly/internal/domain"
)

// Layout describes the fixed 28-byte prefix of a GNU MO file.
type Layout struct {
	BigEndian  bool
	Revision   uint32
	Count      uint32
	OrigTable  uint32
	TransTable uint32
	HashSize   uint32
	HashTable  uint32
}

// Inspect reads the MO header and checks that every table and string it
// points at lies inside data, so the decoder never reads past the buffer.
func Inspect(data []byte) (Layout, error) {
	var l Layout
	if len(data) < 28 {
		return l, fmt.Errorf("%w: %d bytes is shorter than the MO header", domain.ErrCatalogMalformed, len(data))
	}

	var bo binary.ByteOrder
	switch magic := binary.LittleEndian.Uint32(data); magic {
	case MagicLittleEndian:
		bo = binary.LittleEndian
	case MagicBigEndian:
		bo = binary.BigEndian
		l.BigEndian = true
	default:
		return l, fmt.Errorf("%w: bad magic number %#x", domain.ErrCatalogMalformed, magic)
	}

	l.Revision = bo.Uint32(data[4:])
	l.Count = bo.Uint32(data[8:])
	l.OrigTable = bo.Uint32(data[12:])
	l.TransTable = bo.Uint32(data[16:])
	l.HashSize = bo.Uint32(data[20:])
	l.HashTable = bo.Uint32(data[24:])
	if major := l.Revision >> 16; major > 1 {
		return l, fmt.Errorf("%w: unsupported revision %d", domain.ErrCatalogMalformed, major)
	}

	size := uint64(len(data))
	tableLen := uint64(l.Count) * 8
	if uint64(l.OrigTable)+tableLen > size || uint64(l.TransTable)+tableLen > size {
		return l, fmt.Errorf("%w: string tables for %d messages exceed file size %d", domain.ErrCatalogMalformed, l.Count, size)
	}
	if l.HashSize > 0 && uint64(l.HashTable)+uint64(l.HashSize)*4 > size {
		return l, fmt.Errorf("%w: hash table exceeds file size %d", domain.ErrCatalogMalformed, size)
	}

	for _, table := range []uint32{l.OrigTable, l.TransTable} {
		for i := uint64(0); i < uint64(l.Count); i++ {
			desc := uint64(table) + i*8
			length := uint64(bo.Uint32(data[desc:]))
			offset := uint64(bo.Uint32(data[desc+4:]))
			// Every string is followed by a NUL byte.
			if offset+length >= size {
				return l, fmt.Errorf("%w: string %d at offset %d exceeds file size %d", domain.ErrCatalogMalformed, i, offset, size)
			}
		}
	}
	return l, nil
}
