package text

import (
	"encoding/binary"
	"errors"
	"fmt"

	"golang.org/x/text/encoding/unicode"
)

const (
	headerSize = 2
	entrySize  = 6
)

// ErrMalformedTable is returned when line table bytes cannot be decoded.
var ErrMalformedTable = errors.New("malformed line table")

var utf16le = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// Decode returns the lines of a line table.
func Decode(data []byte) ([]string, error) {
	if len(data) < headerSize {
		return nil, fmt.Errorf("%w: %d bytes is shorter than the header", ErrMalformedTable, len(data))
	}

	count := int(binary.LittleEndian.Uint16(data))
	tableEnd := headerSize + count*entrySize
	if len(data) < tableEnd {
		return nil, fmt.Errorf("%w: entry table for %d lines is truncated", ErrMalformedTable, count)
	}

	decoder := utf16le.NewDecoder()
	lines := make([]string, count)
	for i := range lines {
		entry := data[headerSize+i*entrySize:]
		offset := int(binary.LittleEndian.Uint32(entry))
		length := int(binary.LittleEndian.Uint16(entry[4:])) * 2

		if offset < tableEnd || offset+length > len(data) {
			return nil, fmt.Errorf("%w: line %d spans %d..%d", ErrMalformedTable, i, offset, offset+length)
		}

		decoded, err := decoder.Bytes(data[offset : offset+length])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i, err)
		}
		lines[i] = string(decoded)
	}
	return lines, nil
}

// Encode builds a line table from lines.
func Encode(lines []string) ([]byte, error) {
	if len(lines) > 0xFFFF {
		return nil, fmt.Errorf("line table holds %d lines, max is %d", len(lines), 0xFFFF)
	}

	encoder := utf16le.NewEncoder()
	tableEnd := headerSize + len(lines)*entrySize
	out := make([]byte, tableEnd)
	binary.LittleEndian.PutUint16(out, uint16(len(lines)))

	for i, line := range lines {
		encoded, err := encoder.Bytes([]byte(line))
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i, err)
		}
		if len(encoded)/2 > 0xFFFF {
			return nil, fmt.Errorf("line %d is too long", i)
		}

		entry := out[headerSize+i*entrySize:]
		binary.LittleEndian.PutUint32(entry, uint32(len(out)))
		binary.LittleEndian.PutUint16(entry[4:], uint16(len(encoded)/2))
		out = append(out, encoded...)
	}
	return out, nil
}
