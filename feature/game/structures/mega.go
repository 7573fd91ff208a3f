package structures

import (
	"encoding/binary"
	"fmt"
)

// MegaEvolutionSetSize is the size of one mega evolution record.
const MegaEvolutionSetSize = 8

// MegaEvolutionSet describes how one form mega evolves.
type MegaEvolutionSet struct {
	Form     uint16
	Method   uint16
	Argument uint16
	Unused   uint16
}

// ReadMegaEvolutionSets decodes every record in a species' mega evolution file.
func ReadMegaEvolutionSets(data []byte) ([]*MegaEvolutionSet, error) {
	if len(data)%MegaEvolutionSetSize != 0 {
		return nil, fmt.Errorf("mega evolution file is %d bytes, not a multiple of %d", len(data), MegaEvolutionSetSize)
	}

	sets := make([]*MegaEvolutionSet, len(data)/MegaEvolutionSetSize)
	for i := range sets {
		off := i * MegaEvolutionSetSize
		sets[i] = &MegaEvolutionSet{
			Form:     binary.LittleEndian.Uint16(data[off:]),
			Method:   binary.LittleEndian.Uint16(data[off+2:]),
			Argument: binary.LittleEndian.Uint16(data[off+4:]),
			Unused:   binary.LittleEndian.Uint16(data[off+6:]),
		}
	}
	return sets, nil
}

// WriteMegaEvolutionSets encodes a species' mega evolution file.
func WriteMegaEvolutionSets(sets []*MegaEvolutionSet) ([]byte, error) {
	out := make([]byte, len(sets)*MegaEvolutionSetSize)
	for i, s := range sets {
		off := i * MegaEvolutionSetSize
		binary.LittleEndian.PutUint16(out[off:], s.Form)
		binary.LittleEndian.PutUint16(out[off+2:], s.Method)
		binary.LittleEndian.PutUint16(out[off+4:], s.Argument)
		binary.LittleEndian.PutUint16(out[off+6:], s.Unused)
	}
	return out, nil
}
