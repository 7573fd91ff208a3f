package structures

import (
	"encoding/binary"
	"fmt"
)

const (
	// EvolutionSlots is the number of evolution methods per species form.
	EvolutionSlots = 8
	evolutionSize  = 8
	// EvolutionSetSize is the size of one evolution file.
	EvolutionSetSize = EvolutionSlots * evolutionSize
)

// EvolutionMethod is one way a species form evolves. Method 0 is an empty slot.
type EvolutionMethod struct {
	Method   uint16
	Argument uint16
	Species  uint16
	Form     int8
	Level    uint8
}

// EvolutionSet holds every evolution slot of one species form.
type EvolutionSet struct {
	Methods [EvolutionSlots]EvolutionMethod
}

// ReadEvolutionSet decodes an evolution file.
func ReadEvolutionSet(data []byte) (*EvolutionSet, error) {
	if len(data) != EvolutionSetSize {
		return nil, fmt.Errorf("evolution set is %d bytes, want %d", len(data), EvolutionSetSize)
	}

	set := &EvolutionSet{}
	for i := range set.Methods {
		off := i * evolutionSize
		set.Methods[i] = EvolutionMethod{
			Method:   binary.LittleEndian.Uint16(data[off:]),
			Argument: binary.LittleEndian.Uint16(data[off+2:]),
			Species:  binary.LittleEndian.Uint16(data[off+4:]),
			Form:     int8(data[off+6]),
			Level:    data[off+7],
		}
	}
	return set, nil
}

// WriteEvolutionSet encodes an evolution file.
func WriteEvolutionSet(set *EvolutionSet) ([]byte, error) {
	out := make([]byte, EvolutionSetSize)
	for i, m := range set.Methods {
		off := i * evolutionSize
		binary.LittleEndian.PutUint16(out[off:], m.Method)
		binary.LittleEndian.PutUint16(out[off+2:], m.Argument)
		binary.LittleEndian.PutUint16(out[off+4:], m.Species)
		out[off+6] = byte(m.Form)
		out[off+7] = m.Level
	}
	return out, nil
}

// Active returns the non-empty slots.
func (s *EvolutionSet) Active() []EvolutionMethod {
	var out []EvolutionMethod
	for _, m := range s.Methods {
		if m.Method != 0 {
			out = append(out, m)
		}
	}
	return out
}
