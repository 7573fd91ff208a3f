package structures

import (
	"encoding/binary"
	"fmt"
)

const learnsetTerminator = 0xFFFF

// LearnsetEntry is a move learned on level up.
type LearnsetEntry struct {
	Move  uint16
	Level uint16
}

// Learnset lists the level-up moves of one species form, in file order.
type Learnset struct {
	Entries []LearnsetEntry
}

// ReadLearnset decodes move/level pairs up to the 0xFFFF terminator.
func ReadLearnset(data []byte) (*Learnset, error) {
	if len(data)%4 != 0 {
		return nil, fmt.Errorf("learnset is %d bytes, not a multiple of 4", len(data))
	}

	l := &Learnset{Entries: []LearnsetEntry{}}
	for off := 0; off < len(data); off += 4 {
		move := binary.LittleEndian.Uint16(data[off:])
		if move == learnsetTerminator {
			break
		}
		l.Entries = append(l.Entries, LearnsetEntry{
			Move:  move,
			Level: binary.LittleEndian.Uint16(data[off+2:]),
		})
	}
	return l, nil
}

// WriteLearnset encodes the entries followed by a terminator pair.
func WriteLearnset(l *Learnset) ([]byte, error) {
	out := make([]byte, (len(l.Entries)+1)*4)
	for i, e := range l.Entries {
		if e.Move == learnsetTerminator {
			return nil, fmt.Errorf("entry %d uses reserved move id 0x%X", i, e.Move)
		}
		binary.LittleEndian.PutUint16(out[i*4:], e.Move)
		binary.LittleEndian.PutUint16(out[i*4+2:], e.Level)
	}
	end := len(l.Entries) * 4
	binary.LittleEndian.PutUint16(out[end:], learnsetTerminator)
	binary.LittleEndian.PutUint16(out[end+2:], learnsetTerminator)
	return out, nil
}

// MovesAtLevel returns the moves learned exactly at level.
func (l *Learnset) MovesAtLevel(level uint16) []uint16 {
	var moves []uint16
	for _, e := range l.Entries {
		if e.Level == level {
			moves = append(moves, e.Move)
		}
	}
	return moves
}

// MovesUpTo returns the moves learned at or below level, in file order.
func (l *Learnset) MovesUpTo(level uint16) []uint16 {
	var moves []uint16
	for _, e := range l.Entries {
		if e.Level <= level {
			moves = append(moves, e.Move)
		}
	}
	return moves
}
