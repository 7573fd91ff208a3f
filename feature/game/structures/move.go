package structures

import (
	"encoding/binary"
	"fmt"
)

// MoveSize is the size of one move record.
const MoveSize = 0x24

// Move is one move's battle stats.
type Move struct {
	Type           uint8
	Quality        uint8
	Category       uint8
	Power          uint8
	Accuracy       uint8
	PP             uint8
	Priority       int8
	HitMin         uint8
	HitMax         uint8
	Inflict        uint16
	InflictPercent uint8
	InflictCount   uint8
	TurnMin        uint8
	TurnMax        uint8
	CritStage      uint8
	Flinch         uint8
	EffectSequence uint16
	Recoil         int8
	Healing        uint8
	Target         uint8
	Stats          [3]uint8
	StatStages     [3]int8
	StatPercents   [3]uint8
	Flags          uint32

	raw []byte
}

// ReadMove decodes a move record.
func ReadMove(data []byte) (*Move, error) {
	if len(data) != MoveSize {
		return nil, fmt.Errorf("move record is %d bytes, want %d", len(data), MoveSize)
	}

	m := &Move{
		Type:           data[0x00],
		Quality:        data[0x01],
		Category:       data[0x02],
		Power:          data[0x03],
		Accuracy:       data[0x04],
		PP:             data[0x05],
		Priority:       int8(data[0x06]),
		HitMin:         data[0x07] & 0x0F,
		HitMax:         data[0x07] >> 4,
		Inflict:        binary.LittleEndian.Uint16(data[0x08:]),
		InflictPercent: data[0x0A],
		InflictCount:   data[0x0B],
		TurnMin:        data[0x0C],
		TurnMax:        data[0x0D],
		CritStage:      data[0x0E],
		Flinch:         data[0x0F],
		EffectSequence: binary.LittleEndian.Uint16(data[0x10:]),
		Recoil:         int8(data[0x12]),
		Healing:        data[0x13],
		Target:         data[0x14],
		Flags:          binary.LittleEndian.Uint32(data[0x20:]),
		raw:            clone(data),
	}
	for i := 0; i < 3; i++ {
		m.Stats[i] = data[0x15+i]
		m.StatStages[i] = int8(data[0x18+i])
		m.StatPercents[i] = data[0x1B+i]
	}
	return m, nil
}

// WriteMove encodes a move record.
func WriteMove(m *Move) ([]byte, error) {
	if m.HitMin > 0x0F || m.HitMax > 0x0F {
		return nil, fmt.Errorf("hit counts %d..%d do not fit in a nibble", m.HitMin, m.HitMax)
	}

	out := base(m.raw, MoveSize)
	out[0x00] = m.Type
	out[0x01] = m.Quality
	out[0x02] = m.Category
	out[0x03] = m.Power
	out[0x04] = m.Accuracy
	out[0x05] = m.PP
	out[0x06] = byte(m.Priority)
	out[0x07] = m.HitMin | m.HitMax<<4
	binary.LittleEndian.PutUint16(out[0x08:], m.Inflict)
	out[0x0A] = m.InflictPercent
	out[0x0B] = m.InflictCount
	out[0x0C] = m.TurnMin
	out[0x0D] = m.TurnMax
	out[0x0E] = m.CritStage
	out[0x0F] = m.Flinch
	binary.LittleEndian.PutUint16(out[0x10:], m.EffectSequence)
	out[0x12] = byte(m.Recoil)
	out[0x13] = m.Healing
	out[0x14] = m.Target
	for i := 0; i < 3; i++ {
		out[0x15+i] = m.Stats[i]
		out[0x18+i] = byte(m.StatStages[i])
		out[0x1B+i] = m.StatPercents[i]
	}
	binary.LittleEndian.PutUint32(out[0x20:], m.Flags)
	return out, nil
}

// clone copies data so records never alias container memory.
func clone(data []byte) []byte {
	out := make([]byte, len(data))
	copy(out, data)
	return out
}

// base returns a copy of raw, or a zeroed record of size when raw is unset.
func base(raw []byte, size int) []byte {
	if len(raw) == size {
		return clone(raw)
	}
	return make([]byte, size)
}
