package structures

import (
	"encoding/binary"
	"fmt"
)

// PersonalInfoSize is the size of one personal entry.
const PersonalInfoSize = 0x54

// PersonalInfo holds the species-level stats of one species form.
type PersonalInfo struct {
	HP, ATK, DEF, SPE, SPA, SPD uint8

	Type1, Type2   uint8
	CatchRate      uint8
	EvoStage       uint8
	EVYield        uint16
	Items          [3]uint16
	Gender         uint8
	HatchCycles    uint8
	BaseFriendship uint8
	EXPGrowth      uint8
	EggGroups      [2]uint8
	Abilities      [3]uint16
	FormStatsIndex uint16
	FormCount      uint8
	Color          uint8
	BaseEXP        uint16
	Height         uint16
	Weight         uint16

	raw []byte
}

// BST returns the base stat total.
func (p *PersonalInfo) BST() int {
	return int(p.HP) + int(p.ATK) + int(p.DEF) + int(p.SPE) + int(p.SPA) + int(p.SPD)
}

func readPersonalInfo(data []byte) *PersonalInfo {
	p := &PersonalInfo{
		HP:             data[0x00],
		ATK:            data[0x01],
		DEF:            data[0x02],
		SPE:            data[0x03],
		SPA:            data[0x04],
		SPD:            data[0x05],
		Type1:          data[0x06],
		Type2:          data[0x07],
		CatchRate:      data[0x08],
		EvoStage:       data[0x09],
		EVYield:        binary.LittleEndian.Uint16(data[0x0A:]),
		Gender:         data[0x12],
		HatchCycles:    data[0x13],
		BaseFriendship: data[0x14],
		EXPGrowth:      data[0x15],
		FormStatsIndex: binary.LittleEndian.Uint16(data[0x1E:]),
		FormCount:      data[0x20],
		Color:          data[0x21],
		BaseEXP:        binary.LittleEndian.Uint16(data[0x22:]),
		Height:         binary.LittleEndian.Uint16(data[0x24:]),
		Weight:         binary.LittleEndian.Uint16(data[0x26:]),
		raw:            clone(data),
	}
	for i := 0; i < 3; i++ {
		p.Items[i] = binary.LittleEndian.Uint16(data[0x0C+i*2:])
		p.Abilities[i] = binary.LittleEndian.Uint16(data[0x18+i*2:])
	}
	p.EggGroups[0] = data[0x16]
	p.EggGroups[1] = data[0x17]
	return p
}

func writePersonalInfo(p *PersonalInfo, out []byte) {
	copy(out, base(p.raw, PersonalInfoSize))
	out[0x00] = p.HP
	out[0x01] = p.ATK
	out[0x02] = p.DEF
	out[0x03] = p.SPE
	out[0x04] = p.SPA
	out[0x05] = p.SPD
	out[0x06] = p.Type1
	out[0x07] = p.Type2
	out[0x08] = p.CatchRate
	out[0x09] = p.EvoStage
	binary.LittleEndian.PutUint16(out[0x0A:], p.EVYield)
	for i := 0; i < 3; i++ {
		binary.LittleEndian.PutUint16(out[0x0C+i*2:], p.Items[i])
		binary.LittleEndian.PutUint16(out[0x18+i*2:], p.Abilities[i])
	}
	out[0x12] = p.Gender
	out[0x13] = p.HatchCycles
	out[0x14] = p.BaseFriendship
	out[0x15] = p.EXPGrowth
	out[0x16] = p.EggGroups[0]
	out[0x17] = p.EggGroups[1]
	binary.LittleEndian.PutUint16(out[0x1E:], p.FormStatsIndex)
	out[0x20] = p.FormCount
	out[0x21] = p.Color
	binary.LittleEndian.PutUint16(out[0x22:], p.BaseEXP)
	binary.LittleEndian.PutUint16(out[0x24:], p.Height)
	binary.LittleEndian.PutUint16(out[0x26:], p.Weight)
}

// PersonalTable is the full personal file: one entry per species, followed by
// the alternate form entries.
type PersonalTable struct {
	Entries []*PersonalInfo
}

// ReadPersonalTable decodes a personal_total file.
func ReadPersonalTable(data []byte) (*PersonalTable, error) {
	if len(data) == 0 || len(data)%PersonalInfoSize != 0 {
		return nil, fmt.Errorf("personal table is %d bytes, not a multiple of %d", len(data), PersonalInfoSize)
	}

	t := &PersonalTable{Entries: make([]*PersonalInfo, len(data)/PersonalInfoSize)}
	for i := range t.Entries {
		off := i * PersonalInfoSize
		t.Entries[i] = readPersonalInfo(data[off : off+PersonalInfoSize])
	}
	return t, nil
}

// WritePersonalTable encodes a personal_total file.
func WritePersonalTable(t *PersonalTable) ([]byte, error) {
	out := make([]byte, len(t.Entries)*PersonalInfoSize)
	for i, p := range t.Entries {
		off := i * PersonalInfoSize
		writePersonalInfo(p, out[off:off+PersonalInfoSize])
	}
	return out, nil
}

// Len returns the number of entries, forms included.
func (t *PersonalTable) Len() int {
	return len(t.Entries)
}

// Index returns the entry index for species and form. Forms without their
// own entry fall back to the base species entry.
func (t *PersonalTable) Index(species, form int) (int, error) {
	if species < 0 || species >= len(t.Entries) {
		return -1, fmt.Errorf("species %d not in table of %d entries", species, len(t.Entries))
	}
	if form <= 0 {
		return species, nil
	}

	p := t.Entries[species]
	if form >= int(p.FormCount) || p.FormStatsIndex == 0 {
		return species, nil
	}

	idx := int(p.FormStatsIndex) + form - 1
	if idx >= len(t.Entries) {
		return -1, fmt.Errorf("form %d of species %d points past the table (%d)", form, species, idx)
	}
	return idx, nil
}

// Get returns the entry for species and form.
func (t *PersonalTable) Get(species, form int) (*PersonalInfo, error) {
	idx, err := t.Index(species, form)
	if err != nil {
		return nil, err
	}
	return t.Entries[idx], nil
}
