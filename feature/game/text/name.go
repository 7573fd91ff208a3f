package text

import (
	"fmt"
	"strings"
)

// Name identifies a logical text file.
type Name int

const (
	Species Name = iota
	Moves
	Items
	Abilities
	Natures
	Types
)

var names = map[Name]string{
	Species:   "species",
	Moves:     "moves",
	Items:     "items",
	Abilities: "abilities",
	Natures:   "natures",
	Types:     "types",
}

// Names returns every text name in declaration order.
func Names() []Name {
	return []Name{Species, Moves, Items, Abilities, Natures, Types}
}

func (n Name) String() string {
	if s, ok := names[n]; ok {
		return s
	}
	return fmt.Sprintf("text(%d)", int(n))
}

// ParseName returns the Name for its String form.
func ParseName(s string) (Name, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for n, str := range names {
		if str == s {
			return n, nil
		}
	}
	return 0, fmt.Errorf("unknown text name %q", s)
}
