package game

import (
	"fmt"
	"strings"
)

// Version identifies the loaded title.
type Version string

const (
	// GG is Let's Go, Pikachu! / Let's Go, Eevee!
	GG Version = "gg"
	// SWSH is Sword / Shield.
	SWSH Version = "swsh"
)

func (v Version) String() string {
	return string(v)
}

// Valid reports whether the version has a file map.
func (v Version) Valid() bool {
	_, ok := versions[v]
	return ok
}

// ParseVersion returns the Version for a tag such as "gg" or "SWSH".
func ParseVersion(s string) (Version, error) {
	v := Version(strings.ToLower(strings.TrimSpace(s)))
	if !v.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownVersion, s)
	}
	return v, nil
}

// Location is where an install lives and which title it is.
type Location struct {
	// RomFS is the root of the data filesystem.
	RomFS string
	// ExeFS is the root of the code filesystem. Optional.
	ExeFS string
	// Version is the installed title.
	Version Version
}

// Validate checks the location can back a session.
func (l Location) Validate() error {
	if !l.Version.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownVersion, l.Version)
	}
	if l.RomFS == "" {
		return fmt.Errorf("romfs path required")
	}
	return nil
}
