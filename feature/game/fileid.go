package game

import (
	"fmt"
	"strings"
)

// FileID identifies a logical game resource.
type FileID int

const (
	GameText FileID = iota
	StoryText
	MoveStats
	Learnsets
	PersonalStats
	MegaEvolutions
	Evolutions
	MainExecutable
)

var fileIDNames = map[FileID]string{
	GameText:       "game_text",
	StoryText:      "story_text",
	MoveStats:      "move_stats",
	Learnsets:      "learnsets",
	PersonalStats:  "personal_stats",
	MegaEvolutions: "mega_evolutions",
	Evolutions:     "evolutions",
	MainExecutable: "main_executable",
}

// FileIDs returns every identifier in declaration order.
func FileIDs() []FileID {
	return []FileID{GameText, StoryText, MoveStats, Learnsets, PersonalStats, MegaEvolutions, Evolutions, MainExecutable}
}

func (id FileID) String() string {
	if s, ok := fileIDNames[id]; ok {
		return s
	}
	return fmt.Sprintf("file(%d)", int(id))
}

// ParseFileID returns the FileID for its String form.
func ParseFileID(s string) (FileID, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for id, name := range fileIDNames {
		if name == s {
			return id, nil
		}
	}
	return 0, fmt.Errorf("unknown file identifier %q", s)
}

// MarshalText encodes the identifier by name.
func (id FileID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText decodes an identifier name.
func (id *FileID) UnmarshalText(b []byte) error {
	parsed, err := ParseFileID(string(b))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
