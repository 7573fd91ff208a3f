package game

import (
	"strings"

	"gamedata-manager/core/container"
	"gamedata-manager/feature/game/text"
)

type fsRoot int

const (
	romFS fsRoot = iota
	exeFS
)

func (r fsRoot) String() string {
	if r == exeFS {
		return "exefs"
	}
	return "romfs"
}

type fileKind int

const (
	kindSingle fileKind = iota
	kindPack
	kindFolder
)

func (k fileKind) String() string {
	switch k {
	case kindPack:
		return "pack"
	case kindFolder:
		return "folder"
	default:
		return "single"
	}
}

const langPlaceholder = "{lang}"

// fileRef locates one FileID inside an install.
type fileRef struct {
	root fsRoot
	path string
	kind fileKind
}

func (r fileRef) localized() bool {
	return strings.Contains(r.path, langPlaceholder)
}

func (r fileRef) resolve(language string) string {
	return strings.ReplaceAll(r.path, langPlaceholder, language)
}

// versionEntry is everything resolution needs to know about one title.
type versionEntry struct {
	files      map[FileID]fileRef
	languages  []string
	textFilter container.Filter
	text       map[text.Name]string
	info       Info
}

var switchLanguages = []string{
	"JPN", "JPN_KANJI", "English", "French", "Italian", "German", "Spanish", "Korean", "Simp_Chinese", "Trad_Chinese",
}

var versions = map[Version]versionEntry{
	GG: {
		files: map[FileID]fileRef{
			GameText:       {root: romFS, path: "bin/message/{lang}/common", kind: kindFolder},
			StoryText:      {root: romFS, path: "bin/message/{lang}/script", kind: kindFolder},
			MoveStats:      {root: romFS, path: "bin/pokelib/waza/waza_data.bin", kind: kindPack},
			Learnsets:      {root: romFS, path: "bin/archive/pokemon/wazaoboe.bin", kind: kindPack},
			PersonalStats:  {root: romFS, path: "bin/pokelib/personal", kind: kindFolder},
			MegaEvolutions: {root: romFS, path: "bin/pokelib/mega_evolution", kind: kindFolder},
			Evolutions:     {root: romFS, path: "bin/pokelib/evolution", kind: kindFolder},
			MainExecutable: {root: exeFS, path: "main", kind: kindSingle},
		},
		languages:  switchLanguages,
		textFilter: container.ByExtension(".dat"),
		text: map[text.Name]string{
			text.Species:   "monsname.dat",
			text.Moves:     "wazaname.dat",
			text.Items:     "itemname.dat",
			text.Abilities: "tokusei.dat",
			text.Natures:   "seikaku.dat",
			text.Types:     "typename.dat",
		},
		info: Info{Generation: 7, MaxSpeciesID: 809, MaxMoveID: 742, MaxItemID: 1057, MaxAbilityID: 233},
	},
	SWSH: {
		files: map[FileID]fileRef{
			GameText:       {root: romFS, path: "bin/message/{lang}/common", kind: kindFolder},
			StoryText:      {root: romFS, path: "bin/message/{lang}/script", kind: kindFolder},
			MoveStats:      {root: romFS, path: "bin/pml/waza", kind: kindFolder},
			Learnsets:      {root: romFS, path: "bin/pml/waza_oboe/wazaoboe_total.bin", kind: kindPack},
			PersonalStats:  {root: romFS, path: "bin/pml/personal", kind: kindFolder},
			Evolutions:     {root: romFS, path: "bin/pml/evolution", kind: kindFolder},
			MainExecutable: {root: exeFS, path: "main", kind: kindSingle},
		},
		languages:  switchLanguages,
		textFilter: container.ByExtension(".dat"),
		text: map[text.Name]string{
			text.Species:   "monsname.dat",
			text.Moves:     "wazaname.dat",
			text.Items:     "itemname.dat",
			text.Abilities: "tokusei.dat",
			text.Natures:   "seikaku.dat",
			text.Types:     "typename.dat",
		},
		info: Info{Generation: 8, MaxSpeciesID: 898, MaxMoveID: 826, MaxItemID: 1607, MaxAbilityID: 267},
	},
}

// Info describes the limits of a title.
type Info struct {
	Version      Version  `json:"version"`
	Generation   int      `json:"generation"`
	MaxSpeciesID int      `json:"max_species_id"`
	MaxMoveID    int      `json:"max_move_id"`
	MaxItemID    int      `json:"max_item_id"`
	MaxAbilityID int      `json:"max_ability_id"`
	Languages    []string `json:"languages"`
}

// InfoFor returns the Info of a version.
func InfoFor(v Version) (Info, bool) {
	entry, ok := versions[v]
	if !ok {
		return Info{}, false
	}
	info := entry.info
	info.Version = v
	info.Languages = append([]string(nil), entry.languages...)
	return info, true
}

// MappedPath describes where a FileID lives for a version and language.
type MappedPath struct {
	File      FileID `json:"file"`
	Root      string `json:"root"`
	Path      string `json:"path"`
	Kind      string `json:"kind"`
	Localized bool   `json:"localized"`
}

// MappedPaths lists the file map of a version for one language, in FileID order.
func MappedPaths(v Version, language int) ([]MappedPath, error) {
	entry, ok := versions[v]
	if !ok {
		return nil, ErrUnknownVersion
	}
	if language < 0 || language >= len(entry.languages) {
		return nil, ErrUnknownLanguage
	}

	var out []MappedPath
	for _, id := range FileIDs() {
		ref, ok := entry.files[id]
		if !ok {
			continue
		}
		out = append(out, MappedPath{
			File:      id,
			Root:      ref.root.String(),
			Path:      ref.resolve(entry.languages[language]),
			Kind:      ref.kind.String(),
			Localized: ref.localized(),
		})
	}
	return out, nil
}
