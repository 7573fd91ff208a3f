package game

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileID(t *testing.T) {
	for _, id := range FileIDs() {
		parsed, err := ParseFileID(id.String())
		require.NoError(t, err)
		assert.Equal(t, id, parsed)
	}

	_, err := ParseFileID("textures")
	assert.Error(t, err)
	assert.Equal(t, "file(42)", FileID(42).String())

	out, err := json.Marshal(map[string]FileID{"file": MoveStats})
	require.NoError(t, err)
	assert.JSONEq(t, `{"file":"move_stats"}`, string(out))

	var in struct{ File FileID }
	require.NoError(t, json.Unmarshal([]byte(`{"File":"Learnsets"}`), &in))
	assert.Equal(t, Learnsets, in.File)
}

func TestParseVersion(t *testing.T) {
	tests := []struct {
		in   string
		want Version
		err  bool
	}{
		{"gg", GG, false},
		{" SWSH ", SWSH, false},
		{"xy", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			v, err := ParseVersion(tt.in)
			if tt.err {
				assert.ErrorIs(t, err, ErrUnknownVersion)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, v)
		})
	}
}

func TestInfoFor(t *testing.T) {
	info, ok := InfoFor(SWSH)
	require.True(t, ok)
	assert.Equal(t, SWSH, info.Version)
	assert.Equal(t, 8, info.Generation)
	assert.Equal(t, "English", info.Languages[langEnglish])

	// The returned languages are a copy.
	info.Languages[0] = "changed"
	again, _ := InfoFor(SWSH)
	assert.Equal(t, "JPN", again.Languages[0])

	_, ok = InfoFor("xy")
	assert.False(t, ok)
}

func TestMappedPaths(t *testing.T) {
	paths, err := MappedPaths(GG, langFrench)
	require.NoError(t, err)
	require.Len(t, paths, len(FileIDs()))

	assert.Equal(t, GameText, paths[0].File)
	assert.Equal(t, "bin/message/French/common", paths[0].Path)
	assert.True(t, paths[0].Localized)
	assert.Equal(t, "folder", paths[0].Kind)

	last := paths[len(paths)-1]
	assert.Equal(t, MainExecutable, last.File)
	assert.Equal(t, "exefs", last.Root)
	assert.Equal(t, "single", last.Kind)

	swsh, err := MappedPaths(SWSH, langEnglish)
	require.NoError(t, err)
	for _, p := range swsh {
		assert.NotEqual(t, MegaEvolutions, p.File)
	}

	_, err = MappedPaths(GG, 10)
	assert.ErrorIs(t, err, ErrUnknownLanguage)
	_, err = MappedPaths("xy", 0)
	assert.ErrorIs(t, err, ErrUnknownVersion)
}

func TestLayoutsBindMappedFiles(t *testing.T) {
	for v, lay := range layouts {
		r, err := NewResolver(Location{RomFS: "/unused", Version: v}, localOpener, nil)
		require.NoError(t, err)
		for _, b := range lay.bindings {
			assert.True(t, r.Supports(b.file), "%s binds unmapped %s", v, b.file)
		}
		for _, p := range lay.prepare {
			assert.True(t, r.Supports(p.file), "%s prepares unmapped %s", v, p.file)
		}
	}
}
