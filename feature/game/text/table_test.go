package text_test

import (
	"testing"

	"gamedata-manager/feature/game/text"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecode(t *testing.T) {
	lines := []string{"Egg", "Bulbasaur", "", "Nidoran♀", "ピカチュウ"}

	data, err := text.Encode(lines)
	require.NoError(t, err)

	decoded, err := text.Decode(data)
	require.NoError(t, err)
	assert.Equal(t, lines, decoded)
}

func TestDecodeEmptyTable(t *testing.T) {
	data, err := text.Encode(nil)
	require.NoError(t, err)

	lines, err := text.Decode(data)
	require.NoError(t, err)
	assert.NotNil(t, lines)
	assert.Empty(t, lines)
}

func TestDecodeMalformed(t *testing.T) {
	data, err := text.Encode([]string{"Pound", "Karate Chop"})
	require.NoError(t, err)

	tests := []struct {
		name string
		data []byte
	}{
		{"Empty", nil},
		{"TruncatedTable", data[:5]},
		{"TruncatedText", data[:len(data)-2]},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := text.Decode(tt.data)
			assert.ErrorIs(t, err, text.ErrMalformedTable)
		})
	}
}

func TestParseName(t *testing.T) {
	for _, n := range text.Names() {
		parsed, err := text.ParseName(n.String())
		require.NoError(t, err)
		assert.Equal(t, n, parsed)
	}

	parsed, err := text.ParseName(" Species ")
	require.NoError(t, err)
	assert.Equal(t, text.Species, parsed)

	_, err = text.ParseName("credits")
	assert.Error(t, err)
	assert.Equal(t, "text(99)", text.Name(99).String())
}
