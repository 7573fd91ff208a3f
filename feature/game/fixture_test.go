package game

import (
	"context"
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"gamedata-manager/core/container"
	"gamedata-manager/core/storage"
	"gamedata-manager/feature/game/structures"
	"gamedata-manager/feature/game/text"

	"github.com/stretchr/testify/require"
)

const (
	langEnglish = 2
	langFrench  = 3
)

type install struct {
	romfs string
	exefs string
}

func (i install) location(v Version) Location {
	return Location{RomFS: i.romfs, ExeFS: i.exefs, Version: v}
}

func writeFixture(t *testing.T, root, name string, data []byte) {
	t.Helper()
	p := filepath.Join(root, filepath.FromSlash(name))
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, os.WriteFile(p, data, 0o644))
}

func readFixture(t *testing.T, root, name string) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(name)))
	require.NoError(t, err)
	return data
}

func moveRecord(power uint8) []byte {
	b := make([]byte, structures.MoveSize)
	b[0x03] = power
	b[0x04] = 100
	b[0x05] = 35
	b[0x1F] = 0xAB // unmapped byte, must survive a round trip
	return b
}

func learnsetRecord(pairs ...uint16) []byte {
	b := make([]byte, 0, len(pairs)*2+4)
	for _, v := range pairs {
		b = binary.LittleEndian.AppendUint16(b, v)
	}
	return append(b, 0xFF, 0xFF, 0xFF, 0xFF)
}

func personalRecord(hp uint8) []byte {
	b := make([]byte, structures.PersonalInfoSize)
	b[0] = hp
	return b
}

func evolutionRecord(species uint16, level uint8) []byte {
	b := make([]byte, structures.EvolutionSetSize)
	binary.LittleEndian.PutUint16(b[0:], 4)
	binary.LittleEndian.PutUint16(b[4:], species)
	b[7] = level
	return b
}

func encodePack(t *testing.T, ident string, entries ...[]byte) []byte {
	t.Helper()
	data, err := container.EncodePack(ident, entries)
	require.NoError(t, err)
	return data
}

func encodeText(t *testing.T, lines ...string) []byte {
	t.Helper()
	data, err := text.Encode(lines)
	require.NoError(t, err)
	return data
}

// newGGInstall writes a small Let's Go install covering every mapped file.
func newGGInstall(t *testing.T) install {
	t.Helper()
	in := install{romfs: t.TempDir(), exefs: t.TempDir()}

	writeFixture(t, in.romfs, "bin/pokelib/waza/waza_data.bin",
		encodePack(t, "WD", moveRecord(0), moveRecord(40), moveRecord(50)))
	writeFixture(t, in.romfs, "bin/archive/pokemon/wazaoboe.bin",
		encodePack(t, "WB", learnsetRecord(), learnsetRecord(33, 1, 45, 3)))

	writeFixture(t, in.romfs, "bin/pokelib/personal/personal_total.bin",
		append(personalRecord(0), personalRecord(45)...))
	writeFixture(t, in.romfs, "bin/pokelib/personal/personal_notes.bin", []byte{1})

	writeFixture(t, in.romfs, "bin/pokelib/mega_evolution/mega_0000.bin", []byte{})
	writeFixture(t, in.romfs, "bin/pokelib/mega_evolution/mega_0001.bin", []byte{1, 0, 1, 0, 0, 0, 0, 0})

	writeFixture(t, in.romfs, "bin/pokelib/evolution/evo_0000.bin", evolutionRecord(0, 0))
	writeFixture(t, in.romfs, "bin/pokelib/evolution/evo_0001.bin", evolutionRecord(2, 16))

	writeFixture(t, in.romfs, "bin/message/English/common/monsname.dat",
		encodeText(t, "Egg", "Bulbasaur", "Ivysaur"))
	writeFixture(t, in.romfs, "bin/message/English/common/typename.dat", encodeText(t))
	writeFixture(t, in.romfs, "bin/message/English/common/readme.txt", []byte("not a table"))
	writeFixture(t, in.romfs, "bin/message/English/script/intro.dat", encodeText(t, "Hello"))
	writeFixture(t, in.romfs, "bin/message/French/common/monsname.dat",
		encodeText(t, "Œuf", "Bulbizarre", "Herbizarre"))

	writeFixture(t, in.exefs, "main", []byte("NSO0"))
	return in
}

func localOpener(root string) (storage.Store, error) {
	return storage.NewLocalStore(root)
}

// recordingStore counts writes and can fail them for chosen names.
type recordingStore struct {
	storage.Store
	writes []string
	fail   map[string]error
}

func (s *recordingStore) WriteFile(ctx context.Context, name string, data []byte) error {
	if err, ok := s.fail[name]; ok {
		return err
	}
	s.writes = append(s.writes, name)
	return s.Store.WriteFile(ctx, name, data)
}

// recordingOpener wraps every opened store in a shared recordingStore view.
type recordingOpener struct {
	stores map[string]*recordingStore
	fail   map[string]error
}

func newRecordingOpener() *recordingOpener {
	return &recordingOpener{stores: make(map[string]*recordingStore), fail: make(map[string]error)}
}

func (o *recordingOpener) open(root string) (storage.Store, error) {
	local, err := storage.NewLocalStore(root)
	if err != nil {
		return nil, err
	}
	s := &recordingStore{Store: local, fail: o.fail}
	o.stores[root] = s
	return s, nil
}

func (o *recordingOpener) writes() []string {
	var all []string
	for _, s := range o.stores {
		all = append(all, s.writes...)
	}
	return all
}

var errDiskFull = errors.New("disk full")
