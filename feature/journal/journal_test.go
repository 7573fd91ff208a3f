package journal

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"gamedata-manager/core/database"
	"gamedata-manager/feature/game"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupSQLite(t *testing.T) *Journal {
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)

	j, err := New(db, nil)
	require.NoError(t, err)
	require.NoError(t, j.Migrate())
	return j
}

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	require.NoError(t, err)
	return gormDB, mock
}

func TestNew_NilDB(t *testing.T) {
	j, err := New(nil, nil)
	assert.ErrorIs(t, err, ErrNoDatabase)
	assert.Nil(t, j)
}

func TestJournal_RecordAndList(t *testing.T) {
	j := setupSQLite(t)
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, j.RecordSave(ctx, game.SaveRecord{
		SessionID: "s1", Version: game.GG, File: game.MoveStats, Path: "bin/pokelib/waza/waza_data.bin", SavedAt: now,
	}))
	require.NoError(t, j.RecordSave(ctx, game.SaveRecord{
		SessionID: "s1", Version: game.GG, File: game.Learnsets, Path: "bin/archive/pokemon/wazaoboe.bin",
		Err: errors.New("disk full"), SavedAt: now,
	}))
	require.NoError(t, j.RecordSave(ctx, game.SaveRecord{
		SessionID: "s2", Version: game.SWSH, File: game.PersonalStats, Path: "bin/pml/personal", SavedAt: now,
	}))

	recent, err := j.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "personal_stats", recent[0].File)
	assert.Equal(t, "learnsets", recent[1].File)
	assert.True(t, recent[1].Failed)
	assert.Equal(t, "disk full", recent[1].Error)

	session, err := j.Session(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, session, 2)
	assert.Equal(t, "move_stats", session[0].File)
	assert.False(t, session[0].Failed)
	assert.Equal(t, "gg", session[0].Version)
}

func TestJournal_CheckSchemaSQLite(t *testing.T) {
	j := setupSQLite(t)

	report, err := j.CheckSchema()
	require.NoError(t, err)
	assert.True(t, report.Matched, "mismatches: %v missing: %v", report.TypeMismatches, report.MissingColumns)
	assert.Empty(t, report.MissingColumns)
}

func TestJournal_CheckSchemaMySQLMissing(t *testing.T) {
	db, mock := setupMockDB(t)
	j, err := New(db, nil)
	require.NoError(t, err)

	rows := sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"}).
		AddRow("id", "bigint unsigned", "NO", "PRI", nil, "auto_increment").
		AddRow("session_id", "varchar(36)", "YES", "MUL", nil, "").
		AddRow("version", "varchar(8)", "YES", "", nil, "").
		AddRow("file", "varchar(32)", "YES", "", nil, "").
		AddRow("path", "varchar(255)", "YES", "", nil, "").
		AddRow("failed", "tinyint(1)", "YES", "", nil, "").
		AddRow("error", "text", "YES", "", nil, "")
	mock.ExpectQuery(regexp.QuoteMeta("SHOW COLUMNS FROM `save_records`")).WillReturnRows(rows)

	report, err := j.CheckSchema()
	require.NoError(t, err)
	assert.False(t, report.Matched)
	assert.Equal(t, []string{"saved_at"}, report.MissingColumns)
	require.Len(t, report.TypeMismatches, 1)
	assert.Contains(t, report.TypeMismatches[0], "version")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestJournal_RecordSaveMySQL(t *testing.T) {
	db, mock := setupMockDB(t)
	j, err := New(db, nil)
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `save_records`")).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err = j.RecordSave(context.Background(), game.SaveRecord{
		SessionID: "s1", Version: game.GG, File: game.MoveStats, Path: "p", SavedAt: time.Now(),
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestJournal_RecordSaveMySQLError(t *testing.T) {
	db, mock := setupMockDB(t)
	j, err := New(db, nil)
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `save_records`")).
		WillReturnError(errors.New("connection lost"))
	mock.ExpectRollback()

	err = j.RecordSave(context.Background(), game.SaveRecord{File: game.MoveStats, Version: game.GG})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "move_stats")
	assert.NoError(t, mock.ExpectationsWereMet())
}
