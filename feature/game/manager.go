package game

import (
	"context"
	"fmt"
	"time"

	"gamedata-manager/core/container"
	"gamedata-manager/core/logger"
	"gamedata-manager/core/storage"
	"gamedata-manager/feature/game/text"

	"github.com/google/uuid"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// State is the lifecycle state of a Manager's data aggregate.
type State int

const (
	StateUninitialized State = iota
	StateReady
)

func (s State) String() string {
	if s == StateReady {
		return "ready"
	}
	return "uninitialized"
}

// SaveRecord describes one container persisted by SaveAll.
type SaveRecord struct {
	SessionID string
	Version   Version
	File      FileID
	Path      string
	Err       error
	SavedAt   time.Time
}

// SaveRecorder receives a record for every container SaveAll persists.
type SaveRecorder interface {
	RecordSave(ctx context.Context, record SaveRecord) error
}

// Option configures a Manager.
type Option func(*Manager)

// WithLogger sets the session logger.
func WithLogger(l *zap.Logger) Option {
	return func(m *Manager) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithRecorder reports persisted containers to r.
func WithRecorder(r SaveRecorder) Option {
	return func(m *Manager) {
		m.recorder = r
	}
}

// Manager is the session facade over one install. A Manager has a single
// owner and must not be used from several goroutines at once.
type Manager struct {
	loc       Location
	sessionID string
	language  int
	resolver  *Resolver
	data      *Data
	state     State
	recorder  SaveRecorder
	logger    *zap.Logger
}

// New opens a session on loc in the given language and initializes its data
// aggregate.
func New(ctx context.Context, loc Location, open storage.Opener, language int, opts ...Option) (*Manager, error) {
	m := &Manager{
		loc:       loc,
		sessionID: uuid.NewString(),
		language:  language,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.logger = logger.WithSession(m.logger, m.sessionID)

	resolver, err := NewResolver(loc, open, m.logger)
	if err != nil {
		return nil, err
	}
	m.resolver = resolver

	if err := m.checkLanguage(language); err != nil {
		return nil, err
	}

	if err := m.Initialize(ctx); err != nil {
		return nil, err
	}
	return m, nil
}

// SessionID returns the unique id of the session.
func (m *Manager) SessionID() string { return m.sessionID }

// Version returns the installed title.
func (m *Manager) Version() Version { return m.loc.Version }

// RomFS returns the data filesystem root.
func (m *Manager) RomFS() string { return m.loc.RomFS }

// ExeFS returns the code filesystem root.
func (m *Manager) ExeFS() string { return m.loc.ExeFS }

// Info returns the limits of the installed title.
func (m *Manager) Info() Info {
	info, _ := InfoFor(m.loc.Version)
	return info
}

// Language returns the active language index.
func (m *Manager) Language() int { return m.language }

// SetLanguage changes the language used by later resolutions. Materialized
// data is not affected.
func (m *Manager) SetLanguage(language int) error {
	if err := m.checkLanguage(language); err != nil {
		return err
	}
	m.language = language
	m.logger.Debug("Language changed", zap.Int("language", language))
	return nil
}

// State returns the lifecycle state of the data aggregate.
func (m *Manager) State() State { return m.state }

// Data returns the structured data aggregate.
func (m *Manager) Data() *Data { return m.data }

// Resolved lists every container resolved in this session.
func (m *Manager) Resolved() []ResolvedFile { return m.resolver.Resolved() }

// GetFile returns the container for id in the active language.
func (m *Manager) GetFile(ctx context.Context, id FileID) (container.Container, error) {
	return m.resolver.Resolve(ctx, id, m.language)
}

// GetFilteredFolder returns the folder for id in the active language,
// initializing it with filter on first use.
func (m *Manager) GetFilteredFolder(ctx context.Context, id FileID, filter container.Filter) (*container.Folder, error) {
	return m.resolver.ResolveFiltered(ctx, id, m.language, filter)
}

// GetStrings decodes a text table of the active language, in file order.
func (m *Manager) GetStrings(ctx context.Context, name text.Name) ([]string, error) {
	entry := versions[m.loc.Version]
	fileName, ok := entry.text[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s for %s", ErrUnknownText, name, m.loc.Version)
	}

	folder, err := m.resolver.ResolveFiltered(ctx, GameText, m.language, entry.textFilter)
	if err != nil {
		return nil, err
	}

	idx, err := folder.Index(fileName)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrUnknownText, name, err)
	}
	data, err := folder.File(idx)
	if err != nil {
		return nil, err
	}

	lines, err := text.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", fileName, err)
	}
	return lines, nil
}

// Initialize discards the current data aggregate and builds a fresh one
// from the containers. Unsaved edits held by the old aggregate are lost.
func (m *Manager) Initialize(ctx context.Context) error {
	m.state = StateUninitialized
	m.data = nil

	data, err := layoutFor(m.loc.Version).build(ctx, m.resolver, m.language)
	if err != nil {
		m.logger.Error("Failed to initialize game data", zap.Error(err))
		return err
	}

	m.data = data
	m.state = StateReady
	m.logger.Info("Game data initialized",
		zap.String("version", m.loc.Version.String()),
		zap.Int("kinds", len(data.caches)),
	)
	return nil
}

// SaveAll writes every materialized cache into its container, then persists
// every modified container. Every step is attempted and failures are
// combined. Unless closing, the aggregate is rebuilt afterwards so later
// reads see the persisted data.
func (m *Manager) SaveAll(ctx context.Context, closing bool) error {
	start := time.Now()
	var errs error

	if m.data != nil {
		errs = multierr.Append(errs, m.data.Save())
	}

	saved, err := m.resolver.SaveAll(ctx)
	errs = multierr.Append(errs, err)

	for _, s := range saved {
		if s.Err != nil {
			m.logger.Error("Failed to persist file", zap.Stringer("file", s.File), zap.String("path", s.Path), zap.Error(s.Err))
		} else {
			m.logger.Debug("Persisted file", zap.Stringer("file", s.File), zap.String("path", s.Path))
		}
		m.record(ctx, s)
	}

	m.logger.Info("Save completed",
		zap.Int("files", len(saved)),
		zap.Int("errors", len(multierr.Errors(errs))),
		zap.Duration("duration", time.Since(start)),
		zap.Bool("closing", closing),
	)

	if !closing {
		errs = multierr.Append(errs, m.Initialize(ctx))
	}
	return errs
}

func (m *Manager) record(ctx context.Context, s SavedFile) {
	if m.recorder == nil {
		return
	}
	rec := SaveRecord{
		SessionID: m.sessionID,
		Version:   m.loc.Version,
		File:      s.File,
		Path:      s.Path,
		Err:       s.Err,
		SavedAt:   time.Now(),
	}
	if err := m.recorder.RecordSave(ctx, rec); err != nil {
		m.logger.Warn("Failed to record save", zap.Stringer("file", s.File), zap.Error(err))
	}
}

func (m *Manager) checkLanguage(language int) error {
	if language < 0 || language >= len(m.resolver.Languages()) {
		return fmt.Errorf("%w: %d", ErrUnknownLanguage, language)
	}
	return nil
}
