package inspect

import (
	"context"
	"fmt"
	"sync"

	"gamedata-manager/feature/game"
	"gamedata-manager/feature/game/text"
)

// Status summarizes a session.
type Status struct {
	SessionID string    `json:"session_id"`
	Version   string    `json:"version"`
	Language  int       `json:"language"`
	State     string    `json:"state"`
	Info      game.Info `json:"info"`
}

// ResolvedFile describes one resolved container.
type ResolvedFile struct {
	File     game.FileID `json:"file"`
	Language int         `json:"language"`
	Path     string      `json:"path"`
	Modified bool        `json:"modified"`
}

// KindStatus describes one data kind.
type KindStatus struct {
	Kind   game.Kind `json:"kind"`
	Loaded bool      `json:"loaded"`
}

// Service serializes access to a game session.
type Service struct {
	mu       sync.Mutex
	manager  *game.Manager
	readOnly bool
}

// NewService wraps manager.
func NewService(manager *game.Manager, readOnly bool) *Service {
	return &Service{manager: manager, readOnly: readOnly}
}

// Status returns the session summary.
func (s *Service) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Status{
		SessionID: s.manager.SessionID(),
		Version:   s.manager.Version().String(),
		Language:  s.manager.Language(),
		State:     s.manager.State().String(),
		Info:      s.manager.Info(),
	}
}

// Files returns the file map in the active language.
func (s *Service) Files() ([]game.MappedPath, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return game.MappedPaths(s.manager.Version(), s.manager.Language())
}

// Resolved lists the containers resolved so far.
func (s *Service) Resolved() []ResolvedFile {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []ResolvedFile
	for _, rf := range s.manager.Resolved() {
		out = append(out, ResolvedFile{
			File:     rf.File,
			Language: rf.Language,
			Path:     rf.Container.Path(),
			Modified: rf.Container.Modified(),
		})
	}
	return out
}

// Members returns the member names of a container.
func (s *Service) Members(ctx context.Context, id game.FileID) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.manager.GetFile(ctx, id)
	if err != nil {
		return nil, err
	}
	return c.Files()
}

// Strings decodes a text table. A negative language uses the session's.
func (s *Service) Strings(ctx context.Context, name text.Name, language int) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if language >= 0 && language != s.manager.Language() {
		prev := s.manager.Language()
		if err := s.manager.SetLanguage(language); err != nil {
			return nil, err
		}
		defer s.manager.SetLanguage(prev)
	}
	return s.manager.GetStrings(ctx, name)
}

// Kinds lists the registered data kinds.
func (s *Service) Kinds() []KindStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	data := s.manager.Data()
	out := []KindStatus{}
	if data == nil {
		return out
	}
	for _, k := range data.Kinds() {
		out = append(out, KindStatus{Kind: k, Loaded: data.Loaded(k)})
	}
	return out
}

// Data materializes and returns the structures of a kind.
func (s *Service) Data(kind game.Kind) (any, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data := s.manager.Data()
	if data == nil || !data.Has(kind) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}

	switch kind {
	case game.KindMoves:
		return data.Moves.Get()
	case game.KindLearnsets:
		return data.Learnsets.Get()
	case game.KindPersonal:
		return data.Personal.Get()
	case game.KindMegaEvolutions:
		return data.MegaEvolutions.Get()
	case game.KindEvolutions:
		return data.Evolutions.Get()
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}
}

// Save persists the session and rebuilds its data.
func (s *Service) Save(ctx context.Context) error {
	if s.readOnly {
		return ErrReadOnly
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.manager.SaveAll(ctx, false)
}
