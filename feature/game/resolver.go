package game

import (
	"context"
	"fmt"

	"gamedata-manager/core/container"
	"gamedata-manager/core/storage"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

type resolveKey struct {
	file     FileID
	language int
}

// ResolvedFile is a container handed out by the Resolver.
type ResolvedFile struct {
	File      FileID
	Language  int
	Container container.Container
}

// SavedFile is the outcome of persisting one modified container.
type SavedFile struct {
	File FileID
	Path string
	Err  error
}

// Resolver maps FileIDs to containers for one Location. Containers are
// created on first resolution and reused for the Resolver's lifetime.
type Resolver struct {
	loc      Location
	entry    versionEntry
	open     storage.Opener
	stores   map[fsRoot]storage.Store
	resolved map[resolveKey]container.Container
	order    []ResolvedFile
	logger   *zap.Logger
}

// NewResolver creates a resolver for loc. Stores are opened on first use.
func NewResolver(loc Location, open storage.Opener, logger *zap.Logger) (*Resolver, error) {
	if err := loc.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resolver{
		loc:      loc,
		entry:    versions[loc.Version],
		open:     open,
		stores:   make(map[fsRoot]storage.Store),
		resolved: make(map[resolveKey]container.Container),
		logger:   logger,
	}, nil
}

// Languages returns the language folder names, indexed by language.
func (r *Resolver) Languages() []string {
	return append([]string(nil), r.entry.languages...)
}

// Supports reports whether id has a mapping for the version.
func (r *Resolver) Supports(id FileID) bool {
	_, ok := r.entry.files[id]
	return ok
}

// Resolve returns the container for id in the given language. The same
// (id, language) pair always yields the same container. Files that are not
// localized share one container across languages.
func (r *Resolver) Resolve(ctx context.Context, id FileID, language int) (container.Container, error) {
	ref, ok := r.entry.files[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s has no mapping for %s", ErrUnsupportedFileKind, id, r.loc.Version)
	}

	key := resolveKey{file: id, language: -1}
	langFolder := ""
	if ref.localized() {
		if language < 0 || language >= len(r.entry.languages) {
			return nil, fmt.Errorf("%w: %d for %s", ErrUnknownLanguage, language, id)
		}
		key.language = language
		langFolder = r.entry.languages[language]
	}

	if c, ok := r.resolved[key]; ok {
		return c, nil
	}

	store, err := r.store(ref.root)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", id, err)
	}

	path := ref.resolve(langFolder)
	var c container.Container
	switch ref.kind {
	case kindSingle:
		single := container.NewSingle(store, path)
		if err := single.Load(ctx); err != nil {
			return nil, fmt.Errorf("resolve %s: %w", id, err)
		}
		c = single
	case kindPack:
		pack := container.NewPack(store, path)
		if err := pack.Load(ctx); err != nil {
			return nil, fmt.Errorf("resolve %s: %w", id, err)
		}
		c = pack
	default:
		c = container.NewFolder(store, path)
	}

	r.resolved[key] = c
	r.order = append(r.order, ResolvedFile{File: id, Language: key.language, Container: c})
	r.logger.Debug("Resolved file",
		zap.Stringer("file", id),
		zap.String("root", ref.root.String()),
		zap.String("path", path),
		zap.String("kind", ref.kind.String()),
	)
	return c, nil
}

// ResolveFiltered resolves a folder and, the first time only, initializes it
// with filter. A nil filter keeps every member. Later calls return the same
// folder with its original member list.
func (r *Resolver) ResolveFiltered(ctx context.Context, id FileID, language int, filter container.Filter) (*container.Folder, error) {
	c, err := r.Resolve(ctx, id, language)
	if err != nil {
		return nil, err
	}

	folder, ok := c.(*container.Folder)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFolder, id)
	}

	if !folder.Initialized() {
		if err := folder.Initialize(ctx, filter); err != nil {
			return nil, fmt.Errorf("resolve %s: %w", id, err)
		}
		count, _ := folder.Count()
		r.logger.Debug("Initialized folder", zap.Stringer("file", id), zap.Int("members", count))
	}
	return folder, nil
}

// Resolved returns every container resolved so far, in resolution order.
func (r *Resolver) Resolved() []ResolvedFile {
	return append([]ResolvedFile(nil), r.order...)
}

// SaveAll persists every modified container. All containers are attempted;
// failures are combined into the returned error.
func (r *Resolver) SaveAll(ctx context.Context) ([]SavedFile, error) {
	var saved []SavedFile
	var errs error
	for _, rf := range r.order {
		if !rf.Container.Modified() {
			continue
		}

		result := SavedFile{File: rf.File, Path: rf.Container.Path()}
		if err := rf.Container.Save(ctx); err != nil {
			result.Err = fmt.Errorf("%w: %s: %w", ErrPersistFailed, rf.File, err)
			errs = multierr.Append(errs, result.Err)
		}
		saved = append(saved, result)
	}
	return saved, errs
}

func (r *Resolver) store(root fsRoot) (storage.Store, error) {
	if s, ok := r.stores[root]; ok {
		return s, nil
	}

	location := r.loc.RomFS
	if root == exeFS {
		location = r.loc.ExeFS
	}
	if location == "" {
		return nil, fmt.Errorf("%s root not configured", root)
	}

	s, err := r.open(location)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", root, err)
	}
	r.stores[root] = s
	return s, nil
}
