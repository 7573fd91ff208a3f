package game

import (
	"context"
	"fmt"
	"sort"

	"gamedata-manager/core/container"
	"gamedata-manager/core/datacache"
	"gamedata-manager/feature/game/structures"

	"go.uber.org/multierr"
)

// Kind names a structured data set of the aggregate.
type Kind string

const (
	KindMoves          Kind = "moves"
	KindLearnsets      Kind = "learnsets"
	KindPersonal       Kind = "personal"
	KindMegaEvolutions Kind = "mega_evolutions"
	KindEvolutions     Kind = "evolutions"
)

// cache is the type-erased view of a datacache.Cache.
type cache interface {
	Name() string
	Loaded() bool
	Save() error
}

// Data is the structured data aggregate of a session. Fields are nil when the
// active version registers no cache for that kind.
type Data struct {
	Moves          *datacache.Cache[[]*structures.Move]
	Learnsets      *datacache.Cache[[]*structures.Learnset]
	Personal       *datacache.Cache[*structures.PersonalTable]
	MegaEvolutions *datacache.Cache[[][]*structures.MegaEvolutionSet]
	Evolutions     *datacache.Cache[[]*structures.EvolutionSet]

	caches map[Kind]cache
}

func newData() *Data {
	return &Data{caches: make(map[Kind]cache)}
}

// Kinds returns the registered kinds in sorted order.
func (d *Data) Kinds() []Kind {
	kinds := make([]Kind, 0, len(d.caches))
	for k := range d.caches {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

// Has reports whether kind is registered.
func (d *Data) Has(kind Kind) bool {
	_, ok := d.caches[kind]
	return ok
}

// Loaded reports whether the cache of kind has been materialized.
func (d *Data) Loaded(kind Kind) bool {
	c, ok := d.caches[kind]
	return ok && c.Loaded()
}

// Save writes every materialized cache back into its container. Every cache
// is attempted and failures are combined.
func (d *Data) Save() error {
	var errs error
	for _, kind := range d.Kinds() {
		errs = multierr.Append(errs, d.caches[kind].Save())
	}
	return errs
}

// preparation initializes a folder before any binding reads from it.
type preparation struct {
	file   FileID
	filter container.Filter
}

// binding registers one cache of the aggregate.
type binding struct {
	kind   Kind
	file   FileID
	filter container.Filter
	attach func(d *Data, c container.Container)
}

// bind builds a binding that stores a typed cache into the field selected by slot.
func bind[T any](kind Kind, file FileID, filter container.Filter, codec datacache.Codec[T], slot func(*Data) **datacache.Cache[T]) binding {
	return binding{
		kind:   kind,
		file:   file,
		filter: filter,
		attach: func(d *Data, c container.Container) {
			dc := datacache.New(file.String(), c, codec)
			*slot(d) = dc
			d.caches[kind] = dc
		},
	}
}

// layout is the aggregate recipe of one version.
type layout struct {
	prepare  []preparation
	bindings []binding
}

func (l layout) build(ctx context.Context, r *Resolver, language int) (*Data, error) {
	d := newData()

	for _, p := range l.prepare {
		if _, err := r.ResolveFiltered(ctx, p.file, language, p.filter); err != nil {
			return nil, fmt.Errorf("prepare %s: %w", p.file, err)
		}
	}

	for _, b := range l.bindings {
		c, err := r.Resolve(ctx, b.file, language)
		if err != nil {
			return nil, fmt.Errorf("bind %s: %w", b.kind, err)
		}
		if folder, ok := c.(*container.Folder); ok && !folder.Initialized() {
			if err := folder.Initialize(ctx, b.filter); err != nil {
				return nil, fmt.Errorf("bind %s: %w", b.kind, err)
			}
		}
		b.attach(d, c)
	}
	return d, nil
}
