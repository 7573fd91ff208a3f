package integrity

import (
	"context"
	"errors"
	"strconv"

	"gamedata-manager/core/storage"
	"gamedata-manager/feature/game"
	"gamedata-manager/feature/integrity/checks"
	"gamedata-manager/feature/journal"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// ErrCheckUnavailable is returned when a check's backing service is not configured.
var ErrCheckUnavailable = errors.New("check unavailable")

// Service handles integrity checks.
type Service struct {
	open     storage.Opener
	loc      game.Location
	language int
	client   storage.Client
	bucket   string
	journal  *journal.Journal
	logger   *zap.Logger

	// Concurrent layout checks for the same language share one walk.
	sf singleflight.Group
}

// Options carries the optional collaborators of the Service.
type Options struct {
	// Client enables the bucket check.
	Client storage.Client
	// Bucket is the bucket checked by the bucket check.
	Bucket string
	// Journal enables the journal schema check.
	Journal *journal.Journal
}

// NewService creates a new integrity service.
func NewService(open storage.Opener, loc game.Location, language int, logger *zap.Logger, opts Options) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		open:     open,
		loc:      loc,
		language: language,
		client:   opts.Client,
		bucket:   opts.Bucket,
		journal:  opts.Journal,
		logger:   logger,
	}
}

// CheckLayout verifies the install layout in the configured language.
func (s *Service) CheckLayout(ctx context.Context) (*checks.LayoutReport, error) {
	return s.CheckLayoutLanguage(ctx, s.language)
}

// CheckLayoutLanguage verifies the install layout in the given language.
func (s *Service) CheckLayoutLanguage(ctx context.Context, language int) (*checks.LayoutReport, error) {
	v, err, _ := s.sf.Do("layout:"+strconv.Itoa(language), func() (any, error) {
		return checks.CheckLayout(ctx, s.open, s.loc, language)
	})
	if err != nil {
		return nil, err
	}
	report := v.(*checks.LayoutReport)
	if !report.Matched {
		s.logger.Warn("Install layout incomplete", zap.Strings("missing", report.Missing))
	}
	return report, nil
}

// CheckBucket verifies the storage bucket.
func (s *Service) CheckBucket(ctx context.Context) (*checks.BucketReport, error) {
	if s.client == nil {
		return nil, ErrCheckUnavailable
	}
	return checks.CheckBucket(ctx, s.client, s.bucket)
}

// CheckJournal verifies the save journal schema.
func (s *Service) CheckJournal() (*journal.SchemaReport, error) {
	if s.journal == nil {
		return nil, ErrCheckUnavailable
	}
	return s.journal.CheckSchema()
}

// CheckAll runs every check and collects each result or error by name.
func (s *Service) CheckAll(ctx context.Context) map[string]any {
	report := make(map[string]any)

	if r, err := s.CheckLayout(ctx); err != nil {
		report["layout"] = map[string]any{"status": "error", "error": err.Error()}
	} else {
		report["layout"] = r
	}

	if r, err := s.CheckBucket(ctx); err != nil {
		report["bucket"] = map[string]any{"status": "error", "error": err.Error()}
	} else {
		report["bucket"] = r
	}

	if r, err := s.CheckJournal(); err != nil {
		report["journal"] = map[string]any{"status": "error", "error": err.Error()}
	} else {
		report["journal"] = r
	}

	return report
}
