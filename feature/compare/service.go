package compare

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"sync"
	"time"

	"rebar-check/core/reconcile"
	"rebar-check/core/storage"
	"rebar-check/feature/schedule"
	"rebar-check/feature/schedule/ifc"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

var (
	// ErrNoFiles is returned when a comparison has no input.
	ErrNoFiles = errors.New("no schedule files given")
	// ErrStorageUnavailable is returned for object operations without a storage client.
	ErrStorageUnavailable = errors.New("object storage is not configured")
	// ErrObjectNotFound is returned when a stored schedule does not exist.
	ErrObjectNotFound = errors.New("schedule not found")
)

// Upload is one file to compare.
type Upload struct {
	Name string
	Data []byte
}

// Report is the outcome of a comparison.
type Report struct {
	Result  *reconcile.Result `json:"result"`
	Summary reconcile.Summary `json:"summary"`
	Files   []FileReport      `json:"files"`
}

// Schedule is a stored schedule export.
type Schedule struct {
	Key          string          `json:"key"`
	Name         string          `json:"name"`
	Format       schedule.Format `json:"format"`
	Size         int64           `json:"size"`
	LastModified time.Time       `json:"last_modified"`
}

// Options configures the service.
type Options struct {
	// Bucket and Prefix locate stored schedules.
	Bucket string
	Prefix string
	// Policy is the IFC conflict policy.
	Policy ifc.ConflictPolicy
	// CacheTTL is how long a parsed stored schedule is reused. Zero disables caching.
	CacheTTL time.Duration
	// MaxObjectBytes caps the size of a downloaded schedule. Zero means no limit.
	MaxObjectBytes int64
}

// Service parses schedules and reconciles them.
type Service struct {
	client storage.Client
	logger *zap.Logger
	opts   Options
	cache  *tableCache
}

// NewService creates a comparison service. client may be nil when only
// uploaded files are compared.
func NewService(client storage.Client, logger *zap.Logger, opts Options) *Service {
	return &Service{
		client: client,
		logger: logger,
		opts:   opts,
		cache:  newTableCache(opts.CacheTTL),
	}
}

// Compare parses the uploads and reconciles them. One upload yields a
// single-column report without verdicts.
func (s *Service) Compare(mapping ifc.Mapping, uploads ...Upload) (*Report, error) {
	if len(uploads) == 0 {
		return nil, ErrNoFiles
	}

	files := make([]*parsed, 0, len(uploads))
	for _, u := range uploads {
		p, err := parseFile(u.Name, u.Data, s.ifcOptions(mapping))
		if err != nil {
			return nil, err
		}
		files = append(files, p)
	}

	return s.reconcile(files)
}

// CompareObjects compares stored schedules by object key.
func (s *Service) CompareObjects(ctx context.Context, mapping ifc.Mapping, keys ...string) (*Report, error) {
	if s.client == nil {
		return nil, ErrStorageUnavailable
	}
	if len(keys) == 0 {
		return nil, ErrNoFiles
	}

	var (
		files = make([]*parsed, len(keys))
		errs  = make([]error, len(keys))
		wg    sync.WaitGroup
	)

	// Fetch objects concurrently
	wg.Add(len(keys))
	for i, key := range keys {
		go func(i int, key string) {
			defer wg.Done()
			files[i], errs[i] = s.loadObject(ctx, key, mapping)
		}(i, key)
	}
	wg.Wait()

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	s.cache.prune()
	return s.reconcile(files)
}

// ListSchedules lists the stored objects with a supported extension.
func (s *Service) ListSchedules(ctx context.Context) ([]Schedule, error) {
	if s.client == nil {
		return nil, ErrStorageUnavailable
	}

	schedules := []Schedule{}
	for obj := range s.client.ListObjects(ctx, s.opts.Bucket, minio.ListObjectsOptions{
		Prefix:    s.prefix(),
		Recursive: true,
	}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list schedules: %w", obj.Err)
		}
		if strings.HasSuffix(obj.Key, "/") {
			continue
		}
		format, err := schedule.DetectFormat(obj.Key)
		if err != nil {
			continue
		}
		schedules = append(schedules, Schedule{
			Key:          obj.Key,
			Name:         path.Base(obj.Key),
			Format:       format,
			Size:         obj.Size,
			LastModified: obj.LastModified,
		})
	}
	return schedules, nil
}

// CheckStorage verifies that the schedule bucket is reachable.
func (s *Service) CheckStorage(ctx context.Context) error {
	if s.client == nil {
		return ErrStorageUnavailable
	}
	exists, err := s.client.BucketExists(ctx, s.opts.Bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket %s: %w", s.opts.Bucket, err)
	}
	if !exists {
		return fmt.Errorf("bucket %s does not exist", s.opts.Bucket)
	}
	return nil
}

func (s *Service) loadObject(ctx context.Context, key string, mapping ifc.Mapping) (*parsed, error) {
	if !strings.HasPrefix(key, s.prefix()) {
		return nil, fmt.Errorf("%w: %s", ErrObjectNotFound, key)
	}

	info, err := s.client.StatObject(ctx, s.opts.Bucket, key, minio.StatObjectOptions{})
	if err != nil {
		return nil, objectError(key, err)
	}

	opts := s.ifcOptions(mapping)
	cacheKey := fmt.Sprintf("%s|%s|%v|%s", key, info.ETag, opts.Mapping, opts.Policy)

	return s.cache.getOrBuild(cacheKey, func() (*parsed, error) {
		data, err := storage.ReadObject(ctx, s.client, s.opts.Bucket, key, s.opts.MaxObjectBytes)
		if err != nil {
			return nil, objectError(key, err)
		}

		s.logger.Debug("Parsing stored schedule", zap.String("key", key), zap.Int("bytes", len(data)))
		return parseFile(path.Base(key), data, opts)
	})
}

func (s *Service) reconcile(files []*parsed) (*Report, error) {
	sources := make([]reconcile.Source, 0, len(files))
	reports := make([]FileReport, 0, len(files))
	for _, f := range files {
		sources = append(sources, f.table)
		reports = append(reports, f.report)
	}

	result, err := reconcile.Reconcile(sources...)
	if err != nil {
		return nil, err
	}

	report := &Report{
		Result:  result,
		Summary: result.Summary(),
		Files:   reports,
	}

	s.logger.Info("Comparison completed",
		zap.Strings("files", result.Columns),
		zap.Int("marks", report.Summary.TotalMarks),
		zap.Int("equal", report.Summary.Equal),
		zap.Int("different", report.Summary.Different),
		zap.Int("only_left", report.Summary.OnlyLeft),
		zap.Int("only_right", report.Summary.OnlyRight),
	)

	return report, nil
}

func (s *Service) ifcOptions(mapping ifc.Mapping) ifc.Options {
	return ifc.Options{
		Mapping: mapping,
		Policy:  s.opts.Policy,
		Logger:  s.logger,
	}
}

func (s *Service) prefix() string {
	return storage.NormalizePrefix(s.opts.Prefix)
}

func objectError(key string, err error) error {
	if storage.IsNotFound(err) {
		return fmt.Errorf("%w: %s", ErrObjectNotFound, key)
	}
	if errors.Is(err, storage.ErrObjectTooLarge) {
		return err
	}
	return fmt.Errorf("failed to read %s: %w", key, err)
}
