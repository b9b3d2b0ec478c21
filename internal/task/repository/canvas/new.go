package canvas

import (
	"context"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"task-planner/internal/model"
	"task-planner/internal/task/repository"
	pkgCanvas "task-planner/pkg/canvas"
	pkgLog "task-planner/pkg/log"
)

const (
	defaultCacheTTL  = 5 * time.Minute
	maxCachedCourses = 64
)

// Client is the subset of pkg/canvas.Client the repository needs.
type Client interface {
	ListAssignmentGroups(ctx context.Context, courseID string) ([]pkgCanvas.AssignmentGroup, error)
	ListAssignments(ctx context.Context, courseID string) ([]pkgCanvas.Assignment, error)
}

// Config selects the courses to pull and how long a course stays cached.
type Config struct {
	CourseIDs []string
	CacheTTL  time.Duration
}

type implRepository struct {
	l         pkgLog.Logger
	client    Client
	courseIDs []string
	cache     *expirable.LRU[string, []model.RawTask]

	mu       sync.RWMutex
	snapshot []model.RawTask
}

// New creates the assignment source. A nil client disables live fetching and
// the repository serves only pushed snapshots.
func New(l pkgLog.Logger, client Client, cfg Config) repository.ExternalRepository {
	ttl := cfg.CacheTTL
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &implRepository{
		l:         l,
		client:    client,
		courseIDs: cfg.CourseIDs,
		cache:     expirable.NewLRU[string, []model.RawTask](maxCachedCourses, nil, ttl),
	}
}
