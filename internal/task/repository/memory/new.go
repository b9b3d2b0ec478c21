package memory

import (
	"sync"

	"github.com/google/uuid"

	"task-planner/internal/model"
	"task-planner/internal/task/repository"
	pkgLog "task-planner/pkg/log"
)

// implRepository keeps manual tasks in insertion order. It is safe for
// concurrent use; callers always receive copies.
type implRepository struct {
	l     pkgLog.Logger
	mu    sync.RWMutex
	order []string
	tasks map[string]model.Task
	newID func() string
}

// New creates an empty in-memory task repository.
func New(l pkgLog.Logger) repository.TaskRepository {
	return &implRepository{
		l:     l,
		tasks: make(map[string]model.Task),
		newID: func() string { return uuid.NewString() },
	}
}
