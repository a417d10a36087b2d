// Package repositoryimpl stores each event's task set in a single YAML
// file. A batch insert is therefore one atomic storage write, which is what
// keeps task injection all-or-nothing.
package repositoryimpl

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/showdesk/showdesk/internal/task"
	"github.com/showdesk/showdesk/pkg/cerr"
	"github.com/showdesk/showdesk/pkg/storage"
)

const tasksPrefix = "tasks"

type YAMLRepository struct {
	storage storage.Storage
}

func NewYAMLRepository(s storage.Storage) *YAMLRepository {
	return &YAMLRepository{storage: s}
}

func path(eventID string) string {
	return fmt.Sprintf("%s/%s.yaml", tasksPrefix, eventID)
}

func (r *YAMLRepository) load(ctx context.Context, eventID string) ([]*task.Task, error) {
	data, err := r.storage.Read(ctx, path(eventID))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil
		}
		return nil, cerr.WrapStorageReadError("tasks", err)
	}
	var tasks []*task.Task
	if err := yaml.Unmarshal(data, &tasks); err != nil {
		return nil, cerr.NewError(cerr.Internal, "server error", fmt.Errorf("failed to unmarshal tasks: %w", err))
	}
	return tasks, nil
}

func (r *YAMLRepository) store(ctx context.Context, eventID string, tasks []*task.Task) error {
	data, err := yaml.Marshal(tasks)
	if err != nil {
		return cerr.NewError(cerr.Internal, "server error", fmt.Errorf("failed to marshal tasks: %w", err))
	}
	if err := r.storage.Write(ctx, path(eventID), data); err != nil {
		return cerr.WrapStorageWriteError("tasks", err)
	}
	return nil
}

func (r *YAMLRepository) Create(ctx context.Context, t *task.Task) error {
	return r.CreateBatch(ctx, t.EventID, []*task.Task{t})
}

func (r *YAMLRepository) CreateBatch(ctx context.Context, eventID string, tasks []*task.Task) error {
	if len(tasks) == 0 {
		return nil
	}
	existing, err := r.load(ctx, eventID)
	if err != nil {
		return err
	}
	seen := make(map[string]bool, len(existing))
	for _, t := range existing {
		seen[t.ID] = true
	}
	for _, t := range tasks {
		if t.EventID != eventID {
			return cerr.NewError(cerr.InvalidArgument,
				fmt.Sprintf("task %s does not belong to event %s", t.ID, eventID), nil)
		}
		if seen[t.ID] {
			return cerr.NewError(cerr.AlreadyExists, fmt.Sprintf("task %s already exists", t.ID), nil)
		}
		seen[t.ID] = true
	}
	return r.store(ctx, eventID, append(existing, tasks...))
}

func (r *YAMLRepository) Get(ctx context.Context, id string) (*task.Task, error) {
	eventID, ok := task.EventIDOf(id)
	if !ok {
		return nil, cerr.NewError(cerr.InvalidArgument, "malformed task id", nil)
	}
	tasks, err := r.load(ctx, eventID)
	if err != nil {
		return nil, err
	}
	for _, t := range tasks {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, cerr.NewError(cerr.NotFound, "task not found", nil)
}

func (r *YAMLRepository) ListByEvent(ctx context.Context, eventID string) ([]*task.Task, error) {
	tasks, err := r.load(ctx, eventID)
	if err != nil {
		return nil, err
	}
	sortByDueDate(tasks)
	return tasks, nil
}

func (r *YAMLRepository) List(ctx context.Context) ([]*task.Task, error) {
	paths, err := r.storage.List(ctx, tasksPrefix)
	if err != nil {
		return nil, cerr.WrapStorageReadError("tasks", err)
	}

	sort.Strings(paths)

	var all []*task.Task
	for _, p := range paths {
		data, err := r.storage.Read(ctx, p)
		if err != nil {
			continue
		}
		var tasks []*task.Task
		if err := yaml.Unmarshal(data, &tasks); err != nil {
			continue
		}
		all = append(all, tasks...)
	}
	return all, nil
}

func (r *YAMLRepository) Update(ctx context.Context, t *task.Task) error {
	tasks, err := r.load(ctx, t.EventID)
	if err != nil {
		return err
	}
	for i, existing := range tasks {
		if existing.ID == t.ID {
			tasks[i] = t
			return r.store(ctx, t.EventID, tasks)
		}
	}
	return cerr.NewError(cerr.NotFound, "task not found", nil)
}

func sortByDueDate(tasks []*task.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		if !tasks[i].DueDate.Equal(tasks[j].DueDate) {
			return tasks[i].DueDate.Before(tasks[j].DueDate)
		}
		return tasks[i].ID < tasks[j].ID
	})
}
