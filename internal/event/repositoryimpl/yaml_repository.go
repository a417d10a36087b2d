package repositoryimpl

import (
	"context"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/showdesk/showdesk/internal/event"
	"github.com/showdesk/showdesk/pkg/cerr"
	"github.com/showdesk/showdesk/pkg/storage"
)

const eventsPrefix = "events"

type YAMLRepository struct {
	storage storage.Storage
}

func NewYAMLRepository(s storage.Storage) *YAMLRepository {
	return &YAMLRepository{storage: s}
}

func path(id string) string {
	return fmt.Sprintf("%s/%s.yaml", eventsPrefix, id)
}

func (r *YAMLRepository) Create(ctx context.Context, e *event.Event) error {
	exists, err := r.storage.Exists(ctx, path(e.ID))
	if err != nil {
		return cerr.WrapStorageWriteError("event", err)
	}
	if exists {
		return cerr.NewError(cerr.AlreadyExists, "event already exists", nil)
	}
	data, err := yaml.Marshal(e)
	if err != nil {
		return cerr.NewError(cerr.Internal, "server error", fmt.Errorf("failed to marshal event: %w", err))
	}
	if err := r.storage.Write(ctx, path(e.ID), data); err != nil {
		return cerr.WrapStorageWriteError("event", err)
	}
	return nil
}

func (r *YAMLRepository) Get(ctx context.Context, id string) (*event.Event, error) {
	data, err := r.storage.Read(ctx, path(id))
	if err != nil {
		return nil, cerr.WrapStorageReadError("event", err)
	}
	var e event.Event
	if err := yaml.Unmarshal(data, &e); err != nil {
		return nil, cerr.NewError(cerr.Internal, "server error", fmt.Errorf("failed to unmarshal event: %w", err))
	}
	return &e, nil
}

func (r *YAMLRepository) List(ctx context.Context) ([]*event.Event, error) {
	paths, err := r.storage.List(ctx, eventsPrefix)
	if err != nil {
		return nil, cerr.WrapStorageReadError("events", err)
	}

	sort.Strings(paths)

	var all []*event.Event
	for _, p := range paths {
		data, err := r.storage.Read(ctx, p)
		if err != nil {
			continue
		}
		var e event.Event
		if err := yaml.Unmarshal(data, &e); err != nil {
			continue
		}
		all = append(all, &e)
	}
	return all, nil
}

func (r *YAMLRepository) Update(ctx context.Context, e *event.Event) error {
	exists, err := r.storage.Exists(ctx, path(e.ID))
	if err != nil {
		return cerr.WrapStorageWriteError("event", err)
	}
	if !exists {
		return cerr.NewError(cerr.NotFound, "event not found", nil)
	}
	data, err := yaml.Marshal(e)
	if err != nil {
		return cerr.NewError(cerr.Internal, "server error", fmt.Errorf("failed to marshal event: %w", err))
	}
	if err := r.storage.Write(ctx, path(e.ID), data); err != nil {
		return cerr.WrapStorageWriteError("event", err)
	}
	return nil
}

func (r *YAMLRepository) Delete(ctx context.Context, id string) error {
	if err := r.storage.Delete(ctx, path(id)); err != nil {
		return cerr.WrapStorageDeleteError("event", err)
	}
	return nil
}
