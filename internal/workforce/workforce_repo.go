package workforce

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/AndreFCTeles/ElectrexAPI/internal/shared/jsonstore"
)

// WorkersFile is the collection file holding the full worker set.
const WorkersFile = "tblWorkerList.json"

// Repository owns the persisted worker collection. Mutate is the only
// write path: it hands the current set to fn and persists the returned
// set atomically, or nothing when fn fails.
type Repository interface {
	LoadAll(ctx context.Context) ([]Worker, error)
	Mutate(ctx context.Context, fn func(workers []Worker) ([]Worker, error)) error
}

type fileRepository struct {
	store *jsonstore.Store
	file  string
}

func NewRepository(store *jsonstore.Store) Repository {
	return &fileRepository{store: store, file: WorkersFile}
}

func (r *fileRepository) LoadAll(ctx context.Context) ([]Worker, error) {
	var workers []Worker
	if err := r.store.Read(ctx, r.file, &workers); err != nil {
		if errors.Is(err, jsonstore.ErrNotFound) {
			return []Worker{}, nil
		}
		return nil, err
	}
	if workers == nil {
		workers = []Worker{}
	}
	return workers, nil
}

func (r *fileRepository) Mutate(ctx context.Context, fn func(workers []Worker) ([]Worker, error)) error {
	return r.store.Update(ctx, r.file, func(raw []byte) (any, error) {
		var workers []Worker
		if raw != nil {
			if err := json.Unmarshal(raw, &workers); err != nil {
				return nil, err
			}
		}
		if workers == nil {
			workers = []Worker{}
		}
		return fn(workers)
	})
}
