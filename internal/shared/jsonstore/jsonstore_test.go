package jsonstore_test

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/AndreFCTeles/ElectrexAPI/internal/shared/jsonstore"

	"github.com/stretchr/testify/assert"
)

type record struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func TestStore_WriteThenRead(t *testing.T) {
	ctx := context.Background()
	store := jsonstore.New(t.TempDir())

	in := []record{{ID: "1", Name: "alpha"}, {ID: "2", Name: "beta"}}
	assert.NoError(t, store.Write(ctx, "records.json", in))

	var out []record
	assert.NoError(t, store.Read(ctx, "records.json", &out))
	assert.Equal(t, in, out)
}

func TestStore_ReadMissingFile(t *testing.T) {
	store := jsonstore.New(t.TempDir())

	var out []record
	err := store.Read(context.Background(), "absent.json", &out)
	assert.ErrorIs(t, err, jsonstore.ErrNotFound)
}

func TestStore_RejectsUnsafeNames(t *testing.T) {
	ctx := context.Background()
	store := jsonstore.New(t.TempDir())

	for _, name := range []string{"", "../escape.json", "a/b.json", ".hidden"} {
		err := store.Write(ctx, name, []record{})
		assert.ErrorIs(t, err, jsonstore.ErrInvalidName, "name %q", name)
	}
}

func TestStore_UpdateSeesNilRawForNewFile(t *testing.T) {
	ctx := context.Background()
	store := jsonstore.New(t.TempDir())

	err := store.Update(ctx, "fresh.json", func(raw []byte) (any, error) {
		assert.Nil(t, raw)
		return []record{{ID: "1", Name: "first"}}, nil
	})
	assert.NoError(t, err)

	var out []record
	assert.NoError(t, store.Read(ctx, "fresh.json", &out))
	assert.Len(t, out, 1)
}

func TestStore_UpdateFailureLeavesFileUntouched(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store := jsonstore.New(dir)

	before := []record{{ID: "1", Name: "keep"}}
	assert.NoError(t, store.Write(ctx, "records.json", before))

	boom := errors.New("boom")
	err := store.Update(ctx, "records.json", func(raw []byte) (any, error) {
		return nil, boom
	})
	assert.ErrorIs(t, err, boom)

	var out []record
	assert.NoError(t, store.Read(ctx, "records.json", &out))
	assert.Equal(t, before, out)

	// no temp leftovers from aborted mutations
	entries, err := os.ReadDir(dir)
	assert.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestStore_UpdateReadModifyWrite(t *testing.T) {
	ctx := context.Background()
	store := jsonstore.New(t.TempDir())
	assert.NoError(t, store.Write(ctx, "records.json", []record{{ID: "1", Name: "a"}}))

	err := store.Update(ctx, "records.json", func(raw []byte) (any, error) {
		var rs []record
		if err := json.Unmarshal(raw, &rs); err != nil {
			return nil, err
		}
		return append(rs, record{ID: "2", Name: "b"}), nil
	})
	assert.NoError(t, err)

	var out []record
	assert.NoError(t, store.Read(ctx, "records.json", &out))
	assert.Len(t, out, 2)
}

func TestStore_ConcurrentUpdatesAllLand(t *testing.T) {
	ctx := context.Background()
	store := jsonstore.New(t.TempDir())
	assert.NoError(t, store.Write(ctx, "counter.json", []record{}))

	const n = 20
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = store.Update(ctx, "counter.json", func(raw []byte) (any, error) {
				var rs []record
				if raw != nil {
					if err := json.Unmarshal(raw, &rs); err != nil {
						return nil, err
					}
				}
				return append(rs, record{}), nil
			})
		}()
	}
	wg.Wait()

	var out []record
	assert.NoError(t, store.Read(ctx, "counter.json", &out))
	assert.Len(t, out, n)
}

func TestStore_WriteIsWellFormedJSON(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store := jsonstore.New(dir)
	assert.NoError(t, store.Write(ctx, "records.json", []record{{ID: "1"}}))

	raw, err := os.ReadFile(filepath.Join(dir, "records.json"))
	assert.NoError(t, err)
	assert.True(t, json.Valid(raw))
}
