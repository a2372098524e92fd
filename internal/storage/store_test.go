package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/darrenchooji/fiona/internal/config"
	"github.com/darrenchooji/fiona/internal/domain"
)

func sampleTasks(t *testing.T) []domain.Task {
	t.Helper()
	f := domain.NewFactory(domain.AllowPast)

	todo, err := f.Todo("read book")
	require.NoError(t, err)
	deadline, err := f.Deadline("return book", "2030-01-01 1800")
	require.NoError(t, err)
	deadline.MarkDone()
	event, err := f.Event("project meeting", "2030-08-06 1400", "2030-08-06 1600")
	require.NoError(t, err)

	return []domain.Task{todo, deadline, event}
}

func rendered(tasks []domain.Task) []string {
	out := make([]string, 0, len(tasks))
	for _, task := range tasks {
		out = append(out, task.String())
	}
	return out
}

// openStores returns one of each backend rooted in a temp directory
func openStores(t *testing.T) []Store {
	t.Helper()
	dir := t.TempDir()

	file := NewFileStore(filepath.Join(dir, "data", "fiona.txt"), newTestCodec(), nil)
	sqlite, err := OpenSQLite(filepath.Join(dir, "data", "fiona.db"), newTestCodec(), nil)
	require.NoError(t, err)
	t.Cleanup(func() { sqlite.Close() })

	return []Store{file, sqlite}
}

func TestStores_LoadBeforeSave(t *testing.T) {
	for _, store := range openStores(t) {
		t.Run(store.Name(), func(t *testing.T) {
			tasks, err := store.Load(context.Background())
			require.NoError(t, err)
			assert.Empty(t, tasks)
		})
	}
}

func TestStores_SaveLoad(t *testing.T) {
	ctx := context.Background()
	tasks := sampleTasks(t)

	for _, store := range openStores(t) {
		t.Run(store.Name(), func(t *testing.T) {
			require.NoError(t, store.Save(ctx, tasks))

			loaded, err := store.Load(ctx)
			require.NoError(t, err)
			assert.Equal(t, rendered(tasks), rendered(loaded))
		})
	}
}

func TestStores_SaveReplacesPreviousContents(t *testing.T) {
	ctx := context.Background()
	tasks := sampleTasks(t)

	for _, store := range openStores(t) {
		t.Run(store.Name(), func(t *testing.T) {
			require.NoError(t, store.Save(ctx, tasks))
			require.NoError(t, store.Save(ctx, tasks[1:2]))

			loaded, err := store.Load(ctx)
			require.NoError(t, err)
			assert.Equal(t, rendered(tasks[1:2]), rendered(loaded))

			require.NoError(t, store.Save(ctx, nil))
			loaded, err = store.Load(ctx)
			require.NoError(t, err)
			assert.Empty(t, loaded)
		})
	}
}

func TestFileStore_WritesRecordFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deep", "nested", "fiona.txt")
	store := NewFileStore(path, newTestCodec(), nil)

	require.NoError(t, store.Save(context.Background(), sampleTasks(t)))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	want := "T | 0 | read book\n" +
		"D | 1 | return book | 2030-01-01 1800\n" +
		"E | 0 | project meeting | 2030-08-06 1400 | 2030-08-06 1600\n"
	assert.Equal(t, want, string(data))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file must not be left behind")
}

func TestFileStore_LoadSkipsMalformedLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fiona.txt")
	content := "T | 0 | read book\nD | 0 | return book\nE | 0 | camp | 2025-05-30 0000 | 2025-06-02 0000\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	tasks, err := NewFileStore(path, newTestCodec(), nil).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, domain.KindTodo, tasks[0].Kind)
	assert.Equal(t, domain.KindEvent, tasks[1].Kind)
}

func TestFileStore_LoadErrorIsPersistenceError(t *testing.T) {
	// A directory cannot be read as a task file
	dir := t.TempDir()

	_, err := NewFileStore(dir, newTestCodec(), nil).Load(context.Background())
	var pErr *domain.PersistenceError
	require.ErrorAs(t, err, &pErr)
	assert.Equal(t, "load", pErr.Op)
	assert.Equal(t, dir, pErr.Path)
}

func TestFileStore_SaveErrorIsPersistenceError(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	// The parent "directory" is a regular file
	store := NewFileStore(filepath.Join(blocker, "fiona.txt"), newTestCodec(), nil)
	err := store.Save(context.Background(), sampleTasks(t))

	var pErr *domain.PersistenceError
	require.ErrorAs(t, err, &pErr)
	assert.Equal(t, "save", pErr.Op)
}

func TestFileStore_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	store := NewFileStore(filepath.Join(t.TempDir(), "fiona.txt"), newTestCodec(), nil)
	err := store.Save(ctx, sampleTasks(t))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSQLiteStore_SkipsMalformedRows(t *testing.T) {
	store, err := OpenSQLite(filepath.Join(t.TempDir(), "fiona.db"), newTestCodec(), nil)
	require.NoError(t, err)
	defer store.Close()

	_, err = store.conn.Exec(`INSERT INTO records (position, line) VALUES (1, 'T | 0 | read book'), (2, 'D | 0 | return book'), (3, 'T | 1 | write essay')`)
	require.NoError(t, err)

	tasks, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"[T][ ] read book", "[T][X] write essay"}, rendered(tasks))
}

func TestSQLiteStore_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fiona.db")
	tasks := sampleTasks(t)

	store, err := OpenSQLite(path, newTestCodec(), nil)
	require.NoError(t, err)
	require.NoError(t, store.Save(context.Background(), tasks))
	require.NoError(t, store.Close())

	reopened, err := OpenSQLite(path, newTestCodec(), nil)
	require.NoError(t, err)
	defer reopened.Close()

	loaded, err := reopened.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, rendered(tasks), rendered(loaded))
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		cfg     config.StorageConfig
		want    string
		wantErr bool
	}{
		{"file", config.StorageConfig{Backend: config.BackendFile, Path: filepath.Join(dir, "a.txt")}, "file", false},
		{"default backend", config.StorageConfig{Path: filepath.Join(dir, "b.txt")}, "file", false},
		{"sqlite", config.StorageConfig{Backend: config.BackendSQLite, Path: filepath.Join(dir, "c.db")}, "sqlite", false},
		{"unknown", config.StorageConfig{Backend: "csv"}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, err := Open(tt.cfg, newTestCodec(), nil)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, store)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, store.Name())
			if c, ok := store.(io.Closer); ok {
				c.Close()
			}
		})
	}
}
