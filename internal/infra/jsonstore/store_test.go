package jsonstore

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mkondo/remindo/internal/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	dir := t.TempDir()
	store := New(filepath.Join(dir, "tasks.json"))
	if err := store.Initialize(); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	return store
}

func TestStore_Initialize(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "tasks.json")

	store := New(path)

	if err := store.Initialize(); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}

	if _, err := os.Stat(path); err != nil {
		t.Errorf("store file not created: %v", err)
	}

	// Initialize again should be idempotent
	if err := store.Initialize(); err != nil {
		t.Fatalf("Initialize() second call error = %v", err)
	}
}

func TestStore_LoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	store := New(filepath.Join(dir, "tasks.json"))

	// Absent file is an empty list, not an error
	tasks, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(tasks) != 0 {
		t.Errorf("Load() = %v, want empty list", tasks)
	}
}

func TestStore_NextID(t *testing.T) {
	store := newTestStore(t)

	id1, err := store.NextID()
	if err != nil {
		t.Fatalf("NextID() error = %v", err)
	}
	if id1 != 1 {
		t.Errorf("NextID() = %d, want 1", id1)
	}

	id2, err := store.NextID()
	if err != nil {
		t.Fatalf("NextID() error = %v", err)
	}
	if id2 != 2 {
		t.Errorf("NextID() = %d, want 2", id2)
	}
}

func TestStore_NextID_SurvivesSave(t *testing.T) {
	store := newTestStore(t)

	if _, err := store.NextID(); err != nil {
		t.Fatalf("NextID() error = %v", err)
	}
	if err := store.Save([]domain.Task{{ID: 1, Text: "a"}}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	id, err := store.NextID()
	if err != nil {
		t.Fatalf("NextID() error = %v", err)
	}
	if id != 2 {
		t.Errorf("NextID() after Save = %d, want 2", id)
	}
}

func TestStore_SaveAndLoad(t *testing.T) {
	store := newTestStore(t)

	now := time.Now().Truncate(time.Second) // JSON loses nanoseconds
	at := now.Add(10 * time.Minute)
	tasks := []domain.Task{
		{ID: 1, Text: "with reminder", Created: now, Reminder: &at},
		{ID: 2, Text: "completed", Created: now, Completed: true},
		{ID: 3, Text: "plain", Created: now},
	}

	if err := store.Save(tasks); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("Load() returned %d tasks, want 3", len(got))
	}

	// Insertion order is preserved
	for i, want := range []int{1, 2, 3} {
		if got[i].ID != want {
			t.Errorf("Load()[%d].ID = %d, want %d", i, got[i].ID, want)
		}
	}

	if got[0].Text != "with reminder" {
		t.Errorf("Text = %q, want %q", got[0].Text, "with reminder")
	}
	if got[0].Reminder == nil || !got[0].Reminder.Equal(at) {
		t.Errorf("Reminder = %v, want %v", got[0].Reminder, at)
	}
	if !got[1].Completed {
		t.Error("Completed flag lost in round trip")
	}
	if got[2].Reminder != nil {
		t.Errorf("Reminder = %v, want nil", got[2].Reminder)
	}
	if !got[0].Created.Equal(now) {
		t.Errorf("Created = %v, want %v", got[0].Created, now)
	}
}

func TestStore_SaveOverwritesWholesale(t *testing.T) {
	store := newTestStore(t)

	if err := store.Save([]domain.Task{{ID: 1, Text: "a"}, {ID: 2, Text: "b"}}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := store.Save([]domain.Task{{ID: 2, Text: "b"}}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(got) != 1 || got[0].ID != 2 {
		t.Errorf("Load() = %v, want only task 2", got)
	}
}

func TestStore_CorruptFileDegradesToEmpty(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tasks.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}

	store := New(path)
	tasks, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(tasks) != 0 {
		t.Errorf("Load() = %v, want empty list", tasks)
	}

	// The ID counter restarts too
	id, err := store.NextID()
	if err != nil {
		t.Fatalf("NextID() error = %v", err)
	}
	if id != 1 {
		t.Errorf("NextID() = %d, want 1", id)
	}
}
