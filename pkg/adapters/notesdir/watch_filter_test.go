package notesdir

import (
	"path/filepath"
	"testing"

	"github.com/fsnotify/fsnotify"

	"github.com/jotapp/jot/pkg/core"
)

func TestMapEventType(t *testing.T) {
	store := New(Config{Dir: t.TempDir()})

	cases := []struct {
		op   fsnotify.Op
		want core.EventType
	}{
		{fsnotify.Create, core.EventCreate},
		{fsnotify.Write, core.EventModify},
		{fsnotify.Remove, core.EventDelete},
		{fsnotify.Rename, core.EventDelete},
		{fsnotify.Chmod, ""},
	}

	for _, tc := range cases {
		got := store.mapEventType(fsnotify.Event{Name: "x.md", Op: tc.op})
		if got != tc.want {
			t.Errorf("mapEventType(%v) = %q, want %q", tc.op, got, tc.want)
		}
	}
}

func TestResolveID(t *testing.T) {
	store := New(Config{Dir: t.TempDir()})

	cases := []struct {
		name string
		want string
	}{
		{filepath.Join("any", "where", "note_1.md"), "note_1"},
		{"upper.MD", "upper"},
		{"foo.txt", ""},
		{".md", ""},
		{"dir", ""},
	}

	for _, tc := range cases {
		if got := store.resolveID(tc.name); got != tc.want {
			t.Errorf("resolveID(%q) = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestShouldIgnore(t *testing.T) {
	store := New(Config{
		Dir:    t.TempDir(),
		Ignore: []string{"draft-*"},
	})

	ev := func(name string) fsnotify.Event {
		return fsnotify.Event{Name: name, Op: fsnotify.Write}
	}

	t.Run("Non-Markdown Ignored", func(t *testing.T) {
		if !store.shouldIgnore(ev("foo.txt"), "*") {
			t.Error("expected foo.txt to be ignored")
		}
	})

	t.Run("Ignore Patterns Apply", func(t *testing.T) {
		if !store.shouldIgnore(ev("draft-1.md"), "*") {
			t.Error("expected draft-1.md to be ignored")
		}
		if store.shouldIgnore(ev("note_1.md"), "*") {
			t.Error("expected note_1.md to pass")
		}
	})

	t.Run("Pattern Filters Ids", func(t *testing.T) {
		if store.shouldIgnore(ev("note_1.md"), "note_*") {
			t.Error("expected note_1 to match note_*")
		}
		if !store.shouldIgnore(ev("memo.md"), "note_*") {
			t.Error("expected memo to be filtered by note_*")
		}
	})
}
