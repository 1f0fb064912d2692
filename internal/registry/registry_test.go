package registry

import (
	"context"
	"errors"
	"testing"
)

func register(t *testing.T, id, title string) {
	t.Helper()
	Register(Frontend{
		ID:    id,
		Title: title,
		Run:   func(ctx context.Context, opts Options) error { return nil },
	})
	t.Cleanup(func() { unregister(id) })
}

func TestRegisterAndCreate(t *testing.T) {
	register(t, "test-b", "Second")
	register(t, "test-a", "First")

	if !Exists("test-a") {
		t.Error("Exists(test-a) = false, expected true")
	}

	f, err := Create("test-b")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if f.Title != "Second" {
		t.Errorf("Title = %s, expected Second", f.Title)
	}
	if err := f.Run(context.Background(), Options{}); err != nil {
		t.Errorf("Run() error = %v", err)
	}

	list := List()
	if len(list) != 2 {
		t.Fatalf("List() returned %d frontends, expected 2", len(list))
	}
	if list[0].ID != "test-a" || list[1].ID != "test-b" {
		t.Errorf("List() = %+v, expected sorted by ID", list)
	}
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("nope")
	if !errors.Is(err, ErrUnknownFrontend) {
		t.Errorf("Create() error = %v, expected ErrUnknownFrontend", err)
	}
	if Exists("nope") {
		t.Error("Exists(nope) = true, expected false")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	register(t, "dup", "Dup")

	defer func() {
		if recover() == nil {
			t.Error("registering a duplicate ID should panic")
		}
	}()
	Register(Frontend{ID: "dup", Run: func(context.Context, Options) error { return nil }})
}

func TestRegisterWithoutRunPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("registering a frontend without Run should panic")
		}
	}()
	Register(Frontend{ID: "broken"})
}
