package registry

import (
	"math/rand/v2"
	"testing"

	"github.com/vovakirdan/tui-arkanoid/internal/config"
)

type stubLayout struct{ id string }

func (s stubLayout) ID() string    { return s.id }
func (s stubLayout) Title() string { return "Stub " + s.id }
func (s stubLayout) Blocks(config.BlocksConfig, *rand.Rand) []BlockSpec {
	return nil
}

func TestRegisterAndGet(t *testing.T) {
	Register(stubLayout{id: "zz-stub-b"})
	Register(stubLayout{id: "zz-stub-a"})

	if !Exists("zz-stub-a") {
		t.Fatal("Exists(zz-stub-a) = false after Register")
	}

	l, err := Get("zz-stub-b")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if l.Title() != "Stub zz-stub-b" {
		t.Errorf("Title() = %q", l.Title())
	}

	if _, err := Get("missing"); err == nil {
		t.Error("Get(missing) should fail")
	}

	list := List()
	var ids []string
	for _, info := range list {
		if info.ID == "zz-stub-a" || info.ID == "zz-stub-b" {
			ids = append(ids, info.ID)
		}
	}
	if len(ids) != 2 || ids[0] != "zz-stub-a" {
		t.Errorf("List() should be sorted by ID, got %v", ids)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register(stubLayout{id: "zz-dup"})

	defer func() {
		if recover() == nil {
			t.Error("registering a duplicate ID should panic")
		}
	}()
	Register(stubLayout{id: "zz-dup"})
}
