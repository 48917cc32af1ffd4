package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-maze/internal/core"
)

type stubGame struct {
	id    string
	state core.GameState
}

func (g *stubGame) ID() string                           { return g.id }
func (g *stubGame) Title() string                        { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig)             { g.state = core.GameState{} }
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{State: g.state} }
func (g *stubGame) Render(*core.Screen)                  {}
func (g *stubGame) State() core.GameState                { return g.state }
func (g *stubGame) Description() string                  { return "a stub" }

func TestRegisterAndCreate(t *testing.T) {
	Register("zz_stub_a", func() Game { return &stubGame{id: "zz_stub_a"} })

	if !Exists("zz_stub_a") {
		t.Fatal("Exists() = false after Register")
	}

	g, err := Create("zz_stub_a")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if g.ID() != "zz_stub_a" {
		t.Errorf("Create().ID() = %q, expected zz_stub_a", g.ID())
	}

	info, ok := Lookup("zz_stub_a")
	if !ok {
		t.Fatal("Lookup() = false after Register")
	}
	if info.Title != "Stub zz_stub_a" || info.Description != "a stub" {
		t.Errorf("Lookup() = %+v", info)
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("does_not_exist"); !errors.Is(err, ErrUnknownGame) {
		t.Errorf("Create(unknown) error = %v, expected ErrUnknownGame", err)
	}
	if Exists("does_not_exist") {
		t.Error("Exists(unknown) = true")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz_stub_dup", func() Game { return &stubGame{id: "zz_stub_dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register() did not panic")
		}
	}()
	Register("zz_stub_dup", func() Game { return &stubGame{id: "zz_stub_dup"} })
}

func TestListSorted(t *testing.T) {
	Register("zz_stub_c", func() Game { return &stubGame{id: "zz_stub_c"} })
	Register("zz_stub_b", func() Game { return &stubGame{id: "zz_stub_b"} })

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID >= list[i].ID {
			t.Errorf("List() not sorted at %d: %q >= %q", i, list[i-1].ID, list[i].ID)
		}
	}
}
