package registry

import (
	"testing"

	"github.com/vovakirdan/tui-lander/internal/core"
)

type stubGame struct{ id string }

func (g stubGame) ID() string                           { return g.id }
func (g stubGame) Title() string                        { return "Stub " + g.id }
func (g stubGame) Reset(core.RuntimeConfig)             {}
func (g stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g stubGame) Render(*core.Screen)                  {}
func (g stubGame) State() core.GameState                { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("stub-b", func() Game { return stubGame{id: "stub-b"} })
	Register("stub-a", func() Game { return stubGame{id: "stub-a"} })

	if !Exists("stub-a") || !Exists("stub-b") {
		t.Fatal("registered games should exist")
	}
	if Exists("missing") {
		t.Error("unregistered game should not exist")
	}

	g, err := Create("stub-a")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.ID() != "stub-a" {
		t.Errorf("created %q, expected stub-a", g.ID())
	}

	if _, err := Create("missing"); err == nil {
		t.Error("creating an unknown game should fail")
	}

	list := List()
	var ids []string
	for _, info := range list {
		ids = append(ids, info.ID)
	}
	for i := 1; i < len(ids); i++ {
		if ids[i-1] > ids[i] {
			t.Errorf("list not sorted: %v", ids)
		}
	}
	for _, info := range list {
		if info.ID == "stub-a" && info.Title != "Stub stub-a" {
			t.Errorf("title = %q", info.Title)
		}
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub-dup", func() Game { return stubGame{id: "stub-dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate registration should panic")
		}
	}()
	Register("stub-dup", func() Game { return stubGame{id: "stub-dup"} })
}
