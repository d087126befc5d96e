package entities

import (
	"testing"

	"github.com/gonewx/fishtap/pkg/components"
	"github.com/gonewx/fishtap/pkg/config"
	"github.com/gonewx/fishtap/pkg/ecs"
)

func TestNewTargetEntity(t *testing.T) {
	em := ecs.NewEntityManager()
	tpl := config.EnemyTemplate{ID: "crab", Sprite: "crab", HP: 8}
	id := NewTargetEntity(em, tpl, config.SpriteEntry{Width: 200, Height: 140}, nil, 225, 350)

	target, ok := ecs.GetComponent[*components.TargetComponent](em, id)
	if !ok {
		t.Fatal("missing TargetComponent")
	}
	if target.HP != 8 || target.MaxHP != 8 || target.TemplateID != "crab" {
		t.Errorf("target = %+v", *target)
	}
	if target.State != components.TargetSpawning || !target.InteractionBlocked {
		t.Errorf("new target should be spawning and blocked, got %v blocked=%v", target.State, target.InteractionBlocked)
	}

	sprite, ok := ecs.GetComponent[*components.SpriteComponent](em, id)
	if !ok {
		t.Fatal("missing SpriteComponent")
	}
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	x, y, w, h := sprite.Bounds(pos)
	if x != 125 || y != 280 || w != 200 || h != 140 {
		t.Errorf("bounds = (%v, %v, %v, %v), want (125, 280, 200, 140)", x, y, w, h)
	}
}

func TestNewButtonEntity(t *testing.T) {
	em := ecs.NewEntityManager()
	clicked := false
	id, button := NewButtonEntity(em, 10, 20, 100, 40, "Fight", nil, nil, func() { clicked = true })

	if !button.Enabled || button.State != components.UINormal {
		t.Errorf("new button should be enabled and normal, got enabled=%v state=%v", button.Enabled, button.State)
	}
	if !ecs.HasComponent[*components.UIComponent](em, id) {
		t.Error("button should carry the UI marker")
	}
	got, _ := ecs.GetComponent[*components.ButtonComponent](em, id)
	got.OnClick()
	if !clicked {
		t.Error("OnClick not wired")
	}
}

func TestNewTextInputEntity(t *testing.T) {
	em := ecs.NewEntityManager()
	var submitted string
	id, input := NewTextInputEntity(em, 0, 0, 120, 48, nil, "0123456789", 3, func(s string) { submitted = s })

	if input.MaxLength != 3 || input.AllowedChars != "0123456789" {
		t.Errorf("input = %+v", *input)
	}
	pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
	if !ok || pos.X != 0 || pos.Y != 0 {
		t.Error("missing position")
	}
	input.OnSubmit("42")
	if submitted != "42" {
		t.Errorf("submitted = %q", submitted)
	}
}
