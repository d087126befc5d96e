package ecs

import (
	"reflect"
	"testing"
)

// 测试组件类型定义
type testPositionComponent struct {
	X, Y float64
}

type testVelocityComponent struct {
	VX, VY float64
}

type testTagComponent struct{}

func TestCreateEntity(t *testing.T) {
	em := NewEntityManager()
	id1 := em.CreateEntity()
	id2 := em.CreateEntity()

	if id1 == id2 {
		t.Error("Entity IDs should be unique")
	}
	// ID从1开始
	if id1 != 1 || id2 != 2 {
		t.Errorf("expected IDs 1 and 2, got %d and %d", id1, id2)
	}
	if em.EntityCount() != 2 {
		t.Errorf("EntityCount() = %d, want 2", em.EntityCount())
	}
}

func TestAddAndGetComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	em.AddComponent(id, &testPositionComponent{X: 100, Y: 200})

	comp, found := em.GetComponent(id, reflect.TypeOf(&testPositionComponent{}))
	if !found {
		t.Fatal("Component should be found")
	}
	retrieved := comp.(*testPositionComponent)
	if retrieved.X != 100 || retrieved.Y != 200 {
		t.Errorf("Component data mismatch, expected (100, 200), got (%f, %f)", retrieved.X, retrieved.Y)
	}
}

func TestAddComponentToUnknownEntity(t *testing.T) {
	em := NewEntityManager()
	em.AddComponent(42, &testPositionComponent{})

	if em.Exists(42) {
		t.Error("AddComponent must not create entities implicitly")
	}
}

func TestDestroyEntity(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &testPositionComponent{})

	em.DestroyEntity(id)

	// 清理前实体仍存在
	if !em.Exists(id) {
		t.Error("Entity should still exist before cleanup")
	}

	em.RemoveMarkedEntities()
	if em.Exists(id) {
		t.Error("Entity should be removed after cleanup")
	}
	if HasComponent[*testPositionComponent](em, id) {
		t.Error("components of a removed entity must be gone")
	}
}

func TestGetEntitiesWithIsOrdered(t *testing.T) {
	em := NewEntityManager()

	ids := make([]EntityID, 0, 20)
	for i := 0; i < 20; i++ {
		id := em.CreateEntity()
		em.AddComponent(id, &testPositionComponent{X: float64(i)})
		ids = append(ids, id)
	}

	got := GetEntitiesWith1[*testPositionComponent](em)
	if len(got) != len(ids) {
		t.Fatalf("expected %d entities, got %d", len(ids), len(got))
	}
	for i := range ids {
		if got[i] != ids[i] {
			t.Fatalf("entity order mismatch at %d: got %d, want %d", i, got[i], ids[i])
		}
	}
}

func TestGenericQueries(t *testing.T) {
	em := NewEntityManager()

	id1 := em.CreateEntity()
	em.AddComponent(id1, &testPositionComponent{})
	em.AddComponent(id1, &testVelocityComponent{})
	em.AddComponent(id1, &testTagComponent{})

	id2 := em.CreateEntity()
	em.AddComponent(id2, &testPositionComponent{})

	id3 := em.CreateEntity()
	em.AddComponent(id3, &testVelocityComponent{})

	tests := []struct {
		name string
		got  []EntityID
		want []EntityID
	}{
		{"单组件 Position", GetEntitiesWith1[*testPositionComponent](em), []EntityID{id1, id2}},
		{"双组件 Position+Velocity", GetEntitiesWith2[*testPositionComponent, *testVelocityComponent](em), []EntityID{id1}},
		{"三组件", GetEntitiesWith3[*testPositionComponent, *testVelocityComponent, *testTagComponent](em), []EntityID{id1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !reflect.DeepEqual(tt.got, tt.want) {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestGenericGetAndRemove(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &testVelocityComponent{VX: 5, VY: 10})

	vel, ok := GetComponent[*testVelocityComponent](em, id)
	if !ok {
		t.Fatal("velocity should be found")
	}
	if vel.VX != 5 || vel.VY != 10 {
		t.Errorf("velocity mismatch: %+v", vel)
	}

	if _, ok := GetComponent[*testPositionComponent](em, id); ok {
		t.Error("position was never added")
	}

	RemoveComponent[*testVelocityComponent](em, id)
	if HasComponent[*testVelocityComponent](em, id) {
		t.Error("velocity should be removed")
	}
}

func TestClear(t *testing.T) {
	em := NewEntityManager()
	em.CreateEntity()
	em.CreateEntity()
	em.Clear()

	if em.EntityCount() != 0 {
		t.Errorf("EntityCount() after Clear = %d, want 0", em.EntityCount())
	}
	if id := em.CreateEntity(); id != 3 {
		t.Errorf("IDs must keep increasing after Clear, got %d", id)
	}
}
