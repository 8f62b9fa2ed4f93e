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

func TestCreateEntity(t *testing.T) {
	em := NewEntityManager()
	id1 := em.CreateEntity()
	id2 := em.CreateEntity()

	// 测试ID从1开始且唯一
	if id1 != 1 || id2 != 2 {
		t.Errorf("entity IDs: got (%d, %d), want (1, 2)", id1, id2)
	}
}

func TestGenericGetComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &testPositionComponent{X: 100, Y: 200})

	pos, ok := GetComponent[*testPositionComponent](em, id)
	if !ok {
		t.Fatal("component should be found")
	}
	if pos.X != 100 || pos.Y != 200 {
		t.Errorf("component data: got (%v, %v), want (100, 200)", pos.X, pos.Y)
	}

	// 未添加的组件
	if _, ok := GetComponent[*testVelocityComponent](em, id); ok {
		t.Error("velocity component should not be found")
	}
	if !HasComponent[*testPositionComponent](em, id) {
		t.Error("HasComponent should report position component")
	}
}

func TestDestroyEntityHiddenFromQueries(t *testing.T) {
	em := NewEntityManager()
	id1 := em.CreateEntity()
	id2 := em.CreateEntity()
	em.AddComponent(id1, &testPositionComponent{})
	em.AddComponent(id2, &testPositionComponent{})

	em.DestroyEntity(id1)

	// 标记删除后立即从查询中消失
	got := GetEntitiesWith1[*testPositionComponent](em)
	if len(got) != 1 || got[0] != id2 {
		t.Errorf("query after destroy: got %v, want [%d]", got, id2)
	}
	if em.IsAlive(id1) {
		t.Error("destroyed entity should not be alive")
	}

	em.RemoveMarkedEntities()
	if _, ok := GetComponent[*testPositionComponent](em, id1); ok {
		t.Error("component of removed entity should be gone")
	}
	if em.Count() != 1 {
		t.Errorf("Count: got %d, want 1", em.Count())
	}
}

func TestGetEntitiesWithSortedAndFiltered(t *testing.T) {
	em := NewEntityManager()
	var both []EntityID
	for i := 0; i < 20; i++ {
		id := em.CreateEntity()
		em.AddComponent(id, &testPositionComponent{})
		if i%2 == 0 {
			em.AddComponent(id, &testVelocityComponent{})
			both = append(both, id)
		}
	}

	got := GetEntitiesWith2[*testPositionComponent, *testVelocityComponent](em)
	if !reflect.DeepEqual(got, both) {
		t.Errorf("GetEntitiesWith2: got %v, want %v", got, both)
	}
}

func TestRemoveComponentOf(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &testPositionComponent{})

	RemoveComponentOf[*testPositionComponent](em, id)
	if HasComponent[*testPositionComponent](em, id) {
		t.Error("component should be removed")
	}
}
