package ecs

import (
	"errors"
	"testing"
)

// stub component used only in tests
type testComp struct{ val int }

func (testComp) Type() ComponentType { return 1 }

type otherComp struct{}

func (otherComp) Type() ComponentType { return 2 }

func TestCreateEntity(t *testing.T) {
	w := NewWorld()
	id := w.CreateEntity()
	if id == NilEntity {
		t.Fatal("expected non-nil entity ID")
	}
	if !w.Alive(id) {
		t.Fatal("expected entity to be alive after creation")
	}
}

func TestAddAndGetComponent(t *testing.T) {
	w := NewWorld()
	id := w.CreateEntity()
	w.Add(id, testComp{val: 42})

	c := w.Get(id, ComponentType(1))
	if c == nil {
		t.Fatal("expected component, got nil")
	}
	tc, ok := c.(testComp)
	if !ok {
		t.Fatal("wrong component type returned")
	}
	if tc.val != 42 {
		t.Fatalf("expected val=42, got %d", tc.val)
	}
}

func TestDestroyEntityRemovesComponents(t *testing.T) {
	w := NewWorld()
	id := w.CreateEntity()
	w.Add(id, testComp{val: 7})
	w.DestroyEntity(id)

	if w.Alive(id) {
		t.Fatal("entity should not be alive after DestroyEntity")
	}
	if w.Get(id, ComponentType(1)) != nil {
		t.Fatal("component should be gone after DestroyEntity")
	}
}

func TestQueryFiltersCorrectly(t *testing.T) {
	w := NewWorld()

	// entity with both A and B
	both := w.CreateEntity()
	w.Add(both, testComp{})
	w.Add(both, otherComp{})

	// entity with only A
	onlyA := w.CreateEntity()
	w.Add(onlyA, testComp{})

	results := w.Query(ComponentType(1), ComponentType(2))
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0] != both {
		t.Fatalf("expected entity %v in results, got %v", both, results[0])
	}
}

func TestRemoveComponent(t *testing.T) {
	w := NewWorld()
	id := w.CreateEntity()
	w.Add(id, testComp{val: 5})

	w.Remove(id, ComponentType(1))

	if w.Get(id, ComponentType(1)) != nil {
		t.Fatal("component should be nil after Remove")
	}
}

func TestRemoveNonexistentIsNoop(t *testing.T) {
	w := NewWorld()
	id := w.CreateEntity()
	// Removing a component type that was never added must not panic.
	w.Remove(id, ComponentType(99))
}

func TestHasComponent(t *testing.T) {
	w := NewWorld()
	id := w.CreateEntity()

	if w.Has(id, ComponentType(1)) {
		t.Fatal("Has should return false before Add")
	}
	w.Add(id, testComp{val: 1})
	if !w.Has(id, ComponentType(1)) {
		t.Fatal("Has should return true after Add")
	}
	w.Remove(id, ComponentType(1))
	if w.Has(id, ComponentType(1)) {
		t.Fatal("Has should return false after Remove")
	}
}

func TestQueryExcludesDeadEntities(t *testing.T) {
	w := NewWorld()
	alive := w.CreateEntity()
	w.Add(alive, testComp{})

	dead := w.CreateEntity()
	w.Add(dead, testComp{})
	w.DestroyEntity(dead)

	results := w.Query(ComponentType(1))
	for _, id := range results {
		if id == dead {
			t.Fatal("Query returned a destroyed entity")
		}
	}
	if len(results) != 1 || results[0] != alive {
		t.Fatalf("expected only the alive entity; got %v", results)
	}
}

func TestQueryReturnsCreationOrder(t *testing.T) {
	w := NewWorld()
	var want []EntityID
	for i := 0; i < 50; i++ {
		id := w.CreateEntity()
		w.Add(id, testComp{val: i})
		want = append(want, id)
	}
	got := w.Query(ComponentType(1))
	if len(got) != len(want) {
		t.Fatalf("expected %d results, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("result[%d] = %v; want %v (creation order)", i, got[i], want[i])
		}
	}
}

func TestInsertPanicsOnDuplicate(t *testing.T) {
	w := NewWorld()
	id := w.CreateEntity()
	w.Insert(id, testComp{val: 1})

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("second Insert of the same type must panic")
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrDuplicateFacet) {
			t.Fatalf("panic value = %v; want ErrDuplicateFacet", r)
		}
	}()
	w.Insert(id, testComp{val: 2})
}

func TestClearDropsEveryComponentOfType(t *testing.T) {
	w := NewWorld()
	a := w.CreateEntity()
	b := w.CreateEntity()
	w.Add(a, testComp{})
	w.Add(b, testComp{})
	w.Add(b, otherComp{})

	w.Clear(ComponentType(1))

	if w.Count(ComponentType(1)) != 0 {
		t.Fatalf("expected no testComp after Clear, got %d", w.Count(ComponentType(1)))
	}
	if !w.Has(b, ComponentType(2)) {
		t.Fatal("Clear must not touch other component types")
	}
}

func TestRestoreEntityAdvancesIDs(t *testing.T) {
	w := NewWorld()
	w.RestoreEntity(7)
	if !w.Alive(7) {
		t.Fatal("restored entity should be alive")
	}
	if next := w.CreateEntity(); next != 8 {
		t.Fatalf("CreateEntity after restoring 7 = %v; want 8", next)
	}
	got := w.Entities()
	if len(got) != 2 || got[0] != 7 || got[1] != 8 {
		t.Fatalf("Entities() = %v; want [7 8]", got)
	}
}
