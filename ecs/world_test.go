package ecs

import "testing"

var (
	testPos = NewComponent[[2]float64]()
	testTag = NewComponent[string]()
)

func TestEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
	}{
		{"single", 1, 0},
		{"three_destroy_middle", 3, 1},
		{"none_destroyed", 2, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				ents = append(ents, w.CreateEntity())
			}
			for _, e := range ents {
				if !w.IsAlive(e) {
					t.Fatalf("entity %v should be alive", e)
				}
			}
			if c.destroyIndex >= 0 {
				if !w.DestroyEntity(ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return true for an alive entity")
				}
				if w.IsAlive(ents[c.destroyIndex]) {
					t.Fatalf("entity should not be alive after destruction")
				}
				if w.DestroyEntity(ents[c.destroyIndex]) {
					t.Fatalf("double destroy should report false")
				}
			}
		})
	}
}

func TestStaleHandleAfterRecycle(t *testing.T) {
	w := NewWorld()
	a := w.CreateEntity()
	w.DestroyEntity(a)
	b := w.CreateEntity()

	if a.ID != b.ID {
		t.Fatalf("expected the id to be recycled, got %v vs %v", a, b)
	}
	if w.IsAlive(a) {
		t.Fatalf("stale handle must not be alive")
	}
	if !w.IsAlive(b) {
		t.Fatalf("fresh handle must be alive")
	}
}

func TestComponentsAndIteration(t *testing.T) {
	w := NewWorld()
	e1 := w.CreateEntity()
	e2 := w.CreateEntity()

	Add(w, e1, testPos, [2]float64{1, 2})
	Add(w, e2, testPos, [2]float64{3, 4})
	Add(w, e1, testTag, "player")

	if got := Count(w, testPos); got != 2 {
		t.Fatalf("Count = %d, want 2", got)
	}

	p, ok := Get(w, e1, testPos)
	if !ok || p[0] != 1 {
		t.Fatalf("Get(e1) = %v ok=%v", p, ok)
	}

	// Mutation through ForEach pointers must stick.
	ForEach(w, testPos, func(e Entity, v *[2]float64) {
		v[0] += 10
	})
	p, _ = Get(w, e1, testPos)
	if p[0] != 11 {
		t.Fatalf("mutation through ForEach did not persist, got %v", p[0])
	}

	if !Remove(w, e1, testTag) {
		t.Fatalf("Remove should report true for a present component")
	}
	if Has(w, e1, testTag) {
		t.Fatalf("component should be gone after Remove")
	}

	// Destroying an entity drops its components.
	w.DestroyEntity(e2)
	if got := Count(w, testPos); got != 1 {
		t.Fatalf("Count after destroy = %d, want 1", got)
	}
}

type counterSystem struct {
	order *[]string
	name  string
}

func (s *counterSystem) Update(w *World) {
	*s.order = append(*s.order, s.name)
	ForEach(w, testPos, func(_ Entity, v *[2]float64) {
		v[1]++
	})
}

func TestSchedulerRunsSystemsInOrder(t *testing.T) {
	w := NewWorld()
	e := w.CreateEntity()
	Add(w, e, testPos, [2]float64{0, 0})

	var order []string
	sched := NewScheduler(&counterSystem{order: &order, name: "a"})
	sched.Add(&counterSystem{order: &order, name: "b"})
	sched.Add(nil)

	sched.Update(w)
	sched.Update(w)

	want := []string{"a", "b", "a", "b"}
	if len(order) != len(want) {
		t.Fatalf("systems ran %d times, want %d", len(order), len(want))
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("run order = %v, want %v", order, want)
		}
	}

	p, _ := Get(w, e, testPos)
	if p[1] != 4 {
		t.Fatalf("component updated %v times, want 4", p[1])
	}
}
