package motion

import "testing"

func TestListeners_NotifyOrder(t *testing.T) {
	var l Listeners
	var got []int
	l.Add(func() { got = append(got, 1) })
	l.Add(func() { got = append(got, 2) })
	l.Add(func() { got = append(got, 3) })

	l.Notify()

	want := []int{1, 2, 3}
	if len(got) != len(want) {
		t.Fatalf("Notify fired %d listeners, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("listener order = %v, want %v", got, want)
			break
		}
	}
}

func TestListeners_Remove(t *testing.T) {
	var l Listeners
	calls := 0
	remove := l.Add(func() { calls++ })

	l.Notify()
	remove()
	l.Notify()

	if calls != 1 {
		t.Errorf("listener fired %d times, want 1", calls)
	}
	if l.Len() != 0 {
		t.Errorf("Len() = %d after remove, want 0", l.Len())
	}

	// Removing twice is a no-op.
	remove()
	l.Notify()
	if calls != 1 {
		t.Errorf("listener fired %d times after double remove, want 1", calls)
	}
}

func TestListeners_RemoveDuringNotify(t *testing.T) {
	var l Listeners
	var removeSecond func()
	first := 0
	second := 0
	l.Add(func() {
		first++
		removeSecond()
	})
	removeSecond = l.Add(func() { second++ })

	l.Notify()
	l.Notify()

	if first != 2 {
		t.Errorf("first listener fired %d times, want 2", first)
	}
	if second != 0 {
		t.Errorf("removed listener fired %d times, want 0", second)
	}
}

func TestListeners_AddDuringNotify(t *testing.T) {
	var l Listeners
	added := 0
	l.Add(func() {
		if added == 0 {
			l.Add(func() { added++ })
		}
	})

	l.Notify()
	if added != 0 {
		t.Error("listener added during Notify fired in the same round")
	}
	l.Notify()
	if added != 1 {
		t.Errorf("listener added during Notify fired %d times on next round, want 1", added)
	}
}

func TestListeners_Clear(t *testing.T) {
	var l Listeners
	calls := 0
	l.Add(func() { calls++ })
	l.Clear()
	l.Notify()
	if calls != 0 {
		t.Error("Clear did not drop listeners")
	}
}
