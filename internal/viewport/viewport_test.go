package viewport

import "testing"

func TestResizeNotifies(t *testing.T) {
	v := New(100, 50)
	var got [][2]int
	remove := v.OnResize(func(w, h int) { got = append(got, [2]int{w, h}) })

	v.Resize(300, 200)
	v.Resize(-5, 10)
	if len(got) != 2 || got[0] != [2]int{300, 200} || got[1] != [2]int{0, 10} {
		t.Fatalf("unexpected notifications %v", got)
	}
	if w, h := v.Size(); w != 0 || h != 10 {
		t.Errorf("unexpected size %dx%d", w, h)
	}

	remove()
	remove()
	v.Resize(1, 1)
	if len(got) != 2 {
		t.Error("removed listener still called")
	}
	if v.Listeners() != 0 {
		t.Errorf("expected no listeners, got %d", v.Listeners())
	}
}

func TestResizeOrder(t *testing.T) {
	v := New(0, 0)
	var order []int
	for i := 0; i < 5; i++ {
		v.OnResize(func(int, int) { order = append(order, i) })
	}
	v.Resize(1, 1)
	for i, n := range order {
		if n != i {
			t.Fatalf("listeners ran out of order: %v", order)
		}
	}
}

func TestNewClampsNegative(t *testing.T) {
	w, h := New(-1, -2).Size()
	if w != 0 || h != 0 {
		t.Errorf("expected 0x0, got %dx%d", w, h)
	}
}

func TestResizeClampsToMaxSide(t *testing.T) {
	v := New(3037000499, -1)
	if w, h := v.Size(); w != MaxSide || h != 0 {
		t.Fatalf("New: unexpected size %dx%d", w, h)
	}

	var got [2]int
	v.OnResize(func(w, h int) { got = [2]int{w, h} })
	v.Resize(3037000499, 3037000499)
	if got != [2]int{MaxSide, MaxSide} {
		t.Errorf("listener saw %v", got)
	}
	if w, h := v.Size(); w != MaxSide || h != MaxSide {
		t.Errorf("unexpected size %dx%d", w, h)
	}
}
