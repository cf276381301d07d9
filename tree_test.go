package obtree

import "testing"

func newTestTree(bp int) *Tree[int] {
	return New[int](Config{BP: bp})
}

func collect(t *Tree[int]) []int {
	out := make([]int, t.Len())
	for i := range out {
		out[i] = t.Value(t.GetID(i))
	}
	return out
}

func TestPushBackOrdersSequentially(t *testing.T) {
	tr := newTestTree(4)
	for i := 0; i < 20; i++ {
		tr.PushBack(i)
	}
	if tr.Len() != 20 {
		t.Fatalf("Len() = %d, want 20", tr.Len())
	}
	for i, v := range collect(tr) {
		if v != i {
			t.Fatalf("index %d = %d, want %d", i, v, i)
		}
	}
	if err := tr.Check(); err != nil {
		t.Fatalf("Check() after pushes: %v", err)
	}
}

func TestPushFrontReversesOrder(t *testing.T) {
	tr := newTestTree(4)
	for i := 0; i < 20; i++ {
		tr.PushFront(i)
	}
	got := collect(tr)
	for i, v := range got {
		want := 19 - i
		if v != want {
			t.Fatalf("index %d = %d, want %d", i, v, want)
		}
	}
	if err := tr.Check(); err != nil {
		t.Fatalf("Check() after push_front: %v", err)
	}
}

func TestInsertBeforeAndAfter(t *testing.T) {
	tr := newTestTree(4)
	mid := tr.PushBack(10)
	tr.InsertBefore(5, mid)
	tr.InsertAfter(15, mid)

	got := collect(tr)
	want := []int{5, 10, 15}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestRemoveShrinksAndRebalances(t *testing.T) {
	tr := newTestTree(4)
	handles := make([]Handle[int], 0, 50)
	for i := 0; i < 50; i++ {
		handles = append(handles, tr.PushBack(i))
	}
	// remove every other element, forcing underflow merges and borrows
	// throughout the tree.
	for i := 0; i < 50; i += 2 {
		tr.Remove(handles[i])
	}
	if tr.Len() != 25 {
		t.Fatalf("Len() = %d, want 25", tr.Len())
	}
	if err := tr.Check(); err != nil {
		t.Fatalf("Check() after removal: %v", err)
	}
	got := collect(tr)
	for i, v := range got {
		want := 2*i + 1
		if v != want {
			t.Fatalf("index %d = %d, want %d", i, v, want)
		}
	}
}

func TestRemoveToEmptyDemotesRoot(t *testing.T) {
	tr := newTestTree(4)
	handles := make([]Handle[int], 0, 30)
	for i := 0; i < 30; i++ {
		handles = append(handles, tr.PushBack(i))
	}
	for _, h := range handles {
		tr.Remove(h)
		if err := tr.Check(); err != nil {
			t.Fatalf("Check() mid-drain: %v", err)
		}
	}
	if tr.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", tr.Len())
	}
	if !tr.root.isRoot() {
		t.Fatalf("root chunk reports isRoot() == false")
	}
}

func TestHandleInvalidAfterRemove(t *testing.T) {
	tr := newTestTree(4)
	h := tr.PushBack(42)
	if !h.Valid() {
		t.Fatalf("Valid() = false before removal")
	}
	tr.Remove(h)
	if h.Valid() {
		t.Fatalf("Valid() = true after removal")
	}
}

func TestGetIndexRoundTrip(t *testing.T) {
	tr := newTestTree(4)
	handles := make([]Handle[int], 0, 40)
	for i := 0; i < 40; i++ {
		handles = append(handles, tr.PushBack(i))
	}
	for want, h := range handles {
		if got := tr.GetIndex(h); got != want {
			t.Fatalf("GetIndex(handles[%d]) = %d, want %d", want, got, want)
		}
	}
}

func TestGetIndexAfterRemovalsShifts(t *testing.T) {
	tr := newTestTree(4)
	handles := make([]Handle[int], 0, 10)
	for i := 0; i < 10; i++ {
		handles = append(handles, tr.PushBack(i))
	}
	tr.Remove(handles[0])
	tr.Remove(handles[1])
	if got := tr.GetIndex(handles[5]); got != 3 {
		t.Fatalf("GetIndex(handles[5]) = %d, want 3", got)
	}
}

func TestValueMutWritesThrough(t *testing.T) {
	tr := newTestTree(4)
	h := tr.PushBack(1)
	*tr.ValueMut(h) = 99
	if got := tr.Value(h); got != 99 {
		t.Fatalf("Value() = %d, want 99", got)
	}
}

func TestOutOfRangeIndexIsFatal(t *testing.T) {
	tr := newTestTree(4)
	tr.PushBack(1)
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("GetID(5) did not panic")
		}
		f, ok := r.(*Fault)
		if !ok {
			t.Fatalf("recovered %T, want *Fault", r)
		}
		if f.Kind != FaultMisuse {
			t.Fatalf("Kind = %v, want FaultMisuse", f.Kind)
		}
	}()
	tr.GetID(5)
}

func TestStaleHandleIsFatal(t *testing.T) {
	tr := newTestTree(4)
	h := tr.PushBack(1)
	tr.Remove(h)
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("Value(stale handle) did not panic")
		}
		f, ok := r.(*Fault)
		if !ok {
			t.Fatalf("recovered %T, want *Fault", r)
		}
		if f.Kind != FaultMisuse {
			t.Fatalf("Kind = %v, want FaultMisuse", f.Kind)
		}
	}()
	tr.Value(h)
}

func TestCheckHoldsAfterEveryInsert(t *testing.T) {
	for _, bp := range []int{4, 5, 8} {
		tr := newTestTree(bp)
		for i := 0; i < 200; i++ {
			tr.PushBack(i)
			if err := tr.Check(); err != nil {
				t.Fatalf("bp=%d: Check() after insert %d: %v", bp, i, err)
			}
		}
	}
}

func TestLargeTreeStaysBalanced(t *testing.T) {
	for _, bp := range []int{4, 5, 8, 16} {
		tr := newTestTree(bp)
		for i := 0; i < 500; i++ {
			tr.PushBack(i)
		}
		if err := tr.Check(); err != nil {
			t.Fatalf("bp=%d: Check() after 500 pushes: %v", bp, err)
		}
		if tr.Len() != 500 {
			t.Fatalf("bp=%d: Len() = %d, want 500", bp, tr.Len())
		}
	}
}
