package draw

import (
	"reflect"
	"testing"

	"github.com/justinecabel/3-digit-lotto-analyzer/internal/errors"
)

func mustDraw(t *testing.T, values ...int) Draw {
	t.Helper()
	return Draw{Values: values}
}

func TestInsertChronologicalReversesToNewestFirst(t *testing.T) {
	c := NewCollection()
	c.InsertChronological([]Draw{
		mustDraw(t, 1, 2, 3),
		mustDraw(t, 4, 5, 6),
	})

	draws := c.Draws()
	if len(draws) != 2 {
		t.Fatalf("len = %d, want 2", len(draws))
	}
	if !reflect.DeepEqual(draws[0].Values, []int{4, 5, 6}) {
		t.Errorf("front = %v, want the most recent supplied draw", draws[0].Values)
	}
	if !reflect.DeepEqual(draws[1].Values, []int{1, 2, 3}) {
		t.Errorf("back = %v, want the oldest supplied draw", draws[1].Values)
	}
}

func TestInsertFrontThenChronologicalKeepsInvariant(t *testing.T) {
	c := NewCollection()
	c.InsertFront(mustDraw(t, 9, 9, 9))
	c.InsertChronological([]Draw{mustDraw(t, 1, 1, 1), mustDraw(t, 2, 2, 2)})

	draws := c.Draws()
	want := [][]int{{2, 2, 2}, {1, 1, 1}, {9, 9, 9}}
	for i, w := range want {
		if !reflect.DeepEqual(draws[i].Values, w) {
			t.Errorf("position %d = %v, want %v", i, draws[i].Values, w)
		}
	}
}

func TestChronologicalIsReversedCopy(t *testing.T) {
	c := NewCollection()
	c.InsertFront(mustDraw(t, 1, 2, 3)) // oldest
	c.InsertFront(mustDraw(t, 4, 5, 6)) // newest

	chrono := c.Chronological()
	if !reflect.DeepEqual(chrono[0].Values, []int{1, 2, 3}) {
		t.Errorf("chronological[0] = %v, want the oldest draw", chrono[0].Values)
	}

	// Mutating the copy must not touch the collection
	chrono[0].Values[0] = 99
	if c.Draws()[1].Values[0] == 99 {
		t.Error("Chronological returned a shared slice")
	}
}

func TestRemoveAt(t *testing.T) {
	c := NewCollection()
	c.InsertChronological([]Draw{mustDraw(t, 1, 1, 1), mustDraw(t, 2, 2, 2), mustDraw(t, 3, 3, 3)})

	if err := c.RemoveAt(1); err != nil {
		t.Fatalf("RemoveAt(1) failed: %v", err)
	}
	draws := c.Draws()
	if len(draws) != 2 {
		t.Fatalf("len = %d after removal, want 2", len(draws))
	}
	if !reflect.DeepEqual(draws[0].Values, []int{3, 3, 3}) || !reflect.DeepEqual(draws[1].Values, []int{1, 1, 1}) {
		t.Errorf("unexpected survivors: %v", draws)
	}
}

func TestRemoveAtInvalidIndexIsExplicit(t *testing.T) {
	c := NewCollection()
	c.InsertFront(mustDraw(t, 1, 2, 3))

	for _, index := range []int{-1, 1, 5} {
		err := c.RemoveAt(index)
		if err == nil {
			t.Errorf("RemoveAt(%d) succeeded on a 1-element collection", index)
			continue
		}
		if code := errors.GetCode(err); code != errors.CodeIndexOutOfRange {
			t.Errorf("RemoveAt(%d) code = %s, want %s", index, code, errors.CodeIndexOutOfRange)
		}
	}

	if c.Len() != 1 {
		t.Error("failed removal mutated the collection")
	}
}

func TestClear(t *testing.T) {
	c := NewCollection()
	c.InsertFront(mustDraw(t, 1, 2, 3))
	c.Clear()
	if c.Len() != 0 {
		t.Errorf("Len = %d after Clear, want 0", c.Len())
	}
}
