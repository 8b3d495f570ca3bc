package core

import "testing"

func TestInputQueueOrder(t *testing.T) {
	var q InputQueue
	q.Push(ActionStart)
	q.Push(ActionNone)
	q.Push(ActionJump)
	q.Push(ActionJump)

	if q.Len() != 3 {
		t.Fatalf("Len() = %d, expected 3 (ActionNone dropped)", q.Len())
	}

	got := q.Drain()
	want := []Action{ActionStart, ActionJump, ActionJump}
	if len(got) != len(want) {
		t.Fatalf("Drain() returned %v, expected %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Drain()[%d] = %v, expected %v", i, got[i], want[i])
		}
	}

	if q.Len() != 0 {
		t.Errorf("queue should be empty after Drain, has %d", q.Len())
	}
	if again := q.Drain(); again != nil {
		t.Errorf("second Drain() = %v, expected nil", again)
	}
}

func TestInputQueueDrainIsCopy(t *testing.T) {
	var q InputQueue
	q.Push(ActionJump)
	first := q.Drain()

	q.Push(ActionReset)
	if first[0] != ActionJump {
		t.Errorf("drained slice was overwritten by later Push: %v", first)
	}
}

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	if f.Has(ActionJump) {
		t.Error("new frame should be empty")
	}

	f.Set(ActionJump)
	f.Set(ActionLeft)
	if !f.Has(ActionJump) || !f.Has(ActionLeft) {
		t.Error("frame should report set actions")
	}

	f.Clear()
	if f.Has(ActionJump) {
		t.Error("Clear should remove all actions")
	}

	var zero InputFrame
	if zero.Has(ActionJump) {
		t.Error("zero frame should report nothing")
	}
	zero.Set(ActionDown)
	if !zero.Has(ActionDown) {
		t.Error("Set on zero frame should allocate")
	}
}

func TestActionString(t *testing.T) {
	if ActionJump.String() != "Jump" {
		t.Errorf("ActionJump.String() = %q", ActionJump.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("unknown action should stringify to Unknown")
	}
}
