package qlearning

import "testing"

func TestReplayBufferFillsAndWraps(t *testing.T) {
	b := NewReplayBuffer(4)
	if b.Len() != 0 {
		t.Fatalf("expected empty buffer, got %d", b.Len())
	}

	for i := 0; i < 6; i++ {
		b.Add(Transition{Action: i})
	}
	if b.Len() != 4 {
		t.Errorf("expected capped size 4, got %d", b.Len())
	}

	// Oldest entries (actions 0 and 1) were overwritten.
	seen := map[int]bool{}
	for _, tr := range b.buffer {
		seen[tr.Action] = true
	}
	for _, old := range []int{0, 1} {
		if seen[old] {
			t.Errorf("action %d should have been overwritten", old)
		}
	}
	for _, kept := range []int{2, 3, 4, 5} {
		if !seen[kept] {
			t.Errorf("action %d missing from buffer", kept)
		}
	}
}

func TestReplayBufferSampleBounds(t *testing.T) {
	b := NewReplayBuffer(8)
	for i := 0; i < 3; i++ {
		b.Add(Transition{Action: i})
	}

	batch := b.Sample(5)
	if len(batch) != 3 {
		t.Errorf("expected sample clamped to 3, got %d", len(batch))
	}
	for _, tr := range batch {
		if tr.Action < 0 || tr.Action > 2 {
			t.Errorf("sampled transition %+v never stored", tr)
		}
	}
}
