package granular

import (
	"testing"
)

func fillPool(p *Pool) {
	for i := 0; i < p.Capacity(); i++ {
		idx, stole, ok := p.Acquire()
		if !ok || stole {
			panic("pool should have free slots")
		}
		p.grains[idx] = Grain{Alive: true, ID: uint64(i), DurationSamples: 100 * (i + 1)}
	}
}

func TestPoolAcquireRelease(t *testing.T) {
	p := NewPool(4, DropNewest)

	if p.Capacity() != 4 || p.Live() != 0 {
		t.Fatalf("fresh pool: capacity=%d live=%d", p.Capacity(), p.Live())
	}

	fillPool(p)
	if p.Live() != 4 {
		t.Fatalf("live = %d, want 4", p.Live())
	}

	p.Release(2)
	if p.Live() != 3 {
		t.Fatalf("live after release = %d, want 3", p.Live())
	}
	if p.grains[2].Alive {
		t.Error("released grain still alive")
	}

	idx, stole, ok := p.Acquire()
	if !ok || stole || idx != 2 {
		t.Errorf("expected to reuse slot 2, got idx=%d stole=%v ok=%v", idx, stole, ok)
	}
}

func TestPoolDropNewest(t *testing.T) {
	p := NewPool(4, DropNewest)
	fillPool(p)

	if _, _, ok := p.Acquire(); ok {
		t.Error("full DropNewest pool handed out a slot")
	}
	if p.Live() != 4 {
		t.Errorf("live = %d, want 4", p.Live())
	}
}

func TestPoolStealShortestRemaining(t *testing.T) {
	p := NewPool(4, StealShortestRemaining)
	fillPool(p)

	// Grain 0 has duration 100; age grain 3 (duration 400) to leave only
	// 10 samples so it becomes the steal target.
	p.grains[3].AgeSamples = 390

	idx, stole, ok := p.Acquire()
	if !ok || !stole {
		t.Fatalf("expected steal, got idx=%d stole=%v ok=%v", idx, stole, ok)
	}
	if idx != 3 {
		t.Errorf("stole slot %d, want 3 (least remaining life)", idx)
	}
	if p.Live() != 4 {
		t.Errorf("live after steal = %d, want 4", p.Live())
	}
}

func TestPoolReset(t *testing.T) {
	p := NewPool(4, DropNewest)
	fillPool(p)
	p.Reset()

	if p.Live() != 0 {
		t.Fatalf("live after reset = %d, want 0", p.Live())
	}
	for i := range p.grains {
		if p.grains[i].Alive {
			t.Errorf("slot %d alive after reset", i)
		}
	}
}

func TestPoolMinimumCapacity(t *testing.T) {
	p := NewPool(0, DropNewest)
	if p.Capacity() != 1 {
		t.Errorf("capacity = %d, want 1", p.Capacity())
	}
}
