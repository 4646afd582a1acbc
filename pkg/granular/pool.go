package granular

// OverflowPolicy defines what happens when a grain onset fires while every
// pool slot is occupied.
type OverflowPolicy int

const (
	// DropNewest ignores the new onset. The safest real-time default:
	// running grains are never disturbed.
	DropNewest OverflowPolicy = iota
	// StealShortestRemaining reclaims the live grain with the least
	// remaining life; its tail is cut off mid-window.
	StealShortestRemaining
)

// Pool is a fixed-capacity arena of grain slots. Allocation pops a free
// index and retirement pushes it back; the slot array never grows, so the
// real-time thread never allocates.
type Pool struct {
	grains []Grain
	free   []int
	policy OverflowPolicy
}

// NewPool creates a pool with the given capacity and overflow policy.
// Capacities below 1 are raised to 1.
func NewPool(capacity int, policy OverflowPolicy) *Pool {
	if capacity < 1 {
		capacity = 1
	}
	p := &Pool{
		grains: make([]Grain, capacity),
		free:   make([]int, 0, capacity),
		policy: policy,
	}
	p.Reset()
	return p
}

// Capacity returns the maximum number of simultaneously live grains.
func (p *Pool) Capacity() int {
	return len(p.grains)
}

// Live returns the number of currently live grains.
func (p *Pool) Live() int {
	return len(p.grains) - len(p.free)
}

// Acquire returns the index of a slot for a new grain. With a full pool it
// applies the overflow policy: DropNewest reports ok=false, while
// StealShortestRemaining returns the slot of the live grain closest to the
// end of its life (stole=true).
func (p *Pool) Acquire() (idx int, stole, ok bool) {
	if n := len(p.free); n > 0 {
		idx = p.free[n-1]
		p.free = p.free[:n-1]
		return idx, false, true
	}

	if p.policy == DropNewest {
		return 0, false, false
	}

	best := -1
	bestRemaining := 0
	for i := range p.grains {
		g := &p.grains[i]
		if !g.Alive {
			continue
		}
		if best == -1 || g.Remaining() < bestRemaining {
			best = i
			bestRemaining = g.Remaining()
		}
	}
	if best == -1 {
		return 0, false, false
	}
	return best, true, true
}

// Release retires the grain in the given slot and makes it reusable.
func (p *Pool) Release(idx int) {
	p.grains[idx].Alive = false
	p.free = append(p.free, idx)
}

// Reset retires every grain.
func (p *Pool) Reset() {
	p.free = p.free[:0]
	for i := range p.grains {
		p.grains[i] = Grain{}
		// Push in reverse so slot 0 is handed out first.
		p.free = append(p.free, len(p.grains)-1-i)
	}
}
