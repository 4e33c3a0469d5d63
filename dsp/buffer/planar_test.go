package buffer

import "testing"

func TestNewLayout(t *testing.T) {
	b := New(3, 5)

	if b.NumChannels() != 3 || b.Frames() != 5 {
		t.Fatalf("layout = %dx%d, want 3x5", b.NumChannels(), b.Frames())
	}

	for ch, s := range b.Channels() {
		if len(s) != 5 || cap(s) != 5 {
			t.Fatalf("channel %d len/cap = %d/%d, want 5/5", ch, len(s), cap(s))
		}
	}

	b.Channel(1)[4] = 7
	if b.Channel(2)[0] != 0 || b.Channel(1)[4] != 7 {
		t.Fatal("channels overlap")
	}

	if e := New(-1, 4); e.NumChannels() != 0 || e.Frames() != 0 {
		t.Fatalf("negative channels gave %dx%d", e.NumChannels(), e.Frames())
	}
}

func TestReshapeReusesAndZeroes(t *testing.T) {
	b := New(2, 8)
	b.Channel(0)[3] = 1
	backing := &b.data[0]

	b.Reshape(2, 4)

	if &b.data[0] != backing {
		t.Fatal("shrinking Reshape reallocated")
	}

	for ch, s := range b.Channels() {
		for i, v := range s {
			if v != 0 {
				t.Fatalf("channel %d sample %d = %v, want 0", ch, i, v)
			}
		}
	}

	b.Reshape(4, 16)

	if b.NumChannels() != 4 || b.Frames() != 16 {
		t.Fatalf("layout = %dx%d, want 4x16", b.NumChannels(), b.Frames())
	}
}

func TestReshapeDoesNotAllocateWithinCapacity(t *testing.T) {
	b := New(2, 256)

	if allocs := testing.AllocsPerRun(50, func() {
		b.Reshape(2, 128)
		b.Reshape(1, 256)
	}); allocs != 0 {
		t.Fatalf("Reshape allocs = %v, want 0", allocs)
	}
}

func TestCopyIsDeep(t *testing.T) {
	b := New(2, 3)
	b.Channel(1)[2] = 0.5

	c := b.Copy()
	if c.NumChannels() != 2 || c.Frames() != 3 || c.Channel(1)[2] != 0.5 {
		t.Fatalf("copy = %dx%d with sample %v, want 2x3 with 0.5", c.NumChannels(), c.Frames(), c.Channel(1)[2])
	}

	c.Channel(1)[2] = 9

	if b.Channel(1)[2] != 0.5 {
		t.Fatal("Copy shares storage")
	}

	b.Zero()

	if b.Channel(1)[2] != 0 {
		t.Fatal("Zero left data behind")
	}
}

func TestPool(t *testing.T) {
	p := NewPool()

	b := p.Get(2, 4)
	b.Channel(0)[0] = 42
	p.Put(b)

	b2 := p.Get(2, 4)
	for ch, s := range b2.Channels() {
		for i, v := range s {
			if v != 0 {
				t.Fatalf("reused channel %d sample %d = %v, want 0", ch, i, v)
			}
		}
	}

	p.Put(b2)
	p.Put(nil)
}
