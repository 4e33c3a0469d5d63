package buffer

// Planar holds channels*frames samples, one contiguous run per channel.
type Planar struct {
	data  []float64
	views [][]float64
}

// New returns a zero-filled buffer. Negative sizes are treated as 0.
func New(channels, frames int) *Planar {
	b := &Planar{}
	b.Reshape(channels, frames)

	return b
}

// Channels returns one slice per channel. The slices alias the buffer and
// stay valid until the next Reshape.
func (b *Planar) Channels() [][]float64 {
	return b.views
}

// Channel returns the samples of channel ch.
func (b *Planar) Channel(ch int) []float64 {
	return b.views[ch]
}

// NumChannels returns the channel count.
func (b *Planar) NumChannels() int {
	return len(b.views)
}

// Frames returns the number of samples per channel.
func (b *Planar) Frames() int {
	if len(b.views) == 0 {
		return 0
	}

	return len(b.views[0])
}

// Reshape sets the layout to channels x frames, reusing existing capacity
// when possible. Sample contents are zeroed.
func (b *Planar) Reshape(channels, frames int) {
	channels = max(channels, 0)
	frames = max(frames, 0)
	n := channels * frames

	if n <= cap(b.data) {
		b.data = b.data[:n]
		clear(b.data)
	} else {
		b.data = make([]float64, n)
	}

	if channels <= cap(b.views) {
		b.views = b.views[:channels]
	} else {
		b.views = make([][]float64, channels)
	}

	for ch := range b.views {
		b.views[ch] = b.data[ch*frames : (ch+1)*frames : (ch+1)*frames]
	}
}

// Zero sets all samples to 0.
func (b *Planar) Zero() {
	clear(b.data)
}

// Copy returns a deep copy of the buffer.
func (b *Planar) Copy() *Planar {
	out := New(b.NumChannels(), b.Frames())
	copy(out.data, b.data)

	return out
}
