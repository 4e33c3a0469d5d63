package eq

import "fmt"

const defaultChannels = 2

// Option mutates constructor configuration.
type Option func(*config) error

type config struct {
	channels int
	kernel   string
}

func defaultConfig() config {
	return config{
		channels: defaultChannels,
	}
}

// WithChannels sets the number of independently filtered channels. All
// channels share one coefficient set. Must be >= 1.
func WithChannels(n int) Option {
	return func(cfg *config) error {
		if n < 1 {
			return fmt.Errorf("eq: channel count must be >= 1: %d: %w", n, ErrChannelCount)
		}

		cfg.channels = n

		return nil
	}
}

// WithKernel forces the block kernel registered under name instead of the
// one picked from the detected CPU features. See Kernels.
func WithKernel(name string) Option {
	return func(cfg *config) error {
		cfg.kernel = name
		return nil
	}
}
