package bodypose

// MultiChannelSmoother owns one AdaptiveFilter per named scalar channel and
// routes incoming samples to the matching filter. The channel set is fixed
// at construction; filters persist across frames so each channel keeps its
// own velocity and lag state.
type MultiChannelSmoother struct {
	filters map[string]*AdaptiveFilter
}

// NewMultiChannelSmoother creates a smoother with one filter per channel
// name, all sharing the given config.
func NewMultiChannelSmoother(cfg FilterConfig, channels []string) *MultiChannelSmoother {
	filters := make(map[string]*AdaptiveFilter, len(channels))
	for _, ch := range channels {
		filters[ch] = NewAdaptiveFilter(cfg)
	}
	return &MultiChannelSmoother{filters: filters}
}

// AddChannel registers an additional channel with its own config.
// Re-adding an existing channel replaces its filter and discards state.
func (s *MultiChannelSmoother) AddChannel(name string, cfg FilterConfig) {
	s.filters[name] = NewAdaptiveFilter(cfg)
}

// Smooth filters one sample on the named channel.
func (s *MultiChannelSmoother) Smooth(channel string, value, timestampMs float64) (float64, error) {
	f, ok := s.filters[channel]
	if !ok {
		return 0, ErrUnknownChannel
	}
	return f.Filter(value, timestampMs), nil
}

// SmoothAll filters a full set of raw scalars against a single shared frame
// timestamp and returns the smoothed set. Values on unknown channels are
// passed through unfiltered so a caller never loses data to a config gap.
func (s *MultiChannelSmoother) SmoothAll(raw map[string]float64, timestampMs float64) map[string]float64 {
	out := make(map[string]float64, len(raw))
	for ch, v := range raw {
		f, ok := s.filters[ch]
		if !ok {
			out[ch] = v
			continue
		}
		out[ch] = f.Filter(v, timestampMs)
	}
	return out
}

// Channels returns the number of owned filters.
func (s *MultiChannelSmoother) Channels() int {
	return len(s.filters)
}

// ResetAll clears every owned filter back to the uninitialized state. Call
// at the start of a new capture so stale velocity state never leaks across
// sessions.
func (s *MultiChannelSmoother) ResetAll() {
	for _, f := range s.filters {
		f.Reset()
	}
}
