package nca

import (
	"fmt"
	"sync"

	"nca-lab/internal/activation"
)

// Channel bundles the filter and activation driving one color channel.
type Channel struct {
	Filter     Filter
	Activation activation.Func
}

// Params holds the per-channel settings the engine reads each step. The
// parameter-editing collaborator may mutate them at any time; the engine takes
// a consistent snapshot at each step boundary, so a matrix is never read
// mid-mutation.
type Params struct {
	mu       sync.RWMutex
	channels [3]Channel
}

// NewParams returns params with identity filters and the default activations.
func NewParams() *Params {
	p := &Params{}
	defaults := activation.Defaults()
	for c := range p.channels {
		p.channels[c] = Channel{Filter: IdentityFilter(), Activation: defaults[c]}
	}
	return p
}

// SetChannel replaces the settings of channel ch (0..2).
func (p *Params) SetChannel(ch int, c Channel) error {
	if ch < 0 || ch > 2 {
		return fmt.Errorf("channel index %d out of range", ch)
	}
	if c.Activation == nil {
		return fmt.Errorf("channel %d: nil activation", ch)
	}
	p.mu.Lock()
	p.channels[ch] = c
	p.mu.Unlock()
	return nil
}

// SetFilter replaces the filter of channel ch (0..2).
func (p *Params) SetFilter(ch int, f Filter) error {
	if ch < 0 || ch > 2 {
		return fmt.Errorf("channel index %d out of range", ch)
	}
	p.mu.Lock()
	p.channels[ch].Filter = f
	p.mu.Unlock()
	return nil
}

// SetActivation replaces the activation of channel ch (0..2).
func (p *Params) SetActivation(ch int, fn activation.Func) error {
	if ch < 0 || ch > 2 {
		return fmt.Errorf("channel index %d out of range", ch)
	}
	if fn == nil {
		return fmt.Errorf("channel %d: nil activation", ch)
	}
	p.mu.Lock()
	p.channels[ch].Activation = fn
	p.mu.Unlock()
	return nil
}

// Filter returns the current filter of channel ch.
func (p *Params) Filter(ch int) Filter {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.channels[ch].Filter
}

// Snapshot returns a consistent copy of all three channels for one step.
func (p *Params) Snapshot() [3]Channel {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.channels
}
