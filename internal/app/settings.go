package app

import (
	"fmt"

	"nca-lab/internal/activation"
	"nca-lab/internal/sims/nca"
	"nca-lab/internal/store"
)

// ApplySettings compiles the stored channel settings and installs them on the
// parameter store. A channel whose activation fails to compile keeps its
// previous activation; the first such failure is returned so the caller can
// report it. Filters are plain numbers and always apply.
func ApplySettings(p *nca.Params, s store.Settings) error {
	var firstErr error
	for ch, cs := range s.Channels() {
		if err := p.SetFilter(ch, nca.FilterFromCoeffs(cs.Filter)); err != nil {
			return err
		}
		fn, err := activation.Compile(cs.Activation)
		if err != nil {
			if firstErr == nil {
				firstErr = fmt.Errorf("channel %d: %w", ch, err)
			}
			continue
		}
		if err := p.SetActivation(ch, fn); err != nil {
			return err
		}
	}
	return firstErr
}
