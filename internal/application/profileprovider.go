package application

import (
	"sync"

	"github.com/ericfisherdev/formfill/internal/domain/model"
)

// ProfileProvider enables runtime hot-swap of the autofill profile.
// It holds a mutex-protected copy of the current profile, allowing updates
// made through the API to take effect on the next suggestion request
// without restarting the application.
type ProfileProvider struct {
	mu      sync.RWMutex
	profile model.Profile
}

// NewProfileProvider creates a new provider holding the given initial profile.
func NewProfileProvider(profile model.Profile) *ProfileProvider {
	return &ProfileProvider{profile: profile}
}

// Get returns the current profile.
func (p *ProfileProvider) Get() model.Profile {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.profile
}

// Replace swaps the current profile. The next caller of Get() receives the
// new value.
func (p *ProfileProvider) Replace(profile model.Profile) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.profile = profile
}
