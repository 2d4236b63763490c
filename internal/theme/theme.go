// Package theme resolves and persists the light/dark display preference
package theme

import (
	"github.com/charmbracelet/log"
)

// Preference is the binary display preference.
type Preference int

const (
	Light Preference = iota
	Dark
)

// String returns the persisted string form.
func (p Preference) String() string {
	if p == Dark {
		return "dark"
	}
	return "light"
}

// Opposite returns the other preference.
func (p Preference) Opposite() Preference {
	if p == Dark {
		return Light
	}
	return Dark
}

// Parse returns the preference for s. The second return is false for anything
// but the two literal forms; a stored value is adopted verbatim or not at all.
func Parse(s string) (Preference, bool) {
	switch s {
	case "dark":
		return Dark, true
	case "light":
		return Light, true
	default:
		return Light, false
	}
}

// Source says which tier produced a resolved preference.
type Source int

const (
	SourceDefault Source = iota
	SourceStored
	SourceTerminal
)

// String returns a human-readable tier name.
func (s Source) String() string {
	switch s {
	case SourceStored:
		return "saved preference"
	case SourceTerminal:
		return "terminal background"
	default:
		return "default"
	}
}

// Store persists the preference under a single key. Implementations must keep
// the value across restarts.
type Store interface {
	// Preference returns the stored string form, empty when never set.
	Preference() (string, error)
	// SetPreference stores the string form.
	SetPreference(value string) error
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithDarkHint sets the platform "prefers dark" query. It is consulted only
// when no valid stored value exists, and at most once per resolve.
func WithDarkHint(hint func() bool) ResolverOption {
	return func(r *Resolver) { r.darkHint = hint }
}

// WithApplyHook sets a callback invoked whenever a preference is applied,
// before it is persisted. The presentation layer hangs its palette switch here.
func WithApplyHook(hook func(Preference)) ResolverOption {
	return func(r *Resolver) { r.onApply = hook }
}

// WithLogger sets the logger used for non-fatal store failures.
func WithLogger(logger *log.Logger) ResolverOption {
	return func(r *Resolver) { r.logger = logger }
}

// Resolver owns the current preference for a session. Construct one per
// process and pass it around; there is no package-level instance.
type Resolver struct {
	store    Store
	darkHint func() bool
	onApply  func(Preference)
	logger   *log.Logger
	current  Preference
}

// NewResolver creates a resolver backed by store. A nil store behaves like an
// empty one.
func NewResolver(store Store, opts ...ResolverOption) *Resolver {
	r := &Resolver{store: store}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve determines the preference without applying it: stored value first,
// then the platform hint, then light. Store errors and a missing hint fall
// through to the next tier rather than surfacing.
func (r *Resolver) Resolve() (Preference, Source) {
	if r.store != nil {
		value, err := r.store.Preference()
		if err == nil {
			if pref, ok := Parse(value); ok {
				return pref, SourceStored
			}
		} else if r.logger != nil {
			r.logger.Debug("preference store unavailable", "error", err)
		}
	}
	if r.darkHint != nil {
		if r.darkHint() {
			return Dark, SourceTerminal
		}
		return Light, SourceTerminal
	}
	return Light, SourceDefault
}

// ResolveInitial resolves the startup preference and applies it.
func (r *Resolver) ResolveInitial() Preference {
	pref, _ := r.Resolve()
	r.Apply(pref)
	return pref
}

// Current returns the last applied preference.
func (r *Resolver) Current() Preference { return r.current }

// Apply makes pref the active preference and persists it. Persistence failure
// is logged and otherwise ignored; the session keeps the new value.
func (r *Resolver) Apply(pref Preference) {
	r.current = pref
	if r.onApply != nil {
		r.onApply(pref)
	}
	if r.store == nil {
		return
	}
	if err := r.store.SetPreference(pref.String()); err != nil && r.logger != nil {
		r.logger.Warn("could not save theme preference", "error", err)
	}
}

// Toggle flips the current preference, applies it, and returns the new value.
func (r *Resolver) Toggle() Preference {
	next := r.current.Opposite()
	r.Apply(next)
	return next
}
