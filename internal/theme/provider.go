package theme

import "sync"

// ProviderOptions configures a Provider. Zero values pick teams, auto
// mode, the default scheme and DefaultPreference.
type ProviderOptions struct {
	Variant    Variant
	Mode       Mode
	Scheme     ColorScheme
	Preference Preference
}

// Provider holds the current (variant, mode, scheme) selection and
// broadcasts the re-resolved theme to subscribers on every switch.
//
// It is safe for concurrent use. Subscribers run synchronously, in
// registration order, after the lock has been released.
type Provider struct {
	mu      sync.Mutex
	variant Variant
	mode    Mode
	scheme  ColorScheme
	pref    Preference
	current ResolvedTheme

	nextID int
	subs   []subscriber
}

type subscriber struct {
	id int
	fn func(ResolvedTheme)
}

// NewProvider creates a Provider and resolves its initial theme.
// Invalid option values are replaced by their defaults.
func NewProvider(opts ProviderOptions) *Provider {
	p := &Provider{
		variant: opts.Variant,
		mode:    opts.Mode,
		scheme:  opts.Scheme,
		pref:    opts.Preference,
	}
	if !p.variant.Valid() {
		p.variant = VariantTeams
	}
	if !p.mode.Valid() {
		p.mode = ModeAuto
	}
	if !p.scheme.Valid() {
		p.scheme = SchemeDefault
	}
	if p.pref == nil {
		p.pref = DefaultPreference()
	}
	p.current = Resolve(p.variant, p.mode, p.scheme, p.pref)
	return p
}

// Theme returns the current theme. In auto mode the preference is
// consulted again so a changed terminal background is picked up.
func (p *Provider) Theme() ResolvedTheme {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.mode == ModeAuto {
		p.current = Resolve(p.variant, p.mode, p.scheme, p.pref)
	}
	return p.current
}

// Variant returns the selected variant.
func (p *Provider) Variant() Variant {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.variant
}

// Mode returns the selected mode, which may be ModeAuto.
func (p *Provider) Mode() Mode {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.mode
}

// ColorScheme returns the selected colour scheme.
func (p *Provider) ColorScheme() ColorScheme {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.scheme
}

// SwitchVariant changes the variant. Invalid values are ignored.
func (p *Provider) SwitchVariant(v Variant) {
	if !v.Valid() {
		return
	}
	p.apply(func() { p.variant = v })
}

// SwitchMode changes the mode. Invalid values are ignored.
func (p *Provider) SwitchMode(m Mode) {
	if !m.Valid() {
		return
	}
	p.apply(func() { p.mode = m })
}

// SwitchColorScheme changes the colour scheme. Invalid values are ignored.
func (p *Provider) SwitchColorScheme(s ColorScheme) {
	if !s.Valid() {
		return
	}
	p.apply(func() { p.scheme = s })
}

// Select replaces all three axes with one notification. Invalid values
// keep the current setting for that axis.
func (p *Provider) Select(v Variant, m Mode, s ColorScheme) {
	if !v.Valid() && !m.Valid() && !s.Valid() {
		return
	}
	p.apply(func() {
		if v.Valid() {
			p.variant = v
		}
		if m.Valid() {
			p.mode = m
		}
		if s.Valid() {
			p.scheme = s
		}
	})
}

func (p *Provider) apply(change func()) {
	p.mu.Lock()
	change()
	p.current = Resolve(p.variant, p.mode, p.scheme, p.pref)
	t := p.current
	subs := make([]subscriber, len(p.subs))
	copy(subs, p.subs)
	p.mu.Unlock()

	for _, s := range subs {
		s.fn(t)
	}
}

// Subscribe registers fn for theme changes and returns a function that
// removes it. Calling the returned function more than once is a no-op.
func (p *Provider) Subscribe(fn func(ResolvedTheme)) (unsubscribe func()) {
	p.mu.Lock()
	p.nextID++
	id := p.nextID
	p.subs = append(p.subs, subscriber{id: id, fn: fn})
	p.mu.Unlock()

	return func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		for i, s := range p.subs {
			if s.id == id {
				p.subs = append(p.subs[:i:i], p.subs[i+1:]...)
				return
			}
		}
	}
}

func (p *Provider) IsTeamsVariant() bool  { return p.Variant() == VariantTeams }
func (p *Provider) IsTalentVariant() bool { return p.Variant() == VariantTalent }
func (p *Provider) IsDarkMode() bool      { return p.Theme().IsDark() }
func (p *Provider) IsHighContrast() bool  { return p.ColorScheme() == SchemeHighContrast }
