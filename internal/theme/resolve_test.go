package theme

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func allTriples() []struct {
	v Variant
	m Mode
	s ColorScheme
} {
	var out []struct {
		v Variant
		m Mode
		s ColorScheme
	}
	for _, v := range Variants() {
		for _, m := range []Mode{ModeLight, ModeDark} {
			for _, s := range ColorSchemes() {
				out = append(out, struct {
					v Variant
					m Mode
					s ColorScheme
				}{v, m, s})
			}
		}
	}
	return out
}

func TestResolve_AllTriplesValid(t *testing.T) {
	for _, tr := range allTriples() {
		name := fmt.Sprintf("%s/%s/%s", tr.v, tr.m, tr.s)
		t.Run(name, func(t *testing.T) {
			th := Resolve(tr.v, tr.m, tr.s, nil)

			for slot, val := range requiredSlots(th.Colors) {
				if val == "" {
					t.Errorf("slot %s is empty", slot)
				}
			}
			if err := Validate(th); err != nil {
				t.Errorf("Validate() = %v", err)
			}
			if th.Variant != tr.v || th.Mode != tr.m || th.Scheme != tr.s {
				t.Errorf("resolved triple = %s/%s/%s", th.Variant, th.Mode, th.Scheme)
			}
			if th.Animation == nil {
				t.Error("Animation is nil")
			}
			if th.Typography.FontFamily == "" {
				t.Error("FontFamily is empty")
			}
		})
	}
}

func TestResolve_DarkAndLightBackgroundsDiffer(t *testing.T) {
	for _, v := range Variants() {
		for _, s := range ColorSchemes() {
			light := Resolve(v, ModeLight, s, nil)
			dark := Resolve(v, ModeDark, s, nil)
			if light.Colors.Background == dark.Colors.Background {
				t.Errorf("%s/%s: light and dark share background %s", v, s, light.Colors.Background)
			}
		}
	}
}

func TestResolve_TalentDarkHighContrast(t *testing.T) {
	def := Resolve(VariantTalent, ModeDark, SchemeDefault, nil)
	hc := Resolve(VariantTalent, ModeDark, SchemeHighContrast, nil)

	if hc.Colors.Background != "#000000" {
		t.Errorf("background = %s, want #000000", hc.Colors.Background)
	}
	if hc.Colors.Primary == def.Colors.Primary {
		t.Errorf("high-contrast primary %s equals default dark primary", hc.Colors.Primary)
	}
	if hc.Colors.Gradients != nil {
		t.Error("high-contrast theme should not carry gradients")
	}
}

func TestResolve_ColorblindIsDistinct(t *testing.T) {
	for _, v := range Variants() {
		def := Resolve(v, ModeLight, SchemeDefault, nil)
		cb := Resolve(v, ModeLight, SchemeColorblind, nil)
		if cmp.Equal(def.Colors, cb.Colors) {
			t.Errorf("%s: colorblind palette aliases the default palette", v)
		}
	}
}

func TestResolve_AutoUsesPreference(t *testing.T) {
	dark := Resolve(VariantTeams, ModeAuto, SchemeDefault, StaticPreference(true))
	if dark.Mode != ModeDark {
		t.Errorf("auto with dark preference resolved to %s", dark.Mode)
	}
	light := Resolve(VariantTeams, ModeAuto, SchemeDefault, StaticPreference(false))
	if light.Mode != ModeLight {
		t.Errorf("auto with light preference resolved to %s", light.Mode)
	}
	if nilPref := Resolve(VariantTeams, ModeAuto, SchemeDefault, nil); nilPref.Mode != ModeLight {
		t.Errorf("auto with nil preference resolved to %s", nilPref.Mode)
	}
}

type countingPreference struct{ calls int }

func (p *countingPreference) PrefersDark() bool {
	p.calls++
	return true
}

func TestResolve_AutoConsultsPreferenceOnEveryCall(t *testing.T) {
	p := &countingPreference{}
	Resolve(VariantTalent, ModeAuto, SchemeDefault, p)
	Resolve(VariantTalent, ModeAuto, SchemeDefault, p)
	if p.calls != 2 {
		t.Errorf("preference consulted %d times, want 2", p.calls)
	}

	Resolve(VariantTalent, ModeDark, SchemeDefault, p)
	if p.calls != 2 {
		t.Errorf("explicit mode consulted the preference")
	}
}

func TestResolve_InvalidFailsClosed(t *testing.T) {
	want := Resolve(VariantTeams, ModeLight, SchemeDefault, nil)

	got := Resolve(VariantTalent, Mode("purple"), SchemeHighContrast, nil)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("fallback mismatch (-want +got):\n%s", diff)
	}
}

func TestResolveStrings(t *testing.T) {
	tests := []struct {
		name                  string
		variant, mode, scheme string
		wantV                 Variant
		wantM                 Mode
		wantS                 ColorScheme
	}{
		{"canonical", "talent", "dark", "high-contrast", VariantTalent, ModeDark, SchemeHighContrast},
		{"aliases", " Employer ", "DARK", "cvd", VariantTeams, ModeDark, SchemeColorblind},
		{"empty scheme", "talent", "light", "", VariantTalent, ModeLight, SchemeDefault},
		{"bad variant replaces all", "nope", "dark", "high-contrast", VariantTeams, ModeLight, SchemeDefault},
		{"bad scheme replaces all", "talent", "dark", "sepia", VariantTeams, ModeLight, SchemeDefault},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveStrings(tt.variant, tt.mode, tt.scheme, nil)
			if got.Variant != tt.wantV || got.Mode != tt.wantM || got.Scheme != tt.wantS {
				t.Errorf("got %s/%s/%s, want %s/%s/%s",
					got.Variant, got.Mode, got.Scheme, tt.wantV, tt.wantM, tt.wantS)
			}
		})
	}
}

func TestResolve_ReturnsCopies(t *testing.T) {
	a := Resolve(VariantTalent, ModeLight, SchemeDefault, nil)
	a.Colors.Primary = "#000000"
	a.Colors.Gradients.Primary = "none"

	b := Resolve(VariantTalent, ModeLight, SchemeDefault, nil)
	if b.Colors.Primary == "#000000" || b.Colors.Gradients.Primary == "none" {
		t.Error("mutating a resolved theme leaked into the token tables")
	}
}

func TestVariantForRole(t *testing.T) {
	tests := map[string]Variant{
		"employer":  VariantTeams,
		"recruiter": VariantTeams,
		"team":      VariantTeams,
		"talent":    VariantTalent,
		"candidate": VariantTalent,
		"":          VariantTeams,
	}
	for role, want := range tests {
		if got := VariantForRole(role); got != want {
			t.Errorf("VariantForRole(%q) = %s, want %s", role, got, want)
		}
	}
}

func TestNext_Cycles(t *testing.T) {
	if got := ModeLight.Next().Next().Next(); got != ModeLight {
		t.Errorf("mode cycle ended at %s", got)
	}
	if got := SchemeDefault.Next().Next().Next(); got != SchemeDefault {
		t.Errorf("scheme cycle ended at %s", got)
	}
	if got := VariantTeams.Next(); got != VariantTalent {
		t.Errorf("VariantTeams.Next() = %s", got)
	}
}
