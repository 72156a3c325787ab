package theme

// modePair holds the light and dark colour tables of one variant.
type modePair struct {
	Light ColorTokens
	Dark  ColorTokens
}

func (p modePair) pick(dark bool) ColorTokens {
	if dark {
		return p.Dark.clone()
	}
	return p.Light.clone()
}

// defaultPalettes is the brand colour table keyed by variant.
var defaultPalettes = map[Variant]modePair{
	VariantTeams: {
		Light: ColorTokens{
			Primary:    "#4F46E5",
			Secondary:  "#0EA5E9",
			Background: "#FFFFFF",
			Surface:    "#F8FAFC",
			Text: TextColors{
				Primary:   "#0F172A",
				Secondary: "#475569",
				Tertiary:  "#64748B",
				Inverse:   "#FFFFFF",
				Disabled:  "#94A3B8",
			},
			Border: "#E2E8F0",
			Shadow: "rgba(15, 23, 42, 0.08)",
			Status: StatusColors{
				Success: "#16A34A",
				Warning: "#D97706",
				Error:   "#DC2626",
				Info:    "#2563EB",
			},
			Interactive: InteractiveColors{
				Hover:    "#4338CA",
				Active:   "#3730A3",
				Focus:    "#818CF8",
				Disabled: "#C7D2FE",
			},
			Gradients: &Gradients{
				Primary: "linear-gradient(135deg, #4F46E5 0%, #0EA5E9 100%)",
				Hero:    "linear-gradient(180deg, #EEF2FF 0%, #FFFFFF 100%)",
			},
		},
		Dark: ColorTokens{
			Primary:    "#818CF8",
			Secondary:  "#38BDF8",
			Background: "#0B1120",
			Surface:    "#111827",
			Text: TextColors{
				Primary:   "#F1F5F9",
				Secondary: "#CBD5E1",
				Tertiary:  "#94A3B8",
				Inverse:   "#0B1120",
				Disabled:  "#475569",
			},
			Border: "#1F2937",
			Shadow: "rgba(0, 0, 0, 0.5)",
			Status: StatusColors{
				Success: "#22C55E",
				Warning: "#F59E0B",
				Error:   "#F87171",
				Info:    "#60A5FA",
			},
			Interactive: InteractiveColors{
				Hover:    "#A5B4FC",
				Active:   "#6366F1",
				Focus:    "#C7D2FE",
				Disabled: "#312E81",
			},
			Gradients: &Gradients{
				Primary: "linear-gradient(135deg, #818CF8 0%, #38BDF8 100%)",
				Hero:    "linear-gradient(180deg, #111827 0%, #0B1120 100%)",
			},
		},
	},
	VariantTalent: {
		Light: ColorTokens{
			Primary:    "#2563EB",
			Secondary:  "#14B8A6",
			Tertiary:   "#F97316",
			Background: "#FFFFFF",
			Surface:    "#F5F8FF",
			Text: TextColors{
				Primary:   "#111827",
				Secondary: "#4B5563",
				Tertiary:  "#6B7280",
				Inverse:   "#FFFFFF",
				Disabled:  "#9CA3AF",
			},
			Border: "#DBE4F3",
			Shadow: "rgba(17, 24, 39, 0.08)",
			Status: StatusColors{
				Success: "#059669",
				Warning: "#D97706",
				Error:   "#DC2626",
				Info:    "#0284C7",
			},
			Interactive: InteractiveColors{
				Hover:    "#1D4ED8",
				Active:   "#1E40AF",
				Focus:    "#93C5FD",
				Disabled: "#BFDBFE",
			},
			Gradients: &Gradients{
				Primary: "linear-gradient(135deg, #2563EB 0%, #14B8A6 100%)",
				Hero:    "linear-gradient(180deg, #EFF6FF 0%, #FFFFFF 100%)",
			},
		},
		Dark: ColorTokens{
			Primary:    "#3B82F6",
			Secondary:  "#2DD4BF",
			Tertiary:   "#FB923C",
			Background: "#0A0F1E",
			Surface:    "#111A2E",
			Text: TextColors{
				Primary:   "#F9FAFB",
				Secondary: "#D1D5DB",
				Tertiary:  "#9CA3AF",
				Inverse:   "#FFFFFF",
				Disabled:  "#4B5563",
			},
			Border: "#1E293B",
			Shadow: "rgba(0, 0, 0, 0.55)",
			Status: StatusColors{
				Success: "#34D399",
				Warning: "#FBBF24",
				Error:   "#F87171",
				Info:    "#38BDF8",
			},
			Interactive: InteractiveColors{
				Hover:    "#60A5FA",
				Active:   "#2563EB",
				Focus:    "#93C5FD",
				Disabled: "#1E3A8A",
			},
			Gradients: &Gradients{
				Primary: "linear-gradient(135deg, #3B82F6 0%, #2DD4BF 100%)",
				Hero:    "linear-gradient(180deg, #111A2E 0%, #0A0F1E 100%)",
			},
		},
	},
}
