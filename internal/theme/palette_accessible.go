package theme

// highContrastPalettes replace the brand colours with pure black/white
// surfaces and saturated accents. Gradients are dropped.
var highContrastPalettes = map[Variant]modePair{
	VariantTeams: {
		Light: ColorTokens{
			Primary:    "#1E1B8F",
			Secondary:  "#004E7A",
			Background: "#FFFFFF",
			Surface:    "#FFFFFF",
			Text: TextColors{
				Primary:   "#000000",
				Secondary: "#1A1A1A",
				Tertiary:  "#333333",
				Inverse:   "#FFFFFF",
				Disabled:  "#595959",
			},
			Border: "#000000",
			Shadow: "rgba(0, 0, 0, 1)",
			Status: StatusColors{
				Success: "#006400",
				Warning: "#7A4B00",
				Error:   "#B00000",
				Info:    "#00008B",
			},
			Interactive: InteractiveColors{
				Hover:    "#000066",
				Active:   "#000000",
				Focus:    "#FFBF00",
				Disabled: "#767676",
			},
		},
		Dark: ColorTokens{
			Primary:    "#A5B4FF",
			Secondary:  "#7FDBFF",
			Background: "#000000",
			Surface:    "#000000",
			Text: TextColors{
				Primary:   "#FFFFFF",
				Secondary: "#F0F0F0",
				Tertiary:  "#D6D6D6",
				Inverse:   "#000000",
				Disabled:  "#A6A6A6",
			},
			Border: "#FFFFFF",
			Shadow: "rgba(255, 255, 255, 1)",
			Status: StatusColors{
				Success: "#7CFC00",
				Warning: "#FFD700",
				Error:   "#FF6B6B",
				Info:    "#87CEFA",
			},
			Interactive: InteractiveColors{
				Hover:    "#D0D8FF",
				Active:   "#FFFFFF",
				Focus:    "#FFBF00",
				Disabled: "#8C8C8C",
			},
		},
	},
	VariantTalent: {
		Light: ColorTokens{
			Primary:    "#0033CC",
			Secondary:  "#00665C",
			Tertiary:   "#8A3B00",
			Background: "#FFFFFF",
			Surface:    "#FFFFFF",
			Text: TextColors{
				Primary:   "#000000",
				Secondary: "#1A1A1A",
				Tertiary:  "#333333",
				Inverse:   "#FFFFFF",
				Disabled:  "#595959",
			},
			Border: "#000000",
			Shadow: "rgba(0, 0, 0, 1)",
			Status: StatusColors{
				Success: "#006400",
				Warning: "#7A4B00",
				Error:   "#B00000",
				Info:    "#00008B",
			},
			Interactive: InteractiveColors{
				Hover:    "#002699",
				Active:   "#000000",
				Focus:    "#FFBF00",
				Disabled: "#767676",
			},
		},
		Dark: ColorTokens{
			Primary:    "#66B2FF",
			Secondary:  "#5CFFE8",
			Tertiary:   "#FFB366",
			Background: "#000000",
			Surface:    "#000000",
			Text: TextColors{
				Primary:   "#FFFFFF",
				Secondary: "#F0F0F0",
				Tertiary:  "#D6D6D6",
				Inverse:   "#000000",
				Disabled:  "#A6A6A6",
			},
			Border: "#FFFFFF",
			Shadow: "rgba(255, 255, 255, 1)",
			Status: StatusColors{
				Success: "#7CFC00",
				Warning: "#FFD700",
				Error:   "#FF6B6B",
				Info:    "#87CEFA",
			},
			Interactive: InteractiveColors{
				Hover:    "#99CCFF",
				Active:   "#FFFFFF",
				Focus:    "#FFBF00",
				Disabled: "#8C8C8C",
			},
		},
	},
}

// colorblindPalettes are built on the Okabe-Ito palette, which stays
// distinguishable under protanopia, deuteranopia and tritanopia. Status
// colours avoid the red/green pair entirely.
var colorblindPalettes = map[Variant]modePair{
	VariantTeams: {
		Light: ColorTokens{
			Primary:    "#0072B2",
			Secondary:  "#CC79A7",
			Background: "#FFFFFF",
			Surface:    "#F7F7F7",
			Text: TextColors{
				Primary:   "#111111",
				Secondary: "#444444",
				Tertiary:  "#666666",
				Inverse:   "#FFFFFF",
				Disabled:  "#9E9E9E",
			},
			Border: "#D9D9D9",
			Shadow: "rgba(0, 0, 0, 0.1)",
			Status: StatusColors{
				Success: "#009E73",
				Warning: "#E69F00",
				Error:   "#D55E00",
				Info:    "#0072B2",
			},
			Interactive: InteractiveColors{
				Hover:    "#005A8C",
				Active:   "#004266",
				Focus:    "#56B4E9",
				Disabled: "#B3D4E8",
			},
			Gradients: &Gradients{
				Primary: "linear-gradient(135deg, #0072B2 0%, #56B4E9 100%)",
				Hero:    "linear-gradient(180deg, #EAF4FA 0%, #FFFFFF 100%)",
			},
		},
		Dark: ColorTokens{
			Primary:    "#56B4E9",
			Secondary:  "#CC79A7",
			Background: "#121212",
			Surface:    "#1E1E1E",
			Text: TextColors{
				Primary:   "#F5F5F5",
				Secondary: "#CCCCCC",
				Tertiary:  "#A3A3A3",
				Inverse:   "#000000",
				Disabled:  "#5C5C5C",
			},
			Border: "#333333",
			Shadow: "rgba(0, 0, 0, 0.6)",
			Status: StatusColors{
				Success: "#009E73",
				Warning: "#F0E442",
				Error:   "#D55E00",
				Info:    "#56B4E9",
			},
			Interactive: InteractiveColors{
				Hover:    "#7FC6EE",
				Active:   "#0072B2",
				Focus:    "#F0E442",
				Disabled: "#2E4A5C",
			},
			Gradients: &Gradients{
				Primary: "linear-gradient(135deg, #56B4E9 0%, #0072B2 100%)",
				Hero:    "linear-gradient(180deg, #1E1E1E 0%, #121212 100%)",
			},
		},
	},
	VariantTalent: {
		Light: ColorTokens{
			Primary:    "#0072B2",
			Secondary:  "#009E73",
			Tertiary:   "#E69F00",
			Background: "#FFFFFF",
			Surface:    "#F5F9FC",
			Text: TextColors{
				Primary:   "#111111",
				Secondary: "#444444",
				Tertiary:  "#666666",
				Inverse:   "#FFFFFF",
				Disabled:  "#9E9E9E",
			},
			Border: "#D0DCE5",
			Shadow: "rgba(0, 0, 0, 0.1)",
			Status: StatusColors{
				Success: "#009E73",
				Warning: "#E69F00",
				Error:   "#D55E00",
				Info:    "#0072B2",
			},
			Interactive: InteractiveColors{
				Hover:    "#005A8C",
				Active:   "#004266",
				Focus:    "#56B4E9",
				Disabled: "#B3D4E8",
			},
			Gradients: &Gradients{
				Primary: "linear-gradient(135deg, #0072B2 0%, #009E73 100%)",
				Hero:    "linear-gradient(180deg, #EAF4FA 0%, #FFFFFF 100%)",
			},
		},
		Dark: ColorTokens{
			Primary:    "#56B4E9",
			Secondary:  "#009E73",
			Tertiary:   "#E69F00",
			Background: "#0F1418",
			Surface:    "#1A2128",
			Text: TextColors{
				Primary:   "#F5F5F5",
				Secondary: "#CCCCCC",
				Tertiary:  "#A3A3A3",
				Inverse:   "#000000",
				Disabled:  "#5C5C5C",
			},
			Border: "#2F3A44",
			Shadow: "rgba(0, 0, 0, 0.6)",
			Status: StatusColors{
				Success: "#009E73",
				Warning: "#F0E442",
				Error:   "#D55E00",
				Info:    "#56B4E9",
			},
			Interactive: InteractiveColors{
				Hover:    "#7FC6EE",
				Active:   "#0072B2",
				Focus:    "#F0E442",
				Disabled: "#2E4A5C",
			},
			Gradients: &Gradients{
				Primary: "linear-gradient(135deg, #56B4E9 0%, #009E73 100%)",
				Hero:    "linear-gradient(180deg, #1A2128 0%, #0F1418 100%)",
			},
		},
	},
}
