// Package catalog carries the curated pick lists the selector views offer:
// built-in color scheme names, common terminal fonts, and backdrop images
// found on disk.
package catalog

// builtinSchemes names color schemes that ship with WezTerm. The list is a
// curated subset of the several hundred built-ins, grouped popular-first.
var builtinSchemes = []string{
	"Catppuccin Mocha",
	"Catppuccin Macchiato",
	"Catppuccin Frappe",
	"Catppuccin Latte",
	"Dracula",
	"Dracula+",
	"Gruvbox Dark",
	"Gruvbox dark, hard (base16)",
	"Gruvbox dark, medium (base16)",
	"Gruvbox dark, soft (base16)",
	"Gruvbox Light",
	"Nord",
	"Nord (Gogh)",
	"Tokyo Night",
	"Tokyo Night Storm",
	"Tokyo Night Moon",
	"tokyonight",
	"tokyonight_night",
	"tokyonight_storm",
	"Solarized Dark",
	"Solarized Dark Higher Contrast",
	"Solarized Light",
	"One Dark",
	"OneDark",
	"One Half Dark",
	"One Half Light",
	"Monokai",
	"Monokai Pro",
	"Monokai Remastered",
	"Monokai Soda",
	"GitHub Dark",
	"GitHub Light",
	"Kanagawa",
	"Kanagawa Dragon",
	"Kanagawa Wave",
	"rose-pine",
	"rose-pine-moon",
	"rose-pine-dawn",
	"Everforest Dark",
	"Everforest Light",
	"Material",
	"Material Dark",
	"Material Lighter",
	"Material Ocean",
	"Palenight",
	"Ayu Dark",
	"Ayu Light",
	"Ayu Mirage",
	"Afterglow",
	"Alabaster",
	"Base16",
	"Breeze",
	"Chalk",
	"Dark+",
	"Horizon Dark",
	"Horizon Bright",
	"Horizon",
	"Nightfly",
	"Night Owl",
	"Night Owlish Light",
	"Oceanic-Next",
	"Panda",
	"Papercolor Dark",
	"Papercolor Light",
	"Snazzy",
	"Synthwave",
	"Ubuntu",
	"Zenburn",
	"Cyberdyne",
	"CyberPunk2077",
	"DoomOne",
	"Espresso",
	"Flat",
	"Floraverse",
	"Grape",
	"Hipster Green",
	"IC_Green_PPL",
	"JetBrains Darcula",
	"Laser",
	"Lavandula",
	"Matrix",
	"Miramare",
	"Neon",
	"Nova",
	"Ocean",
	"Operator Mono Dark",
	"Outrun Dark",
	"PaperColor Dark (base16)",
	"PaperColor Light (base16)",
	"Purplepeter",
	"Rebecca",
	"Sonokai",
	"SpaceGray",
	"Spacemacs",
	"SynthWave84",
	"Tango",
	"Twilight",
	"UltraDark",
	"Violet Dark",
	"Violet Light",
	"Wez",
	"Whimsy",
	"Wryan",
	"zenbones",
	"zenbones_dark",
	"zenbones_light",
}

// Schemes returns the built-in color scheme names. The caller owns the
// slice.
func Schemes() []string {
	out := make([]string, len(builtinSchemes))
	copy(out, builtinSchemes)
	return out
}
