package catalog

// commonFonts lists monospace families commonly installed for terminal use,
// Nerd Font builds first since they carry the glyphs most prompts expect.
var commonFonts = []string{
	"JetBrainsMono Nerd Font",
	"FiraCode Nerd Font",
	"Hack Nerd Font",
	"CaskaydiaCove Nerd Font",
	"CaskaydiaMono Nerd Font",
	"Iosevka Nerd Font",
	"IosevkaTerm Nerd Font",
	"Iosevka Term",
	"MesloLGS Nerd Font",
	"MesloLGM Nerd Font",
	"MesloLGL Nerd Font",
	"SourceCodePro Nerd Font",
	"UbuntuMono Nerd Font",
	"RobotoMono Nerd Font",
	"DejaVuSansMono Nerd Font",
	"InconsolataGo Nerd Font",
	"Inconsolata Nerd Font",
	"VictorMono Nerd Font",
	"DroidSansMono Nerd Font",
	"Cousine Nerd Font",
	"BitstreamVeraSansMono Nerd Font",
	"CodeNewRoman Nerd Font",
	"Agave Nerd Font",
	"Anonymice Nerd Font",
	"Arimo Nerd Font",
	"AurulentSansMono Nerd Font",
	"BigBlueTerminal Nerd Font",
	"ComicShannsMono Nerd Font",
	"Fantasque Sans Mono Nerd Font",
	"FuraMono Nerd Font",
	"Gohu Nerd Font",
	"Go Mono Nerd Font",
	"Hasklug Nerd Font",
	"Hurmit Nerd Font",
	"iA Writer Mono Nerd Font",
	"IBMPlexMono Nerd Font",
	"Lilex Nerd Font",
	"Lekton Nerd Font",
	"LiterationMono Nerd Font",
	"M+ Nerd Font",
	"Monofur Nerd Font",
	"Monoid Nerd Font",
	"Mononoki Nerd Font",
	"Noto Mono Nerd Font",
	"OpenDyslexicMono Nerd Font",
	"Overpass Mono Nerd Font",
	"ProggyClean Nerd Font",
	"ProFont Nerd Font",
	"ShareTechMono Nerd Font",
	"SpaceMono Nerd Font",
	"Terminess Nerd Font",
	"Tinos Nerd Font",
	"Ubuntu Nerd Font",
	"0xProto Nerd Font",
	"3270 Nerd Font",
	"Zed Mono Nerd Font",
	"JetBrains Mono",
	"Fira Code",
	"Cascadia Code",
	"Cascadia Mono",
	"Source Code Pro",
	"Hack",
	"Iosevka",
	"Victor Mono",
	"IBM Plex Mono",
	"Inconsolata",
	"Monaco",
	"Menlo",
	"SF Mono",
	"Consolas",
	"Courier New",
	"DejaVu Sans Mono",
	"Ubuntu Mono",
	"Roboto Mono",
	"Droid Sans Mono",
	"Anonymous Pro",
	"PT Mono",
	"Noto Sans Mono",
	"Space Mono",
	"Input Mono",
	"Operator Mono",
	"Dank Mono",
	"MonoLisa",
	"Berkeley Mono",
	"Monaspace Neon",
	"Monaspace Argon",
	"Monaspace Xenon",
	"Monaspace Radon",
	"Monaspace Krypton",
	"Geist Mono",
	"Comic Code",
	"Maple Mono",
	"Commit Mono",
	"Intel One Mono",
}

// Fonts returns the common terminal font families. The caller owns the
// slice.
func Fonts() []string {
	out := make([]string, len(commonFonts))
	copy(out, commonFonts)
	return out
}
