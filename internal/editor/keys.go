package editor

// KeyKind classifies an input event after terminal-specific decoding. The
// presentation layer translates its own event type into these before calling
// HandleKey, which keeps the state machine free of terminal dependencies.
type KeyKind int

const (
	KeyRune KeyKind = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyTab
	KeyBackTab
	KeyEsc
	KeyBackspace
	KeyCtrlS
)

// Key is one decoded input event.
type Key struct {
	Kind KeyKind
	// Rune is set when Kind is KeyRune.
	Rune rune
}

// Rune builds a character key.
func Rune(r rune) Key { return Key{Kind: KeyRune, Rune: r} }
