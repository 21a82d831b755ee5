package schema

import "reflect"

// Clone returns a deep copy of the configuration. The editor keeps a cloned
// baseline next to the live copy to support quit confirmation.
func (c *Config) Clone() *Config {
	out := *c

	if c.Backdrop.Images != nil {
		out.Backdrop.Images = make([]string, len(c.Backdrop.Images))
		copy(out.Backdrop.Images, c.Backdrop.Images)
	}

	out.Colors.TabBar = c.Colors.TabBar.clone()
	return &out
}

func (t TabBarColors) clone() TabBarColors {
	out := t
	out.ActiveTab.Italic = cloneBool(t.ActiveTab.Italic)
	out.InactiveTab.Italic = cloneBool(t.InactiveTab.Italic)
	out.InactiveTabHover.Italic = cloneBool(t.InactiveTabHover.Italic)
	out.NewTab.Italic = cloneBool(t.NewTab.Italic)
	out.NewTabHover.Italic = cloneBool(t.NewTabHover.Italic)
	return out
}

func cloneBool(b *bool) *bool {
	if b == nil {
		return nil
	}
	v := *b
	return &v
}

// Equal reports whether two configurations are structurally identical. It is
// used to decide whether unsaved changes exist, not on every frame; field
// mutations set an explicit dirty flag instead.
func (c *Config) Equal(other *Config) bool {
	if c == nil || other == nil {
		return c == other
	}
	return reflect.DeepEqual(c, other)
}
