// Package extract recovers a typed configuration snapshot from raw
// wezterm.lua text.
//
// WezTerm configs are arbitrary Lua programs, so extraction is best-effort:
// a fixed pipeline of independent section extractors scans the text for a
// known set of keys and overwrites the matching fields of a default-populated
// schema.Config. Absence of a key is never an error; content the extractor
// does not understand is ignored. Before pattern matching runs, the text is
// also executed in a sandboxed Lua state (see eval.go) to recover values the
// patterns cannot see, such as computed expressions; pattern matches always
// take precedence over evaluated values.
package extract

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/dshills/weztui/internal/config/schema"
)

// Result bundles the extracted snapshot with the original text and any
// warnings produced along the way.
type Result struct {
	// Config is the default-populated model with recognized fields
	// overwritten.
	Config *schema.Config

	// Raw is the original file content, retained for diffing.
	Raw string

	// Warnings lists sections or stages that were found but could not be
	// mapped. Warnings never abort extraction.
	Warnings []string
}

// Extract parses raw wezterm.lua content. It never fails: malformed content
// degrades to warnings and defaults.
func Extract(content string) Result {
	cfg := schema.DefaultConfig()
	var warnings []string

	if err := evalContent(content, cfg); err != nil {
		warnings = append(warnings, fmt.Sprintf("lua evaluation: %v", err))
	}

	for _, sec := range sections {
		if err := sec.run(content, cfg); err != nil {
			warnings = append(warnings, fmt.Sprintf("%s: %v", sec.name, err))
		}
	}

	return Result{Config: cfg, Raw: content, Warnings: warnings}
}

// valueKind selects the textual shape a rule matches.
type valueKind uint8

const (
	kindString valueKind = iota
	kindNumber
	kindBool
	kindStringArray
)

// value carries a matched value; only the field for the rule's kind is set.
type value struct {
	str  string
	num  float64
	b    bool
	list []string
}

// rule is one declarative extraction entry: a key path, the value shape to
// match, and the setter to run on a match. A single-segment path matches a
// simple (optionally config.-prefixed) assignment; a multi-segment path
// matches a nested-table assignment tolerant of the punctuation Lua uses for
// table indexing between segments.
type rule struct {
	path  []string
	kind  valueKind
	apply func(*schema.Config, value)
}

// section is one independent unit of the extraction pipeline. A failure to
// build any of its patterns aborts only this section; siblings still run.
type section struct {
	name  string
	rules []rule

	// extra runs hand-written patterns that do not fit the generic rule
	// shapes, such as wezterm.font(...) calls.
	extra func(content string, cfg *schema.Config) error
}

func (s section) run(content string, cfg *schema.Config) error {
	for _, r := range s.rules {
		v, ok, err := matchRule(content, r)
		if err != nil {
			return err
		}
		if ok {
			r.apply(cfg, v)
		}
	}
	if s.extra != nil {
		return s.extra(content, cfg)
	}
	return nil
}

// nestedSep tolerates the punctuation Lua uses between path segments:
// dots, brackets and quotes, as in colors.tab_bar["active_tab"].bg_color.
const nestedSep = `\s*[.\[\]"']*\s*`

func keyExpr(path []string) string {
	if len(path) == 1 {
		// \b keeps e.g. a font_size rule from matching inside
		// command_palette_font_size.
		return `(?:config\.)?\b` + path[0]
	}
	return `\b` + strings.Join(path, nestedSep)
}

func matchRule(content string, r rule) (value, bool, error) {
	key := keyExpr(r.path)

	var shape string
	switch r.kind {
	case kindString:
		shape = `["']([^"']+)["']`
	case kindNumber:
		shape = `(\d+(?:\.\d+)?)`
	case kindBool:
		shape = `(true|false)`
	case kindStringArray:
		return matchStringArray(content, key)
	}

	re, err := regexp.Compile(key + `\s*=\s*` + shape)
	if err != nil {
		return value{}, false, err
	}
	m := re.FindStringSubmatch(content)
	if m == nil {
		return value{}, false, nil
	}

	switch r.kind {
	case kindNumber:
		var n float64
		if _, err := fmt.Sscanf(m[1], "%g", &n); err != nil {
			return value{}, false, nil
		}
		return value{num: n}, true, nil
	case kindBool:
		return value{b: m[1] == "true"}, true, nil
	default:
		return value{str: m[1]}, true, nil
	}
}

var quotedString = regexp.MustCompile(`["']([^"']+)["']`)

func matchStringArray(content, key string) (value, bool, error) {
	re, err := regexp.Compile(key + `\s*=\s*\{\s*([^}]+)\s*\}`)
	if err != nil {
		return value{}, false, err
	}
	m := re.FindStringSubmatch(content)
	if m == nil {
		return value{}, false, nil
	}

	var list []string
	for _, q := range quotedString.FindAllStringSubmatch(m[1], -1) {
		list = append(list, q[1])
	}
	if len(list) == 0 {
		return value{}, false, nil
	}
	return value{list: list}, true, nil
}
