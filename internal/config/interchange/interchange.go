// Package interchange moves complete configuration snapshots across a JSON
// boundary, for backup files and for piping between tools. Unlike the Lua
// boundary this one is lossless: every field round-trips.
package interchange

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/dshills/weztui/internal/config/schema"
)

// ErrInvalidJSON reports input that is not well-formed JSON at all, before
// any field-level decoding is attempted.
var ErrInvalidJSON = errors.New("interchange: invalid JSON")

// Export renders cfg as indented JSON with stable key order.
func Export(cfg *schema.Config) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("export config: %w", err)
	}
	return buf.Bytes(), nil
}

// Import decodes data onto a default-populated config. Unknown fields are
// rejected: a typo in a hand-edited export should fail loudly rather than
// silently keep the default.
func Import(data []byte) (*schema.Config, error) {
	if !gjson.ValidBytes(data) {
		return nil, ErrInvalidJSON
	}
	cfg := schema.DefaultConfig()
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("import config: %w", err)
	}
	return cfg, nil
}

// Describe summarizes an export without fully decoding it: which scheme it
// names and which font it carries. Used for import confirmation prompts.
func Describe(data []byte) (scheme, font string, ok bool) {
	if !gjson.ValidBytes(data) {
		return "", "", false
	}
	root := gjson.ParseBytes(data)
	return root.Get("color_scheme").String(), root.Get("fonts.family").String(), true
}
