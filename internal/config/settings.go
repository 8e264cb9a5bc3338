package config

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Settings is the optional YAML-configurable behavior of the inference core,
// loaded the way the teacher's internal/ext package loads funxy.yaml via
// gopkg.in/yaml.v3 — here scoped to the two knobs the core itself has.
type Settings struct {
	// LiteralBaseTypes restricts which built-in types admit literal
	// refinement (spec §3's Literal variant). Defaults to Number/String/
	// Boolean when empty.
	LiteralBaseTypes []string `yaml:"literal_base_types,omitempty"`

	// StrictRecordFieldAccess disables the row-polymorphic `.field` access
	// rule (spec §4.6) in favor of requiring the record's shape to already
	// be fully known. Off by default — the default core behavior is the
	// row-polymorphic rule spec.md describes.
	StrictRecordFieldAccess bool `yaml:"strict_record_field_access,omitempty"`
}

// DefaultSettings returns the zero-configuration behavior: literal
// refinement over Number/String/Boolean, row-polymorphic field access on.
func DefaultSettings() Settings {
	return Settings{LiteralBaseTypes: []string{NumberName, StringName, BooleanName}}
}

// LoadSettings parses YAML settings from r. The core never reads this from
// disk itself (spec §5: memory only) — callers that do have a file to read
// open it and pass the *os.File in, keeping I/O entirely outside the core.
func LoadSettings(r io.Reader) (Settings, error) {
	s := DefaultSettings()
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&s); err != nil && err != io.EOF {
		return Settings{}, fmt.Errorf("config: decode settings: %w", err)
	}
	if len(s.LiteralBaseTypes) == 0 {
		s.LiteralBaseTypes = DefaultSettings().LiteralBaseTypes
	}
	return s, nil
}
