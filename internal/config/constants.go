// Package config holds shared constants and mode flags for the inference
// core, carried over from the teacher's own internal/config package and
// trimmed to what this core actually uses.
package config

// IsTestMode is a mode flag carried over from the teacher's
// config.IsTestMode. Nothing in this module reads it: pretty-printed type
// variables always render as T<id> (e.g. "T7"), whatever its value.
var IsTestMode = false

// Built-in named types (spec §3).
const (
	NumberName  = "Number"
	StringName  = "String"
	BooleanName = "Boolean"
	AnyName     = "Any"
	NothingName = "Nothing"
)

// BuiltinTypeNames lists the names seeded into every fresh TypeEnv (spec §4.8
// driver step 2).
var BuiltinTypeNames = []string{NumberName, StringName, BooleanName, AnyName, NothingName}
