package config

import (
	"strings"
	"testing"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	if len(s.LiteralBaseTypes) != 3 {
		t.Errorf("DefaultSettings().LiteralBaseTypes = %v, want 3 entries", s.LiteralBaseTypes)
	}
	if s.StrictRecordFieldAccess {
		t.Errorf("DefaultSettings().StrictRecordFieldAccess = true, want false")
	}
}

func TestLoadSettingsOverridesAndFillsDefaults(t *testing.T) {
	r := strings.NewReader("strict_record_field_access: true\n")
	s, err := LoadSettings(r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !s.StrictRecordFieldAccess {
		t.Error("expected strict_record_field_access to be overridden to true")
	}
	if len(s.LiteralBaseTypes) != 3 {
		t.Errorf("LiteralBaseTypes = %v, want defaults filled in when unset", s.LiteralBaseTypes)
	}
}

func TestLoadSettingsEmptyInputReturnsDefaults(t *testing.T) {
	s, err := LoadSettings(strings.NewReader(""))
	if err != nil {
		t.Fatalf("unexpected error on empty input: %v", err)
	}
	if len(s.LiteralBaseTypes) != 3 {
		t.Errorf("LiteralBaseTypes = %v, want defaults on empty input", s.LiteralBaseTypes)
	}
}
