package validation

import (
	"regexp"
	"slices"
	"strings"
)

var (
	keyNameRE = regexp.MustCompile(`^\S+$`)

	modifiers = []string{
		"shift", "ctrl", "control", "alt", "opt", "option",
		"super", "cmd", "command",
	}
)

// IsModifier reports whether name is a keyboard modifier.
func IsModifier(name string) bool {
	return slices.Contains(modifiers, strings.ToLower(name))
}

// ValidateTriggerKey checks the non-modifier key of a keybinding trigger.
func ValidateTriggerKey(value string) []string {
	var errs []string
	if value == "" {
		errs = append(errs, "keybinding trigger is missing a key")
		return errs
	}
	if !keyNameRE.MatchString(value) {
		errs = append(errs, "keybinding key "+value+" contains unsupported characters")
	}
	return errs
}

// ValidateKeyValue checks a KEY=VALUE element such as an env entry or a font variation.
func ValidateKeyValue(value string) []string {
	k, _, ok := strings.Cut(value, "=")
	if !ok {
		return []string{"value must look like KEY=VALUE"}
	}
	if strings.TrimSpace(k) == "" {
		return []string{"value is missing a key before ="}
	}
	return nil
}

// ValidateAssignment checks a TARGET=NAME element such as a codepoint map.
func ValidateAssignment(value string) []string {
	target, name, ok := strings.Cut(value, "=")
	if !ok {
		return []string{"value must look like TARGET=NAME"}
	}
	var errs []string
	if strings.TrimSpace(target) == "" {
		errs = append(errs, "assignment is missing its target")
	}
	if strings.TrimSpace(name) == "" {
		errs = append(errs, "assignment is missing its name")
	}
	return errs
}
