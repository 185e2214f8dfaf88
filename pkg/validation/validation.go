// Package validation checks user-supplied configuration values: pilot names,
// key binding names and colour names.
package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/image/colornames"
)

// MaxPilotNameLen bounds pilot names so they fit the HUD.
const MaxPilotNameLen = 16

var (
	// Alphanumeric, spaces, hyphens, underscores and dots.
	validPilotNameChars = regexp.MustCompile(`^[a-zA-Z0-9 \-_.]+$`)

	hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)
)

// KeyNames lists every key a control may be bound to. Front-ends map these
// names onto their own key codes.
var KeyNames = []string{
	"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L", "M",
	"N", "O", "P", "Q", "R", "S", "T", "U", "V", "W", "X", "Y", "Z",
	"0", "1", "2", "3", "4", "5", "6", "7", "8", "9",
	"Up", "Down", "Left", "Right",
	"Space", "Enter", "LeftShift", "RightShift", "LeftControl", "RightControl",
}

var knownKeys = func() map[string]bool {
	m := make(map[string]bool, len(KeyNames))
	for _, k := range KeyNames {
		m[strings.ToUpper(k)] = true
	}
	return m
}()

// ValidatePilotName validates and trims a pilot name
func ValidatePilotName(name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("pilot name cannot be empty")
	}

	if !utf8.ValidString(name) {
		return "", fmt.Errorf("pilot name contains invalid UTF-8 characters")
	}

	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", fmt.Errorf("pilot name cannot be only whitespace")
	}

	if n := utf8.RuneCountInString(trimmed); n > MaxPilotNameLen {
		return "", fmt.Errorf("pilot name too long: %d characters (max %d)", n, MaxPilotNameLen)
	}

	for _, r := range trimmed {
		if unicode.IsControl(r) {
			return "", fmt.Errorf("pilot name contains control characters")
		}
	}

	if !validPilotNameChars.MatchString(trimmed) {
		return "", fmt.Errorf("pilot name %q contains invalid characters (only alphanumeric, spaces, hyphens, underscores and dots allowed)", trimmed)
	}

	return trimmed, nil
}

// CanonicalKey returns the spelling of name used in KeyNames, matching
// case-insensitively.
func CanonicalKey(name string) (string, bool) {
	upper := strings.ToUpper(strings.TrimSpace(name))
	if !knownKeys[upper] {
		return "", false
	}
	for _, k := range KeyNames {
		if strings.ToUpper(k) == upper {
			return k, true
		}
	}
	return "", false
}

// ValidateKeyName checks that name is a bindable key.
func ValidateKeyName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("key name cannot be empty")
	}
	if _, ok := CanonicalKey(name); !ok {
		return fmt.Errorf("unknown key %q", name)
	}
	return nil
}

// ValidateColor accepts an SVG colour name (as in golang.org/x/image/colornames)
// or a #rrggbb hex triplet.
func ValidateColor(name string) error {
	if hexColor.MatchString(name) {
		return nil
	}
	if _, ok := colornames.Map[strings.ToLower(name)]; ok {
		return nil
	}
	return fmt.Errorf("unknown colour %q", name)
}
