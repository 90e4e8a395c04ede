package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// LoadFile overlays the TOML file at path onto the default settings.
// Keys missing from the file keep their default value.
func LoadFile(path string) (Settings, error) {
	s := Defaults()
	if path == "" {
		return s, nil
	}
	if _, err := toml.DecodeFile(path, &s); err != nil {
		return Defaults(), fmt.Errorf("failed to load settings %s: %w", path, err)
	}
	return s, nil
}

// Parse overlays TOML text onto the default settings.
func Parse(data string) (Settings, error) {
	s := Defaults()
	if _, err := toml.Decode(data, &s); err != nil {
		return Defaults(), fmt.Errorf("failed to parse settings: %w", err)
	}
	return s, nil
}
