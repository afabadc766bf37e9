package main

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Profile holds reusable alignment settings loaded from a TOML file, so
// a recurring book series or publisher layout does not need its flags
// retyped. Flags set explicitly on the command line win over the
// profile.
type Profile struct {
	Lang1 string `toml:"lang1"`
	Lang2 string `toml:"lang2"`

	Mode      string `toml:"mode"`
	ImageMode string `toml:"image_mode"`
	NoImages  bool   `toml:"no_images"`

	Title  string `toml:"title"`
	Output string `toml:"output"`

	DetectStructure *bool  `toml:"detect_structure"`
	StartMarker1    string `toml:"start_marker1"`
	StartMarker2    string `toml:"start_marker2"`
	EndMarker1      string `toml:"end_marker1"`
	EndMarker2      string `toml:"end_marker2"`

	MaxDrift  *float64 `toml:"max_drift"`
	Tolerance *int     `toml:"tolerance"`
}

// loadProfile parses a profile file.
func loadProfile(path string) (*Profile, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open profile: %w", err)
	}
	defer file.Close()

	var profile Profile
	decoder := toml.NewDecoder(file)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&profile); err != nil {
		return nil, fmt.Errorf("parse profile: %w", err)
	}
	return &profile, nil
}
