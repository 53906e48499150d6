package seed

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/marcelsud/webhook-capture/capture"
)

// Profile controls what a seeding run produces. Zero fields fall back to
// the defaults, so a profile file only needs to state what it changes.
type Profile struct {
	Count      int      `yaml:"count"`
	Paths      []string `yaml:"paths"`
	EventTypes []string `yaml:"event_types"`
}

const DefaultCount = 75

func DefaultProfile() Profile {
	return Profile{
		Count:      DefaultCount,
		Paths:      stripePaths,
		EventTypes: StripeEventTypes,
	}
}

// LoadProfile reads a YAML profile from disk and fills in defaults for
// anything the file leaves out.
func LoadProfile(path string) (Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, fmt.Errorf("reading profile: %w", err)
	}

	var profile Profile
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return Profile{}, fmt.Errorf("parsing profile: %w", err)
	}

	defaults := DefaultProfile()
	if profile.Count <= 0 {
		profile.Count = defaults.Count
	}
	if len(profile.Paths) == 0 {
		profile.Paths = defaults.Paths
	}
	if len(profile.EventTypes) == 0 {
		profile.EventTypes = defaults.EventTypes
	}

	return profile, nil
}

// Events builds the full batch described by the profile
func (p Profile) Events() ([]capture.Record, error) {
	records := make([]capture.Record, 0, p.Count)
	for i := 0; i < p.Count; i++ {
		rec, err := Event(pick(p.EventTypes))
		if err != nil {
			return nil, err
		}
		rec.PathName = pick(p.Paths)
		records = append(records, rec)
	}
	return records, nil
}
