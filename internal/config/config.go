package config

import (
	"io"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
)

// Preferences is the user preferences file read by the feed.
//
//	[accessibility]
//	reduced_motion = true
type Preferences struct {
	Accessibility Accessibility `toml:"accessibility"`
}

// Accessibility holds accessibility preferences.
type Accessibility struct {
	ReducedMotion bool `toml:"reduced_motion"`
}

// Load reads and decodes the preferences file at path.
func Load(path string) (*Preferences, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open preferences", goerr.V("path", path))
	}
	defer f.Close()

	prefs, err := Decode(f)
	if err != nil {
		return nil, goerr.Wrap(err, "invalid preferences file", goerr.V("path", path))
	}
	return prefs, nil
}

// Decode parses preferences from r. Unknown keys are rejected.
func Decode(r io.Reader) (*Preferences, error) {
	var prefs Preferences
	dec := toml.NewDecoder(r).DisallowUnknownFields()
	if err := dec.Decode(&prefs); err != nil {
		return nil, goerr.Wrap(err, "failed to decode preferences")
	}
	return &prefs, nil
}
