package config

import (
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"sigs.k8s.io/yaml"
)

// Load reads and validates the profile in the given directory.
func Load(fs afero.Fs, path string) (*Profile, error) {
	// If given the path to a config.yaml file, move back up a level.
	if filepath.Base(path) == ProfileName {
		path = filepath.Dir(path)
	}

	contents, err := afero.ReadFile(fs, filepath.Join(path, ProfileName))
	if err != nil {
		return nil, err
	}

	var out Profile
	if err := yaml.UnmarshalStrict(contents, &out); err != nil {
		return nil, err
	}
	if err := out.Validate(); err != nil {
		return nil, err
	}
	return &out, nil
}

// Default returns a fresh copy of the embedded default profile.
func Default() *Profile {
	return defaultProfile()
}

// defaultProfile returns the embedded default profile. It panics on
// failure because the embedded data is validated by tests and can't
// change at runtime.
func defaultProfile() *Profile {
	var out Profile
	if err := yaml.UnmarshalStrict(defaultProfileData, &out); err != nil {
		panic(err)
	}
	return &out
}

// Initialize writes the default profile into the directory unless one
// already exists, logging each step taken.
func Initialize(fs afero.Fs, path string, logger *log.Logger) error {
	if err := fs.MkdirAll(path, 0700); err != nil {
		return err
	}

	profilePath := filepath.Join(path, ProfileName)
	switch _, err := fs.Stat(profilePath); {
	case err == nil:
		logger.Printf("Profile %q already exists, skipping", profilePath)
		return nil
	case !os.IsNotExist(err):
		return err
	}

	logger.Printf("Writing default profile to %q", profilePath)
	return afero.WriteFile(fs, profilePath, defaultProfileData, 0600)
}
