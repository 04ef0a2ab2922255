package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ericfisherdev/formfill/internal/domain/model"
)

// LoadProfile reads a YAML profile file. Keys missing from the file keep
// their placeholder values from model.DefaultProfile. An empty path returns
// the default profile.
func LoadProfile(path string) (model.Profile, error) {
	profile := model.DefaultProfile()
	if path == "" {
		return profile, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return model.Profile{}, fmt.Errorf("read profile %q: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &profile); err != nil {
		return model.Profile{}, fmt.Errorf("parse profile %q: %w", path, err)
	}

	return profile, nil
}
