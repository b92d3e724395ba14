package config

import (
	"github.com/pkg/errors"

	"github.com/ykhdr/dict-crack/common/internal/kdl"
)

// InitializeConfig decodes the KDL file at configPath over defaultCfg, applies
// overrides in order and sets up the global logger from the result. An empty
// configPath skips the file entirely.
func InitializeConfig[T any](configPath string, defaultCfg T, overrides ...func(*T)) (*T, error) {
	config := defaultCfg
	if configPath != "" {
		var err error
		config, err = kdl.Unmarshal[T](configPath, defaultCfg)
		if err != nil {
			return nil, errors.Wrap(err, "unmarshal kdl")
		}
	}
	for _, override := range overrides {
		override(&config)
	}
	setupLogger(&config)
	return &config, nil
}
