package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/aalvaropc/benchstats/internal/domain"
	"gopkg.in/yaml.v3"
)

// Loader reads create-stats YAML config files from disk.
type Loader struct{}

func NewLoader() *Loader {
	return &Loader{}
}

func (Loader) LoadConfig(path string) (domain.Config, error) {
	return LoadConfig(path)
}

func LoadConfig(path string) (domain.Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		kind := domain.KindIO
		if errors.Is(err, fs.ErrNotExist) {
			kind = domain.KindNotFound
		}
		return domain.Config{}, &domain.OpError{
			Op:   "config.load_config",
			Kind: kind,
			Path: path,
			Err:  err,
		}
	}

	var dto YAMLConfig
	if err := yaml.Unmarshal(b, &dto); err != nil {
		return domain.Config{}, &domain.OpError{
			Op:   "config.load_config",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	return MapConfig(path, dto)
}
