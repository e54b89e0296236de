package ports

import "github.com/aalvaropc/benchstats/internal/domain"

// ConfigLoader loads an optional create-stats config file.
type ConfigLoader interface {
	LoadConfig(path string) (domain.Config, error)
}
