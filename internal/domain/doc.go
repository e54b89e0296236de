// Package domain contains the core model for create-stats.
//
// The domain is transport- and persistence-agnostic: it does not depend on YAML parsing,
// the filesystem, or the command line. Infra/adapters map into/from these types.
package domain
