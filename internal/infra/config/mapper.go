package config

import (
	"fmt"
	"strings"

	"github.com/aalvaropc/benchstats/internal/domain"
)

// MapConfig overlays a parsed YAML file on domain.DefaultConfig. A non-empty
// rules list replaces the default table entirely.
func MapConfig(path string, yc YAMLConfig) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	if in := strings.TrimSpace(yc.Input); in != "" {
		cfg.Input = in
	}
	if yc.DecimalSeparator != nil {
		cfg.DecimalSeparator = *yc.DecimalSeparator
	}

	if len(yc.Rules) == 0 {
		return cfg, nil
	}

	rules := make([]domain.Rule, 0, len(yc.Rules))
	for i, r := range yc.Rules {
		rule, err := mapRule(path, fmt.Sprintf("rules[%d]", i), r)
		if err != nil {
			return domain.Config{}, err
		}
		rules = append(rules, rule)
	}
	cfg.Rules = rules

	return cfg, nil
}

func mapRule(path, fieldPrefix string, r YAMLRule) (domain.Rule, error) {
	if r.Marker == "" {
		return domain.Rule{}, invalidField(path, fieldPrefix+".marker", "marker is required")
	}

	action, err := parseAction(r.Action, r.Field != nil)
	if err != nil {
		return domain.Rule{}, invalidField(path, fieldPrefix+".action", err.Error())
	}

	rule := domain.Rule{
		Name:       strings.TrimSpace(r.Name),
		Marker:     r.Marker,
		Action:     action,
		BlankAfter: r.BlankAfter,
	}
	if rule.Name == "" {
		rule.Name = fieldPrefix
	}

	if action == domain.ActionEcho {
		return rule, nil
	}

	if r.Field == nil {
		return domain.Rule{}, invalidField(path, fieldPrefix+".field", "field block is required for action field")
	}
	if r.Field.Sep == "" {
		return domain.Rule{}, invalidField(path, fieldPrefix+".field.sep", "separator is required")
	}
	if r.Field.Index == nil {
		return domain.Rule{}, invalidField(path, fieldPrefix+".field.index", "index is required")
	}
	if *r.Field.Index < 0 {
		return domain.Rule{}, invalidField(path, fieldPrefix+".field.index", "index must be >= 0")
	}

	rule.Field = domain.FieldSpec{
		Sep:       r.Field.Sep,
		Index:     *r.Field.Index,
		TrimRight: r.Field.TrimRight,
		DropLast:  r.Field.DropLast,
		Localize:  r.Field.Localize,
	}
	return rule, nil
}

func parseAction(a string, hasField bool) (domain.Action, error) {
	switch domain.Action(strings.ToLower(strings.TrimSpace(a))) {
	case "":
		if hasField {
			return domain.ActionField, nil
		}
		return domain.ActionEcho, nil
	case domain.ActionEcho:
		return domain.ActionEcho, nil
	case domain.ActionField:
		return domain.ActionField, nil
	default:
		return "", fmt.Errorf("unsupported action %q (expected echo|field)", a)
	}
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "config.map",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, domain.ErrInvalidConfig),
	}
}
