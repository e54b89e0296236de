package usecase

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/aalvaropc/benchstats/internal/domain"
	"github.com/aalvaropc/benchstats/internal/ports"
	ucextract "github.com/aalvaropc/benchstats/internal/usecase/extract"
)

// Summary reports what a run saw, for logging.
type Summary struct {
	Lines   int
	Matched int
}

type CreateStats struct {
	source     ports.LogSource
	rules      []domain.Rule
	decimalSep string
	log        *slog.Logger
}

type CreateStatsOption func(*CreateStats)

func WithLogger(l *slog.Logger) CreateStatsOption {
	return func(uc *CreateStats) {
		if l != nil {
			uc.log = l
		}
	}
}

func NewCreateStats(src ports.LogSource, cfg domain.Config, opts ...CreateStatsOption) *CreateStats {
	rules := cfg.Rules
	if rules == nil {
		rules = domain.DefaultRules()
	}
	uc := &CreateStats{
		source:     src,
		rules:      rules,
		decimalSep: cfg.DecimalSeparator,
		log:        slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute reads the log at path in a single pass and writes the value of every
// matching line to w. Lines with no matching rule are skipped. Output written
// before a failing line is left in place.
func (uc *CreateStats) Execute(ctx context.Context, path string, w io.Writer) (Summary, error) {
	var sum Summary

	rc, err := uc.source.Open(path)
	if err != nil {
		return sum, err
	}
	defer rc.Close()

	uc.log.Info("stats.start", "path", path, "rules", len(uc.rules))

	br := bufio.NewReader(rc)

	for {
		raw, readErr := br.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			return sum, &domain.OpError{
				Op:   "stats.read",
				Kind: domain.KindIO,
				Path: path,
				Line: sum.Lines + 1,
				Err:  readErr,
			}
		}
		if raw == "" && readErr == io.EOF {
			break
		}
		if err := ctx.Err(); err != nil {
			return sum, err
		}
		sum.Lines++

		line := trimEOL(raw)
		rule, ok := domain.Match(uc.rules, line)
		if ok {
			sum.Matched++
			if err := uc.emit(w, path, sum.Lines, rule, line); err != nil {
				return sum, err
			}
		}

		if readErr == io.EOF {
			break
		}
	}

	uc.log.Info("stats.done", "path", path, "lines", sum.Lines, "matched", sum.Matched)
	return sum, nil
}

func (uc *CreateStats) emit(w io.Writer, path string, lineNo int, rule domain.Rule, line string) error {
	out, err := uc.format(rule, line)
	if err != nil {
		uc.log.Error("stats.failed", "path", path, "line", lineNo, "rule", rule.Name, "error", err)
		kind := domain.KindMalformedLine
		if domain.IsKind(err, domain.KindInvalidConfig) || errors.Is(err, domain.ErrInvalidConfig) {
			kind = domain.KindInvalidConfig
		}
		return &domain.OpError{
			Op:   "stats.line",
			Kind: kind,
			Path: path,
			Line: lineNo,
			Err:  fmt.Errorf("rule %q: %w", rule.Name, err),
		}
	}

	uc.log.Debug("stats.line", "line", lineNo, "rule", rule.Name, "value", out)

	if rule.BlankAfter {
		out += "\n"
	}
	if _, err := io.WriteString(w, out+"\n"); err != nil {
		return &domain.OpError{Op: "stats.write", Kind: domain.KindIO, Err: err}
	}
	return nil
}

// trimEOL drops the line terminator, "\n" or "\r\n".
func trimEOL(s string) string {
	s = strings.TrimSuffix(s, "\n")
	return strings.TrimSuffix(s, "\r")
}

// FormatLine applies the first matching rule to a single line. ok is false when
// no rule matches and the line should be skipped.
func (uc *CreateStats) FormatLine(line string) (out string, ok bool, err error) {
	rule, ok := domain.Match(uc.rules, line)
	if !ok {
		return "", false, nil
	}
	out, err = uc.format(rule, line)
	return out, true, err
}

func (uc *CreateStats) format(rule domain.Rule, line string) (string, error) {
	switch rule.Action {
	case domain.ActionEcho, "":
		return line, nil
	case domain.ActionField:
		return ucextract.Field(line, rule.Field, uc.decimalSep)
	default:
		return "", fmt.Errorf("unsupported action %q: %w", rule.Action, domain.ErrInvalidConfig)
	}
}
