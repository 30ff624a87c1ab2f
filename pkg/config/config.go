// Package config loads triage configuration from built-in defaults, an
// optional JSON file, and LOGTRIAGE_* environment variables, in that
// precedence order.
package config

import (
	"fmt"
	"strings"

	kjson "github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/jmylchreest/logtriage/pkg/triage"
)

// envPrefix namespaces environment overrides, e.g.
// LOGTRIAGE_TOP_N_MENTIONS=20.
const envPrefix = "LOGTRIAGE_"

// Config is the full recognized option set for one triage run.
type Config struct {
	PatternRules     []triage.Rule `koanf:"pattern_rules" json:"pattern_rules"`
	MentionGrammar   string        `koanf:"mention_grammar" json:"mention_grammar"`
	ProvenanceRule   string        `koanf:"provenance_rule" json:"provenance_rule"`
	ContextLookback  int           `koanf:"context_lookback" json:"context_lookback"`
	ContextLookahead int           `koanf:"context_lookahead" json:"context_lookahead"`
	SnippetMaxLen    int           `koanf:"snippet_max_len" json:"snippet_max_len"`
	DedupCap         int           `koanf:"dedup_cap" json:"dedup_cap"`
	TopMentions      int           `koanf:"top_n_mentions" json:"top_n_mentions"`
	TopOrigins       int           `koanf:"top_n_origins" json:"top_n_origins"`
	SuspectModule    string        `koanf:"suspect_module_name" json:"suspect_module_name"`
	SuspectMarker    string        `koanf:"suspect_marker" json:"suspect_marker"`
}

// defaults reproduces the rule set this tool shipped with, so a bare
// `logtriage run <file>` works against a typical test-runner log without
// any configuration.
func defaults() map[string]any {
	return map[string]any{
		"pattern_rules": []any{
			map[string]any{"name": "Database Config Missing", "pattern": `Connection configuration is required for undefined`},
			map[string]any{"name": "Redis Connection", "pattern": `Redis connection error`},
			map[string]any{"name": "Timeout", "pattern": `timed out|timeout`, "case_insensitive": true},
			map[string]any{"name": "Health Check Failed", "pattern": `health check.*failed|health check timed out`, "case_insensitive": true},
			map[string]any{"name": "NOGROUP Error", "pattern": `NOGROUP`},
		},
		"mention_grammar":     `test/[^\s]+\.spec\.ts`,
		"context_lookback":    triage.DefaultLookback,
		"context_lookahead":   triage.DefaultLookahead,
		"snippet_max_len":     triage.DefaultSnippetMaxLen,
		"dedup_cap":           triage.DefaultDedupCap,
		"top_n_mentions":      triage.DefaultTopMentions,
		"top_n_origins":       triage.DefaultTopOrigins,
		"suspect_module_name": "database.manager.ts",
		"suspect_marker":      "parseConnectionConfig",
	}
}

// Load builds the effective configuration. path may be empty, in which
// case only defaults and environment overrides apply. Pattern validity is
// checked here so a malformed rule fails at load time, never mid-run.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load default config: %w", err)
	}

	if path != "" {
		if err := k.Load(file.Provider(path), kjson.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(key, value string) (string, any) {
			return strings.ToLower(strings.TrimPrefix(key, envPrefix)), value
		},
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment overrides: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate compiles every pattern and the mention grammar, failing fast on
// the first malformed one. All rules must be valid before matching begins;
// silently skipping one would corrupt the frequency summary.
func (c *Config) Validate() error {
	if _, err := triage.CompileRules(c.PatternRules); err != nil {
		return err
	}
	if c.MentionGrammar != "" {
		if _, err := triage.CompileGrammar(c.MentionGrammar); err != nil {
			return err
		}
	}
	return nil
}

// Options maps the configuration onto triage pipeline options.
func (c *Config) Options() triage.Options {
	return triage.Options{
		Rules:          c.PatternRules,
		MentionGrammar: c.MentionGrammar,
		ProvenanceRule: c.ProvenanceRule,
		Lookback:       c.ContextLookback,
		Lookahead:      c.ContextLookahead,
		SnippetMaxLen:  c.SnippetMaxLen,
		Suspect: triage.SuspectFilter{
			Module: c.SuspectModule,
			Marker: c.SuspectMarker,
		},
	}
}
