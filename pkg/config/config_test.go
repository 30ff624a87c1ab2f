package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jmylchreest/logtriage/pkg/triage"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if len(cfg.PatternRules) != 5 {
		t.Errorf("got %d default rules, want 5", len(cfg.PatternRules))
	}
	if cfg.PatternRules[0].Name != "Database Config Missing" {
		t.Errorf("first rule = %q, want Database Config Missing", cfg.PatternRules[0].Name)
	}
	if cfg.ContextLookback != triage.DefaultLookback {
		t.Errorf("lookback = %d, want %d", cfg.ContextLookback, triage.DefaultLookback)
	}
	if cfg.ContextLookahead != triage.DefaultLookahead {
		t.Errorf("lookahead = %d, want %d", cfg.ContextLookahead, triage.DefaultLookahead)
	}
	if cfg.TopMentions != triage.DefaultTopMentions {
		t.Errorf("top mentions = %d, want %d", cfg.TopMentions, triage.DefaultTopMentions)
	}
	if cfg.DedupCap != triage.DefaultDedupCap {
		t.Errorf("dedup cap = %d, want %d", cfg.DedupCap, triage.DefaultDedupCap)
	}
	if cfg.SuspectModule != "database.manager.ts" || cfg.SuspectMarker != "parseConnectionConfig" {
		t.Errorf("suspect filter = %q/%q, unexpected defaults", cfg.SuspectModule, cfg.SuspectMarker)
	}
	if cfg.MentionGrammar == "" {
		t.Error("default mention grammar must be set")
	}
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "triage.json")
	body := `{
  "top_n_mentions": 3,
  "pattern_rules": [
    {"name": "Only Rule", "pattern": "boom"}
  ]
}`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.TopMentions != 3 {
		t.Errorf("top mentions = %d, want 3 from file", cfg.TopMentions)
	}
	if len(cfg.PatternRules) != 1 || cfg.PatternRules[0].Name != "Only Rule" {
		t.Errorf("pattern rules = %+v, want the file's single rule", cfg.PatternRules)
	}
	// Keys absent from the file keep their defaults.
	if cfg.DedupCap != triage.DefaultDedupCap {
		t.Errorf("dedup cap = %d, want default %d", cfg.DedupCap, triage.DefaultDedupCap)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("LOGTRIAGE_TOP_N_ORIGINS", "7")
	t.Setenv("LOGTRIAGE_SUSPECT_MARKER", "connectTimeout")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.TopOrigins != 7 {
		t.Errorf("top origins = %d, want 7 from environment", cfg.TopOrigins)
	}
	if cfg.SuspectMarker != "connectTimeout" {
		t.Errorf("suspect marker = %q, want connectTimeout", cfg.SuspectMarker)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatal("expected error for missing config file, got nil")
	}
}

func TestLoad_MalformedPatternRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "triage.json")
	body := `{"pattern_rules": [{"name": "broken", "pattern": "(["}]}`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	_, err := Load(path)
	if err == nil {
		t.Fatal("expected error for malformed pattern, got nil")
	}
	if !strings.Contains(err.Error(), "broken") {
		t.Errorf("error should name the offending rule: %v", err)
	}
}

func TestOptions_Mapping(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	opts := cfg.Options()
	if len(opts.Rules) != len(cfg.PatternRules) {
		t.Errorf("options carry %d rules, want %d", len(opts.Rules), len(cfg.PatternRules))
	}
	if opts.Suspect.Module != cfg.SuspectModule || opts.Suspect.Marker != cfg.SuspectMarker {
		t.Error("suspect filter not mapped through")
	}
	if opts.Lookback != cfg.ContextLookback || opts.Lookahead != cfg.ContextLookahead {
		t.Error("context window parameters not mapped through")
	}
}
