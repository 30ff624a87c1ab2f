package main

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/jmylchreest/logtriage/pkg/config"
	"github.com/jmylchreest/logtriage/pkg/logdoc"
	"github.com/jmylchreest/logtriage/pkg/triage"
	"github.com/jmylchreest/logtriage/pkg/triage/report"
)

var runLog = log.New(os.Stderr, "[logtriage] ", log.Ltime)

// cmdRun loads the log, runs the triage pipeline once, and renders the
// report. A missing input file or a malformed pattern is fatal; zero
// matches is not.
func cmdRun(args []string) error {
	var logPath string
	for _, arg := range args {
		if !strings.HasPrefix(arg, "--") {
			logPath = arg
			break
		}
	}
	if logPath == "" {
		return fmt.Errorf("usage: logtriage run <logfile> [options]")
	}

	cfg, err := config.Load(parseFlag(args, "--config="))
	if err != nil {
		return err
	}
	applyRunFlags(cfg, args)

	doc, err := logdoc.Load(logPath)
	if err != nil {
		return err
	}

	start := time.Now()
	res, err := triage.Run(doc, cfg.Options())
	if err != nil {
		return err
	}
	runLog.Printf("analyzed %d lines (%d rules, %d occurrences) in %s",
		doc.LineCount(), len(cfg.PatternRules), len(res.Occurrences), time.Since(start).Round(time.Millisecond))

	opts := report.Options{
		TopMentions: cfg.TopMentions,
		TopOrigins:  cfg.TopOrigins,
		DedupCap:    cfg.DedupCap,
	}
	if hasFlag(args, "--json") {
		return report.RenderJSON(os.Stdout, res, opts)
	}
	return report.Render(os.Stdout, res, opts)
}

// applyRunFlags lets command-line flags override loaded configuration.
func applyRunFlags(cfg *config.Config, args []string) {
	if n, ok := parseIntFlag(args, "--top-mentions="); ok {
		cfg.TopMentions = n
	}
	if n, ok := parseIntFlag(args, "--top-origins="); ok {
		cfg.TopOrigins = n
	}
	if n, ok := parseIntFlag(args, "--dedup-cap="); ok {
		cfg.DedupCap = n
	}
	if n, ok := parseIntFlag(args, "--lookback="); ok {
		cfg.ContextLookback = n
	}
	if n, ok := parseIntFlag(args, "--lookahead="); ok {
		cfg.ContextLookahead = n
	}
	if v := parseFlag(args, "--provenance-rule="); v != "" {
		cfg.ProvenanceRule = v
	}
	if v := parseFlag(args, "--suspect-module="); v != "" {
		cfg.SuspectModule = v
	}
	if v := parseFlag(args, "--suspect-marker="); v != "" {
		cfg.SuspectMarker = v
	}
}
