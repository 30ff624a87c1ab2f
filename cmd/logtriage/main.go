// Package main provides the CLI for logtriage.
package main

import (
	"fmt"
	"os"

	"github.com/jmylchreest/logtriage/internal/version"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	if err := runCommand(cmd, args); err != nil {
		fatal("%v", err)
	}
}

func runCommand(cmd string, args []string) error {
	switch cmd {
	case "run":
		return cmdRun(args)
	case "help", "-h", "--help":
		printUsage()
		return nil
	case "version", "-v", "--version":
		return cmdVersion(args)
	default:
		return fmt.Errorf("unknown command: %s", cmd)
	}
}

func cmdVersion(args []string) error {
	if hasFlag(args, "--json") {
		fmt.Println(version.JSON())
		return nil
	}
	fmt.Println(version.String())
	return nil
}

func printUsage() {
	fmt.Printf(`logtriage %s - Classify, locate and rank failures in a test/run log

Usage:
  logtriage <command> [arguments]

Commands:
  run        Analyze a log file and print the triage report
  version    Show version information

Options:
  run <logfile>:
    --config=PATH          JSON config file (pattern rules, grammar, thresholds)
    --json                 Output the report as JSON
    --top-mentions=N       Ranked mention rows to show (default 10)
    --top-origins=N        Ranked origin rows to show (default 5)
    --dedup-cap=N          Max distinct error locations to show (default 5)
    --lookback=N           Context lines before a match (default 5)
    --lookahead=N          Context lines from a match forward (default 10)
    --provenance-rule=NAME Rule whose matches get context analysis
                           (default: first configured rule)
    --suspect-module=S     Module name or glob marking a call site as suspect
    --suspect-marker=S     Substring in context marking an occurrence as suspect

Environment:
  LOGTRIAGE_*            Override any config key, e.g. LOGTRIAGE_TOP_N_MENTIONS=20

Examples:
  logtriage run test-results-final.log
  logtriage run --config=triage.json --json results.log
  logtriage run --suspect-module='**/database.manager.ts' results.log
`, version.Short())
}
