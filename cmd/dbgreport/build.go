// Copyright 2026 The Dbgreport Authors
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"log/slog"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/davetashner/dbgreport/internal/config"
	"github.com/davetashner/dbgreport/internal/debugreport"
	"github.com/davetashner/dbgreport/internal/manifest"
	"github.com/davetashner/dbgreport/internal/redact"
)

// Build-specific flag values.
var (
	buildOutput   string
	buildTitle    string
	buildRunID    bool
	buildParallel int
	buildRedact   bool
)

// buildCmd renders a manifest into an HTML debug report.
var buildCmd = &cobra.Command{
	Use:   "build <manifest>",
	Short: "Build an HTML debug report from a manifest",
	Long: `Build an HTML debug report from a YAML or TOML manifest.

The manifest lists sections in order. Groups nest their sections under a
parent heading; code entries are shown in preformatted blocks, read from
a file relative to the manifest or given inline.

The output path is taken from, in order: --output, the manifest's
"output" key, then debug_report in .dbgreport.yaml (or dbgreport.toml)
and the global config. Nothing is written when the manifest records no
content.

Examples:
  dbgreport build report.yaml
  dbgreport build passes.toml -o build/debug.html --title "Nightly passes"`,
	Args: cobra.ExactArgs(1),
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().StringVarP(&buildOutput, "output", "o", "", "output file path (overrides manifest and config)")
	buildCmd.Flags().StringVar(&buildTitle, "title", "", "document title")
	buildCmd.Flags().BoolVar(&buildRunID, "run-id", true, "embed a unique run identifier in the report header")
	buildCmd.Flags().BoolVar(&buildRedact, "redact", true, "replace known credential values in section bodies with [REDACTED]")
	buildCmd.Flags().IntVarP(&buildParallel, "parallel", "j", 0, "max files read concurrently (default: config, then GOMAXPROCS)")
}

func runBuild(cmd *cobra.Command, args []string) error {
	manifestPath, err := cmdFS.Abs(args[0])
	if err != nil {
		return exitError(ExitInvalidArgs, err, fmt.Sprintf("cannot resolve path %q", args[0]))
	}
	info, err := cmdFS.Stat(manifestPath)
	if err != nil {
		return exitError(ExitInvalidArgs, nil, fmt.Sprintf("manifest %q does not exist", args[0]))
	}
	if info.IsDir() {
		return exitError(ExitInvalidArgs, nil, fmt.Sprintf("manifest %q is a directory", args[0]))
	}

	cfg, err := config.Resolve(".")
	if err != nil {
		return exitError(ExitInvalidArgs, err, "failed to load config")
	}
	if err := config.Validate(cfg); err != nil {
		return exitError(ExitInvalidArgs, err, "invalid config")
	}
	if buildParallel < 0 {
		return exitError(ExitInvalidArgs, nil, "--parallel must be non-negative")
	}
	if buildParallel > 0 {
		cfg.MaxParallelReads = buildParallel
	}

	m, err := manifest.Load(cmd.Context(), cmdFS, manifestPath, cfg.MaxParallelReads)
	if err != nil {
		return exitError(ExitInvalidArgs, err, "cannot load manifest")
	}

	// The merged config is the report's destination; overrides land in it.
	switch {
	case buildOutput != "":
		cfg.DebugReport = buildOutput
	case m.OutputPath() != "":
		cfg.DebugReport = m.OutputPath()
	}
	title := firstNonEmpty(buildTitle, m.Title, cfg.Title)

	opts := []debugreport.Option{
		debugreport.WithDestination(cfg),
		debugreport.WithFileSystem(cmdFS),
		debugreport.WithTitle(title),
	}
	runID := cfg.RunIDEnabled()
	if cmd.Flags().Changed("run-id") {
		runID = buildRunID
	}
	if runID {
		opts = append(opts, debugreport.WithRunID(uuid.NewString()))
	}

	slog.Debug("building debug report", "manifest", manifestPath, "entries", m.Count())

	var applyOpts []manifest.ApplyOption
	if buildRedact {
		applyOpts = append(applyOpts, manifest.WithFilter(redact.String))
	}

	empty := true
	err = debugreport.Run(func(r *debugreport.Report) error {
		applyErr := m.Apply(r, applyOpts...)
		empty = r.Empty()
		return applyErr
	}, opts...)
	if err != nil {
		slog.Error("debug report failed", "error", err)
		return exitError(ExitWriteFailure, err, "debug report failed")
	}

	w := cmd.OutOrStdout()
	if empty {
		_, _ = fmt.Fprintln(w, color.New(color.FgYellow).Sprint("No content recorded; no report written."))
		return nil
	}
	_, _ = fmt.Fprintf(w, "%s %d sections to %s\n",
		color.New(color.FgGreen).Sprint("Wrote"), m.Count(), cfg.ReportPath())
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
