package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		envPort, envPollInterval, envProvider,
		envSlateDir, envProjectionsGlob, envSalaryGlob,
		envRotowireURL, envRotowireTimeout,
		envProjectionFallback, envSuppressOut, envFuzzyTier,
		envSnapshotDir, envSnapshotRetention, envFeedOutput, envAdminToken,
	} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.Port != defaultPort {
		t.Fatalf("expected default port, got %s", cfg.Port)
	}
	if cfg.PollInterval != defaultPollInterval {
		t.Fatalf("expected default poll interval, got %v", cfg.PollInterval)
	}
	if cfg.Provider != "rotowire" {
		t.Fatalf("expected rotowire provider default, got %s", cfg.Provider)
	}
	if cfg.Slate.ProjectionsGlob != "*DFF*.csv" || cfg.Slate.SalaryGlob != "*FanDuel*.csv" {
		t.Fatalf("unexpected slate globs: %+v", cfg.Slate)
	}
	if cfg.Rotowire.Timeout != 10*time.Second {
		t.Fatalf("expected bounded rotowire timeout, got %v", cfg.Rotowire.Timeout)
	}
	if cfg.Matcher.ProjectionFallback || cfg.Matcher.SuppressOut || cfg.Matcher.FuzzyTier {
		t.Fatalf("expected conservative matcher defaults, got %+v", cfg.Matcher)
	}
	if cfg.Snapshots.OutputFile != "data/nba_data.json" {
		t.Fatalf("unexpected output file: %s", cfg.Snapshots.OutputFile)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv(envPort, "8080")
	t.Setenv(envPollInterval, "30s")
	t.Setenv(envProvider, "fixture")
	t.Setenv(envProjectionFallback, "true")
	t.Setenv(envFuzzyTier, "1")

	cfg := Load()
	if cfg.Port != "8080" {
		t.Fatalf("expected overridden port, got %s", cfg.Port)
	}
	if cfg.PollInterval != 30*time.Second {
		t.Fatalf("expected overridden interval, got %v", cfg.PollInterval)
	}
	if cfg.Provider != "fixture" {
		t.Fatalf("expected fixture provider, got %s", cfg.Provider)
	}
	if !cfg.Matcher.ProjectionFallback || !cfg.Matcher.FuzzyTier {
		t.Fatalf("expected matcher overrides, got %+v", cfg.Matcher)
	}
}
