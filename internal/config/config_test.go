package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"ENVIRONMENT", "PAGE_DELAY", "WORKER_COUNT", "MAX_PAGES", "CACHE_TTL", "CLASSIFIER_MODEL"} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Env != "dev" || cfg.IsProduction() {
		t.Fatalf("expected dev environment, got %q", cfg.Env)
	}
	if cfg.PageDelay != 5*time.Second {
		t.Fatalf("expected 5s page delay, got %v", cfg.PageDelay)
	}
	if cfg.CacheTTL != 168*time.Hour {
		t.Fatalf("expected 168h cache ttl, got %v", cfg.CacheTTL)
	}
	if cfg.WorkerCount != 4 || cfg.MaxPages != 0 {
		t.Fatalf("unexpected workers/pages %d/%d", cfg.WorkerCount, cfg.MaxPages)
	}
	if cfg.ClassifierModel != "gpt-4o-mini" {
		t.Fatalf("unexpected model %q", cfg.ClassifierModel)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("ENVIRONMENT", "prod")
	t.Setenv("PAGE_DELAY", "1500ms")
	t.Setenv("MAX_PAGES", "3")
	t.Setenv("WORKER_COUNT", "2")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.IsProduction() {
		t.Fatalf("expected production")
	}
	if cfg.PageDelay != 1500*time.Millisecond || cfg.MaxPages != 3 || cfg.WorkerCount != 2 {
		t.Fatalf("unexpected config %+v", cfg)
	}
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("PAGE_DELAY", "cinco segundos")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid PAGE_DELAY")
	}

	t.Setenv("PAGE_DELAY", "5s")
	t.Setenv("WORKER_COUNT", "0")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for WORKER_COUNT=0")
	}

	t.Setenv("WORKER_COUNT", "4")
	t.Setenv("PAGE_DELAY", "-1s")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for negative PAGE_DELAY")
	}
}
