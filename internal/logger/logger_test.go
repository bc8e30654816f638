package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func TestSetup_WritesToFile(t *testing.T) {
	prev := log.Logger
	t.Cleanup(func() {
		log.Logger = prev
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	})

	path := filepath.Join(t.TempDir(), "logs", "scraping.log")
	f, err := Setup("prod", path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer f.Close()

	log.Debug().Msg("não deve aparecer")
	log.Info().Str("pagina", "1").Msg("página finalizada")

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	content := string(b)
	if !strings.Contains(content, "página finalizada") {
		t.Fatalf("expected info line in log file, got %q", content)
	}
	if strings.Contains(content, "não deve aparecer") {
		t.Fatalf("expected debug line to be filtered in prod, got %q", content)
	}
}

func TestSetup_NoFile(t *testing.T) {
	prev := log.Logger
	t.Cleanup(func() { log.Logger = prev })

	f, err := Setup("dev", "")
	if err != nil || f != nil {
		t.Fatalf("expected no file and no error, got %v / %v", f, err)
	}
	if zerolog.GlobalLevel() != zerolog.DebugLevel {
		t.Fatalf("expected debug level in dev, got %v", zerolog.GlobalLevel())
	}
}
