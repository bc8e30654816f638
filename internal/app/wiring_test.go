package app

import (
	"context"
	"testing"
	"time"

	"github.com/mvinis/monitoramento-precos-magalu/internal/config"
	"github.com/mvinis/monitoramento-precos-magalu/internal/model"
)

func TestNewResolver_WithoutAI(t *testing.T) {
	cfg := &config.Config{OpenAIKey: "sk-teste", RedisURL: "127.0.0.1:1", CacheTTL: time.Hour}

	r, cleanup := NewResolver(context.Background(), cfg, false)
	defer cleanup()
	if got := r.Resolve(context.Background(), "Mochila Escolar Infantil"); got != model.CategoryOther {
		t.Fatalf("expected Outros without AI, got %q", got)
	}
}

func TestNewResolver_MissingKey(t *testing.T) {
	r, cleanup := NewResolver(context.Background(), &config.Config{}, true)
	defer cleanup()
	if got := r.Resolve(context.Background(), "Carregador Turbo USB-C 25W"); got != model.CategoryCharger {
		t.Fatalf("expected rules to keep working, got %q", got)
	}
}

func TestStores_CloseNil(t *testing.T) {
	var s *Stores
	s.Close()
}
