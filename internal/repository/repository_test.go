package repository

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"

	"github.com/mvinis/monitoramento-precos-magalu/internal/db"
	"github.com/mvinis/monitoramento-precos-magalu/internal/model"
)

// Testes de integração: rodam apenas com TEST_DATABASE_URL apontando para um
// Postgres descartável.
func testDatabaseURL(t *testing.T) string {
	t.Helper()
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL não definido")
	}
	return url
}

func TestRawRepository_SaveListMark(t *testing.T) {
	url := testDatabaseURL(t)
	conn, err := db.New(url)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	defer conn.Close()
	if err := db.EnsureSchema(conn); err != nil {
		t.Fatalf("schema: %v", err)
	}

	repo := &RawRepository{DB: conn}
	id := "teste-" + uuid.NewString()
	raw := model.RawProduct{IDProduto: id, Titulo: "Smartphone Teste", PrecoAntigo: 1000, PrecoAtual: 800, ParcelamentoOriginal: "10x de R$ 80,00"}
	cc := model.CollectionContext{Timestamp: "2026-01-15 10:30:00", CanalVenda: model.CanalMarketplace, Loja: "Gazin", Pagina: 3}

	if err := repo.Save(raw, cc); err != nil {
		t.Fatalf("save: %v", err)
	}
	// segunda gravação atualiza a mesma linha
	raw.PrecoAtual = 750
	if err := repo.Save(raw, cc); err != nil {
		t.Fatalf("update: %v", err)
	}

	pending, err := repo.ListPending(10000)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	var found *RawRow
	for i := range pending {
		if pending[i].Raw.IDProduto == id {
			if found != nil {
				t.Fatalf("expected %s once in pending list", id)
			}
			found = &pending[i]
		}
	}
	if found == nil {
		t.Fatalf("expected %s in pending list", id)
	}
	if found.Raw.PrecoAtual != 750 || found.Context.Loja != "Gazin" || found.Context.Pagina != 3 {
		t.Fatalf("unexpected row %+v", found)
	}

	if err := repo.MarkAsProcessed(id); err != nil {
		t.Fatalf("mark: %v", err)
	}
	pending, _ = repo.ListPending(10000)
	for _, row := range pending {
		if row.Raw.IDProduto == id {
			t.Fatalf("expected %s to leave the pending list", id)
		}
	}
}

func TestProductRepository_SaveAndSummary(t *testing.T) {
	url := testDatabaseURL(t)
	conn, err := db.New(url)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	defer conn.Close()
	if err := db.EnsureSchema(conn); err != nil {
		t.Fatalf("schema: %v", err)
	}

	ctx := context.Background()
	pool, err := db.NewPool(ctx, url)
	if err != nil {
		t.Fatalf("pool: %v", err)
	}
	defer pool.Close()

	repo := &ProductRepository{DB: pool}
	categoria := "Teste " + uuid.NewString()
	rec := model.ProductRecord{Produto: model.Produto{IDSite: "1", Categoria: categoria, IsBundle: true}}
	for i := 0; i < 2; i++ {
		if err := repo.Save(ctx, rec); err != nil {
			t.Fatalf("save: %v", err)
		}
	}

	summary, err := repo.SummaryByCategory(ctx)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	for _, c := range summary {
		if c.Categoria == categoria {
			if c.Total != 2 || c.Bundles != 2 {
				t.Fatalf("expected 2/2, got %+v", c)
			}
			return
		}
	}
	t.Fatalf("expected category %q in summary", categoria)
}
