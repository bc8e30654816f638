package repository

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mvinis/monitoramento-precos-magalu/internal/model"
)

// CategoryCount é uma linha do resumo por categoria.
type CategoryCount struct {
	Categoria string
	Total     int
	Bundles   int
}

type ProductRepository struct {
	DB *pgxpool.Pool
}

// Save guarda o registro estruturado inteiro como JSONB.
func (r *ProductRepository) Save(ctx context.Context, rec model.ProductRecord) error {
	registro, err := json.Marshal(rec)
	if err != nil {
		return err
	}

	_, err = r.DB.Exec(ctx, `
		INSERT INTO produto_estruturado (id, id_site, categoria, is_bundle, registro)
		VALUES ($1, $2, $3, $4, $5)
	`, uuid.New(), rec.Produto.IDSite, rec.Produto.Categoria, rec.Produto.IsBundle, registro)

	return err
}

// SummaryByCategory conta os registros por categoria, da maior para a menor.
func (r *ProductRepository) SummaryByCategory(ctx context.Context) ([]CategoryCount, error) {
	rows, err := r.DB.Query(ctx, `
		SELECT categoria, COUNT(*), COUNT(*) FILTER (WHERE is_bundle)
		FROM produto_estruturado
		GROUP BY categoria
		ORDER BY COUNT(*) DESC, categoria
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []CategoryCount
	for rows.Next() {
		var c CategoryCount
		if err := rows.Scan(&c.Categoria, &c.Total, &c.Bundles); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
