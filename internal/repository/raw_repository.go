package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/mvinis/monitoramento-precos-magalu/internal/model"
)

// RawRow é um produto bruto guardado para (re)processamento.
type RawRow struct {
	ID      string
	Raw     model.RawProduct
	Context model.CollectionContext
}

type RawRepository struct {
	DB *sql.DB
}

// Save grava o produto bruto e o contexto da coleta. Um produto já existente é
// atualizado e volta para a fila de processamento.
func (r *RawRepository) Save(p model.RawProduct, cc model.CollectionContext) error {
	contexto, err := json.Marshal(cc)
	if err != nil {
		return err
	}

	var exists bool
	err = r.DB.QueryRow("SELECT EXISTS(SELECT 1 FROM produto_bruto WHERE produto_id = $1)", p.IDProduto).Scan(&exists)
	if err != nil {
		return fmt.Errorf("check %s: %w", p.IDProduto, err)
	}

	if exists {
		_, err = r.DB.Exec(`
			UPDATE produto_bruto
			SET titulo = $1, preco_antigo = $2, preco_pix = $3, preco_atual = $4,
			    parcelamento_original = $5, contexto = $6, sync_status = 'S', coletado_em = now()
			WHERE produto_id = $7
		`, p.Titulo, p.PrecoAntigo, p.PrecoPix, p.PrecoAtual, p.ParcelamentoOriginal, contexto, p.IDProduto)
	} else {
		_, err = r.DB.Exec(`
			INSERT INTO produto_bruto
			(id, produto_id, titulo, preco_antigo, preco_pix, preco_atual, parcelamento_original, contexto, sync_status)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, 'S')
		`, uuid.New().String(), p.IDProduto, p.Titulo, p.PrecoAntigo, p.PrecoPix, p.PrecoAtual, p.ParcelamentoOriginal, contexto)
	}

	return err
}

// ListPending devolve os produtos ainda não estruturados, na ordem de coleta.
func (r *RawRepository) ListPending(limit int) ([]RawRow, error) {
	rows, err := r.DB.Query(`
		SELECT id, produto_id, titulo, preco_antigo, preco_pix, preco_atual, parcelamento_original, contexto
		FROM produto_bruto
		WHERE sync_status = 'S'
		ORDER BY coletado_em
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []RawRow
	for rows.Next() {
		var (
			row      RawRow
			contexto []byte
		)
		if err := rows.Scan(&row.ID, &row.Raw.IDProduto, &row.Raw.Titulo, &row.Raw.PrecoAntigo,
			&row.Raw.PrecoPix, &row.Raw.PrecoAtual, &row.Raw.ParcelamentoOriginal, &contexto); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(contexto, &row.Context); err != nil {
			return nil, fmt.Errorf("contexto de %s: %w", row.Raw.IDProduto, err)
		}
		list = append(list, row)
	}

	return list, rows.Err()
}

func (r *RawRepository) MarkAsProcessed(produtoID string) error {
	_, err := r.DB.Exec(`
		UPDATE produto_bruto
		SET sync_status = 'N'
		WHERE produto_id = $1
	`, produtoID)
	return err
}
