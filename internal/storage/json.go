package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/mvinis/monitoramento-precos-magalu/internal/model"
)

const fileLayout = "20060102_150405"

// SaveJSON grava os registros em <dir>/produtos_magalu_<data>_<hora>.json e
// devolve o caminho do arquivo.
func SaveJSON(dir string, records []model.ProductRecord, now time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create %s: %w", dir, err)
	}

	path := filepath.Join(dir, "produtos_magalu_"+now.Format(fileLayout)+".json")
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if records == nil {
		records = []model.ProductRecord{}
	}

	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(records); err != nil {
		return "", fmt.Errorf("encode %s: %w", path, err)
	}

	log.Info().Str("arquivo", path).Int("produtos", len(records)).Msg("[Storage] dados salvos")
	return path, nil
}

// LoadJSON lê um arquivo gerado por SaveJSON.
func LoadJSON(path string) ([]model.ProductRecord, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var records []model.ProductRecord
	if err := json.Unmarshal(b, &records); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return records, nil
}
