// Package document implementa el documento único de la tienda: codificación JSON,
// datos semilla, fixtures YAML, la sesión sobre el DocumentStore y los repositorios
// por entidad que operan sobre esa sesión.
package document

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/jhoicas/freshstock-api/internal/domain"
	"github.com/jhoicas/freshstock-api/internal/domain/entity"
)

// Decode interpreta el contenido persistido. Cualquier error de formato se reporta
// como ErrStoreCorrupt: un documento ilegible nunca se vuelve a sembrar. Un `null`,
// un objeto sin ningún dato o bytes sobrantes tras el primer valor también son corrupción.
func Decode(data []byte) (*entity.Document, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("documento vacío: %w", domain.ErrStoreCorrupt)
	}
	var doc *entity.Document
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decodificar documento: %v: %w", err, domain.ErrStoreCorrupt)
	}
	if doc == nil || isZero(doc) {
		return nil, fmt.Errorf("documento sin datos: %w", domain.ErrStoreCorrupt)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("datos sobrantes tras el documento: %w", domain.ErrStoreCorrupt)
	}
	doc.Normalize()
	return doc, nil
}

func isZero(doc *entity.Document) bool {
	return doc.Settings == (entity.Settings{}) &&
		len(doc.Users) == 0 && len(doc.Products) == 0 && len(doc.Suppliers) == 0 &&
		len(doc.Orders) == 0 && len(doc.Activities) == 0 && len(doc.Sales) == 0
}

// Encode serializa el documento completo.
func Encode(doc *entity.Document) ([]byte, error) {
	doc.Normalize()
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("codificar documento: %w", err)
	}
	return data, nil
}
