package entity

import (
	"fmt"
	"time"

	"github.com/tu-usuario/cotizador-pro/internal/domain"
)

// Estados de una cotización.
const (
	QuoteStatusDraft     = "DRAFT"     // admite agregar/quitar/reemplazar productos
	QuoteStatusFinalized = "FINALIZED" // terminal para mutaciones de precio
)

// Quote raíz de agregado: posee sus productos en exclusiva y en orden.
// Un producto pertenece a lo sumo a una cotización.
type Quote struct {
	ID          string
	Number      string
	ProjectName string
	ClientName  string
	Currency    string // código ISO-4217 explícito, nunca estado ambiental
	Products    []*Product
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsDraft indica si la cotización todavía admite mutaciones de precio.
func (q *Quote) IsDraft() bool {
	return q.Status == QuoteStatusDraft
}

// AddProduct agrega una línea al final. Falla si la cotización está
// finalizada o si el ID ya existe en la cotización.
func (q *Quote) AddProduct(p *Product) error {
	if !q.IsDraft() {
		return domain.ErrQuoteFinalized
	}
	if p == nil || p.ID == "" {
		return domain.ErrInvalidInput
	}
	for _, existing := range q.Products {
		if existing.ID == p.ID {
			return fmt.Errorf("producto %s ya está en la cotización: %w", p.ID, domain.ErrDuplicate)
		}
	}
	q.Products = append(q.Products, p)
	return nil
}

// RemoveProduct quita una línea por ID preservando el orden de las demás.
func (q *Quote) RemoveProduct(productID string) error {
	if !q.IsDraft() {
		return domain.ErrQuoteFinalized
	}
	for i, p := range q.Products {
		if p.ID == productID {
			q.Products = append(q.Products[:i], q.Products[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// ReplaceProduct sustituye una línea en su posición. Los productos son
// inmutables: "editar" siempre es reemplazar por uno recosteado.
func (q *Quote) ReplaceProduct(productID string, replacement *Product) error {
	if !q.IsDraft() {
		return domain.ErrQuoteFinalized
	}
	if replacement == nil || replacement.ID == "" {
		return domain.ErrInvalidInput
	}
	for i, p := range q.Products {
		if p.ID == productID {
			q.Products[i] = replacement
			return nil
		}
	}
	return domain.ErrNotFound
}

// Finalize pasa la cotización a FINALIZED. No hay transición de regreso a
// DRAFT en este núcleo. Exige que cada línea tenga nombre y snapshot de
// costeo capturado al momento de agregarla.
func (q *Quote) Finalize() error {
	if !q.IsDraft() {
		return domain.ErrQuoteFinalized
	}
	for _, p := range q.Products {
		if p.Name == "" {
			return fmt.Errorf("producto %s sin nombre: %w", p.ID, domain.ErrInvalidInput)
		}
		if p.Costing.CapturedAt.IsZero() {
			return fmt.Errorf("producto %s sin snapshot de costeo: %w", p.ID, domain.ErrInvalidInput)
		}
	}
	q.Status = QuoteStatusFinalized
	return nil
}
