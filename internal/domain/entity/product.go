package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product línea de cotización ya costeada. Inmutable una vez agregada a una
// cotización: editar un producto significa reemplazarlo por uno nuevo.
type Product struct {
	ID        string
	Name      string
	Quantity  decimal.Decimal // cantidad cotizada
	UnitPrice decimal.Decimal // precio unitario bruto (con IVA)
	Costing   CostingResult   // snapshot capturado al fijar el precio
	Materials []MaterialInput // copia de los materiales al momento del costeo
	CreatedAt time.Time
}

// VATRate tasa de IVA propia de la línea (del snapshot, no de la cotización).
func (p *Product) VATRate() decimal.Decimal {
	return p.Costing.VAT.Rate
}
