package entity

import "github.com/shopspring/decimal"

// Tipos de descuento a nivel de cotización.
const (
	DiscountKindPercentage = "percentage"
	DiscountKindFixed      = "fixed"
)

// DiscountInfo descuento transitorio: entra al agregador, no se persiste en la
// cotización, para permitir recálculos what-if sin mutar estado.
type DiscountInfo struct {
	Kind  string          // percentage|fixed
	Value decimal.Decimal // >= 0; porcentaje o monto bruto según Kind
}

// ShippingInfo envío transitorio. Si IsFree, el cargo mostrado es 0 pero la
// línea de envío se emite igual (el cliente ve que fue condonado).
type ShippingInfo struct {
	Amount decimal.Decimal // >= 0
	IsFree bool
}

// CustomerType selector de presentación: nunca cambia los totales, solo cuál
// cifra (bruto o neto) se muestra como principal.
type CustomerType string

const (
	CustomerPrivate  CustomerType = "private"
	CustomerBusiness CustomerType = "business"
)

// Valid indica si el tipo de cliente es uno de los conocidos.
func (c CustomerType) Valid() bool {
	return c == CustomerPrivate || c == CustomerBusiness
}
