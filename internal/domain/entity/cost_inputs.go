package entity

import "github.com/shopspring/decimal"

// Categorías de material dentro del costeo de un producto.
const (
	MaterialCategoryMain       = "main"       // materia prima principal
	MaterialCategoryPackaging  = "packaging"  // empaque
	MaterialCategoryDecoration = "decoration" // decoración / acabado
)

// MaterialInput una línea de material consumido por el producto.
type MaterialInput struct {
	Name     string
	Quantity decimal.Decimal // cantidad consumida (>= 0)
	Unit     string          // unidad de medida libre (g, ml, unidad, ...)
	UnitCost decimal.Decimal // costo por unidad (>= 0)
	Category string          // main|packaging|decoration
}

// MachineInput uso de una máquina (horas x tarifa).
type MachineInput struct {
	Name       string
	UsageHours decimal.Decimal // >= 0
	HourlyRate decimal.Decimal // >= 0
}

// LaborInput mano de obra directa.
type LaborInput struct {
	Hours       decimal.Decimal // >= 0
	RatePerHour decimal.Decimal // >= 0
}

// DepreciationInput depreciación asignada al lote (monto plano, no por tiempo).
type DepreciationInput struct {
	Amount decimal.Decimal // >= 0
}

// OverheadInput gastos indirectos. La tarifa se multiplica por las horas de
// mano de obra, no por horas de máquina; el resto del sistema asume ese anclaje.
type OverheadInput struct {
	RatePerHour decimal.Decimal // >= 0
}

// ProductionInput parámetros del lote producido.
type ProductionInput struct {
	UnitsProduced      int64           // >= 1 antes de cualquier división por unidad
	TargetProfitMargin decimal.Decimal // porcentaje en [0, 100); >= 100 es inalcanzable
}

// SalePriceInput precio de venta nominal ingresado por el usuario.
// Si IsPerUnit, el ingreso es Amount x UnitsCount + FixedCharge;
// si no, Amount + FixedCharge.
type SalePriceInput struct {
	Amount      decimal.Decimal // >= 0
	IsPerUnit   bool
	UnitsCount  int64           // >= 1 cuando IsPerUnit
	FixedCharge decimal.Decimal // >= 0 (ej. recargo fijo por pedido)
}

// VATSettings tasa de IVA bajo la cual se fijó un precio.
// Rate = 0 degenera en neto = bruto.
type VATSettings struct {
	Rate        decimal.Decimal // porcentaje (>= 0), ej. 19 para 19%
	IsInclusive bool            // true: el monto ingresado ya incluye IVA
}

// Factor devuelve (1 + Rate/100), el factor neto -> bruto.
func (v VATSettings) Factor() decimal.Decimal {
	return decimal.NewFromInt(1).Add(v.Rate.Div(decimal.NewFromInt(100)))
}

// CostInputs entrada completa del calculador de costeo. Se pasa por valor:
// un producto nunca retiene referencia a configuración global mutable.
type CostInputs struct {
	Currency     string // código ISO-4217, validado en el borde
	Materials    []MaterialInput
	Machines     []MachineInput
	Labor        LaborInput
	Depreciation DepreciationInput
	Overhead     OverheadInput
	Production   ProductionInput
	SalePrice    SalePriceInput
	VAT          VATSettings
}
