package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CostingResult desglose de costos, ingresos y margen de un producto.
// Es un snapshot inmutable: se captura al fijar el precio y no se recalcula
// cuando cambian valores globales por defecto (aislamiento de snapshot).
type CostingResult struct {
	TotalMaterialCost decimal.Decimal
	TotalLaborCost    decimal.Decimal
	TotalMachineCost  decimal.Decimal
	DepreciationCost  decimal.Decimal
	OverheadCost      decimal.Decimal
	TotalCost         decimal.Decimal

	CostPerUnit decimal.Decimal // TotalCost / UnitsProduced

	GrossRevenue  decimal.Decimal // ingreso con IVA
	NetRevenue    decimal.Decimal // ingreso sin IVA
	Profit        decimal.Decimal // NetRevenue - TotalCost
	MarginPercent decimal.Decimal // Profit / NetRevenue * 100 (0 si NetRevenue = 0)

	// SuggestedNetRevenue precio neto sugerido para alcanzar el margen objetivo:
	// TotalCost / (1 - margen/100). Cero cuando MarginUnachievable.
	SuggestedNetRevenue decimal.Decimal
	MarginUnachievable  bool // margen objetivo >= 100%

	// VAT tasa bajo la cual se derivó el split neto/bruto de este resultado.
	VAT VATSettings

	// CapturedAt momento en que se capturó el snapshot (lo fija la capa de
	// aplicación; el cálculo en sí es puro). Cero = snapshot no capturado.
	CapturedAt time.Time
}
