package dto

import "github.com/shopspring/decimal"

// CostingResponse desglose de costeo de un producto para los colaboradores
// externos (formularios, render de documentos).
type CostingResponse struct {
	Currency          string          `json:"currency"`
	TotalMaterialCost decimal.Decimal `json:"total_material_cost"`
	TotalLaborCost    decimal.Decimal `json:"total_labor_cost"`
	TotalMachineCost  decimal.Decimal `json:"total_machine_cost"`
	DepreciationCost  decimal.Decimal `json:"depreciation_cost"`
	OverheadCost      decimal.Decimal `json:"overhead_cost"`
	TotalCost         decimal.Decimal `json:"total_cost"`
	CostPerUnit       decimal.Decimal `json:"cost_per_unit"`

	GrossRevenue  decimal.Decimal `json:"gross_revenue"`
	NetRevenue    decimal.Decimal `json:"net_revenue"`
	Profit        decimal.Decimal `json:"profit"`
	MarginPercent decimal.Decimal `json:"margin_percent"`

	SuggestedNetRevenue decimal.Decimal `json:"suggested_net_revenue"`
	MarginUnachievable  bool            `json:"margin_unachievable"` // margen objetivo >= 100%
}

// ProductResponse línea de producto ya costeada.
type ProductResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	VATRate   decimal.Decimal `json:"vat_rate"`
	Costing   CostingResponse `json:"costing"`
}
