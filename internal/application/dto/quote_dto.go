package dto

import "github.com/shopspring/decimal"

// QuoteLineResponse línea de la vista de cotización. Todas las cifras vienen
// listas: ningún consumidor debe hacer aritmética adicional.
type QuoteLineResponse struct {
	ProductID      string          `json:"product_id"`
	Name           string          `json:"name"`
	Quantity       decimal.Decimal `json:"quantity"`
	UnitPrice      decimal.Decimal `json:"unit_price"`
	VATRate        decimal.Decimal `json:"vat_rate"`
	LineTotalGross decimal.Decimal `json:"line_total_gross"`
	LineTotalNet   decimal.Decimal `json:"line_total_net"`
	DiscountGross  decimal.Decimal `json:"discount_gross"`
	DiscountNet    decimal.Decimal `json:"discount_net"`
	TotalGross     decimal.Decimal `json:"total_gross"`
	TotalNet       decimal.Decimal `json:"total_net"`
}

// ShippingResponse línea de envío; se incluye también condonada (waived).
type ShippingResponse struct {
	Waived bool            `json:"waived"`
	Gross  decimal.Decimal `json:"gross"`
	Net    decimal.Decimal `json:"net"`
}

// SummaryRowResponse renglón de la escalera de totales, ya formateado.
type SummaryRowResponse struct {
	Label         string          `json:"label"`
	Amount        decimal.Decimal `json:"amount"`
	Display       string          `json:"display"` // monto formateado en la moneda de la cotización
	Informational bool            `json:"informational"`
}

// QuoteViewResponse vista completa de la cotización para un tipo de cliente.
type QuoteViewResponse struct {
	QuoteID      string `json:"quote_id"`
	Number       string `json:"number"`
	Currency     string `json:"currency"`
	CustomerType string `json:"customer_type"`

	Lines []QuoteLineResponse `json:"lines"`

	SubtotalGross decimal.Decimal `json:"subtotal_gross"`
	SubtotalNet   decimal.Decimal `json:"subtotal_net"`

	DiscountGross  decimal.Decimal `json:"discount_gross"`
	DiscountNet    decimal.Decimal `json:"discount_net"`
	DiscountCapped bool            `json:"discount_capped"` // el descuento excedió el subtotal y se limitó

	Shipping *ShippingResponse `json:"shipping,omitempty"`

	GrandTotalGross decimal.Decimal `json:"grand_total_gross"`
	GrandTotalNet   decimal.Decimal `json:"grand_total_net"`
	VATAmount       decimal.Decimal `json:"vat_amount"`

	Headline        decimal.Decimal      `json:"headline"`
	HeadlineDisplay string               `json:"headline_display"`
	Summary         []SummaryRowResponse `json:"summary"`
}
