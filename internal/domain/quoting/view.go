package quoting

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/cotizador-pro/internal/domain/entity"
)

// Policy decisiones de jurisdicción que el agregador no debe cablear en duro.
type Policy struct {
	// ShippingZeroRated true: el envío no causa IVA (neto = bruto).
	// false: el neto del envío se deriva con la tasa efectiva de la cotización.
	ShippingZeroRated bool
}

// LineView una línea de producto con todas sus cifras listas para mostrar.
// Ningún consumidor debería necesitar aritmética adicional.
type LineView struct {
	ProductID string
	Name      string
	Quantity  decimal.Decimal
	UnitPrice decimal.Decimal // bruto
	VATRate   decimal.Decimal // tasa propia del snapshot de la línea

	LineTotalGross decimal.Decimal // UnitPrice x Quantity
	LineTotalNet   decimal.Decimal

	// DiscountGross porción del descuento de la cotización asignada a esta
	// línea (asignación proporcional); DiscountNet derivado con la tasa de
	// la propia línea para mantener consistente su par neto/bruto.
	DiscountGross decimal.Decimal
	DiscountNet   decimal.Decimal

	TotalGross decimal.Decimal // LineTotalGross - DiscountGross
	TotalNet   decimal.Decimal // LineTotalNet - DiscountNet
}

// ShippingView línea de envío. Se emite incluso condonado (Waived), para que
// el cliente vea que el cargo fue perdonado y no omitido.
type ShippingView struct {
	Present bool
	Waived  bool
	Gross   decimal.Decimal
	Net     decimal.Decimal
}

// SummaryRow renglón de la escalera de totales según el tipo de cliente.
type SummaryRow struct {
	Label         string
	Amount        decimal.Decimal
	Informational bool // true: renglón secundario (desglose), no el principal
}

// QuoteView modelo de vista completo de la cotización: cifras por línea,
// subtotales, descuento, envío y totales en neto y bruto simultáneamente.
type QuoteView struct {
	QuoteID      string
	Number       string
	Currency     string
	CustomerType entity.CustomerType

	Lines []LineView

	SubtotalGross decimal.Decimal
	SubtotalNet   decimal.Decimal

	DiscountGross  decimal.Decimal
	DiscountNet    decimal.Decimal
	DiscountCapped bool // señal informativa: el descuento excedió el subtotal y se limitó

	Shipping ShippingView

	GrandTotalGross decimal.Decimal
	GrandTotalNet   decimal.Decimal
	VATAmount       decimal.Decimal // GrandTotalGross - GrandTotalNet

	// Headline cifra principal según CustomerType: bruto para private,
	// también bruto al cierre de la escalera neto->IVA->bruto de business.
	Headline decimal.Decimal
	Summary  []SummaryRow
}
