// Package quoting implementa el agregador de cotizaciones (servicio de dominio
// puro): consume productos ya costeados y produce el modelo de vista con
// descuento, envío y totales conciliados al centavo.
package quoting

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/cotizador-pro/internal/domain"
	"github.com/tu-usuario/cotizador-pro/internal/domain/entity"
	"github.com/tu-usuario/cotizador-pro/pkg/money"
)

var hundred = decimal.NewFromInt(100)

// ComputeView calcula la vista completa de una cotización. Función pura: no
// muta la cotización ni sus productos; descuento y envío son entradas
// transitorias para recálculo what-if.
//
// El descuento se resuelve siempre contra el subtotal bruto y se reparte por
// línea con asignación proporcional: cada porción se redondea a la precisión
// de la moneda de forma independiente y la ÚLTIMA línea absorbe el residuo
// (discountAmount - Σ anteriores), de modo que la suma asignada es exacta por
// construcción. Método documentado: last-line-absorbs-remainder.
func ComputeView(
	q *entity.Quote,
	customerType entity.CustomerType,
	discount *entity.DiscountInfo,
	shipping *entity.ShippingInfo,
	policy Policy,
) (*QuoteView, error) {
	if q == nil {
		return nil, fmt.Errorf("cotización nula: %w", domain.ErrInvalidInput)
	}
	if !customerType.Valid() {
		return nil, fmt.Errorf("tipo de cliente %q: %w", customerType, domain.ErrInvalidInput)
	}

	cur := q.Currency

	// 1) Cifras por línea con la tasa de IVA del snapshot de cada producto
	// (los productos pueden haberse costeado bajo tasas distintas).
	lines := make([]LineView, 0, len(q.Products))
	var subtotalGross, subtotalNet decimal.Decimal
	for _, p := range q.Products {
		if p.Quantity.IsNegative() || p.UnitPrice.IsNegative() {
			return nil, fmt.Errorf("producto %q con cantidad o precio negativo: %w", p.Name, domain.ErrQuoteComputation)
		}
		rate := p.VATRate()
		if rate.IsNegative() {
			return nil, fmt.Errorf("producto %q con tasa de IVA inválida: %w", p.Name, domain.ErrQuoteComputation)
		}
		factor := p.Costing.VAT.Factor()

		gross := money.Round(p.UnitPrice.Mul(p.Quantity), cur)
		net := money.Round(gross.Div(factor), cur)

		lines = append(lines, LineView{
			ProductID:      p.ID,
			Name:           p.Name,
			Quantity:       p.Quantity,
			UnitPrice:      p.UnitPrice,
			VATRate:        rate,
			LineTotalGross: gross,
			LineTotalNet:   net,
			TotalGross:     gross,
			TotalNet:       net,
		})
		subtotalGross = subtotalGross.Add(gross)
		subtotalNet = subtotalNet.Add(net)
	}

	// 2) Resolución del descuento contra el subtotal bruto
	discountGross, capped, err := resolveDiscount(discount, subtotalGross, cur)
	if err != nil {
		return nil, err
	}

	// 3) Asignación proporcional con residuo en la última línea
	if discountGross.IsPositive() {
		allocateDiscount(lines, discountGross, subtotalGross, cur)
	}

	// El neto del descuento es a nivel de orden: se deriva con la relación
	// neto/bruto del subtotal completo, no línea por línea.
	var discountNet decimal.Decimal
	if discountGross.IsPositive() && subtotalGross.IsPositive() {
		discountNet = money.Round(discountGross.Mul(subtotalNet).Div(subtotalGross), cur)
	}

	// 4) Envío
	shippingView, err := resolveShipping(shipping, subtotalGross, subtotalNet, policy, cur)
	if err != nil {
		return nil, err
	}

	// 5) Totales
	grandGross := subtotalGross.Sub(discountGross).Add(shippingView.Gross)
	grandNet := subtotalNet.Sub(discountNet).Add(shippingView.Net)
	vatAmount := grandGross.Sub(grandNet)

	view := &QuoteView{
		QuoteID:         q.ID,
		Number:          q.Number,
		Currency:        cur,
		CustomerType:    customerType,
		Lines:           lines,
		SubtotalGross:   subtotalGross,
		SubtotalNet:     subtotalNet,
		DiscountGross:   discountGross,
		DiscountNet:     discountNet,
		DiscountCapped:  capped,
		Shipping:        shippingView,
		GrandTotalGross: grandGross,
		GrandTotalNet:   grandNet,
		VATAmount:       vatAmount,
		Headline:        grandGross,
	}
	view.Summary = buildSummary(view)
	return view, nil
}

// resolveDiscount calcula el monto bruto del descuento. Un descuento fijo que
// excede el subtotal se limita al subtotal (señal DiscountCapped) en lugar de
// producir totales negativos; con subtotal cero la asignación es no-op.
func resolveDiscount(d *entity.DiscountInfo, subtotalGross decimal.Decimal, cur string) (amount decimal.Decimal, capped bool, err error) {
	if d == nil {
		return decimal.Zero, false, nil
	}
	if d.Value.IsNegative() {
		return decimal.Zero, false, fmt.Errorf("valor de descuento negativo: %w", domain.ErrInvalidInput)
	}
	switch d.Kind {
	case entity.DiscountKindPercentage:
		amount = money.Round(subtotalGross.Mul(d.Value).Div(hundred), cur)
	case entity.DiscountKindFixed:
		amount = money.Round(d.Value, cur)
	default:
		return decimal.Zero, false, fmt.Errorf("tipo de descuento %q: %w", d.Kind, domain.ErrInvalidInput)
	}
	if amount.GreaterThan(subtotalGross) {
		return subtotalGross, true, nil
	}
	return amount, false, nil
}

// allocateDiscount reparte discountGross entre las líneas en proporción a su
// participación en el subtotal bruto. El neto de cada porción usa la tasa de
// la propia línea, manteniendo consistente el par neto/bruto de la línea.
func allocateDiscount(lines []LineView, discountGross, subtotalGross decimal.Decimal, cur string) {
	if len(lines) == 0 || !subtotalGross.IsPositive() {
		return
	}
	var allocated decimal.Decimal
	last := len(lines) - 1
	for i := range lines {
		var share decimal.Decimal
		if i == last {
			share = discountGross.Sub(allocated) // residuo exacto
		} else {
			share = money.Round(discountGross.Mul(lines[i].LineTotalGross).Div(subtotalGross), cur)
			allocated = allocated.Add(share)
		}
		factor := entity.VATSettings{Rate: lines[i].VATRate}.Factor()
		lines[i].DiscountGross = share
		lines[i].DiscountNet = money.Round(share.Div(factor), cur)
		lines[i].TotalGross = lines[i].LineTotalGross.Sub(share)
		lines[i].TotalNet = lines[i].LineTotalNet.Sub(lines[i].DiscountNet)
	}
}

// resolveShipping deriva el par neto/bruto del envío. Con IsFree el cargo es 0
// pero la línea se emite igual. El lado neto depende de la política: exento de
// IVA, o gravado con la relación neto/bruto efectiva de la cotización; sin
// subtotal no existe relación y el envío degrada a exento.
func resolveShipping(s *entity.ShippingInfo, subtotalGross, subtotalNet decimal.Decimal, policy Policy, cur string) (ShippingView, error) {
	if s == nil {
		return ShippingView{}, nil
	}
	if s.Amount.IsNegative() {
		return ShippingView{}, fmt.Errorf("monto de envío negativo: %w", domain.ErrInvalidInput)
	}
	if s.IsFree {
		return ShippingView{Present: true, Waived: true, Gross: decimal.Zero, Net: decimal.Zero}, nil
	}
	gross := money.Round(s.Amount, cur)
	net := gross
	if !policy.ShippingZeroRated && subtotalGross.IsPositive() {
		net = money.Round(gross.Mul(subtotalNet).Div(subtotalGross), cur)
	}
	return ShippingView{Present: true, Gross: gross, Net: net}, nil
}

// buildSummary arma la escalera de totales según el tipo de cliente:
//
//	private:  total bruto como cifra principal, desglose neto/IVA informativo
//	business: subtotal neto -> descuento neto -> envío neto -> IVA -> total bruto
func buildSummary(v *QuoteView) []SummaryRow {
	if v.CustomerType == entity.CustomerPrivate {
		rows := []SummaryRow{
			{Label: "Total a pagar", Amount: v.GrandTotalGross},
			{Label: "Neto", Amount: v.GrandTotalNet, Informational: true},
			{Label: "IVA incluido", Amount: v.VATAmount, Informational: true},
		}
		return rows
	}

	rows := []SummaryRow{
		{Label: "Subtotal neto", Amount: v.SubtotalNet},
	}
	if v.DiscountGross.IsPositive() {
		rows = append(rows, SummaryRow{Label: "Descuento neto", Amount: v.DiscountNet.Neg()})
	}
	if v.Shipping.Present {
		rows = append(rows, SummaryRow{Label: "Envío neto", Amount: v.Shipping.Net})
	}
	rows = append(rows,
		SummaryRow{Label: "IVA", Amount: v.VATAmount},
		SummaryRow{Label: "Total a pagar", Amount: v.GrandTotalGross},
	)
	return rows
}
