package quoting_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/cotizador-pro/internal/domain"
	"github.com/tu-usuario/cotizador-pro/internal/domain/entity"
	"github.com/tu-usuario/cotizador-pro/internal/domain/quoting"
)

func lineProduct(id, name string, unitPrice, quantity int64, vatRate int64) *entity.Product {
	return &entity.Product{
		ID:        id,
		Name:      name,
		Quantity:  decimal.NewFromInt(quantity),
		UnitPrice: decimal.NewFromInt(unitPrice),
		Costing: entity.CostingResult{
			VAT:        entity.VATSettings{Rate: decimal.NewFromInt(vatRate), IsInclusive: true},
			CapturedAt: time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
		},
		CreatedAt: time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
	}
}

func draftQuote(products ...*entity.Product) *entity.Quote {
	return &entity.Quote{
		ID:       "q-1",
		Number:   "COT-1717236000",
		Currency: "COP",
		Products: products,
		Status:   entity.QuoteStatusDraft,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Escenario de referencia: dos productos con brutos de línea 100 y 50
// (subtotal 150), descuento porcentual 10% -> monto 15, asignado 10.00 y 5.00.
// ──────────────────────────────────────────────────────────────────────────────

func TestComputeView_DescuentoPorcentualProporcional(t *testing.T) {
	q := draftQuote(
		lineProduct("p1", "Taza", 100, 1, 10),
		lineProduct("p2", "Plato", 50, 1, 10),
	)
	discount := &entity.DiscountInfo{Kind: entity.DiscountKindPercentage, Value: decimal.NewFromInt(10)}

	view, err := quoting.ComputeView(q, entity.CustomerPrivate, discount, nil, quoting.Policy{})
	require.NoError(t, err)

	assert.True(t, view.SubtotalGross.Equal(decimal.NewFromInt(150)))
	assert.True(t, view.DiscountGross.Equal(decimal.NewFromInt(15)))
	assert.False(t, view.DiscountCapped)

	require.Len(t, view.Lines, 2)
	assert.True(t, view.Lines[0].DiscountGross.Equal(decimal.NewFromInt(10)), "línea 1: 15 x 100/150 = 10")
	assert.True(t, view.Lines[1].DiscountGross.Equal(decimal.NewFromInt(5)), "línea 2: 15 x 50/150 = 5")

	// Conciliación exacta: Σ asignado = descuento
	sum := view.Lines[0].DiscountGross.Add(view.Lines[1].DiscountGross)
	assert.True(t, sum.Equal(view.DiscountGross), "la suma asignada debe ser exacta, sin deriva de redondeo")

	assert.True(t, view.GrandTotalGross.Equal(decimal.NewFromInt(135)), "150 - 15")
}

// TestComputeView_ResiduoEnUltimaLinea tres líneas iguales de 10 con descuento
// fijo de 10: las porciones redondeadas independientes son 3.33 + 3.33 y la
// última línea absorbe 3.34, de modo que la suma es exacta por construcción.
func TestComputeView_ResiduoEnUltimaLinea(t *testing.T) {
	q := draftQuote(
		lineProduct("p1", "A", 10, 1, 19),
		lineProduct("p2", "B", 10, 1, 19),
		lineProduct("p3", "C", 10, 1, 19),
	)
	discount := &entity.DiscountInfo{Kind: entity.DiscountKindFixed, Value: decimal.NewFromInt(10)}

	view, err := quoting.ComputeView(q, entity.CustomerBusiness, discount, nil, quoting.Policy{})
	require.NoError(t, err)

	assert.Equal(t, "3.33", view.Lines[0].DiscountGross.StringFixed(2))
	assert.Equal(t, "3.33", view.Lines[1].DiscountGross.StringFixed(2))
	assert.Equal(t, "3.34", view.Lines[2].DiscountGross.StringFixed(2), "la última línea absorbe el residuo")

	var sum decimal.Decimal
	for _, l := range view.Lines {
		sum = sum.Add(l.DiscountGross)
	}
	assert.True(t, sum.Equal(view.DiscountGross), "Σ asignado + residuo = descuento, exacto")
}

func TestComputeView_DescuentoFijoSeLimitaAlSubtotal(t *testing.T) {
	q := draftQuote(lineProduct("p1", "Mini", 50, 1, 19))
	discount := &entity.DiscountInfo{Kind: entity.DiscountKindFixed, Value: decimal.NewFromInt(10_000)}

	view, err := quoting.ComputeView(q, entity.CustomerPrivate, discount, nil, quoting.Policy{})
	require.NoError(t, err)

	assert.True(t, view.DiscountGross.Equal(decimal.NewFromInt(50)), "descuento limitado al subtotal")
	assert.True(t, view.DiscountCapped, "se reporta la señal DiscountCapped")
	assert.True(t, view.GrandTotalGross.IsZero(), "nunca un total negativo")
	assert.False(t, view.GrandTotalGross.IsNegative())
}

func TestComputeView_SubtotalCeroConDescuentoEsNoOp(t *testing.T) {
	q := draftQuote()
	discount := &entity.DiscountInfo{Kind: entity.DiscountKindFixed, Value: decimal.NewFromInt(10)}

	view, err := quoting.ComputeView(q, entity.CustomerPrivate, discount, nil, quoting.Policy{})
	require.NoError(t, err)

	assert.True(t, view.DiscountGross.IsZero())
	assert.True(t, view.DiscountCapped)
	assert.True(t, view.GrandTotalGross.IsZero())
}

// ── Envío ─────────────────────────────────────────────────────────────────────

func TestComputeView_EnvioCondonadoEmiteLinea(t *testing.T) {
	q := draftQuote(lineProduct("p1", "Taza", 100, 1, 19))
	shipping := &entity.ShippingInfo{Amount: decimal.NewFromInt(25), IsFree: true}

	view, err := quoting.ComputeView(q, entity.CustomerPrivate, nil, shipping, quoting.Policy{})
	require.NoError(t, err)

	assert.True(t, view.Shipping.Present, "el envío condonado se muestra, no se omite")
	assert.True(t, view.Shipping.Waived)
	assert.True(t, view.Shipping.Gross.IsZero())
	assert.True(t, view.GrandTotalGross.Equal(decimal.NewFromInt(100)))
}

func TestComputeView_EnvioGravadoConTasaEfectiva(t *testing.T) {
	// Subtotal bruto 110, neto 100 (IVA 10%): el envío de 22 deriva neto 20.
	q := draftQuote(lineProduct("p1", "Taza", 110, 1, 10))
	shipping := &entity.ShippingInfo{Amount: decimal.NewFromInt(22)}

	view, err := quoting.ComputeView(q, entity.CustomerBusiness, nil, shipping, quoting.Policy{ShippingZeroRated: false})
	require.NoError(t, err)

	assert.True(t, view.Shipping.Gross.Equal(decimal.NewFromInt(22)))
	assert.True(t, view.Shipping.Net.Equal(decimal.NewFromInt(20)), "22 x 100/110 = 20")
	assert.True(t, view.GrandTotalGross.Equal(decimal.NewFromInt(132)))
}

func TestComputeView_EnvioExentoPorPolitica(t *testing.T) {
	q := draftQuote(lineProduct("p1", "Taza", 110, 1, 10))
	shipping := &entity.ShippingInfo{Amount: decimal.NewFromInt(22)}

	view, err := quoting.ComputeView(q, entity.CustomerBusiness, nil, shipping, quoting.Policy{ShippingZeroRated: true})
	require.NoError(t, err)

	assert.True(t, view.Shipping.Net.Equal(view.Shipping.Gross), "exento: neto = bruto")
}

// ── Presentación por tipo de cliente ─────────────────────────────────────────

func TestComputeView_PresentacionPrivate(t *testing.T) {
	q := draftQuote(lineProduct("p1", "Taza", 119, 1, 19))

	view, err := quoting.ComputeView(q, entity.CustomerPrivate, nil, nil, quoting.Policy{})
	require.NoError(t, err)

	assert.True(t, view.Headline.Equal(view.GrandTotalGross), "private: el bruto es la cifra principal")
	require.NotEmpty(t, view.Summary)
	assert.False(t, view.Summary[0].Informational, "el primer renglón es el principal")
	assert.True(t, view.Summary[1].Informational, "neto e IVA son desglose informativo")
}

func TestComputeView_PresentacionBusiness(t *testing.T) {
	q := draftQuote(lineProduct("p1", "Taza", 119, 1, 19))
	discount := &entity.DiscountInfo{Kind: entity.DiscountKindPercentage, Value: decimal.NewFromInt(10)}

	view, err := quoting.ComputeView(q, entity.CustomerBusiness, discount, nil, quoting.Policy{})
	require.NoError(t, err)

	labels := make([]string, 0, len(view.Summary))
	for _, row := range view.Summary {
		labels = append(labels, row.Label)
	}
	assert.Equal(t, []string{"Subtotal neto", "Descuento neto", "IVA", "Total a pagar"}, labels,
		"business: escalera neto -> descuento -> IVA -> bruto")
}

func TestComputeView_MismosTotalesParaAmbosTipos(t *testing.T) {
	q := draftQuote(lineProduct("p1", "Taza", 119, 2, 19))
	discount := &entity.DiscountInfo{Kind: entity.DiscountKindFixed, Value: decimal.NewFromInt(20)}

	private, err := quoting.ComputeView(q, entity.CustomerPrivate, discount, nil, quoting.Policy{})
	require.NoError(t, err)
	business, err := quoting.ComputeView(q, entity.CustomerBusiness, discount, nil, quoting.Policy{})
	require.NoError(t, err)

	assert.True(t, private.GrandTotalGross.Equal(business.GrandTotalGross),
		"el tipo de cliente solo cambia la presentación, nunca los totales")
	assert.True(t, private.GrandTotalNet.Equal(business.GrandTotalNet))
	assert.True(t, private.VATAmount.Equal(business.VATAmount))
}

// ── Tasas por línea y consistencia neto/bruto ────────────────────────────────

func TestComputeView_TasasDistintasPorLinea(t *testing.T) {
	// Cada línea usa la tasa de su propio snapshot, no una tasa global.
	q := draftQuote(
		lineProduct("p1", "General", 119, 1, 19),
		lineProduct("p2", "Reducido", 105, 1, 5),
	)

	view, err := quoting.ComputeView(q, entity.CustomerBusiness, nil, nil, quoting.Policy{})
	require.NoError(t, err)

	assert.True(t, view.Lines[0].LineTotalNet.Equal(decimal.NewFromInt(100)), "119 / 1.19")
	assert.True(t, view.Lines[1].LineTotalNet.Equal(decimal.NewFromInt(100)), "105 / 1.05")
	assert.True(t, view.SubtotalNet.Equal(decimal.NewFromInt(200)))
	assert.True(t, view.VATAmount.Equal(decimal.NewFromInt(24)))
}

// TestIdaYVueltaIVA neto -> bruto -> neto regresa al valor original dentro
// de la tolerancia de redondeo de la moneda, para ambos modos de IVA.
func TestIdaYVueltaIVA(t *testing.T) {
	rates := []int64{0, 5, 10, 19, 21}
	net := decimal.NewFromFloat(87.43)
	tolerance := decimal.NewFromFloat(0.01)

	for _, r := range rates {
		factor := entity.VATSettings{Rate: decimal.NewFromInt(r)}.Factor()
		gross := net.Mul(factor).Round(2)
		back := gross.Div(factor).Round(2)
		diff := back.Sub(net).Abs()
		assert.True(t, diff.LessThanOrEqual(tolerance),
			"ida y vuelta con tasa %d%% debe quedar dentro de un centavo (diff=%s)", r, diff)
	}
}

func TestComputeView_ParNetoBrutoPorLineaConsistente(t *testing.T) {
	q := draftQuote(
		lineProduct("p1", "A", 37, 3, 19),
		lineProduct("p2", "B", 81, 2, 5),
	)
	discount := &entity.DiscountInfo{Kind: entity.DiscountKindFixed, Value: decimal.NewFromFloat(33.33)}

	view, err := quoting.ComputeView(q, entity.CustomerBusiness, discount, nil, quoting.Policy{})
	require.NoError(t, err)

	tolerance := decimal.NewFromFloat(0.01)
	for _, l := range view.Lines {
		factor := entity.VATSettings{Rate: l.VATRate}.Factor()
		derived := l.TotalGross.Div(factor).Round(2)
		diff := derived.Sub(l.TotalNet).Abs()
		assert.True(t, diff.LessThanOrEqual(tolerance),
			"línea %s: neto tras descuento consistente con su propia tasa (diff=%s)", l.Name, diff)
	}
}

// ── Entradas inválidas ───────────────────────────────────────────────────────

func TestComputeView_EntradasInvalidas(t *testing.T) {
	q := draftQuote(lineProduct("p1", "Taza", 100, 1, 19))

	_, err := quoting.ComputeView(nil, entity.CustomerPrivate, nil, nil, quoting.Policy{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "cotización nula")

	_, err = quoting.ComputeView(q, entity.CustomerType("corporate"), nil, nil, quoting.Policy{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "tipo de cliente desconocido")

	_, err = quoting.ComputeView(q, entity.CustomerPrivate,
		&entity.DiscountInfo{Kind: entity.DiscountKindFixed, Value: decimal.NewFromInt(-1)}, nil, quoting.Policy{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "descuento negativo")

	_, err = quoting.ComputeView(q, entity.CustomerPrivate,
		&entity.DiscountInfo{Kind: "bogo", Value: decimal.NewFromInt(1)}, nil, quoting.Policy{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "tipo de descuento desconocido")

	_, err = quoting.ComputeView(q, entity.CustomerPrivate, nil,
		&entity.ShippingInfo{Amount: decimal.NewFromInt(-5)}, quoting.Policy{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "envío negativo")
}

func TestComputeView_LineaMalformada(t *testing.T) {
	bad := lineProduct("p1", "Rota", 100, 1, 19)
	bad.Costing.VAT.Rate = decimal.NewFromInt(-19)
	q := draftQuote(bad)

	_, err := quoting.ComputeView(q, entity.CustomerPrivate, nil, nil, quoting.Policy{})
	assert.ErrorIs(t, err, domain.ErrQuoteComputation,
		"una tasa que impide derivar el neto es error de cómputo de cotización")
}

// TestComputeView_NoMutaLaCotizacion el agregador es puro: descuento y envío
// son entradas what-if y la cotización queda intacta.
func TestComputeView_NoMutaLaCotizacion(t *testing.T) {
	p := lineProduct("p1", "Taza", 100, 2, 19)
	q := draftQuote(p)
	before := *p

	_, err := quoting.ComputeView(q, entity.CustomerPrivate,
		&entity.DiscountInfo{Kind: entity.DiscountKindPercentage, Value: decimal.NewFromInt(50)},
		&entity.ShippingInfo{Amount: decimal.NewFromInt(10)},
		quoting.Policy{})
	require.NoError(t, err)

	assert.Equal(t, before, *p, "el producto no debe mutar")
	assert.Len(t, q.Products, 1)
}
