package usecase

import (
	"fmt"

	"github.com/tu-usuario/cotizador-pro/internal/application/dto"
	"github.com/tu-usuario/cotizador-pro/internal/domain"
	"github.com/tu-usuario/cotizador-pro/internal/domain/entity"
	"github.com/tu-usuario/cotizador-pro/internal/domain/quoting"
	"github.com/tu-usuario/cotizador-pro/pkg/logger"
	"github.com/tu-usuario/cotizador-pro/pkg/money"
)

// QuoteOptions políticas del caso de uso de cotización (se copian desde la
// configuración al construir, nunca se leen de estado global en caliente).
type QuoteOptions struct {
	NumberPrefix      string
	DefaultCurrency   string
	ShippingZeroRated bool
}

// QuoteUseCase ciclo de vida de la cotización y cálculo de su vista.
type QuoteUseCase struct {
	ids   IDGenerator
	clock Clock
	log   *logger.Logger
	opts  QuoteOptions
}

// NewQuoteUseCase construye el caso de uso.
func NewQuoteUseCase(ids IDGenerator, clock Clock, log *logger.Logger, opts QuoteOptions) *QuoteUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &QuoteUseCase{ids: ids, clock: clock, log: log, opts: opts}
}

// CreateQuote crea una cotización vacía en DRAFT con consecutivo PREFIJO-unix.
// La moneda es explícita; vacía usa el default configurado.
func (uc *QuoteUseCase) CreateQuote(projectName, clientName, currency string) (*entity.Quote, error) {
	if currency == "" {
		currency = uc.opts.DefaultCurrency
	}
	if !money.ValidCode(currency) {
		return nil, fmt.Errorf("moneda %q: %w", currency, domain.ErrInvalidInput)
	}
	now := uc.clock.Now()
	q := &entity.Quote{
		ID:          uc.ids.NewID(),
		Number:      fmt.Sprintf("%s-%d", uc.opts.NumberPrefix, now.Unix()),
		ProjectName: projectName,
		ClientName:  clientName,
		Currency:    currency,
		Status:      entity.QuoteStatusDraft,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	uc.log.Info().Str("quote", q.Number).Str("currency", currency).Msg("cotización creada")
	return q, nil
}

// AddProduct agrega una línea costeada a una cotización en DRAFT.
func (uc *QuoteUseCase) AddProduct(q *entity.Quote, p *entity.Product) error {
	if q == nil {
		return domain.ErrInvalidInput
	}
	if err := q.AddProduct(p); err != nil {
		return err
	}
	q.UpdatedAt = uc.clock.Now()
	return nil
}

// RemoveProduct quita una línea por ID.
func (uc *QuoteUseCase) RemoveProduct(q *entity.Quote, productID string) error {
	if q == nil {
		return domain.ErrInvalidInput
	}
	if err := q.RemoveProduct(productID); err != nil {
		return err
	}
	q.UpdatedAt = uc.clock.Now()
	return nil
}

// ReplaceProduct sustituye una línea por una versión recosteada (los
// productos son inmutables; editar = reemplazar).
func (uc *QuoteUseCase) ReplaceProduct(q *entity.Quote, productID string, replacement *entity.Product) error {
	if q == nil {
		return domain.ErrInvalidInput
	}
	if err := q.ReplaceProduct(productID, replacement); err != nil {
		return err
	}
	q.UpdatedAt = uc.clock.Now()
	return nil
}

// Finalize cierra la cotización para mutaciones de precio.
func (uc *QuoteUseCase) Finalize(q *entity.Quote) error {
	if q == nil {
		return domain.ErrInvalidInput
	}
	if err := q.Finalize(); err != nil {
		return err
	}
	q.UpdatedAt = uc.clock.Now()
	uc.log.Info().Str("quote", q.Number).Msg("cotización finalizada")
	return nil
}

// ComputeQuoteView ejecuta el agregador puro con la política configurada y
// mapea la vista a DTO con montos formateados.
func (uc *QuoteUseCase) ComputeQuoteView(
	q *entity.Quote,
	customerType entity.CustomerType,
	discount *entity.DiscountInfo,
	shipping *entity.ShippingInfo,
) (*dto.QuoteViewResponse, error) {
	view, err := quoting.ComputeView(q, customerType, discount, shipping, quoting.Policy{
		ShippingZeroRated: uc.opts.ShippingZeroRated,
	})
	if err != nil {
		return nil, err
	}
	if view.DiscountCapped {
		uc.log.Warn().
			Str("quote", view.Number).
			Str("discount", view.DiscountGross.String()).
			Msg("descuento excedió el subtotal; limitado al subtotal")
	}
	return toQuoteViewResponse(view), nil
}

func toQuoteViewResponse(v *quoting.QuoteView) *dto.QuoteViewResponse {
	resp := &dto.QuoteViewResponse{
		QuoteID:         v.QuoteID,
		Number:          v.Number,
		Currency:        v.Currency,
		CustomerType:    string(v.CustomerType),
		Lines:           make([]dto.QuoteLineResponse, 0, len(v.Lines)),
		SubtotalGross:   v.SubtotalGross,
		SubtotalNet:     v.SubtotalNet,
		DiscountGross:   v.DiscountGross,
		DiscountNet:     v.DiscountNet,
		DiscountCapped:  v.DiscountCapped,
		GrandTotalGross: v.GrandTotalGross,
		GrandTotalNet:   v.GrandTotalNet,
		VATAmount:       v.VATAmount,
		Headline:        v.Headline,
		HeadlineDisplay: money.Format(v.Headline, v.Currency),
	}
	for _, l := range v.Lines {
		resp.Lines = append(resp.Lines, dto.QuoteLineResponse{
			ProductID:      l.ProductID,
			Name:           l.Name,
			Quantity:       l.Quantity,
			UnitPrice:      l.UnitPrice,
			VATRate:        l.VATRate,
			LineTotalGross: l.LineTotalGross,
			LineTotalNet:   l.LineTotalNet,
			DiscountGross:  l.DiscountGross,
			DiscountNet:    l.DiscountNet,
			TotalGross:     l.TotalGross,
			TotalNet:       l.TotalNet,
		})
	}
	if v.Shipping.Present {
		resp.Shipping = &dto.ShippingResponse{
			Waived: v.Shipping.Waived,
			Gross:  v.Shipping.Gross,
			Net:    v.Shipping.Net,
		}
	}
	for _, row := range v.Summary {
		resp.Summary = append(resp.Summary, dto.SummaryRowResponse{
			Label:         row.Label,
			Amount:        row.Amount,
			Display:       money.Format(row.Amount, v.Currency),
			Informational: row.Informational,
		})
	}
	return resp
}
