package usecase

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/cotizador-pro/internal/application/dto"
	"github.com/tu-usuario/cotizador-pro/internal/domain"
	"github.com/tu-usuario/cotizador-pro/internal/domain/costing"
	"github.com/tu-usuario/cotizador-pro/internal/domain/entity"
	"github.com/tu-usuario/cotizador-pro/pkg/logger"
	"github.com/tu-usuario/cotizador-pro/pkg/money"
)

// ProductUseCase costea productos y captura su snapshot inmutable. Cambios
// posteriores a los valores por defecto globales nunca tocan un producto ya
// costeado: el caller debe recostear y reemplazar.
type ProductUseCase struct {
	ids             IDGenerator
	clock           Clock
	log             *logger.Logger
	defaultCurrency string
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(ids IDGenerator, clock Clock, log *logger.Logger, defaultCurrency string) *ProductUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &ProductUseCase{ids: ids, clock: clock, log: log, defaultCurrency: defaultCurrency}
}

// ComputeCosting ejecuta el calculador puro y mapea el resultado. No captura
// snapshot ni asigna identidad: es la variante what-if para formularios.
func (uc *ProductUseCase) ComputeCosting(in entity.CostInputs) (*dto.CostingResponse, error) {
	in.Currency = uc.resolveCurrency(in.Currency)
	if !money.ValidCode(in.Currency) {
		return nil, fmt.Errorf("moneda %q: %w", in.Currency, domain.ErrInvalidInput)
	}
	result, err := costing.Calculate(in)
	if err != nil {
		return nil, err
	}
	return toCostingResponse(in.Currency, result), nil
}

// PriceProduct costea y materializa un producto listo para agregar a una
// cotización: snapshot de costeo y de materiales, ID y timestamp inyectados.
// El precio unitario bruto sale del ingreso bruto del costeo: por unidad
// cuando el precio de venta es por unidad, o el monto completo como una sola
// posición en caso contrario.
func (uc *ProductUseCase) PriceProduct(name string, quantity decimal.Decimal, in entity.CostInputs) (*entity.Product, error) {
	if name == "" {
		return nil, fmt.Errorf("nombre de producto vacío: %w", domain.ErrInvalidInput)
	}
	if !quantity.IsPositive() {
		return nil, fmt.Errorf("cantidad cotizada debe ser > 0: %w", domain.ErrInvalidInput)
	}
	in.Currency = uc.resolveCurrency(in.Currency)
	if !money.ValidCode(in.Currency) {
		return nil, fmt.Errorf("moneda %q: %w", in.Currency, domain.ErrInvalidInput)
	}

	result, err := costing.Calculate(in)
	if err != nil {
		return nil, err
	}
	now := uc.clock.Now()
	result.CapturedAt = now

	if result.MarginUnachievable {
		uc.log.Warn().
			Str("product", name).
			Str("target_margin", in.Production.TargetProfitMargin.String()).
			Msg("margen objetivo inalcanzable; sin precio sugerido")
	}

	unitPrice := result.GrossRevenue
	if in.SalePrice.IsPerUnit {
		unitPrice = unitPrice.Div(decimal.NewFromInt(in.SalePrice.UnitsCount))
	}
	unitPrice = money.Round(unitPrice, in.Currency)

	// Copia defensiva: el producto no retiene el slice del caller.
	materials := make([]entity.MaterialInput, len(in.Materials))
	copy(materials, in.Materials)

	return &entity.Product{
		ID:        uc.ids.NewID(),
		Name:      name,
		Quantity:  quantity,
		UnitPrice: unitPrice,
		Costing:   *result,
		Materials: materials,
		CreatedAt: now,
	}, nil
}

func (uc *ProductUseCase) resolveCurrency(code string) string {
	if code == "" {
		return uc.defaultCurrency
	}
	return code
}

func toCostingResponse(currency string, r *entity.CostingResult) *dto.CostingResponse {
	return &dto.CostingResponse{
		Currency:            currency,
		TotalMaterialCost:   r.TotalMaterialCost,
		TotalLaborCost:      r.TotalLaborCost,
		TotalMachineCost:    r.TotalMachineCost,
		DepreciationCost:    r.DepreciationCost,
		OverheadCost:        r.OverheadCost,
		TotalCost:           r.TotalCost,
		CostPerUnit:         r.CostPerUnit,
		GrossRevenue:        r.GrossRevenue,
		NetRevenue:          r.NetRevenue,
		Profit:              r.Profit,
		MarginPercent:       r.MarginPercent,
		SuggestedNetRevenue: r.SuggestedNetRevenue,
		MarginUnachievable:  r.MarginUnachievable,
	}
}
