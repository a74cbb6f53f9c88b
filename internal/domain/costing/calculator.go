// Package costing implementa el calculador de costeo (servicio de dominio puro).
package costing

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/cotizador-pro/internal/domain"
	"github.com/tu-usuario/cotizador-pro/internal/domain/entity"
)

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
)

// Calculate convierte entradas de costo heterogéneas en economía unitaria:
//
//	TotalCost = materiales + máquinas + mano de obra + indirectos + depreciación
//	OverheadCost = tarifa indirecta x horas de mano de obra (no horas de máquina)
//	Profit = NetRevenue - TotalCost
//
// Es una función pura: mismas entradas producen salida bit a bit idéntica.
// Retorna ErrInvalidInput ante cualquier monto/cantidad negativa o si
// UnitsProduced < 1 (rechazo explícito, sin default silencioso a 1).
func Calculate(in entity.CostInputs) (*entity.CostingResult, error) {
	if err := validate(in); err != nil {
		return nil, err
	}

	// 1) Materiales: Σ cantidad x costo unitario
	var materialCost decimal.Decimal
	for _, m := range in.Materials {
		materialCost = materialCost.Add(m.Quantity.Mul(m.UnitCost))
	}

	// 2) Máquinas: Σ horas de uso x tarifa horaria
	var machineCost decimal.Decimal
	for _, m := range in.Machines {
		machineCost = machineCost.Add(m.UsageHours.Mul(m.HourlyRate))
	}

	// 3) Mano de obra y 4) indirectos anclados a horas de mano de obra
	laborCost := in.Labor.Hours.Mul(in.Labor.RatePerHour)
	overheadCost := in.Overhead.RatePerHour.Mul(in.Labor.Hours)

	// 5) Costo total con depreciación plana
	totalCost := materialCost.
		Add(machineCost).
		Add(laborCost).
		Add(overheadCost).
		Add(in.Depreciation.Amount)

	units := decimal.NewFromInt(in.Production.UnitsProduced)
	costPerUnit := totalCost.Div(units)

	// 6) Ingreso nominal según el modo del precio de venta
	revenue := in.SalePrice.Amount
	if in.SalePrice.IsPerUnit {
		revenue = revenue.Mul(decimal.NewFromInt(in.SalePrice.UnitsCount))
	}
	revenue = revenue.Add(in.SalePrice.FixedCharge)

	// 7) Split de IVA: con tasa 0 el factor es 1 y neto = bruto
	factor := in.VAT.Factor()
	var gross, net decimal.Decimal
	if in.VAT.IsInclusive {
		gross = revenue
		net = gross.Div(factor)
	} else {
		net = revenue
		gross = net.Mul(factor)
	}

	// 8) Utilidad y margen con guarda de división por cero
	profit := net.Sub(totalCost)
	marginPercent := decimal.Zero
	if !net.IsZero() {
		marginPercent = profit.Div(net).Mul(hundred)
	}

	// 9) Precio neto sugerido para el margen objetivo
	suggested, err := SuggestedNetRevenue(totalCost, in.Production.TargetProfitMargin)
	unachievable := err != nil

	return &entity.CostingResult{
		TotalMaterialCost:   materialCost,
		TotalLaborCost:      laborCost,
		TotalMachineCost:    machineCost,
		DepreciationCost:    in.Depreciation.Amount,
		OverheadCost:        overheadCost,
		TotalCost:           totalCost,
		CostPerUnit:         costPerUnit,
		GrossRevenue:        gross,
		NetRevenue:          net,
		Profit:              profit,
		MarginPercent:       marginPercent,
		SuggestedNetRevenue: suggested,
		MarginUnachievable:  unachievable,
		VAT:                 in.VAT,
	}, nil
}

// SuggestedNetRevenue precio neto que alcanza el margen objetivo:
// totalCost / (1 - margen/100). Con margen >= 100% el precio no está definido
// y se retorna ErrUnachievableMargin con monto cero.
func SuggestedNetRevenue(totalCost, targetMargin decimal.Decimal) (decimal.Decimal, error) {
	if targetMargin.GreaterThanOrEqual(hundred) {
		return decimal.Zero, domain.ErrUnachievableMargin
	}
	divisor := one.Sub(targetMargin.Div(hundred))
	return totalCost.Div(divisor), nil
}

func validate(in entity.CostInputs) error {
	for _, m := range in.Materials {
		if m.Quantity.IsNegative() {
			return fmt.Errorf("material %q: cantidad negativa: %w", m.Name, domain.ErrInvalidInput)
		}
		if m.UnitCost.IsNegative() {
			return fmt.Errorf("material %q: costo unitario negativo: %w", m.Name, domain.ErrInvalidInput)
		}
	}
	for _, m := range in.Machines {
		if m.UsageHours.IsNegative() {
			return fmt.Errorf("máquina %q: horas de uso negativas: %w", m.Name, domain.ErrInvalidInput)
		}
		if m.HourlyRate.IsNegative() {
			return fmt.Errorf("máquina %q: tarifa horaria negativa: %w", m.Name, domain.ErrInvalidInput)
		}
	}
	if in.Labor.Hours.IsNegative() || in.Labor.RatePerHour.IsNegative() {
		return fmt.Errorf("mano de obra negativa: %w", domain.ErrInvalidInput)
	}
	if in.Depreciation.Amount.IsNegative() {
		return fmt.Errorf("depreciación negativa: %w", domain.ErrInvalidInput)
	}
	if in.Overhead.RatePerHour.IsNegative() {
		return fmt.Errorf("tarifa de indirectos negativa: %w", domain.ErrInvalidInput)
	}
	if in.Production.UnitsProduced < 1 {
		return fmt.Errorf("unidades producidas debe ser >= 1: %w", domain.ErrInvalidInput)
	}
	if in.Production.TargetProfitMargin.IsNegative() {
		return fmt.Errorf("margen objetivo negativo: %w", domain.ErrInvalidInput)
	}
	if in.SalePrice.Amount.IsNegative() || in.SalePrice.FixedCharge.IsNegative() {
		return fmt.Errorf("precio de venta negativo: %w", domain.ErrInvalidInput)
	}
	if in.SalePrice.IsPerUnit && in.SalePrice.UnitsCount < 1 {
		return fmt.Errorf("precio por unidad requiere unidades >= 1: %w", domain.ErrInvalidInput)
	}
	if in.VAT.Rate.IsNegative() {
		return fmt.Errorf("tasa de IVA negativa: %w", domain.ErrInvalidInput)
	}
	return nil
}
