package order

import (
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
)

var cien = decimal.NewFromInt(100)

// ComputeTotal calcula el total de una orden (servicio de dominio, puro):
//
//	descuentoEfectivo = descuento                        (Absoluto)
//	                  = subtotal * descuento / 100       (Porcentual)
//	base     = subtotal - min(descuentoEfectivo, subtotal)
//	impuesto = base * impuestoPct / 100
//	total    = max(base + impuesto - credito, 0)
//
// El descuento efectivo nunca excede el subtotal y el total nunca es negativo.
func ComputeTotal(subtotal, descuento decimal.Decimal, tipoDescuento string, impuestoPct, credito decimal.Decimal) decimal.Decimal {
	efectivo := descuento
	if tipoDescuento == entity.DiscountPorcentual {
		efectivo = subtotal.Mul(descuento).Div(cien)
	}
	if efectivo.GreaterThan(subtotal) {
		efectivo = subtotal
	}
	base := subtotal.Sub(efectivo)
	impuesto := base.Mul(impuestoPct).Div(cien)
	total := base.Add(impuesto).Sub(credito)
	if total.LessThan(decimal.Zero) {
		return decimal.Zero
	}
	return total
}
