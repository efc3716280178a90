// Package production contiene el motor de cálculo puro de producción:
// normalización de unidades, escalado de recetas, dosificación de sales de
// cura y evaluación de tolerancias. Sin estado ni dependencias de persistencia.
package production

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Produccion-api/internal/domain/entity"
)

var thousand = decimal.NewFromInt(1000)

// ConvertUnit convierte un valor entre unidades compatibles de la misma clase:
// g↔kg (×1000/÷1000) y ml↔l (×1000/÷1000). Si las unidades son iguales devuelve
// el valor tal cual. Pares de clases distintas (p. ej. masa↔conteo) devuelven
// el valor SIN convertir: política leniente heredada del sistema original
// (ver decisión en DESIGN.md). El round-trip es exacto con decimales.
func ConvertUnit(value decimal.Decimal, fromUnit, toUnit string) decimal.Decimal {
	if fromUnit == toUnit {
		return value
	}
	switch {
	case fromUnit == entity.UnitGrams && toUnit == entity.UnitKilograms:
		return value.Div(thousand)
	case fromUnit == entity.UnitKilograms && toUnit == entity.UnitGrams:
		return value.Mul(thousand)
	case fromUnit == entity.UnitMilliliters && toUnit == entity.UnitLiters:
		return value.Div(thousand)
	case fromUnit == entity.UnitLiters && toUnit == entity.UnitMilliliters:
		return value.Mul(thousand)
	}
	return value
}

// ToGrams normaliza un valor de clase masa a gramos. Unidades que no son de
// masa se devuelven sin convertir (misma política leniente).
func ToGrams(value decimal.Decimal, unit string) decimal.Decimal {
	return ConvertUnit(value, unit, entity.UnitGrams)
}
