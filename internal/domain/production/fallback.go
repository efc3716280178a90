package production

import "github.com/shopspring/decimal"

// FirstPositive devuelve el primer candidato estrictamente positivo de la
// lista, en orden de prioridad. Si ninguno es positivo devuelve cero. Hace
// explícita y testeable la cadena de fallback que antes vivía en condicionales
// anidados (masa base de curado, factor de escalado).
func FirstPositive(candidates ...decimal.Decimal) decimal.Decimal {
	for _, c := range candidates {
		if c.GreaterThan(decimal.Zero) {
			return c
		}
	}
	return decimal.Zero
}
