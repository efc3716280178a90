package production

import domainprod "github.com/jhoicas/Produccion-api/internal/domain/production"

// CureConfigSource provee los umbrales de ppm de nitrito desde configuración
// externa. El caso de uso cae a los defaults embebidos si la lectura falla:
// una configuración rota nunca bloquea el cálculo de una dosis.
type CureConfigSource interface {
	CureThresholds() (domainprod.CureThresholds, error)
}
