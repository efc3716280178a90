package quality

import (
	"encoding/json"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Produccion-api/internal/domain"
	"github.com/jhoicas/Produccion-api/internal/domain/entity"
)

// CheckMetadata es la unión etiquetada del payload de un check: una variante
// por código de checkpoint con forma conocida y una variante opaca para el
// resto. La interpretación vive aquí, fuera del modelo genérico de checks.
type CheckMetadata interface {
	isCheckMetadata()
}

// ProbeReading es la lectura de una sonda de temperatura interna.
type ProbeReading struct {
	Probe        string          `json:"probe"`
	TemperatureC decimal.Decimal `json:"temperature_c"`
	HoldMinutes  decimal.Decimal `json:"hold_minutes"`
}

// CoreTempMetadata lecturas de sondas para el checkpoint de temperatura interna.
type CoreTempMetadata struct {
	Probes []ProbeReading `json:"probes"`
}

func (CoreTempMetadata) isCheckMetadata() {}

// OpaqueMetadata payload sin interpretación para checkpoints genéricos.
type OpaqueMetadata struct {
	Raw json.RawMessage
}

func (OpaqueMetadata) isCheckMetadata() {}

// CoreTempLimits mínimos configurados para dar por pasada la temperatura
// interna: todas las sondas deben alcanzar la temperatura Y sostenerla.
type CoreTempLimits struct {
	MinTemperatureC decimal.Decimal
	MinHoldMinutes  decimal.Decimal
}

// DefaultCoreTempLimits 72.0 °C sostenidos 2 minutos.
func DefaultCoreTempLimits() CoreTempLimits {
	return CoreTempLimits{
		MinTemperatureC: decimal.NewFromInt(72),
		MinHoldMinutes:  decimal.NewFromInt(2),
	}
}

// ParseCheckMetadata decodifica el payload según el código del checkpoint.
// Códigos sin forma conocida quedan como OpaqueMetadata sin validar.
func ParseCheckMetadata(code string, raw json.RawMessage) (CheckMetadata, error) {
	switch code {
	case entity.CheckpointCodeCoreTemp:
		var m CoreTempMetadata
		if err := json.Unmarshal(raw, &m); err != nil {
			return nil, domain.ErrInvalidInput
		}
		return m, nil
	default:
		return OpaqueMetadata{Raw: raw}, nil
	}
}

// DeriveCoreTempStatus pasa solo si hay al menos una sonda y TODAS cumplen
// temperatura mínima y tiempo de sostenimiento; cualquier sonda corta falla
// el checkpoint completo.
func DeriveCoreTempStatus(m CoreTempMetadata, limits CoreTempLimits) string {
	if len(m.Probes) == 0 {
		return entity.CheckStatusFailed
	}
	for _, p := range m.Probes {
		if p.TemperatureC.LessThan(limits.MinTemperatureC) || p.HoldMinutes.LessThan(limits.MinHoldMinutes) {
			return entity.CheckStatusFailed
		}
	}
	return entity.CheckStatusPassed
}

// DeriveStatus aplica la derivación del código si existe; para códigos
// genéricos devuelve el estado reportado sin tocar.
func DeriveStatus(code string, reported string, raw json.RawMessage, limits CoreTempLimits) (string, error) {
	meta, err := ParseCheckMetadata(code, raw)
	if err != nil {
		return "", err
	}
	if m, ok := meta.(CoreTempMetadata); ok {
		return DeriveCoreTempStatus(m, limits), nil
	}
	return reported, nil
}
