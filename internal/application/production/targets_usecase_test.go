package production_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Produccion-api/internal/application/production"
	"github.com/jhoicas/Produccion-api/internal/domain"
	"github.com/jhoicas/Produccion-api/internal/domain/entity"
	domainprod "github.com/jhoicas/Produccion-api/internal/domain/production"
)

// ── fakes en memoria ─────────────────────────────────────────────────────────

type fakeBatchRepo struct{ batches map[string]*entity.Batch }

func (r *fakeBatchRepo) Create(b *entity.Batch) error                    { r.batches[b.ID] = b; return nil }
func (r *fakeBatchRepo) GetByID(id string) (*entity.Batch, error)        { return r.batches[id], nil }
func (r *fakeBatchRepo) List(limit, offset int) ([]*entity.Batch, error) { return nil, nil }
func (r *fakeBatchRepo) Update(b *entity.Batch) error                    { r.batches[b.ID] = b; return nil }
func (r *fakeBatchRepo) CountCreatedAfter(after *time.Time) (int, error) { return len(r.batches), nil }

type fakeRecipeRepo struct{ recipes map[string]*entity.Recipe }

func (r *fakeRecipeRepo) Create(rec *entity.Recipe) error                  { r.recipes[rec.ID] = rec; return nil }
func (r *fakeRecipeRepo) GetByID(id string) (*entity.Recipe, error)        { return r.recipes[id], nil }
func (r *fakeRecipeRepo) List(limit, offset int) ([]*entity.Recipe, error) { return nil, nil }
func (r *fakeRecipeRepo) Update(rec *entity.Recipe) error                  { return nil }

type fakeActualsRepo struct {
	rows map[string]*entity.BatchIngredientActual // batchID+materialID
}

func newFakeActualsRepo() *fakeActualsRepo {
	return &fakeActualsRepo{rows: make(map[string]*entity.BatchIngredientActual)}
}

func (r *fakeActualsRepo) Upsert(a *entity.BatchIngredientActual) error {
	r.rows[a.BatchID+"/"+a.MaterialID] = a
	return nil
}

func (r *fakeActualsRepo) Get(batchID, materialID string) (*entity.BatchIngredientActual, error) {
	return r.rows[batchID+"/"+materialID], nil
}

func (r *fakeActualsRepo) ListByBatch(batchID string) ([]*entity.BatchIngredientActual, error) {
	var out []*entity.BatchIngredientActual
	for _, a := range r.rows {
		if a.BatchID == batchID {
			out = append(out, a)
		}
	}
	return out, nil
}

type failingActualsRepo struct {
	*fakeActualsRepo
	failGet bool
}

func (r *failingActualsRepo) Get(batchID, materialID string) (*entity.BatchIngredientActual, error) {
	if r.failGet {
		return nil, errors.New("conexión perdida")
	}
	return r.fakeActualsRepo.Get(batchID, materialID)
}

type fixedCureConfig struct{}

func (fixedCureConfig) CureThresholds() (domainprod.CureThresholds, error) {
	return domainprod.DefaultCureThresholds(), nil
}

// ── fixture: receta de 1000 g base con carne, sal y Prague #1 ───────────────

const (
	matCarne  = "mat-carne"
	matSal    = "mat-sal"
	matPrague = "mat-prague"
)

func fixtureRecipe() *entity.Recipe {
	return &entity.Recipe{
		ID:                "rec-1",
		Name:              "Salame base",
		BaseReferenceMass: decimal.NewFromInt(1000),
		Ingredients: []*entity.RecipeIngredient{
			{
				ID: "ing-carne", RecipeID: "rec-1", MaterialID: matCarne,
				Quantity: decimal.NewFromInt(900), Unit: entity.UnitGrams,
				TolerancePercentage: decimal.NewFromInt(5),
			},
			{
				ID: "ing-sal", RecipeID: "rec-1", MaterialID: matSal,
				Quantity: decimal.NewFromInt(50), Unit: entity.UnitGrams,
				TolerancePercentage: decimal.NewFromInt(5),
			},
			{
				ID: "ing-prague", RecipeID: "rec-1", MaterialID: matPrague,
				Unit: entity.UnitGrams, IsCure: true, CureType: entity.CureTypePragueNo1,
				TolerancePercentage: decimal.NewFromInt(5), IsCritical: true,
			},
		},
	}
}

func fixtureBatch(inputGrams int64) *entity.Batch {
	return &entity.Batch{
		ID:            "batch-1",
		RecipeID:      "rec-1",
		InputMass:     decimal.NewFromInt(inputGrams),
		InputMassUnit: entity.UnitGrams,
		Status:        entity.BatchStatusInProgress,
	}
}

func setupTargets(batch *entity.Batch) (*production.TargetsUseCase, *fakeActualsRepo) {
	batches := &fakeBatchRepo{batches: map[string]*entity.Batch{batch.ID: batch}}
	recipes := &fakeRecipeRepo{recipes: map[string]*entity.Recipe{"rec-1": fixtureRecipe()}}
	actuals := newFakeActualsRepo()
	return production.NewTargetsUseCase(batches, recipes, actuals, fixedCureConfig{}), actuals
}

// ── tests ────────────────────────────────────────────────────────────────────

// Caso de referencia completo: receta de 1000 g base con 2000 g de entrada.
// Factor 2, la sal de 50 g pasa a 100 g y la dosis de cura se calcula sobre
// la masa de no-cura escalada (1900 g).
func TestComputeTargets_EscaladoYDosisDeCura(t *testing.T) {
	uc, actuals := setupTargets(fixtureBatch(2000))

	factor, err := uc.ComputeTargets(context.Background(), "batch-1")
	require.NoError(t, err)
	assert.True(t, factor.Equal(decimal.NewFromInt(2)), "2000 g sobre base 1000 g es factor 2")

	sal, _ := actuals.Get("batch-1", matSal)
	require.NotNil(t, sal)
	assert.True(t, sal.TargetAmount.Equal(decimal.NewFromInt(100)), "50 g × 2 son 100 g")

	carne, _ := actuals.Get("batch-1", matCarne)
	require.NotNil(t, carne)
	assert.True(t, carne.TargetAmount.Equal(decimal.NewFromInt(1800)))

	prague, _ := actuals.Get("batch-1", matPrague)
	require.NotNil(t, prague)
	expected := domainprod.RequiredCureGrams(
		decimal.NewFromInt(1900), entity.CureTypePragueNo1, decimal.NewFromInt(125))
	assert.True(t, prague.TargetAmount.Equal(expected),
		"La dosis de cura se calcula sobre los 1900 g de no-cura escalados")
	assert.Equal(t, entity.UnitGrams, prague.Unit, "Las curas siempre se expresan en gramos")
}

func TestRecordMeasurement_DentroDeTolerancia(t *testing.T) {
	uc, _ := setupTargets(fixtureBatch(2000))

	row, err := uc.RecordMeasurement(context.Background(), production.MeasurementInput{
		BatchID:      "batch-1",
		MaterialID:   matSal,
		ActualAmount: decimal.NewFromInt(104),
		UserID:       "op-1",
	})
	require.NoError(t, err)
	require.NotNil(t, row.InTolerance)
	assert.True(t, *row.InTolerance, "104 g contra objetivo 100 g con 5% está en tolerancia")
	require.NotNil(t, row.ActualAmount)
	assert.True(t, row.ActualAmount.Equal(decimal.NewFromInt(104)))
}

func TestRecordMeasurement_FueraDeToleranciaSeRegistra(t *testing.T) {
	uc, _ := setupTargets(fixtureBatch(2000))

	row, err := uc.RecordMeasurement(context.Background(), production.MeasurementInput{
		BatchID:      "batch-1",
		MaterialID:   matSal,
		ActualAmount: decimal.NewFromInt(110),
	})
	require.NoError(t, err, "Fuera de tolerancia se registra igual, con veredicto negativo")
	require.NotNil(t, row.InTolerance)
	assert.False(t, *row.InTolerance)
}

// Para curas la medición calcula el ppm alcanzado sobre masa base + agente y
// lo clasifica contra los umbrales.
func TestRecordMeasurement_CuraCalculaPpm(t *testing.T) {
	uc, _ := setupTargets(fixtureBatch(2000))

	dose := domainprod.RequiredCureGrams(
		decimal.NewFromInt(1900), entity.CureTypePragueNo1, decimal.NewFromInt(125))
	row, err := uc.RecordMeasurement(context.Background(), production.MeasurementInput{
		BatchID:      "batch-1",
		MaterialID:   matPrague,
		ActualAmount: dose,
	})
	require.NoError(t, err)
	assert.Equal(t, domainprod.CureStatusOK, row.CureStatus,
		"Dosificar lo calculado debe quedar ok contra los umbrales")
	assert.True(t, row.CurePpm.Sub(decimal.NewFromInt(125)).Abs().LessThan(decimal.NewFromFloat(0.01)),
		"El ppm alcanzado debe rondar el objetivo de 125, obtenido %s", row.CurePpm)
}

func TestRecordMeasurement_SobreescribeLaAnterior(t *testing.T) {
	uc, actuals := setupTargets(fixtureBatch(2000))

	_, err := uc.RecordMeasurement(context.Background(), production.MeasurementInput{
		BatchID: "batch-1", MaterialID: matSal, ActualAmount: decimal.NewFromInt(95),
	})
	require.NoError(t, err)
	_, err = uc.RecordMeasurement(context.Background(), production.MeasurementInput{
		BatchID: "batch-1", MaterialID: matSal, ActualAmount: decimal.NewFromInt(101),
	})
	require.NoError(t, err)

	rows, _ := actuals.ListByBatch("batch-1")
	require.Len(t, rows, 1, "Una sola medición vigente por material")
	assert.True(t, rows[0].ActualAmount.Equal(decimal.NewFromInt(101)))
}

func TestRecordMeasurement_ConvierteUnidadDeEntrada(t *testing.T) {
	uc, _ := setupTargets(fixtureBatch(2000))

	row, err := uc.RecordMeasurement(context.Background(), production.MeasurementInput{
		BatchID:      "batch-1",
		MaterialID:   matSal,
		ActualAmount: decimal.NewFromFloat(0.1),
		Unit:         entity.UnitKilograms,
	})
	require.NoError(t, err)
	assert.True(t, row.ActualAmount.Equal(decimal.NewFromInt(100)),
		"0.1 kg deben registrarse como 100 g")
	assert.True(t, *row.InTolerance)
}

func TestRecordMeasurement_MaterialFueraDeReceta(t *testing.T) {
	uc, _ := setupTargets(fixtureBatch(2000))
	_, err := uc.RecordMeasurement(context.Background(), production.MeasurementInput{
		BatchID:      "batch-1",
		MaterialID:   "mat-intruso",
		ActualAmount: decimal.NewFromInt(10),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRecordMeasurement_BatchCompletadoSeRechaza(t *testing.T) {
	batch := fixtureBatch(2000)
	batch.Status = entity.BatchStatusCompleted
	uc, _ := setupTargets(batch)

	_, err := uc.RecordMeasurement(context.Background(), production.MeasurementInput{
		BatchID:      "batch-1",
		MaterialID:   matSal,
		ActualAmount: decimal.NewFromInt(100),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

// Recalcular objetivos conserva las mediciones existentes y las reevalúa
// contra el objetivo nuevo.
func TestComputeTargets_ConservaMediciones(t *testing.T) {
	uc, actuals := setupTargets(fixtureBatch(2000))

	_, err := uc.RecordMeasurement(context.Background(), production.MeasurementInput{
		BatchID: "batch-1", MaterialID: matSal, ActualAmount: decimal.NewFromInt(104),
	})
	require.NoError(t, err)

	_, err = uc.ComputeTargets(context.Background(), "batch-1")
	require.NoError(t, err)

	sal, _ := actuals.Get("batch-1", matSal)
	require.NotNil(t, sal.ActualAmount, "La medición sobrevive al recálculo")
	assert.True(t, sal.ActualAmount.Equal(decimal.NewFromInt(104)))
	require.NotNil(t, sal.InTolerance)
	assert.True(t, *sal.InTolerance)
}

// Un fallo de lectura no equivale a fila ausente: el recálculo aborta en vez
// de sobreescribir la medición vigente con una fila vacía.
func TestComputeTargets_FalloDeLecturaNoDestruyeMediciones(t *testing.T) {
	batch := fixtureBatch(2000)
	batches := &fakeBatchRepo{batches: map[string]*entity.Batch{batch.ID: batch}}
	recipes := &fakeRecipeRepo{recipes: map[string]*entity.Recipe{"rec-1": fixtureRecipe()}}
	actuals := &failingActualsRepo{fakeActualsRepo: newFakeActualsRepo()}
	uc := production.NewTargetsUseCase(batches, recipes, actuals, fixedCureConfig{})

	_, err := uc.RecordMeasurement(context.Background(), production.MeasurementInput{
		BatchID: "batch-1", MaterialID: matSal, ActualAmount: decimal.NewFromInt(104),
	})
	require.NoError(t, err)

	actuals.failGet = true
	_, err = uc.ComputeTargets(context.Background(), "batch-1")
	require.Error(t, err, "El recálculo debe abortar si no puede leer la fila vigente")

	sal, _ := actuals.fakeActualsRepo.Get("batch-1", matSal)
	require.NotNil(t, sal)
	require.NotNil(t, sal.ActualAmount, "La medición vigente no debe tocarse")
	assert.True(t, sal.ActualAmount.Equal(decimal.NewFromInt(104)))
}

// La tolerancia efectiva de la medición queda persistida y se reaplica al
// reevaluar: un override del operador no se pierde en el recálculo.
func TestComputeTargets_ReevaluaConLaToleranciaDeLaMedicion(t *testing.T) {
	uc, actuals := setupTargets(fixtureBatch(2000))

	_, err := uc.RecordMeasurement(context.Background(), production.MeasurementInput{
		BatchID:           "batch-1",
		MaterialID:        matSal,
		ActualAmount:      decimal.NewFromInt(108),
		ToleranceOverride: decimal.NewFromInt(10),
	})
	require.NoError(t, err)

	_, err = uc.ComputeTargets(context.Background(), "batch-1")
	require.NoError(t, err)

	sal, _ := actuals.Get("batch-1", matSal)
	require.NotNil(t, sal.InTolerance)
	assert.True(t, *sal.InTolerance,
		"108 g sigue juzgado con el 10% de la medición, no con el 5% del ingrediente")
	assert.True(t, sal.TolerancePercent.Equal(decimal.NewFromInt(10)))
}
