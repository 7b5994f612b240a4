package reports_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Miguel-Ovalle/almacen-app/internal/application/reports"
	"github.com/Miguel-Ovalle/almacen-app/internal/domain/entity"
	"github.com/Miguel-Ovalle/almacen-app/internal/domain/repository"
)

// recordingMovementRepo captura el filtro que recibe ListWithNames y devuelve
// un histórico fijo, para verificar la traducción query string → filtro.
type recordingMovementRepo struct {
	lastFilter repository.MovementFilter
	result     []*entity.MovementWithNames
}

func (r *recordingMovementRepo) Create(*entity.Movement) error { return nil }

func (r *recordingMovementRepo) HasForProduct(int64) (bool, error) { return false, nil }

func (r *recordingMovementRepo) ProductIDsWithHistory() (map[int64]bool, error) {
	return map[int64]bool{}, nil
}

func (r *recordingMovementRepo) ListWithNames(f repository.MovementFilter) ([]*entity.MovementWithNames, error) {
	r.lastFilter = f
	return r.result, nil
}

func TestMovementsList_NormalizaTipo(t *testing.T) {
	casos := []struct {
		entrada  string
		esperado string
	}{
		{"entrada", entity.MovementTypeEntry},
		{"Entrada", entity.MovementTypeEntry},
		{"E", entity.MovementTypeEntry},
		{"e", entity.MovementTypeEntry},
		{"salida", entity.MovementTypeExit},
		{"SALIDA", entity.MovementTypeExit},
		{"s", entity.MovementTypeExit},
		{"", ""},
		{"todos", ""},
		{"basura", ""},
	}

	for _, c := range casos {
		repo := &recordingMovementRepo{}
		uc := reports.NewMovementsUseCase(repo)

		_, err := uc.List(reports.Filter{Type: c.entrada})
		require.NoError(t, err)
		assert.Equal(t, c.esperado, repo.lastFilter.Type, "tipo %q", c.entrada)
	}
}

func TestMovementsList_RangoDeFechas(t *testing.T) {
	repo := &recordingMovementRepo{}
	uc := reports.NewMovementsUseCase(repo)

	_, err := uc.List(reports.Filter{FromDate: "2026-08-01", ToDate: "2026-08-15"})
	require.NoError(t, err)

	require.NotNil(t, repo.lastFilter.From)
	require.NotNil(t, repo.lastFilter.To)
	assert.Equal(t, time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), *repo.lastFilter.From)
	// ToDate es inclusivo a granularidad de día: el límite superior exclusivo
	// es el día siguiente a medianoche.
	assert.Equal(t, time.Date(2026, 8, 16, 0, 0, 0, 0, time.UTC), *repo.lastFilter.To)
}

func TestMovementsList_FechasMalformadasSeIgnoran(t *testing.T) {
	repo := &recordingMovementRepo{}
	uc := reports.NewMovementsUseCase(repo)

	_, err := uc.List(reports.Filter{FromDate: "15/08/2026", ToDate: "no-es-fecha"})
	require.NoError(t, err, "fechas malformadas no deben fallar el reporte")

	assert.Nil(t, repo.lastFilter.From)
	assert.Nil(t, repo.lastFilter.To)
}

func TestMovementsList_MapeaRespuesta(t *testing.T) {
	when := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	repo := &recordingMovementRepo{result: []*entity.MovementWithNames{
		{
			Movement: entity.Movement{
				ID: 3, ProductID: 1, UserID: 2,
				Type: entity.MovementTypeExit, Quantity: 4, OccurredAt: when,
			},
			ProductName: "Martillo",
			UserName:    "Ana",
		},
	}}
	uc := reports.NewMovementsUseCase(repo)

	items, err := uc.List(reports.Filter{})
	require.NoError(t, err)
	require.Len(t, items, 1)

	assert.Equal(t, int64(3), items[0].ID)
	assert.Equal(t, "Martillo", items[0].ProductName)
	assert.Equal(t, "Ana", items[0].UserName)
	assert.Equal(t, entity.MovementTypeExit, items[0].Type)
	assert.Equal(t, int64(4), items[0].Quantity)
	assert.Equal(t, when, items[0].OccurredAt)
}

func TestMovementsList_SinResultados(t *testing.T) {
	uc := reports.NewMovementsUseCase(&recordingMovementRepo{})

	items, err := uc.List(reports.Filter{})
	require.NoError(t, err)
	assert.NotNil(t, items, "sin resultados devuelve slice vacío, no nil")
	assert.Empty(t, items)
}
