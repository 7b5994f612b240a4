package reports

import (
	"strings"
	"time"

	"github.com/Miguel-Ovalle/almacen-app/internal/application/dto"
	"github.com/Miguel-Ovalle/almacen-app/internal/domain/entity"
	"github.com/Miguel-Ovalle/almacen-app/internal/domain/repository"
)

const dateLayout = "2006-01-02"

// MovementsUseCase vista de solo lectura sobre el libro de movimientos.
type MovementsUseCase struct {
	movRepo repository.MovementRepository
}

// NewMovementsUseCase construye el caso de uso del histórico.
func NewMovementsUseCase(movRepo repository.MovementRepository) *MovementsUseCase {
	return &MovementsUseCase{movRepo: movRepo}
}

// Filter filtros del histórico tal cual llegan del query string.
// Los valores malformados se ignoran en silencio (equivalen a "sin filtro"):
// el reporte es permisivo a propósito para seguir siendo usable.
type Filter struct {
	Type     string // "entrada"/"e" o "salida"/"s", cualquier capitalización
	FromDate string // YYYY-MM-DD, inclusivo
	ToDate   string // YYYY-MM-DD, inclusivo a granularidad de día
}

// List devuelve el histórico filtrado, con nombres de producto y usuario,
// ordenado por id de movimiento descendente (más recientes primero).
func (uc *MovementsUseCase) List(f Filter) ([]dto.MovementResponse, error) {
	repoFilter := repository.MovementFilter{Type: normalizeType(f.Type)}

	if s := strings.TrimSpace(f.FromDate); s != "" {
		if t, err := time.Parse(dateLayout, s); err == nil {
			repoFilter.From = &t
		}
	}
	if s := strings.TrimSpace(f.ToDate); s != "" {
		if t, err := time.Parse(dateLayout, s); err == nil {
			// ToDate inclusivo: occurred_at < ToDate + 1 día
			end := t.AddDate(0, 0, 1)
			repoFilter.To = &end
		}
	}

	list, err := uc.movRepo.ListWithNames(repoFilter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, dto.MovementResponse{
			ID:          m.ID,
			ProductID:   m.ProductID,
			ProductName: m.ProductName,
			UserID:      m.UserID,
			UserName:    m.UserName,
			Type:        m.Type,
			Quantity:    m.Quantity,
			OccurredAt:  m.OccurredAt,
		})
	}
	return items, nil
}

// normalizeType acepta entrada/salida o las letras e/s; lo demás no filtra.
func normalizeType(s string) string {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "entrada", "e":
		return entity.MovementTypeEntry
	case "salida", "s":
		return entity.MovementTypeExit
	default:
		return ""
	}
}
