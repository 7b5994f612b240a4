package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Miguel-Ovalle/almacen-app/internal/application/dto"
	"github.com/Miguel-Ovalle/almacen-app/internal/application/reports"
)

// HistoryHandler vista de solo lectura del histórico de movimientos.
type HistoryHandler struct {
	uc *reports.MovementsUseCase
}

// NewHistoryHandler construye el handler.
func NewHistoryHandler(uc *reports.MovementsUseCase) *HistoryHandler {
	return &HistoryHandler{uc: uc}
}

// List godoc
// @Summary      Histórico de movimientos con producto y usuario
// @Description  Filtros opcionales por tipo (entrada/salida o e/s) y rango de
//               fechas YYYY-MM-DD con f_fin inclusivo. Filtros malformados se
//               ignoran en silencio.
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        tipo   query  string  false  "entrada | salida | e | s"
// @Param        f_ini  query  string  false  "fecha inicial YYYY-MM-DD"
// @Param        f_fin  query  string  false  "fecha final YYYY-MM-DD (inclusiva)"
// @Success      200  {array}  dto.MovementResponse
// @Router       /api/movements [get]
func (h *HistoryHandler) List(c *fiber.Ctx) error {
	items, err := h.uc.List(reports.Filter{
		Type:     c.Query("tipo"),
		FromDate: c.Query("f_ini"),
		ToDate:   c.Query("f_fin"),
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no se pudo consultar el histórico", Severity: dto.SeverityDanger})
	}
	return c.JSON(items)
}
