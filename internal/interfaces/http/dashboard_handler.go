package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/freshstock-api/internal/application/analytics"
	"github.com/jhoicas/freshstock-api/internal/application/usecase"
)

// DashboardHandler maneja los endpoints del tablero y los gráficos.
type DashboardHandler struct {
	uc     *appanalytics.DashboardUseCase
	charts *usecase.AnalyticsUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase, charts *usecase.AnalyticsUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc, charts: charts}
}

// GetSummary devuelve los KPIs del día y del mes en curso.
// GET /api/dashboard/summary
//
// Respuesta: DashboardSummaryDTO (ventas, compras, inventario, próximos a vencer
// y las últimas 10 actividades). Las fechas se calculan en el servidor.
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(summary)
}

// GetCharts godoc
// @Summary      Series para los gráficos del tablero
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Param        year  query  int  false  "Año (por defecto el actual)"
// @Success      200   {object}  dto.ChartsDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/analytics/charts [get]
func (h *DashboardHandler) GetCharts(c *fiber.Ctx) error {
	out, err := h.charts.Charts(c.UserContext(), c.QueryInt("year", 0))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
