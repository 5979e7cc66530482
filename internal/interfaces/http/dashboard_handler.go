package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/adega-api/internal/application/analytics"
	"github.com/jhoicas/adega-api/pkg/logger"
)

// DashboardHandler maneja el endpoint del dashboard.
type DashboardHandler struct {
	uc  *analytics.DashboardUseCase
	log *logger.Logger
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase, log *logger.Logger) *DashboardHandler {
	return &DashboardHandler{uc: uc, log: log}
}

// GetSummary godoc
// @Summary      Dashboard
// @Description  KPIs, últimas 5 transações y produtos con estoque bajo. Sin parámetros;
// @Description  el mes en curso se calcula en el servidor.
// @Tags         relatorios
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse
// @Router       /relatorios/dashboard [get]
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary(c.UserContext())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(summary)
}
