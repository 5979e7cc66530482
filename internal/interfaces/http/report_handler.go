package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/adega-api/internal/application/analytics"
	"github.com/jhoicas/adega-api/pkg/logger"
)

const (
	contentTypePDF  = "application/pdf"
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// ReportHandler maneja los relatórios de vendas y financiero y sus exportaciones.
type ReportHandler struct {
	uc  *analytics.ReportUseCase
	log *logger.Logger
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *analytics.ReportUseCase, log *logger.Logger) *ReportHandler {
	return &ReportHandler{uc: uc, log: log}
}

// Sales godoc
// @Summary      Relatório de vendas
// @Description  Agrupa las saídas del período por nombre de produto.
// @Tags         relatorios
// @Produce      json
// @Param        data_inicio  query  string  false  "Desde (YYYY-MM-DD)"
// @Param        data_fim     query  string  false  "Hasta (YYYY-MM-DD)"
// @Success      200  {object}  dto.SalesReportResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /relatorios/vendas [get]
func (h *ReportHandler) Sales(c *fiber.Ctx) error {
	p, err := period(c)
	if err != nil {
		return writeError(c, h.log, err)
	}
	out, err := h.uc.SalesReport(c.UserContext(), p)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Financial godoc
// @Summary      Relatório financeiro
// @Tags         relatorios
// @Produce      json
// @Param        data_inicio  query  string  false  "Desde (YYYY-MM-DD)"
// @Param        data_fim     query  string  false  "Hasta (YYYY-MM-DD)"
// @Success      200  {object}  dto.FinancialReportResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /relatorios/financeiro [get]
func (h *ReportHandler) Financial(c *fiber.Ctx) error {
	p, err := period(c)
	if err != nil {
		return writeError(c, h.log, err)
	}
	out, err := h.uc.FinancialReport(c.UserContext(), p)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// FinancialPDF godoc
// @Summary      Relatório financeiro en PDF
// @Tags         relatorios
// @Produce      application/pdf
// @Param        data_inicio  query  string  false  "Desde (YYYY-MM-DD)"
// @Param        data_fim     query  string  false  "Hasta (YYYY-MM-DD)"
// @Success      200  {file}    binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /relatorios/financeiro/pdf [get]
func (h *ReportHandler) FinancialPDF(c *fiber.Ctx) error {
	p, err := period(c)
	if err != nil {
		return writeError(c, h.log, err)
	}
	b, filename, err := h.uc.FinancialReportPDF(c.UserContext(), p)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return sendFile(c, contentTypePDF, filename, b)
}

// SalesXLSX godoc
// @Summary      Relatório de vendas en Excel
// @Tags         relatorios
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        data_inicio  query  string  false  "Desde (YYYY-MM-DD)"
// @Param        data_fim     query  string  false  "Hasta (YYYY-MM-DD)"
// @Success      200  {file}    binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /relatorios/vendas/xlsx [get]
func (h *ReportHandler) SalesXLSX(c *fiber.Ctx) error {
	p, err := period(c)
	if err != nil {
		return writeError(c, h.log, err)
	}
	b, filename, err := h.uc.SalesReportXLSX(c.UserContext(), p)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return sendFile(c, contentTypeXLSX, filename, b)
}

func sendFile(c *fiber.Ctx, contentType, filename string, b []byte) error {
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(b)
}
