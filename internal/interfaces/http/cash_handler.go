package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/adega-api/internal/application/cash"
	"github.com/jhoicas/adega-api/internal/application/dto"
	"github.com/jhoicas/adega-api/pkg/logger"
)

// CashHandler maneja el livro caixa.
type CashHandler struct {
	uc  *cash.CashUseCase
	log *logger.Logger
}

// NewCashHandler construye el handler.
func NewCashHandler(uc *cash.CashUseCase, log *logger.Logger) *CashHandler {
	return &CashHandler{uc: uc, log: log}
}

// List godoc
// @Summary      Listar transações de caixa
// @Tags         caixa
// @Produce      json
// @Success      200  {array}  dto.CashTransactionResponse
// @Router       /caixa/transacoes [get]
func (h *CashHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Registrar transação de caixa
// @Tags         caixa
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCashTransactionRequest  true  "Transação (tipo: entrada|saida)"
// @Success      201   {object}  dto.CashTransactionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /caixa/transacoes [post]
func (h *CashHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCashTransactionRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Balance godoc
// @Summary      Saldo do caixa
// @Tags         caixa
// @Produce      json
// @Success      200  {object}  dto.BalanceResponse
// @Router       /caixa/saldo [get]
func (h *CashHandler) Balance(c *fiber.Ctx) error {
	out, err := h.uc.Balance(c.UserContext())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// CashFlow godoc
// @Summary      Fluxo de caixa por período
// @Tags         caixa
// @Produce      json
// @Param        data_inicio  query  string  false  "Desde (YYYY-MM-DD, inclusive)"
// @Param        data_fim     query  string  false  "Hasta (YYYY-MM-DD, inclusive)"
// @Success      200  {object}  dto.CashFlowResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /caixa/fluxo [get]
func (h *CashHandler) CashFlow(c *fiber.Ctx) error {
	p, err := period(c)
	if err != nil {
		return writeError(c, h.log, err)
	}
	out, err := h.uc.CashFlow(c.UserContext(), p)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}
