package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/adega-api/internal/application/dto"
	"github.com/jhoicas/adega-api/internal/application/inventory"
	"github.com/jhoicas/adega-api/pkg/logger"
)

// InventoryHandler maneja las entradas, salidas y el estoque actual.
type InventoryHandler struct {
	uc  *inventory.StockUseCase
	log *logger.Logger
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.StockUseCase, log *logger.Logger) *InventoryHandler {
	return &InventoryHandler{uc: uc, log: log}
}

// ListIn godoc
// @Summary      Listar entradas de estoque
// @Tags         estoque
// @Produce      json
// @Success      200  {array}  dto.StockInResponse
// @Router       /estoque/entradas [get]
func (h *InventoryHandler) ListIn(c *fiber.Ctx) error {
	out, err := h.uc.ListIn(c.UserContext())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// CreateIn godoc
// @Summary      Registrar entrada de estoque
// @Description  valor_compra es el total pagado por la entrada.
// @Tags         estoque
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateStockInRequest  true  "Entrada"
// @Success      201   {object}  dto.StockInResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /estoque/entradas [post]
func (h *InventoryHandler) CreateIn(c *fiber.Ctx) error {
	var in dto.CreateStockInRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.CreateIn(c.UserContext(), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListOut godoc
// @Summary      Listar saídas de estoque
// @Tags         estoque
// @Produce      json
// @Success      200  {array}  dto.StockOutResponse
// @Router       /estoque/saidas [get]
func (h *InventoryHandler) ListOut(c *fiber.Ctx) error {
	out, err := h.uc.ListOut(c.UserContext())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// CreateOut godoc
// @Summary      Registrar venda (saída de estoque)
// @Description  Crea la saída y la transacción de caja correspondiente en una sola transacción.
// @Tags         estoque
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateStockOutRequest  true  "Saída"
// @Success      201   {object}  dto.StockOutResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /estoque/saidas [post]
func (h *InventoryHandler) CreateOut(c *fiber.Ctx) error {
	var in dto.CreateStockOutRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.CreateOut(c.UserContext(), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// CurrentStock godoc
// @Summary      Estoque atual por produto
// @Tags         estoque
// @Produce      json
// @Success      200  {array}  dto.StockLevelResponse
// @Router       /estoque/atual [get]
func (h *InventoryHandler) CurrentStock(c *fiber.Ctx) error {
	out, err := h.uc.CurrentStock(c.UserContext())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}
