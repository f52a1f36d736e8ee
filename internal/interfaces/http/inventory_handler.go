package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/PaultheAICoder/SkuInventoryDatabase-sub001/internal/application/dto"
	"github.com/PaultheAICoder/SkuInventoryDatabase-sub001/internal/application/inventory"
	"github.com/PaultheAICoder/SkuInventoryDatabase-sub001/internal/domain"
)

// InventoryHandler maneja las peticiones HTTP de movimientos y saldos (protegido).
type InventoryHandler struct {
	movementUC *inventory.RegisterMovementUseCase
	balanceUC  *inventory.BalanceQueryUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(movementUC *inventory.RegisterMovementUseCase, balanceUC *inventory.BalanceQueryUseCase) *InventoryHandler {
	return &InventoryHandler{movementUC: movementUC, balanceUC: balanceUC}
}

// RegisterMovement godoc
// @Summary      Registrar movimiento de inventario
// @Description  initial/receipt/adjustment sobre una ubicación; transfer entre dos.
//
//	Recepciones con lot_number crean o acumulan el lote del componente.
//
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterMovementRequest  true  "component_id, type, quantity; unit_cost para initial/receipt"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory/movements [post]
func (h *InventoryHandler) RegisterMovement(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	userID := GetUserID(c)
	if companyID == "" || userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	tx, err := h.movementUC.RegisterMovementFromRequest(c.Context(), companyID, userID, in)
	if err != nil {
		var insufficient *domain.InsufficientInventoryError
		if errors.As(err, &insufficient) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"code":               "INSUFFICIENT_INVENTORY",
				"message":            insufficient.Error(),
				"insufficient_items": insufficient.Items,
			})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
		}
		if errors.Is(err, domain.ErrNotFoundOrAccessDenied) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "NOT_FOUND_OR_ACCESS_DENIED", Message: "recurso no encontrado o sin acceso"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "componente o ubicación no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MovementResponse{
		TransactionID: tx.ID,
		Type:          tx.Type,
		CreatedAt:     tx.CreatedAt,
	})
}

// ListBalances godoc
// @Summary      Saldos materializados de la empresa
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.BalanceResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/inventory/balances [get]
func (h *InventoryHandler) ListBalances(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	balances, err := h.balanceUC.ListByCompany(companyID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"total": len(balances), "balances": balances})
}
