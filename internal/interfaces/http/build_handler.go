package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/PaultheAICoder/SkuInventoryDatabase-sub001/internal/application/build"
	"github.com/PaultheAICoder/SkuInventoryDatabase-sub001/internal/application/dto"
	"github.com/PaultheAICoder/SkuInventoryDatabase-sub001/internal/domain"
)

// BuildHandler maneja las peticiones HTTP de builds (protegido).
type BuildHandler struct {
	uc *build.BuildUseCase
}

// NewBuildHandler construye el handler.
func NewBuildHandler(uc *build.BuildUseCase) *BuildHandler {
	return &BuildHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar un build (fabricación de un SKU)
// @Description  Resuelve la versión de BOM vigente a la fecha, calcula requerimientos,
//
//	verifica disponibilidad según la política de faltantes y escribe la
//	transacción con todas sus líneas de consumo de forma atómica.
//
// @Tags         builds
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BuildRequest  true  "sku_id, units_to_build, date; opcional bom_version_id, location_id, shortage_policy, lot_overrides"
// @Success      201   {object}  dto.BuildResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/builds [post]
func (h *BuildHandler) Create(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	userID := GetUserID(c)
	if companyID == "" || userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.BuildRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	result, err := h.uc.ExecuteFromRequest(c.Context(), companyID, userID, in)
	if err != nil {
		var noBOM *domain.NoBOMEffectiveError
		if errors.As(err, &noBOM) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "NO_BOM_EFFECTIVE", Message: noBOM.Error()})
		}
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
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "SKU no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(result.ToResponse())
}
