package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/PaultheAICoder/SkuInventoryDatabase-sub001/internal/application/dto"
	"github.com/PaultheAICoder/SkuInventoryDatabase-sub001/internal/application/usecase"
	"github.com/PaultheAICoder/SkuInventoryDatabase-sub001/internal/domain"
)

// BOMHandler maneja las peticiones HTTP de versiones de BOM (protegido).
type BOMHandler struct {
	uc *usecase.BOMUseCase
}

// NewBOMHandler construye el handler.
func NewBOMHandler(uc *usecase.BOMUseCase) *BOMHandler {
	return &BOMHandler{uc: uc}
}

// CreateVersion godoc
// @Summary      Crear versión de BOM para un SKU
// @Description  Las versiones son inmutables; para cambiar la receta se crea una
//
//	versión nueva. Con supersede=true la versión activa previa se
//	end-datea al día anterior del inicio de la nueva.
//
// @Tags         boms
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        skuId  path  string                      true  "SKU ID"
// @Param        body   body  dto.CreateBOMVersionRequest  true  "version_name, effective_start_date, lines"
// @Success      201    {object}  dto.BOMVersionResponse
// @Failure      400    {object}  dto.ErrorResponse
// @Failure      404    {object}  dto.ErrorResponse
// @Router       /api/skus/{skuId}/bom-versions [post]
func (h *BOMHandler) CreateVersion(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.CreateBOMVersionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.uc.CreateVersion(companyID, c.Params("skuId"), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
		}
		if errors.Is(err, domain.ErrNotFoundOrAccessDenied) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "NOT_FOUND_OR_ACCESS_DENIED", Message: "componente no encontrado o sin acceso"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "SKU no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// ListBySKU godoc
// @Summary      Listar versiones de BOM de un SKU
// @Tags         boms
// @Security     Bearer
// @Produce      json
// @Param        skuId  path  string  true  "SKU ID"
// @Success      200  {array}   dto.BOMVersionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/skus/{skuId}/bom-versions [get]
func (h *BOMHandler) ListBySKU(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	versions, err := h.uc.ListBySKU(companyID, c.Params("skuId"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "SKU no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"total": len(versions), "versions": versions})
}

// GetVersion godoc
// @Summary      Obtener versión de BOM con sus líneas
// @Tags         boms
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "BOM Version ID"
// @Success      200  {object}  dto.BOMVersionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/bom-versions/{id} [get]
func (h *BOMHandler) GetVersion(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	resp, err := h.uc.GetByID(companyID, c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "versión de BOM no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(resp)
}
