package handlers

import (
	"ecocart/internal/dto"
	"ecocart/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ComparisonHandler struct {
	comparisonService *service.ComparisonService
	productService    *service.ProductService
	logger            *zap.Logger
}

func NewComparisonHandler(
	comparisonService *service.ComparisonService,
	productService *service.ProductService,
	logger *zap.Logger,
) *ComparisonHandler {
	return &ComparisonHandler{
		comparisonService: comparisonService,
		productService:    productService,
		logger:            logger,
	}
}

// Compare godoc
// @Summary Compare two products
// @Description Compare two products by id and save the result to the caller's history
// @Tags comparisons
// @Accept json
// @Produce json
// @Param request body dto.CompareRequest true "Product ids"
// @Security Bearer
// @Success 200 {object} dto.ComparisonResult
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /comparisons/compare [post]
func (h *ComparisonHandler) Compare(c *fiber.Ctx) error {
	var req dto.CompareRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if req.ProductID1 == "" || req.ProductID2 == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Both product IDs are required",
		})
	}

	id1, err1 := uuid.Parse(req.ProductID1)
	id2, err2 := uuid.Parse(req.ProductID2)
	if err1 != nil || err2 != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid product ID",
		})
	}
	if id1 == id2 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot compare a product with itself",
		})
	}

	product1, err := h.productService.GetByID(c.Context(), id1)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "One or both products not found",
		})
	}
	product2, err := h.productService.GetByID(c.Context(), id2)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "One or both products not found",
		})
	}

	result := h.comparisonService.Compare(c.Context(), product1, product2)

	// A failed save does not downgrade the response: the comparison is
	// already computed and belongs to the caller either way.
	if userID, err := getUserID(c); err == nil {
		if _, err := h.comparisonService.SaveComparison(c.Context(), userID, result); err != nil {
			h.logger.Error("Failed to save comparison", zap.Error(err))
		}
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    result,
	})
}

// QuickCompare godoc
// @Summary Quick compare by product names
// @Description Compare two products matched by case-insensitive name substring; does not persist
// @Tags comparisons
// @Produce json
// @Param name1 query string true "First product name"
// @Param name2 query string true "Second product name"
// @Success 200 {object} dto.ComparisonResult
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /comparisons/quick [get]
func (h *ComparisonHandler) QuickCompare(c *fiber.Ctx) error {
	name1 := c.Query("name1")
	name2 := c.Query("name2")

	if name1 == "" || name2 == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Both product names are required",
		})
	}

	product1, err := h.productService.FindByName(c.Context(), name1)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Products not found for one or both names",
		})
	}
	product2, err := h.productService.FindByName(c.Context(), name2)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Products not found for one or both names",
		})
	}

	result := h.comparisonService.Compare(c.Context(), product1, product2)

	return c.JSON(fiber.Map{
		"success": true,
		"data":    result,
	})
}

// History godoc
// @Summary Get the caller's recent comparisons
// @Tags comparisons
// @Produce json
// @Security Bearer
// @Success 200 {array} dto.ComparisonHistoryItem
// @Failure 401 {object} map[string]string
// @Router /comparisons/history [get]
func (h *ComparisonHandler) History(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	items, err := h.comparisonService.History(c.Context(), userID)
	if err != nil {
		h.logger.Error("Failed to fetch comparison history", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch comparison history",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    items,
	})
}

// GetByID godoc
// @Summary Get a comparison by id
// @Tags comparisons
// @Produce json
// @Param id path string true "Comparison ID"
// @Security Bearer
// @Success 200 {object} dto.ComparisonHistoryItem
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /comparisons/history/{id} [get]
func (h *ComparisonHandler) GetByID(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid comparison ID",
		})
	}

	item, err := h.comparisonService.GetByID(c.Context(), id, userID, getRole(c))
	if err != nil {
		switch err {
		case service.ErrComparisonNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Comparison not found",
			})
		case service.ErrForbidden:
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Not authorized to view this comparison",
			})
		}
		h.logger.Error("Failed to fetch comparison", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch comparison",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    item,
	})
}

// Delete godoc
// @Summary Delete a comparison
// @Tags comparisons
// @Produce json
// @Param id path string true "Comparison ID"
// @Security Bearer
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /comparisons/history/{id} [delete]
func (h *ComparisonHandler) Delete(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid comparison ID",
		})
	}

	if err := h.comparisonService.Delete(c.Context(), id, userID, getRole(c)); err != nil {
		switch err {
		case service.ErrComparisonNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Comparison not found",
			})
		case service.ErrForbidden:
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Not authorized to delete this comparison",
			})
		}
		h.logger.Error("Failed to delete comparison", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete comparison",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Comparison deleted successfully",
	})
}

// ClearHistory godoc
// @Summary Clear the caller's comparison history
// @Tags comparisons
// @Produce json
// @Security Bearer
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]string
// @Router /comparisons/history/clear [delete]
func (h *ComparisonHandler) ClearHistory(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	if err := h.comparisonService.ClearHistory(c.Context(), userID); err != nil {
		h.logger.Error("Failed to clear comparison history", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to clear comparison history",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Comparison history cleared successfully",
	})
}

// Stats godoc
// @Summary Comparison statistics
// @Description Totals, most compared products, 7-day trend and average score difference
// @Tags comparisons
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.ComparisonStats
// @Failure 403 {object} map[string]string
// @Router /comparisons/stats [get]
func (h *ComparisonHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.comparisonService.Stats(c.Context())
	if err != nil {
		h.logger.Error("Failed to fetch comparison stats", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch comparison statistics",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    stats,
	})
}
