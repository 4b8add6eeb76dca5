package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pingability/pingability-api/internal/dto"
	"github.com/pingability/pingability-api/internal/pricing"
	"github.com/pingability/pingability-api/internal/utils"
)

// PricingHandler serves the lesson package catalogue.
type PricingHandler struct{}

// NewPricingHandler constructs a pricing handler.
func NewPricingHandler() *PricingHandler {
	return &PricingHandler{}
}

// Register wires pricing routes.
func (h *PricingHandler) Register(router fiber.Router) {
	router.Get("/pricing", h.list)
}

func (h *PricingHandler) list(c *fiber.Ctx) error {
	packages := pricing.Packages()
	response := make([]dto.PricingPackageResponse, 0, len(packages))
	for _, pkg := range packages {
		response = append(response, dto.PricingPackageResponse{
			Type:        string(pkg.Type),
			Name:        pkg.Name,
			Description: pkg.Description,
			Lessons:     pkg.Lessons,
			Price:       pkg.Price,
			ListPrice:   pkg.ListPrice(),
			Savings:     pkg.Savings(),
			Features:    pkg.Features,
			Popular:     pkg.Popular,
		})
	}

	return utils.SendSuccess(c, "pricing retrieved", response)
}
