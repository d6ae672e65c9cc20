package product

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/darkcommerce/storefront-backend/internal/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(app *fiber.App) {
	app.Get("/api/products", h.listProducts)
	// category route is registered before :id to avoid route param collision
	app.Get("/api/products/category/:category", h.getByCategory)
	app.Get("/api/products/:id", h.getProduct)
}

func (h *Handler) listProducts(c *fiber.Ctx) error {
	q := ListQuery{
		Category: c.Query("category"),
		Search:   c.Query("search"),
		Sort:     c.Query("sort"),
		Page:     c.QueryInt("page", 1),
		Limit:    c.QueryInt("limit", defaultLimit),
	}
	return respond.Data(c, h.service.Query(q))
}

func (h *Handler) getProduct(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		// non-numeric ids match nothing, same as an unknown id
		return respond.Fail(c, fiber.StatusNotFound, "Product not found")
	}

	p, err := h.service.GetByID(id)
	if err != nil {
		return respond.Fail(c, fiber.StatusNotFound, "Product not found")
	}
	return respond.Data(c, p)
}

func (h *Handler) getByCategory(c *fiber.Ctx) error {
	return respond.Data(c, h.service.GetByCategory(c.Params("category")))
}
