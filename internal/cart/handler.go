package cart

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/darkcommerce/storefront-backend/internal/respond"
)

// Handler delegates cart operations to the cart service.
type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterRoutes(app *fiber.App) {
	app.Get("/api/cart/:userId", h.getCart)
	app.Post("/api/cart/:userId/items", h.addItem)
	app.Put("/api/cart/:userId/items/:productId", h.updateItem)
	app.Delete("/api/cart/:userId/items/:productId", h.removeItem)
	app.Delete("/api/cart/:userId", h.clearCart)
}

type addItemRequest struct {
	ProductID int  `json:"productId"`
	Quantity  *int `json:"quantity"`
}

type updateItemRequest struct {
	Quantity int `json:"quantity"`
}

func (h *Handler) getCart(c *fiber.Ctx) error {
	return respond.Data(c, h.service.Get(c.Params("userId")))
}

func (h *Handler) addItem(c *fiber.Ctx) error {
	payload := new(addItemRequest)
	if err := c.BodyParser(payload); err != nil {
		return respond.Fail(c, fiber.StatusBadRequest, err.Error())
	}
	if payload.ProductID <= 0 {
		return respond.Fail(c, fiber.StatusBadRequest, "invalid productId")
	}

	// omitted quantity defaults to 1; an explicit zero is kept as sent
	qty := 1
	if payload.Quantity != nil {
		qty = *payload.Quantity
	}

	ct := h.service.AddItem(c.Params("userId"), payload.ProductID, qty)
	return respond.Message(c, "Item added to cart", ct)
}

func (h *Handler) updateItem(c *fiber.Ctx) error {
	productID, err := strconv.Atoi(c.Params("productId"))
	if err != nil {
		productID = 0 // matches no line; the repository checks the cart first
	}

	payload := new(updateItemRequest)
	if err := c.BodyParser(payload); err != nil {
		return respond.Fail(c, fiber.StatusBadRequest, err.Error())
	}

	ct, err := h.service.UpdateItem(c.Params("userId"), productID, payload.Quantity)
	if err != nil {
		switch err {
		case ErrCartNotFound:
			return respond.Fail(c, fiber.StatusNotFound, "Cart not found")
		case ErrItemNotFound:
			return respond.Fail(c, fiber.StatusNotFound, "Item not found in cart")
		default:
			return err
		}
	}
	return respond.Message(c, "Cart updated", ct)
}

func (h *Handler) removeItem(c *fiber.Ctx) error {
	productID, err := strconv.Atoi(c.Params("productId"))
	if err != nil {
		productID = 0 // a non-numeric id matches no line; removal still succeeds
	}

	ct, err := h.service.RemoveItem(c.Params("userId"), productID)
	if err != nil {
		return respond.Fail(c, fiber.StatusNotFound, "Cart not found")
	}
	return respond.Message(c, "Item removed from cart", ct)
}

func (h *Handler) clearCart(c *fiber.Ctx) error {
	h.service.Clear(c.Params("userId"))
	return respond.Message(c, "Cart cleared", nil)
}
