package order

import (
	"encoding/json"
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/darkcommerce/storefront-backend/internal/respond"
)

// Handler delegates order operations to the order service.
type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterRoutes(app *fiber.App) {
	app.Post("/api/orders", h.createOrder)
	// user route is registered before :orderId to avoid route param collision
	app.Get("/api/orders/user/:userId", h.getUserOrders)
	app.Get("/api/orders/:orderId", h.getOrder)
	app.Patch("/api/orders/:orderId/status", h.updateStatus)
}

type createOrderRequest struct {
	UserID          string          `json:"userId"`
	Items           []Item          `json:"items"`
	ShippingAddress json.RawMessage `json:"shippingAddress"`
	PaymentMethod   string          `json:"paymentMethod"`
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

func (h *Handler) createOrder(c *fiber.Ctx) error {
	payload := new(createOrderRequest)
	if err := c.BodyParser(payload); err != nil {
		return respond.Fail(c, fiber.StatusBadRequest, err.Error())
	}
	if payload.Items == nil {
		// a payload without an items array cannot be snapshotted; this is
		// the unhandled path, not a modeled rejection
		return errors.New("order payload has no items array")
	}

	created := h.service.Create(payload.UserID, payload.Items, payload.ShippingAddress, payload.PaymentMethod)
	return respond.Created(c, "Order created successfully", created)
}

func (h *Handler) getUserOrders(c *fiber.Ctx) error {
	return respond.Data(c, h.service.ListByUser(c.Params("userId")))
}

func (h *Handler) getOrder(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("orderId"))
	if err != nil {
		return respond.Fail(c, fiber.StatusNotFound, "Order not found")
	}

	ord, err := h.service.GetByID(id)
	if err != nil {
		return respond.Fail(c, fiber.StatusNotFound, "Order not found")
	}
	return respond.Data(c, ord)
}

func (h *Handler) updateStatus(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("orderId"))
	if err != nil {
		return respond.Fail(c, fiber.StatusNotFound, "Order not found")
	}

	payload := new(updateStatusRequest)
	if err := c.BodyParser(payload); err != nil {
		return respond.Fail(c, fiber.StatusBadRequest, err.Error())
	}

	ord, err := h.service.UpdateStatus(id, payload.Status)
	if err != nil {
		return respond.Fail(c, fiber.StatusNotFound, "Order not found")
	}
	return respond.Message(c, "Order status updated", ord)
}
