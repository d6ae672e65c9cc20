package payment

import (
	"github.com/gofiber/fiber/v2"

	"github.com/darkcommerce/storefront-backend/internal/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterRoutes(app *fiber.App) {
	app.Post("/api/payments/process", h.processPayment)
	app.Get("/api/payments/status/:transactionId", h.getStatus)
}

func (h *Handler) processPayment(c *fiber.Ctx) error {
	payload := new(ProcessRequest)
	if err := c.BodyParser(payload); err != nil {
		return respond.Fail(c, fiber.StatusBadRequest, err.Error())
	}

	receipt, err := h.service.Process(c.UserContext(), *payload)
	if err != nil {
		// the client went away mid-delay; let the catch-all shape the reply
		return err
	}
	return respond.Message(c, "Payment processed successfully", receipt)
}

func (h *Handler) getStatus(c *fiber.Ctx) error {
	return respond.Data(c, h.service.Lookup(c.Params("transactionId")))
}
