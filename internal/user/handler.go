package user

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/darkcommerce/storefront-backend/internal/respond"
)

type Handler struct {
	service *Service
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(app *fiber.App) {
	app.Post("/api/users/register", h.register)
	app.Post("/api/users/login", h.login)
	app.Get("/api/users/:userId", h.getProfile)
}

func (h *Handler) register(c *fiber.Ctx) error {
	payload := new(registerRequest)
	if err := c.BodyParser(payload); err != nil {
		return respond.Fail(c, fiber.StatusBadRequest, err.Error())
	}

	created, err := h.service.Register(payload.Email, payload.Password, payload.Name)
	if err != nil {
		if err == ErrEmailExists {
			return respond.Fail(c, fiber.StatusConflict, "User already exists")
		}
		return err
	}
	return respond.Created(c, "User registered successfully", created.Profile())
}

func (h *Handler) login(c *fiber.Ctx) error {
	payload := new(loginRequest)
	if err := c.BodyParser(payload); err != nil {
		return respond.Fail(c, fiber.StatusBadRequest, err.Error())
	}

	u, err := h.service.Authenticate(payload.Email, payload.Password)
	if err != nil {
		return respond.Fail(c, fiber.StatusUnauthorized, "Invalid credentials")
	}
	return respond.Message(c, "Login successful", u.Profile())
}

func (h *Handler) getProfile(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("userId"))
	if err != nil {
		return respond.Fail(c, fiber.StatusNotFound, "User not found")
	}

	u, err := h.service.GetByID(id)
	if err != nil {
		return respond.Fail(c, fiber.StatusNotFound, "User not found")
	}
	return respond.Data(c, u.FullProfile())
}
