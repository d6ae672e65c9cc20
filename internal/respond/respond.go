// Package respond provides the JSON response envelope shared by all endpoints.
package respond

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// Envelope is the uniform response shape used across every endpoint.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Data writes a 200 response carrying only a payload.
func Data(c *fiber.Ctx, data any) error {
	return c.JSON(Envelope{Success: true, Data: data})
}

// Message writes a 200 response with a message and optional payload.
func Message(c *fiber.Ctx, message string, data any) error {
	return c.JSON(Envelope{Success: true, Message: message, Data: data})
}

// Created writes a 201 response with a message and payload.
func Created(c *fiber.Ctx, message string, data any) error {
	return c.Status(fiber.StatusCreated).JSON(Envelope{Success: true, Message: message, Data: data})
}

// Fail writes a rejection with the given status and message.
func Fail(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(Envelope{Success: false, Message: message})
}

// ErrorHandler is installed as the fiber app error handler. Router-level
// fiber errors (unknown route, method not allowed) keep their status;
// anything else a handler returns is the catch-all 500 path.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return c.Status(fe.Code).JSON(Envelope{Success: false, Message: fe.Message})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(Envelope{
		Success: false,
		Message: "Internal server error",
		Error:   err.Error(),
	})
}
