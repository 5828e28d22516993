package utils

import "github.com/gofiber/fiber/v2"

// Envelope is the response shape the mobile and admin clients expect.
type Envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// SendResponse writes the standard success/data envelope.
func SendResponse(c *fiber.Ctx, status int, success bool, message string, data interface{}) error {
	return c.Status(status).JSON(Envelope{Success: success, Message: message, Data: data})
}

// OK writes a 200 envelope.
func OK(c *fiber.Ctx, message string, data interface{}) error {
	return SendResponse(c, fiber.StatusOK, true, message, data)
}

// Created writes a 201 envelope.
func Created(c *fiber.Ctx, message string, data interface{}) error {
	return SendResponse(c, fiber.StatusCreated, true, message, data)
}
