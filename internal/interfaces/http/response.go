package http

import "github.com/gofiber/fiber/v2"

// Envelope formato único de todas las respuestas de la API, éxito o error.
type Envelope struct {
	StatusCode int    `json:"statusCode"`
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	Data       any    `json:"data,omitempty"`
}

// respond serializa una respuesta exitosa en el envelope canónico.
func respond(c *fiber.Ctx, status int, message string, data any) error {
	return c.Status(status).JSON(Envelope{
		StatusCode: status,
		Success:    true,
		Message:    message,
		Data:       data,
	})
}
