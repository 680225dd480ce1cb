package handlers

import (
	"tournament-hub/services"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(app *fiber.App, userService *services.UserService) {
	api := app.Group("/api")

	api.Post("/register", func(c *fiber.Ctx) error {
		type Req struct {
			Username string `json:"username"`
			Email    string `json:"email"`
			Password string `json:"password"`
			FFID     string `json:"ff_id"`
		}
		var req Req
		if err := c.BodyParser(&req); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "invalid JSON"})
		}
		if req.Username == "" || req.Email == "" || req.Password == "" {
			return c.Status(400).JSON(fiber.Map{"error": "username, email and password are required"})
		}

		user, err := userService.Register(req.Username, req.Email, req.Password, req.FFID)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(fiber.Map{
			"id":       user.ID,
			"username": user.Username,
			"balance":  user.Balance,
		})
	})

	api.Post("/login", func(c *fiber.Ctx) error {
		type Req struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		var req Req
		if err := c.BodyParser(&req); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "invalid JSON"})
		}

		user, err := userService.Authenticate(req.Email, req.Password)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(user)
	})
}
