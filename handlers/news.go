package handlers

import (
	"path/filepath"

	"tournament-hub/models"
	"tournament-hub/services"
	"tournament-hub/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func SetupNewsRoutes(app *fiber.App, newsService *services.NewsService) {
	api := app.Group("/api")

	api.Get("/news", func(c *fiber.Ctx) error {
		news, err := newsService.ListNews()
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(news)
	})

	api.Post("/admin/news", func(c *fiber.Ctx) error {
		title := c.FormValue("title")
		content := c.FormValue("content")
		if title == "" || content == "" {
			return c.Status(400).JSON(fiber.Map{"error": "title and content are required"})
		}

		imageURL := c.FormValue("image_url")
		if image, err := c.FormFile("image"); err == nil && image.Size > 0 {
			if !utils.MediaStoreEnabled() {
				return c.Status(503).JSON(fiber.Map{"error": "image uploads not configured"})
			}
			ext := filepath.Ext(image.Filename)
			if ext == "" {
				ext = ".jpg"
			}
			key := "news/" + uuid.NewString() + ext
			url, err := utils.UploadImage(image, key)
			if err != nil {
				return c.Status(500).JSON(fiber.Map{"error": "failed to upload image"})
			}
			imageURL = url
		}

		item := &models.NewsItem{Title: title, Content: content, ImageURL: imageURL}
		if err := newsService.CreateNews(item); err != nil {
			return respondError(c, err)
		}
		return c.Status(201).JSON(item)
	})
}
