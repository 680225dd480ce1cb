package handlers

import (
	"path/filepath"
	"strconv"
	"time"

	"tournament-hub/models"
	"tournament-hub/services"
	"tournament-hub/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func SetupTournamentRoutes(app *fiber.App, tournamentService *services.TournamentService) {
	api := app.Group("/api")

	api.Get("/tournaments", func(c *fiber.Ctx) error {
		tournaments, err := tournamentService.ListTournaments()
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(tournaments)
	})

	api.Get("/tournaments/:id", func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "invalid tournament id"})
		}
		tournament, err := tournamentService.GetTournament(uint(id))
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(tournament)
	})

	api.Post("/join-tournament", func(c *fiber.Ctx) error {
		type Req struct {
			UserID       uint `json:"userId"`
			TournamentID uint `json:"tournamentId"`
		}
		var req Req
		if err := c.BodyParser(&req); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "invalid JSON"})
		}

		newBalance, err := tournamentService.JoinTournament(req.UserID, req.TournamentID)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(fiber.Map{"success": true, "newBalance": newBalance})
	})

	api.Get("/user/:id/tournaments", func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "invalid user id"})
		}
		tournaments, err := tournamentService.ListUserTournaments(uint(id))
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(tournaments)
	})

	api.Get("/leaderboard", func(c *fiber.Ctx) error {
		limit := c.QueryInt("limit", 10)
		entries, err := tournamentService.Leaderboard(limit)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(entries)
	})

	// Admin path: tournaments are normally created and closed out here,
	// not by players.
	admin := api.Group("/admin")

	admin.Post("/tournaments", func(c *fiber.Ctx) error {
		title := c.FormValue("title")
		startTimeStr := c.FormValue("start_time")
		if title == "" || startTimeStr == "" {
			return c.Status(400).JSON(fiber.Map{"error": "title and start_time are required"})
		}
		startTime, err := time.Parse(time.RFC3339, startTimeStr)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "invalid start_time (use RFC3339)"})
		}

		maxPlayers, err := strconv.Atoi(c.FormValue("max_players"))
		if err != nil || maxPlayers <= 0 {
			return c.Status(400).JSON(fiber.Map{"error": "max_players must be a positive integer"})
		}

		entryFee := 0.0
		if v := c.FormValue("entry_fee"); v != "" {
			if entryFee, err = strconv.ParseFloat(v, 64); err != nil || entryFee < 0 {
				return c.Status(400).JSON(fiber.Map{"error": "entry_fee must be a non-negative number"})
			}
		}
		prizePool := 0.0
		if v := c.FormValue("prize_pool"); v != "" {
			if prizePool, err = strconv.ParseFloat(v, 64); err != nil || prizePool < 0 {
				return c.Status(400).JSON(fiber.Map{"error": "prize_pool must be a non-negative number"})
			}
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
			key := "tournaments/" + uuid.NewString() + ext
			url, err := utils.UploadImage(image, key)
			if err != nil {
				return c.Status(500).JSON(fiber.Map{"error": "failed to upload image"})
			}
			imageURL = url
		}

		tournament := &models.Tournament{
			Title:       title,
			EntryFee:    entryFee,
			PrizePool:   prizePool,
			StartTime:   startTime,
			Map:         c.FormValue("map"),
			Mode:        c.FormValue("mode"),
			MaxPlayers:  maxPlayers,
			Description: c.FormValue("description"),
			Rules:       c.FormValue("rules"),
			ImageURL:    imageURL,
		}
		if err := tournamentService.CreateTournament(tournament); err != nil {
			return respondError(c, err)
		}
		return c.Status(201).JSON(tournament)
	})

	admin.Patch("/tournaments/:id/status", func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "invalid tournament id"})
		}
		type Req struct {
			Status string `json:"status"`
		}
		var req Req
		if err := c.BodyParser(&req); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "invalid JSON"})
		}
		tournament, err := tournamentService.UpdateStatus(uint(id), req.Status)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(tournament)
	})
}
