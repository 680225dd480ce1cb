package handlers

import (
	"tournament-hub/models"
	"tournament-hub/services"

	"github.com/gofiber/fiber/v2"
)

func SetupTeamRoutes(app *fiber.App, teamService *services.TeamService) {
	api := app.Group("/api")

	api.Get("/teams", func(c *fiber.Ctx) error {
		teams, err := teamService.ListTeams()
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(teams)
	})

	api.Get("/user/:id/team", func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "invalid user id"})
		}
		team, err := teamService.TeamByLeader(uint(id))
		if err != nil {
			return respondError(c, err)
		}
		if team == nil {
			return c.JSON(nil)
		}
		return c.JSON(team)
	})

	api.Post("/teams", func(c *fiber.Ctx) error {
		type Req struct {
			Name     string `json:"name"`
			Tag      string `json:"tag"`
			LeaderID *uint  `json:"leader_id"`
			LogoURL  string `json:"logo_url"`
		}
		var req Req
		if err := c.BodyParser(&req); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "invalid JSON"})
		}
		if req.Name == "" {
			return c.Status(400).JSON(fiber.Map{"error": "name is required"})
		}

		team := &models.Team{
			Name:     req.Name,
			Tag:      req.Tag,
			LeaderID: req.LeaderID,
			LogoURL:  req.LogoURL,
		}
		if err := teamService.CreateTeam(team); err != nil {
			return respondError(c, err)
		}
		return c.JSON(team)
	})
}
