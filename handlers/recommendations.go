// handlers/recommendations.go
package handlers

import (
	"pmquest/database"
	"pmquest/middleware"
	"pmquest/models"
	"pmquest/services"

	"github.com/gofiber/fiber/v2"
)

// GetRecommendation returns a personalized study suggestion based on the
// user's recent session history.
func GetRecommendation(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	username, _ := middleware.GetUsername(c)

	db := database.GetDB()

	var records []models.SessionRecord
	if err := db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(10).
		Find(&records).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch session history"})
	}

	history := make([]services.SessionSummary, 0, len(records))
	for _, r := range records {
		history = append(history, services.SessionSummary{
			SkillArea:  r.SkillArea,
			Difficulty: r.Difficulty,
			Score:      r.Score,
		})
	}

	text, fromLLM := services.GetRecommendationService().Recommend(username, history)

	return c.JSON(fiber.Map{
		"success":        true,
		"recommendation": text,
		"generated":      fromLLM,
		"sessions_used":  len(history),
	})
}
