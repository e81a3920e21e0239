// handlers/stats.go
package handlers

import (
	"time"

	"pmquest/database"
	"pmquest/models"
	"pmquest/services"

	"github.com/gofiber/fiber/v2"
)

// GetOnlinePlayersCount returns the number of currently online players.
// WebSocket presence is the primary signal; recent HTTP activity is the
// fallback so the counter never reads zero while people are practicing.
func GetOnlinePlayersCount(c *fiber.Ctx) error {
	db := database.GetDB()
	if db == nil {
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Database not available",
		})
	}

	// Update current user's activity if authenticated
	userID := c.Locals("userId")
	if userID != nil {
		now := time.Now()
		db.Model(&models.User{}).Where("id = ?", userID).Update("last_login", now)
	}

	connected := services.Presence.Count()

	// Users active over plain HTTP in the last 5 minutes
	cutoffTime := time.Now().Add(-5 * time.Minute)
	var recentlyActive int64
	if err := db.Model(&models.User{}).Where("last_login > ?", cutoffTime).Count(&recentlyActive).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to get online players count",
		})
	}

	count := int64(connected)
	if recentlyActive > count {
		count = recentlyActive
	}

	return c.JSON(fiber.Map{
		"success":   true,
		"count":     count,
		"connected": connected,
	})
}

// GetLastPlayedTime returns when the current user last completed a session
func GetLastPlayedTime(c *fiber.Ctx) error {
	db := database.GetDB()
	if db == nil {
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Database not available",
		})
	}

	userID := c.Locals("userId")
	if userID == nil {
		return c.JSON(fiber.Map{
			"success":    true,
			"lastPlayed": "Never",
		})
	}

	var user models.User
	if err := db.Where("id = ?", userID).First(&user).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to get user data",
		})
	}

	if user.LastSessionDate.IsZero() {
		return c.JSON(fiber.Map{
			"success":    true,
			"lastPlayed": "Never",
		})
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"lastPlayed": user.LastSessionDate.Format("Jan 2, 2006 at 3:04 PM"),
	})
}

// GetGlobalStats returns aggregate platform numbers
func GetGlobalStats(c *fiber.Ctx) error {
	db := database.GetDB()

	var totalUsers, totalSessions int64
	db.Model(&models.User{}).Where("is_guest = ?", false).Count(&totalUsers)
	db.Model(&models.SessionRecord{}).Count(&totalSessions)

	var avgScore float64
	db.Model(&models.SessionRecord{}).Select("COALESCE(AVG(score), 0)").Scan(&avgScore)

	type SkillCount struct {
		SkillArea string `json:"skill_area"`
		Sessions  int64  `json:"sessions"`
	}
	var bySkill []SkillCount
	db.Model(&models.SessionRecord{}).
		Select("skill_area, COUNT(*) as sessions").
		Group("skill_area").
		Order("sessions DESC").
		Scan(&bySkill)

	return c.JSON(fiber.Map{
		"success":        true,
		"total_users":    totalUsers,
		"total_sessions": totalSessions,
		"average_score":  avgScore,
		"by_skill":       bySkill,
		"online":         services.Presence.Count(),
	})
}
