// handlers/leaderboard.go
package handlers

import (
	"pmquest/database"
	"pmquest/models"

	"github.com/gofiber/fiber/v2"
)

// GetLeaderboard returns the global leaderboard
// GET /api/leaderboard?category=level&limit=100&offset=0
func GetLeaderboard(c *fiber.Ctx) error {
	category := c.Query("category", "level")
	limit := clampInt(c.QueryInt("limit", 100), 1, 100)
	offset := maxInt(c.QueryInt("offset", 0), 0)

	db := database.GetDB()
	var users []models.User

	if err := db.Where("is_guest = ?", false).
		Order(leaderboardOrder(category)).
		Limit(limit).
		Offset(offset).
		Find(&users).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch leaderboard"})
	}

	// Remove sensitive data
	for i := range users {
		users[i].Password = ""
		users[i].Email = nil
	}

	var total int64
	db.Model(&models.User{}).Where("is_guest = ?", false).Count(&total)

	return c.JSON(fiber.Map{
		"success":  true,
		"users":    users,
		"category": category,
		"total":    total,
		"limit":    limit,
		"offset":   offset,
	})
}

// GetSkillLeaderboard ranks users by average score within one skill area
// GET /api/leaderboard/skill/:skill?limit=100&offset=0
func GetSkillLeaderboard(c *fiber.Ctx) error {
	skill := c.Params("skill")
	limit := clampInt(c.QueryInt("limit", 100), 1, 100)
	offset := maxInt(c.QueryInt("offset", 0), 0)

	db := database.GetDB()

	type SkillEntry struct {
		UserID       uint    `json:"user_id"`
		Username     string  `json:"username"`
		Avatar       string  `json:"avatar"`
		Level        int     `json:"level"`
		Sessions     int64   `json:"sessions"`
		AverageScore float64 `json:"average_score"`
		BestScore    int     `json:"best_score"`
	}

	var entries []SkillEntry

	db.Raw(`
		SELECT
			u.id as user_id,
			u.username,
			u.avatar,
			u.level,
			COUNT(s.id) as sessions,
			AVG(s.score) as average_score,
			MAX(s.score) as best_score
		FROM users u
		JOIN session_records s ON s.user_id = u.id
		WHERE u.is_guest = false AND s.skill_area = ?
		GROUP BY u.id, u.username, u.avatar, u.level
		ORDER BY average_score DESC, sessions DESC
		LIMIT ? OFFSET ?
	`, skill, limit, offset).Scan(&entries)

	return c.JSON(fiber.Map{
		"success":    true,
		"skill_area": skill,
		"entries":    entries,
		"limit":      limit,
		"offset":     offset,
	})
}

// GetUserRank returns a user's rank in the leaderboard
// GET /api/leaderboard/user/:id?category=level
func GetUserRank(c *fiber.Ctx) error {
	userID := c.Params("id")
	category := c.Query("category", "level")

	db := database.GetDB()
	var user models.User

	if err := db.Where("id = ? OR username = ?", userID, userID).First(&user).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "User not found"})
	}

	var rank int64

	switch category {
	case "xp":
		db.Raw("SELECT COUNT(*) + 1 FROM users WHERE is_guest = false AND (xp > ? OR (xp = ? AND total_sessions < ?))",
			user.XP, user.XP, user.TotalSessions).Scan(&rank)
	case "score":
		db.Raw("SELECT COUNT(*) + 1 FROM users WHERE is_guest = false AND (best_score > ? OR (best_score = ? AND level > ?))",
			user.BestScore, user.BestScore, user.Level).Scan(&rank)
	case "streak":
		db.Raw("SELECT COUNT(*) + 1 FROM users WHERE is_guest = false AND best_streak > ?",
			user.BestStreak).Scan(&rank)
	case "sessions":
		db.Raw("SELECT COUNT(*) + 1 FROM users WHERE is_guest = false AND total_sessions > ?",
			user.TotalSessions).Scan(&rank)
	default: // level
		db.Raw("SELECT COUNT(*) + 1 FROM users WHERE is_guest = false AND (level > ? OR (level = ? AND xp > ?))",
			user.Level, user.Level, user.XP).Scan(&rank)
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"user_id":  user.ID,
		"username": user.Username,
		"rank":     rank,
		"category": category,
	})
}

// GetLeaderboardAroundUser returns entries around a specific user
// GET /api/leaderboard/around/:id?category=level&context=5
func GetLeaderboardAroundUser(c *fiber.Ctx) error {
	userID := c.Params("id")
	category := c.Query("category", "level")
	contextN := clampInt(c.QueryInt("context", 5), 1, 20)

	db := database.GetDB()
	var user models.User

	if err := db.Where("id = ? OR username = ?", userID, userID).First(&user).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "User not found"})
	}

	var users []models.User

	db.Raw(`
		WITH ranked_users AS (
			SELECT *, ROW_NUMBER() OVER (ORDER BY `+leaderboardOrder(category)+`) as rank
			FROM users
			WHERE is_guest = false
		),
		target_rank AS (
			SELECT rank FROM ranked_users WHERE id = ?
		)
		SELECT * FROM ranked_users
		WHERE rank BETWEEN (SELECT rank FROM target_rank) - ? AND (SELECT rank FROM target_rank) + ?
		ORDER BY rank
	`, user.ID, contextN, contextN).Scan(&users)

	for i := range users {
		users[i].Password = ""
		users[i].Email = nil
	}

	return c.JSON(fiber.Map{
		"success":     true,
		"users":       users,
		"target_user": user.ID,
		"category":    category,
		"context":     contextN,
	})
}

// helpers

func leaderboardOrder(category string) string {
	switch category {
	case "xp":
		return "xp DESC, total_sessions ASC"
	case "score":
		return "best_score DESC, level DESC"
	case "streak":
		return "best_streak DESC"
	case "sessions":
		return "total_sessions DESC"
	default: // level
		return "level DESC, xp DESC"
	}
}

func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
