// handlers/users.go
package handlers

import (
	"pmquest/database"
	"pmquest/middleware"
	"pmquest/models"

	"github.com/gofiber/fiber/v2"
)

// GetMe returns the authenticated user's profile
func GetMe(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	db := database.GetDB()
	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "User not found"})
	}

	user.Password = ""

	return c.JSON(fiber.Map{
		"success": true,
		"user":    user,
	})
}

// UpdateProfile updates the authenticated user's profile fields
func UpdateProfile(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	var updateData struct {
		DisplayName string `json:"display_name"`
		Avatar      string `json:"avatar"`
		Bio         string `json:"bio"`
	}

	if err := c.BodyParser(&updateData); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	db := database.GetDB()
	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "User not found"})
	}

	if updateData.DisplayName != "" {
		user.DisplayName = updateData.DisplayName
	}
	if updateData.Avatar != "" {
		user.Avatar = updateData.Avatar
	}
	if updateData.Bio != "" {
		user.Bio = updateData.Bio
	}

	if err := db.Save(&user).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update user"})
	}

	user.Password = ""

	return c.JSON(fiber.Map{
		"success": true,
		"user":    user,
	})
}

// GetUserStats returns the authenticated user's per-skill statistics and
// recent sessions.
func GetUserStats(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	db := database.GetDB()
	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "User not found"})
	}

	type SkillStats struct {
		SkillArea    string  `json:"skill_area"`
		Sessions     int64   `json:"sessions"`
		AverageScore float64 `json:"average_score"`
		BestScore    int     `json:"best_score"`
	}

	var bySkill []SkillStats
	db.Model(&models.SessionRecord{}).
		Select("skill_area, COUNT(*) as sessions, AVG(score) as average_score, MAX(score) as best_score").
		Where("user_id = ?", userID).
		Group("skill_area").
		Scan(&bySkill)

	var recent []models.SessionRecord
	db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(10).
		Find(&recent)

	return c.JSON(fiber.Map{
		"success":          true,
		"level":            user.Level,
		"xp":               user.XP,
		"total_sessions":   user.TotalSessions,
		"perfect_sessions": user.PerfectSessions,
		"best_score":       user.BestScore,
		"current_streak":   user.CurrentStreak,
		"best_streak":      user.BestStreak,
		"by_skill":         bySkill,
		"recent_sessions":  recent,
	})
}

// GetUserByID returns a public view of another user's profile
func GetUserByID(c *fiber.Ctx) error {
	id := c.Params("id")

	db := database.GetDB()
	var user models.User
	if err := db.First(&user, id).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "User not found"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"user": fiber.Map{
			"id":               user.ID,
			"username":         user.Username,
			"display_name":     user.DisplayName,
			"avatar":           user.Avatar,
			"bio":              user.Bio,
			"level":            user.Level,
			"total_sessions":   user.TotalSessions,
			"perfect_sessions": user.PerfectSessions,
			"best_score":       user.BestScore,
			"best_streak":      user.BestStreak,
			"created_at":       user.CreatedAt,
		},
	})
}

// SearchUsers finds users by username with pagination
func SearchUsers(c *fiber.Ctx) error {
	search := c.Query("q", "")
	page := maxInt(c.QueryInt("page", 1), 1)
	limit := clampInt(c.QueryInt("limit", 20), 1, 100)
	offset := (page - 1) * limit

	db := database.GetDB()

	var users []models.User
	var total int64

	query := db.Model(&models.User{}).Where("is_guest = ?", false)
	if search != "" {
		query = query.Where("username LIKE ? OR display_name LIKE ?", "%"+search+"%", "%"+search+"%")
	}

	query.Count(&total)

	if err := query.Offset(offset).Limit(limit).Find(&users).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch users"})
	}

	for i := range users {
		users[i].Password = ""
		users[i].Email = nil
	}

	return c.JSON(fiber.Map{
		"success": true,
		"users":   users,
		"total":   total,
		"page":    page,
		"limit":   limit,
	})
}
