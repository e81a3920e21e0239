// handlers/progression.go
package handlers

import (
	"math"
	"pmquest/database"
	"pmquest/middleware"
	"pmquest/models"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type AwardXPRequest struct {
	Amount int    `json:"amount"`
	Reason string `json:"reason"`
}

// SessionResult carries the outcome of one completed session into the
// progression logic (XP calculation and achievement checks).
type SessionResult struct {
	SkillArea          string
	Difficulty         string
	Score              int
	ExercisesCompleted int
	TotalExercises     int
	TimeElapsed        int
	IsPerfect          bool
	AllExcellent       bool
}

func AwardXP(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	var req AwardXPRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if req.Amount <= 0 {
		return c.Status(400).JSON(fiber.Map{"error": "XP amount must be positive"})
	}

	db := database.GetDB()
	var user models.User

	if err := db.First(&user, userID).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "User not found"})
	}

	oldLevel := user.Level
	user.XP += req.Amount

	levelsGained := applyLevelUps(&user)

	if err := db.Save(&user).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update user"})
	}

	return c.JSON(fiber.Map{
		"success":          true,
		"xp_awarded":       req.Amount,
		"new_level":        user.Level,
		"leveled_up":       user.Level > oldLevel,
		"levels_gained":    levelsGained,
		"current_xp":       user.XP,
		"xp_to_next_level": calculateXPForLevel(user.Level + 1),
		"reason":           req.Reason,
	})
}

func GetProgression(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	db := database.GetDB()
	var user models.User

	if err := db.First(&user, userID).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "User not found"})
	}

	xpToNext := calculateXPForLevel(user.Level + 1)
	progress := (float64(user.XP) / float64(xpToNext)) * 100

	return c.JSON(fiber.Map{
		"success":          true,
		"level":            user.Level,
		"xp":               user.XP,
		"xp_to_next_level": xpToNext,
		"progress_percent": progress,
		"total_sessions":   user.TotalSessions,
		"perfect_sessions": user.PerfectSessions,
		"best_score":       user.BestScore,
		"current_streak":   user.CurrentStreak,
		"best_streak":      user.BestStreak,
	})
}

func GetUserAchievements(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	db := database.GetDB()

	var unlocked []models.UserAchievement
	if err := db.Preload("Achievement").Where("user_id = ?", userID).Order("unlocked_at DESC").Find(&unlocked).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch achievements"})
	}

	var allAchievements []models.Achievement
	if err := db.Find(&allAchievements).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch all achievements"})
	}

	unlockedMap := make(map[uint]models.UserAchievement)
	for _, ua := range unlocked {
		unlockedMap[ua.AchievementID] = ua
	}

	achievements := make([]fiber.Map, 0, len(allAchievements))
	for _, achievement := range allAchievements {
		achData := fiber.Map{
			"id":          achievement.ID,
			"name":        achievement.Name,
			"description": achievement.Description,
			"category":    achievement.Category,
			"tier":        achievement.Tier,
			"icon":        achievement.Icon,
			"xp_reward":   achievement.XPReward,
			"unlocked":    false,
		}

		if ua, ok := unlockedMap[achievement.ID]; ok {
			achData["unlocked"] = true
			achData["unlocked_at"] = ua.UnlockedAt
		}

		achievements = append(achievements, achData)
	}

	return c.JSON(fiber.Map{
		"success":      true,
		"achievements": achievements,
		"total":        len(allAchievements),
		"unlocked":     len(unlocked),
	})
}

// calculateSessionXP converts a session result into an XP award.
func calculateSessionXP(result SessionResult) int {
	xp := result.Score
	xp += result.ExercisesCompleted * 10

	if result.IsPerfect {
		xp += 50
	}

	switch result.Difficulty {
	case "intermediate":
		xp = int(float64(xp) * 1.25)
	case "advanced":
		xp = int(float64(xp) * 1.5)
	}

	return xp
}

func calculateXPForLevel(level int) int {
	return int(100 * math.Pow(float64(level), 1.5))
}

// applyLevelUps consumes banked XP into level-ups and returns the number of
// levels gained.
func applyLevelUps(user *models.User) int {
	levelsGained := 0
	for {
		xpNeeded := calculateXPForLevel(user.Level + 1)
		if user.XP >= xpNeeded {
			user.Level++
			user.XP -= xpNeeded
			levelsGained++
		} else {
			break
		}
	}
	return levelsGained
}

// updateDailyStreak adjusts the learning streak based on the date of the
// user's last completed session. Same-day sessions keep the streak,
// consecutive days extend it, gaps reset it to 1.
func updateDailyStreak(user *models.User, now time.Time) {
	// Compare calendar dates in the caller's zone. Truncating to 24h buckets
	// would pin day boundaries to UTC epoch midnights instead.
	today := startOfDay(now)
	last := startOfDay(user.LastSessionDate.In(now.Location()))

	switch {
	case user.LastSessionDate.IsZero():
		user.CurrentStreak = 1
	case last.Equal(today):
		// Already played today, streak unchanged
	case last.Equal(today.AddDate(0, 0, -1)):
		user.CurrentStreak++
	default:
		user.CurrentStreak = 1
	}

	if user.CurrentStreak > user.BestStreak {
		user.BestStreak = user.CurrentStreak
	}
	user.LastSessionDate = now
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func checkAchievements(user *models.User, result SessionResult, tx *gorm.DB) []models.Achievement {
	newAchievements := []models.Achievement{}

	var allAchievements []models.Achievement
	tx.Find(&allAchievements)

	var unlockedIDs []uint
	tx.Model(&models.UserAchievement{}).Where("user_id = ?", user.ID).Pluck("achievement_id", &unlockedIDs)

	unlockedMap := make(map[uint]bool)
	for _, id := range unlockedIDs {
		unlockedMap[id] = true
	}

	for _, achievement := range allAchievements {
		if unlockedMap[achievement.ID] {
			continue
		}

		unlocked := false

		switch achievement.Category {
		case "Performance":
			unlocked = checkPerformanceAchievement(achievement, user, result)
		case "Streak":
			unlocked = checkStreakAchievement(achievement, user)
		case "Completion":
			unlocked = checkCompletionAchievement(achievement, user)
		case "Skill":
			unlocked = checkSkillAchievement(achievement, user, tx)
		case "Special":
			unlocked = checkSpecialAchievement(achievement, user, result, tx)
		}

		if unlocked {
			userAchievement := models.UserAchievement{
				UserID:        user.ID,
				AchievementID: achievement.ID,
				UnlockedAt:    time.Now(),
			}
			tx.Create(&userAchievement)

			user.XP += achievement.XPReward

			newAchievements = append(newAchievements, achievement)
		}
	}

	if len(newAchievements) > 0 {
		tx.Save(user)
	}

	return newAchievements
}

func checkPerformanceAchievement(achievement models.Achievement, user *models.User, result SessionResult) bool {
	switch achievement.Name {
	case "Sharp Call":
		return result.Score >= 90
	case "Peak Performance":
		return result.Score >= 95
	case "Flawless Run":
		return result.AllExcellent
	}
	return false
}

func checkStreakAchievement(achievement models.Achievement, user *models.User) bool {
	switch achievement.Name {
	case "Warming Up":
		return user.CurrentStreak >= 3
	case "Habit Formed":
		return user.CurrentStreak >= 7
	case "Unstoppable":
		return user.CurrentStreak >= 30
	}
	return false
}

func checkCompletionAchievement(achievement models.Achievement, user *models.User) bool {
	switch achievement.Name {
	case "First Steps":
		return user.TotalSessions >= 1
	case "Getting Serious":
		return user.TotalSessions >= 10
	case "Practitioner":
		return user.TotalSessions >= 50
	}
	return false
}

func checkSkillAchievement(achievement models.Achievement, user *models.User, tx *gorm.DB) bool {
	skillByName := map[string]string{
		"Strategist":       "strategy",
		"Field Researcher": "research",
		"Data Whisperer":   "analytics",
		"Design Partner":   "design",
	}

	skill, ok := skillByName[achievement.Name]
	if !ok {
		return false
	}

	var count int64
	tx.Model(&models.SessionRecord{}).Where("user_id = ? AND skill_area = ?", user.ID, skill).Count(&count)
	return count >= 10
}

func checkSpecialAchievement(achievement models.Achievement, user *models.User, result SessionResult, tx *gorm.DB) bool {
	switch achievement.Name {
	case "Renaissance PM":
		var uniqueSkills int64
		tx.Model(&models.SessionRecord{}).Where("user_id = ?", user.ID).Distinct("skill_area").Count(&uniqueSkills)
		return uniqueSkills >= 4
	case "Deep End":
		return result.Difficulty == "advanced" && result.Score >= 85
	}
	return false
}
