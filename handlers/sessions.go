// handlers/sessions.go - Learning session lifecycle
package handlers

import (
	"encoding/json"
	"time"

	"pmquest/challenge"
	"pmquest/database"
	"pmquest/middleware"
	"pmquest/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type StartSessionRequest struct {
	SkillArea  string `json:"skill_area"`
	Difficulty string `json:"difficulty"`
	Count      int    `json:"count"`
}

type SubmitAnswerRequest struct {
	ChallengeID   string `json:"challenge_id"`
	QuestionTitle string `json:"question_title"`
	Answer        string `json:"answer"`
	TimeSpent     int    `json:"time_spent"`
}

type CompleteSessionRequest struct {
	Answers     []models.StoredAnswer `json:"answers,omitempty"`
	TimeElapsed int                   `json:"time_elapsed"`
}

// StartSession selects a set of challenges and persists the session state so
// a page refresh can restore it. Any previous active session is abandoned.
func StartSession(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	var req StartSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	count := req.Count
	if count <= 0 {
		count = challenge.DefaultSessionSize
	}
	if count > 10 {
		count = 10
	}

	// Unknown skill or difficulty falls back inside the selector.
	skill := challenge.SkillArea(req.SkillArea)
	difficulty := challenge.Difficulty(req.Difficulty)

	engineMu.Lock()
	instances, err := selector.SelectSession(skill, difficulty, count)
	engineMu.Unlock()
	if err != nil {
		return c.Status(503).JSON(fiber.Map{
			"success": false,
			"error":   "No challenges available",
		})
	}

	challengesJSON, err := json.Marshal(instances)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to encode challenges"})
	}

	db := database.GetDB()

	// One active session per user
	db.Model(&models.ActiveSessionState{}).
		Where("user_id = ? AND status = ?", userID, "active").
		Update("status", "abandoned")

	now := time.Now()
	state := models.ActiveSessionState{
		SessionID:      uuid.New().String(),
		UserID:         userID,
		SkillArea:      string(instances[0].SkillArea),
		Difficulty:     string(instances[0].Difficulty),
		TotalExercises: len(instances),
		TimeLimit:      challenge.SessionTimeLimitSeconds,
		Status:         "active",
		StartedAt:      now,
		UpdatedAt:      now,
		ExpiresAt:      now.Add(24 * time.Hour),
	}
	state.SetChallengesRaw(challengesJSON)

	if err := db.Create(&state).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create session"})
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"session_id": state.SessionID,
		"skill_area": state.SkillArea,
		"difficulty": state.Difficulty,
		"time_limit": state.TimeLimit,
		"challenges": instances,
		"count":      len(instances),
	})
}

// GetActiveSession restores the user's in-flight session, if any.
func GetActiveSession(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	db := database.GetDB()

	var state models.ActiveSessionState
	if err := db.Where("user_id = ? AND status = ? AND expires_at > ?", userID, "active", time.Now()).
		Order("started_at DESC").First(&state).Error; err != nil {
		return c.JSON(fiber.Map{
			"success": true,
			"active":  false,
		})
	}

	snapshot, err := state.CreateSnapshot()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to restore session"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"active":  true,
		"session": snapshot,
	})
}

// SubmitAnswer records one answer mid-session and grades it immediately.
func SubmitAnswer(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	sessionID := c.Params("id")

	var req SubmitAnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	db := database.GetDB()

	var state models.ActiveSessionState
	if err := db.Where("session_id = ? AND user_id = ? AND status = ?", sessionID, userID, "active").
		First(&state).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Session not found"})
	}

	instances, err := decodeInstances(&state)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to decode session challenges"})
	}

	answers, err := state.GetAnswers()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to decode session answers"})
	}

	stored := models.StoredAnswer{
		ChallengeID:   req.ChallengeID,
		QuestionTitle: req.QuestionTitle,
		Answer:        req.Answer,
		TimeSpent:     req.TimeSpent,
	}

	// Grade now so the client can show the quality badge immediately
	idx := len(answers)
	qs := gradeAnswer(instances, stored, idx)
	stored.Quality = string(qs.Quality)
	stored.IsCorrect = qs.Quality == challenge.QualityExcellent

	answers = append(answers, stored)
	if err := state.SetAnswers(answers); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to encode answers"})
	}

	state.CurrentExerciseIndex = len(answers)
	state.UpdatedAt = time.Now()

	if err := db.Save(&state).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to save session"})
	}

	return c.JSON(fiber.Map{
		"success":        true,
		"quality":        qs.Quality,
		"score":          qs.Score,
		"exercise_index": state.CurrentExerciseIndex,
		"remaining":      state.TotalExercises - state.CurrentExerciseIndex,
	})
}

// CompleteSession grades the full session, synthesizes feedback, awards XP,
// and records the result.
func CompleteSession(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	sessionID := c.Params("id")

	var req CompleteSessionRequest
	_ = c.BodyParser(&req)

	db := database.GetDB()

	var state models.ActiveSessionState
	if err := db.Where("session_id = ? AND user_id = ? AND status = ?", sessionID, userID, "active").
		First(&state).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Session not found"})
	}

	instances, err := decodeInstances(&state)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to decode session challenges"})
	}

	// Server-stored answers are authoritative; a client payload is only a
	// fallback for sessions that never hit the answer endpoint, and it is
	// stripped of any grading fields so everything gets graded here.
	stored, err := state.GetAnswers()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to decode session answers"})
	}
	if len(stored) == 0 {
		stored = sanitizeClientAnswers(req.Answers)
	}

	skill := challenge.SkillArea(state.SkillArea)
	difficulty := challenge.Difficulty(state.Difficulty)

	// Grade every answer and build the synthesizer input
	sessionAnswers := make([]challenge.SessionAnswer, 0, len(stored))
	scoreEntries := make([]models.ExerciseScoreEntry, 0, len(stored))
	allExcellent := len(stored) > 0
	for i, sa := range stored {
		answer := challenge.SessionAnswer{
			QuestionTitle: sa.QuestionTitle,
			Answer:        sa.Answer,
			Quality:       challenge.Quality(sa.Quality),
			IsCorrect:     sa.IsCorrect,
		}

		if answer.Completed() && answer.Quality == "" {
			qs := gradeAnswer(instances, sa, i)
			answer.Quality = qs.Quality
			answer.IsCorrect = qs.Quality == challenge.QualityExcellent
		}

		if answer.Quality != challenge.QualityExcellent {
			allExcellent = false
		}

		sessionAnswers = append(sessionAnswers, answer)
		scoreEntries = append(scoreEntries, models.ExerciseScoreEntry{
			QuestionTitle: sa.QuestionTitle,
			UserAnswer:    sa.Answer,
			IsCorrect:     answer.IsCorrect,
			Score:         challenge.QualityValue(answer.Quality),
		})
	}

	// Previous score in the same skill area drives the progress statement
	var previousScore *int
	var lastRecord models.SessionRecord
	if err := db.Where("user_id = ? AND skill_area = ?", userID, state.SkillArea).
		Order("created_at DESC").First(&lastRecord).Error; err == nil {
		previousScore = &lastRecord.Score
	}

	engineMu.Lock()
	feedback := synthesizer.Synthesize(sessionAnswers, skill, difficulty, state.TotalExercises, previousScore)
	engineMu.Unlock()

	completed := 0
	for _, a := range sessionAnswers {
		if a.Completed() {
			completed++
		}
	}

	isPerfect := allExcellent && completed == state.TotalExercises

	result := SessionResult{
		SkillArea:          state.SkillArea,
		Difficulty:         state.Difficulty,
		Score:              feedback.Score,
		ExercisesCompleted: completed,
		TotalExercises:     state.TotalExercises,
		TimeElapsed:        req.TimeElapsed,
		IsPerfect:          isPerfect,
		AllExcellent:       allExcellent,
	}

	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "User not found"})
	}

	xp := calculateSessionXP(result)

	tx := db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	user.TotalSessions++
	if isPerfect {
		user.PerfectSessions++
	}
	if feedback.Score > user.BestScore {
		user.BestScore = feedback.Score
	}
	updateDailyStreak(&user, time.Now())

	oldLevel := user.Level
	user.XP += xp
	applyLevelUps(&user)

	if err := tx.Save(&user).Error; err != nil {
		tx.Rollback()
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update user"})
	}

	record := models.SessionRecord{
		UserID:             userID,
		SessionID:          state.SessionID,
		SkillArea:          state.SkillArea,
		Difficulty:         state.Difficulty,
		Score:              feedback.Score,
		ExercisesCompleted: completed,
		TotalExercises:     state.TotalExercises,
		TimeElapsed:        req.TimeElapsed,
		IsPerfect:          isPerfect,
		XPEarned:           xp,
	}
	if err := record.SetExerciseScores(scoreEntries); err != nil {
		tx.Rollback()
		return c.Status(500).JSON(fiber.Map{"error": "Failed to encode exercise scores"})
	}

	if err := tx.Create(&record).Error; err != nil {
		tx.Rollback()
		return c.Status(500).JSON(fiber.Map{"error": "Failed to record session"})
	}

	newAchievements := checkAchievements(&user, result, tx)

	if err := tx.Model(&models.ActiveSessionState{}).
		Where("id = ?", state.ID).
		Updates(map[string]interface{}{"status": "completed", "updated_at": time.Now()}).Error; err != nil {
		tx.Rollback()
		return c.Status(500).JSON(fiber.Map{"error": "Failed to close session"})
	}

	if err := tx.Commit().Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to commit transaction"})
	}

	return c.JSON(fiber.Map{
		"success":          true,
		"feedback":         feedback,
		"xp_earned":        xp,
		"new_level":        user.Level,
		"leveled_up":       user.Level > oldLevel,
		"current_xp":       user.XP,
		"xp_to_next_level": calculateXPForLevel(user.Level + 1),
		"current_streak":   user.CurrentStreak,
		"best_streak":      user.BestStreak,
		"is_perfect":       isPerfect,
		"new_achievements": newAchievements,
	})
}

// AbandonSession closes an active session without recording a result.
func AbandonSession(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	sessionID := c.Params("id")

	db := database.GetDB()
	res := db.Model(&models.ActiveSessionState{}).
		Where("session_id = ? AND user_id = ? AND status = ?", sessionID, userID, "active").
		Updates(map[string]interface{}{"status": "abandoned", "updated_at": time.Now()})

	if res.RowsAffected == 0 {
		return c.Status(404).JSON(fiber.Map{"error": "Session not found"})
	}

	return c.JSON(fiber.Map{"success": true})
}

// Helpers

// sanitizeClientAnswers drops any grading fields a client may have set on a
// completion payload. Quality and correctness are always assigned server-side.
func sanitizeClientAnswers(answers []models.StoredAnswer) []models.StoredAnswer {
	clean := make([]models.StoredAnswer, 0, len(answers))
	for _, sa := range answers {
		sa.Quality = ""
		sa.IsCorrect = false
		clean = append(clean, sa)
	}
	return clean
}

func decodeInstances(state *models.ActiveSessionState) ([]challenge.Instance, error) {
	raw, err := state.GetChallenges()
	if err != nil {
		return nil, err
	}

	instances := make([]challenge.Instance, 0, len(raw))
	for _, r := range raw {
		var inst challenge.Instance
		if err := json.Unmarshal(r, &inst); err != nil {
			return nil, err
		}
		instances = append(instances, inst)
	}
	return instances, nil
}

// gradeAnswer resolves the quality of a stored answer against the challenge it
// belongs to. When the chosen option cannot be matched, the answer text itself
// feeds the deterministic fallback so regrades stay stable.
func gradeAnswer(instances []challenge.Instance, sa models.StoredAnswer, exerciseIndex int) challenge.QualityScore {
	for _, inst := range instances {
		if inst.ID != sa.ChallengeID {
			continue
		}
		if opt, idx, ok := findOption(inst.Content, sa.Answer); ok {
			return challenge.ResolveQuality(opt, idx)
		}
		break
	}
	return challenge.ResolveQuality(challenge.Option{ID: sa.ChallengeID, Text: sa.Answer}, exerciseIndex)
}

// findOption locates the option the answer refers to, matching by option ID
// first and text second, across every content variant.
func findOption(content challenge.Content, answer string) (challenge.Option, int, bool) {
	var pools [][]challenge.Option

	switch {
	case content.MultipleChoice != nil:
		pools = append(pools, content.MultipleChoice.Options)
	case content.DragDrop != nil:
		pools = append(pools, content.DragDrop.Options)
	case content.Slider != nil:
		pools = append(pools, content.Slider.Options)
	case content.Ranking != nil:
		pools = append(pools, content.Ranking.Options)
	case content.Dialogue != nil:
		pools = append(pools, content.Dialogue.Options, dialogueOptions(content.Dialogue.Root))
	}

	for _, pool := range pools {
		for i, opt := range pool {
			if opt.ID == answer {
				return opt, i, true
			}
		}
		for i, opt := range pool {
			if opt.Text == answer {
				return opt, i, true
			}
		}
	}
	return challenge.Option{}, 0, false
}

// dialogueOptions flattens a conversation tree into gradeable options.
func dialogueOptions(node challenge.DialogueNode) []challenge.Option {
	var options []challenge.Option
	for _, resp := range node.Responses {
		options = append(options, challenge.Option{
			ID:           resp.ID,
			Text:         resp.Text,
			Quality:      resp.Quality,
			Consequences: resp.Consequences,
		})
		if resp.Next != nil {
			options = append(options, dialogueOptions(*resp.Next)...)
		}
	}
	return options
}
