package handlers

import (
	"testing"
	"time"

	"pmquest/models"
)

func TestCalculateXPForLevel(t *testing.T) {
	tests := []struct {
		level int
		want  int
	}{
		{1, 100},
		{2, 282},
		{4, 800},
		{9, 2700},
	}

	for _, tt := range tests {
		if got := calculateXPForLevel(tt.level); got != tt.want {
			t.Errorf("calculateXPForLevel(%d) = %d, want %d", tt.level, got, tt.want)
		}
	}
}

func TestApplyLevelUps(t *testing.T) {
	user := models.User{Level: 1, XP: 300}

	gained := applyLevelUps(&user)

	// Level 2 costs 282, leaving 18, not enough for level 3 (519)
	if gained != 1 {
		t.Errorf("levels gained = %d, want 1", gained)
	}
	if user.Level != 2 {
		t.Errorf("level = %d, want 2", user.Level)
	}
	if user.XP != 18 {
		t.Errorf("remaining XP = %d, want 18", user.XP)
	}
}

func TestApplyLevelUpsMultiple(t *testing.T) {
	user := models.User{Level: 1, XP: 2000}

	gained := applyLevelUps(&user)

	if gained < 2 {
		t.Errorf("levels gained = %d, want at least 2", gained)
	}
	if user.XP < 0 {
		t.Errorf("XP went negative: %d", user.XP)
	}
}

func TestCalculateSessionXPDifficultyMultiplier(t *testing.T) {
	base := SessionResult{Score: 80, ExercisesCompleted: 4, Difficulty: "beginner"}
	intermediate := base
	intermediate.Difficulty = "intermediate"
	advanced := base
	advanced.Difficulty = "advanced"

	beginnerXP := calculateSessionXP(base)
	if beginnerXP != 120 {
		t.Errorf("beginner XP = %d, want 120", beginnerXP)
	}
	if got := calculateSessionXP(intermediate); got != 150 {
		t.Errorf("intermediate XP = %d, want 150", got)
	}
	if got := calculateSessionXP(advanced); got != 180 {
		t.Errorf("advanced XP = %d, want 180", got)
	}
}

func TestCalculateSessionXPPerfectBonus(t *testing.T) {
	result := SessionResult{Score: 90, ExercisesCompleted: 4, Difficulty: "beginner"}
	perfect := result
	perfect.IsPerfect = true

	if diff := calculateSessionXP(perfect) - calculateSessionXP(result); diff != 50 {
		t.Errorf("perfect bonus = %d, want 50", diff)
	}
}

func TestUpdateDailyStreak(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	t.Run("first session starts streak", func(t *testing.T) {
		user := models.User{}
		updateDailyStreak(&user, now)
		if user.CurrentStreak != 1 {
			t.Errorf("streak = %d, want 1", user.CurrentStreak)
		}
	})

	t.Run("same day keeps streak", func(t *testing.T) {
		user := models.User{CurrentStreak: 4, BestStreak: 4, LastSessionDate: now.Add(-2 * time.Hour)}
		updateDailyStreak(&user, now)
		if user.CurrentStreak != 4 {
			t.Errorf("streak = %d, want 4", user.CurrentStreak)
		}
	})

	t.Run("consecutive day extends streak", func(t *testing.T) {
		user := models.User{CurrentStreak: 4, BestStreak: 4, LastSessionDate: now.AddDate(0, 0, -1)}
		updateDailyStreak(&user, now)
		if user.CurrentStreak != 5 {
			t.Errorf("streak = %d, want 5", user.CurrentStreak)
		}
		if user.BestStreak != 5 {
			t.Errorf("best streak = %d, want 5", user.BestStreak)
		}
	})

	t.Run("gap resets streak", func(t *testing.T) {
		user := models.User{CurrentStreak: 9, BestStreak: 9, LastSessionDate: now.AddDate(0, 0, -3)}
		updateDailyStreak(&user, now)
		if user.CurrentStreak != 1 {
			t.Errorf("streak = %d, want 1", user.CurrentStreak)
		}
		if user.BestStreak != 9 {
			t.Errorf("best streak = %d, want 9", user.BestStreak)
		}
	})

	t.Run("local midnight boundary counts as consecutive", func(t *testing.T) {
		// UTC+10: 23:30 yesterday and 00:30 today fall in the same UTC 24h
		// bucket, but are different local calendar days.
		zone := time.FixedZone("UTC+10", 10*60*60)
		lastNight := time.Date(2026, 8, 29, 23, 30, 0, 0, zone)
		afterMidnight := time.Date(2026, 8, 30, 0, 30, 0, 0, zone)

		user := models.User{CurrentStreak: 2, BestStreak: 2, LastSessionDate: lastNight}
		updateDailyStreak(&user, afterMidnight)
		if user.CurrentStreak != 3 {
			t.Errorf("streak = %d, want 3", user.CurrentStreak)
		}
	})
}
