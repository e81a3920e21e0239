// models/models.go - Core Models
package models

import (
	"encoding/json"
	"time"
)

// SessionRecord represents one completed learning session.
type SessionRecord struct {
	ID                 uint      `json:"id" gorm:"primaryKey"`
	UserID             uint      `json:"user_id" gorm:"not null;index"`
	User               *User     `json:"user,omitempty" gorm:"foreignKey:UserID"`
	SessionID          string    `json:"session_id" gorm:"size:100;index"`
	SkillArea          string    `json:"skill_area" gorm:"not null;size:30;index"`
	Difficulty         string    `json:"difficulty" gorm:"not null;size:20"`
	Score              int       `json:"score" gorm:"default:0"`
	ExercisesCompleted int       `json:"exercises_completed" gorm:"default:0"`
	TotalExercises     int       `json:"total_exercises" gorm:"default:0"`
	TimeElapsed        int       `json:"time_elapsed" gorm:"default:0"` // in seconds
	IsPerfect          bool      `json:"is_perfect" gorm:"default:false"`
	XPEarned           int       `json:"xp_earned" gorm:"default:0"`
	ExerciseScoresJSON string    `json:"-" gorm:"type:text"`
	CreatedAt          time.Time `json:"created_at"`
}

// ExerciseScoreEntry mirrors the engine's per-exercise result for storage.
type ExerciseScoreEntry struct {
	QuestionTitle string `json:"question_title"`
	UserAnswer    string `json:"user_answer"`
	CorrectAnswer string `json:"correct_answer"`
	IsCorrect     bool   `json:"is_correct"`
	Score         int    `json:"score"`
}

func (s *SessionRecord) GetExerciseScores() ([]ExerciseScoreEntry, error) {
	var scores []ExerciseScoreEntry
	if s.ExerciseScoresJSON == "" {
		return scores, nil
	}
	err := json.Unmarshal([]byte(s.ExerciseScoresJSON), &scores)
	return scores, err
}

func (s *SessionRecord) SetExerciseScores(scores []ExerciseScoreEntry) error {
	data, err := json.Marshal(scores)
	if err != nil {
		return err
	}
	s.ExerciseScoresJSON = string(data)
	return nil
}

// TableName methods for custom table names
func (SessionRecord) TableName() string {
	return "session_records"
}
