// models/session_state.go - Active session persistence for resume-after-refresh
package models

import (
	"encoding/json"
	"time"
)

// ActiveSessionState stores the complete state of an in-flight learning
// session so a page refresh can restore it.
type ActiveSessionState struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	SessionID string `json:"session_id" gorm:"uniqueIndex;not null;size:100"`
	UserID    uint   `json:"user_id" gorm:"not null;index"`

	// Session configuration
	SkillArea      string `json:"skill_area" gorm:"size:30"`
	Difficulty     string `json:"difficulty" gorm:"size:20"`
	TotalExercises int    `json:"total_exercises" gorm:"default:4"`
	TimeLimit      int    `json:"time_limit" gorm:"default:180"` // seconds per exercise

	// Progress
	CurrentExerciseIndex int `json:"current_exercise_index" gorm:"default:0"`

	// Payload (stored as JSON)
	ChallengesJSON string `json:"-" gorm:"type:text"` // selected challenge instances
	AnswersJSON    string `json:"-" gorm:"type:text"` // answers submitted so far

	// Lifecycle
	Status    string    `json:"status" gorm:"default:'active';size:20"` // active, completed, abandoned
	StartedAt time.Time `json:"started_at"`
	UpdatedAt time.Time `json:"updated_at"`
	ExpiresAt time.Time `json:"expires_at"` // cleanup deadline
}

// TableName specifies the table name for ActiveSessionState
func (ActiveSessionState) TableName() string {
	return "active_session_states"
}

// SessionSnapshot represents a moment-in-time snapshot for restoration.
type SessionSnapshot struct {
	SessionID            string            `json:"session_id"`
	SkillArea            string            `json:"skill_area"`
	Difficulty           string            `json:"difficulty"`
	TotalExercises       int               `json:"total_exercises"`
	TimeLimit            int               `json:"time_limit"`
	CurrentExerciseIndex int               `json:"current_exercise_index"`
	Challenges           []json.RawMessage `json:"challenges"`
	Answers              []StoredAnswer    `json:"answers"`
	Status               string            `json:"status"`
}

// StoredAnswer is one submitted answer as persisted mid-session.
type StoredAnswer struct {
	ChallengeID   string `json:"challenge_id"`
	QuestionTitle string `json:"question_title"`
	Answer        string `json:"answer"`
	Quality       string `json:"quality,omitempty"`
	IsCorrect     bool   `json:"is_correct,omitempty"`
	TimeSpent     int    `json:"time_spent,omitempty"`
}

// Helper methods to marshal/unmarshal JSON fields

func (s *ActiveSessionState) GetChallenges() ([]json.RawMessage, error) {
	var challenges []json.RawMessage
	if s.ChallengesJSON == "" {
		return challenges, nil
	}
	err := json.Unmarshal([]byte(s.ChallengesJSON), &challenges)
	return challenges, err
}

func (s *ActiveSessionState) SetChallengesRaw(data []byte) {
	s.ChallengesJSON = string(data)
}

func (s *ActiveSessionState) GetAnswers() ([]StoredAnswer, error) {
	var answers []StoredAnswer
	if s.AnswersJSON == "" {
		return answers, nil
	}
	err := json.Unmarshal([]byte(s.AnswersJSON), &answers)
	return answers, err
}

func (s *ActiveSessionState) SetAnswers(answers []StoredAnswer) error {
	data, err := json.Marshal(answers)
	if err != nil {
		return err
	}
	s.AnswersJSON = string(data)
	return nil
}

// CreateSnapshot generates a complete snapshot for client restoration.
func (s *ActiveSessionState) CreateSnapshot() (*SessionSnapshot, error) {
	challenges, err := s.GetChallenges()
	if err != nil {
		return nil, err
	}

	answers, err := s.GetAnswers()
	if err != nil {
		return nil, err
	}

	return &SessionSnapshot{
		SessionID:            s.SessionID,
		SkillArea:            s.SkillArea,
		Difficulty:           s.Difficulty,
		TotalExercises:       s.TotalExercises,
		TimeLimit:            s.TimeLimit,
		CurrentExerciseIndex: s.CurrentExerciseIndex,
		Challenges:           challenges,
		Answers:              answers,
		Status:               s.Status,
	}, nil
}
