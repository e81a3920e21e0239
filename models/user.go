// models/user.go
package models

import (
	"time"
)

type User struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Username    string  `gorm:"uniqueIndex;not null" json:"username"`
	Email       *string `gorm:"uniqueIndex" json:"email,omitempty"`
	Password    string  `gorm:"not null" json:"-"`
	DisplayName string  `json:"display_name"`
	Avatar      string  `json:"avatar"`
	Bio         string  `json:"bio"`
	IsGuest     bool    `gorm:"default:false" json:"is_guest"`
	IsBanned    bool    `gorm:"default:false" json:"is_banned"`

	// Progression
	Level int `gorm:"default:1" json:"level"`
	XP    int `gorm:"default:0" json:"xp"`

	// Stats
	TotalSessions   int       `gorm:"default:0" json:"total_sessions"`
	PerfectSessions int       `gorm:"default:0" json:"perfect_sessions"`
	BestScore       int       `gorm:"default:0" json:"best_score"`
	CurrentStreak   int       `gorm:"default:0" json:"current_streak"`
	BestStreak      int       `gorm:"default:0" json:"best_streak"`
	LastSessionDate time.Time `json:"last_session_date"`

	// Timestamps
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	LastLogin time.Time `json:"last_login"`

	// Relationships
	Achievements []UserAchievement `gorm:"foreignKey:UserID" json:"achievements,omitempty"`
	Sessions     []SessionRecord   `gorm:"foreignKey:UserID" json:"sessions,omitempty"`
}

type UserAchievement struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	UserID        uint      `gorm:"not null;index" json:"user_id"`
	AchievementID uint      `gorm:"not null;index" json:"achievement_id"`
	UnlockedAt    time.Time `json:"unlocked_at"`

	// Relationships
	User        User        `gorm:"foreignKey:UserID" json:"-"`
	Achievement Achievement `gorm:"foreignKey:AchievementID" json:"achievement,omitempty"`
}
