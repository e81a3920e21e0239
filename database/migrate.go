// database/migrate.go - Database Migration Runner
package database

import (
	"log"
	"pmquest/models"
)

// RunMigrations runs all database migrations
func RunMigrations() {
	db := GetDB()
	log.Println("🔄 Running database migrations...")

	// Core application models
	if err := db.AutoMigrate(
		&models.User{},
		&models.SessionRecord{},
		&models.ActiveSessionState{},
		&models.Achievement{},
		&models.UserAchievement{},
	); err != nil {
		log.Fatalf("❌ Failed to run core migrations: %v", err)
	}

	log.Println("✅ Core migrations completed")

	// Create indexes for core tables
	createCoreIndexes()

	// Seed the achievement catalog
	SeedAchievements()

	log.Println("✅ All migrations completed successfully")
}

// createCoreIndexes creates indexes for core tables
func createCoreIndexes() {
	db := GetDB()
	log.Println("Creating core indexes...")

	// User indexes
	db.Exec("CREATE INDEX IF NOT EXISTS idx_users_username ON users(username)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_users_email ON users(email)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_users_level ON users(level DESC)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_users_guest ON users(is_guest)")

	// Session record indexes
	db.Exec("CREATE INDEX IF NOT EXISTS idx_session_records_user ON session_records(user_id)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_session_records_skill ON session_records(skill_area)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_session_records_created ON session_records(created_at DESC)")

	// Active session indexes
	db.Exec("CREATE INDEX IF NOT EXISTS idx_active_sessions_user ON active_session_states(user_id)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_active_sessions_expires ON active_session_states(expires_at)")

	log.Println("✅ Core indexes created")
}
