// services/cleanup.go - Background cleanup of expired state
package services

import (
	"log"
	"time"

	"pmquest/database"
	"pmquest/models"
)

// CleanupService handles background cleanup tasks
type CleanupService struct {
	interval time.Duration
	stop     chan struct{}
}

var cleanupService *CleanupService

// InitCleanupService initializes the singleton cleanup service.
func InitCleanupService() {
	cleanupService = &CleanupService{
		interval: time.Hour,
		stop:     make(chan struct{}),
	}
}

// GetCleanupService returns the initialized cleanup service.
func GetCleanupService() *CleanupService {
	return cleanupService
}

// Start launches the periodic cleanup worker.
func (s *CleanupService) Start() {
	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		// Run once at startup so restarts don't leave stale rows around
		s.runOnce()

		for {
			select {
			case <-ticker.C:
				s.runOnce()
			case <-s.stop:
				return
			}
		}
	}()
	log.Println("✅ Cleanup service started")
}

// Stop signals the cleanup worker to exit.
func (s *CleanupService) Stop() {
	close(s.stop)
}

func (s *CleanupService) runOnce() {
	if err := s.CleanupExpiredSessions(); err != nil {
		log.Printf("Session cleanup failed: %v", err)
	}
	if err := s.CleanupStaleGuests(); err != nil {
		log.Printf("Guest cleanup failed: %v", err)
	}
}

// CleanupExpiredSessions removes active session rows past their expiry and
// rows already closed more than a day ago.
func (s *CleanupService) CleanupExpiredSessions() error {
	db := database.GetDB()
	if db == nil {
		return nil
	}

	now := time.Now()

	expired := db.Where("status = ? AND expires_at < ?", "active", now).
		Delete(&models.ActiveSessionState{})
	if expired.Error != nil {
		return expired.Error
	}

	closed := db.Where("status IN ? AND updated_at < ?", []string{"completed", "abandoned"}, now.Add(-24*time.Hour)).
		Delete(&models.ActiveSessionState{})
	if closed.Error != nil {
		return closed.Error
	}

	total := expired.RowsAffected + closed.RowsAffected
	if total > 0 {
		log.Printf("✅ Cleaned up %d session state rows", total)
	}
	return nil
}

// CleanupStaleGuests deletes guest accounts idle for more than 30 days.
func (s *CleanupService) CleanupStaleGuests() error {
	db := database.GetDB()
	if db == nil {
		return nil
	}

	cutoff := time.Now().AddDate(0, 0, -30)

	res := db.Where("is_guest = ? AND created_at < ? AND (last_login < ? OR last_login IS NULL)",
		true, cutoff, cutoff).
		Delete(&models.User{})
	if res.Error != nil {
		return res.Error
	}

	if res.RowsAffected > 0 {
		log.Printf("✅ Cleaned up %d stale guest accounts", res.RowsAffected)
	}
	return nil
}
