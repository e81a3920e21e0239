// database/seed.go - Achievement catalog seeding
package database

import (
	"log"
	"pmquest/models"
)

var seedAchievements = []models.Achievement{
	{Name: "First Steps", Description: "Complete your first session", Category: "Completion", Tier: "Beginner", Icon: "🎯", XPReward: 25},
	{Name: "Getting Serious", Description: "Complete 10 sessions", Category: "Completion", Tier: "Intermediate", Icon: "📚", XPReward: 75},
	{Name: "Practitioner", Description: "Complete 50 sessions", Category: "Completion", Tier: "Advanced", Icon: "🏗️", XPReward: 200},
	{Name: "Sharp Call", Description: "Score 90 or higher in a session", Category: "Performance", Tier: "Intermediate", Icon: "🎖️", XPReward: 50},
	{Name: "Peak Performance", Description: "Hit the maximum session score of 95", Category: "Performance", Tier: "Advanced", Icon: "🏆", XPReward: 100},
	{Name: "Flawless Run", Description: "Complete a session with every answer rated excellent", Category: "Performance", Tier: "Elite", Icon: "💎", XPReward: 150},
	{Name: "Warming Up", Description: "Reach a 3-day learning streak", Category: "Streak", Tier: "Beginner", Icon: "🔥", XPReward: 30},
	{Name: "Habit Formed", Description: "Reach a 7-day learning streak", Category: "Streak", Tier: "Intermediate", Icon: "📅", XPReward: 80},
	{Name: "Unstoppable", Description: "Reach a 30-day learning streak", Category: "Streak", Tier: "Elite", Icon: "⚡", XPReward: 300},
	{Name: "Strategist", Description: "Complete 10 strategy sessions", Category: "Skill", Tier: "Intermediate", Icon: "♟️", XPReward: 60},
	{Name: "Field Researcher", Description: "Complete 10 research sessions", Category: "Skill", Tier: "Intermediate", Icon: "🔍", XPReward: 60},
	{Name: "Data Whisperer", Description: "Complete 10 analytics sessions", Category: "Skill", Tier: "Intermediate", Icon: "📊", XPReward: 60},
	{Name: "Design Partner", Description: "Complete 10 design sessions", Category: "Skill", Tier: "Intermediate", Icon: "🎨", XPReward: 60},
	{Name: "Renaissance PM", Description: "Complete a session in every skill area", Category: "Special", Tier: "Advanced", Icon: "🌐", XPReward: 120},
	{Name: "Deep End", Description: "Complete an advanced session with a score of 85 or higher", Category: "Special", Tier: "Elite", Icon: "🌊", XPReward: 150},
}

// SeedAchievements inserts the achievement catalog if it is missing.
// Idempotent: existing achievements (by name) are left untouched.
func SeedAchievements() {
	db := GetDB()

	var count int64
	db.Model(&models.Achievement{}).Count(&count)
	if count > 0 {
		log.Printf("Achievement catalog already seeded (%d entries)", count)
		return
	}

	created := 0
	for _, a := range seedAchievements {
		if err := db.Create(&a).Error; err != nil {
			log.Printf("Error seeding achievement %q: %v", a.Name, err)
			continue
		}
		created++
	}

	log.Printf("✅ Seeded %d achievements", created)
}
