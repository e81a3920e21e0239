// handlers/challenges.go
package handlers

import (
	"math/rand"
	"pmquest/challenge"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Shared engine state. The rand source is not safe for concurrent use, so
// every call into the engine goes through engineMu.
var (
	engineMu    sync.Mutex
	engineRNG   = rand.New(rand.NewSource(time.Now().UnixNano()))
	catalog     = challenge.DefaultCatalog()
	selector    = challenge.NewSelector(catalog, engineRNG, nil)
	generator   = challenge.NewGenerator(engineRNG)
	synthesizer = challenge.NewSynthesizer(engineRNG)
)

type GenerateChallengeRequest struct {
	SkillArea  string `json:"skill_area"`
	Difficulty string `json:"difficulty"`
	Count      int    `json:"count"`
}

// GetChallenges returns catalog templates for a skill area and difficulty.
func GetChallenges(c *fiber.Ctx) error {
	skill := challenge.SkillArea(c.Query("skill_area", string(challenge.SkillStrategy)))
	difficulty := challenge.Difficulty(c.Query("difficulty", string(challenge.DifficultyBeginner)))

	if !challenge.ValidSkillArea(skill) {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Unknown skill area",
		})
	}
	if !challenge.ValidDifficulty(difficulty) {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Unknown difficulty",
		})
	}

	templates := catalog.Lookup(skill, difficulty)

	return c.JSON(fiber.Map{
		"success":    true,
		"skill_area": skill,
		"difficulty": difficulty,
		"challenges": templates,
		"count":      len(templates),
	})
}

// GetSkillAreas lists the available skill areas and difficulty tiers.
func GetSkillAreas(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success":      true,
		"skill_areas":  challenge.SkillAreas,
		"difficulties": challenge.Difficulties,
	})
}

// GenerateChallenges produces procedurally generated challenge instances.
func GenerateChallenges(c *fiber.Ctx) error {
	var req GenerateChallengeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}

	count := req.Count
	if count <= 0 {
		count = 1
	}
	if count > 10 {
		count = 10
	}

	// Unknown skill or difficulty falls back inside the generator, so no
	// validation error here. Matches selector behavior.
	skill := challenge.SkillArea(req.SkillArea)
	difficulty := challenge.Difficulty(req.Difficulty)

	engineMu.Lock()
	instances := make([]challenge.Instance, 0, count)
	for i := 0; i < count; i++ {
		instances = append(instances, generator.Generate(skill, difficulty))
	}
	engineMu.Unlock()

	return c.JSON(fiber.Map{
		"success":    true,
		"challenges": instances,
		"count":      len(instances),
	})
}
