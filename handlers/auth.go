// handlers/auth.go
package handlers

import (
	"fmt"
	"pmquest/database"
	"pmquest/middleware"
	"pmquest/models"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	tokenLifetime     = 30 * 24 * time.Hour
	minPasswordLength = 6
	maxUsernameLength = 30
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type GuestLoginRequest struct {
	GuestName string `json:"guest_name,omitempty"`
}

type UpgradeGuestRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// authFail is the single error shape for every auth endpoint.
func authFail(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"error":   message,
	})
}

// sessionResponse mints a token and returns it with the user's profile and
// progression snapshot, so clients can render the header bar from the login
// response alone.
func sessionResponse(c *fiber.Ctx, user models.User) error {
	token, err := issueToken(user)
	if err != nil {
		return authFail(c, 500, "Failed to generate token")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"token":   token,
		"user":    authUserPayload(user),
	})
}

// authUserPayload is the public view of a user returned by auth endpoints.
func authUserPayload(user models.User) fiber.Map {
	email := ""
	if user.Email != nil {
		email = *user.Email
	}

	return fiber.Map{
		"id":             user.ID,
		"username":       user.Username,
		"display_name":   user.DisplayName,
		"email":          email,
		"is_guest":       user.IsGuest,
		"level":          user.Level,
		"xp":             user.XP,
		"total_sessions": user.TotalSessions,
		"best_score":     user.BestScore,
		"current_streak": user.CurrentStreak,
		"best_streak":    user.BestStreak,
		"created_at":     user.CreatedAt,
	}
}

// issueToken signs a session token with the same secret the auth middleware
// validates against.
func issueToken(user models.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"is_guest": user.IsGuest,
		"iat":      now.Unix(),
		"exp":      now.Add(tokenLifetime).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(middleware.JWTSecret())
}

// validateAccountInput checks username/password rules shared by registration
// and guest upgrade. Returns an empty string when the input is acceptable.
func validateAccountInput(username, password string) string {
	switch {
	case username == "" || password == "":
		return "Username and password required"
	case len(username) > maxUsernameLength:
		return fmt.Sprintf("Username must be at most %d characters", maxUsernameLength)
	case strings.ContainsAny(username, " \t\n"):
		return "Username cannot contain whitespace"
	case len(password) < minPasswordLength:
		return fmt.Sprintf("Password must be at least %d characters", minPasswordLength)
	}
	return ""
}

// GuestLogin creates a throwaway account so new learners can start a session
// without registering.
func GuestLogin(c *fiber.Ctx) error {
	var req GuestLoginRequest

	// An empty body is fine for guest login
	_ = c.BodyParser(&req)

	guestName := strings.TrimSpace(req.GuestName)
	if len(guestName) > maxUsernameLength {
		return authFail(c, 400, fmt.Sprintf("Guest name must be at most %d characters", maxUsernameLength))
	}

	suffix := uuid.New().String()[:8]
	if guestName == "" {
		guestName = "Learner_" + suffix
	} else {
		// Suffix custom names too so concurrent guests never collide on the
		// unique username index
		guestName = fmt.Sprintf("%s_%s", guestName, suffix)
	}
	guestEmail := fmt.Sprintf("guest_%s@pmquest.local", suffix)

	now := time.Now()
	user := models.User{
		Username:  guestName,
		Email:     &guestEmail,
		IsGuest:   true,
		Level:     1,
		CreatedAt: now,
		LastLogin: now,
	}

	db := database.GetDB()
	if err := db.Create(&user).Error; err != nil {
		return authFail(c, 500, "Failed to create guest account")
	}

	return sessionResponse(c, user)
}

// Login authenticates a registered user
func Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return authFail(c, 400, "Invalid request body")
	}

	if req.Username == "" || req.Password == "" {
		return authFail(c, 400, "Username and password required")
	}

	db := database.GetDB()

	var user models.User
	err := db.Where("username = ? AND is_guest = ?", req.Username, false).First(&user).Error
	if err != nil || bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		// Same answer for unknown user and wrong password
		return authFail(c, 401, "Invalid credentials")
	}

	db.Model(&user).Update("last_login", time.Now())

	return sessionResponse(c, user)
}

// Register creates a new user account
func Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return authFail(c, 400, "Invalid request body")
	}

	if msg := validateAccountInput(req.Username, req.Password); msg != "" {
		return authFail(c, 400, msg)
	}

	db := database.GetDB()

	var count int64
	db.Model(&models.User{}).Where("username = ?", req.Username).Count(&count)
	if count > 0 {
		return authFail(c, 400, "Username already taken")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return authFail(c, 500, "Failed to hash password")
	}

	now := time.Now()
	user := models.User{
		Username:  req.Username,
		Password:  string(hashedPassword),
		Level:     1,
		CreatedAt: now,
		LastLogin: now,
	}
	if req.Email != "" {
		user.Email = &req.Email
	}

	if err := db.Create(&user).Error; err != nil {
		return authFail(c, 500, "Failed to create account")
	}

	return sessionResponse(c, user)
}

// UpgradeGuest converts a guest account to a registered one, keeping the
// guest's level, XP, streaks and session history.
func UpgradeGuest(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return authFail(c, 401, "Unauthorized")
	}

	var req UpgradeGuestRequest
	if err := c.BodyParser(&req); err != nil {
		return authFail(c, 400, "Invalid request body")
	}

	if msg := validateAccountInput(req.Username, req.Password); msg != "" {
		return authFail(c, 400, msg)
	}

	db := database.GetDB()

	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		return authFail(c, 404, "User not found")
	}

	if !user.IsGuest {
		return authFail(c, 400, "Account is already registered")
	}

	var count int64
	db.Model(&models.User{}).Where("username = ? AND id != ?", req.Username, userID).Count(&count)
	if count > 0 {
		return authFail(c, 400, "Username already taken")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return authFail(c, 500, "Failed to hash password")
	}

	updates := map[string]interface{}{
		"username":   req.Username,
		"password":   string(hashedPassword),
		"is_guest":   false,
		"updated_at": time.Now(),
	}
	if req.Email != "" {
		updates["email"] = req.Email
	}

	if err := db.Model(&user).Updates(updates).Error; err != nil {
		return authFail(c, 500, "Failed to upgrade account")
	}

	// Reload so the response reflects the upgraded account
	db.First(&user, userID)

	return sessionResponse(c, user)
}
