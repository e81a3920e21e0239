package handlers

import (
	"testing"
	"time"

	"pmquest/middleware"
	"pmquest/models"

	"github.com/golang-jwt/jwt/v5"
)

func TestIssueTokenRoundTrip(t *testing.T) {
	user := models.User{ID: 42, Username: "morgan", IsGuest: true}

	tokenString, err := issueToken(user)
	if err != nil {
		t.Fatalf("issueToken: %v", err)
	}

	// Validate with the same secret the middleware uses
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			t.Fatalf("unexpected signing method %v", token.Method)
		}
		return middleware.JWTSecret(), nil
	})
	if err != nil || !token.Valid {
		t.Fatalf("token did not validate: %v", err)
	}

	claims := token.Claims.(jwt.MapClaims)
	if claims["user_id"].(float64) != 42 {
		t.Errorf("user_id claim = %v, want 42", claims["user_id"])
	}
	if claims["username"].(string) != "morgan" {
		t.Errorf("username claim = %v, want morgan", claims["username"])
	}
	if claims["is_guest"].(bool) != true {
		t.Error("is_guest claim not carried")
	}

	exp := int64(claims["exp"].(float64))
	if time.Unix(exp, 0).Before(time.Now().Add(29 * 24 * time.Hour)) {
		t.Error("token expires sooner than the configured lifetime")
	}
}

func TestAuthUserPayloadCarriesProgression(t *testing.T) {
	email := "sam@example.com"
	user := models.User{
		ID:            7,
		Username:      "sam",
		Email:         &email,
		Password:      "hash-should-not-leak",
		Level:         4,
		XP:            120,
		TotalSessions: 9,
		BestScore:     88,
		CurrentStreak: 3,
		BestStreak:    6,
	}

	payload := authUserPayload(user)

	if payload["level"] != 4 || payload["xp"] != 120 {
		t.Errorf("progression missing: level=%v xp=%v", payload["level"], payload["xp"])
	}
	if payload["current_streak"] != 3 || payload["best_score"] != 88 {
		t.Errorf("stats missing: streak=%v best=%v", payload["current_streak"], payload["best_score"])
	}
	if _, leaked := payload["password"]; leaked {
		t.Error("password leaked into auth payload")
	}
}

func TestAuthUserPayloadNilEmail(t *testing.T) {
	payload := authUserPayload(models.User{Username: "guest"})
	if payload["email"] != "" {
		t.Errorf("nil email should render empty, got %v", payload["email"])
	}
}

func TestValidateAccountInput(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
		wantOK   bool
	}{
		{"valid", "taylor", "hunter22", true},
		{"missing username", "", "hunter22", false},
		{"missing password", "taylor", "", false},
		{"short password", "taylor", "abc", false},
		{"whitespace in username", "tay lor", "hunter22", false},
		{"overlong username", "a-very-long-username-over-thirty-chars", "hunter22", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := validateAccountInput(tt.username, tt.password)
			if (msg == "") != tt.wantOK {
				t.Errorf("validateAccountInput(%q, %q) = %q, want ok=%v", tt.username, tt.password, msg, tt.wantOK)
			}
		})
	}
}
