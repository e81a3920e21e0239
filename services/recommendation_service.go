// services/recommendation_service.go - LLM-backed learning recommendations
package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"pmquest/challenge"
)

// RecommendationService calls an OpenAI-compatible chat completions API to
// turn a user's recent results into a personalized study suggestion. When the
// API is unreachable the service degrades to a static per-skill fallback so
// the endpoint never fails outright.
type RecommendationService struct {
	Client  *http.Client
	BaseURL string
	APIKey  string
	Model   string
}

var recommendationService *RecommendationService

func InitRecommendationService() {
	recommendationService = &RecommendationService{
		Client: &http.Client{
			Timeout: 60 * time.Second,
		},
		BaseURL: getEnvDefault("LLM_BASE_URL", "https://api.openai.com/v1"),
		APIKey:  os.Getenv("LLM_API_KEY"),
		Model:   getEnvDefault("LLM_MODEL", "gpt-4o-mini"),
	}

	if recommendationService.APIKey == "" {
		log.Println("LLM_API_KEY not set, recommendations will use static fallbacks")
	} else {
		log.Println("✅ Recommendation service initialized")
	}
}

func GetRecommendationService() *RecommendationService {
	if recommendationService == nil {
		InitRecommendationService()
	}
	return recommendationService
}

type ChatCompletionRequest struct {
	Model       string                  `json:"model"`
	Messages    []ChatCompletionMessage `json:"messages"`
	Stream      bool                    `json:"stream"`
	Temperature *float64                `json:"temperature,omitempty"`
	MaxTokens   *int                    `json:"max_tokens,omitempty"`
}

type ChatCompletionMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatCompletionResponse struct {
	Choices []struct {
		Message ChatCompletionMessage `json:"message"`
	} `json:"choices"`
}

// SessionSummary is the slice of user history fed into the prompt.
type SessionSummary struct {
	SkillArea  string `json:"skill_area"`
	Difficulty string `json:"difficulty"`
	Score      int    `json:"score"`
}

const recommendationSystemPrompt = `You are a product management coach inside a practice app.
Given a learner's recent session results, suggest one concrete next step:
which skill area to practice, at what difficulty, and why, in 2-3 sentences.
Be encouraging and specific. Do not use markdown.`

// Recommend produces a study suggestion from recent session results.
// The bool return reports whether the text came from the LLM.
func (r *RecommendationService) Recommend(username string, history []SessionSummary) (string, bool) {
	if r.APIKey == "" {
		return r.fallbackRecommendation(history), false
	}

	historyJSON, err := json.Marshal(history)
	if err != nil {
		return r.fallbackRecommendation(history), false
	}

	userMessage := fmt.Sprintf("Learner %s. Recent sessions (newest first): %s", username, string(historyJSON))
	if len(history) == 0 {
		userMessage = fmt.Sprintf("Learner %s has not completed any sessions yet.", username)
	}

	temperature := 0.7
	maxTokens := 200
	request := ChatCompletionRequest{
		Model: r.Model,
		Messages: []ChatCompletionMessage{
			{Role: "system", Content: recommendationSystemPrompt},
			{Role: "user", Content: userMessage},
		},
		Stream:      false,
		Temperature: &temperature,
		MaxTokens:   &maxTokens,
	}

	response, err := r.sendChatRequest(request)
	if err != nil {
		log.Printf("Recommendation LLM call failed: %v", err)
		return r.fallbackRecommendation(history), false
	}

	if len(response.Choices) == 0 {
		return r.fallbackRecommendation(history), false
	}

	text := strings.TrimSpace(response.Choices[0].Message.Content)
	if text == "" {
		return r.fallbackRecommendation(history), false
	}

	return text, true
}

func (r *RecommendationService) sendChatRequest(request ChatCompletionRequest) (*ChatCompletionResponse, error) {
	jsonData, err := json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %v", err)
	}

	req, err := http.NewRequest("POST", r.BaseURL+"/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %v", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if r.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+r.APIKey)
	}

	resp, err := r.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %v", err)
	}

	if resp.StatusCode != 200 {
		return nil, fmt.Errorf("LLM API error (status %d): %s", resp.StatusCode, string(body))
	}

	var response ChatCompletionResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

var fallbackBySkill = map[string]string{
	"strategy":  "Your strategy scores have the most room to grow. Try an intermediate prioritization session and focus on saying no to good-but-wrong ideas.",
	"research":  "Spend your next session on user research. Practice spotting leading questions before you trust the answers they produce.",
	"analytics": "Work through an analytics session next. Pay attention to which metric actually moves when you make a call.",
	"design":    "Pick a design collaboration session next. Practice giving feedback on outcomes instead of pixels.",
}

// fallbackRecommendation picks the weakest recent skill area, or a default
// starting point when there is no history.
func (r *RecommendationService) fallbackRecommendation(history []SessionSummary) string {
	if len(history) == 0 {
		return "Start with a beginner strategy session to build your decision-making foundations, then branch out from there."
	}

	lowest := history[0]
	for _, s := range history[1:] {
		if s.Score < lowest.Score {
			lowest = s
		}
	}

	if text, ok := fallbackBySkill[lowest.SkillArea]; ok {
		return text
	}
	return fallbackBySkill[string(challenge.SkillStrategy)]
}

func getEnvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
