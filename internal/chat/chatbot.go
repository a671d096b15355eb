package chat

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/quangtran/monngon/backend/internal/nlp"
)

// clarificationFloor is the intent confidence below which the bot asks the
// user to rephrase instead of guessing.
const clarificationFloor = 0.05

var responseTemplates = map[string][]string{
	"greeting": {
		"Hello! I can help you find the right dish. What would you like to eat today?",
		"Hi there! Tell me what you're in the mood for and I'll suggest something tasty.",
		"Hi! I'm your food assistant. Want a dish recommendation?",
	},
	"no_results": {
		"Sorry, I couldn't find any dish matching your request.",
		"Nothing matched. Could you try describing it differently?",
		"I didn't quite catch that. Could you be more specific?",
	},
	"clarification": {
		"Could you tell me more about the dish you want?",
		"I need a bit more detail. What kind of dish, what flavors?",
		"Could you describe your preferences in more detail?",
	},
}

var greetingWords = []string{"hello", "hi", "chào", "xin chào", "hey"}
var foodWords = []string{"muốn", "tìm", "gợi ý", "món", "ăn", "food", "dish", "want", "recommend"}
var questionWords = []string{"gì", "nào", "how", "what", "where", "which"}

// Turn records one exchange for the session transcript.
type Turn struct {
	UserInput       string      `json:"user_input"`
	Intent          nlp.Intent  `json:"intent"`
	Recommendations []Candidate `json:"recommendations"`
	Confidence      float64     `json:"confidence"`
}

// Response is what one chat turn returns to the caller.
type Response struct {
	SessionID       uuid.UUID   `json:"session_id"`
	Message         string      `json:"message"`
	Recommendations []Candidate `json:"recommendations"`
	Intent          nlp.Intent  `json:"intent"`
	Confidence      float64     `json:"confidence"`
}

// Chatbot answers free-text food requests using the matcher. Template
// choice is randomized for variety only; it never affects which dishes
// are returned.
type Chatbot struct {
	logger    *zap.Logger
	processor *nlp.Processor
	matcher   *Matcher

	mu      sync.Mutex
	history map[uuid.UUID][]Turn
	rng     *rand.Rand
}

// NewChatbot creates a chatbot over the given processor and matcher.
func NewChatbot(processor *nlp.Processor, matcher *Matcher, logger *zap.Logger) *Chatbot {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Chatbot{
		logger:    logger,
		processor: processor,
		matcher:   matcher,
		history:   make(map[uuid.UUID][]Turn),
		rng:       rand.New(rand.NewSource(1)),
	}
}

// DetectIntentType classifies the utterance as greeting, food_request, or
// question. Food requests win ties; unknown input defaults to food_request.
func (b *Chatbot) DetectIntentType(text string) string {
	lower := strings.ToLower(text)
	if containsAny(lower, greetingWords) {
		return "greeting"
	}
	if containsAny(lower, foodWords) {
		return "food_request"
	}
	if containsAny(lower, questionWords) {
		return "question"
	}
	return "food_request"
}

// GenerateResponse answers one chat turn. Low-confidence intents get a
// clarification prompt; otherwise the matcher's fused candidates are
// composed into a recommendation message. The turn is appended to the
// session history.
func (b *Chatbot) GenerateResponse(ctx context.Context, sessionID uuid.UUID, text string) Response {
	if sessionID == uuid.Nil {
		sessionID = uuid.New()
	}
	resp := Response{SessionID: sessionID, Recommendations: []Candidate{}}

	if b.DetectIntentType(text) == "greeting" {
		resp.Message = b.pickTemplate("greeting")
		return resp
	}

	intent := b.processor.ExtractIntent(text)
	resp.Intent = intent
	resp.Confidence = intent.Confidence

	if intent.Confidence < clarificationFloor {
		b.logger.Warn("low intent confidence",
			zap.Float64("confidence", intent.Confidence), zap.String("input", text))
		resp.Message = b.pickTemplate("clarification")
		return resp
	}

	recommendations := b.matcher.FindMatchingDishes(ctx, intent, text)
	b.logger.Info("chat turn matched",
		zap.Int("recommendations", len(recommendations)),
		zap.Float64("confidence", intent.Confidence))

	if len(recommendations) == 0 {
		resp.Message = b.pickTemplate("no_results") +
			" You could try: 'I want Italian food', 'a low-calorie vegetarian dish', 'something with chicken'."
	} else {
		resp.Recommendations = recommendations
		resp.Message = composeRecommendationMessage(intent, recommendations)
	}

	b.mu.Lock()
	b.history[sessionID] = append(b.history[sessionID], Turn{
		UserInput:       text,
		Intent:          intent,
		Recommendations: recommendations,
		Confidence:      intent.Confidence,
	})
	b.mu.Unlock()

	return resp
}

// History returns the transcript of one session.
func (b *Chatbot) History(sessionID uuid.UUID) []Turn {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.history[sessionID]
}

func (b *Chatbot) pickTemplate(kind string) string {
	templates := responseTemplates[kind]
	b.mu.Lock()
	defer b.mu.Unlock()
	return templates[b.rng.Intn(len(templates))]
}

// composeRecommendationMessage builds the intro from the matched intent
// and lists the top five dishes with their match scores.
func composeRecommendationMessage(intent nlp.Intent, recommendations []Candidate) string {
	var criteria []string
	if len(intent.Cuisine) > 0 {
		criteria = append(criteria, fmt.Sprintf("%s dishes", strings.Join(intent.Cuisine, ", ")))
	}
	if len(intent.Dietary) > 0 {
		criteria = append(criteria, fmt.Sprintf("%s style", strings.Join(intent.Dietary, ", ")))
	}
	if len(intent.Ingredients) > 0 {
		criteria = append(criteria, fmt.Sprintf("with %s", strings.Join(intent.Ingredients, ", ")))
	}

	intro := "I found some dishes you might like:"
	if len(criteria) > 0 {
		intro = fmt.Sprintf("Based on your request for %s, I suggest:", strings.Join(criteria, " and "))
	}

	var lines []string
	for i, rec := range recommendations {
		if i == 5 {
			break
		}
		line := fmt.Sprintf("%d. **%s** (match: %.1f%%)", i+1, rec.Name, rec.Score*100)
		if rec.Tags != "" {
			tags := rec.Tags
			if len(tags) > 50 {
				tags = tags[:50] + "..."
			}
			line += fmt.Sprintf(" (%s)", tags)
		}
		lines = append(lines, line)
	}

	message := intro + "\n\n" + strings.Join(lines, "\n")
	if len(recommendations) > 5 {
		message += fmt.Sprintf("\n\n*There are %d more dishes. Want to see them?*", len(recommendations)-5)
	}
	return message
}
