package llm

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
	"github.com/viralforge/mesh/services/data-ai/M59-performance-predictor/internal/domain"
)

const defaultModel = "gpt-4o-mini"

const systemPrompt = "You are a short-form content strategist. Given feature " +
	"scores for a creator's draft post, write 2-4 one-sentence observations " +
	"about its likely performance. Plain sentences, one per line, no numbering, " +
	"no markdown."

// OpenAIInsights turns a finished analysis into natural-language reasoning
// lines. Never required for a prediction: callers fall back to template
// reasoning when the completion fails or returns nothing.
type OpenAIInsights struct {
	client      *openai.Client
	model       string
	maxTokens   int
	temperature float32
}

type Config struct {
	APIKey      string
	Model       string
	MaxTokens   int
	Temperature float64
}

func NewOpenAIInsights(cfg Config) *OpenAIInsights {
	model := cfg.Model
	if model == "" {
		model = defaultModel
	}
	maxTokens := cfg.MaxTokens
	if maxTokens == 0 {
		maxTokens = 256
	}
	temperature := cfg.Temperature
	if temperature == 0 {
		temperature = 0.7
	}
	return &OpenAIInsights{
		client:      openai.NewClient(cfg.APIKey),
		model:       model,
		maxTokens:   maxTokens,
		temperature: float32(temperature),
	}
}

func (g *OpenAIInsights) Reasoning(ctx context.Context, analysis domain.ContentAnalysis, prediction domain.EngagementPrediction) ([]string, error) {
	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       g.model,
		MaxTokens:   g.maxTokens,
		Temperature: g.temperature,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: buildPrompt(analysis, prediction)},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("insight completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, nil
	}
	lines := strings.Split(strings.TrimSpace(resp.Choices[0].Message.Content), "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), "-"))
		if line != "" {
			out = append(out, line)
		}
	}
	return out, nil
}

func buildPrompt(analysis domain.ContentAnalysis, prediction domain.EngagementPrediction) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Platform: %s, content type: %s\n", analysis.Platform, analysis.Content.ContentType)
	fmt.Fprintf(&b, "Hook strength: %.2f, visual quality: %.2f, sentiment: %.2f\n",
		analysis.Content.HookStrength, analysis.Content.VisualQuality, analysis.Content.Sentiment)
	fmt.Fprintf(&b, "Trend alignment: %.2f, trend freshness: %.2f\n",
		analysis.Trends.OverallScore, analysis.Trends.Freshness)
	if analysis.Creator != nil {
		fmt.Fprintf(&b, "Creator consistency: %.2f over %d past posts\n",
			analysis.Creator.ConsistencyScore, analysis.Creator.HistoricalPosts)
	}
	fmt.Fprintf(&b, "Predicted views %d (range %d-%d), engagement rate %.3f, confidence %.2f\n",
		prediction.PredictedViews, prediction.ViewsLow, prediction.ViewsHigh, prediction.EngagementRate, prediction.Confidence)
	return b.String()
}
