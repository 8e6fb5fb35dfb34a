package services

import (
	"context"
	"fmt"
	"time"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
	"github.com/tmc/langchaingo/schema"

	"HRDeskGo/models"
)

// InsightClient holds the LLM used for performance summaries.
type InsightClient struct {
	Chat llms.Model
}

func NewInsightClient(apiKey, apiEndpoint string) (*InsightClient, error) {
	model, err := openai.New(
		openai.WithToken(apiKey),
		openai.WithBaseURL(apiEndpoint),
		openai.WithModel("gpt-4o-mini"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create insight client: %w", err)
	}

	return &InsightClient{Chat: model}, nil
}

// InsightService generates natural-language performance summaries from
// the caller's task collection.
type InsightService struct {
	client *InsightClient
}

func NewInsightService(client *InsightClient) *InsightService {
	return &InsightService{client: client}
}

const insightSystemPrompt = `You are an HR productivity assistant. Given task
statistics for a reporting period, write a short performance summary:
2-4 sentences, plain language, one concrete suggestion. Do not invent
numbers that were not provided.`

// PerformanceSummary summarizes tasks with deadlines inside the period.
func (s *InsightService) PerformanceSummary(ctx context.Context, tasks []models.Task, req models.PerformanceInsightRequest) (string, error) {
	inPeriod := make([]models.Task, 0, len(tasks))
	for _, task := range tasks {
		deadline, err := task.DeadlineTime()
		if err != nil {
			continue
		}
		if deadline.Before(req.StartDate) || deadline.After(req.EndDate) {
			continue
		}
		inPeriod = append(inPeriod, task)
	}

	counts := CountByStatus(inPeriod)
	overdue := 0
	now := time.Now()
	for _, task := range inPeriod {
		if class, err := ClassifyTask(task, now); err == nil && class.Overdue {
			overdue++
		}
	}

	stats := fmt.Sprintf(
		"Period: %s (%s to %s). Tasks due in period: %d. Pending: %d, in progress: %d, completed: %d, currently overdue: %d.",
		req.Period,
		req.StartDate.Format("2006-01-02"),
		req.EndDate.Format("2006-01-02"),
		len(inPeriod),
		counts[models.StatusPending],
		counts[models.StatusInProgress],
		counts[models.StatusCompleted],
		overdue,
	)

	messages := []llms.MessageContent{
		{
			Role:  schema.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{llms.TextPart(insightSystemPrompt)},
		},
		{
			Role:  schema.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{llms.TextPart(stats)},
		},
	}

	response, err := s.client.Chat.GenerateContent(ctx, messages, llms.WithTemperature(0.4))
	if err != nil {
		return "", fmt.Errorf("generate performance summary: %w", err)
	}
	if len(response.Choices) == 0 {
		return "", fmt.Errorf("empty response from insight model")
	}
	return response.Choices[0].Content, nil
}
