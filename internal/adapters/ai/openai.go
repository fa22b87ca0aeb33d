package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"eventdesk/internal/domain"
)

const chatCompletionsURL = "https://api.openai.com/v1/chat/completions"

// Config holds configuration for the OpenAI-backed summarizer.
type Config struct {
	APIKey string
	Model  string
}

// NewSummarizer returns an OpenAI-backed summarizer when an API key is
// configured, otherwise the deterministic stub. Callers treat both
// identically.
func NewSummarizer(cfg Config, client *http.Client) domain.Summarizer {
	if cfg.APIKey == "" {
		return NewStubSummarizer()
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &openAISummarizer{
		client: client,
		apiKey: cfg.APIKey,
		model:  cfg.Model,
	}
}

type openAISummarizer struct {
	client *http.Client
	apiKey string
	model  string
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

const eventSystemPrompt = `You are an expert event analyst and summarizer. Analyze the event data and produce a clear, well-structured summary covering the event title and description, dates, attendee counts by status (never email or phone details), agenda items in order, questions and polls, and any highlights or action items.`

func (s *openAISummarizer) SummarizeEvent(ctx context.Context, event *domain.Event) (string, error) {
	user := "Please summarize the following event details in a clear and organized format:\n\n" + renderEvent(event)
	return s.complete(ctx, eventSystemPrompt, user)
}

func (s *openAISummarizer) SummarizeAgendaItem(ctx context.Context, item *domain.AgendaItem) (string, error) {
	user := "Please summarize the following agenda item, including its schedule, speaker and description:\n\n" + renderAgendaItem(item)
	return s.complete(ctx, eventSystemPrompt, user)
}

func (s *openAISummarizer) SummarizeQuestions(ctx context.Context, questions []*domain.Question) (string, error) {
	user := "Please summarize the following Q&A session, highlighting answered and open questions:\n\n" + renderQuestions(questions)
	return s.complete(ctx, eventSystemPrompt, user)
}

func (s *openAISummarizer) complete(ctx context.Context, system, user string) (string, error) {
	body, err := json.Marshal(chatCompletionRequest{
		Model: s.model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		Temperature: 0.7,
		MaxTokens:   1500,
	})
	if err != nil {
		return "", fmt.Errorf("encode completion request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, chatCompletionsURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to call completion api: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("completion api returned status: %d", resp.StatusCode)
	}

	var data chatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return "", fmt.Errorf("failed to decode completion response: %w", err)
	}
	if len(data.Choices) == 0 {
		return "", fmt.Errorf("completion api returned no choices")
	}
	return strings.TrimSpace(data.Choices[0].Message.Content), nil
}

func renderEvent(e *domain.Event) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Event: %s\nDescription: %s\nStart: %s\nEnd: %s\nCreated by: %s\n",
		e.Name, e.Description, e.StartDate.Format("2006-01-02 15:04"), e.EndDate.Format("2006-01-02 15:04"), e.CreatedBy)
	counts := map[domain.AttendeeStatus]int{}
	for _, a := range e.Attendees {
		counts[a.Status]++
	}
	fmt.Fprintf(&b, "Attendees: %d total", len(e.Attendees))
	for status, n := range counts {
		fmt.Fprintf(&b, ", %d %s", n, strings.ToLower(string(status)))
	}
	b.WriteString("\nAgenda:\n")
	for _, item := range e.Agenda {
		b.WriteString(renderAgendaItem(item))
	}
	return b.String()
}

func renderAgendaItem(item *domain.AgendaItem) string {
	var b strings.Builder
	fmt.Fprintf(&b, "- %s (%s - %s)",
		item.Title, item.StartTime.Format("15:04"), item.EndTime.Format("15:04"))
	if item.Speaker != "" {
		fmt.Fprintf(&b, " by %s", item.Speaker)
	}
	if item.Description != "" {
		fmt.Fprintf(&b, ": %s", item.Description)
	}
	fmt.Fprintf(&b, " [%d questions, %d polls]\n", len(item.Questions), len(item.Polls))
	return b.String()
}

func renderQuestions(questions []*domain.Question) string {
	var b strings.Builder
	for _, q := range questions {
		fmt.Fprintf(&b, "Q (%s, %d upvotes): %s\n", q.AskedBy, q.Upvotes, q.Text)
		if q.Answer != nil {
			fmt.Fprintf(&b, "A: %s\n", *q.Answer)
		} else {
			b.WriteString("A: (unanswered)\n")
		}
	}
	return b.String()
}
