package ai

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/smartdelivery/smartdelivery-golang/internal/models"
)

// FallbackReport is served whenever the language-model call cannot produce
// a summary. Callers always get readable text, never a raw upstream fault.
const FallbackReport = "AI analysis is currently unavailable. Please try again later."

// ReportService turns a driver's order history into a short natural-language
// performance review via the Gemini API.
type ReportService struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

// NewReportService initializes the Gemini client. An empty API key returns
// a disabled service that serves the fallback text, so a missing key
// degrades reports instead of failing startup.
func NewReportService(ctx context.Context, apiKey, model string, timeout time.Duration) (*ReportService, error) {
	s := &ReportService{model: model, timeout: timeout}
	if s.model == "" {
		s.model = "gemini-1.5-flash"
	}
	if s.timeout <= 0 {
		s.timeout = 15 * time.Second
	}
	if apiKey == "" {
		return s, nil
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	s.client = client
	return s, nil
}

// Close releases the underlying client.
func (s *ReportService) Close() error {
	if s.client == nil {
		return nil
	}
	return s.client.Close()
}

// DriverReport summarizes the driver's performance from their (already
// filtered) order list. On any upstream failure it returns FallbackReport
// together with the wrapped error for logging; the text is always usable.
func (s *ReportService) DriverReport(ctx context.Context, driverName string, orders []models.Order) (string, error) {
	text, err := s.generate(ctx, driverName, orders)
	if err != nil {
		return FallbackReport, fmt.Errorf("driver report: %w (%w)", models.ErrUpstreamUnavailable, err)
	}
	return text, nil
}

func (s *ReportService) generate(ctx context.Context, driverName string, orders []models.Order) (string, error) {
	if s.client == nil {
		return "", fmt.Errorf("gemini client not configured")
	}
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var delivered int
	var earnings float64
	for i := range orders {
		if orders[i].IsDelivered() {
			delivered++
			earnings += orders[i].Price
		}
	}

	prompt := fmt.Sprintf(
		"Analyze the performance of driver %s. "+
			"They have delivered %d out of %d assigned orders. "+
			"Total earnings generated: $%.2f. "+
			"Provide a short, professional performance review (max 3 sentences) focusing on efficiency and earnings.",
		driverName, delivered, len(orders), earnings)

	model := s.client.GenerativeModel(s.model)
	res, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", err
	}
	if len(res.Candidates) == 0 || res.Candidates[0].Content == nil || len(res.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty response from model")
	}

	var sb strings.Builder
	for _, part := range res.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("no text parts in response")
	}
	return sb.String(), nil
}
