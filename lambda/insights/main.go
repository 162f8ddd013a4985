package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/shahriar7ahmed/aura-pastel-insight-nexus/internal/auth"
	"github.com/shahriar7ahmed/aura-pastel-insight-nexus/internal/db"
	"github.com/shahriar7ahmed/aura-pastel-insight-nexus/internal/insights"
	"github.com/shahriar7ahmed/aura-pastel-insight-nexus/internal/models"
	"github.com/shahriar7ahmed/aura-pastel-insight-nexus/internal/store"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

func handler(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	userID, err := extractUserIDFromRequest(request)
	if err != nil {
		return createErrorResponse(401, "UNAUTHORIZED", "Invalid or missing authentication token", err.Error()), nil
	}

	if request.HTTPMethod != "GET" {
		return createErrorResponse(405, "METHOD_NOT_ALLOWED", "Unsupported method", request.HTTPMethod), nil
	}

	switch {
	case strings.HasSuffix(request.Path, "/dashboard"):
		return dashboard(ctx, userID)
	case strings.HasSuffix(request.Path, "/weekly-summary"):
		return weeklySummary(ctx, userID)
	case strings.HasSuffix(request.Path, "/productivity-patterns"):
		return productivityPatterns(ctx, userID)
	case strings.HasSuffix(request.Path, "/mood-trends"):
		return moodTrends(ctx, userID, request)
	default:
		return createErrorResponse(404, "NOT_FOUND", "Unknown insights path", request.Path), nil
	}
}

// dashboard fetches the four record collections concurrently and joins them
// through the aggregation engine. A failed fetch degrades to an empty
// collection so the score still renders as "not enough data yet".
func dashboard(ctx context.Context, userID string) (events.APIGatewayProxyResponse, error) {
	var (
		wg       sync.WaitGroup
		sessions []models.FocusSession
		entries  []models.JournalEntry
		records  []models.ChallengeProgress
		profile  *models.Profile
	)

	wg.Add(4)
	go func() {
		defer wg.Done()
		var err error
		sessions, err = store.FetchFocusSessions(ctx, userID, store.FocusFilter{CompletedOnly: true, Limit: 100})
		if err != nil {
			fmt.Printf("Warning: failed to fetch focus sessions: %v\n", err)
		}
	}()
	go func() {
		defer wg.Done()
		var err error
		entries, err = store.FetchJournalEntries(ctx, userID, store.JournalFilter{Limit: 50, NewestFirst: true})
		if err != nil {
			fmt.Printf("Warning: failed to fetch journal entries: %v\n", err)
		}
	}()
	go func() {
		defer wg.Done()
		var err error
		records, err = store.FetchChallengeProgress(ctx, userID)
		if err != nil {
			fmt.Printf("Warning: failed to fetch challenge progress: %v\n", err)
		}
	}()
	go func() {
		defer wg.Done()
		var err error
		profile, err = store.FetchProfile(ctx, userID)
		if err != nil {
			fmt.Printf("Warning: failed to fetch profile: %v\n", err)
		}
	}()
	wg.Wait()

	result := insights.ComputeDashboard(sessions, entries, records, time.Now())

	return jsonResponse(200, map[string]interface{}{
		"aura_score":   result.AuraScore,
		"focus":        result.Focus,
		"journal":      result.Journal,
		"challenges":   result.Challenges,
		"profile":      profile,
		"generated_at": time.Now().UTC().Format(time.RFC3339),
	})
}

func weeklySummary(ctx context.Context, userID string) (events.APIGatewayProxyResponse, error) {
	weekAgo := time.Now().AddDate(0, 0, -7)

	sessions, err := store.FetchFocusSessions(ctx, userID, store.FocusFilter{Since: &weekAgo, CompletedOnly: true})
	if err != nil {
		fmt.Printf("Warning: failed to fetch focus sessions: %v\n", err)
	}
	entries, err := store.FetchJournalEntries(ctx, userID, store.JournalFilter{Since: &weekAgo})
	if err != nil {
		fmt.Printf("Warning: failed to fetch journal entries: %v\n", err)
	}

	return jsonResponse(200, map[string]interface{}{
		"period":     "week",
		"start_date": weekAgo.UTC().Format(time.RFC3339),
		"end_date":   time.Now().UTC().Format(time.RFC3339),
		"summary":    insights.ComputeWeeklySummary(sessions, entries),
	})
}

func productivityPatterns(ctx context.Context, userID string) (events.APIGatewayProxyResponse, error) {
	thirtyDaysAgo := time.Now().AddDate(0, 0, -30)

	sessions, err := store.FetchFocusSessions(ctx, userID, store.FocusFilter{Since: &thirtyDaysAgo, CompletedOnly: true})
	if err != nil {
		fmt.Printf("Warning: failed to fetch focus sessions: %v\n", err)
	}

	if len(sessions) == 0 {
		return jsonResponse(200, map[string]interface{}{
			"message":  "Not enough data yet. Complete more focus sessions to see patterns.",
			"patterns": []interface{}{},
		})
	}

	patterns := insights.ComputeProductivityPatterns(sessions)

	return jsonResponse(200, map[string]interface{}{
		"period":          "last_30_days",
		"total_sessions":  len(sessions),
		"patterns":        patterns,
		"recommendations": insights.ComputeRecommendations(patterns),
	})
}

func moodTrends(ctx context.Context, userID string, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	days := 30
	if d := request.QueryStringParameters["days"]; d != "" {
		if n, err := strconv.Atoi(d); err == nil && n > 0 {
			days = n
		}
	}
	since := time.Now().AddDate(0, 0, -days)

	entries, err := store.FetchJournalEntries(ctx, userID, store.JournalFilter{Since: &since})
	if err != nil {
		fmt.Printf("Warning: failed to fetch journal entries: %v\n", err)
	}

	if len(entries) == 0 {
		return jsonResponse(200, map[string]interface{}{
			"message": "No journal entries found",
			"trends":  []interface{}{},
		})
	}

	// Entries arrive chronological; the short-term trend contract wants
	// most-recent-first, so reverse for that call only.
	newestFirst := make([]models.JournalEntry, len(entries))
	for i, e := range entries {
		newestFirst[len(entries)-1-i] = e
	}

	mood := insights.ComputeMoodInsights(entries)

	return jsonResponse(200, map[string]interface{}{
		"period":           fmt.Sprintf("%d_days", days),
		"entries_analyzed": len(entries),
		"trends":           insights.ComputeMoodTrends(entries),
		"average_mood":     mood.AverageSentiment,
		"mood_stability":   insights.MoodStability(entries),
		"mood_trend":       insights.ShortTermTrend(newestFirst),
	})
}

func extractUserIDFromRequest(request events.APIGatewayProxyRequest) (string, error) {
	authHeader := request.Headers["Authorization"]
	if authHeader == "" {
		return "", fmt.Errorf("missing authorization header")
	}

	claims, err := auth.ValidateToken(authHeader)
	if err != nil {
		return "", fmt.Errorf("invalid token: %v", err)
	}

	return claims.UserID, nil
}

func jsonResponse(statusCode int, payload interface{}) (events.APIGatewayProxyResponse, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return createErrorResponse(500, "SERIALIZATION_ERROR", "Failed to serialize response", err.Error()), nil
	}

	return events.APIGatewayProxyResponse{
		StatusCode: statusCode,
		Headers: map[string]string{
			"Content-Type": "application/json",
		},
		Body: string(body),
	}, nil
}

func createErrorResponse(statusCode int, code, message, details string) events.APIGatewayProxyResponse {
	errorResp := ErrorResponse{
		Error:   message,
		Code:    code,
		Details: details,
	}

	body, _ := json.Marshal(errorResp)
	return events.APIGatewayProxyResponse{
		StatusCode: statusCode,
		Headers: map[string]string{
			"Content-Type": "application/json",
		},
		Body: string(body),
	}
}

func init() {
	if err := db.InitDB(); err != nil {
		fmt.Printf("Error initializing database: %v\n", err)
		os.Exit(1)
	}
}

func main() {
	lambda.Start(handler)
}
