package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/shahriar7ahmed/aura-pastel-insight-nexus/internal/artseed"
	"github.com/shahriar7ahmed/aura-pastel-insight-nexus/internal/auth"
	"github.com/shahriar7ahmed/aura-pastel-insight-nexus/internal/db"
	"github.com/shahriar7ahmed/aura-pastel-insight-nexus/internal/idempotency"
	"github.com/shahriar7ahmed/aura-pastel-insight-nexus/internal/models"
	"github.com/shahriar7ahmed/aura-pastel-insight-nexus/internal/sentiment"
	"github.com/shahriar7ahmed/aura-pastel-insight-nexus/internal/store"
)

const maxEntryLength = 10000

type JournalEntryRequest struct {
	Text           string   `json:"text"`
	SentimentScore *float64 `json:"sentiment_score,omitempty"`
	ArtStyle       string   `json:"art_style,omitempty"`
	ArtSeed        string   `json:"art_seed,omitempty"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

func handler(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	// Extract user ID from JWT token
	userID, err := extractUserIDFromRequest(request)
	if err != nil {
		return createErrorResponse(401, "UNAUTHORIZED", "Invalid or missing authentication token", err.Error()), nil
	}

	switch request.HTTPMethod {
	case "POST":
		return createEntry(ctx, userID, request)
	case "GET":
		return listEntries(ctx, userID, request)
	case "PATCH":
		return updateEntry(ctx, userID, request)
	case "DELETE":
		return deleteEntry(ctx, userID, request)
	default:
		return createErrorResponse(405, "METHOD_NOT_ALLOWED", "Unsupported method", request.HTTPMethod), nil
	}
}

func createEntry(ctx context.Context, userID string, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	var req JournalEntryRequest
	if err := json.Unmarshal([]byte(request.Body), &req); err != nil {
		return createErrorResponse(400, "INVALID_REQUEST", "Invalid JSON in request body", err.Error()), nil
	}

	if req.Text == "" {
		return createErrorResponse(400, "VALIDATION_ERROR", "Text is required", ""), nil
	}
	if len(req.Text) > maxEntryLength {
		return createErrorResponse(400, "VALIDATION_ERROR", "Text exceeds maximum length", ""), nil
	}
	if req.SentimentScore != nil && (*req.SentimentScore < -1 || *req.SentimentScore > 1) {
		return createErrorResponse(400, "VALIDATION_ERROR", "sentiment_score must be between -1 and 1", ""), nil
	}

	// Process request with idempotency
	response, err := idempotency.ProcessIdempotentRequest(
		ctx,
		userID,
		"POST /journal/entries",
		request.Body,
		func() (interface{}, error) {
			return processJournalEntry(ctx, userID, req)
		},
	)
	if err != nil {
		return createErrorResponse(500, "PROCESSING_ERROR", "Failed to process journal entry", err.Error()), nil
	}

	return jsonResponse(201, response)
}

// processJournalEntry fills in the derived fields the client did not supply.
// Sentiment is computed once at creation and never recomputed; the art style
// and seed derive from that sentiment.
func processJournalEntry(ctx context.Context, userID string, req JournalEntryRequest) (*models.JournalEntry, error) {
	score := 0.0
	if req.SentimentScore != nil {
		score = *req.SentimentScore
	} else {
		score = sentiment.Analyze(req.Text)
	}

	style := req.ArtStyle
	if style == "" {
		style = artseed.Style(score)
	}

	seed := req.ArtSeed
	if seed == "" {
		seed = artseed.Seed(req.Text, score)
	}

	entry := &models.JournalEntry{
		UserID:         userID,
		Text:           req.Text,
		SentimentScore: score,
		ArtStyle:       style,
		ArtSeed:        seed,
	}
	if err := store.CreateJournalEntry(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func listEntries(ctx context.Context, userID string, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	limit := 50
	if l := request.QueryStringParameters["limit"]; l != "" {
		fmt.Sscanf(l, "%d", &limit)
	}

	entries, err := store.FetchJournalEntries(ctx, userID, store.JournalFilter{
		Limit:       limit,
		NewestFirst: true,
	})
	if err != nil {
		return createErrorResponse(500, "SERVICE_ERROR", "Failed to fetch entries", err.Error()), nil
	}

	return jsonResponse(200, map[string]interface{}{
		"entries": entries,
		"total":   len(entries),
	})
}

func updateEntry(ctx context.Context, userID string, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	entryID := request.PathParameters["id"]
	if entryID == "" {
		return createErrorResponse(400, "VALIDATION_ERROR", "Entry id is required", ""), nil
	}

	var req JournalEntryRequest
	if err := json.Unmarshal([]byte(request.Body), &req); err != nil {
		return createErrorResponse(400, "INVALID_REQUEST", "Invalid JSON in request body", err.Error()), nil
	}
	if len(req.Text) > maxEntryLength {
		return createErrorResponse(400, "VALIDATION_ERROR", "Text exceeds maximum length", ""), nil
	}

	patch := store.JournalPatch{
		SentimentScore: req.SentimentScore,
	}
	if req.Text != "" {
		patch.Text = &req.Text
	}
	if req.ArtStyle != "" {
		patch.ArtStyle = &req.ArtStyle
	}
	if req.ArtSeed != "" {
		patch.ArtSeed = &req.ArtSeed
	}

	entry, err := store.UpdateJournalEntry(ctx, userID, entryID, patch)
	if err == store.ErrNotFound {
		return createErrorResponse(404, "NOT_FOUND", "Entry not found", ""), nil
	}
	if err != nil {
		return createErrorResponse(500, "SERVICE_ERROR", "Failed to update entry", err.Error()), nil
	}

	return jsonResponse(200, entry)
}

func deleteEntry(ctx context.Context, userID string, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	entryID := request.PathParameters["id"]
	if entryID == "" {
		return createErrorResponse(400, "VALIDATION_ERROR", "Entry id is required", ""), nil
	}

	err := store.DeleteJournalEntry(ctx, userID, entryID)
	if err == store.ErrNotFound {
		return createErrorResponse(404, "NOT_FOUND", "Entry not found", ""), nil
	}
	if err != nil {
		return createErrorResponse(500, "SERVICE_ERROR", "Failed to delete entry", err.Error()), nil
	}

	return jsonResponse(200, map[string]string{"message": "Entry deleted successfully"})
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
