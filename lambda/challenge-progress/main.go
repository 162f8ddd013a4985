package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/shahriar7ahmed/aura-pastel-insight-nexus/internal/auth"
	"github.com/shahriar7ahmed/aura-pastel-insight-nexus/internal/db"
	"github.com/shahriar7ahmed/aura-pastel-insight-nexus/internal/store"
)

type ProgressRequest struct {
	Increment int `json:"increment,omitempty"`
}

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

	switch request.HTTPMethod {
	case "GET":
		return listChallenges(ctx, userID)
	case "POST":
		return joinChallenge(ctx, userID, request)
	case "PATCH":
		return advanceChallenge(ctx, userID, request)
	case "DELETE":
		return quitChallenge(ctx, userID, request)
	default:
		return createErrorResponse(405, "METHOD_NOT_ALLOWED", "Unsupported method", request.HTTPMethod), nil
	}
}

// listChallenges merges the catalog with the user's enrollment status.
func listChallenges(ctx context.Context, userID string) (events.APIGatewayProxyResponse, error) {
	challenges, err := store.ListChallenges(ctx)
	if err != nil {
		return createErrorResponse(500, "SERVICE_ERROR", "Failed to fetch challenges", err.Error()), nil
	}

	progress, err := store.FetchChallengeProgress(ctx, userID)
	if err != nil {
		return createErrorResponse(500, "SERVICE_ERROR", "Failed to fetch challenge progress", err.Error()), nil
	}

	byChallenge := make(map[string]int)
	for i, p := range progress {
		byChallenge[p.ChallengeID] = i
	}

	type enrichedChallenge struct {
		ID          string      `json:"id"`
		Title       string      `json:"title"`
		Description string      `json:"description"`
		GoalValue   int         `json:"goal_value"`
		Metric      string      `json:"metric"`
		Status      string      `json:"status"` // available | active | completed
		Progress    interface{} `json:"progress,omitempty"`
	}

	enriched := make([]enrichedChallenge, 0, len(challenges))
	for _, c := range challenges {
		ec := enrichedChallenge{
			ID:          c.ID,
			Title:       c.Title,
			Description: c.Description,
			GoalValue:   c.GoalValue,
			Metric:      c.Metric,
			Status:      "available",
		}
		if i, ok := byChallenge[c.ID]; ok {
			ec.Progress = progress[i]
			if progress[i].Completed {
				ec.Status = "completed"
			} else {
				ec.Status = "active"
			}
		}
		enriched = append(enriched, ec)
	}

	return jsonResponse(200, map[string]interface{}{"challenges": enriched})
}

func joinChallenge(ctx context.Context, userID string, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	challengeID := request.PathParameters["id"]
	if challengeID == "" {
		return createErrorResponse(400, "VALIDATION_ERROR", "Challenge id is required", ""), nil
	}

	record, err := store.JoinChallenge(ctx, userID, challengeID)
	if err == store.ErrNotFound {
		return createErrorResponse(404, "NOT_FOUND", "Challenge not found", ""), nil
	}
	if err == store.ErrAlreadyJoined {
		return createErrorResponse(400, "VALIDATION_ERROR", "Already joined this challenge", ""), nil
	}
	if err != nil {
		return createErrorResponse(500, "SERVICE_ERROR", "Failed to join challenge", err.Error()), nil
	}

	return jsonResponse(201, record)
}

func advanceChallenge(ctx context.Context, userID string, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	challengeID := request.PathParameters["id"]
	if challengeID == "" {
		return createErrorResponse(400, "VALIDATION_ERROR", "Challenge id is required", ""), nil
	}

	req := ProgressRequest{Increment: 1}
	if request.Body != "" {
		if err := json.Unmarshal([]byte(request.Body), &req); err != nil {
			return createErrorResponse(400, "INVALID_REQUEST", "Invalid JSON in request body", err.Error()), nil
		}
	}

	record, err := store.AdvanceChallenge(ctx, userID, challengeID, req.Increment)
	if err == store.ErrNotFound {
		return createErrorResponse(404, "NOT_FOUND", "Not enrolled in this challenge", ""), nil
	}
	if err == store.ErrAlreadyCompleted {
		return createErrorResponse(400, "VALIDATION_ERROR", "Challenge already completed", ""), nil
	}
	if err != nil {
		return createErrorResponse(500, "SERVICE_ERROR", "Failed to update progress", err.Error()), nil
	}

	message := "Progress updated"
	if record.Completed {
		message = "Challenge completed!"
	}

	return jsonResponse(200, map[string]interface{}{
		"message":   message,
		"progress":  record,
		"completed": record.Completed,
	})
}

func quitChallenge(ctx context.Context, userID string, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	challengeID := request.PathParameters["id"]
	if challengeID == "" {
		return createErrorResponse(400, "VALIDATION_ERROR", "Challenge id is required", ""), nil
	}

	// Completed challenges cannot be quit.
	err := store.QuitChallenge(ctx, userID, challengeID)
	if err == store.ErrNotFound {
		return createErrorResponse(404, "NOT_FOUND", "No active enrollment for this challenge", ""), nil
	}
	if err != nil {
		return createErrorResponse(500, "SERVICE_ERROR", "Failed to quit challenge", err.Error()), nil
	}

	return jsonResponse(200, map[string]string{"message": "Challenge quit successfully"})
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
