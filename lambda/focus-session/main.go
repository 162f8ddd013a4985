package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/shahriar7ahmed/aura-pastel-insight-nexus/internal/auth"
	"github.com/shahriar7ahmed/aura-pastel-insight-nexus/internal/db"
	"github.com/shahriar7ahmed/aura-pastel-insight-nexus/internal/store"
)

type StartSessionRequest struct {
	Task     string `json:"task"`
	Category string `json:"category,omitempty"`
}

type CompleteSessionRequest struct {
	EndTime *time.Time `json:"end_time,omitempty"`
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
	case "POST":
		return startSession(ctx, userID, request)
	case "GET":
		return listSessions(ctx, userID, request)
	case "PATCH":
		return completeSession(ctx, userID, request)
	case "DELETE":
		return deleteSession(ctx, userID, request)
	default:
		return createErrorResponse(405, "METHOD_NOT_ALLOWED", "Unsupported method", request.HTTPMethod), nil
	}
}

func startSession(ctx context.Context, userID string, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	var req StartSessionRequest
	if err := json.Unmarshal([]byte(request.Body), &req); err != nil {
		return createErrorResponse(400, "INVALID_REQUEST", "Invalid JSON in request body", err.Error()), nil
	}
	if req.Task == "" {
		return createErrorResponse(400, "VALIDATION_ERROR", "Task is required", ""), nil
	}

	session, err := store.CreateFocusSession(ctx, userID, req.Task, req.Category)
	if err != nil {
		return createErrorResponse(500, "SERVICE_ERROR", "Failed to create session", err.Error()), nil
	}

	return jsonResponse(201, session)
}

func listSessions(ctx context.Context, userID string, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	limit := 50
	if l := request.QueryStringParameters["limit"]; l != "" {
		fmt.Sscanf(l, "%d", &limit)
	}

	sessions, err := store.FetchFocusSessions(ctx, userID, store.FocusFilter{Limit: limit})
	if err != nil {
		return createErrorResponse(500, "SERVICE_ERROR", "Failed to fetch sessions", err.Error()), nil
	}

	return jsonResponse(200, map[string]interface{}{
		"sessions": sessions,
		"total":    len(sessions),
	})
}

// completeSession ends a running session. The duration is derived from the
// recorded start time and the supplied (or current) end time; the session is
// immutable afterward.
func completeSession(ctx context.Context, userID string, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	sessionID := request.PathParameters["id"]
	if sessionID == "" {
		return createErrorResponse(400, "VALIDATION_ERROR", "Session id is required", ""), nil
	}

	var req CompleteSessionRequest
	if request.Body != "" {
		if err := json.Unmarshal([]byte(request.Body), &req); err != nil {
			return createErrorResponse(400, "INVALID_REQUEST", "Invalid JSON in request body", err.Error()), nil
		}
	}

	endTime := time.Now()
	if req.EndTime != nil {
		endTime = *req.EndTime
	}

	session, err := store.CompleteFocusSession(ctx, userID, sessionID, endTime)
	if err == store.ErrNotFound {
		return createErrorResponse(404, "NOT_FOUND", "Session not found", ""), nil
	}
	if err == store.ErrAlreadyCompleted {
		return createErrorResponse(400, "VALIDATION_ERROR", "Session already completed", ""), nil
	}
	if err != nil {
		return createErrorResponse(500, "SERVICE_ERROR", "Failed to complete session", err.Error()), nil
	}

	return jsonResponse(200, session)
}

func deleteSession(ctx context.Context, userID string, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	sessionID := request.PathParameters["id"]
	if sessionID == "" {
		return createErrorResponse(400, "VALIDATION_ERROR", "Session id is required", ""), nil
	}

	err := store.DeleteFocusSession(ctx, userID, sessionID)
	if err == store.ErrNotFound {
		return createErrorResponse(404, "NOT_FOUND", "Session not found", ""), nil
	}
	if err != nil {
		return createErrorResponse(500, "SERVICE_ERROR", "Failed to delete session", err.Error()), nil
	}

	return jsonResponse(200, map[string]string{"message": "Session deleted successfully"})
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
