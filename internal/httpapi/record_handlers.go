package httpapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shahriar7ahmed/aura-pastel-insight-nexus/internal/artseed"
	"github.com/shahriar7ahmed/aura-pastel-insight-nexus/internal/models"
	"github.com/shahriar7ahmed/aura-pastel-insight-nexus/internal/sentiment"
	"github.com/shahriar7ahmed/aura-pastel-insight-nexus/internal/store"
)

const maxEntryLength = 10000

func StartFocusSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := getUserID(c)
		if userID == "" {
			return
		}
		var body struct {
			Task     string `json:"task"`
			Category string `json:"category"`
		}
		if err := c.BindJSON(&body); err != nil || body.Task == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "task is required"})
			return
		}

		session, err := store.CreateFocusSession(c.Request.Context(), userID, body.Task, body.Category)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, session)
	}
}

func ListFocusSessions() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := getUserID(c)
		if userID == "" {
			return
		}
		limit := 50
		if l := c.Query("limit"); l != "" {
			if n, err := strconv.Atoi(l); err == nil && n > 0 {
				limit = n
			}
		}

		sessions, err := store.FetchFocusSessions(c.Request.Context(), userID, store.FocusFilter{Limit: limit})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"sessions": sessions, "total": len(sessions)})
	}
}

func CompleteFocusSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := getUserID(c)
		if userID == "" {
			return
		}
		var body struct {
			EndTime *time.Time `json:"end_time"`
		}
		// Body is optional; default end time is now.
		c.ShouldBindJSON(&body)
		endTime := time.Now()
		if body.EndTime != nil {
			endTime = *body.EndTime
		}

		session, err := store.CompleteFocusSession(c.Request.Context(), userID, c.Param("id"), endTime)
		switch err {
		case nil:
			c.JSON(http.StatusOK, session)
		case store.ErrNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		case store.ErrAlreadyCompleted:
			c.JSON(http.StatusBadRequest, gin.H{"error": "session already completed"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
	}
}

func DeleteFocusSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := getUserID(c)
		if userID == "" {
			return
		}
		err := store.DeleteFocusSession(c.Request.Context(), userID, c.Param("id"))
		switch err {
		case nil:
			c.JSON(http.StatusOK, gin.H{"message": "session deleted"})
		case store.ErrNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
	}
}

func CreateJournalEntry() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := getUserID(c)
		if userID == "" {
			return
		}
		var body struct {
			Text           string   `json:"text"`
			SentimentScore *float64 `json:"sentiment_score"`
			ArtStyle       string   `json:"art_style"`
			ArtSeed        string   `json:"art_seed"`
		}
		if err := c.BindJSON(&body); err != nil || body.Text == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "text is required"})
			return
		}
		if len(body.Text) > maxEntryLength {
			c.JSON(http.StatusBadRequest, gin.H{"error": "text exceeds maximum length"})
			return
		}
		if body.SentimentScore != nil && (*body.SentimentScore < -1 || *body.SentimentScore > 1) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "sentiment_score must be between -1 and 1"})
			return
		}

		score := 0.0
		if body.SentimentScore != nil {
			score = *body.SentimentScore
		} else {
			score = sentiment.Analyze(body.Text)
		}
		style := body.ArtStyle
		if style == "" {
			style = artseed.Style(score)
		}
		seed := body.ArtSeed
		if seed == "" {
			seed = artseed.Seed(body.Text, score)
		}

		entry := &models.JournalEntry{
			UserID:         userID,
			Text:           body.Text,
			SentimentScore: score,
			ArtStyle:       style,
			ArtSeed:        seed,
		}
		if err := store.CreateJournalEntry(c.Request.Context(), entry); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, entry)
	}
}

func ListJournalEntries() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := getUserID(c)
		if userID == "" {
			return
		}
		limit := 50
		if l := c.Query("limit"); l != "" {
			if n, err := strconv.Atoi(l); err == nil && n > 0 {
				limit = n
			}
		}

		entries, err := store.FetchJournalEntries(c.Request.Context(), userID,
			store.JournalFilter{Limit: limit, NewestFirst: true})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"entries": entries, "total": len(entries)})
	}
}

func UpdateJournalEntry() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := getUserID(c)
		if userID == "" {
			return
		}
		var body struct {
			Text           *string  `json:"text"`
			SentimentScore *float64 `json:"sentiment_score"`
			ArtStyle       *string  `json:"art_style"`
			ArtSeed        *string  `json:"art_seed"`
		}
		if err := c.BindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid entry payload"})
			return
		}
		if body.Text != nil && len(*body.Text) > maxEntryLength {
			c.JSON(http.StatusBadRequest, gin.H{"error": "text exceeds maximum length"})
			return
		}

		entry, err := store.UpdateJournalEntry(c.Request.Context(), userID, c.Param("id"), store.JournalPatch{
			Text:           body.Text,
			SentimentScore: body.SentimentScore,
			ArtStyle:       body.ArtStyle,
			ArtSeed:        body.ArtSeed,
		})
		switch err {
		case nil:
			c.JSON(http.StatusOK, entry)
		case store.ErrNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": "entry not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
	}
}

func DeleteJournalEntry() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := getUserID(c)
		if userID == "" {
			return
		}
		err := store.DeleteJournalEntry(c.Request.Context(), userID, c.Param("id"))
		switch err {
		case nil:
			c.JSON(http.StatusOK, gin.H{"message": "entry deleted"})
		case store.ErrNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": "entry not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
	}
}

func ListChallenges() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := getUserID(c)
		if userID == "" {
			return
		}
		challenges, err := store.ListChallenges(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		progress, err := store.FetchChallengeProgress(c.Request.Context(), userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"challenges": challenges, "progress": progress})
	}
}

func JoinChallenge() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := getUserID(c)
		if userID == "" {
			return
		}
		record, err := store.JoinChallenge(c.Request.Context(), userID, c.Param("id"))
		switch err {
		case nil:
			c.JSON(http.StatusCreated, record)
		case store.ErrNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": "challenge not found"})
		case store.ErrAlreadyJoined:
			c.JSON(http.StatusBadRequest, gin.H{"error": "already joined this challenge"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
	}
}

func AdvanceChallenge() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := getUserID(c)
		if userID == "" {
			return
		}
		body := struct {
			Increment int `json:"increment"`
		}{Increment: 1}
		c.ShouldBindJSON(&body)

		record, err := store.AdvanceChallenge(c.Request.Context(), userID, c.Param("id"), body.Increment)
		switch err {
		case nil:
			message := "progress updated"
			if record.Completed {
				message = "challenge completed!"
			}
			c.JSON(http.StatusOK, gin.H{"message": message, "progress": record, "completed": record.Completed})
		case store.ErrNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": "not enrolled in this challenge"})
		case store.ErrAlreadyCompleted:
			c.JSON(http.StatusBadRequest, gin.H{"error": "challenge already completed"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
	}
}

func QuitChallenge() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := getUserID(c)
		if userID == "" {
			return
		}
		err := store.QuitChallenge(c.Request.Context(), userID, c.Param("id"))
		switch err {
		case nil:
			c.JSON(http.StatusOK, gin.H{"message": "challenge quit"})
		case store.ErrNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": "no active enrollment for this challenge"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
	}
}
