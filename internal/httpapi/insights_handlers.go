package httpapi

import (
	"fmt"
	"log"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shahriar7ahmed/aura-pastel-insight-nexus/internal/insights"
	"github.com/shahriar7ahmed/aura-pastel-insight-nexus/internal/models"
	"github.com/shahriar7ahmed/aura-pastel-insight-nexus/internal/store"
)

// InsightsDashboard fetches all four record collections concurrently; any
// failed branch degrades to an empty collection so the score still renders.
func InsightsDashboard() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := getUserID(c)
		if userID == "" {
			return
		}
		ctx := c.Request.Context()

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
				log.Printf("dashboard: focus fetch failed: %v", err)
			}
		}()
		go func() {
			defer wg.Done()
			var err error
			entries, err = store.FetchJournalEntries(ctx, userID, store.JournalFilter{Limit: 50, NewestFirst: true})
			if err != nil {
				log.Printf("dashboard: journal fetch failed: %v", err)
			}
		}()
		go func() {
			defer wg.Done()
			var err error
			records, err = store.FetchChallengeProgress(ctx, userID)
			if err != nil {
				log.Printf("dashboard: challenge fetch failed: %v", err)
			}
		}()
		go func() {
			defer wg.Done()
			var err error
			profile, err = store.FetchProfile(ctx, userID)
			if err != nil {
				log.Printf("dashboard: profile fetch failed: %v", err)
			}
		}()
		wg.Wait()

		result := insights.ComputeDashboard(sessions, entries, records, time.Now())

		c.JSON(http.StatusOK, gin.H{
			"aura_score":   result.AuraScore,
			"focus":        result.Focus,
			"journal":      result.Journal,
			"challenges":   result.Challenges,
			"profile":      profile,
			"generated_at": time.Now().UTC().Format(time.RFC3339),
		})
	}
}

func WeeklySummary() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := getUserID(c)
		if userID == "" {
			return
		}
		ctx := c.Request.Context()
		weekAgo := time.Now().AddDate(0, 0, -7)

		sessions, err := store.FetchFocusSessions(ctx, userID, store.FocusFilter{Since: &weekAgo, CompletedOnly: true})
		if err != nil {
			log.Printf("weekly summary: focus fetch failed: %v", err)
		}
		entries, err := store.FetchJournalEntries(ctx, userID, store.JournalFilter{Since: &weekAgo})
		if err != nil {
			log.Printf("weekly summary: journal fetch failed: %v", err)
		}

		c.JSON(http.StatusOK, gin.H{
			"period":     "week",
			"start_date": weekAgo.UTC().Format(time.RFC3339),
			"end_date":   time.Now().UTC().Format(time.RFC3339),
			"summary":    insights.ComputeWeeklySummary(sessions, entries),
		})
	}
}

func ProductivityPatterns() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := getUserID(c)
		if userID == "" {
			return
		}
		thirtyDaysAgo := time.Now().AddDate(0, 0, -30)

		sessions, err := store.FetchFocusSessions(c.Request.Context(), userID,
			store.FocusFilter{Since: &thirtyDaysAgo, CompletedOnly: true})
		if err != nil {
			log.Printf("productivity patterns: focus fetch failed: %v", err)
		}

		if len(sessions) == 0 {
			c.JSON(http.StatusOK, gin.H{
				"message":  "Not enough data yet. Complete more focus sessions to see patterns.",
				"patterns": []interface{}{},
			})
			return
		}

		patterns := insights.ComputeProductivityPatterns(sessions)
		c.JSON(http.StatusOK, gin.H{
			"period":          "last_30_days",
			"total_sessions":  len(sessions),
			"patterns":        patterns,
			"recommendations": insights.ComputeRecommendations(patterns),
		})
	}
}

func MoodTrends() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := getUserID(c)
		if userID == "" {
			return
		}
		days := 30
		if d := c.Query("days"); d != "" {
			if n, err := strconv.Atoi(d); err == nil && n > 0 {
				days = n
			}
		}
		since := time.Now().AddDate(0, 0, -days)

		entries, err := store.FetchJournalEntries(c.Request.Context(), userID, store.JournalFilter{Since: &since})
		if err != nil {
			log.Printf("mood trends: journal fetch failed: %v", err)
		}

		if len(entries) == 0 {
			c.JSON(http.StatusOK, gin.H{"message": "No journal entries found", "trends": []interface{}{}})
			return
		}

		// Reverse for the short-term trend's most-recent-first contract.
		newestFirst := make([]models.JournalEntry, len(entries))
		for i, e := range entries {
			newestFirst[len(entries)-1-i] = e
		}

		mood := insights.ComputeMoodInsights(entries)
		c.JSON(http.StatusOK, gin.H{
			"period":           fmt.Sprintf("%d_days", days),
			"entries_analyzed": len(entries),
			"trends":           insights.ComputeMoodTrends(entries),
			"average_mood":     mood.AverageSentiment,
			"mood_stability":   insights.MoodStability(entries),
			"mood_trend":       insights.ShortTermTrend(newestFirst),
		})
	}
}
