package httpapi

import (
	"github.com/gin-gonic/gin"
)

func SetupRoutes(api *gin.RouterGroup) {
	api.POST("/auth/register", Register())
	api.POST("/auth/login", Login())

	protected := api.Group("/")
	protected.Use(Authenticate())
	{
		protected.POST("/focus/sessions", StartFocusSession())
		protected.GET("/focus/sessions", ListFocusSessions())
		protected.PATCH("/focus/sessions/:id", CompleteFocusSession())
		protected.DELETE("/focus/sessions/:id", DeleteFocusSession())

		protected.POST("/journal/entries", CreateJournalEntry())
		protected.GET("/journal/entries", ListJournalEntries())
		protected.PATCH("/journal/entries/:id", UpdateJournalEntry())
		protected.DELETE("/journal/entries/:id", DeleteJournalEntry())

		protected.GET("/challenges", ListChallenges())
		protected.POST("/challenges/:id/join", JoinChallenge())
		protected.PATCH("/challenges/:id/progress", AdvanceChallenge())
		protected.DELETE("/challenges/:id/quit", QuitChallenge())

		protected.GET("/insights/dashboard", InsightsDashboard())
		protected.GET("/insights/weekly-summary", WeeklySummary())
		protected.GET("/insights/productivity-patterns", ProductivityPatterns())
		protected.GET("/insights/mood-trends", MoodTrends())
	}
}
