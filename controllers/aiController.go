package controllers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"trade-journal/ai"
	"trade-journal/models"
)

// AnalyzeTradeHandler asks the AI coach for a narrative on one trade and
// persists it on the trade record. The narrative is the only field written.
func AnalyzeTradeHandler(hub *models.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := c.DefaultQuery("lang", "en")

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Minute)
		defer cancel()

		trade, ok := ownedTrade(ctx, c)
		if !ok {
			return
		}

		narrative, err := aiClient.Analyze(ctx, trade, lang)
		if err != nil {
			var exhausted *ai.AllModelsFailedError
			switch {
			case errors.Is(err, ai.ErrNoAPIKey):
				c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
			case errors.As(err, &exhausted):
				c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			}
			return
		}

		update := bson.M{"$set": bson.M{"ai_analysis": narrative}}
		if _, err := tradeCollection.UpdateOne(ctx, bson.M{"_id": trade.ID}, update); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save analysis: " + err.Error()})
			return
		}

		trade.AIAnalysis = narrative
		go broadcast(hub, "trade_analyzed", gin.H{"id": trade.ID})
		c.JSON(http.StatusOK, trade)
	}
}
