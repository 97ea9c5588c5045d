package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"trade-journal/analytics"
	"trade-journal/models"
)

// fetchTrades loads a user's trades matching filter, ascending by date. The
// equity curve depends on that order.
func fetchTrades(ctx context.Context, userID string, filter bson.M) ([]models.Trade, error) {
	filter["user_id"] = userID
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "created_at", Value: 1}})
	cursor, err := tradeCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var trades []models.Trade
	for cursor.Next(ctx) {
		var trade models.Trade
		if err := cursor.Decode(&trade); err != nil {
			return nil, err
		}
		trades = append(trades, trade)
	}
	return trades, cursor.Err()
}

// GetStatsHandler computes the dashboard summary over the user's full
// journal. Every request re-fetches; there is no cache to invalidate.
func GetStatsHandler(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	trades, err := fetchTrades(ctx, UserID(c), bson.M{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, analytics.Aggregate(trades))
}
