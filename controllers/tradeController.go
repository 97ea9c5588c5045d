package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"trade-journal/models"
)

func broadcast(hub *models.Hub, event string, data interface{}) {
	hub.Broadcast <- models.WSMessage{Event: event, Data: data}
}

// CreateTradeHandler logs a new trade for the authenticated user.
func CreateTradeHandler(hub *models.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		var trade models.Trade
		if err := c.ShouldBindJSON(&trade); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid trade data: " + err.Error()})
			return
		}

		trade.Normalize()
		trade.ID = ulid.Make().String()
		trade.UserID = UserID(c)
		trade.CreatedAt = time.Now().UTC()
		trade.AIAnalysis = ""

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		if _, err := tradeCollection.InsertOne(ctx, trade); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save trade: " + err.Error()})
			return
		}

		go broadcast(hub, "trade_created", trade)
		c.JSON(http.StatusCreated, trade)
	}
}

// GetTradesHandler lists the user's trades ordered by date. Newest first by
// default; the dashboard asks for ascending order explicitly.
func GetTradesHandler(c *gin.Context) {
	sortDir := -1
	if c.Query("order") == "asc" {
		sortDir = 1
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: sortDir}, {Key: "created_at", Value: sortDir}})
	cursor, err := tradeCollection.Find(ctx, bson.M{"user_id": UserID(c)}, opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer cursor.Close(ctx)

	trades := []models.Trade{}
	for cursor.Next(ctx) {
		var trade models.Trade
		if err := cursor.Decode(&trade); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to decode trade data"})
			return
		}
		trades = append(trades, trade)
	}
	if err := cursor.Err(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, trades)
}

// GetTradeHandler returns one trade with its screenshots.
func GetTradeHandler(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	var trade models.Trade
	err := tradeCollection.FindOne(ctx, bson.M{"_id": c.Param("id"), "user_id": UserID(c)}).Decode(&trade)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusNotFound, gin.H{"error": "trade not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	screenshots, err := findScreenshots(ctx, trade.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.TradeWithScreenshots{Trade: trade, Screenshots: screenshots})
}

// UpdateTradeHandler replaces a trade's editable fields. Identity, creation
// time and the AI narrative are untouched; the narrative has its own write
// path in AnalyzeTradeHandler.
func UpdateTradeHandler(hub *models.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		var trade models.Trade
		if err := c.ShouldBindJSON(&trade); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid trade data: " + err.Error()})
			return
		}
		trade.Normalize()

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		update := bson.M{"$set": bson.M{
			"date":              trade.Date,
			"market":            trade.Market,
			"session":           trade.Session,
			"direction":         trade.Direction,
			"entry_price":       trade.EntryPrice,
			"stop_loss":         trade.StopLoss,
			"take_profit":       trade.TakeProfit,
			"risk_rr":           trade.RiskRR,
			"result":            trade.Result,
			"pnl":               trade.PnL,
			"model":             trade.Model,
			"execution_quality": trade.ExecutionQuality,
			"emotional_state":   trade.EmotionalState,
			"notes":             trade.Notes,
		}}

		res, err := tradeCollection.UpdateOne(ctx, bson.M{"_id": c.Param("id"), "user_id": UserID(c)}, update)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update trade: " + err.Error()})
			return
		}
		if res.MatchedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "trade not found"})
			return
		}

		go broadcast(hub, "trade_updated", gin.H{"id": c.Param("id")})
		c.JSON(http.StatusOK, gin.H{"message": "trade updated"})
	}
}

// DeleteTradeHandler removes a trade, then cleans up its screenshots
// best-effort. The cleanup is not transactional: a failure there leaves
// orphaned files, is logged and not surfaced.
func DeleteTradeHandler(hub *models.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		res, err := tradeCollection.DeleteOne(ctx, bson.M{"_id": id, "user_id": UserID(c)})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete trade: " + err.Error()})
			return
		}
		if res.DeletedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "trade not found"})
			return
		}

		if err := deleteTradeScreenshots(ctx, id); err != nil {
			log.Warn().Err(err).Str("trade", id).Msg("screenshot cleanup failed")
		}

		go broadcast(hub, "trade_deleted", gin.H{"id": id})
		c.JSON(http.StatusOK, gin.H{"message": "trade deleted"})
	}
}
