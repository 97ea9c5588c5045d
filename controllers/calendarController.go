package controllers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"trade-journal/analytics"
)

// GetCalendarHandler returns the month grid for ?year=&month=, defaulting to
// the current month. Trades are fetched with inclusive date bounds, so a
// trade on the last day of the month lands in this month and not the next.
func GetCalendarHandler(c *gin.Context) {
	now := time.Now().UTC()
	year, err := strconv.Atoi(c.DefaultQuery("year", strconv.Itoa(now.Year())))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid year"})
		return
	}
	monthNum, err := strconv.Atoi(c.DefaultQuery("month", strconv.Itoa(int(now.Month()))))
	if err != nil || monthNum < 1 || monthNum > 12 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid month"})
		return
	}
	month := time.Month(monthNum)

	start, end := analytics.MonthRange(year, month)

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	trades, err := fetchTrades(ctx, UserID(c), bson.M{"date": bson.M{"$gte": start, "$lte": end}})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"year":  year,
		"month": monthNum,
		"weeks": analytics.BuildMonth(year, month, trades),
	})
}
