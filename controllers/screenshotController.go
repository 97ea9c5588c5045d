package controllers

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/oklog/ulid/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"trade-journal/models"
)

// screenshotDoc is the stored form of a screenshot reference. FileID points
// at the GridFS file backing the public URL; it never leaves the server.
type screenshotDoc struct {
	models.Screenshot `bson:",inline"`
	FileID            primitive.ObjectID `json:"-" bson:"file_id"`
}

func findScreenshots(ctx context.Context, tradeID string) ([]models.Screenshot, error) {
	cursor, err := screenshotCollection.Find(ctx, bson.M{"trade_id": tradeID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	screenshots := []models.Screenshot{}
	for cursor.Next(ctx) {
		var doc screenshotDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		screenshots = append(screenshots, doc.Screenshot)
	}
	return screenshots, cursor.Err()
}

// deleteTradeScreenshots removes a deleted trade's screenshot rows and files.
func deleteTradeScreenshots(ctx context.Context, tradeID string) error {
	cursor, err := screenshotCollection.Find(ctx, bson.M{"trade_id": tradeID})
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var doc screenshotDoc
		if err := cursor.Decode(&doc); err != nil {
			return err
		}
		if err := screenshotBucket.Delete(doc.FileID); err != nil {
			return fmt.Errorf("delete file %s: %w", doc.FileID.Hex(), err)
		}
	}
	if err := cursor.Err(); err != nil {
		return err
	}

	_, err = screenshotCollection.DeleteMany(ctx, bson.M{"trade_id": tradeID})
	return err
}

// ownedTrade loads a trade only if it belongs to the requesting user.
func ownedTrade(ctx context.Context, c *gin.Context) (*models.Trade, bool) {
	var trade models.Trade
	err := tradeCollection.FindOne(ctx, bson.M{"_id": c.Param("id"), "user_id": UserID(c)}).Decode(&trade)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusNotFound, gin.H{"error": "trade not found"})
		return nil, false
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return nil, false
	}
	return &trade, true
}

// UploadScreenshotHandler stores an execution screenshot in GridFS and links
// it to the trade.
func UploadScreenshotHandler(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
	defer cancel()

	trade, ok := ownedTrade(ctx, c)
	if !ok {
		return
	}

	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing file: " + err.Error()})
		return
	}

	file, err := header.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer file.Close()

	path := fmt.Sprintf("%s/%s/%s%s", trade.UserID, trade.ID, ulid.Make().String(), filepath.Ext(header.Filename))
	fileID, err := screenshotBucket.UploadFromStream(path, file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store screenshot: " + err.Error()})
		return
	}

	doc := screenshotDoc{
		Screenshot: models.Screenshot{
			ID:        ulid.Make().String(),
			TradeID:   trade.ID,
			ImageURL:  "/files/" + fileID.Hex(),
			CreatedAt: time.Now().UTC(),
		},
		FileID: fileID,
	}
	if _, err := screenshotCollection.InsertOne(ctx, doc); err != nil {
		// Roll back the orphaned file; the reference row is the source of truth.
		_ = screenshotBucket.Delete(fileID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save screenshot reference: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, doc.Screenshot)
}

// ListScreenshotsHandler returns a trade's screenshot references.
func ListScreenshotsHandler(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	trade, ok := ownedTrade(ctx, c)
	if !ok {
		return
	}

	screenshots, err := findScreenshots(ctx, trade.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, screenshots)
}

// ServeFileHandler streams screenshot bytes out of GridFS.
func ServeFileHandler(c *gin.Context) {
	fileID, err := primitive.ObjectIDFromHex(c.Param("fileID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid file id"})
		return
	}

	stream, err := screenshotBucket.OpenDownloadStream(fileID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "file not found"})
		return
	}
	defer stream.Close()

	c.DataFromReader(http.StatusOK, stream.GetFile().Length, "application/octet-stream", stream, nil)
}
