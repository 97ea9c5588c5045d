package controllers

import (
	"context"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"

	"trade-journal/ai"
)

// MongoDB collections
var (
	tradeCollection      *mongo.Collection
	screenshotCollection *mongo.Collection
	screenshotBucket     *gridfs.Bucket
)

var aiClient *ai.Client

// InitAI wires the narrative client. A missing key is not fatal here; the
// analyze action reports it per request.
func InitAI(apiKey string) {
	if apiKey == "" {
		log.Warn().Msg("GEMINI_API_KEY not set, trade analysis disabled")
	}
	aiClient = ai.NewClient(apiKey)
}

// SetTradeCollection initializes the trades collection. Every query filters
// by owner and most order by date, hence the compound index.
func SetTradeCollection(db *mongo.Database) {
	tradeCollection = db.Collection("trades")

	indexModel := mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "date", Value: 1}},
	}
	if _, err := tradeCollection.Indexes().CreateOne(context.TODO(), indexModel); err != nil {
		log.Fatal().Err(err).Msg("failed to create trade index")
	}
}

// SetScreenshotCollection initializes the screenshot reference collection and
// the GridFS bucket holding the image bytes.
func SetScreenshotCollection(db *mongo.Database) {
	screenshotCollection = db.Collection("screenshots")

	indexModel := mongo.IndexModel{
		Keys: bson.M{"trade_id": 1},
	}
	if _, err := screenshotCollection.Indexes().CreateOne(context.TODO(), indexModel); err != nil {
		log.Fatal().Err(err).Msg("failed to create screenshot index")
	}

	bucket, err := gridfs.NewBucket(db, options.GridFSBucket().SetName("screenshots"))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create screenshot bucket")
	}
	screenshotBucket = bucket
}
