package models

import "time"

// Screenshot links an uploaded image to the trade it evidences. ImageURL is
// the public path the file is served from; the bytes live in GridFS.
type Screenshot struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	TradeID   string    `json:"trade_id" bson:"trade_id"`
	ImageURL  string    `json:"image_url" bson:"image_url"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// TradeWithScreenshots is the trade detail payload.
type TradeWithScreenshots struct {
	Trade
	Screenshots []Screenshot `json:"screenshots"`
}
