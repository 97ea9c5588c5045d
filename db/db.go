package db

import (
	"context"
	"crypto/tls"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var Client *mongo.Client

var dbName string

// ConnectDB establishes the Mongo connection and pings it. Atlas requires
// TLS 1.2+; hosted deployments can be slow to admit the first connection,
// hence the generous timeouts.
func ConnectDB(uri, name string) {
	if uri == "" {
		log.Fatal().Msg("MONGODB_URI not set")
	}
	dbName = name

	tlsConfig := &tls.Config{
		MinVersion: tls.VersionTLS12,
	}

	clientOptions := options.Client().
		ApplyURI(uri).
		SetTLSConfig(tlsConfig).
		SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1)).
		SetTimeout(30 * time.Second).
		SetConnectTimeout(30 * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var err error
	Client, err = mongo.Connect(ctx, clientOptions)
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}

	pingCtx, pingCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer pingCancel()

	if err = Client.Ping(pingCtx, nil); err != nil {
		log.Fatal().Err(err).Msg("mongodb ping failed")
	}

	log.Info().Str("db", dbName).Msg("connected to mongodb")
}

func GetDB() *mongo.Database {
	if Client == nil {
		log.Fatal().Msg("mongodb client not initialized")
	}
	return Client.Database(dbName)
}
