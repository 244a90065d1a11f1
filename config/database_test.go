package config

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConnectMongoDBFails(t *testing.T) {
	for name, cfg := range map[string]MongoConfig{
		"malformed url": {
			URL:            "not-a-uri",
			Database:       "financial_kanban",
			ConnectTimeout: time.Second,
		},
		"unreachable host": {
			URL:            "mongodb://127.0.0.1:1/?serverSelectionTimeoutMS=300&connectTimeoutMS=300",
			Database:       "financial_kanban",
			ConnectTimeout: 500 * time.Millisecond,
		},
	} {
		t.Run(name, func(t *testing.T) {
			client, err := ConnectMongoDB(context.Background(), cfg)
			assert.Error(t, err)
			assert.Nil(t, client)
		})
	}
}
