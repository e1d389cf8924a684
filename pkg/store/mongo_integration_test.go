//go:build integration

package store

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
)

func TestMongoStoreIntegration(t *testing.T) {
	uri := os.Getenv("MLEADER_TEST_MONGO_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}
	ctx := context.Background()
	s, err := NewMongoStore(ctx, MongoOptions{
		URI:        uri,
		Database:   "mleader_test",
		Collection: "documents_" + uuid.NewString()[:8],
	})
	if err != nil {
		t.Skipf("mongo not available at %s: %v", uri, err)
	}
	defer func() {
		_ = s.coll.Drop(context.Background())
		s.Close()
	}()
	storeSuite(t, s)
}
