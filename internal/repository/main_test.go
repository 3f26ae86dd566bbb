//go:build integration

package repository_test

import (
	"context"
	"os"
	"testing"

	"github.com/John-Mota/production-optimizer-back/internal/testutil"
)

// TestMain sets up a shared MongoDB container for all integration tests in
// this package. Reusing one container keeps the suite fast; each test still
// gets its own database for isolation.
func TestMain(m *testing.M) {
	os.Exit(testutil.SetupTestMainWithMongoDB(context.Background(), m))
}
