//go:build integration
// +build integration

package lock

import (
	"os"
	"testing"

	"leave-tracker-backend/internal/testutils"
)

func TestMain(m *testing.M) {
	code := m.Run()
	testutils.CleanupSharedContainer()
	os.Exit(code)
}
