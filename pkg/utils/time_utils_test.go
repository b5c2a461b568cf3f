package utils_test

import (
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travelplanner/pkg/utils"
)

func TestNewPlanID_UniqueUnderConcurrency(t *testing.T) {
	const n = 200
	ids := make(chan string, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ids <- utils.NewPlanID()
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[string]bool, n)
	for id := range ids {
		assert.True(t, strings.HasPrefix(id, "plan-"), id)
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
	assert.Len(t, seen, n)
}

func TestNextMillis_StrictlyIncreasing(t *testing.T) {
	prev := utils.NextMillis()
	for i := 0; i < 100; i++ {
		next := utils.NextMillis()
		require.Greater(t, next, prev)
		prev = next
	}
}

func TestParseISODate(t *testing.T) {
	day, err := utils.ParseISODate("2025-04-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), day)

	ts, err := utils.ParseISODate("2025-04-01T10:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, 10, ts.Hour())

	_, err = utils.ParseISODate("April 1st")
	assert.Error(t, err)
}
