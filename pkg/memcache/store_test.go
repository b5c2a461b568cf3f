package mem_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travelplanner/internal/models/db_models"
	mem "travelplanner/pkg/memcache"
)

func plan(id, owner string) *db_models.TravelPlan {
	p := &db_models.TravelPlan{UserID: owner, Destination: "Kyoto", Tips: []string{"carry cash"}}
	p.ID = id
	return p
}

func TestStore_UpsertGetRemove(t *testing.T) {
	store := mem.NewPlanCache()

	store.Upsert(plan("plan-1", "alice"))
	store.Upsert(plan("plan-2", "bob"))
	require.Equal(t, 2, store.Len())

	got, ok := store.Get("plan-1")
	require.True(t, ok)
	assert.Equal(t, "alice", got.UserID)

	updated := plan("plan-1", "alice")
	updated.Destination = "Osaka"
	store.Upsert(updated)
	assert.Equal(t, 2, store.Len())

	got, _ = store.Get("plan-1")
	assert.Equal(t, db_models.FlexText("Osaka"), got.Destination)

	assert.True(t, store.Remove("plan-1"))
	assert.False(t, store.Remove("plan-1"))
	_, ok = store.Get("plan-1")
	assert.False(t, ok)
}

func TestStore_ReturnsCopies(t *testing.T) {
	store := mem.NewPlanCache()
	original := plan("plan-1", "alice")
	store.Upsert(original)

	original.Tips[0] = "mutated after insert"
	got, _ := store.Get("plan-1")
	assert.Equal(t, "carry cash", got.Tips[0])

	got.Tips[0] = "mutated after read"
	again, _ := store.Get("plan-1")
	assert.Equal(t, "carry cash", again.Tips[0])
}

func TestStore_FilterKeepsInsertionOrder(t *testing.T) {
	store := mem.NewPlanCache()
	store.Upsert(plan("plan-1", "alice"))
	store.Upsert(plan("plan-2", "bob"))
	store.Upsert(plan("plan-3", "alice"))

	got := store.Filter(func(p *db_models.TravelPlan) bool { return p.UserID == "alice" })

	require.Len(t, got, 2)
	assert.Equal(t, "plan-1", got[0].ID)
	assert.Equal(t, "plan-3", got[1].ID)

	none := store.Filter(func(p *db_models.TravelPlan) bool { return p.UserID == "carol" })
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestStore_ConcurrentWriters(t *testing.T) {
	store := mem.NewExpenseCache()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			e := &db_models.Expense{UserID: "alice", Description: "coffee", Amount: 3}
			e.ID = fmt.Sprintf("expense-%d", i)
			store.Upsert(e)
			_, _ = store.Get(e.ID)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 50, store.Len())
}
