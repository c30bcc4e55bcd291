package reviews_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"biomae/internal/reviews"
	"biomae/internal/storage"
	"biomae/internal/testutil"
)

func newPipeline(mem *storage.Memory) (*reviews.Pipeline, *reviews.Store, *time.Time) {
	now := testutil.Epoch
	store := reviews.NewStore(mem, "")
	return reviews.NewPipeline(store, func() time.Time { return now }), store, &now
}

func TestSubmitAcceptsAndClamps(t *testing.T) {
	p, store, _ := newPipeline(storage.NewMemory())
	assert.Equal(t, reviews.Idle, p.State())

	out := p.Submit(reviews.Input{Name: "Aya", City: "Fes", Rating: "7", Message: "Great product overall"})
	require.Equal(t, reviews.Accepted, out.State)
	assert.Equal(t, 5, out.Review.Rating)
	assert.Equal(t, testutil.Epoch.UnixMilli(), out.Review.CreatedAt)
	assert.Equal(t, reviews.Accepted, p.State())

	stored := store.Load()
	require.Len(t, stored, 1)
	assert.Equal(t, out.Review, stored[0])
}

func TestSubmitRejects(t *testing.T) {
	mem := storage.NewMemory()
	p, store, _ := newPipeline(mem)

	out := p.Submit(reviews.Input{Name: "A", City: "Fes", Rating: "3", Message: "ok"})
	assert.Equal(t, reviews.Rejected, out.State)
	assert.Equal(t, []string{"name", "message"}, out.Problems)
	assert.Empty(t, store.Load())

	_, written, _ := mem.GetItem(reviews.DefaultKey)
	assert.False(t, written, "a rejected review never touches storage")
}

func TestSubmitTrimsBeforeMeasuring(t *testing.T) {
	p, _, _ := newPipeline(storage.NewMemory())
	out := p.Submit(reviews.Input{Name: "  A  ", City: " Fes ", Message: "   1234567   "})
	assert.Equal(t, []string{"name", "message"}, out.Problems)

	out = p.Submit(reviews.Input{Name: " Aya ", City: " Fes ", Message: " 12345678 "})
	require.Equal(t, reviews.Accepted, out.State)
	assert.Equal(t, "Aya", out.Review.Name)
	assert.Equal(t, "12345678", out.Review.Message)
	assert.Equal(t, 5, out.Review.Rating, "empty rating defaults")
}

func TestSubmitKeepsTwentyNewest(t *testing.T) {
	p, store, now := newPipeline(storage.NewMemory())
	for i := 1; i <= 25; i++ {
		*now = now.Add(time.Second)
		out := p.Submit(reviews.Input{
			Name: "Visitor", City: "Fes", Rating: "4",
			Message: fmt.Sprintf("review number %02d", i),
		})
		require.Equal(t, reviews.Accepted, out.State)
	}

	stored := store.Load()
	require.Len(t, stored, reviews.Capacity)
	for i, r := range stored {
		assert.Equal(t, fmt.Sprintf("review number %02d", 25-i), r.Message)
	}
}

func TestSubmitSurvivesStorageFailure(t *testing.T) {
	mem := storage.NewMemory()
	mem.Quota = 10
	p, store, _ := newPipeline(mem)

	out := p.Submit(reviews.Input{Name: "Aya", City: "Fes", Rating: "2", Message: "still shown on the page"})
	assert.Equal(t, reviews.Accepted, out.State)
	assert.Empty(t, store.Load())
}
