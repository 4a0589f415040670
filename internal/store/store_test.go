package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "geotutor.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st
}

func TestAppendAndRecent(t *testing.T) {
	st := openTestStore(t)
	repo := st.EventRepo()
	ctx := context.Background()

	for i := range 3 {
		err := repo.Append(ctx, AnswerEventData{
			SessionID:    "sess-1",
			LearnerID:    "S1",
			Shape:        "Triangle",
			Difficulty:   "easy",
			Answer:       float64(10 + i),
			CorrectArea:  12.0,
			Correct:      i == 2,
			MasteryAfter: 0.5,
		})
		require.NoError(t, err)
	}

	events, err := repo.Recent(ctx, "S1", 10)
	require.NoError(t, err)
	require.Len(t, events, 3)

	// Newest first.
	assert.Equal(t, 12.0, events[0].Answer)
	assert.True(t, events[0].Correct)
	assert.Equal(t, "Triangle", events[0].Shape)
	assert.False(t, events[2].Correct)
}

func TestRecent_RespectsLimitAndLearner(t *testing.T) {
	st := openTestStore(t)
	repo := st.EventRepo()
	ctx := context.Background()

	for i := range 5 {
		require.NoError(t, repo.Append(ctx, AnswerEventData{
			SessionID: "sess-1", LearnerID: "S1", Shape: "Square",
			Difficulty: "easy", Answer: float64(i), CorrectArea: 9,
		}))
	}
	require.NoError(t, repo.Append(ctx, AnswerEventData{
		SessionID: "sess-2", LearnerID: "S2", Shape: "Square",
		Difficulty: "easy", Answer: 1, CorrectArea: 9,
	}))

	events, err := repo.Recent(ctx, "S1", 2)
	require.NoError(t, err)
	assert.Len(t, events, 2)
	for _, e := range events {
		assert.Equal(t, "S1", e.LearnerID)
	}
}

func TestSummary(t *testing.T) {
	st := openTestStore(t)
	repo := st.EventRepo()
	ctx := context.Background()

	add := func(shape string, correct bool) {
		require.NoError(t, repo.Append(ctx, AnswerEventData{
			SessionID: "sess-1", LearnerID: "S1", Shape: shape,
			Difficulty: "easy", Correct: correct,
		}))
	}
	add("Triangle", true)
	add("Triangle", false)
	add("Rectangle", true)

	summary, err := repo.Summary(ctx, "S1")
	require.NoError(t, err)
	assert.Equal(t, 3, summary.Attempts)
	assert.Equal(t, 2, summary.Correct)
	assert.Equal(t, ShapeTally{Attempts: 2, Correct: 1}, summary.ByShape["Triangle"])
	assert.Equal(t, ShapeTally{Attempts: 1, Correct: 1}, summary.ByShape["Rectangle"])
}

func TestSummary_EmptyLearner(t *testing.T) {
	st := openTestStore(t)
	summary, err := st.EventRepo().Summary(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Zero(t, summary.Attempts)
	assert.Empty(t, summary.ByShape)
}
