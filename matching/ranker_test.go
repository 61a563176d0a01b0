package matching

import (
	"context"
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/scholarmatch/scholarmatch/ai/mock"
	"github.com/scholarmatch/scholarmatch/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// vectorForScore returns a unit 2D vector whose cosine similarity against
// (1, 0) is exactly score.
func vectorForScore(score float64) []float32 {
	return []float32{float32(score), float32(math.Sqrt(1 - score*score))}
}

// scoreEmbedder returns a mock embedder that encodes the applicant to (1, 0)
// and each scholarship to a vector with the configured similarity score,
// keyed by scholarship name.
func scoreEmbedder(applicant *core.ApplicantProfile, scores map[string]float64) *mock.MockEmbedder {
	applicantText := ApplicantText(applicant)
	embedder := mock.NewMockEmbedder()
	var mu sync.Mutex
	embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
		mu.Lock()
		defer mu.Unlock()
		if text == applicantText {
			return []float32{1, 0}, nil
		}
		for name, score := range scores {
			if text == ScholarshipText(&core.ScholarshipRecord{Name: name}) {
				return vectorForScore(score), nil
			}
		}
		return []float32{0, 1}, nil
	}
	return embedder
}

func TestNewRanker(t *testing.T) {
	t.Run("valid configuration", func(t *testing.T) {
		ranker, err := NewRanker(mock.NewMockProvider())
		require.NoError(t, err)
		require.NotNil(t, ranker)
		ranker.Close()
	})

	t.Run("with pool size", func(t *testing.T) {
		ranker, err := NewRanker(mock.NewMockProvider(), WithPoolSize(4))
		require.NoError(t, err)
		require.NotNil(t, ranker)
		ranker.Close()
	})

	t.Run("with nil logger falls back to default", func(t *testing.T) {
		ranker, err := NewRanker(mock.NewMockProvider(), WithLogger(nil))
		require.NoError(t, err)
		require.NotNil(t, ranker)
		ranker.Close()
	})

	t.Run("nil provider", func(t *testing.T) {
		_, err := NewRanker(nil)
		assert.Equal(t, ErrAIProviderRequired, err)
	})
}

func TestRank_TopKOrdering(t *testing.T) {
	applicant := testApplicant()
	scholarships := []*core.ScholarshipRecord{
		{Id: 1, Name: "Alpha"},
		{Id: 2, Name: "Beta"},
		{Id: 3, Name: "Gamma"},
		{Id: 4, Name: "Delta"},
		{Id: 5, Name: "Epsilon"},
	}
	scores := map[string]float64{
		"Alpha":   0.4,
		"Beta":    0.9,
		"Gamma":   0.1,
		"Delta":   0.85,
		"Epsilon": 0.7,
	}

	embedder := scoreEmbedder(applicant, scores)
	ranker, err := NewRanker(mock.NewMockProviderWithEmbedder(embedder))
	require.NoError(t, err)
	defer ranker.Close()

	results, err := ranker.Rank(context.Background(), applicant, scholarships, 3)
	require.NoError(t, err)
	require.Len(t, results, 3)

	// Top 3 in descending score order
	assert.Equal(t, "Beta", results[0].Scholarship.Name)
	assert.Equal(t, "Delta", results[1].Scholarship.Name)
	assert.Equal(t, "Epsilon", results[2].Scholarship.Name)

	assert.InDelta(t, 0.9, results[0].Score, 1e-6)
	assert.InDelta(t, 0.85, results[1].Score, 1e-6)
	assert.InDelta(t, 0.7, results[2].Score, 1e-6)

	// Confidence percentages for display
	assert.InDelta(t, 90.0, Confidence(results[0].Score), 0.05)
	assert.InDelta(t, 85.0, Confidence(results[1].Score), 0.05)
	assert.InDelta(t, 70.0, Confidence(results[2].Score), 0.05)

	// Non-increasing by score
	for i := 1; i < len(results); i++ {
		assert.GreaterOrEqual(t, results[i-1].Score, results[i].Score)
	}
}

func TestRank_FewerThanK(t *testing.T) {
	applicant := testApplicant()
	scholarships := []*core.ScholarshipRecord{
		{Id: 1, Name: "Alpha"},
		{Id: 2, Name: "Beta"},
	}

	ranker, err := NewRanker(mock.NewMockProvider())
	require.NoError(t, err)
	defer ranker.Close()

	results, err := ranker.Rank(context.Background(), applicant, scholarships, 3)
	require.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestRank_EmptyEligibleSet(t *testing.T) {
	applicant := testApplicant()

	provider := mock.NewMockProvider()
	ranker, err := NewRanker(provider)
	require.NoError(t, err)
	defer ranker.Close()

	t.Run("empty catalog", func(t *testing.T) {
		results, err := ranker.Rank(context.Background(), applicant, nil, 3)
		require.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("all filtered out", func(t *testing.T) {
		scholarships := []*core.ScholarshipRecord{
			{Id: 1, Name: "A", MinGPA: floatPtr(3.9)},
			{Id: 2, Name: "B", Country: "Ghana"},
		}
		results, err := ranker.Rank(context.Background(), applicant, scholarships, 3)
		require.NoError(t, err)
		assert.Empty(t, results)

		// The encoder is never called for an empty eligible set.
		embedder := provider.(*mock.MockProvider).GetMockEmbedder()
		assert.Zero(t, embedder.CallCount())
	})
}

func TestRank_TieBreakPreservesOrder(t *testing.T) {
	applicant := testApplicant()
	scholarships := []*core.ScholarshipRecord{
		{Id: 10, Name: "First"},
		{Id: 20, Name: "Second"},
		{Id: 30, Name: "Third"},
	}

	// Every text encodes to the same vector, so every score ties exactly.
	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
		return []float32{1, 1}, nil
	}

	ranker, err := NewRanker(mock.NewMockProviderWithEmbedder(embedder))
	require.NoError(t, err)
	defer ranker.Close()

	results, err := ranker.Rank(context.Background(), applicant, scholarships, 3)
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, core.ID(10), results[0].Scholarship.Id)
	assert.Equal(t, core.ID(20), results[1].Scholarship.Id)
	assert.Equal(t, core.ID(30), results[2].Scholarship.Id)
}

func TestRank_EncodesApplicantOnce(t *testing.T) {
	applicant := testApplicant()
	applicantText := ApplicantText(applicant)
	scholarships := []*core.ScholarshipRecord{
		{Id: 1, Name: "Alpha"},
		{Id: 2, Name: "Beta"},
		{Id: 3, Name: "Gamma"},
	}

	var (
		mu             sync.Mutex
		applicantCalls int
	)
	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
		mu.Lock()
		defer mu.Unlock()
		if text == applicantText {
			applicantCalls++
		}
		return []float32{1, 1}, nil
	}

	ranker, err := NewRanker(mock.NewMockProviderWithEmbedder(embedder), WithPoolSize(4))
	require.NoError(t, err)
	defer ranker.Close()

	_, err = ranker.Rank(context.Background(), applicant, scholarships, 3)
	require.NoError(t, err)
	assert.Equal(t, 1, applicantCalls)
}

func TestRank_EmbeddingErrorAborts(t *testing.T) {
	applicant := testApplicant()
	scholarships := []*core.ScholarshipRecord{
		{Id: 1, Name: "Alpha"},
		{Id: 2, Name: "Beta"},
	}

	embedderErr := errors.New("model unavailable")
	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
		if text == ScholarshipText(scholarships[1]) {
			return nil, embedderErr
		}
		return []float32{1, 1}, nil
	}

	ranker, err := NewRanker(mock.NewMockProviderWithEmbedder(embedder))
	require.NoError(t, err)
	defer ranker.Close()

	results, err := ranker.Rank(context.Background(), applicant, scholarships, 3)
	assert.ErrorIs(t, err, ErrEmbedding)
	// All-or-nothing: no partial results.
	assert.Nil(t, results)
}

func TestRank_WrongDimensionAborts(t *testing.T) {
	applicant := testApplicant()
	scholarships := []*core.ScholarshipRecord{{Id: 1, Name: "Alpha"}}

	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
		if text == ApplicantText(applicant) {
			return []float32{1, 0}, nil
		}
		return []float32{1, 0, 0}, nil
	}

	ranker, err := NewRanker(mock.NewMockProviderWithEmbedder(embedder))
	require.NoError(t, err)
	defer ranker.Close()

	_, err = ranker.Rank(context.Background(), applicant, scholarships, 3)
	assert.ErrorIs(t, err, ErrEmbedding)
}

func TestRank_ZeroVectorAborts(t *testing.T) {
	applicant := testApplicant()
	scholarships := []*core.ScholarshipRecord{{Id: 1, Name: "Alpha"}}

	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
		if text == ApplicantText(applicant) {
			return []float32{1, 0}, nil
		}
		return []float32{0, 0}, nil
	}

	ranker, err := NewRanker(mock.NewMockProviderWithEmbedder(embedder))
	require.NoError(t, err)
	defer ranker.Close()

	_, err = ranker.Rank(context.Background(), applicant, scholarships, 3)
	assert.ErrorIs(t, err, ErrZeroVector)
}

func TestRank_CancelledContext(t *testing.T) {
	applicant := testApplicant()
	scholarships := []*core.ScholarshipRecord{{Id: 1, Name: "Alpha"}}

	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
		return []float32{1, 1}, nil
	}

	ranker, err := NewRanker(mock.NewMockProviderWithEmbedder(embedder))
	require.NoError(t, err)
	defer ranker.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = ranker.Rank(ctx, applicant, scholarships, 3)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRank_NilApplicant(t *testing.T) {
	ranker, err := NewRanker(mock.NewMockProvider())
	require.NoError(t, err)
	defer ranker.Close()

	_, err = ranker.Rank(context.Background(), nil, nil, 3)
	assert.Equal(t, ErrApplicantRequired, err)
}

func TestRank_DefaultTopK(t *testing.T) {
	applicant := testApplicant()
	scholarships := []*core.ScholarshipRecord{
		{Id: 1, Name: "Alpha"},
		{Id: 2, Name: "Beta"},
		{Id: 3, Name: "Gamma"},
		{Id: 4, Name: "Delta"},
	}

	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
		return []float32{1, 1}, nil
	}

	ranker, err := NewRanker(mock.NewMockProviderWithEmbedder(embedder))
	require.NoError(t, err)
	defer ranker.Close()

	// k <= 0 falls back to DefaultTopK.
	results, err := ranker.Rank(context.Background(), applicant, scholarships, 0)
	require.NoError(t, err)
	assert.Len(t, results, DefaultTopK)
}

// recordingMonitor captures monitor callbacks for assertions.
type recordingMonitor struct {
	started      bool
	eligible     int
	applicantDim int
	scored       int
	finished     int
}

func (m *recordingMonitor) Start(_ *core.ApplicantProfile) { m.started = true }
func (m *recordingMonitor) AfterEligibilityFilter(eligible []*core.ScholarshipRecord) {
	m.eligible = len(eligible)
}
func (m *recordingMonitor) AfterApplicantEmbedding(vector []float32) { m.applicantDim = len(vector) }
func (m *recordingMonitor) Scored(_ *core.MatchCandidate)            { m.scored++ }
func (m *recordingMonitor) Finish(results []*core.MatchCandidate)    { m.finished = len(results) }

func TestRankWithMonitor(t *testing.T) {
	applicant := testApplicant()
	scholarships := []*core.ScholarshipRecord{
		{Id: 1, Name: "Alpha"},
		{Id: 2, Name: "Beta"},
		{Id: 3, Name: "Gamma"},
		{Id: 4, Name: "Delta"},
	}

	ranker, err := NewRanker(mock.NewMockProvider())
	require.NoError(t, err)
	defer ranker.Close()

	monitor := &recordingMonitor{}
	results, err := ranker.RankWithMonitor(context.Background(), applicant, scholarships, 2, monitor)
	require.NoError(t, err)

	assert.True(t, monitor.started)
	assert.Equal(t, 4, monitor.eligible)
	assert.Equal(t, mock.DefaultDimension, monitor.applicantDim)
	assert.Equal(t, 4, monitor.scored)
	assert.Equal(t, len(results), monitor.finished)
	assert.Len(t, results, 2)
}
