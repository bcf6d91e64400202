package assess

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/learnaura/aura/internal/category"
	"github.com/learnaura/aura/internal/cognitive"
	"github.com/learnaura/aura/internal/store"
)

// memRepo is an in-memory EventRepo for exercising the service without a
// database.
type memRepo struct {
	cognitive       []store.CognitiveEventData
	academic        []store.AcademicEventData
	classifications []store.ClassificationEventData
	seq             int64
}

func (m *memRepo) next() int64 {
	m.seq++
	return m.seq
}

func (m *memRepo) AppendCognitive(_ context.Context, data store.CognitiveEventData) error {
	m.next()
	m.cognitive = append(m.cognitive, data)
	return nil
}

func (m *memRepo) AppendAcademic(_ context.Context, data store.AcademicEventData) error {
	m.next()
	m.academic = append(m.academic, data)
	return nil
}

func (m *memRepo) AppendClassification(_ context.Context, data store.ClassificationEventData) error {
	m.next()
	m.classifications = append(m.classifications, data)
	return nil
}

func (m *memRepo) LatestClassification(_ context.Context, subjectID string) (*store.ClassificationRecord, error) {
	for i := len(m.classifications) - 1; i >= 0; i-- {
		if m.classifications[i].SubjectID == subjectID {
			return &store.ClassificationRecord{
				Sequence:                int64(i + 1),
				Timestamp:               time.Now().UTC(),
				ClassificationEventData: m.classifications[i],
			}, nil
		}
	}
	return nil, nil
}

func (m *memRepo) ListClassifications(ctx context.Context, subjectID string, limit int) ([]*store.ClassificationRecord, error) {
	var out []*store.ClassificationRecord
	for i := len(m.classifications) - 1; i >= 0; i-- {
		if m.classifications[i].SubjectID != subjectID {
			continue
		}
		out = append(out, &store.ClassificationRecord{
			Sequence:                int64(i + 1),
			ClassificationEventData: m.classifications[i],
		})
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func (m *memRepo) LatestAcademic(_ context.Context, subjectID string) (*store.AcademicRecord, error) {
	for i := len(m.academic) - 1; i >= 0; i-- {
		if m.academic[i].SubjectID == subjectID {
			return &store.AcademicRecord{
				Sequence:          int64(i + 1),
				Timestamp:         time.Now().UTC(),
				AcademicEventData: m.academic[i],
			}, nil
		}
	}
	return nil, nil
}

func (m *memRepo) ListAcademic(ctx context.Context, subjectID string, limit int) ([]*store.AcademicRecord, error) {
	var out []*store.AcademicRecord
	for i := len(m.academic) - 1; i >= 0; i-- {
		if m.academic[i].SubjectID != subjectID {
			continue
		}
		out = append(out, &store.AcademicRecord{
			Sequence:          int64(i + 1),
			AcademicEventData: m.academic[i],
		})
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func (m *memRepo) LatestClassificationsBySubject(_ context.Context) ([]*store.ClassificationRecord, error) {
	seen := make(map[string]bool)
	var out []*store.ClassificationRecord
	for i := len(m.classifications) - 1; i >= 0; i-- {
		if seen[m.classifications[i].SubjectID] {
			continue
		}
		seen[m.classifications[i].SubjectID] = true
		out = append(out, &store.ClassificationRecord{
			Sequence:                int64(i + 1),
			ClassificationEventData: m.classifications[i],
		})
	}
	return out, nil
}

var _ store.EventRepo = (*memRepo)(nil)

const subjectID = "8c5f1f2e-3e51-4c1a-9d04-6f2d8e6a1b90"

// uniformResponses scores every domain at the same Likert value, one
// question per domain.
func uniformResponses(value int) []cognitive.RawResponse {
	var responses []cognitive.RawResponse
	for i, d := range cognitive.AllDomains() {
		responses = append(responses, cognitive.RawResponse{Question: i + 1, Domain: d, Value: value})
	}
	return responses
}

func responsesWith(base int, overrides map[cognitive.Domain]int) []cognitive.RawResponse {
	var responses []cognitive.RawResponse
	for i, d := range cognitive.AllDomains() {
		v := base
		if ov, ok := overrides[d]; ok {
			v = ov
		}
		responses = append(responses, cognitive.RawResponse{Question: i + 1, Domain: d, Value: v})
	}
	return responses
}

func TestRun_FirstAssessment(t *testing.T) {
	repo := &memRepo{}
	svc := NewService(repo)

	rec, err := svc.Run(context.Background(), &Input{
		SubjectID: subjectID,
		Responses: map[cognitive.Rater][]cognitive.RawResponse{
			cognitive.RaterStudent: uniformResponses(4),
			cognitive.RaterParent:  uniformResponses(4),
		},
		Academic: &AcademicInput{Correct: 7, Total: 10},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, rec.RunID)
	assert.Equal(t, subjectID, rec.SubjectID)
	assert.Len(t, rec.DomainScores, 2)
	require.NotNil(t, rec.Academic)
	assert.InDelta(t, 70.0, rec.Academic.Percentage, 0.001)
	require.NotNil(t, rec.Triangulation)
	assert.InDelta(t, 1.0, rec.Triangulation.Score, 0.001)
	assert.False(t, rec.Shifted)
	assert.Nil(t, rec.Improved)

	// Solid accuracy on top of uniform 4.0 domains tips the blend toward
	// fast_processor.
	assert.Equal(t, category.CategoryFastProcessor, rec.Classification.Primary)

	require.Len(t, repo.cognitive, 2)
	assert.Equal(t, string(cognitive.RaterStudent), repo.cognitive[0].Rater)
	assert.Equal(t, string(cognitive.RaterParent), repo.cognitive[1].Rater)
	require.Len(t, repo.academic, 1)
	assert.Equal(t, 7, repo.academic[0].Correct)
	require.Len(t, repo.classifications, 1)
	assert.True(t, repo.classifications[0].Triangulated)
	assert.False(t, repo.classifications[0].Shifted)
	assert.Equal(t, rec.RunID, repo.classifications[0].RunID)
}

func TestRun_ShiftDetection(t *testing.T) {
	repo := &memRepo{}
	svc := NewService(repo)
	ctx := context.Background()

	first, err := svc.Run(ctx, &Input{
		SubjectID: subjectID,
		Responses: map[cognitive.Rater][]cognitive.RawResponse{
			cognitive.RaterStudent: uniformResponses(4),
		},
	})
	require.NoError(t, err)
	assert.False(t, first.Shifted)

	// Attention collapses and motivation drops: the profile now reads as
	// easily distracted.
	second, err := svc.Run(ctx, &Input{
		SubjectID: subjectID,
		Responses: map[cognitive.Rater][]cognitive.RawResponse{
			cognitive.RaterStudent: responsesWith(3, map[cognitive.Domain]int{
				cognitive.DomainAttentionFocus:       1,
				cognitive.DomainMotivationEngagement: 2,
			}),
		},
	})
	require.NoError(t, err)
	assert.Equal(t, category.CategoryEasilyDistracted, second.Classification.Primary)
	assert.True(t, second.Shifted)
	require.Len(t, repo.classifications, 2)
	assert.True(t, repo.classifications[1].Shifted)

	// A third run with the same profile is stable again.
	third, err := svc.Run(ctx, &Input{
		SubjectID: subjectID,
		Responses: map[cognitive.Rater][]cognitive.RawResponse{
			cognitive.RaterStudent: responsesWith(3, map[cognitive.Domain]int{
				cognitive.DomainAttentionFocus:       1,
				cognitive.DomainMotivationEngagement: 2,
			}),
		},
	})
	require.NoError(t, err)
	assert.False(t, third.Shifted)
}

func TestRun_ImprovementDelta(t *testing.T) {
	repo := &memRepo{}
	svc := NewService(repo)
	ctx := context.Background()

	input := func(correct int) *Input {
		return &Input{
			SubjectID: subjectID,
			Responses: map[cognitive.Rater][]cognitive.RawResponse{
				cognitive.RaterStudent: uniformResponses(4),
			},
			Academic: &AcademicInput{Correct: correct, Total: 10},
		}
	}

	first, err := svc.Run(ctx, input(6))
	require.NoError(t, err)
	assert.Nil(t, first.Improved)

	second, err := svc.Run(ctx, input(7))
	require.NoError(t, err)
	require.NotNil(t, second.Improved)
	assert.InDelta(t, 10.0, *second.Improved, 0.001)

	third, err := svc.Run(ctx, input(4))
	require.NoError(t, err)
	require.NotNil(t, third.Improved)
	assert.InDelta(t, -30.0, *third.Improved, 0.001)
}

func TestRun_SingleRater(t *testing.T) {
	repo := &memRepo{}
	svc := NewService(repo)

	rec, err := svc.Run(context.Background(), &Input{
		SubjectID: subjectID,
		Responses: map[cognitive.Rater][]cognitive.RawResponse{
			cognitive.RaterStudent: uniformResponses(4),
		},
	})
	require.NoError(t, err)

	assert.Nil(t, rec.Triangulation)
	assert.InDelta(t, 0.75, rec.Classification.Confidence, 0.001)
	require.Len(t, repo.classifications, 1)
	assert.False(t, repo.classifications[0].Triangulated)
}

func TestRun_ValidationAbortsPersistence(t *testing.T) {
	repo := &memRepo{}
	svc := NewService(repo)
	ctx := context.Background()

	_, err := svc.Run(ctx, &Input{
		SubjectID: subjectID,
		Responses: map[cognitive.Rater][]cognitive.RawResponse{
			cognitive.RaterStudent: {
				{Question: 1, Domain: cognitive.DomainProcessingSpeed, Value: 9},
			},
		},
	})
	require.Error(t, err)

	_, err = svc.Run(ctx, &Input{
		SubjectID: subjectID,
		Responses: map[cognitive.Rater][]cognitive.RawResponse{
			cognitive.RaterStudent: uniformResponses(4),
		},
		Academic: &AcademicInput{Correct: 11, Total: 10},
	})
	require.Error(t, err)

	_, err = svc.Run(ctx, &Input{SubjectID: ""})
	require.Error(t, err)

	// Rejected runs must leave no trace.
	assert.Empty(t, repo.cognitive)
	assert.Empty(t, repo.academic)
	assert.Empty(t, repo.classifications)
}

func TestRun_NoResponsesBalancedProfile(t *testing.T) {
	repo := &memRepo{}
	svc := NewService(repo)

	rec, err := svc.Run(context.Background(), &Input{SubjectID: subjectID})
	require.NoError(t, err)

	// No cognitive data at all yields the neutral profile at minimum
	// confidence with nothing secondary.
	for _, v := range rec.CategoryScores {
		assert.Equal(t, category.NeutralScore, v)
	}
	assert.Empty(t, rec.Classification.Secondary)
	assert.InDelta(t, 0.5, rec.Classification.Confidence, 0.001)
	assert.Empty(t, rec.Buckets)
	assert.Empty(t, repo.cognitive)
	require.Len(t, repo.classifications, 1)
}
