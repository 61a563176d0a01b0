package badger

import (
	"context"
	"testing"

	"github.com/scholarmatch/scholarmatch/core"
)

func TestFeedbackBasics(t *testing.T) {
	repos := newTestRepositories(t)
	ctx := context.Background()

	feedback := &core.Feedback{
		ApplicantId:   core.ID(1),
		ScholarshipId: core.ID(42),
		Kind:          core.FeedbackLike,
	}

	added, err := repos.Feedback.AddFeedback(ctx, feedback)
	if err != nil {
		t.Fatalf("Failed to add feedback: %v", err)
	}
	if added.Id == 0 {
		t.Fatal("Expected non-zero ID")
	}
	if added.CreatedAt.IsZero() {
		t.Fatal("Expected CreatedAt to be set")
	}
}

func TestFeedbackByApplicant(t *testing.T) {
	repos := newTestRepositories(t)
	ctx := context.Background()

	kinds := []core.FeedbackKind{core.FeedbackLike, core.FeedbackDislike}
	for i, kind := range kinds {
		_, err := repos.Feedback.AddFeedback(ctx, &core.Feedback{
			ApplicantId:   core.ID(1),
			ScholarshipId: core.ID(i + 1),
			Kind:          kind,
		})
		if err != nil {
			t.Fatalf("Failed to add feedback: %v", err)
		}
	}
	// Another applicant's feedback must not leak into the query
	if _, err := repos.Feedback.AddFeedback(ctx, &core.Feedback{
		ApplicantId:   core.ID(2),
		ScholarshipId: core.ID(1),
		Kind:          core.FeedbackLike,
	}); err != nil {
		t.Fatalf("Failed to add feedback: %v", err)
	}

	results, err := repos.Feedback.GetFeedbackByApplicant(ctx, core.ID(1))
	if err != nil {
		t.Fatalf("Failed to get feedback: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("Expected 2 feedback records, got %d", len(results))
	}
	if results[0].Kind != core.FeedbackLike || results[1].Kind != core.FeedbackDislike {
		t.Fatal("Expected feedback in insertion order")
	}
	for _, feedback := range results {
		if feedback.ApplicantId != core.ID(1) {
			t.Fatalf("Expected feedback for applicant 1, got %d", feedback.ApplicantId)
		}
	}
}

func TestFeedbackByApplicantEmpty(t *testing.T) {
	repos := newTestRepositories(t)
	ctx := context.Background()

	results, err := repos.Feedback.GetFeedbackByApplicant(ctx, core.ID(99))
	if err != nil {
		t.Fatalf("Failed to get feedback: %v", err)
	}
	if len(results) != 0 {
		t.Fatalf("Expected no feedback, got %d", len(results))
	}
}
