package badger

import (
	"context"
	"errors"
	"testing"

	"github.com/scholarmatch/scholarmatch/core"
	"github.com/scholarmatch/scholarmatch/storage"
)

func newTestRepositories(t *testing.T) *Repositories {
	t.Helper()
	repos, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	t.Cleanup(func() { repos.Close() })
	return repos
}

func TestApplicantBasics(t *testing.T) {
	repos := newTestRepositories(t)
	ctx := context.Background()

	applicant := &core.ApplicantProfile{
		Email:          "ada@example.com",
		PasswordHash:   "hash",
		Name:           "Ada Lovelace",
		Age:            22,
		Country:        "Kenya",
		EducationLevel: core.EducationUndergraduate,
		GPA:            3.8,
		FieldOfStudy:   "Computer Science",
		FinancialNeed:  true,
	}

	added, err := repos.Applicants.AddApplicant(ctx, applicant)
	if err != nil {
		t.Fatalf("Failed to add applicant: %v", err)
	}
	if added.Id == 0 {
		t.Fatal("Expected non-zero ID")
	}
	if added.InsertedAt.IsZero() {
		t.Fatal("Expected InsertedAt to be set")
	}

	retrieved, err := repos.Applicants.GetApplicant(ctx, added.Id)
	if err != nil {
		t.Fatalf("Failed to get applicant: %v", err)
	}
	if retrieved.Email != "ada@example.com" {
		t.Fatalf("Expected 'ada@example.com', got '%s'", retrieved.Email)
	}
	if retrieved.GPA != 3.8 {
		t.Fatalf("Expected GPA 3.8, got %v", retrieved.GPA)
	}
}

func TestApplicantDuplicateEmail(t *testing.T) {
	repos := newTestRepositories(t)
	ctx := context.Background()

	first := &core.ApplicantProfile{Email: "ada@example.com", Name: "Ada"}
	if _, err := repos.Applicants.AddApplicant(ctx, first); err != nil {
		t.Fatalf("Failed to add applicant: %v", err)
	}

	second := &core.ApplicantProfile{Email: "ada@example.com", Name: "Also Ada"}
	_, err := repos.Applicants.AddApplicant(ctx, second)
	if !errors.Is(err, storage.ErrDuplicateKey) {
		t.Fatalf("Expected ErrDuplicateKey, got %v", err)
	}
}

func TestApplicantFindByEmail(t *testing.T) {
	repos := newTestRepositories(t)
	ctx := context.Background()

	applicant := &core.ApplicantProfile{Email: "grace@example.com", Name: "Grace"}
	added, err := repos.Applicants.AddApplicant(ctx, applicant)
	if err != nil {
		t.Fatalf("Failed to add applicant: %v", err)
	}

	found, err := repos.Applicants.FindApplicantByEmail(ctx, "grace@example.com")
	if err != nil {
		t.Fatalf("Failed to find applicant by email: %v", err)
	}
	if found.Id != added.Id {
		t.Fatalf("Expected ID %d, got %d", added.Id, found.Id)
	}

	_, err = repos.Applicants.FindApplicantByEmail(ctx, "nobody@example.com")
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}
}

func TestApplicantUpdate(t *testing.T) {
	repos := newTestRepositories(t)
	ctx := context.Background()

	applicant := &core.ApplicantProfile{Email: "ada@example.com", Name: "Ada", GPA: 3.5}
	added, err := repos.Applicants.AddApplicant(ctx, applicant)
	if err != nil {
		t.Fatalf("Failed to add applicant: %v", err)
	}

	added.GPA = 3.9
	added.Email = "ada.lovelace@example.com"
	if _, err := repos.Applicants.UpdateApplicant(ctx, added); err != nil {
		t.Fatalf("Failed to update applicant: %v", err)
	}

	retrieved, err := repos.Applicants.GetApplicant(ctx, added.Id)
	if err != nil {
		t.Fatalf("Failed to get applicant: %v", err)
	}
	if retrieved.GPA != 3.9 {
		t.Fatalf("Expected GPA 3.9, got %v", retrieved.GPA)
	}

	// Email index follows the new address
	if _, err := repos.Applicants.FindApplicantByEmail(ctx, "ada.lovelace@example.com"); err != nil {
		t.Fatalf("Failed to find applicant by new email: %v", err)
	}
	if _, err := repos.Applicants.FindApplicantByEmail(ctx, "ada@example.com"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound for old email, got %v", err)
	}
}

func TestApplicantUpdateNotFound(t *testing.T) {
	repos := newTestRepositories(t)
	ctx := context.Background()

	missing := &core.ApplicantProfile{Id: core.ID(999), Email: "ghost@example.com"}
	_, err := repos.Applicants.UpdateApplicant(ctx, missing)
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}
}

func TestApplicantDelete(t *testing.T) {
	repos := newTestRepositories(t)
	ctx := context.Background()

	applicant := &core.ApplicantProfile{Email: "ada@example.com", Name: "Ada"}
	added, err := repos.Applicants.AddApplicant(ctx, applicant)
	if err != nil {
		t.Fatalf("Failed to add applicant: %v", err)
	}

	if err := repos.Applicants.DeleteApplicant(ctx, added.Id); err != nil {
		t.Fatalf("Failed to delete applicant: %v", err)
	}

	if _, err := repos.Applicants.GetApplicant(ctx, added.Id); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}

	// Email is available again after deletion
	if _, err := repos.Applicants.AddApplicant(ctx, &core.ApplicantProfile{Email: "ada@example.com"}); err != nil {
		t.Fatalf("Failed to re-register email after delete: %v", err)
	}
}
