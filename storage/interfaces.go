package storage

import (
	"context"

	"github.com/scholarmatch/scholarmatch/core"
)

// Repository provides common storage operations shared across all repositories.
// Implementations must be thread-safe and support concurrent access.
type Repository interface {
	// WithTransaction executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	// The context passed to fn may contain transaction state.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	// Close closes the storage backend and releases resources.
	Close() error
}

// ApplicantRepository provides operations for managing applicant profiles.
type ApplicantRepository interface {
	Repository
	// AddApplicant adds an applicant profile to storage.
	// For a profile with Id=0, generates a new ID from sequence.
	// Sets the InsertedAt timestamp if not already set.
	// Returns ErrDuplicateKey if the email is already registered.
	// Returns the profile with the generated ID and timestamps populated.
	AddApplicant(ctx context.Context, applicant *core.ApplicantProfile) (*core.ApplicantProfile, error)

	// UpdateApplicant updates an existing applicant profile.
	// Updates the UpdatedAt timestamp automatically.
	// Returns ErrNotFound if the profile doesn't exist.
	UpdateApplicant(ctx context.Context, applicant *core.ApplicantProfile) (*core.ApplicantProfile, error)

	// GetApplicant retrieves a single applicant profile by ID.
	// Returns ErrNotFound if the profile doesn't exist.
	GetApplicant(ctx context.Context, id core.ID) (*core.ApplicantProfile, error)

	// FindApplicantByEmail retrieves an applicant profile by email address.
	// Returns ErrNotFound if no profile is registered under the email.
	FindApplicantByEmail(ctx context.Context, email string) (*core.ApplicantProfile, error)

	// DeleteApplicant removes an applicant profile by ID.
	// Also removes the email index entry.
	// Returns ErrNotFound if the profile doesn't exist.
	DeleteApplicant(ctx context.Context, id core.ID) error
}

// ScholarshipRepository provides operations for managing the scholarship catalog.
type ScholarshipRepository interface {
	Repository
	// AddScholarships adds one or more scholarships to storage.
	// For records with Id=0, derives content-based IDs from the name.
	// Sets the InsertedAt timestamp if not already set.
	// Returns the records with IDs and timestamps populated.
	AddScholarships(ctx context.Context, scholarships ...*core.ScholarshipRecord) ([]*core.ScholarshipRecord, error)

	// GetScholarship retrieves a single scholarship by ID.
	// Returns ErrNotFound if the record doesn't exist.
	GetScholarship(ctx context.Context, id core.ID) (*core.ScholarshipRecord, error)

	// AllScholarships retrieves the full catalog in deterministic store
	// order. The order is stable across calls but is not numeric by ID.
	AllScholarships(ctx context.Context) ([]*core.ScholarshipRecord, error)

	// DeleteScholarships removes scholarships by their IDs.
	// Returns ErrNotFound if any record doesn't exist.
	DeleteScholarships(ctx context.Context, ids ...core.ID) error
}

// ApplicationRepository provides operations for recording submitted applications.
type ApplicationRepository interface {
	Repository
	// AddApplication records that an applicant applied to a scholarship.
	// Generates a new ID from sequence and sets AppliedAt if not already set.
	AddApplication(ctx context.Context, application *core.Application) (*core.Application, error)

	// GetApplicationsByApplicant retrieves all applications submitted by an
	// applicant, ordered by ID ascending (insertion order).
	GetApplicationsByApplicant(ctx context.Context, applicantID core.ID) ([]*core.Application, error)
}

// FeedbackRepository provides operations for recording match feedback.
type FeedbackRepository interface {
	Repository
	// AddFeedback records an applicant's reaction to a suggested scholarship.
	// Generates a new ID from sequence and sets CreatedAt if not already set.
	AddFeedback(ctx context.Context, feedback *core.Feedback) (*core.Feedback, error)

	// GetFeedbackByApplicant retrieves all feedback submitted by an applicant,
	// ordered by ID ascending (insertion order).
	GetFeedbackByApplicant(ctx context.Context, applicantID core.ID) ([]*core.Feedback, error)
}
