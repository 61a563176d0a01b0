package badger

import "errors"

// Repositories bundles all repositories sharing one BadgerDB backend.
type Repositories struct {
	Applicants   *ApplicantRepository
	Scholarships *ScholarshipRepository
	Applications *ApplicationRepository
	Feedback     *FeedbackRepository

	backend *Backend
}

// NewRepositories opens a BadgerDB database at the specified path and creates
// all repositories over it. Caller must call Close when done.
func NewRepositories(filePath string) (*Repositories, error) {
	return newRepositories(filePath, false)
}

func newRepositories(filePath string, inMemory bool) (*Repositories, error) {
	backend, err := OpenBackend(filePath, inMemory)
	if err != nil {
		return nil, err
	}

	applicants, err := NewApplicantRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	scholarships, err := NewScholarshipRepository(backend)
	if err != nil {
		applicants.Close()
		backend.Close()
		return nil, err
	}

	applications, err := NewApplicationRepository(backend)
	if err != nil {
		scholarships.Close()
		applicants.Close()
		backend.Close()
		return nil, err
	}

	feedback, err := NewFeedbackRepository(backend)
	if err != nil {
		applications.Close()
		scholarships.Close()
		applicants.Close()
		backend.Close()
		return nil, err
	}

	return &Repositories{
		Applicants:   applicants,
		Scholarships: scholarships,
		Applications: applications,
		Feedback:     feedback,
		backend:      backend,
	}, nil
}

// Backend returns the shared backend.
func (r *Repositories) Backend() *Backend {
	return r.backend
}

// Close releases all repositories and closes the backend.
// Sequences are released before the database is closed.
func (r *Repositories) Close() error {
	var errs []error
	errs = append(errs, r.Feedback.Close())
	errs = append(errs, r.Applications.Close())
	errs = append(errs, r.Scholarships.Close())
	errs = append(errs, r.Applicants.Close())
	errs = append(errs, r.backend.Close())
	return errors.Join(errs...)
}
