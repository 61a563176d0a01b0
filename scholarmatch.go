// Copyright 2025 ScholarMatch Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package scholarmatch matches applicants to scholarships. It combines
// rule-based eligibility filtering with embedding similarity ranking and
// persists applicants, the scholarship catalog, applications, and feedback
// in BadgerDB.
package scholarmatch

import (
	"context"
	"errors"
	"log/slog"

	"github.com/scholarmatch/scholarmatch/ai"
	"github.com/scholarmatch/scholarmatch/ai/openai"
	"github.com/scholarmatch/scholarmatch/auth"
	"github.com/scholarmatch/scholarmatch/core"
	"github.com/scholarmatch/scholarmatch/matching"
	"github.com/scholarmatch/scholarmatch/notify"
	"github.com/scholarmatch/scholarmatch/storage"
	"github.com/scholarmatch/scholarmatch/storage/badger"
)

// ErrInvalidCredentials indicates a failed email/password authentication.
var ErrInvalidCredentials = errors.New("invalid email or password")

// Service wires storage, the embedding provider, and the match ranker into
// one caller-facing API.
type Service struct {
	repos    *badger.Repositories
	provider ai.AIProvider
	ranker   *matching.Ranker
	notifier notify.Notifier
	logger   *slog.Logger
}

// ServiceOption configures a Service.
type ServiceOption func(*serviceOptions)

type serviceOptions struct {
	aiConfig   *ai.Config
	provider   ai.AIProvider
	notifier   notify.Notifier
	rankerOpts []matching.Option
}

// WithAIConfig sets the embedding provider configuration.
// Ignored when WithAIProvider is also given.
func WithAIConfig(config *ai.Config) ServiceOption {
	return func(o *serviceOptions) {
		o.aiConfig = config
	}
}

// WithAIProvider sets a pre-built embedding provider. Used in tests to
// inject a mock provider.
func WithAIProvider(provider ai.AIProvider) ServiceOption {
	return func(o *serviceOptions) {
		o.provider = provider
	}
}

// WithNotifier sets the SMS notifier. Without one, application
// confirmations are not sent.
func WithNotifier(notifier notify.Notifier) ServiceOption {
	return func(o *serviceOptions) {
		o.notifier = notifier
	}
}

// WithRankerOptions forwards options to the match ranker.
func WithRankerOptions(opts ...matching.Option) ServiceOption {
	return func(o *serviceOptions) {
		o.rankerOpts = append(o.rankerOpts, opts...)
	}
}

// NewService opens the database at filePath and builds the full pipeline.
func NewService(filePath string, opts ...ServiceOption) (*Service, error) {
	return newService(filePath, false, opts...)
}

// NewMemoryService builds a service over in-memory storage. Used in tests.
func NewMemoryService(opts ...ServiceOption) (*Service, error) {
	return newService("", true, opts...)
}

func newService(filePath string, inMemory bool, opts ...ServiceOption) (*Service, error) {
	// Apply options
	options := &serviceOptions{
		aiConfig: ai.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(options)
	}

	var repos *badger.Repositories
	var err error
	if inMemory {
		repos, err = badger.NewMemoryRepositories()
	} else {
		repos, err = badger.NewRepositories(filePath)
	}
	if err != nil {
		return nil, err
	}

	provider := options.provider
	if provider == nil {
		provider, err = openai.NewProvider(options.aiConfig)
		if err != nil {
			repos.Close()
			return nil, err
		}
	}

	ranker, err := matching.NewRanker(provider, options.rankerOpts...)
	if err != nil {
		provider.Close()
		repos.Close()
		return nil, err
	}

	return &Service{
		repos:    repos,
		provider: provider,
		ranker:   ranker,
		notifier: options.notifier,
		logger:   slog.Default(),
	}, nil
}

// Close releases the ranker, the embedding provider, and storage.
func (s *Service) Close() error {
	s.ranker.Close()

	if err := s.provider.Close(); err != nil {
		s.logger.Error("error closing AI provider", "err", err)
	}

	if err := s.repos.Close(); err != nil {
		s.logger.Error("error closing storage", "err", err)
		return err
	}
	return nil
}

// Applicants returns the applicant repository.
func (s *Service) Applicants() storage.ApplicantRepository {
	return s.repos.Applicants
}

// Scholarships returns the scholarship repository.
func (s *Service) Scholarships() storage.ScholarshipRepository {
	return s.repos.Scholarships
}

// Applications returns the application repository.
func (s *Service) Applications() storage.ApplicationRepository {
	return s.repos.Applications
}

// Feedback returns the feedback repository.
func (s *Service) Feedback() storage.FeedbackRepository {
	return s.repos.Feedback
}

// RegisterApplicant validates the profile, hashes the password, and stores
// the new account. Returns storage.ErrDuplicateKey if the email is taken.
func (s *Service) RegisterApplicant(ctx context.Context, applicant *core.ApplicantProfile, password string) (*core.ApplicantProfile, error) {
	if err := core.ValidateApplicantProfile(applicant); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}
	applicant.PasswordHash = hash

	return s.repos.Applicants.AddApplicant(ctx, applicant)
}

// Authenticate verifies an email/password pair and returns the profile.
// Returns ErrInvalidCredentials for an unknown email or a wrong password,
// without distinguishing the two.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*core.ApplicantProfile, error) {
	applicant, err := s.repos.Applicants.FindApplicantByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.VerifyPassword(password, applicant.PasswordHash) {
		return nil, ErrInvalidCredentials
	}
	return applicant, nil
}

// ProfileUpdate carries the mutable profile fields for UpdateProfile.
type ProfileUpdate struct {
	Name           string
	Age            int
	Country        string
	EducationLevel string
	GPA            float64
	FieldOfStudy   string
	FinancialNeed  bool
	PhoneNumber    string
}

// UpdateProfile applies the update to an existing applicant profile.
// Email and password are not touched.
func (s *Service) UpdateProfile(ctx context.Context, applicantID core.ID, update ProfileUpdate) (*core.ApplicantProfile, error) {
	applicant, err := s.repos.Applicants.GetApplicant(ctx, applicantID)
	if err != nil {
		return nil, err
	}

	applicant.Name = update.Name
	applicant.Age = update.Age
	applicant.Country = update.Country
	applicant.EducationLevel = update.EducationLevel
	applicant.GPA = update.GPA
	applicant.FieldOfStudy = update.FieldOfStudy
	applicant.FinancialNeed = update.FinancialNeed
	applicant.PhoneNumber = update.PhoneNumber

	if err := core.ValidateApplicantProfile(applicant); err != nil {
		return nil, err
	}

	return s.repos.Applicants.UpdateApplicant(ctx, applicant)
}

// MatchResponse is the caller-facing result of a match request.
type MatchResponse struct {
	Success bool          `json:"success"`
	Matches []*core.Match `json:"matches"`
	Message string        `json:"message,omitempty"`
}

// GetMatches runs the full matching pipeline for the applicant and returns
// the top scholarships with confidence percentages. Pipeline failures are
// reported in the response message rather than as an error; an empty
// eligible set yields a successful response with no matches.
func (s *Service) GetMatches(ctx context.Context, applicantID core.ID, topK int) *MatchResponse {
	applicant, err := s.repos.Applicants.GetApplicant(ctx, applicantID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return &MatchResponse{Success: false, Message: "User not found"}
		}
		s.logger.Error("error loading applicant", "applicantID", applicantID, "err", err)
		return &MatchResponse{Success: false, Message: "Error generating matches"}
	}

	scholarships, err := s.repos.Scholarships.AllScholarships(ctx)
	if err != nil {
		s.logger.Error("error loading scholarship catalog", "err", err)
		return &MatchResponse{Success: false, Message: "Error generating matches"}
	}

	candidates, err := s.ranker.Rank(ctx, applicant, scholarships, topK)
	if err != nil {
		s.logger.Error("error ranking scholarships", "applicantID", applicantID, "err", err)
		return &MatchResponse{Success: false, Message: "Error generating matches"}
	}

	if len(candidates) == 0 {
		return &MatchResponse{
			Success: true,
			Matches: []*core.Match{},
			Message: "No eligible scholarships found",
		}
	}

	matches := make([]*core.Match, len(candidates))
	for i, candidate := range candidates {
		matches[i] = &core.Match{
			Id:             candidate.Scholarship.Id,
			Name:           candidate.Scholarship.Name,
			Description:    candidate.Scholarship.Description,
			Amount:         candidate.Scholarship.Amount,
			Deadline:       candidate.Scholarship.Deadline,
			Confidence:     matching.Confidence(candidate.Score),
			Requirements:   candidate.Scholarship.Requirements,
			ApplicationURL: candidate.Scholarship.ApplicationURL,
		}
	}

	return &MatchResponse{Success: true, Matches: matches}
}

// Apply records an application and sends an SMS confirmation when the
// applicant has a phone number and a notifier is configured. A notification
// failure does not fail the application.
func (s *Service) Apply(ctx context.Context, applicantID, scholarshipID core.ID) (*core.Application, error) {
	applicant, err := s.repos.Applicants.GetApplicant(ctx, applicantID)
	if err != nil {
		return nil, err
	}
	scholarship, err := s.repos.Scholarships.GetScholarship(ctx, scholarshipID)
	if err != nil {
		return nil, err
	}

	application, err := s.repos.Applications.AddApplication(ctx, &core.Application{
		ApplicantId:   applicantID,
		ScholarshipId: scholarshipID,
	})
	if err != nil {
		return nil, err
	}

	if s.notifier != nil && applicant.PhoneNumber != "" {
		message := notify.ApplicationConfirmation(applicant.Name, scholarship.Name)
		if err := s.notifier.SendSMS(ctx, applicant.PhoneNumber, message); err != nil {
			s.logger.Error("error sending application confirmation", "applicantID", applicantID, "err", err)
		}
	}

	return application, nil
}

// SubmitFeedback records an applicant's reaction to a suggested scholarship.
func (s *Service) SubmitFeedback(ctx context.Context, applicantID, scholarshipID core.ID, kind core.FeedbackKind) (*core.Feedback, error) {
	feedback := &core.Feedback{
		ApplicantId:   applicantID,
		ScholarshipId: scholarshipID,
		Kind:          kind,
	}
	if err := core.ValidateFeedback(feedback); err != nil {
		return nil, err
	}

	// The referenced scholarship must exist
	if _, err := s.repos.Scholarships.GetScholarship(ctx, scholarshipID); err != nil {
		return nil, err
	}

	return s.repos.Feedback.AddFeedback(ctx, feedback)
}
