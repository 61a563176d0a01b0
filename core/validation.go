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


package core

import "fmt"

// ValidateApplicantProfile validates an ApplicantProfile according to domain rules.
//
// Validation rules:
//   - Email must not be empty
//   - Name must not be empty
//   - Age must not be negative
//   - GPA must not be negative
//
// NOT validated:
//   - ID (0 is valid from database sequences)
//   - Profile fields (country, education level, field of study may be empty
//     until the applicant completes their profile)
func ValidateApplicantProfile(applicant *ApplicantProfile) error {
	if applicant == nil {
		return fmt.Errorf("%w: applicant is nil", ErrInvalidApplicant)
	}
	if applicant.Email == "" {
		return fmt.Errorf("%w: %w", ErrInvalidApplicant, ErrEmptyEmail)
	}
	if applicant.Name == "" {
		return fmt.Errorf("%w: %w", ErrInvalidApplicant, ErrEmptyName)
	}
	if applicant.Age < 0 {
		return fmt.Errorf("%w: %w", ErrInvalidApplicant, ErrInvalidAge)
	}
	if applicant.GPA < 0 {
		return fmt.Errorf("%w: %w", ErrInvalidApplicant, ErrInvalidGPA)
	}
	return nil
}

// ValidateScholarshipRecord validates a ScholarshipRecord according to domain rules.
//
// Validation rules:
//   - Name must not be empty
//   - MinGPA, if set, must not be negative
//   - MinAge and MaxAge, if both set, must be a non-empty range
//
// Unset bound pointers are valid: absence of a bound means the bound
// imposes no constraint.
func ValidateScholarshipRecord(scholarship *ScholarshipRecord) error {
	if scholarship == nil {
		return fmt.Errorf("%w: scholarship is nil", ErrInvalidScholarship)
	}
	if scholarship.Name == "" {
		return fmt.Errorf("%w: %w", ErrInvalidScholarship, ErrEmptyName)
	}
	if scholarship.MinGPA != nil && *scholarship.MinGPA < 0 {
		return fmt.Errorf("%w: %w", ErrInvalidScholarship, ErrInvalidGPA)
	}
	if scholarship.MinAge != nil && *scholarship.MinAge < 0 {
		return fmt.Errorf("%w: %w", ErrInvalidScholarship, ErrInvalidAge)
	}
	if scholarship.MinAge != nil && scholarship.MaxAge != nil && *scholarship.MinAge > *scholarship.MaxAge {
		return fmt.Errorf("%w: %w", ErrInvalidScholarship, ErrInvalidAgeBounds)
	}
	return nil
}

// ValidateFeedbackKind validates a FeedbackKind value.
func ValidateFeedbackKind(kind FeedbackKind) error {
	switch kind {
	case FeedbackLike, FeedbackDislike:
		return nil
	default:
		return fmt.Errorf("%w: %d", ErrInvalidFeedbackKind, kind)
	}
}

// ValidateFeedback validates a Feedback record according to domain rules.
func ValidateFeedback(feedback *Feedback) error {
	if feedback == nil {
		return fmt.Errorf("%w: feedback is nil", ErrInvalidFeedback)
	}
	if feedback.ApplicantId == 0 {
		return fmt.Errorf("%w: applicant id required", ErrInvalidFeedback)
	}
	if feedback.ScholarshipId == 0 {
		return fmt.Errorf("%w: scholarship id required", ErrInvalidFeedback)
	}
	if err := ValidateFeedbackKind(feedback.Kind); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidFeedback, err)
	}
	return nil
}
