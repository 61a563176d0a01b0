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

import "errors"

// Domain validation errors
var (
	// ErrInvalidApplicant indicates an ApplicantProfile failed validation.
	ErrInvalidApplicant = errors.New("invalid applicant profile")

	// ErrInvalidScholarship indicates a ScholarshipRecord failed validation.
	ErrInvalidScholarship = errors.New("invalid scholarship record")

	// ErrInvalidFeedback indicates a Feedback record failed validation.
	ErrInvalidFeedback = errors.New("invalid feedback")

	// ErrEmptyEmail indicates the Email field is empty.
	ErrEmptyEmail = errors.New("email cannot be empty")

	// ErrEmptyName indicates the Name field is empty.
	ErrEmptyName = errors.New("name cannot be empty")

	// ErrInvalidAge indicates a negative applicant age.
	ErrInvalidAge = errors.New("age cannot be negative")

	// ErrInvalidGPA indicates a negative GPA value.
	ErrInvalidGPA = errors.New("gpa cannot be negative")

	// ErrInvalidAgeBounds indicates MinAge exceeds MaxAge.
	ErrInvalidAgeBounds = errors.New("min age cannot exceed max age")

	// ErrInvalidFeedbackKind indicates an invalid FeedbackKind value.
	ErrInvalidFeedbackKind = errors.New("invalid feedback kind")
)
