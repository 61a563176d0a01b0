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

import (
	"encoding/binary"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// It is generated using content-based hashing or database sequences.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// CountryInternational is the sentinel country value marking a scholarship
// as open to applicants from any country.
const CountryInternational = "International"

// Education levels commonly carried by applicant profiles and scholarship
// restrictions. The fields are free strings; these constants cover the
// values the catalog is seeded with.
const (
	EducationHighSchool    = "High School"
	EducationUndergraduate = "Undergraduate"
	EducationGraduate      = "Graduate"
	EducationDoctorate     = "Doctorate"
)

// ApplicantProfile represents a registered applicant together with the
// profile fields the matching pipeline reads. The profile is immutable for
// the duration of a single match call.
type ApplicantProfile struct {
	Id             ID
	Email          string
	PasswordHash   string
	Name           string
	Age            int
	Country        string
	EducationLevel string
	GPA            float64
	FieldOfStudy   string
	FinancialNeed  bool
	PhoneNumber    string // optional, read only by the notification layer
	InsertedAt     time.Time
	UpdatedAt      time.Time
}

// ScholarshipRecord represents one scholarship in the catalog.
// Bound fields (MinGPA, MinAge, MaxAge) are pointers: nil means the bound
// imposes no constraint, which is distinct from a zero value.
type ScholarshipRecord struct {
	Id             ID
	Name           string
	Description    string
	Requirements   string
	FieldOfStudy   string // empty = unrestricted
	Country        string // CountryInternational or empty = unrestricted
	EducationLevel string // empty = unrestricted
	MinGPA         *float64
	MinAge         *int
	MaxAge         *int
	Amount         float64
	Deadline       string
	ApplicationURL string
	InsertedAt     time.Time
	UpdatedAt      time.Time
}

// ApplicationStatusApplied is the status recorded when an applicant submits
// an application.
const ApplicationStatusApplied = "applied"

// Application records that an applicant applied to a scholarship.
type Application struct {
	Id            ID
	ApplicantId   ID
	ScholarshipId ID
	Status        string
	AppliedAt     time.Time
}

// FeedbackKind identifies the polarity of applicant feedback on a match.
type FeedbackKind int

const (
	// FeedbackLike marks a match the applicant found useful.
	FeedbackLike FeedbackKind = iota + 1
	// FeedbackDislike marks a match the applicant found irrelevant.
	FeedbackDislike
)

// Feedback records an applicant's reaction to a suggested scholarship.
type Feedback struct {
	Id            ID
	ApplicantId   ID
	ScholarshipId ID
	Kind          FeedbackKind
	CreatedAt     time.Time
}

// MatchCandidate pairs a scholarship with its similarity score against one
// applicant. Candidates exist only for the duration of a ranking call.
type MatchCandidate struct {
	Scholarship *ScholarshipRecord
	Score       float64
}

// Match is the caller-facing form of a ranked candidate.
type Match struct {
	Id             ID      `json:"id"`
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	Amount         float64 `json:"amount"`
	Deadline       string  `json:"deadline"`
	Confidence     float64 `json:"confidence"`
	Requirements   string  `json:"requirements"`
	ApplicationURL string  `json:"application_url"`
}
