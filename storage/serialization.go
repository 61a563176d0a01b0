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


package storage

import (
	"fmt"

	"github.com/scholarmatch/scholarmatch/core"
)

// MarshalID serializes an ID to bytes.
func MarshalID(id core.ID) []byte {
	buf := make([]byte, core.IDMUS.Size(id))
	core.IDMUS.Marshal(id, buf)
	return buf
}

// UnmarshalID deserializes an ID from bytes.
func UnmarshalID(data []byte) (core.ID, error) {
	id, _, err := core.IDMUS.Unmarshal(data)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	return id, nil
}

// MarshalApplicant serializes an ApplicantProfile to bytes.
func MarshalApplicant(applicant *core.ApplicantProfile) []byte {
	buf := make([]byte, core.ApplicantProfileMUS.Size(*applicant))
	core.ApplicantProfileMUS.Marshal(*applicant, buf)
	return buf
}

// UnmarshalApplicant deserializes an ApplicantProfile from bytes.
func UnmarshalApplicant(data []byte) (*core.ApplicantProfile, error) {
	applicant, _, err := core.ApplicantProfileMUS.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	return &applicant, nil
}

// MarshalScholarship serializes a ScholarshipRecord to bytes.
func MarshalScholarship(scholarship *core.ScholarshipRecord) []byte {
	buf := make([]byte, core.ScholarshipRecordMUS.Size(*scholarship))
	core.ScholarshipRecordMUS.Marshal(*scholarship, buf)
	return buf
}

// UnmarshalScholarship deserializes a ScholarshipRecord from bytes.
func UnmarshalScholarship(data []byte) (*core.ScholarshipRecord, error) {
	scholarship, _, err := core.ScholarshipRecordMUS.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	return &scholarship, nil
}

// MarshalApplication serializes an Application to bytes.
func MarshalApplication(application *core.Application) []byte {
	buf := make([]byte, core.ApplicationMUS.Size(*application))
	core.ApplicationMUS.Marshal(*application, buf)
	return buf
}

// UnmarshalApplication deserializes an Application from bytes.
func UnmarshalApplication(data []byte) (*core.Application, error) {
	application, _, err := core.ApplicationMUS.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	return &application, nil
}

// MarshalFeedback serializes a Feedback to bytes.
func MarshalFeedback(feedback *core.Feedback) []byte {
	buf := make([]byte, core.FeedbackMUS.Size(*feedback))
	core.FeedbackMUS.Marshal(*feedback, buf)
	return buf
}

// UnmarshalFeedback deserializes a Feedback from bytes.
func UnmarshalFeedback(data []byte) (*core.Feedback, error) {
	feedback, _, err := core.FeedbackMUS.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	return &feedback, nil
}
