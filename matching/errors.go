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


package matching

import "errors"

var (
	// ErrAIProviderRequired is returned when an AI provider is not provided.
	ErrAIProviderRequired = errors.New("AI provider required")

	// ErrApplicantRequired is returned when a nil applicant is passed to Rank.
	ErrApplicantRequired = errors.New("applicant required")

	// ErrEmbedding indicates the embedding service failed or returned a
	// malformed vector (empty or wrong width). The match call is aborted;
	// embedding failures are deterministic, so the call is not retried.
	ErrEmbedding = errors.New("embedding failed")

	// ErrZeroVector indicates a zero-magnitude vector was passed to the
	// scorer. The production embedder never emits one.
	ErrZeroVector = errors.New("zero magnitude vector")

	// ErrDimensionMismatch indicates two vectors of different widths were
	// passed to the scorer.
	ErrDimensionMismatch = errors.New("vector dimension mismatch")
)
