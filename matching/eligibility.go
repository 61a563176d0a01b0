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

import (
	"strings"

	"github.com/scholarmatch/scholarmatch/core"
)

// FilterEligible applies the rule-based eligibility pre-screen to the
// scholarship catalog and returns the subset the applicant may apply to,
// preserving the original relative order. The function is pure: it never
// mutates its inputs and never fails for normal business conditions.
//
// A scholarship is excluded if any of the following holds; an unset bound
// imposes no constraint:
//
//   - MinGPA set and the applicant's GPA is below it
//   - MinAge set and the applicant is younger
//   - MaxAge set and the applicant is older
//   - Country set, not "International", and different from the applicant's
//     country (exact, case-sensitive match)
//   - EducationLevel set and different from the applicant's (exact match)
//   - FieldOfStudy set with no token overlap in either direction
func FilterEligible(applicant *core.ApplicantProfile, scholarships []*core.ScholarshipRecord) []*core.ScholarshipRecord {
	eligible := make([]*core.ScholarshipRecord, 0, len(scholarships))
	for _, scholarship := range scholarships {
		if isEligible(applicant, scholarship) {
			eligible = append(eligible, scholarship)
		}
	}
	return eligible
}

func isEligible(applicant *core.ApplicantProfile, scholarship *core.ScholarshipRecord) bool {
	if scholarship.MinGPA != nil && applicant.GPA < *scholarship.MinGPA {
		return false
	}

	if scholarship.MinAge != nil && applicant.Age < *scholarship.MinAge {
		return false
	}

	if scholarship.MaxAge != nil && applicant.Age > *scholarship.MaxAge {
		return false
	}

	// Country matching (if scholarship is country-specific)
	if scholarship.Country != "" && scholarship.Country != core.CountryInternational {
		if applicant.Country != scholarship.Country {
			return false
		}
	}

	// Education level matching
	if scholarship.EducationLevel != "" && scholarship.EducationLevel != applicant.EducationLevel {
		return false
	}

	// Field of study matching (partial match)
	if scholarship.FieldOfStudy != "" {
		if !fieldsOverlap(applicant.FieldOfStudy, scholarship.FieldOfStudy) {
			return false
		}
	}

	return true
}

// fieldsOverlap reports whether two field-of-study strings share any token,
// checked as lowercased substrings in both directions. This deliberately
// loose rule is the product behavior: "Computer Science" overlaps
// "Computer Science Engineering" on "Computer", and common words can
// produce false positives. Product owners have flagged it for review;
// do not tighten it here.
func fieldsOverlap(applicantField, scholarshipField string) bool {
	applicantLower := strings.ToLower(applicantField)
	scholarshipLower := strings.ToLower(scholarshipField)

	for _, token := range strings.Fields(scholarshipLower) {
		if strings.Contains(applicantLower, token) {
			return true
		}
	}
	for _, token := range strings.Fields(applicantLower) {
		if strings.Contains(scholarshipLower, token) {
			return true
		}
	}
	return false
}
