package matching

import (
	"fmt"

	"github.com/scholarmatch/scholarmatch/core"
)

// ApplicantText builds the labelled natural-language description of an
// applicant that is handed to the text encoder. Each semantic profile field
// appears once, labelled, in a fixed order so that identical profiles
// always encode to identical vectors.
func ApplicantText(applicant *core.ApplicantProfile) string {
	return fmt.Sprintf("Age: %d, Country: %s, Education: %s, GPA: %v, Field: %s, Financial Need: %v",
		applicant.Age,
		applicant.Country,
		applicant.EducationLevel,
		applicant.GPA,
		applicant.FieldOfStudy,
		applicant.FinancialNeed,
	)
}

// ScholarshipText builds the labelled natural-language description of a
// scholarship for the text encoder.
func ScholarshipText(scholarship *core.ScholarshipRecord) string {
	return fmt.Sprintf("Name: %s, Description: %s, Requirements: %s, Field: %s, Country: %s",
		scholarship.Name,
		scholarship.Description,
		scholarship.Requirements,
		scholarship.FieldOfStudy,
		scholarship.Country,
	)
}
