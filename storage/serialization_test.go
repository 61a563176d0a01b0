package storage

import (
	"testing"
	"time"

	"github.com/scholarmatch/scholarmatch/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func TestMarshalUnmarshalID(t *testing.T) {
	tests := []struct {
		name string
		id   core.ID
	}{
		{"zero ID", core.ID(0)},
		{"small ID", core.ID(42)},
		{"large ID", core.ID(18446744073709551615)}, // max uint64
		{"content-based ID", core.IDFromContent("STEM Excellence Award")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := MarshalID(tt.id)
			require.NotEmpty(t, data)

			decoded, err := UnmarshalID(data)
			require.NoError(t, err)
			assert.Equal(t, tt.id, decoded)
		})
	}
}

func TestUnmarshalID_Invalid(t *testing.T) {
	_, err := UnmarshalID([]byte{})
	assert.ErrorIs(t, err, ErrSerializationFailed)
}

func TestMarshalUnmarshalApplicant(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Microsecond)

	tests := []struct {
		name      string
		applicant *core.ApplicantProfile
	}{
		{
			name: "full profile",
			applicant: &core.ApplicantProfile{
				Id:             core.ID(1),
				Email:          "ada@example.com",
				PasswordHash:   "$2a$10$abcdefghijklmnopqrstuv",
				Name:           "Ada Lovelace",
				Age:            22,
				Country:        "Kenya",
				EducationLevel: core.EducationUndergraduate,
				GPA:            3.8,
				FieldOfStudy:   "Computer Science",
				FinancialNeed:  true,
				PhoneNumber:    "+254712345678",
				InsertedAt:     now,
				UpdatedAt:      now,
			},
		},
		{
			name: "no phone number",
			applicant: &core.ApplicantProfile{
				Id:             core.ID(2),
				Email:          "grace@example.com",
				Name:           "Grace Hopper",
				Age:            30,
				Country:        "USA",
				EducationLevel: core.EducationGraduate,
				GPA:            4.0,
				FieldOfStudy:   "Mathematics",
				InsertedAt:     now,
				UpdatedAt:      now,
			},
		},
		{
			name: "unicode name",
			applicant: &core.ApplicantProfile{
				Id:         core.ID(3),
				Email:      "amelie@example.com",
				Name:       "Amélie Müller",
				Age:        19,
				Country:    "Germany",
				GPA:        3.2,
				InsertedAt: now,
				UpdatedAt:  now,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := MarshalApplicant(tt.applicant)
			require.NotEmpty(t, data)

			decoded, err := UnmarshalApplicant(data)
			require.NoError(t, err)
			require.NotNil(t, decoded)

			assert.Equal(t, tt.applicant.Id, decoded.Id)
			assert.Equal(t, tt.applicant.Email, decoded.Email)
			assert.Equal(t, tt.applicant.PasswordHash, decoded.PasswordHash)
			assert.Equal(t, tt.applicant.Name, decoded.Name)
			assert.Equal(t, tt.applicant.Age, decoded.Age)
			assert.Equal(t, tt.applicant.Country, decoded.Country)
			assert.Equal(t, tt.applicant.EducationLevel, decoded.EducationLevel)
			assert.Equal(t, tt.applicant.GPA, decoded.GPA)
			assert.Equal(t, tt.applicant.FieldOfStudy, decoded.FieldOfStudy)
			assert.Equal(t, tt.applicant.FinancialNeed, decoded.FinancialNeed)
			assert.Equal(t, tt.applicant.PhoneNumber, decoded.PhoneNumber)
			assert.True(t, tt.applicant.InsertedAt.Equal(decoded.InsertedAt))
			assert.True(t, tt.applicant.UpdatedAt.Equal(decoded.UpdatedAt))
		})
	}
}

func TestMarshalUnmarshalScholarship(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Microsecond)

	tests := []struct {
		name        string
		scholarship *core.ScholarshipRecord
	}{
		{
			name: "all bounds set",
			scholarship: &core.ScholarshipRecord{
				Id:             core.ID(1),
				Name:           "STEM Excellence Award",
				Description:    "For students in STEM fields",
				Requirements:   "Transcript and essay",
				FieldOfStudy:   "Engineering",
				Country:        "Kenya",
				EducationLevel: core.EducationUndergraduate,
				MinGPA:         floatPtr(3.5),
				MinAge:         intPtr(18),
				MaxAge:         intPtr(25),
				Amount:         5000,
				Deadline:       "2026-12-31",
				ApplicationURL: "https://example.com/apply",
				InsertedAt:     now,
				UpdatedAt:      now,
			},
		},
		{
			name: "no bounds",
			scholarship: &core.ScholarshipRecord{
				Id:          core.ID(2),
				Name:        "Open Grant",
				Description: "Open to anyone",
				Country:     core.CountryInternational,
				Amount:      1000,
				InsertedAt:  now,
				UpdatedAt:   now,
			},
		},
		{
			name: "zero-valued bounds are distinct from nil",
			scholarship: &core.ScholarshipRecord{
				Id:         core.ID(3),
				Name:       "Zero Bound Grant",
				MinGPA:     floatPtr(0),
				MinAge:     intPtr(0),
				InsertedAt: now,
				UpdatedAt:  now,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := MarshalScholarship(tt.scholarship)
			require.NotEmpty(t, data)

			decoded, err := UnmarshalScholarship(data)
			require.NoError(t, err)
			require.NotNil(t, decoded)

			assert.Equal(t, tt.scholarship.Id, decoded.Id)
			assert.Equal(t, tt.scholarship.Name, decoded.Name)
			assert.Equal(t, tt.scholarship.Description, decoded.Description)
			assert.Equal(t, tt.scholarship.Requirements, decoded.Requirements)
			assert.Equal(t, tt.scholarship.FieldOfStudy, decoded.FieldOfStudy)
			assert.Equal(t, tt.scholarship.Country, decoded.Country)
			assert.Equal(t, tt.scholarship.EducationLevel, decoded.EducationLevel)
			assert.Equal(t, tt.scholarship.MinGPA, decoded.MinGPA)
			assert.Equal(t, tt.scholarship.MinAge, decoded.MinAge)
			assert.Equal(t, tt.scholarship.MaxAge, decoded.MaxAge)
			assert.Equal(t, tt.scholarship.Amount, decoded.Amount)
			assert.Equal(t, tt.scholarship.Deadline, decoded.Deadline)
			assert.Equal(t, tt.scholarship.ApplicationURL, decoded.ApplicationURL)
			assert.True(t, tt.scholarship.InsertedAt.Equal(decoded.InsertedAt))
			assert.True(t, tt.scholarship.UpdatedAt.Equal(decoded.UpdatedAt))
		})
	}
}

func TestUnmarshalScholarship_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty data", []byte{}},
		{"invalid data", []byte{0xFF, 0xFF, 0xFF}},
		{"partial data", []byte{1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := UnmarshalScholarship(tt.data)
			assert.ErrorIs(t, err, ErrSerializationFailed)
		})
	}
}

func TestMarshalUnmarshalApplication(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Microsecond)
	application := &core.Application{
		Id:            core.ID(7),
		ApplicantId:   core.ID(1),
		ScholarshipId: core.IDFromContent("STEM Excellence Award"),
		Status:        core.ApplicationStatusApplied,
		AppliedAt:     now,
	}

	data := MarshalApplication(application)
	require.NotEmpty(t, data)

	decoded, err := UnmarshalApplication(data)
	require.NoError(t, err)
	assert.Equal(t, application.Id, decoded.Id)
	assert.Equal(t, application.ApplicantId, decoded.ApplicantId)
	assert.Equal(t, application.ScholarshipId, decoded.ScholarshipId)
	assert.Equal(t, application.Status, decoded.Status)
	assert.True(t, application.AppliedAt.Equal(decoded.AppliedAt))
}

func TestMarshalUnmarshalFeedback(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Microsecond)

	for _, kind := range []core.FeedbackKind{core.FeedbackLike, core.FeedbackDislike} {
		feedback := &core.Feedback{
			Id:            core.ID(11),
			ApplicantId:   core.ID(1),
			ScholarshipId: core.ID(2),
			Kind:          kind,
			CreatedAt:     now,
		}

		data := MarshalFeedback(feedback)
		require.NotEmpty(t, data)

		decoded, err := UnmarshalFeedback(data)
		require.NoError(t, err)
		assert.Equal(t, feedback.Id, decoded.Id)
		assert.Equal(t, feedback.Kind, decoded.Kind)
		assert.True(t, feedback.CreatedAt.Equal(decoded.CreatedAt))
	}
}
