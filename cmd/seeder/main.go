package main

import (
	"context"
	"encoding/json"
	"flag"
	"log/slog"
	"os"

	"github.com/scholarmatch/scholarmatch/core"
	"github.com/scholarmatch/scholarmatch/storage/badger"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

var catalog = []*core.ScholarshipRecord{
	{
		Name:           "STEM Excellence Award",
		Description:    "Supports outstanding students pursuing science, technology, engineering, or mathematics degrees.",
		Requirements:   "Official transcript, two recommendation letters, and a 500-word essay.",
		FieldOfStudy:   "Engineering",
		Country:        core.CountryInternational,
		EducationLevel: core.EducationUndergraduate,
		MinGPA:         floatPtr(3.5),
		Amount:         5000,
		Deadline:       "2026-12-31",
		ApplicationURL: "https://example.org/stem-excellence",
	},
	{
		Name:           "Global Women in Tech Scholarship",
		Description:    "For women pursuing careers in computer science and software engineering worldwide.",
		Requirements:   "Portfolio of projects and a personal statement.",
		FieldOfStudy:   "Computer Science",
		Country:        core.CountryInternational,
		MinGPA:         floatPtr(3.0),
		Amount:         7500,
		Deadline:       "2026-09-15",
		ApplicationURL: "https://example.org/women-in-tech",
	},
	{
		Name:           "Kenya Undergraduate Grant",
		Description:    "Need-based grant for Kenyan undergraduates in any field of study.",
		Requirements:   "Proof of enrollment and a household income statement.",
		Country:        "Kenya",
		EducationLevel: core.EducationUndergraduate,
		Amount:         2000,
		Deadline:       "2026-08-01",
		ApplicationURL: "https://example.org/kenya-grant",
	},
	{
		Name:           "First Generation Scholars Fund",
		Description:    "Supports students who are the first in their family to attend university.",
		Requirements:   "Personal essay describing your educational journey.",
		Country:        core.CountryInternational,
		MinGPA:         floatPtr(2.8),
		Amount:         3000,
		Deadline:       "2026-10-01",
		ApplicationURL: "https://example.org/first-gen",
	},
	{
		Name:           "Graduate Research Fellowship",
		Description:    "Funds graduate students conducting original research in the natural sciences.",
		Requirements:   "Research proposal and faculty advisor endorsement.",
		FieldOfStudy:   "Natural Sciences",
		Country:        core.CountryInternational,
		EducationLevel: core.EducationGraduate,
		MinGPA:         floatPtr(3.7),
		Amount:         15000,
		Deadline:       "2026-11-30",
		ApplicationURL: "https://example.org/grad-research",
	},
	{
		Name:           "Young Innovators Prize",
		Description:    "Awards young entrepreneurs and inventors under 25 building technology for social good.",
		Requirements:   "Demonstration of a working prototype or launched product.",
		Country:        core.CountryInternational,
		MinAge:         intPtr(16),
		MaxAge:         intPtr(25),
		Amount:         10000,
		Deadline:       "2026-07-15",
		ApplicationURL: "https://example.org/young-innovators",
	},
	{
		Name:           "USA Business Leaders Scholarship",
		Description:    "For American students pursuing business administration or economics degrees.",
		Requirements:   "Resume and a letter from a business mentor.",
		FieldOfStudy:   "Business",
		Country:        "USA",
		MinGPA:         floatPtr(3.2),
		Amount:         4000,
		Deadline:       "2026-06-30",
		ApplicationURL: "https://example.org/business-leaders",
	},
	{
		Name:           "High School Achievers Bursary",
		Description:    "Helps high school students with financial need prepare for university admission.",
		Requirements:   "School reference letter.",
		Country:        core.CountryInternational,
		EducationLevel: core.EducationHighSchool,
		Amount:         1500,
		Deadline:       "2026-05-31",
		ApplicationURL: "https://example.org/hs-achievers",
	},
	{
		Name:           "Medical Futures Scholarship",
		Description:    "Supports students committed to careers in medicine and public health.",
		Requirements:   "Statement of purpose and volunteer work record.",
		FieldOfStudy:   "Medicine",
		Country:        core.CountryInternational,
		MinGPA:         floatPtr(3.6),
		Amount:         8000,
		Deadline:       "2027-01-15",
		ApplicationURL: "https://example.org/medical-futures",
	},
	{
		Name:           "Arts and Humanities Grant",
		Description:    "Encourages study in literature, history, philosophy, and the fine arts.",
		Requirements:   "Portfolio or writing sample.",
		FieldOfStudy:   "Humanities",
		Country:        core.CountryInternational,
		Amount:         2500,
		Deadline:       "2026-09-30",
		ApplicationURL: "https://example.org/arts-humanities",
	},
	{
		Name:           "Doctoral Completion Award",
		Description:    "Bridges funding for doctoral candidates in their final year of dissertation writing.",
		Requirements:   "Dissertation chapter outline and advisor letter.",
		Country:        core.CountryInternational,
		EducationLevel: core.EducationDoctorate,
		Amount:         12000,
		Deadline:       "2026-12-01",
		ApplicationURL: "https://example.org/doctoral-completion",
	},
	{
		Name:           "Rural Communities Education Fund",
		Description:    "Need-based support for students from rural communities entering any degree program.",
		Requirements:   "Proof of residence and a financial need statement.",
		Country:        core.CountryInternational,
		Amount:         3500,
		Deadline:       "2026-08-15",
		ApplicationURL: "https://example.org/rural-communities",
	},
}

var (
	dbPath       = flag.String("db", "./scholarmatch_db", "path to BadgerDB database directory")
	seedFileName = flag.String("src", "", "JSON file of scholarship records to seed instead of the built-in catalog")
)

func init() {
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))
	flag.Parse()
}

// recordsFromFile reads scholarship records from a JSON array file.
func recordsFromFile(filename string) ([]*core.ScholarshipRecord, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var records []*core.ScholarshipRecord
	if err := json.NewDecoder(f).Decode(&records); err != nil {
		return nil, err
	}
	return records, nil
}

func main() {
	repos, err := badger.NewRepositories(*dbPath)
	if err != nil {
		panic(err)
	}
	defer repos.Close()

	ctx := context.Background()

	records := catalog
	if *seedFileName != "" {
		records, err = recordsFromFile(*seedFileName)
		if err != nil {
			panic(err)
		}
	}

	valid := records[:0:0]
	for _, record := range records {
		if err := core.ValidateScholarshipRecord(record); err != nil {
			slog.Error("skipping invalid scholarship", "name", record.Name, "err", err)
			continue
		}
		valid = append(valid, record)
	}

	added, err := repos.Scholarships.AddScholarships(ctx, valid...)
	if err != nil {
		panic(err)
	}

	slog.Info("seeded scholarship catalog", "count", len(added), "db", *dbPath)
}
