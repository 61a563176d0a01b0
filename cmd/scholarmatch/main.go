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


package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/scholarmatch/scholarmatch"
	"github.com/scholarmatch/scholarmatch/ai"
	"github.com/scholarmatch/scholarmatch/core"
	"github.com/scholarmatch/scholarmatch/notify"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:   "scholarmatch",
		Usage:  "Scholarship matching over eligibility rules and embedding similarity",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setup,
		Commands: []*cli.Command{
			{
				Name:   "signup",
				Usage:  "Register a new applicant account",
				Action: signupCommand,
				Flags: append(dbFlags(),
					&cli.StringFlag{
						Name:     "email",
						Usage:    "Account email address",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "password",
						Usage:    "Account password",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "name",
						Usage:    "Applicant full name",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "age",
						Usage: "Applicant age",
					},
					&cli.StringFlag{
						Name:  "country",
						Usage: "Applicant country",
					},
					&cli.StringFlag{
						Name:  "education-level",
						Usage: "Education level (High School, Undergraduate, Graduate, Doctorate)",
					},
					&cli.Float64Flag{
						Name:  "gpa",
						Usage: "Grade point average on a 4.0 scale",
					},
					&cli.StringFlag{
						Name:  "field-of-study",
						Usage: "Field of study",
					},
					&cli.BoolFlag{
						Name:  "financial-need",
						Usage: "Whether the applicant has financial need",
					},
					&cli.StringFlag{
						Name:  "phone-number",
						Usage: "Phone number for SMS notifications",
					},
				),
			},
			{
				Name:   "profile",
				Usage:  "Update an applicant profile",
				Action: profileCommand,
				Flags: append(dbFlags(),
					&cli.Uint64Flag{
						Name:     "applicant-id",
						Usage:    "Applicant ID",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "name",
						Usage:    "Applicant full name",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "age",
						Usage: "Applicant age",
					},
					&cli.StringFlag{
						Name:  "country",
						Usage: "Applicant country",
					},
					&cli.StringFlag{
						Name:  "education-level",
						Usage: "Education level (High School, Undergraduate, Graduate, Doctorate)",
					},
					&cli.Float64Flag{
						Name:  "gpa",
						Usage: "Grade point average on a 4.0 scale",
					},
					&cli.StringFlag{
						Name:  "field-of-study",
						Usage: "Field of study",
					},
					&cli.BoolFlag{
						Name:  "financial-need",
						Usage: "Whether the applicant has financial need",
					},
					&cli.StringFlag{
						Name:  "phone-number",
						Usage: "Phone number for SMS notifications",
					},
				),
			},
			{
				Name:   "match",
				Usage:  "Rank scholarships for an applicant",
				Action: matchCommand,
				Flags: append(dbFlags(),
					&cli.Uint64Flag{
						Name:     "applicant-id",
						Usage:    "Applicant ID",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "embedding-host",
						Usage: "Embedding service host URL",
						Value: "http://localhost:11434/v1",
					},
					&cli.StringFlag{
						Name:  "embedding-model",
						Usage: "Embedding model name",
						Value: "all-minilm",
					},
					&cli.IntFlag{
						Name:  "top-k",
						Usage: "Number of matches to return",
						Value: 3,
					},
				),
			},
			{
				Name:   "apply",
				Usage:  "Apply to a scholarship and send an SMS confirmation",
				Action: applyCommand,
				Flags: append(dbFlags(),
					&cli.Uint64Flag{
						Name:     "applicant-id",
						Usage:    "Applicant ID",
						Required: true,
					},
					&cli.Uint64Flag{
						Name:     "scholarship-id",
						Usage:    "Scholarship ID",
						Required: true,
					},
				),
			},
			{
				Name:   "feedback",
				Usage:  "Record like/dislike feedback on a suggested scholarship",
				Action: feedbackCommand,
				Flags: append(dbFlags(),
					&cli.Uint64Flag{
						Name:     "applicant-id",
						Usage:    "Applicant ID",
						Required: true,
					},
					&cli.Uint64Flag{
						Name:     "scholarship-id",
						Usage:    "Scholarship ID",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "kind",
						Usage:    "Feedback kind (like, dislike)",
						Required: true,
					},
				),
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func dbFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "db",
			Aliases:  []string{"d"},
			Usage:    "Path to BadgerDB database directory",
			Required: true,
		},
	}
}

func setup(c *cli.Context) error {
	// Missing .env is fine; environment variables may be set directly
	_ = godotenv.Load()
	return setupLogger(c)
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	// Configure slog with the specified level
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}

func profileFromFlags(c *cli.Context) scholarmatch.ProfileUpdate {
	return scholarmatch.ProfileUpdate{
		Name:           c.String("name"),
		Age:            c.Int("age"),
		Country:        c.String("country"),
		EducationLevel: c.String("education-level"),
		GPA:            c.Float64("gpa"),
		FieldOfStudy:   c.String("field-of-study"),
		FinancialNeed:  c.Bool("financial-need"),
		PhoneNumber:    c.String("phone-number"),
	}
}

func signupCommand(c *cli.Context) error {
	ctx := context.Background()

	service, err := scholarmatch.NewService(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer service.Close()

	applicant := &core.ApplicantProfile{
		Email:          c.String("email"),
		Name:           c.String("name"),
		Age:            c.Int("age"),
		Country:        c.String("country"),
		EducationLevel: c.String("education-level"),
		GPA:            c.Float64("gpa"),
		FieldOfStudy:   c.String("field-of-study"),
		FinancialNeed:  c.Bool("financial-need"),
		PhoneNumber:    c.String("phone-number"),
	}

	registered, err := service.RegisterApplicant(ctx, applicant, c.String("password"))
	if err != nil {
		return fmt.Errorf("signup failed: %w", err)
	}

	fmt.Printf("Registered applicant %d (%s)\n", registered.Id, registered.Email)
	return nil
}

func profileCommand(c *cli.Context) error {
	ctx := context.Background()

	service, err := scholarmatch.NewService(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer service.Close()

	updated, err := service.UpdateProfile(ctx, core.ID(c.Uint64("applicant-id")), profileFromFlags(c))
	if err != nil {
		return fmt.Errorf("profile update failed: %w", err)
	}

	fmt.Printf("Updated profile for applicant %d\n", updated.Id)
	return nil
}

func matchCommand(c *cli.Context) error {
	ctx := context.Background()

	aiConfig := ai.NewConfig(
		ai.WithEmbeddingHost(c.String("embedding-host")),
		ai.WithEmbeddingModel(c.String("embedding-model")),
	)
	if err := aiConfig.Validate(); err != nil {
		return fmt.Errorf("invalid AI configuration: %w", err)
	}

	service, err := scholarmatch.NewService(c.String("db"), scholarmatch.WithAIConfig(aiConfig))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer service.Close()

	response := service.GetMatches(ctx, core.ID(c.Uint64("applicant-id")), c.Int("top-k"))

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(response)
}

func applyCommand(c *cli.Context) error {
	ctx := context.Background()

	opts := []scholarmatch.ServiceOption{}
	if apiKey := os.Getenv("INSTASEND_API_KEY"); apiKey != "" {
		notifier, err := notify.NewInstasendNotifier(apiKey)
		if err != nil {
			return fmt.Errorf("failed to configure SMS notifier: %w", err)
		}
		opts = append(opts, scholarmatch.WithNotifier(notifier))
	}

	service, err := scholarmatch.NewService(c.String("db"), opts...)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer service.Close()

	application, err := service.Apply(ctx, core.ID(c.Uint64("applicant-id")), core.ID(c.Uint64("scholarship-id")))
	if err != nil {
		return fmt.Errorf("application failed: %w", err)
	}

	fmt.Printf("Application %d recorded (%s)\n", application.Id, application.Status)
	return nil
}

func feedbackCommand(c *cli.Context) error {
	ctx := context.Background()

	var kind core.FeedbackKind
	switch strings.ToLower(c.String("kind")) {
	case "like":
		kind = core.FeedbackLike
	case "dislike":
		kind = core.FeedbackDislike
	default:
		return fmt.Errorf("invalid feedback kind %q: must be like or dislike", c.String("kind"))
	}

	service, err := scholarmatch.NewService(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer service.Close()

	feedback, err := service.SubmitFeedback(ctx, core.ID(c.Uint64("applicant-id")), core.ID(c.Uint64("scholarship-id")), kind)
	if err != nil {
		return fmt.Errorf("feedback failed: %w", err)
	}

	fmt.Printf("Feedback %d recorded\n", feedback.Id)
	return nil
}
