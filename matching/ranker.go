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
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sort"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/scholarmatch/scholarmatch/ai"
	"github.com/scholarmatch/scholarmatch/core"
)

// DefaultTopK is the number of matches returned when the caller does not
// request a specific count.
const DefaultTopK = 3

// Ranker orchestrates one match request: eligibility filtering, encoding,
// similarity scoring, and top-K selection. A Ranker holds no per-request
// state and is safe for concurrent use.
type Ranker struct {
	embedder ai.Embedder
	pool     *ants.Pool
	logger   *slog.Logger
}

// Option configures a Ranker.
type Option func(*Ranker) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(r *Ranker) error {
		if logger == nil {
			logger = slog.Default()
		}
		r.logger = logger
		return nil
	}
}

// WithPoolSize sets the worker pool size for the per-scholarship encode step.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(r *Ranker) error {
		if size < 1 {
			size = 1
		}
		if r.pool != nil {
			r.pool.Release()
		}
		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		r.pool = pool
		return nil
	}
}

// NewRanker creates a new match ranker using the provider's embedder.
func NewRanker(provider ai.AIProvider, opts ...Option) (*Ranker, error) {
	if provider == nil {
		return nil, ErrAIProviderRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	r := &Ranker{
		embedder: provider.Embedder(),
		pool:     pool,
		logger:   slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(r); err != nil {
			r.pool.Release()
			return nil, err
		}
	}

	return r, nil
}

// Close releases the worker pool.
func (r *Ranker) Close() {
	r.pool.Release()
}

// Rank returns the top k scholarships for the applicant, ordered by
// descending similarity score. An empty result means no scholarship passed
// the eligibility rules; it is a valid outcome, not an error.
func (r *Ranker) Rank(ctx context.Context, applicant *core.ApplicantProfile, scholarships []*core.ScholarshipRecord, k int) ([]*core.MatchCandidate, error) {
	return r.RankWithMonitor(ctx, applicant, scholarships, k, nil)
}

// RankWithMonitor ranks scholarships for the applicant with monitoring.
// The monitor receives callbacks at each stage of the matching process.
//
// Ranking is all-or-nothing: any encoder or scorer failure aborts the call
// and no partial results are returned. The per-scholarship encode step runs
// on the worker pool; all scores are collected before sorting.
func (r *Ranker) RankWithMonitor(ctx context.Context, applicant *core.ApplicantProfile, scholarships []*core.ScholarshipRecord, k int, monitor MatchMonitor) ([]*core.MatchCandidate, error) {
	if applicant == nil {
		return nil, ErrApplicantRequired
	}
	if k <= 0 {
		k = DefaultTopK
	}

	// Use noop monitor if none provided
	if monitor == nil {
		monitor = &noopMonitor{}
	}

	monitor.Start(applicant)

	// 1. Rule-based eligibility pre-screen
	eligible := FilterEligible(applicant, scholarships)
	r.logger.Info("eligibility filter",
		"initial", len(scholarships),
		"dropped", len(scholarships)-len(eligible),
		"left", len(eligible),
	)
	monitor.AfterEligibilityFilter(eligible)

	if len(eligible) == 0 {
		monitor.Finish([]*core.MatchCandidate{})
		return []*core.MatchCandidate{}, nil
	}

	// 2. Encode the applicant once
	applicantVector, err := r.embedder.EmbedText(ctx, ApplicantText(applicant))
	if err != nil {
		r.logger.Error("error generating applicant embedding", "applicantID", applicant.Id, "err", err)
		return nil, fmt.Errorf("%w: %w", ErrEmbedding, err)
	}
	if len(applicantVector) == 0 {
		return nil, fmt.Errorf("%w: encoder returned empty vector", ErrEmbedding)
	}
	monitor.AfterApplicantEmbedding(applicantVector)

	// 3. Encode and score each eligible scholarship on the worker pool
	candidates := make([]*core.MatchCandidate, len(eligible))

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	setErr := func(err error) {
		mu.Lock()
		if firstErr == nil {
			firstErr = err
		}
		mu.Unlock()
	}
	failed := func() bool {
		mu.Lock()
		defer mu.Unlock()
		return firstErr != nil
	}

	for i, scholarship := range eligible {
		wg.Add(1)
		err := r.pool.Submit(func() {
			defer wg.Done()

			if failed() {
				return
			}
			if err := ctx.Err(); err != nil {
				setErr(err)
				return
			}

			vector, err := r.embedder.EmbedText(ctx, ScholarshipText(scholarship))
			if err != nil {
				setErr(fmt.Errorf("%w: %w", ErrEmbedding, err))
				return
			}
			if len(vector) != len(applicantVector) {
				setErr(fmt.Errorf("%w: expected %d dimensions, received %d", ErrEmbedding, len(applicantVector), len(vector)))
				return
			}

			score, err := Cosine(applicantVector, vector)
			if err != nil {
				setErr(err)
				return
			}

			candidates[i] = &core.MatchCandidate{
				Scholarship: scholarship,
				Score:       score,
			}
		})
		if err != nil {
			wg.Done()
			setErr(err)
			break
		}
	}
	wg.Wait()

	if firstErr != nil {
		r.logger.Error("error scoring eligible scholarships", "err", firstErr)
		return nil, firstErr
	}

	for _, candidate := range candidates {
		monitor.Scored(candidate)
	}

	// 4. Sort by score descending. Stable: candidates with equal scores keep
	// their original relative order from the eligible set.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})

	// 5. Truncate to top k
	if len(candidates) > k {
		candidates = candidates[:k]
	}
	monitor.Finish(candidates)

	return candidates, nil
}
