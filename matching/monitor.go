package matching

import "github.com/scholarmatch/scholarmatch/core"

// MatchMonitor provides hooks to observe the matching process.
// Implement this interface to track intermediate steps and results during a ranking call.
type MatchMonitor interface {
	Start(applicant *core.ApplicantProfile)
	AfterEligibilityFilter(eligible []*core.ScholarshipRecord)
	AfterApplicantEmbedding(vector []float32)
	Scored(candidate *core.MatchCandidate)
	Finish(results []*core.MatchCandidate)
}

// noopMonitor is a no-op implementation of MatchMonitor
type noopMonitor struct{}

var _ MatchMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ *core.ApplicantProfile)                      {}
func (n *noopMonitor) AfterEligibilityFilter(_ []*core.ScholarshipRecord)  {}
func (n *noopMonitor) AfterApplicantEmbedding(_ []float32)                 {}
func (n *noopMonitor) Scored(_ *core.MatchCandidate)                       {}
func (n *noopMonitor) Finish(_ []*core.MatchCandidate)                     {}
