package hashcrack

// Phase is a stage of a run. Runs move strictly forward through the phases
// and never return to an earlier one.
type Phase string

const (
	PhaseLoading      Phase = "LOADING"
	PhasePartitioning Phase = "PARTITIONING"
	PhaseRunning      Phase = "RUNNING"
	PhaseJoining      Phase = "JOINING"
	PhaseReporting    Phase = "REPORTING"
)

// OnPhase registers fn to be called as Run enters each of its phases. Not
// safe to call concurrently with Run.
func (s *Service) OnPhase(fn func(Phase)) {
	s.onPhase = fn
}

func (s *Service) enter(p Phase) {
	s.l.Debug().Str("phase", string(p)).Msg("entering phase")
	if s.onPhase != nil {
		s.onPhase(p)
	}
}
