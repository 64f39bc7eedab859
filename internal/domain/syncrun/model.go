package syncrun

import "time"

type Kind string

const (
	KindRosterSync    Kind = "roster_sync"
	KindRankingsSync  Kind = "rankings_sync"
	KindPlayerMatches Kind = "player_matches"
)

func (k Kind) Valid() bool {
	switch k {
	case KindRosterSync, KindRankingsSync, KindPlayerMatches:
		return true
	default:
		return false
	}
}

// State is the orchestrator stage a run is in or ended in.
type State string

const (
	StateIdle                  State = "idle"
	StateDiscoveringClubs      State = "discovering_clubs"
	StateScrapingRosters       State = "scraping_rosters"
	StateDeduplicating         State = "deduplicating"
	StateRecordingHistory      State = "recording_history"
	StateScrapingPlayerMatches State = "scraping_player_matches"
)

type Status string

const (
	StatusRunning   Status = "running"
	StatusSucceeded Status = "succeeded"
	StatusAborted   Status = "aborted"
)

type Trigger string

const (
	TriggerSchedule Trigger = "schedule"
	TriggerManual   Trigger = "manual"
	TriggerCLI      Trigger = "cli"
)

type UnitStatus string

const (
	UnitSuccess UnitStatus = "success"
	UnitFailed  UnitStatus = "failed"
	UnitSkipped UnitStatus = "skipped"
)

// SkipReason classifies why one unit of work produced no output.
type SkipReason string

const (
	SkipReasonNone           SkipReason = ""
	SkipReasonFetchFailed    SkipReason = "fetch_failed"
	SkipReasonParseFailed    SkipReason = "parse_failed"
	SkipReasonNoRecords      SkipReason = "no_records"
	SkipReasonCooldown       SkipReason = "cooldown"
	SkipReasonMissingProfile SkipReason = "missing_profile"
	SkipReasonStoreFailed    SkipReason = "store_failed"
)

// UnitResult is the outcome of one page fetch inside a run.
type UnitResult struct {
	Unit       string     `json:"unit"`
	Status     UnitStatus `json:"status"`
	Reason     SkipReason `json:"reason,omitempty"`
	Records    int        `json:"records"`
	DurationMs int64      `json:"duration_ms"`
	Message    string     `json:"message,omitempty"`
}

// Summary is the persisted record of one orchestrator run.
type Summary struct {
	RunID          string       `json:"run_id"`
	Kind           Kind         `json:"kind"`
	Trigger        Trigger      `json:"trigger"`
	State          State        `json:"state"`
	Status         Status       `json:"status"`
	StartedAt      time.Time    `json:"started_at"`
	FinishedAt     time.Time    `json:"finished_at"`
	ClubCount      int          `json:"club_count"`
	RawEntryCount  int          `json:"raw_entry_count"`
	CanonicalCount int          `json:"canonical_count"`
	HistoryCount   int          `json:"history_count"`
	SuccessCount   int          `json:"success_count"`
	FailedCount    int          `json:"failed_count"`
	SkippedCount   int          `json:"skipped_count"`
	Units          []UnitResult `json:"units"`
	Error          string       `json:"error,omitempty"`
}

// Record appends a unit outcome and updates the matching counter.
func (s *Summary) Record(unit UnitResult) {
	s.Units = append(s.Units, unit)
	switch unit.Status {
	case UnitSuccess:
		s.SuccessCount++
	case UnitSkipped:
		s.SkippedCount++
	default:
		s.FailedCount++
	}
}

// SkipCounts groups non-success units by reason.
func (s Summary) SkipCounts() map[SkipReason]int {
	out := make(map[SkipReason]int)
	for _, unit := range s.Units {
		if unit.Status == UnitSuccess {
			continue
		}
		out[unit.Reason]++
	}
	return out
}
