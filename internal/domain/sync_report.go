package domain

import "time"

// SyncReport resume uma execução da sincronização de lances
type SyncReport struct {
	ID                   string     `json:"id"`
	CorrelationID        string     `json:"correlation_id"`
	SourceAccount        string     `json:"source_account"`
	DestinationAccount   string     `json:"destination_account"`
	StartedAt            time.Time  `json:"started_at"`
	CompletedAt          *time.Time `json:"completed_at,omitempty"`
	SourceRecords        int        `json:"source_records"`
	DestinationRecords   int        `json:"destination_records"`
	MatchedPairs         int        `json:"matched_pairs"`
	UpdatedBids          int        `json:"updated_bids"`
	FailedBids           int        `json:"failed_bids"`
	SkippedBids          int        `json:"skipped_bids"`
	UnmatchedSource      int        `json:"unmatched_source"`
	UnmatchedDestination int        `json:"unmatched_destination"`
	Error                string     `json:"error,omitempty"`
}

// Failed indica se a execução foi abortada na fase de leitura
func (r *SyncReport) Failed() bool {
	return r.Error != ""
}
