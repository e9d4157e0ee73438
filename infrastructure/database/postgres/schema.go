package postgres

// schema é aplicado em ordem por Migrate; cada instrução precisa ser idempotente
var schema = []string{
	`CREATE TABLE IF NOT EXISTS ad_group_mappings (
		id VARCHAR(16) PRIMARY KEY,
		source_ad_group_id BIGINT NOT NULL,
		destination_ad_group_id BIGINT NOT NULL UNIQUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS bid_sync_runs (
		id VARCHAR(64) PRIMARY KEY,
		correlation_id VARCHAR(64) NOT NULL,
		source_account VARCHAR(255) NOT NULL,
		destination_account VARCHAR(255) NOT NULL,
		started_at TIMESTAMPTZ NOT NULL,
		completed_at TIMESTAMPTZ,
		source_records INTEGER NOT NULL DEFAULT 0,
		destination_records INTEGER NOT NULL DEFAULT 0,
		matched_pairs INTEGER NOT NULL DEFAULT 0,
		updated_bids INTEGER NOT NULL DEFAULT 0,
		failed_bids INTEGER NOT NULL DEFAULT 0,
		skipped_bids INTEGER NOT NULL DEFAULT 0,
		unmatched_source INTEGER NOT NULL DEFAULT 0,
		unmatched_destination INTEGER NOT NULL DEFAULT 0,
		error TEXT
	)`,
	`CREATE INDEX IF NOT EXISTS idx_bid_sync_runs_started_at ON bid_sync_runs (started_at DESC)`,
	`ALTER TABLE bid_sync_runs ALTER COLUMN id TYPE VARCHAR(64)`,
	`ALTER TABLE bid_sync_runs ADD COLUMN IF NOT EXISTS skipped_bids INTEGER NOT NULL DEFAULT 0`,
}
