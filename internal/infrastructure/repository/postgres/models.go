package postgres

import (
	"database/sql"
	"time"

	"github.com/lib/pq"
)

type clubDirectoryTableModel struct {
	OfficialName string         `db:"official_name"`
	Aliases      pq.StringArray `db:"aliases"`
}

type clubTableModel struct {
	League        string    `db:"league"`
	Name          string    `db:"name"`
	Division      string    `db:"division"`
	RosterURL     string    `db:"roster_url"`
	LastScrapedAt time.Time `db:"last_scraped_at"`
}

type rosterRawEntryTableModel struct {
	Position   int             `db:"position"`
	PlayerName string          `db:"player_name"`
	Rating     sql.NullFloat64 `db:"rating"`
	ProfileURL string          `db:"profile_url"`
	ClubName   string          `db:"club_name"`
}

type rosterCanonicalTableModel struct {
	Position        int             `db:"position"`
	NormalizedName  string          `db:"normalized_name"`
	DisplayName     string          `db:"display_name"`
	Rating          sql.NullFloat64 `db:"rating"`
	Clubs           pq.StringArray  `db:"clubs"`
	ProfileURL      string          `db:"profile_url"`
	ProfileImageURL string          `db:"profile_image_url"`
}

type ratingHistoryTableModel struct {
	NormalizedName string    `db:"normalized_name"`
	Rating         float64   `db:"rating"`
	RecordedAt     time.Time `db:"recorded_at"`
}

// matchHistoryTableModel stores the typed match tree as JSONB.
type matchHistoryTableModel struct {
	NormalizedName string    `db:"normalized_name"`
	PlayerName     string    `db:"player_name"`
	Matches        string    `db:"matches"`
	ScrapedAt      time.Time `db:"scraped_at"`
}

type partnerStatsTableModel struct {
	NormalizedName string    `db:"normalized_name"`
	PlayerName     string    `db:"player_name"`
	Partners       string    `db:"partners"`
	CalculatedAt   time.Time `db:"calculated_at"`
}

type syncRunTableModel struct {
	RunID     string    `db:"run_id"`
	Kind      string    `db:"kind"`
	Status    string    `db:"status"`
	StartedAt time.Time `db:"started_at"`
	Summary   string    `db:"summary"`
}

type memberTableModel struct {
	PublicID        string          `db:"public_id"`
	Name            string          `db:"name"`
	NormalizedName  string          `db:"normalized_name"`
	HomeClub        string          `db:"home_club"`
	OtherClubs      pq.StringArray  `db:"other_clubs"`
	Rating          sql.NullFloat64 `db:"rating"`
	ProfileImageURL string          `db:"profile_image_url"`
}

var (
	clubDirectoryColumns   = mustColumns(clubDirectoryTableModel{})
	clubColumns            = mustColumns(clubTableModel{})
	rosterRawEntryColumns  = mustColumns(rosterRawEntryTableModel{})
	rosterCanonicalColumns = mustColumns(rosterCanonicalTableModel{})
	ratingHistoryColumns   = mustColumns(ratingHistoryTableModel{})
	matchHistoryColumns    = mustColumns(matchHistoryTableModel{})
	partnerStatsColumns    = mustColumns(partnerStatsTableModel{})
	syncRunColumns         = mustColumns(syncRunTableModel{})
	memberColumns          = mustColumns(memberTableModel{})
)
