package httpapi

import (
	"time"

	"github.com/riskibarqy/paddle-roster/internal/domain/clubdirectory"
	"github.com/riskibarqy/paddle-roster/internal/domain/matchhistory"
	"github.com/riskibarqy/paddle-roster/internal/domain/ratinghistory"
	"github.com/riskibarqy/paddle-roster/internal/domain/roster"
	"github.com/riskibarqy/paddle-roster/internal/usecase"
)

type playerDTO struct {
	Name            string   `json:"name"`
	NormalizedName  string   `json:"normalized_name"`
	Rating          *float64 `json:"rating"`
	Clubs           []string `json:"clubs"`
	ProfileURL      string   `json:"profile_url,omitempty"`
	ProfileImageURL string   `json:"profile_image_url,omitempty"`
	Score           int      `json:"score,omitempty"`
}

type lookupResponseDTO struct {
	Match       *playerDTO  `json:"match"`
	Suggestions []playerDTO `json:"suggestions"`
}

type clubDTO struct {
	Name            string   `json:"name"`
	Leagues         []string `json:"leagues"`
	Teams           []string `json:"teams"`
	RosterCount     int      `json:"roster_count"`
	RegisteredCount int      `json:"registered_count"`
}

type clubRosterPlayerDTO struct {
	Name            string   `json:"name"`
	NormalizedName  string   `json:"normalized_name"`
	Rating          *float64 `json:"rating"`
	ProfileURL      string   `json:"profile_url,omitempty"`
	ProfileImageURL string   `json:"profile_image_url,omitempty"`
	IsRegistered    bool     `json:"is_registered"`
	MemberID        string   `json:"member_id,omitempty"`
}

type clubRosterDTO struct {
	Club    string                `json:"club"`
	Players []clubRosterPlayerDTO `json:"players"`
}

type clubDirectoryEntryDTO struct {
	OfficialName string   `json:"official_name"`
	Aliases      []string `json:"aliases"`
}

type playerRatingDTO struct {
	Name   string   `json:"name"`
	Before *float64 `json:"before"`
	After  *float64 `json:"after"`
}

type setScoreDTO struct {
	Home int `json:"home"`
	Away int `json:"away"`
}

type opponentDTO struct {
	TeamName     string            `json:"team_name"`
	Players      []playerRatingDTO `json:"players"`
	RatingBefore *float64          `json:"rating_before"`
	RatingAfter  *float64          `json:"rating_after"`
}

type matchDTO struct {
	Result           string            `json:"result"`
	Date             string            `json:"date"`
	Description      string            `json:"description"`
	Division         string            `json:"division,omitempty"`
	HomeTeam         string            `json:"home_team"`
	AwayTeam         string            `json:"away_team"`
	Line             int               `json:"line,omitempty"`
	Venue            string            `json:"venue,omitempty"`
	RatingBefore     *float64          `json:"rating_before"`
	RatingAfter      *float64          `json:"rating_after"`
	Players          []playerRatingDTO `json:"players"`
	Sets             []setScoreDTO     `json:"sets"`
	Side             string            `json:"side"`
	Partner          *playerRatingDTO  `json:"partner"`
	TeamRatingBefore *float64          `json:"team_rating_before"`
	TeamRatingAfter  *float64          `json:"team_rating_after"`
	Opponent         opponentDTO       `json:"opponent"`
}

type ratingTrendDTO struct {
	Current float64 `json:"current"`
	Start   float64 `json:"start"`
	Diff    float64 `json:"diff"`
}

type matchHistoryDTO struct {
	PlayerName     string          `json:"player_name"`
	NormalizedName string          `json:"normalized_name"`
	MatchCount     int             `json:"match_count"`
	ScrapedAt      time.Time       `json:"scraped_at"`
	Matches        []matchDTO      `json:"matches"`
	PTITrend       *ratingTrendDTO `json:"pti_trend"`
}

type partnerDTO struct {
	PartnerName     string   `json:"partner_name"`
	MatchesPlayed   int      `json:"matches_played"`
	Wins            int      `json:"wins"`
	Losses          int      `json:"losses"`
	WinRate         float64  `json:"win_rate"`
	AverageRating   *float64 `json:"average_rating"`
	IsRegistered    bool     `json:"is_registered"`
	ProfileImageURL string   `json:"profile_image_url,omitempty"`
}

type partnerChemistryDTO struct {
	PlayerName     string       `json:"player_name"`
	Partners       []partnerDTO `json:"partners"`
	LastCalculated *time.Time   `json:"last_calculated"`
}

type ratingPointDTO struct {
	Rating     float64   `json:"rating"`
	RecordedAt time.Time `json:"recorded_at"`
}

func toPlayerDTO(record roster.CanonicalRecord, score int) playerDTO {
	clubs := record.Clubs
	if clubs == nil {
		clubs = []string{}
	}
	return playerDTO{
		Name:            record.DisplayName,
		NormalizedName:  record.NormalizedName,
		Rating:          record.Rating,
		Clubs:           clubs,
		ProfileURL:      record.ProfileURL,
		ProfileImageURL: record.ProfileImageURL,
		Score:           score,
	}
}

func toLookupResponseDTO(result usecase.LookupResult) lookupResponseDTO {
	out := lookupResponseDTO{Suggestions: make([]playerDTO, 0, len(result.Suggestions))}
	if result.Match != nil {
		match := toPlayerDTO(result.Match.Record, result.Match.Score)
		out.Match = &match
	}
	for _, item := range result.Suggestions {
		out.Suggestions = append(out.Suggestions, toPlayerDTO(item.Record, item.Score))
	}
	return out
}

func toClubDTO(item usecase.ClubSummary) clubDTO {
	return clubDTO{
		Name:            item.Name,
		Leagues:         nonNilStrings(item.Leagues),
		Teams:           nonNilStrings(item.Teams),
		RosterCount:     item.RosterCount,
		RegisteredCount: item.RegisteredCount,
	}
}

func toClubRosterDTO(item usecase.ClubRoster) clubRosterDTO {
	out := clubRosterDTO{
		Club:    item.Club,
		Players: make([]clubRosterPlayerDTO, 0, len(item.Players)),
	}
	for _, player := range item.Players {
		out.Players = append(out.Players, clubRosterPlayerDTO{
			Name:            player.Name,
			NormalizedName:  player.NormalizedName,
			Rating:          player.Rating,
			ProfileURL:      player.ProfileURL,
			ProfileImageURL: player.ProfileImageURL,
			IsRegistered:    player.IsRegistered,
			MemberID:        player.MemberID,
		})
	}
	return out
}

func toClubDirectoryEntryDTO(entry clubdirectory.Entry) clubDirectoryEntryDTO {
	return clubDirectoryEntryDTO{
		OfficialName: entry.OfficialName,
		Aliases:      nonNilStrings(entry.Aliases),
	}
}

func toPlayerRatingDTOs(items []matchhistory.PlayerRating) []playerRatingDTO {
	out := make([]playerRatingDTO, 0, len(items))
	for _, item := range items {
		out = append(out, playerRatingDTO{Name: item.Name, Before: item.Before, After: item.After})
	}
	return out
}

func toMatchDTO(item matchhistory.MatchRecord) matchDTO {
	sets := make([]setScoreDTO, 0, len(item.Sets))
	for _, set := range item.Sets {
		sets = append(sets, setScoreDTO{Home: set.Home, Away: set.Away})
	}

	var partner *playerRatingDTO
	if item.Partner != nil {
		partner = &playerRatingDTO{Name: item.Partner.Name, Before: item.Partner.Before, After: item.Partner.After}
	}

	return matchDTO{
		Result:           string(item.Result),
		Date:             item.Date,
		Description:      item.Description,
		Division:         item.Division,
		HomeTeam:         item.HomeTeam,
		AwayTeam:         item.AwayTeam,
		Line:             item.Line,
		Venue:            item.Venue,
		RatingBefore:     item.RatingBefore,
		RatingAfter:      item.RatingAfter,
		Players:          toPlayerRatingDTOs(item.Players),
		Sets:             sets,
		Side:             string(item.Side),
		Partner:          partner,
		TeamRatingBefore: item.TeamRatingBefore,
		TeamRatingAfter:  item.TeamRatingAfter,
		Opponent: opponentDTO{
			TeamName:     item.Opponent.TeamName,
			Players:      toPlayerRatingDTOs(item.Opponent.Players),
			RatingBefore: item.Opponent.RatingBefore,
			RatingAfter:  item.Opponent.RatingAfter,
		},
	}
}

func toMatchHistoryDTO(view usecase.MatchHistoryView) matchHistoryDTO {
	doc := view.Document
	out := matchHistoryDTO{
		PlayerName:     doc.PlayerName,
		NormalizedName: doc.NormalizedName,
		MatchCount:     doc.MatchCount(),
		ScrapedAt:      doc.ScrapedAt,
		Matches:        make([]matchDTO, 0, len(doc.Matches)),
	}
	for _, item := range doc.Matches {
		out.Matches = append(out.Matches, toMatchDTO(item))
	}
	if view.Trend != nil {
		out.PTITrend = &ratingTrendDTO{
			Current: view.Trend.Current,
			Start:   view.Trend.Start,
			Diff:    view.Trend.Diff,
		}
	}
	return out
}

func toPartnerChemistryDTO(view usecase.PartnerChemistryView) partnerChemistryDTO {
	out := partnerChemistryDTO{
		PlayerName: view.PlayerName,
		Partners:   make([]partnerDTO, 0, len(view.Partners)),
	}
	if !view.LastCalculated.IsZero() {
		calculated := view.LastCalculated
		out.LastCalculated = &calculated
	}
	for _, item := range view.Partners {
		out.Partners = append(out.Partners, partnerDTO{
			PartnerName:     item.PartnerName,
			MatchesPlayed:   item.MatchesPlayed,
			Wins:            item.Wins,
			Losses:          item.Losses,
			WinRate:         item.WinRate,
			AverageRating:   item.AverageRating,
			IsRegistered:    item.IsRegistered,
			ProfileImageURL: item.ProfileImageURL,
		})
	}
	return out
}

func toRatingPointDTOs(records []ratinghistory.Record) []ratingPointDTO {
	out := make([]ratingPointDTO, 0, len(records))
	for _, item := range records {
		out = append(out, ratingPointDTO{Rating: item.Rating, RecordedAt: item.RecordedAt})
	}
	return out
}

func nonNilStrings(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}
