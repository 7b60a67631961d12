package models

import "github.com/google/uuid"

// JoinedResult is one persisted result row joined with its race, racer and
// team identity, the input shape for standings aggregation.
type JoinedResult struct {
	RaceID        uuid.UUID `db:"race_id" json:"race_id"`
	RaceName      string    `db:"race_name" json:"race_name"`
	RacerID       uuid.UUID `db:"racer_id" json:"racer_id"`
	RacerName     string    `db:"racer_name" json:"racer_name"`
	RacerCode     string    `db:"racer_code" json:"racer_code"`
	Nationality   *string   `db:"nationality" json:"nationality,omitempty"`
	CurrentTeam   *string   `db:"current_team" json:"current_team,omitempty"`
	TeamID        uuid.UUID `db:"team_id" json:"team_id"`
	TeamName      string    `db:"team_name" json:"team_name"`
	TeamBrand     *string   `db:"team_brand" json:"team_brand,omitempty"`
	Status        Status    `db:"status" json:"status"`
	LapsCompleted int       `db:"laps_completed" json:"laps_completed"`
	FinishTime    *string   `db:"finish_time" json:"finish_time,omitempty"`
	Rank          *int      `db:"rank" json:"rank,omitempty"`
	Score         int       `db:"score" json:"score"`
}

// GetFinishTime returns the finish time text or an empty string when absent
func (j *JoinedResult) GetFinishTime() string {
	if j.FinishTime == nil {
		return ""
	}
	return *j.FinishTime
}

// RacerDetail is one drill-down row of a racer standing: the racer's raw
// result in one race.
type RacerDetail struct {
	RaceID     uuid.UUID `json:"race_id"`
	RaceName   string    `json:"race_name"`
	Status     Status    `json:"status"`
	Rank       *int      `json:"rank,omitempty"`
	Score      int       `json:"score"`
	FinishTime *string   `json:"finish_time,omitempty"`
}

// TeamDetail is one drill-down row of a team standing: the team's combined
// score and time across its racers for one race.
type TeamDetail struct {
	RaceID      uuid.UUID `json:"race_id"`
	RaceName    string    `json:"race_name"`
	Score       int       `json:"score"`
	TimeMillis  int64     `json:"time_ms"`
	TimeDisplay string    `json:"time"`
}

// RacerStanding is a derived leaderboard row for one racer. It is recomputed
// from the full result history on every read, never persisted.
type RacerStanding struct {
	RacerID     uuid.UUID     `json:"racer_id"`
	Name        string        `json:"name"`
	Code        string        `json:"code"`
	Nationality string        `json:"nationality,omitempty"`
	TeamName    string        `json:"team_name"`
	TotalScore  int           `json:"total_score"`
	TotalMillis int64         `json:"total_time_ms"`
	TotalTime   string        `json:"total_time"`
	Results     []RacerDetail `json:"results"`
}

// TeamStanding is a derived leaderboard row for one team.
type TeamStanding struct {
	TeamID      uuid.UUID    `json:"team_id"`
	Name        string       `json:"name"`
	Brand       string       `json:"brand,omitempty"`
	TotalScore  int          `json:"total_score"`
	TotalMillis int64        `json:"total_time_ms"`
	TotalTime   string       `json:"total_time"`
	Races       []TeamDetail `json:"races"`
}

// StandingsTable holds both leaderboards produced by one aggregation pass.
type StandingsTable struct {
	Racers []RacerStanding `json:"racers"`
	Teams  []TeamStanding  `json:"teams"`
}
