// Package standings derives racer and team leaderboards from the full history
// of persisted race results. Aggregation is a total recomputation over a
// snapshot of joined rows, there is no incremental state to maintain.
package standings

import (
	"sort"

	"github.com/google/uuid"

	"github.com/Nhat-School/F1-Demo/internal/duration"
	"github.com/Nhat-School/F1-Demo/internal/models"
)

type racerAccumulator struct {
	standing models.RacerStanding
}

type teamAccumulator struct {
	standing  models.TeamStanding
	byRace    map[uuid.UUID]*models.TeamDetail
	raceOrder []uuid.UUID
}

// Aggregate folds every joined result row into per-racer and per-team
// standings, both sorted by total score descending with ties broken by total
// time ascending. Team drill-down rows are grouped by race in the same pass:
// a team fielding two racers in one race yields a single row for that race
// summing both scores and times.
func Aggregate(rows []models.JoinedResult) *models.StandingsTable {
	racers := make(map[uuid.UUID]*racerAccumulator)
	teams := make(map[uuid.UUID]*teamAccumulator)

	var racerOrder, teamOrder []uuid.UUID

	for i := range rows {
		row := &rows[i]
		contribution := contributionMillis(row)

		racer, ok := racers[row.RacerID]
		if !ok {
			// The racer's label shows their current team from the live
			// join, not the per-race snapshot credited in team standings.
			racer = &racerAccumulator{standing: models.RacerStanding{
				RacerID:     row.RacerID,
				Name:        row.RacerName,
				Code:        row.RacerCode,
				Nationality: derefOrEmpty(row.Nationality),
				TeamName:    derefOrEmpty(row.CurrentTeam),
			}}
			racers[row.RacerID] = racer
			racerOrder = append(racerOrder, row.RacerID)
		}
		racer.standing.TotalScore += row.Score
		racer.standing.TotalMillis += contribution
		racer.standing.Results = append(racer.standing.Results, models.RacerDetail{
			RaceID:     row.RaceID,
			RaceName:   row.RaceName,
			Status:     row.Status,
			Rank:       row.Rank,
			Score:      row.Score,
			FinishTime: row.FinishTime,
		})

		team, ok := teams[row.TeamID]
		if !ok {
			team = &teamAccumulator{
				standing: models.TeamStanding{
					TeamID: row.TeamID,
					Name:   row.TeamName,
					Brand:  derefOrEmpty(row.TeamBrand),
				},
				byRace: make(map[uuid.UUID]*models.TeamDetail),
			}
			teams[row.TeamID] = team
			teamOrder = append(teamOrder, row.TeamID)
		}
		team.standing.TotalScore += row.Score
		team.standing.TotalMillis += contribution

		detail, ok := team.byRace[row.RaceID]
		if !ok {
			detail = &models.TeamDetail{RaceID: row.RaceID, RaceName: row.RaceName}
			team.byRace[row.RaceID] = detail
			team.raceOrder = append(team.raceOrder, row.RaceID)
		}
		detail.Score += row.Score
		detail.TimeMillis += contribution
	}

	table := &models.StandingsTable{
		Racers: make([]models.RacerStanding, 0, len(racerOrder)),
		Teams:  make([]models.TeamStanding, 0, len(teamOrder)),
	}

	for _, id := range racerOrder {
		standing := racers[id].standing
		standing.TotalTime = duration.Format(standing.TotalMillis)
		table.Racers = append(table.Racers, standing)
	}

	for _, id := range teamOrder {
		acc := teams[id]
		standing := acc.standing
		standing.TotalTime = duration.Format(standing.TotalMillis)
		standing.Races = make([]models.TeamDetail, 0, len(acc.raceOrder))
		for _, raceID := range acc.raceOrder {
			detail := *acc.byRace[raceID]
			detail.TimeDisplay = duration.Format(detail.TimeMillis)
			standing.Races = append(standing.Races, detail)
		}
		table.Teams = append(table.Teams, standing)
	}

	sort.SliceStable(table.Racers, func(i, j int) bool {
		if table.Racers[i].TotalScore != table.Racers[j].TotalScore {
			return table.Racers[i].TotalScore > table.Racers[j].TotalScore
		}
		return table.Racers[i].TotalMillis < table.Racers[j].TotalMillis
	})

	sort.SliceStable(table.Teams, func(i, j int) bool {
		if table.Teams[i].TotalScore != table.Teams[j].TotalScore {
			return table.Teams[i].TotalScore > table.Teams[j].TotalScore
		}
		return table.Teams[i].TotalMillis < table.Teams[j].TotalMillis
	})

	return table
}

// contributionMillis is the time a single row adds to its owner's totals:
// zero unless the row is a finish with a recorded time. Persisted text that
// fails to parse contributes nothing rather than failing the whole table.
func contributionMillis(row *models.JoinedResult) int64 {
	if row.Status != models.StatusFinished || row.FinishTime == nil {
		return 0
	}
	ms, err := duration.Parse(*row.FinishTime)
	if err != nil {
		return 0
	}
	return ms
}

func derefOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
