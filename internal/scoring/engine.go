// Package scoring turns raw per-racer race outcomes into ranked, point-scored
// results. Scoring is a pure computation: the caller persists the emitted
// batch, so re-running a race with corrected inputs overwrites cleanly.
package scoring

import (
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/Nhat-School/F1-Demo/internal/duration"
	"github.com/Nhat-School/F1-Demo/internal/models"
)

// Score ranks the FINISHED outcomes of one race and emits one result per
// input outcome. DNF and DNS racers are never merged into the finisher
// ranking: they carry no rank and score zero regardless of laps completed.
//
// Finishers are ordered by laps completed descending, then finish-time text
// ascending. The sort is stable, so outcomes tied on both keys keep their
// input order. Ranks are dense and 1-based.
func Score(raceID uuid.UUID, outcomes []models.Outcome) ([]models.Result, error) {
	if err := validate(outcomes); err != nil {
		return nil, err
	}

	finished := make([]models.Outcome, 0, len(outcomes))
	for _, o := range outcomes {
		if o.Status == models.StatusFinished {
			finished = append(finished, o)
		}
	}

	sort.SliceStable(finished, func(i, j int) bool {
		if finished[i].LapsCompleted != finished[j].LapsCompleted {
			return finished[i].LapsCompleted > finished[j].LapsCompleted
		}
		return duration.Compare(finished[i].FinishTime, finished[j].FinishTime) < 0
	})

	ranks := make(map[uuid.UUID]int, len(finished))
	for i, o := range finished {
		ranks[o.RacerID] = i + 1
	}

	results := make([]models.Result, 0, len(outcomes))
	for _, o := range outcomes {
		result := models.Result{
			RaceID:        raceID,
			RacerID:       o.RacerID,
			TeamID:        o.TeamID,
			Status:        o.Status,
			LapsCompleted: o.LapsCompleted,
		}

		if o.Status == models.StatusFinished {
			rank := ranks[o.RacerID]
			finishTime := o.FinishTime
			result.Rank = &rank
			result.FinishTime = &finishTime
			result.Score = PointsForRank(rank)
		}

		results = append(results, result)
	}

	return results, nil
}

// validate rejects malformed input before any ranking happens, so a bad row
// cannot silently corrupt the order of the whole race.
func validate(outcomes []models.Outcome) error {
	seen := make(map[uuid.UUID]struct{}, len(outcomes))
	for _, o := range outcomes {
		if !o.Status.IsValid() {
			return fmt.Errorf("outcome for racer %s: %w: %q", o.RacerID, models.ErrUnknownStatus, o.Status)
		}
		if o.LapsCompleted < 0 {
			return fmt.Errorf("outcome for racer %s: negative laps completed", o.RacerID)
		}
		if o.Status == models.StatusFinished {
			if o.FinishTime == "" {
				return fmt.Errorf("outcome for racer %s: %w", o.RacerID, models.ErrMissingFinishTime)
			}
			if !duration.Valid(o.FinishTime) {
				return fmt.Errorf("outcome for racer %s: %w: %q", o.RacerID, models.ErrBadFinishTime, o.FinishTime)
			}
		}
		if _, dup := seen[o.RacerID]; dup {
			return fmt.Errorf("outcome for racer %s: %w", o.RacerID, models.ErrDuplicateKey)
		}
		seen[o.RacerID] = struct{}{}
	}
	return nil
}
