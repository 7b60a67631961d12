package scoring

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nhat-School/F1-Demo/internal/models"
)

func finishedOutcome(racerID uuid.UUID, laps int, finishTime string) models.Outcome {
	return models.Outcome{
		RacerID:       racerID,
		TeamID:        uuid.New(),
		Status:        models.StatusFinished,
		LapsCompleted: laps,
		FinishTime:    finishTime,
	}
}

func resultFor(t *testing.T, results []models.Result, racerID uuid.UUID) models.Result {
	t.Helper()
	for _, r := range results {
		if r.RacerID == racerID {
			return r
		}
	}
	t.Fatalf("no result for racer %s", racerID)
	return models.Result{}
}

func TestScoreRanksByLapsThenTime(t *testing.T) {
	raceID := uuid.New()
	racerA := uuid.New()
	racerB := uuid.New()
	racerC := uuid.New()

	// C has the fastest time but a lap fewer, so laps decide first.
	outcomes := []models.Outcome{
		finishedOutcome(racerA, 58, "01:30:00.000"),
		finishedOutcome(racerB, 58, "01:29:59.500"),
		finishedOutcome(racerC, 57, "01:28:00.000"),
	}

	results, err := Score(raceID, outcomes)
	require.NoError(t, err)
	require.Len(t, results, 3)

	b := resultFor(t, results, racerB)
	assert.Equal(t, 1, b.GetRank())
	assert.Equal(t, 25, b.Score)

	a := resultFor(t, results, racerA)
	assert.Equal(t, 2, a.GetRank())
	assert.Equal(t, 18, a.Score)

	c := resultFor(t, results, racerC)
	assert.Equal(t, 3, c.GetRank())
	assert.Equal(t, 15, c.Score)
}

func TestScoreDNFNeverOutranksFinisher(t *testing.T) {
	raceID := uuid.New()
	dnf := uuid.New()
	winner := uuid.New()

	outcomes := []models.Outcome{
		{RacerID: dnf, TeamID: uuid.New(), Status: models.StatusDNF, LapsCompleted: 40},
		finishedOutcome(winner, 58, "01:31:00.000"),
	}

	results, err := Score(raceID, outcomes)
	require.NoError(t, err)

	dnfResult := resultFor(t, results, dnf)
	assert.Nil(t, dnfResult.Rank, "DNF carries no rank regardless of laps")
	assert.Zero(t, dnfResult.Score)
	assert.Equal(t, 40, dnfResult.LapsCompleted)
	assert.Nil(t, dnfResult.FinishTime)

	winnerResult := resultFor(t, results, winner)
	assert.Equal(t, 1, winnerResult.GetRank())
	assert.Equal(t, 25, winnerResult.Score)
}

func TestScoreDNSPassedThrough(t *testing.T) {
	raceID := uuid.New()
	dns := uuid.New()

	results, err := Score(raceID, []models.Outcome{
		{RacerID: dns, TeamID: uuid.New(), Status: models.StatusDNS},
	})
	require.NoError(t, err)
	require.Len(t, results, 1)

	assert.Nil(t, results[0].Rank)
	assert.Zero(t, results[0].Score)
	assert.Equal(t, models.StatusDNS, results[0].Status)
	assert.Nil(t, results[0].FinishTime)
}

// Every input outcome yields exactly one result for the same racer.
func TestScoreBijection(t *testing.T) {
	raceID := uuid.New()

	var outcomes []models.Outcome
	want := make(map[uuid.UUID]struct{})
	for i := 0; i < 12; i++ {
		id := uuid.New()
		want[id] = struct{}{}
		switch i % 3 {
		case 0:
			outcomes = append(outcomes, finishedOutcome(id, 50+i, "01:30:00.000"))
		case 1:
			outcomes = append(outcomes, models.Outcome{RacerID: id, TeamID: uuid.New(), Status: models.StatusDNF, LapsCompleted: i})
		default:
			outcomes = append(outcomes, models.Outcome{RacerID: id, TeamID: uuid.New(), Status: models.StatusDNS})
		}
	}

	results, err := Score(raceID, outcomes)
	require.NoError(t, err)
	require.Len(t, results, len(outcomes))

	got := make(map[uuid.UUID]struct{})
	for _, r := range results {
		got[r.RacerID] = struct{}{}
		assert.Equal(t, raceID, r.RaceID)
	}
	assert.Equal(t, want, got)
}

func TestScoreDenseRanksBeyondPointsTable(t *testing.T) {
	raceID := uuid.New()

	outcomes := make([]models.Outcome, 0, 12)
	for i := 0; i < 12; i++ {
		// Same laps, strictly increasing times: input order is finishing order.
		outcomes = append(outcomes, finishedOutcome(uuid.New(), 58, fmt.Sprintf("01:30:%02d.000", i)))
	}

	results, err := Score(raceID, outcomes)
	require.NoError(t, err)
	require.Len(t, results, 12)

	for i, r := range results {
		require.NotNil(t, r.Rank)
		assert.Equal(t, i+1, *r.Rank, "ranks are dense and follow time order")
	}
	assert.Equal(t, 1, results[9].Score, "10th place takes the last table entry")
	assert.Zero(t, results[10].Score, "11th place exhausts the table")
	assert.Zero(t, results[11].Score)
}

func TestScoreStableOnFullTie(t *testing.T) {
	raceID := uuid.New()
	first := uuid.New()
	second := uuid.New()

	results, err := Score(raceID, []models.Outcome{
		finishedOutcome(first, 58, "01:30:00.000"),
		finishedOutcome(second, 58, "01:30:00.000"),
	})
	require.NoError(t, err)

	firstResult := resultFor(t, results, first)
	secondResult := resultFor(t, results, second)
	assert.Equal(t, 1, firstResult.GetRank())
	assert.Equal(t, 2, secondResult.GetRank())
}

func TestScoreRejectsMalformedInput(t *testing.T) {
	raceID := uuid.New()
	racerID := uuid.New()

	tests := []struct {
		name    string
		outcome models.Outcome
	}{
		{
			name:    "unknown status",
			outcome: models.Outcome{RacerID: racerID, TeamID: uuid.New(), Status: "RETIRED"},
		},
		{
			name:    "finished without time",
			outcome: models.Outcome{RacerID: racerID, TeamID: uuid.New(), Status: models.StatusFinished, LapsCompleted: 58},
		},
		{
			name:    "non-canonical time",
			outcome: finishedOutcome(racerID, 58, "1:30:00"),
		},
		{
			name:    "negative laps",
			outcome: models.Outcome{RacerID: racerID, TeamID: uuid.New(), Status: models.StatusDNF, LapsCompleted: -1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Score(raceID, []models.Outcome{tt.outcome})
			assert.Error(t, err)
		})
	}
}

func TestScoreRejectsDuplicateRacer(t *testing.T) {
	raceID := uuid.New()
	racerID := uuid.New()

	_, err := Score(raceID, []models.Outcome{
		finishedOutcome(racerID, 58, "01:30:00.000"),
		finishedOutcome(racerID, 58, "01:31:00.000"),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrDuplicateKey)
}

func TestScoreEmptyInput(t *testing.T) {
	results, err := Score(uuid.New(), nil)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestPointsForRank(t *testing.T) {
	tests := []struct {
		rank   int
		points int
	}{
		{rank: 1, points: 25},
		{rank: 2, points: 18},
		{rank: 5, points: 10},
		{rank: 10, points: 1},
		{rank: 11, points: 0},
		{rank: 0, points: 0},
		{rank: -3, points: 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.points, PointsForRank(tt.rank), "rank %d", tt.rank)
	}
}
