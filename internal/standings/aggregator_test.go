package standings

import (
	"math/rand"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nhat-School/F1-Demo/internal/models"
)

type fixture struct {
	raceA, raceB uuid.UUID
	teamRed      uuid.UUID
	teamBlue     uuid.UUID
	red1, red2   uuid.UUID
	blue1, blue2 uuid.UUID
}

func newFixture() fixture {
	return fixture{
		raceA:    uuid.New(),
		raceB:    uuid.New(),
		teamRed:  uuid.New(),
		teamBlue: uuid.New(),
		red1:     uuid.New(),
		red2:     uuid.New(),
		blue1:    uuid.New(),
		blue2:    uuid.New(),
	}
}

func row(raceID uuid.UUID, raceName string, racerID uuid.UUID, racerName string, teamID uuid.UUID, teamName string, rank, score int, finishTime string) models.JoinedResult {
	r := models.JoinedResult{
		RaceID:      raceID,
		RaceName:    raceName,
		RacerID:     racerID,
		RacerName:   racerName,
		RacerCode:   "XXX",
		CurrentTeam: &teamName,
		TeamID:      teamID,
		TeamName:    teamName,
		Status:      models.StatusFinished,
		Score:       score,
	}
	r.Rank = &rank
	r.FinishTime = &finishTime
	return r
}

// Two teams, two racers each, two races: the canonical season fixture.
func seasonRows(f fixture) []models.JoinedResult {
	return []models.JoinedResult{
		row(f.raceA, "Monaco", f.red1, "Red One", f.teamRed, "Red", 1, 25, "01:30:00.000"),
		row(f.raceA, "Monaco", f.red2, "Red Two", f.teamRed, "Red", 3, 15, "01:31:00.000"),
		row(f.raceA, "Monaco", f.blue1, "Blue One", f.teamBlue, "Blue", 2, 18, "01:30:30.000"),
		row(f.raceA, "Monaco", f.blue2, "Blue Two", f.teamBlue, "Blue", 4, 12, "01:32:00.000"),
		row(f.raceB, "Monza", f.red1, "Red One", f.teamRed, "Red", 2, 18, "01:20:00.000"),
		row(f.raceB, "Monza", f.red2, "Red Two", f.teamRed, "Red", 4, 12, "01:22:00.000"),
		row(f.raceB, "Monza", f.blue1, "Blue One", f.teamBlue, "Blue", 1, 25, "01:19:00.000"),
		row(f.raceB, "Monza", f.blue2, "Blue Two", f.teamBlue, "Blue", 3, 15, "01:21:00.000"),
	}
}

func TestAggregateRacerTotals(t *testing.T) {
	f := newFixture()
	table := Aggregate(seasonRows(f))

	require.Len(t, table.Racers, 4)

	// red1 and blue1 both total 43, blue1 has the faster cumulative time.
	assert.Equal(t, f.blue1, table.Racers[0].RacerID)
	assert.Equal(t, 43, table.Racers[0].TotalScore)
	assert.Equal(t, f.red1, table.Racers[1].RacerID)
	assert.Equal(t, 43, table.Racers[1].TotalScore)

	assert.Equal(t, int64(1*3600000+30*60000)+int64(1*3600000+20*60000), table.Racers[1].TotalMillis)
	assert.Len(t, table.Racers[0].Results, 2, "racer detail keeps one raw row per race")
}

func TestAggregateTeamTotalsAndDrilldown(t *testing.T) {
	f := newFixture()
	table := Aggregate(seasonRows(f))

	require.Len(t, table.Teams, 2)

	// Red: 25+15+18+12 = 70, Blue: 18+12+25+15 = 70; Blue is faster overall.
	assert.Equal(t, 70, table.Teams[0].TotalScore)
	assert.Equal(t, 70, table.Teams[1].TotalScore)
	assert.Equal(t, f.teamBlue, table.Teams[0].TeamID)

	for _, team := range table.Teams {
		require.Len(t, team.Races, 2, "drill-down has one grouped row per race, not one per racer")
	}

	var red models.TeamStanding
	for _, team := range table.Teams {
		if team.TeamID == f.teamRed {
			red = team
		}
	}
	require.Len(t, red.Races, 2)

	monaco := red.Races[0]
	assert.Equal(t, "Monaco", monaco.RaceName)
	assert.Equal(t, 40, monaco.Score, "both racers' scores summed for the race")
	assert.Equal(t, int64(1*3600000+30*60000)+int64(1*3600000+31*60000), monaco.TimeMillis)
	assert.Equal(t, "03:01:00.000", monaco.TimeDisplay)
}

func TestAggregateRacerLabelFollowsCurrentTeam(t *testing.T) {
	f := newFixture()

	// The racer scored under Red, then moved to Blue before the standings
	// read: the leaderboard label follows them, the points do not.
	moved := row(f.raceA, "Monaco", f.red1, "Red One", f.teamRed, "Red", 1, 25, "01:30:00.000")
	currentTeam := "Blue"
	moved.CurrentTeam = &currentTeam

	table := Aggregate([]models.JoinedResult{moved})

	require.Len(t, table.Racers, 1)
	assert.Equal(t, "Blue", table.Racers[0].TeamName)

	require.Len(t, table.Teams, 1)
	assert.Equal(t, f.teamRed, table.Teams[0].TeamID)
	assert.Equal(t, 25, table.Teams[0].TotalScore, "points stay with the team that earned them")
}

func TestAggregateTeamlessRacerHasEmptyLabel(t *testing.T) {
	f := newFixture()

	r := row(f.raceA, "Monaco", f.red1, "Red One", f.teamRed, "Red", 1, 25, "01:30:00.000")
	r.CurrentTeam = nil

	table := Aggregate([]models.JoinedResult{r})

	require.Len(t, table.Racers, 1)
	assert.Empty(t, table.Racers[0].TeamName)
}

func TestAggregateOrderIndependence(t *testing.T) {
	f := newFixture()
	rows := seasonRows(f)

	baseline := Aggregate(rows)

	shuffled := make([]models.JoinedResult, len(rows))
	copy(shuffled, rows)
	rand.New(rand.NewSource(42)).Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	reordered := Aggregate(shuffled)

	require.Len(t, reordered.Racers, len(baseline.Racers))
	for i := range baseline.Racers {
		assert.Equal(t, baseline.Racers[i].RacerID, reordered.Racers[i].RacerID)
		assert.Equal(t, baseline.Racers[i].TotalScore, reordered.Racers[i].TotalScore)
		assert.Equal(t, baseline.Racers[i].TotalMillis, reordered.Racers[i].TotalMillis)
	}
	for i := range baseline.Teams {
		assert.Equal(t, baseline.Teams[i].TotalScore, reordered.Teams[i].TotalScore)
		assert.Equal(t, baseline.Teams[i].TotalMillis, reordered.Teams[i].TotalMillis)
	}
}

func TestAggregateSkipsTimeForNonFinishers(t *testing.T) {
	f := newFixture()
	dnfTime := "01:10:00.000"

	rows := []models.JoinedResult{
		row(f.raceA, "Monaco", f.red1, "Red One", f.teamRed, "Red", 1, 25, "01:30:00.000"),
		{
			RaceID:    f.raceA,
			RaceName:  "Monaco",
			RacerID:   f.red2,
			RacerName: "Red Two",
			RacerCode: "XXX",
			TeamID:    f.teamRed,
			TeamName:  "Red",
			Status:    models.StatusDNF,
			// A stale time on a DNF row must not count toward totals.
			FinishTime: &dnfTime,
		},
	}

	table := Aggregate(rows)
	require.Len(t, table.Racers, 2)
	require.Len(t, table.Teams, 1)

	assert.Equal(t, int64(1*3600000+30*60000), table.Teams[0].TotalMillis)
	assert.Equal(t, 25, table.Teams[0].TotalScore)
}

func TestAggregateEmptyHistory(t *testing.T) {
	table := Aggregate(nil)
	require.NotNil(t, table)
	assert.Empty(t, table.Racers)
	assert.Empty(t, table.Teams)
}

func TestAggregateMalformedPersistedTimeContributesNothing(t *testing.T) {
	f := newFixture()
	bad := "not-a-time"

	rows := []models.JoinedResult{
		{
			RaceID:     f.raceA,
			RaceName:   "Monaco",
			RacerID:    f.red1,
			RacerName:  "Red One",
			RacerCode:  "XXX",
			TeamID:     f.teamRed,
			TeamName:   "Red",
			Status:     models.StatusFinished,
			Score:      25,
			FinishTime: &bad,
		},
	}

	table := Aggregate(rows)
	require.Len(t, table.Racers, 1)
	assert.Equal(t, 25, table.Racers[0].TotalScore)
	assert.Zero(t, table.Racers[0].TotalMillis)
}
