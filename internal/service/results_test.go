package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Nhat-School/F1-Demo/internal/models"
)

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

func registration(raceID, teamID, racerID uuid.UUID) *models.Registration {
	return &models.Registration{
		ID:        uuid.New(),
		RaceID:    raceID,
		TeamID:    teamID,
		RacerID:   racerID,
		CreatedAt: time.Now(),
	}
}

func TestSubmitOutcomesScoresAndPersists(t *testing.T) {
	raceID := uuid.New()
	teamID := uuid.New()
	winner := uuid.New()
	runnerUp := uuid.New()

	raceRepo := new(MockRaceRepository)
	registrationRepo := new(MockRegistrationRepository)
	resultRepo := new(MockResultRepository)

	raceRepo.On("GetByID", mock.Anything, raceID).Return(&models.Race{ID: raceID, Code: "MON", Name: "Monaco"}, nil)
	registrationRepo.On("GetByRaceID", mock.Anything, raceID).Return([]*models.Registration{
		registration(raceID, teamID, winner),
		registration(raceID, teamID, runnerUp),
	}, nil)

	var saved []models.Result
	resultRepo.On("UpsertBatch", mock.Anything, mock.AnythingOfType("[]models.Result")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).([]models.Result)
		}).
		Return(nil)

	svc := NewResultsService(raceRepo, registrationRepo, resultRepo, newTestLogger())

	results, err := svc.SubmitOutcomes(context.Background(), raceID, []OutcomeInput{
		{RacerID: runnerUp, Status: models.StatusFinished, LapsCompleted: 58, FinishTime: "01:31:00.000"},
		{RacerID: winner, Status: models.StatusFinished, LapsCompleted: 58, FinishTime: "01:30:00.000"},
	})
	require.NoError(t, err)
	require.Len(t, results, 2)

	// Results come back in input order with the team snapshot resolved.
	assert.Equal(t, runnerUp, results[0].RacerID)
	assert.Equal(t, teamID, results[0].TeamID)
	assert.Equal(t, 2, *results[0].Rank)
	assert.Equal(t, 18, results[0].Score)
	assert.Equal(t, 1, *results[1].Rank)
	assert.Equal(t, 25, results[1].Score)

	assert.Equal(t, results, saved)
	raceRepo.AssertExpectations(t)
	registrationRepo.AssertExpectations(t)
	resultRepo.AssertExpectations(t)
}

func TestSubmitOutcomesRejectsUnregisteredRacer(t *testing.T) {
	raceID := uuid.New()
	registered := uuid.New()
	stranger := uuid.New()

	raceRepo := new(MockRaceRepository)
	registrationRepo := new(MockRegistrationRepository)
	resultRepo := new(MockResultRepository)

	raceRepo.On("GetByID", mock.Anything, raceID).Return(&models.Race{ID: raceID, Code: "MON", Name: "Monaco"}, nil)
	registrationRepo.On("GetByRaceID", mock.Anything, raceID).Return([]*models.Registration{
		registration(raceID, uuid.New(), registered),
	}, nil)

	svc := NewResultsService(raceRepo, registrationRepo, resultRepo, newTestLogger())

	_, err := svc.SubmitOutcomes(context.Background(), raceID, []OutcomeInput{
		{RacerID: stranger, Status: models.StatusFinished, LapsCompleted: 58, FinishTime: "01:30:00.000"},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrRacerNotEntered)
	resultRepo.AssertNotCalled(t, "UpsertBatch", mock.Anything, mock.Anything)
}

func TestSubmitOutcomesRejectsMalformedTimeBeforeWriting(t *testing.T) {
	raceID := uuid.New()
	racerID := uuid.New()

	raceRepo := new(MockRaceRepository)
	registrationRepo := new(MockRegistrationRepository)
	resultRepo := new(MockResultRepository)

	raceRepo.On("GetByID", mock.Anything, raceID).Return(&models.Race{ID: raceID, Code: "MON", Name: "Monaco"}, nil)
	registrationRepo.On("GetByRaceID", mock.Anything, raceID).Return([]*models.Registration{
		registration(raceID, uuid.New(), racerID),
	}, nil)

	svc := NewResultsService(raceRepo, registrationRepo, resultRepo, newTestLogger())

	_, err := svc.SubmitOutcomes(context.Background(), raceID, []OutcomeInput{
		{RacerID: racerID, Status: models.StatusFinished, LapsCompleted: 58, FinishTime: "1:30:00"},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrBadFinishTime)
	resultRepo.AssertNotCalled(t, "UpsertBatch", mock.Anything, mock.Anything)
}

func TestSubmitOutcomesEmptyInput(t *testing.T) {
	svc := NewResultsService(new(MockRaceRepository), new(MockRegistrationRepository), new(MockResultRepository), newTestLogger())

	_, err := svc.SubmitOutcomes(context.Background(), uuid.New(), nil)
	assert.ErrorIs(t, err, models.ErrNoOutcomes)
}

func TestSubmitOutcomesUnknownRace(t *testing.T) {
	raceID := uuid.New()

	raceRepo := new(MockRaceRepository)
	raceRepo.On("GetByID", mock.Anything, raceID).Return(nil, models.ErrNotFound)

	svc := NewResultsService(raceRepo, new(MockRegistrationRepository), new(MockResultRepository), newTestLogger())

	_, err := svc.SubmitOutcomes(context.Background(), raceID, []OutcomeInput{
		{RacerID: uuid.New(), Status: models.StatusDNS},
	})
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestRaceResults(t *testing.T) {
	raceID := uuid.New()
	rank := 1
	stored := []*models.Result{
		{RaceID: raceID, RacerID: uuid.New(), Status: models.StatusFinished, Rank: &rank, Score: 25},
	}

	raceRepo := new(MockRaceRepository)
	resultRepo := new(MockResultRepository)
	raceRepo.On("GetByID", mock.Anything, raceID).Return(&models.Race{ID: raceID, Code: "MON", Name: "Monaco"}, nil)
	resultRepo.On("GetByRaceID", mock.Anything, raceID).Return(stored, nil)

	svc := NewResultsService(raceRepo, new(MockRegistrationRepository), resultRepo, newTestLogger())

	results, err := svc.RaceResults(context.Background(), raceID)
	require.NoError(t, err)
	assert.Equal(t, stored, results)
}
