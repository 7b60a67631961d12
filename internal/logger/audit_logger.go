// Package logger provides audit logging.
package logger

import (
	"time"

	"github.com/sirupsen/logrus"
)

// AuditLogger provides a dedicated audit trail for result mutations, the
// operations an operator may later need to account for.
type AuditLogger struct {
	*logrus.Entry
}

// NewAuditLogger creates a new audit logger.
func NewAuditLogger(baseLogger *logrus.Logger) *AuditLogger {
	return &AuditLogger{
		Entry: baseLogger.WithField("component", "audit"),
	}
}

// LogScoringRun records a completed scoring run for a race.
func (al *AuditLogger) LogScoringRun(raceID string, outcomes, finishers int, timestamp time.Time) {
	al.WithFields(logrus.Fields{
		"race_id":   raceID,
		"outcomes":  outcomes,
		"finishers": finishers,
		"timestamp": timestamp.Unix(),
	}).Info("Scoring run recorded")
}

// LogResultsSaved records a successful result batch upsert.
func (al *AuditLogger) LogResultsSaved(raceID string, rows int) {
	al.WithFields(logrus.Fields{
		"race_id": raceID,
		"rows":    rows,
	}).Info("Race results saved")
}

// LogResultsRejected records a rejected result submission.
func (al *AuditLogger) LogResultsRejected(raceID string, reason string) {
	al.WithFields(logrus.Fields{
		"race_id": raceID,
		"reason":  reason,
	}).Warn("Race result submission rejected")
}

// LogStandingsRefresh records a standings snapshot refresh.
func (al *AuditLogger) LogStandingsRefresh(rows int, elapsed time.Duration) {
	al.WithFields(logrus.Fields{
		"result_rows": rows,
		"elapsed_ms":  elapsed.Milliseconds(),
	}).Info("Standings snapshot refreshed")
}
