package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// AnswerEventData captures one graded answer for the event log.
type AnswerEventData struct {
	SessionID    string
	LearnerID    string
	Shape        string
	Difficulty   string
	Answer       float64
	CorrectArea  float64
	Correct      bool
	MasteryAfter float64
}

// AnswerEvent is a persisted answer event.
type AnswerEvent struct {
	ID        int64
	Timestamp time.Time
	AnswerEventData
}

// LearnerSummary aggregates a learner's history from the event log.
type LearnerSummary struct {
	Attempts int
	Correct  int
	ByShape  map[string]ShapeTally
}

// ShapeTally is the attempts/correct pair for one shape.
type ShapeTally struct {
	Attempts int
	Correct  int
}

// AnswerEventRepo provides append and query access to answer events.
type AnswerEventRepo interface {
	// Append records one graded answer.
	Append(ctx context.Context, data AnswerEventData) error

	// Recent returns up to limit most recent events for a learner,
	// newest first.
	Recent(ctx context.Context, learnerID string, limit int) ([]AnswerEvent, error)

	// Summary aggregates all events for a learner.
	Summary(ctx context.Context, learnerID string) (*LearnerSummary, error)
}

type answerEventRepo struct {
	db *sql.DB
}

func (r *answerEventRepo) Append(ctx context.Context, data AnswerEventData) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO answer_events
			(session_id, learner_id, shape, difficulty, answer, correct_area, correct, mastery_after, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		data.SessionID, data.LearnerID, data.Shape, data.Difficulty,
		data.Answer, data.CorrectArea, boolToInt(data.Correct), data.MasteryAfter,
		time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("append answer event: %w", err)
	}
	return nil
}

func (r *answerEventRepo) Recent(ctx context.Context, learnerID string, limit int) ([]AnswerEvent, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, session_id, shape, difficulty, answer, correct_area, correct, mastery_after, created_at
		FROM answer_events
		WHERE learner_id = ?
		ORDER BY created_at DESC, id DESC
		LIMIT ?`,
		learnerID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query recent events: %w", err)
	}
	defer rows.Close()

	var events []AnswerEvent
	for rows.Next() {
		var e AnswerEvent
		var correct int
		e.LearnerID = learnerID
		if err := rows.Scan(&e.ID, &e.SessionID, &e.Shape, &e.Difficulty,
			&e.Answer, &e.CorrectArea, &correct, &e.MasteryAfter, &e.Timestamp); err != nil {
			return nil, fmt.Errorf("scan answer event: %w", err)
		}
		e.Correct = correct != 0
		events = append(events, e)
	}
	return events, rows.Err()
}

func (r *answerEventRepo) Summary(ctx context.Context, learnerID string) (*LearnerSummary, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT shape, COUNT(*), COALESCE(SUM(correct), 0)
		FROM answer_events
		WHERE learner_id = ?
		GROUP BY shape`,
		learnerID,
	)
	if err != nil {
		return nil, fmt.Errorf("query learner summary: %w", err)
	}
	defer rows.Close()

	summary := &LearnerSummary{ByShape: map[string]ShapeTally{}}
	for rows.Next() {
		var shape string
		var tally ShapeTally
		if err := rows.Scan(&shape, &tally.Attempts, &tally.Correct); err != nil {
			return nil, fmt.Errorf("scan summary row: %w", err)
		}
		summary.ByShape[shape] = tally
		summary.Attempts += tally.Attempts
		summary.Correct += tally.Correct
	}
	return summary, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
