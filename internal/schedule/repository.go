// Package schedule persists per-card scheduler state.
package schedule

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"

	"github.com/at-ishikawa/kioku/internal/srs"
)

// ErrConflict is returned when a write loses an optimistic concurrency race:
// the stored version moved since the state was read, or the state was
// created by somebody else first.
var ErrConflict = errors.New("card state was modified concurrently")

const mysqlErrDuplicateEntry = 1062

const stateColumns = "card_id, ease_factor, interval_days, repetitions, due_at_ms, is_new, last_reviewed_at_ms, created_at_ms, version"

// stateRow is the card_states row. Timestamps are epoch milliseconds.
type stateRow struct {
	CardID           string  `db:"card_id"`
	EaseFactor       float64 `db:"ease_factor"`
	IntervalDays     int     `db:"interval_days"`
	Repetitions      int     `db:"repetitions"`
	DueAtMs          int64   `db:"due_at_ms"`
	IsNew            bool    `db:"is_new"`
	LastReviewedAtMs int64   `db:"last_reviewed_at_ms"`
	CreatedAtMs      int64   `db:"created_at_ms"`
	Version          int64   `db:"version"`
}

func (row stateRow) toState() srs.CardState {
	return srs.CardState{
		CardID:         row.CardID,
		EaseFactor:     row.EaseFactor,
		Interval:       row.IntervalDays,
		Repetitions:    row.Repetitions,
		DueDate:        fromMillis(row.DueAtMs),
		IsNew:          row.IsNew,
		LastReviewedAt: fromMillis(row.LastReviewedAtMs),
		CreatedAt:      fromMillis(row.CreatedAtMs),
		Version:        row.Version,
	}
}

func toMillis(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixMilli()
}

func fromMillis(ms int64) time.Time {
	if ms == 0 {
		return time.Time{}
	}
	return time.UnixMilli(ms).UTC()
}

//go:generate mockgen -source=repository.go -destination=../mocks/schedule/mock_repository.go -package=mock_schedule

// Repository defines operations for managing card scheduler states.
type Repository interface {
	FindByCardID(ctx context.Context, cardID string) (*srs.CardState, error)
	FindByCardIDs(ctx context.Context, cardIDs []string) ([]srs.CardState, error)
	FindAll(ctx context.Context) ([]srs.CardState, error)
	FindDueBetween(ctx context.Context, from, to time.Time) ([]srs.CardState, error)
	CountCreatedBetween(ctx context.Context, from, to time.Time) (int, error)
	Create(ctx context.Context, state *srs.CardState) error
	Update(ctx context.Context, state *srs.CardState) error
}

// DBRepository implements Repository using MySQL.
type DBRepository struct {
	db *sqlx.DB
}

// NewDBRepository creates a new DBRepository.
func NewDBRepository(db *sqlx.DB) *DBRepository {
	return &DBRepository{db: db}
}

// FindByCardID returns the state of a card, or nil if the card is unseen.
func (r *DBRepository) FindByCardID(ctx context.Context, cardID string) (*srs.CardState, error) {
	var row stateRow
	err := r.db.GetContext(ctx, &row, "SELECT "+stateColumns+" FROM card_states WHERE card_id = ?", cardID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("db.GetContext(card_state) > %w", err)
	}
	state := row.toState()
	return &state, nil
}

// FindByCardIDs returns the states that exist for the given cards, ordered by card id.
// Cards without state are simply absent from the result.
func (r *DBRepository) FindByCardIDs(ctx context.Context, cardIDs []string) ([]srs.CardState, error) {
	if len(cardIDs) == 0 {
		return nil, nil
	}
	query, args, err := sqlx.In("SELECT "+stateColumns+" FROM card_states WHERE card_id IN (?) ORDER BY card_id", cardIDs)
	if err != nil {
		return nil, fmt.Errorf("sqlx.In(card_states) > %w", err)
	}
	return r.selectStates(ctx, "card_states by card ids", r.db.Rebind(query), args...)
}

// FindAll returns every stored state.
func (r *DBRepository) FindAll(ctx context.Context) ([]srs.CardState, error) {
	return r.selectStates(ctx, "card_states", "SELECT "+stateColumns+" FROM card_states ORDER BY card_id")
}

// FindDueBetween returns states whose due date is within [from, to], earliest first.
func (r *DBRepository) FindDueBetween(ctx context.Context, from, to time.Time) ([]srs.CardState, error) {
	return r.selectStates(ctx, "card_states by due date",
		"SELECT "+stateColumns+" FROM card_states WHERE due_at_ms BETWEEN ? AND ? ORDER BY due_at_ms, card_id",
		toMillis(from), toMillis(to))
}

// CountCreatedBetween counts cards introduced into the learning pool within [from, to).
func (r *DBRepository) CountCreatedBetween(ctx context.Context, from, to time.Time) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count,
		"SELECT COUNT(*) FROM card_states WHERE created_at_ms >= ? AND created_at_ms < ?",
		toMillis(from), toMillis(to)); err != nil {
		return 0, fmt.Errorf("db.GetContext(count card_states) > %w", err)
	}
	return count, nil
}

// Create inserts the state of a newly introduced card and sets its version to 1.
// It returns ErrConflict if the card already has a state.
func (r *DBRepository) Create(ctx context.Context, state *srs.CardState) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO card_states ("+stateColumns+") VALUES (?, ?, ?, ?, ?, ?, ?, ?, 1)",
		state.CardID, state.EaseFactor, state.Interval, state.Repetitions,
		toMillis(state.DueDate), state.IsNew, toMillis(state.LastReviewedAt), toMillis(state.CreatedAt))
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlErrDuplicateEntry {
			return fmt.Errorf("insert card_state(%s) > %w", state.CardID, ErrConflict)
		}
		return fmt.Errorf("db.ExecContext(insert card_state) > %w", err)
	}
	state.Version = 1
	return nil
}

// Update overwrites the state if the stored version still equals state.Version,
// then increments state.Version. Otherwise it returns ErrConflict.
func (r *DBRepository) Update(ctx context.Context, state *srs.CardState) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE card_states
		SET ease_factor = ?, interval_days = ?, repetitions = ?, due_at_ms = ?, is_new = ?, last_reviewed_at_ms = ?, version = version + 1
		WHERE card_id = ? AND version = ?`,
		state.EaseFactor, state.Interval, state.Repetitions, toMillis(state.DueDate), state.IsNew,
		toMillis(state.LastReviewedAt), state.CardID, state.Version)
	if err != nil {
		return fmt.Errorf("db.ExecContext(update card_state) > %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("result.RowsAffected() > %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("update card_state(%s, version %d) > %w", state.CardID, state.Version, ErrConflict)
	}
	state.Version++
	return nil
}

func (r *DBRepository) selectStates(ctx context.Context, name, query string, args ...any) ([]srs.CardState, error) {
	var rows []stateRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("db.SelectContext(%s) > %w", name, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	states := make([]srs.CardState, len(rows))
	for i, row := range rows {
		states[i] = row.toState()
	}
	return states, nil
}
