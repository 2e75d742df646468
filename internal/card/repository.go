// Package card provides read access to the card catalogue: subjects, decks and cards.
package card

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// Subject groups decks, e.g. "JLPT N3".
type Subject struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
}

// Deck is an ordered collection of cards.
type Deck struct {
	ID        string    `db:"id"`
	SubjectID string    `db:"subject_id"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
}

// Card is a flashcard. Only the fields the scheduler needs are loaded.
type Card struct {
	ID        string    `db:"id"`
	DeckID    string    `db:"deck_id"`
	Front     string    `db:"front"`
	Back      string    `db:"back"`
	CreatedAt time.Time `db:"created_at"`
}

//go:generate mockgen -source=repository.go -destination=../mocks/card/mock_repository.go -package=mock_card

// Repository defines read operations on the card catalogue.
type Repository interface {
	FindSubjects(ctx context.Context) ([]Subject, error)
	FindDeck(ctx context.Context, deckID string) (*Deck, error)
	FindDecksBySubject(ctx context.Context, subjectID string) ([]Deck, error)
	FindByDeck(ctx context.Context, deckID string) ([]Card, error)
	FindByID(ctx context.Context, cardID string) (*Card, error)
}

// DBRepository implements Repository using MySQL.
type DBRepository struct {
	db *sqlx.DB
}

// NewDBRepository creates a new DBRepository.
func NewDBRepository(db *sqlx.DB) *DBRepository {
	return &DBRepository{db: db}
}

// FindSubjects returns all subjects ordered by name.
func (r *DBRepository) FindSubjects(ctx context.Context) ([]Subject, error) {
	var subjects []Subject
	if err := r.db.SelectContext(ctx, &subjects, "SELECT id, name, created_at FROM subjects ORDER BY name, id"); err != nil {
		return nil, fmt.Errorf("db.SelectContext(subjects) > %w", err)
	}
	return subjects, nil
}

// FindDeck returns a deck, or nil if not found.
func (r *DBRepository) FindDeck(ctx context.Context, deckID string) (*Deck, error) {
	var d Deck
	err := r.db.GetContext(ctx, &d, "SELECT id, subject_id, name, created_at FROM decks WHERE id = ?", deckID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("db.GetContext(deck) > %w", err)
	}
	return &d, nil
}

// FindDecksBySubject returns the decks of a subject in creation order.
func (r *DBRepository) FindDecksBySubject(ctx context.Context, subjectID string) ([]Deck, error) {
	var decks []Deck
	if err := r.db.SelectContext(ctx, &decks,
		"SELECT id, subject_id, name, created_at FROM decks WHERE subject_id = ? ORDER BY created_at, id",
		subjectID); err != nil {
		return nil, fmt.Errorf("db.SelectContext(decks by subject) > %w", err)
	}
	return decks, nil
}

// FindByDeck returns the cards of a deck in creation order.
func (r *DBRepository) FindByDeck(ctx context.Context, deckID string) ([]Card, error) {
	var cards []Card
	if err := r.db.SelectContext(ctx, &cards,
		"SELECT id, deck_id, front, back, created_at FROM cards WHERE deck_id = ? ORDER BY created_at, id",
		deckID); err != nil {
		return nil, fmt.Errorf("db.SelectContext(cards by deck) > %w", err)
	}
	return cards, nil
}

// FindByID returns a card, or nil if not found.
func (r *DBRepository) FindByID(ctx context.Context, cardID string) (*Card, error) {
	var c Card
	err := r.db.GetContext(ctx, &c, "SELECT id, deck_id, front, back, created_at FROM cards WHERE id = ?", cardID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("db.GetContext(card) > %w", err)
	}
	return &c, nil
}

// IDs returns the card ids in order.
func IDs(cards []Card) []string {
	ids := make([]string, len(cards))
	for i, c := range cards {
		ids[i] = c.ID
	}
	return ids
}
