// Package cli implements the interactive parts of the kioku command.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"

	"github.com/at-ishikawa/kioku/internal/card"
	"github.com/at-ishikawa/kioku/internal/srs"
	"github.com/at-ishikawa/kioku/internal/study"
)

var errEnd = errors.New("end")

//go:generate mockgen -source=review.go -destination=../mocks/cli/mock_review.go -package=mock_cli

// Reviewer starts sessions and records ratings.
type Reviewer interface {
	StartSession(ctx context.Context, deckID string) (study.Session, error)
	Rate(ctx context.Context, cardID string, rating srs.Rating, responseTime time.Duration) (srs.CardState, error)
}

// CardFinder loads the contents of a card.
type CardFinder interface {
	FindByID(ctx context.Context, cardID string) (*card.Card, error)
}

// ReviewSummary counts the ratings given during a review.
type ReviewSummary struct {
	Reviewed int
	Ratings  map[srs.Rating]int
}

// ReviewCLI runs an interactive review of the due cards of a deck.
type ReviewCLI struct {
	reviewer     Reviewer
	cards        CardFinder
	stdinReader  *bufio.Reader
	stdoutWriter io.Writer
	bold         *color.Color
	now          func() time.Time

	queue []string

	// summary is written by the review loop and read on interrupt.
	mu      sync.Mutex
	summary ReviewSummary
}

// NewReviewCLI creates a ReviewCLI reading answers from in and writing to out.
func NewReviewCLI(reviewer Reviewer, cards CardFinder, in io.Reader, out io.Writer) *ReviewCLI {
	return &ReviewCLI{
		reviewer:     reviewer,
		cards:        cards,
		stdinReader:  bufio.NewReader(in),
		stdoutWriter: out,
		bold:         color.New(color.Bold),
		now:          time.Now,
		summary:      ReviewSummary{Ratings: make(map[srs.Rating]int)},
	}
}

// Start opens a session for the deck and prints what is due.
func (r *ReviewCLI) Start(ctx context.Context, deckID string) (study.Session, error) {
	session, err := r.reviewer.StartSession(ctx, deckID)
	if err != nil {
		return study.Session{}, fmt.Errorf("StartSession(%s) > %w", deckID, err)
	}
	r.queue = append([]string(nil), session.CardIDs...)

	if session.NewlyIntroduced > 0 {
		fmt.Fprintf(r.stdoutWriter, "%d new cards were added to the learning pool\n", session.NewlyIntroduced)
	}
	if len(session.CardIDs) == 0 {
		fmt.Fprintln(r.stdoutWriter, session.Workload.Message)
		return session, nil
	}
	fmt.Fprintf(r.stdoutWriter, "%d cards to review, about %d minutes (%s)\n\n",
		len(session.CardIDs), session.EstimatedMinutes, session.Workload.Level)
	return session, nil
}

// Run reviews cards until the queue is empty, the learner quits or an interrupt arrives.
func (r *ReviewCLI) Run(ctx context.Context) (ReviewSummary, error) {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		defer close(errCh)
		for ctx.Err() == nil {
			if err := r.Session(ctx); err != nil {
				if !errors.Is(err, errEnd) {
					errCh <- err
				}
				return
			}
		}
	}()

	select {
	case <-ctx.Done():
		fmt.Fprintln(r.stdoutWriter, "Received interrupt signal, exiting...")
	case err := <-errCh:
		if err != nil {
			return r.snapshot(), fmt.Errorf("error: %w", err)
		}
	}
	summary := r.snapshot()
	r.printSummary(summary)
	return summary, nil
}

// Session reviews the next card in the queue.
func (r *ReviewCLI) Session(ctx context.Context) error {
	if len(r.queue) == 0 {
		return errEnd
	}
	cardID := r.queue[0]

	c, err := r.cards.FindByID(ctx, cardID)
	if err != nil {
		return fmt.Errorf("FindByID(%s) > %w", cardID, err)
	}
	if c == nil {
		r.queue = r.queue[1:]
		return nil
	}

	shownAt := r.now()
	fmt.Fprintf(r.stdoutWriter, "%s\n", r.bold.Sprint(c.Front))
	fmt.Fprint(r.stdoutWriter, "Press Enter to show the answer (q to quit): ")
	input, err := r.readLine()
	if err != nil {
		return err
	}
	if strings.EqualFold(input, "q") {
		return errEnd
	}
	responseTime := r.now().Sub(shownAt)
	fmt.Fprintf(r.stdoutWriter, "%s\n", c.Back)

	rating, err := r.askRating()
	if err != nil {
		return err
	}

	state, err := r.reviewer.Rate(ctx, cardID, rating, responseTime)
	if err != nil {
		return fmt.Errorf("Rate(%s) > %w", cardID, err)
	}
	r.queue = r.queue[1:]
	r.record(rating)
	r.printFeedback(rating, state)
	return nil
}

func (r *ReviewCLI) askRating() (srs.Rating, error) {
	for {
		fmt.Fprint(r.stdoutWriter, "Rate 1) again 2) hard 3) good 4) easy: ")
		input, err := r.readLine()
		if err != nil {
			return "", err
		}
		if strings.EqualFold(input, "q") {
			return "", errEnd
		}
		rating, err := ParseAnswer(input)
		if err == nil {
			return rating, nil
		}
		fmt.Fprintln(r.stdoutWriter, color.RedString("%q is not a rating", input))
	}
}

func (r *ReviewCLI) readLine() (string, error) {
	line, err := r.stdinReader.ReadString('\n')
	if errors.Is(err, io.EOF) {
		if line == "" {
			return "", errEnd
		}
	} else if err != nil {
		return "", fmt.Errorf("ReadString() > %w", err)
	}
	return strings.TrimSpace(line), nil
}

func (r *ReviewCLI) printFeedback(rating srs.Rating, state srs.CardState) {
	next := fmt.Sprintf("next review in %d days (%s)", state.Interval, state.DueDate.Local().Format(time.DateOnly))
	switch rating {
	case srs.RatingAgain:
		fmt.Fprintln(r.stdoutWriter, color.RedString("Again: %s", next))
	case srs.RatingHard:
		fmt.Fprintln(r.stdoutWriter, color.YellowString("Hard: %s", next))
	default:
		fmt.Fprintln(r.stdoutWriter, color.GreenString("%s: %s", strings.ToUpper(string(rating[:1]))+string(rating[1:]), next))
	}
	fmt.Fprintln(r.stdoutWriter)
}

func (r *ReviewCLI) record(rating srs.Rating) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.summary.Reviewed++
	r.summary.Ratings[rating]++
}

func (r *ReviewCLI) snapshot() ReviewSummary {
	r.mu.Lock()
	defer r.mu.Unlock()
	ratings := make(map[srs.Rating]int, len(r.summary.Ratings))
	for rating, n := range r.summary.Ratings {
		ratings[rating] = n
	}
	return ReviewSummary{Reviewed: r.summary.Reviewed, Ratings: ratings}
}

func (r *ReviewCLI) printSummary(summary ReviewSummary) {
	fmt.Fprintf(r.stdoutWriter, "Reviewed %d cards", summary.Reviewed)
	if summary.Reviewed > 0 {
		parts := make([]string, 0, len(srs.Ratings))
		for _, rating := range srs.Ratings {
			if n := summary.Ratings[rating]; n > 0 {
				parts = append(parts, fmt.Sprintf("%s: %d", rating, n))
			}
		}
		fmt.Fprintf(r.stdoutWriter, " (%s)", strings.Join(parts, ", "))
	}
	fmt.Fprintln(r.stdoutWriter)
}

// ParseAnswer accepts a rating name or its number from 1 (again) to 4 (easy).
func ParseAnswer(input string) (srs.Rating, error) {
	input = strings.TrimSpace(input)
	if len(input) == 1 && input[0] >= '1' && input[0] <= '4' {
		return srs.Ratings[input[0]-'1'], nil
	}
	return srs.ParseRating(input)
}
