// Package server provides the Connect RPC handlers of the study service.
package server

import (
	"context"
	"net/http"
	"reflect"
	"strings"
	"time"

	"connectrpc.com/connect"
	"github.com/go-playground/validator/v10"

	"github.com/at-ishikawa/kioku/internal/srs"
	"github.com/at-ishikawa/kioku/internal/study"
)

const (
	ServiceName = "kioku.v1.StudyService"

	RateCardProcedure     = "/" + ServiceName + "/RateCard"
	StartSessionProcedure = "/" + ServiceName + "/StartSession"
	GetDueCardsProcedure  = "/" + ServiceName + "/GetDueCards"
	GetDeckStatsProcedure = "/" + ServiceName + "/GetDeckStats"
	GetOverviewProcedure  = "/" + ServiceName + "/GetOverview"
)

//go:generate mockgen -source=handler.go -destination=../mocks/server/mock_handler.go -package=mock_server

// StudyService is the part of study.Service the handlers call.
type StudyService interface {
	Rate(ctx context.Context, cardID string, rating srs.Rating, responseTime time.Duration) (srs.CardState, error)
	StartSession(ctx context.Context, deckID string) (study.Session, error)
	DeckDue(ctx context.Context, deckID string) ([]string, error)
	SubjectDue(ctx context.Context, subjectID string) ([]string, error)
	DeckOverview(ctx context.Context, deckID string) (study.DeckOverview, error)
	Overview(ctx context.Context, subjectID string) (study.Overview, error)
}

// StudyHandler serves the study service over Connect with JSON messages.
type StudyHandler struct {
	service  StudyService
	validate *validator.Validate
}

// NewStudyHandler creates a new StudyHandler.
func NewStudyHandler(service StudyService) *StudyHandler {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &StudyHandler{
		service:  service,
		validate: validate,
	}
}

// Handler returns the path prefix of the service and its http.Handler.
func (h *StudyHandler) Handler(opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(jsonCodec{})}, opts...)

	mux := http.NewServeMux()
	mux.Handle(RateCardProcedure, connect.NewUnaryHandler(RateCardProcedure, h.RateCard, opts...))
	mux.Handle(StartSessionProcedure, connect.NewUnaryHandler(StartSessionProcedure, h.StartSession, opts...))
	mux.Handle(GetDueCardsProcedure, connect.NewUnaryHandler(GetDueCardsProcedure, h.GetDueCards, opts...))
	mux.Handle(GetDeckStatsProcedure, connect.NewUnaryHandler(GetDeckStatsProcedure, h.GetDeckStats, opts...))
	mux.Handle(GetOverviewProcedure, connect.NewUnaryHandler(GetOverviewProcedure, h.GetOverview, opts...))
	return "/" + ServiceName + "/", mux
}

// RateCard records a rating and returns the new scheduler state.
func (h *StudyHandler) RateCard(
	ctx context.Context,
	req *connect.Request[RateCardRequest],
) (*connect.Response[RateCardResponse], error) {
	if err := h.validateRequest(req.Msg); err != nil {
		return nil, err
	}
	rating, err := srs.ParseRating(req.Msg.Rating)
	if err != nil {
		return nil, toConnectError(err)
	}

	state, err := h.service.Rate(ctx, req.Msg.CardID, rating, time.Duration(req.Msg.ResponseTimeMs)*time.Millisecond)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&RateCardResponse{State: toCardState(state)}), nil
}

// StartSession introduces new cards and returns the due cards of a deck.
func (h *StudyHandler) StartSession(
	ctx context.Context,
	req *connect.Request[StartSessionRequest],
) (*connect.Response[StartSessionResponse], error) {
	if err := h.validateRequest(req.Msg); err != nil {
		return nil, err
	}

	session, err := h.service.StartSession(ctx, req.Msg.DeckID)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&StartSessionResponse{
		CardIDs:           nonNil(session.CardIDs),
		NewlyIntroduced:   session.NewlyIntroduced,
		RemainingNewCards: session.RemainingNewCards,
		EstimatedMinutes:  session.EstimatedMinutes,
		Workload:          Workload{Level: string(session.Workload.Level), Message: session.Workload.Message},
	}), nil
}

// GetDueCards returns the due cards of a deck or a subject.
func (h *StudyHandler) GetDueCards(
	ctx context.Context,
	req *connect.Request[GetDueCardsRequest],
) (*connect.Response[GetDueCardsResponse], error) {
	if err := h.validateRequest(req.Msg); err != nil {
		return nil, err
	}

	var due []string
	var err error
	if req.Msg.DeckID != "" {
		due, err = h.service.DeckDue(ctx, req.Msg.DeckID)
	} else {
		due, err = h.service.SubjectDue(ctx, req.Msg.SubjectID)
	}
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&GetDueCardsResponse{CardIDs: nonNil(due)}), nil
}

// GetDeckStats returns the stats of a deck.
func (h *StudyHandler) GetDeckStats(
	ctx context.Context,
	req *connect.Request[GetDeckStatsRequest],
) (*connect.Response[GetDeckStatsResponse], error) {
	if err := h.validateRequest(req.Msg); err != nil {
		return nil, err
	}

	deck, err := h.service.DeckOverview(ctx, req.Msg.DeckID)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&GetDeckStatsResponse{Deck: toDeckProgress(deck)}), nil
}

// GetOverview returns the progress of a subject or of every subject.
func (h *StudyHandler) GetOverview(
	ctx context.Context,
	req *connect.Request[GetOverviewRequest],
) (*connect.Response[GetOverviewResponse], error) {
	overview, err := h.service.Overview(ctx, req.Msg.SubjectID)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(toOverviewResponse(overview)), nil
}

func nonNil(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}
