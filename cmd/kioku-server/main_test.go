package main

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/at-ishikawa/kioku/internal/card"
	mock_server "github.com/at-ishikawa/kioku/internal/mocks/server"
	"github.com/at-ishikawa/kioku/internal/statistics"
	"github.com/at-ishikawa/kioku/internal/study"
)

func TestNewMux(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mock_server.NewMockStudyService(ctrl)
	service.EXPECT().DeckOverview(gomock.Any(), "verbs").Return(study.DeckOverview{
		Deck:  card.Deck{ID: "verbs", Name: "Verbs"},
		Stats: statistics.DeckStats{Total: 3, Unseen: 3},
	}, nil)

	srv := httptest.NewServer(newMux(service))
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/kioku.v1.StudyService/GetDeckStats", "application/json", strings.NewReader(`{"deck_id":"verbs"}`))
	require.NoError(t, err)
	defer func() {
		_ = resp.Body.Close()
	}()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	notFound, err := http.Post(srv.URL+"/other.Service/Method", "application/json", strings.NewReader(`{}`))
	require.NoError(t, err)
	defer func() {
		_ = notFound.Body.Close()
	}()
	assert.Equal(t, http.StatusNotFound, notFound.StatusCode)
}
