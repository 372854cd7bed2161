package apierr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/pickleball-scorekeeper/internal/model"
	"github.com/mcoot/pickleball-scorekeeper/internal/storage"
)

func TestStatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"mode not found", model.ErrModeNotFound, http.StatusNotFound},
		{"team not found", model.ErrTeamNotFound, http.StatusNotFound},
		{"player not found", model.ErrPlayerNotFound, http.StatusNotFound},
		{"validation", model.ErrInvalidMaxScore, http.StatusBadRequest},
		{"wrapped validation", fmt.Errorf("save: %w", model.ErrInvalidGender), http.StatusBadRequest},
		{"duplicate name", model.ErrDuplicateName, http.StatusConflict},
		{"no match", model.ErrNoMatch, http.StatusConflict},
		{"unavailable", storage.Unavailable("set", errors.New("connection refused")), http.StatusServiceUnavailable},
		{"invalid request", NewInvalidRequestError("bad body"), http.StatusBadRequest},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, Status(tt.err))
		})
	}
}

func TestWriteErrorBody(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(rec, model.ErrTeamNotFound)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, CodeTeamNotFound, resp.Error.Code)
}

func TestValidationMessageIsPassedThrough(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(rec, model.ErrInvalidSkillLevel)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, CodeValidation, resp.Error.Code)
	assert.Contains(t, resp.Error.Message, "skill level")
}
