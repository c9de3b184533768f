package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(t *testing.T, err error) (*httptest.ResponseRecorder, APIResponse) {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Set("trace_id", "trace-1")

	HandleServiceError(c, err)

	var resp APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

func TestHandleServiceError(t *testing.T) {
	tests := []struct {
		err  error
		code int
	}{
		{ErrMissingEmail, http.StatusBadRequest},
		{fmt.Errorf("%w: hair_type: required", ErrInvalidAnswers), http.StatusBadRequest},
		{ErrEmailAlreadyExists, http.StatusConflict},
		{ErrLeadNotFound, http.StatusNotFound},
		{ErrDocumentNotFound, http.StatusNotFound},
		{ErrInvalidCredentials, http.StatusUnauthorized},
		{fmt.Errorf("create lead: %w", ErrDatabaseError), http.StatusInternalServerError},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			w, resp := serve(t, tt.err)
			assert.Equal(t, tt.code, w.Code)
			assert.Equal(t, "error", resp.Status)
			assert.Equal(t, "trace-1", resp.TraceID)
		})
	}
}

func TestHandleServiceError_DuplicateLeadCarriesID(t *testing.T) {
	w, resp := serve(t, &DuplicateLeadError{LeadID: "lead-42"})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, map[string]interface{}{"leadId": "lead-42"}, resp.Data)
	assert.ErrorIs(t, &DuplicateLeadError{}, ErrEmailAlreadyExists)
}

func TestRespondSuccess_WithoutTraceID(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	RespondSuccess(c, gin.H{"ok": true}, "done")

	var resp APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "done", resp.Message)
	assert.Empty(t, resp.TraceID)
}
