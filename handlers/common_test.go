package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	documentRepo "complyhub/database/repository/document"
	"complyhub/services/booking"
	"complyhub/utils"
)

func errorRecorder(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	return c, rec
}

func decodeErrorBody(t *testing.T, rec *httptest.ResponseRecorder) utils.ErrorResponse {
	t.Helper()
	var body utils.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestRespondBookingErrorStatusByCode(t *testing.T) {
	cases := []struct {
		code       string
		wantStatus int
	}{
		{booking.CodeSessionNotFound, http.StatusNotFound},
		{booking.CodePropertyNotOwned, http.StatusNotFound},
		{booking.CodeInvalidTransition, http.StatusConflict},
		{booking.CodePersistFailed, http.StatusInternalServerError},
		{booking.CodeDocumentsRequired, http.StatusBadRequest},
		{booking.CodeAssigneeIncomplete, http.StatusBadRequest},
		{booking.CodeAssessmentTimePast, http.StatusBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.code, func(t *testing.T) {
			c, rec := errorRecorder(t)
			respondBookingError(c, &booking.LifecycleError{Code: tc.code, Message: "nope"})

			assert.Equal(t, tc.wantStatus, rec.Code)
			body := decodeErrorBody(t, rec)
			assert.Equal(t, tc.code, body.Code)
			assert.Equal(t, "nope", body.Error)
		})
	}
}

func TestRespondBookingErrorUnknownErrorIs500(t *testing.T) {
	c, rec := errorRecorder(t)
	respondBookingError(c, errors.New("the database is on fire"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeErrorBody(t, rec)
	assert.Empty(t, body.Code)
}

func TestRespondDocumentErrorDuplicateFolderIsConflict(t *testing.T) {
	c, rec := errorRecorder(t)
	respondDocumentError(c, &documentRepo.DuplicateFolderError{Name: "Certificates"})

	assert.Equal(t, http.StatusConflict, rec.Code)
	body := decodeErrorBody(t, rec)
	assert.Equal(t, "duplicateFolder", body.Code)
	assert.Contains(t, body.Error, "Certificates")
}
