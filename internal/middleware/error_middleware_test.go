package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/morada/morada/internal/app/models/dto"
	"github.com/morada/morada/internal/pkg/apperrors"
)

func callHandleAPIError(t *testing.T, err error) (*httptest.ResponseRecorder, dto.APIResponse) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)

	HandleAPIError(c, err)

	var body dto.APIResponse
	if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding response body: %v", err)
	}
	return recorder, body
}

func TestHandleAPIErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   dto.ErrorCode
	}{
		{"not found", apperrors.ErrReservationNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"condominium not found", apperrors.ErrCondominiumNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"invalid credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials},
		{"expired token", apperrors.ErrTokenExpired, http.StatusUnauthorized, dto.ErrorCodeExpiredToken},
		{"invalid token", apperrors.ErrTokenInvalid, http.StatusUnauthorized, dto.ErrorCodeInvalidToken},
		{"account disabled", apperrors.ErrAccountDisabled, http.StatusForbidden, dto.ErrorCodeAccountDisabled},
		{"permission denied", apperrors.ErrPermissionDenied, http.StatusForbidden, dto.ErrorCodeForbidden},
		{"inactive membership", apperrors.ErrMembershipNotActive, http.StatusForbidden, dto.ErrorCodeForbidden},
		{"duplicate email", apperrors.ErrEmailAlreadyExists, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists},
		{"duplicate membership", apperrors.ErrMembershipAlreadyExists, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists},
		{"reservation conflict", apperrors.ErrReservationConflict, http.StatusConflict, dto.ErrorCodeConflict},
		{"illegal status change", apperrors.ErrIllegalStatusChange, http.StatusConflict, dto.ErrorCodeConflict},
		{"invalid time range", apperrors.ErrInvalidTimeRange, http.StatusBadRequest, dto.ErrorCodeValidationFailed},
		{"reservation outside day", apperrors.ErrReservationOutsideDay, http.StatusBadRequest, dto.ErrorCodeValidationFailed},
		{"area unavailable", apperrors.ErrCommonAreaUnavailable, http.StatusBadRequest, dto.ErrorCodeValidationFailed},
		{"unknown error", assertableError("boom"), http.StatusInternalServerError, dto.ErrorCodeInternalServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder, body := callHandleAPIError(t, tt.err)

			if recorder.Code != tt.wantStatus {
				t.Errorf("status: got %d, want %d", recorder.Code, tt.wantStatus)
			}
			if body.Success {
				t.Error("success flag should be false on errors")
			}
			if body.Error == nil {
				t.Fatal("expected an error detail in the response")
			}
			if body.Error.Code != tt.wantCode {
				t.Errorf("error code: got %s, want %s", body.Error.Code, tt.wantCode)
			}
		})
	}
}

func TestHandleAPIErrorValidationMessage(t *testing.T) {
	err := apperrors.NewValidationError("status must be APPROVED, DECLINED or CANCELLED")

	recorder, body := callHandleAPIError(t, err)

	if recorder.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want %d", recorder.Code, http.StatusBadRequest)
	}
	if body.Error == nil || body.Error.Message != "status must be APPROVED, DECLINED or CANCELLED" {
		t.Errorf("expected the custom validation message, got %+v", body.Error)
	}
}

type assertableError string

func (e assertableError) Error() string { return string(e) }
