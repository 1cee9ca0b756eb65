//go:build unit

package httperr_test

import (
	"net/http"
	"testing"

	"hotel-booking/internal/handler/httperr"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/pkg/jwt"
	"hotel-booking/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
)

func TestFromError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"予約の競合", errs.Wrap(errs.ErrBookingConflict, "room 1"), http.StatusBadRequest, "This dates is unavailable"},
		{"日付形式", errs.Wrap(errs.ErrDateFormat, `"2025/13/01"`), http.StatusBadRequest, `"2025/13/01": invalid date format`},
		{"日付範囲", errs.ErrInvalidRange, http.StatusBadRequest, "check-out date precedes check-in date"},
		{"入力検証", errs.Wrap(errs.ErrValidation, "rating must be between 1 and 5"), http.StatusBadRequest, "rating must be between 1 and 5: validation failed"},
		{"存在しない", errs.Wrap(errs.ErrNotFound, "room"), http.StatusNotFound, "Not found"},
		{"権限なし", errs.ErrAccessDenied, http.StatusForbidden, "Access denied"},
		{"重複", errs.ErrDuplicate, http.StatusConflict, "Already exists"},
		{"不整合はNotFoundを包んでいても500", errs.Mark(errs.Wrap(errs.ErrNotFound, "booked day"), errs.ErrInconsistentState), http.StatusInternalServerError, "Internal server error"},
		{"資格情報", commands.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid username or password"},
		{"期限切れトークン", errs.Wrap(jwt.ErrExpiredToken, "validate"), http.StatusUnauthorized, "Invalid or expired token"},
		{"未分類", errs.New("connection reset"), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := httperr.FromError(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}
