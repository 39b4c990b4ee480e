package services

import (
	"net/http"
	"time"

	"github.com/casaflow/property-service/internal/utils"
)

func nowUTC() time.Time { return time.Now().UTC() }

// occupiedError wraps the one-tenant-per-unit violation for
// utils.HandleAppError.
func occupiedError(err error) error {
	return &utils.AppError{
		StatusCode: http.StatusConflict,
		Code:       utils.ErrCodeUnitOccupied,
		Message:    "Unit already has an active tenant",
		Err:        err,
	}
}

func remoteWriteError(publicMessage string, err error) error {
	return &utils.AppError{
		StatusCode: http.StatusBadGateway,
		Code:       utils.ErrCodeRemoteWrite,
		Message:    publicMessage,
		Err:        err,
	}
}
