package utils

import (
	"errors"

	"github.com/EngrDhee/automatic-credit-debit-operations/internal/pkg/models"
)

func GetErrorCode(err error) string {
	var customErr *models.CustomError
	if errors.As(err, &customErr) {
		return customErr.ErrorCode()
	}
	return "CREDIT_DEBIT_INTERNAL_ERROR"
}
