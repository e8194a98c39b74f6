// Package service holds the operations behind every API endpoint. Each one
// acts on behalf of an already-resolved user id and reports failures as
// apperr kinds.
package service

import (
	"fmt"
	"strings"

	"fintrack-server/src/apperr"
	"fintrack-server/src/models"
	"fintrack-server/src/util"

	"github.com/shopspring/decimal"
)

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", apperr.ErrInvalidRequest, fmt.Sprintf(format, args...))
}

func requireText(field, value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", invalid("%s is required", field)
	}
	return value, nil
}

func checkKind(k models.Kind) error {
	if !k.Valid() {
		return invalid("type must be %q or %q", models.KindIncome, models.KindExpense)
	}
	return nil
}

func checkNonNegative(field string, d decimal.Decimal) error {
	if d.IsNegative() {
		return invalid("%s must not be negative", field)
	}
	return nil
}

func checkDate(field, date string) error {
	if !util.ValidateDate(date) {
		return invalid("%s must be an ISO-8601 date", field)
	}
	return nil
}
