package http

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

type paramErrorKind int

const (
	errMissingParams paramErrorKind = iota
	errBadFormat
	errBadMonth
	errBadYear
)

// ParamError is a failed month/year validation, tagged by the rule that
// rejected it.
type ParamError struct {
	kind     paramErrorKind
	rawMonth string
	rawYear  string
	value    int
}

// Body renders the HTTP 400 response for the failed rule.
func (e *ParamError) Body() gin.H {
	switch e.kind {
	case errMissingParams:
		return gin.H{
			"error":   "Parámetros faltantes",
			"message": `Los parámetros "month" y "year" son obligatorios`,
			"ejemplo": "/maxdiff?month=3&year=2017",
		}
	case errBadFormat:
		return gin.H{
			"error":   "Formato de parámetros inválido",
			"message": `Los parámetros "month" y "year" deben ser números enteros`,
			"recibido": gin.H{
				"month": e.rawMonth,
				"year":  e.rawYear,
			},
		}
	case errBadMonth:
		return gin.H{
			"error":    "Mes inválido",
			"message":  "El mes debe estar entre 1 y 12",
			"recibido": e.value,
		}
	default:
		return gin.H{
			"error":    "Año inválido",
			"message":  "El año debe estar entre 2000 y 2100",
			"recibido": e.value,
		}
	}
}

// ValidateParams checks the raw month/year query parameters in rule order:
// presence, integer format, month range, year range. First failure wins.
func ValidateParams(monthStr, yearStr string) (int, int, *ParamError) {
	if monthStr == "" || yearStr == "" {
		return 0, 0, &ParamError{kind: errMissingParams}
	}

	month, monthErr := strconv.Atoi(monthStr)
	year, yearErr := strconv.Atoi(yearStr)
	if monthErr != nil || yearErr != nil {
		return 0, 0, &ParamError{kind: errBadFormat, rawMonth: monthStr, rawYear: yearStr}
	}

	if month < 1 || month > 12 {
		return 0, 0, &ParamError{kind: errBadMonth, value: month}
	}
	if year < 2000 || year > 2100 {
		return 0, 0, &ParamError{kind: errBadYear, value: year}
	}

	return month, year, nil
}
