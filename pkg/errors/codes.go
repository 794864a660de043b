package errors

import (
	"net/http"
	"strings"
)

// ErrorCode is a string representation of a specific error condition.
type ErrorCode string

func (c ErrorCode) String() string {
	return string(c)
}

// Common error codes.
const (
	ErrCodeInternal           ErrorCode = "COMMON_001"
	ErrCodeBadRequest         ErrorCode = "COMMON_002"
	ErrCodeUnauthorized       ErrorCode = "COMMON_003"
	ErrCodeForbidden          ErrorCode = "COMMON_004"
	ErrCodeNotFound           ErrorCode = "COMMON_005"
	ErrCodeConflict           ErrorCode = "COMMON_006"
	ErrCodeTooManyRequests    ErrorCode = "COMMON_007"
	ErrCodeServiceUnavailable ErrorCode = "COMMON_008"
	ErrCodeTimeout            ErrorCode = "COMMON_009"
	ErrCodeValidation         ErrorCode = "COMMON_010"
	ErrCodeSerialization      ErrorCode = "COMMON_011"
	ErrCodeCacheError         ErrorCode = "COMMON_012"
	ErrCodeExternalService    ErrorCode = "COMMON_013"
	ErrCodeNotImplemented     ErrorCode = "COMMON_014"

	ErrCodeUnknown ErrorCode = "UNKNOWN"
	ErrCodeOK      ErrorCode = "OK"
)

// Molecule module error codes.
const (
	ErrCodeMoleculeInvalidSMILES ErrorCode = "MOL_001"
	ErrCodeMoleculeParsingFailed ErrorCode = "MOL_002"
	ErrCodeMoleculeNotFound      ErrorCode = "MOL_003"
	ErrCodeDescriptorFailed      ErrorCode = "MOL_004"
)

// Prediction data-source error codes.
const (
	ErrCodeSourceUnavailable  ErrorCode = "SRC_001"
	ErrCodeSourceRateLimited  ErrorCode = "SRC_002"
	ErrCodeSourceParseError   ErrorCode = "SRC_003"
	ErrCodeSourceTimeout      ErrorCode = "SRC_004"
	ErrCodeSourceBadStatus    ErrorCode = "SRC_005"
	ErrCodeSourceFieldMissing ErrorCode = "SRC_006"
	ErrCodeSourceExhausted    ErrorCode = "SRC_007"
)

// Screening module error codes.
const (
	ErrCodeScreeningFailed      ErrorCode = "SCR_001"
	ErrCodeRuleEvaluationFailed ErrorCode = "SCR_002"
	ErrCodeADMETClassifyFailed  ErrorCode = "SCR_003"
)

// errorCodeHTTPStatus maps ErrorCodes to HTTP status codes.
var errorCodeHTTPStatus = map[ErrorCode]int{
	ErrCodeInternal:           http.StatusInternalServerError,
	ErrCodeBadRequest:         http.StatusBadRequest,
	ErrCodeUnauthorized:       http.StatusUnauthorized,
	ErrCodeForbidden:          http.StatusForbidden,
	ErrCodeNotFound:           http.StatusNotFound,
	ErrCodeConflict:           http.StatusConflict,
	ErrCodeTooManyRequests:    http.StatusTooManyRequests,
	ErrCodeServiceUnavailable: http.StatusServiceUnavailable,
	ErrCodeTimeout:            http.StatusGatewayTimeout,
	ErrCodeValidation:         http.StatusUnprocessableEntity,
	ErrCodeSerialization:      http.StatusInternalServerError,
	ErrCodeCacheError:         http.StatusInternalServerError,
	ErrCodeExternalService:    http.StatusBadGateway,
	ErrCodeNotImplemented:     http.StatusNotImplemented,

	ErrCodeMoleculeInvalidSMILES: http.StatusBadRequest,
	ErrCodeMoleculeParsingFailed: http.StatusBadRequest,
	ErrCodeMoleculeNotFound:      http.StatusNotFound,
	ErrCodeDescriptorFailed:      http.StatusInternalServerError,

	ErrCodeSourceUnavailable:  http.StatusServiceUnavailable,
	ErrCodeSourceRateLimited:  http.StatusTooManyRequests,
	ErrCodeSourceParseError:   http.StatusBadGateway,
	ErrCodeSourceTimeout:      http.StatusGatewayTimeout,
	ErrCodeSourceBadStatus:    http.StatusBadGateway,
	ErrCodeSourceFieldMissing: http.StatusBadGateway,
	ErrCodeSourceExhausted:    http.StatusServiceUnavailable,

	ErrCodeScreeningFailed:      http.StatusInternalServerError,
	ErrCodeRuleEvaluationFailed: http.StatusInternalServerError,
	ErrCodeADMETClassifyFailed:  http.StatusInternalServerError,
}

// errorCodeMessage maps ErrorCodes to default messages.
var errorCodeMessage = map[ErrorCode]string{
	ErrCodeInternal:           "internal server error",
	ErrCodeBadRequest:         "bad request",
	ErrCodeUnauthorized:       "unauthorized",
	ErrCodeForbidden:          "forbidden",
	ErrCodeNotFound:           "resource not found",
	ErrCodeConflict:           "resource conflict",
	ErrCodeTooManyRequests:    "too many requests",
	ErrCodeServiceUnavailable: "service unavailable",
	ErrCodeTimeout:            "request timeout",
	ErrCodeValidation:         "validation failed",
	ErrCodeSerialization:      "serialization failed",
	ErrCodeCacheError:         "cache error",
	ErrCodeExternalService:    "external service error",
	ErrCodeNotImplemented:     "not implemented",

	ErrCodeMoleculeInvalidSMILES: "invalid SMILES format",
	ErrCodeMoleculeParsingFailed: "failed to parse molecule",
	ErrCodeMoleculeNotFound:      "molecule not found",
	ErrCodeDescriptorFailed:      "descriptor calculation failed",

	ErrCodeSourceUnavailable:  "prediction source unavailable",
	ErrCodeSourceRateLimited:  "prediction source rate limited",
	ErrCodeSourceParseError:   "failed to parse prediction response",
	ErrCodeSourceTimeout:      "prediction source timed out",
	ErrCodeSourceBadStatus:    "prediction source returned an error status",
	ErrCodeSourceFieldMissing: "prediction response is missing required fields",
	ErrCodeSourceExhausted:    "all prediction sources failed",

	ErrCodeScreeningFailed:      "screening failed",
	ErrCodeRuleEvaluationFailed: "drug-likeness rule evaluation failed",
	ErrCodeADMETClassifyFailed:  "ADMET classification failed",
}

// HTTPStatusForCode returns the HTTP status code for an ErrorCode.
func HTTPStatusForCode(code ErrorCode) int {
	if status, ok := errorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// DefaultMessageForCode returns the default message for an ErrorCode.
func DefaultMessageForCode(code ErrorCode) string {
	if msg, ok := errorCodeMessage[code]; ok {
		return msg
	}
	return "unknown error"
}

// IsClientError returns true if the ErrorCode corresponds to a 4xx HTTP status.
func IsClientError(code ErrorCode) bool {
	status := HTTPStatusForCode(code)
	return status >= 400 && status < 500
}

// IsServerError returns true if the ErrorCode corresponds to a 5xx HTTP status.
func IsServerError(code ErrorCode) bool {
	status := HTTPStatusForCode(code)
	return status >= 500 && status < 600
}

// ModuleForCode returns the module prefix of an ErrorCode.
func ModuleForCode(code ErrorCode) string {
	parts := strings.Split(string(code), "_")
	if len(parts) > 0 && parts[0] != "" {
		return parts[0]
	}
	return "UNKNOWN"
}
