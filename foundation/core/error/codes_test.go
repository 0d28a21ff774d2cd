// File: codes_test.go
// Title: Error Code Tests
// Description: Tests for error code functionality including validation,
//              categorization, and HTTP status mapping.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-01-24
// Modified: 2025-01-24
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive code tests

package error

import (
	"testing"
)

func TestCodeString(t *testing.T) {
	tests := []struct {
		code Code
		want string
	}{
		{CodeUnknown, "UNKNOWN"},
		{CodeNotFound, "NOT_FOUND"},
		{CodeSignatureInvalid, "SIGNATURE_INVALID"},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			if got := tt.code.String(); got != tt.want {
				t.Errorf("Code.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCodeIsValid(t *testing.T) {
	tests := []struct {
		name string
		code Code
		want bool
	}{
		{"known code", CodeConfigInvalidRegex, true},
		{"unknown code", Code("INVALID_CODE"), false},
		{"empty code", Code(""), false},
		{"layer timeout code", CodeLayerTimeoutL1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.code.IsValid(); got != tt.want {
				t.Errorf("Code.IsValid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCodeCategory(t *testing.T) {
	tests := []struct {
		code     Code
		category string
	}{
		{CodeConfigInvalidRegex, "config_error"},
		{CodeConfigSchemaInvalid, "config_error"},
		{CodeValidationEmptyInput, "validation_error"},
		{CodeValidationTextTooLong, "validation_error"},
		{CodeSignatureInvalid, "signature_error"},
		{CodeResourceExhaustedQueue, "resource_exhausted"},
		{CodeLayerTimeoutL1, "layer_timeout"},
		{CodeLayerFailureModel, "layer_failure"},
		{CodeSuppressionMalformed, "suppression_error"},
		{CodePolicyMalformed, "policy_error"},
		{CodeValidationFailed, "validation_error"},
		{CodeRequiredField, "validation_error"},
		{CodeUnknown, "generic"},
		{CodeInternal, "generic"},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			if got := tt.code.Category(); got != tt.category {
				t.Errorf("Code.Category() = %v, want %v", got, tt.category)
			}
		})
	}
}

func TestCodeHTTPStatus(t *testing.T) {
	tests := []struct {
		code       Code
		httpStatus int
	}{
		{CodeInvalidInput, 400},
		{CodeValidationFailed, 400},
		{CodeValidationEmptyInput, 400},
		{CodeValidationTextTooLong, 400},

		{CodeNotFound, 404},

		{CodeTimeout, 408},
		{CodeLayerTimeoutL1, 408},
		{CodeLayerTimeoutL2, 408},

		{CodeSignatureInvalid, 422},
		{CodeConfigInvalidRegex, 422},
		{CodeSuppressionMalformed, 422},
		{CodePolicyMalformed, 422},

		{CodeResourceExhaustedQueue, 429},
		{CodePolicyCapExceeded, 429},

		{CodeUnknown, 500},
		{CodeInternal, 500},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			if got := tt.code.HTTPStatus(); got != tt.httpStatus {
				t.Errorf("Code.HTTPStatus() = %v, want %v", got, tt.httpStatus)
			}
		})
	}
}

func TestAllDefinedCodesAreValid(t *testing.T) {
	codes := []Code{
		CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput, CodeTimeout,

		CodeConfigInvalidRegex, CodeConfigUnknownFlag, CodeConfigEmptyPattern,
		CodeConfigSchemaInvalid, CodeConfigVersionMismatch, CodeConfigMalformed,

		CodeValidationEmptyInput, CodeValidationTextTooLong, CodeValidationInvalidMode,
		CodeValidationOutOfRange,

		CodeSignatureInvalid, CodeSignatureAlgorithm,

		CodeResourceExhaustedQueue, CodeResourceExhaustedPolicies,

		CodeLayerTimeoutL1, CodeLayerTimeoutL2,

		CodeLayerFailureModel, CodeLayerFailureCache, CodeLayerFailurePattern, CodeLayerFailureNoResult,

		CodeSuppressionMalformed, CodePolicyMalformed, CodePolicyCapExceeded,

		CodeValidationFailed, CodeRequiredField, CodeInvalidFormat, CodeValueOutOfRange, CodeInvalidLength,
	}

	for _, code := range codes {
		t.Run(string(code), func(t *testing.T) {
			if !code.IsValid() {
				t.Errorf("Code %v should be valid", code)
			}
		})
	}
}

func TestCodeCategoryCoverage(t *testing.T) {
	expectedCategories := map[string]bool{
		"config_error":       false,
		"validation_error":   false,
		"signature_error":    false,
		"resource_exhausted": false,
		"layer_timeout":      false,
		"layer_failure":      false,
		"suppression_error":  false,
		"policy_error":       false,
		"generic":            false,
	}

	testCodes := []Code{
		CodeConfigInvalidRegex,
		CodeValidationEmptyInput,
		CodeSignatureInvalid,
		CodeResourceExhaustedQueue,
		CodeLayerTimeoutL1,
		CodeLayerFailureModel,
		CodeSuppressionMalformed,
		CodePolicyMalformed,
		CodeUnknown,
	}

	for _, code := range testCodes {
		category := code.Category()
		if _, exists := expectedCategories[category]; !exists {
			t.Errorf("Unexpected category %q for code %v", category, code)
		} else {
			expectedCategories[category] = true
		}
	}

	for category, covered := range expectedCategories {
		if !covered {
			t.Errorf("Category %q was not covered by test codes", category)
		}
	}
}

func TestHTTPStatusRanges(t *testing.T) {
	tests := []struct {
		name      string
		code      Code
		minStatus int
		maxStatus int
	}{
		{"client error codes", CodeInvalidInput, 400, 499},
		{"server error codes", CodeInternal, 500, 599},
		{"not found codes", CodeNotFound, 404, 404},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status := tt.code.HTTPStatus()
			if status < tt.minStatus || status > tt.maxStatus {
				t.Errorf("HTTP status %d for code %v is outside expected range [%d, %d]",
					status, tt.code, tt.minStatus, tt.maxStatus)
			}
		})
	}
}
