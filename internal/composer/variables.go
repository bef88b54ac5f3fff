package composer

import (
	"encoding/json"
	"strings"

	apperrors "github.com/rushikeshhadawale/unified-ai-command-centre/internal/shared/errors"
)

// ParseVariables parses the free-form template variables text. Blank text
// yields an empty mapping. Non-blank text must be a JSON object; anything
// else (parse failure, array, scalar, null) is a validation error. The
// function is pure so it can be tested without any composer state.
func ParseVariables(text string) (map[string]any, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return map[string]any{}, nil
	}

	var parsed any
	if err := json.Unmarshal([]byte(trimmed), &parsed); err != nil {
		return nil, apperrors.NewValidationError(apperrors.ReasonInvalidVariablesJSON,
			`variables must be valid JSON, e.g. {"salary_amount": 8000}`, err.Error())
	}

	obj, ok := parsed.(map[string]any)
	if !ok {
		return nil, apperrors.NewValidationError(apperrors.ReasonInvalidVariablesJSON,
			"variables must be a JSON object, not an array or scalar")
	}
	return obj, nil
}
