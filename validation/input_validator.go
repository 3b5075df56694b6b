// Package validation provides input validation for user-supplied text in the
// treatment finder API.
package validation

import (
	"fmt"
	"regexp"
	"strings"
)

// Pre-compiled regex patterns for performance optimization
var (
	// Free-text concerns: letters, digits, whitespace and safe punctuation.
	inputRegex = regexp.MustCompile(`^[a-zA-Z0-9\s\-\.\,\+'\(\)\?!]+$`)

	// Dangerous patterns as strings (strings.Contains is much faster than
	// regex for plain substring checks)
	dangerousPatterns = []string{
		"<script", "</script>", "javascript:", "vbscript:", "onload=", "onerror=",
		"onclick=", "onmouseover=", "eval(", "expression(", "@import",
		// SQL injection patterns
		"' or ", "\" or ", "union select", "drop table", "delete from", "insert into",
		"--", "/*", "*/", "exec(", "execute(",
		// Command injection patterns
		"`", "$(", "${",
		// Path traversal patterns
		"../", "..\\", "%2e%2e", "file://",
	}
)

const (
	maxConcernLength   = 2000
	maxConditionLength = 100
)

// ValidateConcern checks a free-text health concern for size and dangerous
// content. Empty input is allowed; the caller decides whether an empty
// concern is an error.
func ValidateConcern(input string) error {
	if input == "" {
		return nil
	}

	if len(input) > maxConcernLength {
		return fmt.Errorf("concern too long: %d characters (max %d)", len(input), maxConcernLength)
	}

	if err := checkDangerous(input); err != nil {
		return err
	}

	if !inputRegex.MatchString(input) {
		return fmt.Errorf("concern contains unsupported characters")
	}

	return nil
}

// ValidateLabel checks a single condition or medication label.
func ValidateLabel(input string) error {
	if strings.TrimSpace(input) == "" {
		return fmt.Errorf("label cannot be empty")
	}

	if len(input) > maxConditionLength {
		return fmt.Errorf("label too long: %d characters (max %d)", len(input), maxConditionLength)
	}

	if err := checkDangerous(input); err != nil {
		return err
	}

	if !inputRegex.MatchString(input) {
		return fmt.Errorf("label contains unsupported characters")
	}

	return nil
}

func checkDangerous(input string) error {
	lower := strings.ToLower(input)
	for _, pattern := range dangerousPatterns {
		if strings.Contains(lower, pattern) {
			return fmt.Errorf("input contains disallowed sequence")
		}
	}
	return nil
}
