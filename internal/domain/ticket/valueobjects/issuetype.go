package valueobjects

import (
	"fmt"
	"strings"
)

// IssueType is a category-scoped issue classification. Validity depends on
// the owning category, so construction goes through NewIssueType.
type IssueType string

func (i IssueType) String() string {
	return string(i)
}

// NewIssueType validates s against the category's vocabulary.
func NewIssueType(c Category, s string) (IssueType, error) {
	s = strings.TrimSpace(s)
	if err := ValidateIssueType(c, s); err != nil {
		return "", err
	}
	return IssueType(s), nil
}

// issueTypesByCategory is the fixed issue-type vocabulary. A ticket's issue
// type must come from its own category's list; cross-category submissions
// fail validation.
var issueTypesByCategory = map[Category][]string{
	CategoryDemo: {
		"Product Demonstration",
		"Setup Assistance",
		"Training",
		"Technical Overview",
	},
	CategoryService: {
		"Repair",
		"Maintenance",
		"Calibration",
		"Diagnostic",
		"Parts Replacement",
	},
	CategoryThirdParty: {
		"Warranty Claim",
		"External Repair",
		"Vendor Service",
		"Collaborative Fix",
	},
	CategoryInStore: {
		"Quick Fix",
		"Assessment",
		"Minor Repair",
		"Consultation",
	},
}

// IssueTypesFor returns a copy of the issue-type vocabulary for a category.
func IssueTypesFor(c Category) []string {
	src := issueTypesByCategory[c]
	out := make([]string, len(src))
	copy(out, src)
	return out
}

// IsValidIssueType reports whether issueType belongs to the category's
// vocabulary.
func IsValidIssueType(c Category, issueType string) bool {
	for _, it := range issueTypesByCategory[c] {
		if it == issueType {
			return true
		}
	}
	return false
}

// ValidateIssueType returns a descriptive error when issueType does not
// belong to the category's vocabulary.
func ValidateIssueType(c Category, issueType string) error {
	if issueType == "" {
		return fmt.Errorf("issue type is required")
	}
	if !IsValidIssueType(c, issueType) {
		return fmt.Errorf("issue type %q is not valid for category %s", issueType, c)
	}
	return nil
}
