package valueobjects

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type Category string

const (
	CategoryTechnical      Category = "technical"
	CategoryBilling        Category = "billing"
	CategoryGeneral        Category = "general"
	CategoryFeatureRequest Category = "feature_request"
	CategoryBugReport      Category = "bug_report"
)

var validCategories = map[Category]bool{
	CategoryTechnical:      true,
	CategoryBilling:        true,
	CategoryGeneral:        true,
	CategoryFeatureRequest: true,
	CategoryBugReport:      true,
}

func AllCategories() []Category {
	return []Category{
		CategoryTechnical,
		CategoryBilling,
		CategoryGeneral,
		CategoryFeatureRequest,
		CategoryBugReport,
	}
}

func (c Category) String() string {
	return string(c)
}

func (c Category) IsValid() bool {
	return validCategories[c]
}

// Label returns the human readable name, e.g. "Feature Request".
func (c Category) Label() string {
	return cases.Title(language.English).String(strings.ReplaceAll(string(c), "_", " "))
}

func (c Category) IsTechnical() bool {
	return c == CategoryTechnical
}

func (c Category) IsBilling() bool {
	return c == CategoryBilling
}

func (c Category) IsGeneral() bool {
	return c == CategoryGeneral
}

func (c Category) IsFeatureRequest() bool {
	return c == CategoryFeatureRequest
}

func (c Category) IsBugReport() bool {
	return c == CategoryBugReport
}

func NewCategory(s string) (Category, error) {
	c := Category(s)
	if !c.IsValid() {
		return "", fmt.Errorf("invalid category: %s", s)
	}
	return c, nil
}
