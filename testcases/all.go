package testcases

// All contains all sample designs, grouped by category.
// The category name is used as a prefix in exported file names.
var All = map[string][]Design{
	"stroke":    strokeCases,
	"curve":     curveCases,
	"fill":      fillCases,
	"precision": precisionCases,
	"complex":   complexCases,
	"subpath":   subpathCases,
	"large":     largeCases,
	"view":      viewCases,
}
