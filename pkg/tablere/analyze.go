package tablere

import "sort"

// AnalysisResult describes the constructs a pattern uses.
type AnalysisResult struct {
	Pattern string

	// NumStates is the table size including the placeholder column.
	NumStates int

	// Anchored is true when the pattern must consume the whole input.
	Anchored bool

	// FeatureLabels lists the constructs present, sorted alphabetically.
	FeatureLabels []string
}

// Feature labels reported by Analyze.
const (
	LabelLiteral  = "Literal"
	LabelWildcard = "Wildcard"
	LabelAnchor   = "Anchor"
	LabelPlus     = "OneOrMore"
	LabelStar     = "ZeroOrMore"
)

// Analyze compiles pattern and reports its features without keeping the
// table. It returns the same errors as Compile.
//
// Example:
//
//	result, err := tablere.Analyze("a*bc$")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.FeatureLabels) // ["Anchor", "Literal", "ZeroOrMore"]
func Analyze(pattern string) (*AnalysisResult, error) {
	re, err := Compile(pattern)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	for i := 0; i < len(pattern); i++ {
		switch pattern[i] {
		case '.':
			seen[LabelWildcard] = true
		case '$':
			seen[LabelAnchor] = true
		case '+':
			seen[LabelPlus] = true
		case '*':
			seen[LabelStar] = true
		default:
			seen[LabelLiteral] = true
		}
	}

	labels := make([]string, 0, len(seen))
	for label := range seen {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	return &AnalysisResult{
		Pattern:       pattern,
		NumStates:     re.NumStates(),
		Anchored:      len(pattern) > 0 && pattern[len(pattern)-1] == '$',
		FeatureLabels: labels,
	}, nil
}
