package enums

import "strings"

// PeriodTag is a decade facet tag such as "2020s", plus the open-ended
// "pre-1980" tag for anything older than the earliest decade.
type PeriodTag string

// PeriodTagPreEarliest matches items labeled before the earliest decade.
const PeriodTagPreEarliest PeriodTag = "pre-1980"

// String implements fmt.Stringer.
func (p PeriodTag) String() string {
	return string(p)
}

// StoredValue maps the filter tag onto the value stored in the catalog year
// column. Decade tags drop the trailing "s" ("2020s" stores as "2020"), the
// pre-earliest tag stores as a fixed label. Unknown tags return an empty
// string so filters can skip them.
func (p PeriodTag) StoredValue() string {
	if p == PeriodTagPreEarliest {
		return "before 1980s"
	}
	s := string(p)
	if strings.HasSuffix(s, "0s") {
		return strings.TrimSuffix(s, "s")
	}
	return ""
}

// IsValid reports whether the tag maps to a stored value.
func (p PeriodTag) IsValid() bool {
	return p.StoredValue() != ""
}
