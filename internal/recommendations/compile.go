package recommendations

// Selection is the compiled output of a validated need-profile: the skin-type
// columns to OR-combine into the filter predicate, and the flag columns to sum
// into the ranking score. Column names are drawn only from the fixed flag
// vocabulary, never from caller strings.
type Selection struct {
	SkinTypeColumns []string
	RankingColumns  []string
}

// Compile translates a validated profile into a Selection. It is pure and
// total: any validated profile compiles, possibly to empty selections.
func Compile(profile NeedProfile) Selection {
	var sel Selection

	for _, flag := range skinTypeFlags {
		if flagEqualsOne(profile[flag]) {
			sel.SkinTypeColumns = append(sel.SkinTypeColumns, flag)
		}
	}

	for _, flag := range functionalityFlags {
		if flagEqualsOne(profile[flag]) {
			sel.RankingColumns = append(sel.RankingColumns, flag)
		}
	}

	// The comedogenic bonus applies only when oily is the boolean true, not the
	// number 1 that activates the skin-type filter.
	if flagIsTrue(profile["oily"]) {
		sel.RankingColumns = append(sel.RankingColumns, "comedogenic")
	}

	return sel
}
