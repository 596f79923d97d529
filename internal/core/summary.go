package core

// CategoryTotal is an amount aggregated under one category name.
type CategoryTotal struct {
	Category string
	Total    Money
}

// MonthTotal is an amount aggregated under one YYYY-MM trend bucket.
// Trend results are slices of these so chronological order survives
// iteration, which a map result could not guarantee.
type MonthTotal struct {
	Month string // YYYY-MM
	Total Money
}
