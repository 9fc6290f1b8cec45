package domain

// JobRecord is one job fragment from the listing page plus the description
// read from its detail page.
type JobRecord struct {
	Title       string
	Company     string
	Location    string // whitespace-trimmed
	DatePosted  string // as displayed, not parsed
	Description string
	DetailURL   string
}
