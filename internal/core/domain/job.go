package domain

import "time"

// Job is a read-only posting fetched from the third-party jobs API. It is
// never persisted or mutated by this system beyond display-time
// normalization (rendered description, extracted application URL).
type Job struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	URL         string    `json:"url"`
	Title       string    `json:"title"`
	Company     string    `json:"company"`
	CompanyURL  string    `json:"company_url,omitempty"`
	CompanyLogo string    `json:"company_logo,omitempty"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	HowToApply  string    `json:"how_to_apply"`
	ApplyURL    string    `json:"apply_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
