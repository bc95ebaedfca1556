package models

// Listing sources. Every provider wrapper tags its results so canned
// fallback data is never mistaken for a live response.
const (
	SourceLive     = "live"
	SourceFallback = "fallback"
)

// JobListing is a normalized job or internship posting.
type JobListing struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	Company        string `json:"company"`
	Location       string `json:"location"`
	Country        string `json:"country,omitempty"`
	Description    string `json:"description"`
	EmploymentType string `json:"employmentType,omitempty"`
	ApplyLink      string `json:"applyLink"`
}

// JobSearchResult wraps listings with their provenance.
type JobSearchResult struct {
	Jobs   []JobListing `json:"jobs"`
	Source string       `json:"source"`
}

// Course is a normalized course or tutorial recommendation.
type Course struct {
	Title        string   `json:"courseTitle"`
	Platform     string   `json:"platform"`
	Rating       string   `json:"rating"`
	Duration     string   `json:"duration"`
	URL          string   `json:"url"`
	Topics       []string `json:"topics"`
	Description  string   `json:"description,omitempty"`
	ChannelTitle string   `json:"channelTitle,omitempty"`
	Type         string   `json:"type,omitempty"` // "video" or "playlist"
}

// CourseSearchResult wraps courses with their provenance.
type CourseSearchResult struct {
	Courses []Course `json:"courses"`
	Source  string   `json:"source"`
}
