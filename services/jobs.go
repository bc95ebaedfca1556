package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"

	"careerhub/internal/cache"
	"careerhub/models"
)

const jobsCacheTTL = 30 * time.Minute

// JobsService searches job postings through the RapidAPI job-search
// provider. Provider failures degrade to a canned listing set that is
// explicitly tagged as fallback data.
type JobsService struct {
	apiKey     string
	apiHost    string
	httpClient *http.Client
	cache      *cache.Cache
}

func NewJobsService(apiKey, apiHost string, c *cache.Cache) *JobsService {
	return &JobsService{
		apiKey:     apiKey,
		apiHost:    apiHost,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		cache:      c,
	}
}

type rapidAPIJob struct {
	JobTitle       string `json:"job_title"`
	EmployerName   string `json:"employer_name"`
	JobCity        string `json:"job_city"`
	JobCountry     string `json:"job_country"`
	JobApplyLink   string `json:"job_apply_link"`
	JobDescription string `json:"job_description"`
	EmploymentType string `json:"job_employment_type"`
	JobID          string `json:"job_id"`
}

// Search queries the provider for jobs matching query/location. Live
// results are cached; any provider failure returns the fallback set.
func (s *JobsService) Search(ctx context.Context, query, location string, page int) (*models.JobSearchResult, error) {
	if page < 1 {
		page = 1
	}

	cacheKey := fmt.Sprintf("jobs:%s:%s:%d", query, location, page)
	var cached models.JobSearchResult
	if hit, err := s.cache.GetJSON(ctx, cacheKey, &cached); err == nil && hit {
		return &cached, nil
	}

	if s.apiKey == "" || s.apiHost == "" {
		log.Println("Job search API not configured, serving fallback data")
		return fallbackJobResult(query, location), nil
	}

	endpoint := fmt.Sprintf("https://%s/search?query=%s&location=%s&page=%d&num_pages=1",
		s.apiHost, url.QueryEscape(query), url.QueryEscape(location), page)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-RapidAPI-Key", s.apiKey)
	req.Header.Set("X-RapidAPI-Host", s.apiHost)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		log.Printf("Job search request failed: %v", err)
		return fallbackJobResult(query, location), nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("Job search API error: %s", resp.Status)
		return fallbackJobResult(query, location), nil
	}

	var payload struct {
		Data []rapidAPIJob `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		log.Printf("Failed to decode job search response: %v", err)
		return fallbackJobResult(query, location), nil
	}
	if len(payload.Data) == 0 {
		return fallbackJobResult(query, location), nil
	}

	result := &models.JobSearchResult{Source: models.SourceLive}
	for _, j := range payload.Data {
		result.Jobs = append(result.Jobs, models.JobListing{
			ID:             j.JobID,
			Title:          j.JobTitle,
			Company:        j.EmployerName,
			Location:       j.JobCity,
			Country:        j.JobCountry,
			Description:    j.JobDescription,
			EmploymentType: j.EmploymentType,
			ApplyLink:      j.JobApplyLink,
		})
	}

	if err := s.cache.SetJSON(ctx, cacheKey, result, jobsCacheTTL); err != nil {
		log.Printf("Failed to cache job search result: %v", err)
	}
	return result, nil
}

// fallbackJobResult mirrors the canned listings the product ships when
// the provider is unreachable.
func fallbackJobResult(query, location string) *models.JobSearchResult {
	if location == "" {
		location = "Bangalore Urban"
	}
	return &models.JobSearchResult{
		Source: models.SourceFallback,
		Jobs: []models.JobListing{
			{
				ID:             "fallback-1",
				Title:          "Frontend Developer",
				Company:        "Mitigata",
				Location:       location,
				Country:        "India",
				Description:    "Join Mitigata as a Frontend Developer to build innovative web applications using modern JavaScript frameworks and technologies.",
				EmploymentType: "Full-time",
				ApplyLink:      "https://wellfound.com/jobs/3178936-frontend-developer",
			},
			{
				ID:             "fallback-2",
				Title:          "Frontend Developer",
				Company:        "RiverPace",
				Location:       location,
				Country:        "India",
				Description:    "RiverPace is hiring a Frontend Developer to craft responsive, accessible interfaces for our analytics platform.",
				EmploymentType: "Full-time",
				ApplyLink:      "https://wellfound.com/jobs",
			},
			{
				ID:             "fallback-3",
				Title:          fmt.Sprintf("%s Engineer", query),
				Company:        "TechNova",
				Location:       location,
				Country:        "India",
				Description:    fmt.Sprintf("TechNova is looking for a %s engineer to join a fast-moving product team.", query),
				EmploymentType: "Full-time",
				ApplyLink:      "https://www.linkedin.com/jobs",
			},
		},
	}
}
