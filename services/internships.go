package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"careerhub/internal/cache"
	"careerhub/models"

	"github.com/PuerkitoBio/goquery"
)

const internshipsCacheTTL = time.Hour

const techieHelpURL = "https://www.techiehelp.in/careers/training-internships"

// InternshipsService aggregates internship listings from the Adzuna API
// and the TechieHelp training page.
type InternshipsService struct {
	appID      string
	appKey     string
	country    string
	httpClient *http.Client
	cache      *cache.Cache
}

func NewInternshipsService(appID, appKey, country string, c *cache.Cache) *InternshipsService {
	return &InternshipsService{
		appID:      appID,
		appKey:     appKey,
		country:    country,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		cache:      c,
	}
}

// SearchAdzuna queries the Adzuna jobs API for internships matching the
// query. Failures degrade to the fallback set.
func (s *InternshipsService) SearchAdzuna(ctx context.Context, query string) (*models.JobSearchResult, error) {
	cacheKey := "internships:adzuna:" + query
	var cached models.JobSearchResult
	if hit, err := s.cache.GetJSON(ctx, cacheKey, &cached); err == nil && hit {
		return &cached, nil
	}

	if s.appID == "" || s.appKey == "" {
		log.Println("Adzuna API not configured, serving fallback internships")
		return fallbackInternships(), nil
	}

	endpoint := fmt.Sprintf(
		"https://api.adzuna.com/v1/api/jobs/%s/search/1?app_id=%s&app_key=%s&what=%s&results_per_page=20",
		s.country, s.appID, s.appKey, url.QueryEscape(query+" internship"),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		log.Printf("Adzuna request failed: %v", err)
		return fallbackInternships(), nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("Adzuna API error: %s", resp.Status)
		return fallbackInternships(), nil
	}

	var payload struct {
		Results []struct {
			ID      string `json:"id"`
			Title   string `json:"title"`
			Company struct {
				DisplayName string `json:"display_name"`
			} `json:"company"`
			Location struct {
				DisplayName string `json:"display_name"`
			} `json:"location"`
			Description string `json:"description"`
			RedirectURL string `json:"redirect_url"`
		} `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		log.Printf("Failed to decode Adzuna response: %v", err)
		return fallbackInternships(), nil
	}
	if len(payload.Results) == 0 {
		return fallbackInternships(), nil
	}

	result := &models.JobSearchResult{Source: models.SourceLive}
	for _, r := range payload.Results {
		result.Jobs = append(result.Jobs, models.JobListing{
			ID:             "adzuna-" + r.ID,
			Title:          r.Title,
			Company:        r.Company.DisplayName,
			Location:       r.Location.DisplayName,
			Description:    truncate(r.Description, 300),
			EmploymentType: "Internship",
			ApplyLink:      r.RedirectURL,
		})
	}

	if err := s.cache.SetJSON(ctx, cacheKey, result, internshipsCacheTTL); err != nil {
		log.Printf("Failed to cache internships: %v", err)
	}
	return result, nil
}

// FetchTechieHelp scrapes the TechieHelp training page for internship
// listings.
func (s *InternshipsService) FetchTechieHelp(ctx context.Context) (*models.JobSearchResult, error) {
	cacheKey := "internships:techiehelp"
	var cached models.JobSearchResult
	if hit, err := s.cache.GetJSON(ctx, cacheKey, &cached); err == nil && hit {
		return &cached, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, techieHelpURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		log.Printf("TechieHelp fetch failed: %v", err)
		return fallbackInternships(), nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("TechieHelp page error: %s", resp.Status)
		return fallbackInternships(), nil
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		log.Printf("Failed to parse TechieHelp page: %v", err)
		return fallbackInternships(), nil
	}

	result := &models.JobSearchResult{Source: models.SourceLive}
	doc.Find(".internship-item, .job-item, .career-item").Each(func(i int, sel *goquery.Selection) {
		title := strings.TrimSpace(sel.Find("h3, .title, .job-title").First().Text())
		if title == "" {
			return
		}

		company := strings.TrimSpace(sel.Find(".company, .organization").First().Text())
		if company == "" {
			company = "TechieHelp"
		}
		location := strings.TrimSpace(sel.Find(".location, .city").First().Text())
		if location == "" {
			location = "Remote"
		}
		description := strings.TrimSpace(sel.Find(".description, .details, p").First().Text())
		if description == "" {
			description = "Training and internship opportunity"
		}

		applyLink, _ := sel.Find("a").First().Attr("href")
		switch {
		case applyLink == "":
			applyLink = techieHelpURL
		case !strings.HasPrefix(applyLink, "http"):
			applyLink = "https://www.techiehelp.in" + applyLink
		}

		result.Jobs = append(result.Jobs, models.JobListing{
			ID:             fmt.Sprintf("techiehelp-%d", i),
			Title:          title,
			Company:        company,
			Location:       location,
			Description:    truncate(description, 300),
			EmploymentType: "Internship",
			ApplyLink:      applyLink,
		})
	})

	if len(result.Jobs) == 0 {
		return fallbackInternships(), nil
	}

	if err := s.cache.SetJSON(ctx, cacheKey, result, internshipsCacheTTL); err != nil {
		log.Printf("Failed to cache internships: %v", err)
	}
	return result, nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

func fallbackInternships() *models.JobSearchResult {
	return &models.JobSearchResult{
		Source: models.SourceFallback,
		Jobs: []models.JobListing{
			{
				ID:             "fallback-intern-1",
				Title:          "Web Development Internship",
				Company:        "TechieHelp",
				Location:       "Remote",
				Description:    "Hands-on training internship building full-stack web applications with mentorship and project reviews.",
				EmploymentType: "Internship",
				ApplyLink:      techieHelpURL,
			},
			{
				ID:             "fallback-intern-2",
				Title:          "Data Science Internship",
				Company:        "TechieHelp",
				Location:       "Remote",
				Description:    "Training internship covering Python, data analysis and machine learning fundamentals with real datasets.",
				EmploymentType: "Internship",
				ApplyLink:      techieHelpURL,
			},
		},
	}
}
