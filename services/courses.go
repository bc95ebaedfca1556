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

const coursesCacheTTL = time.Hour

// CoursesService recommends courses from YouTube and the Coursera
// catalog.
type CoursesService struct {
	youtube    *YouTubeClient
	httpClient *http.Client
	cache      *cache.Cache
}

func NewCoursesService(yt *YouTubeClient, c *cache.Cache) *CoursesService {
	return &CoursesService{
		youtube:    yt,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		cache:      c,
	}
}

// SearchYouTube finds course videos and playlists for a topic, falling
// back to the canned set when the API is unavailable.
func (s *CoursesService) SearchYouTube(ctx context.Context, query string) (*models.CourseSearchResult, error) {
	cacheKey := "courses:youtube:" + query
	var cached models.CourseSearchResult
	if hit, err := s.cache.GetJSON(ctx, cacheKey, &cached); err == nil && hit {
		return &cached, nil
	}

	courses, err := s.youtube.SearchCourses(ctx, query)
	if err != nil {
		log.Printf("YouTube course search failed: %v", err)
		return fallbackCourses(query), nil
	}
	if len(courses) == 0 {
		return fallbackCourses(query), nil
	}

	result := &models.CourseSearchResult{Courses: courses, Source: models.SourceLive}
	if err := s.cache.SetJSON(ctx, cacheKey, result, coursesCacheTTL); err != nil {
		log.Printf("Failed to cache course search: %v", err)
	}
	return result, nil
}

// SearchCoursera queries the public Coursera catalog for certifications
// matching the query.
func (s *CoursesService) SearchCoursera(ctx context.Context, query string) (*models.CourseSearchResult, error) {
	cacheKey := "courses:coursera:" + query
	var cached models.CourseSearchResult
	if hit, err := s.cache.GetJSON(ctx, cacheKey, &cached); err == nil && hit {
		return &cached, nil
	}

	endpoint := fmt.Sprintf(
		"https://api.coursera.org/api/courses.v1?q=search&query=%s&limit=20&fields=name,slug,description",
		url.QueryEscape(query),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		log.Printf("Coursera request failed: %v", err)
		return fallbackCourses(query), nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("Coursera API error: %s", resp.Status)
		return fallbackCourses(query), nil
	}

	var payload struct {
		Elements []struct {
			Name        string `json:"name"`
			Slug        string `json:"slug"`
			Description string `json:"description"`
		} `json:"elements"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		log.Printf("Failed to decode Coursera response: %v", err)
		return fallbackCourses(query), nil
	}
	if len(payload.Elements) == 0 {
		return fallbackCourses(query), nil
	}

	result := &models.CourseSearchResult{Source: models.SourceLive}
	for _, e := range payload.Elements {
		result.Courses = append(result.Courses, models.Course{
			Title:       e.Name,
			Platform:    "Coursera",
			Rating:      "N/A",
			Duration:    "Self-paced",
			URL:         "https://www.coursera.org/learn/" + e.Slug,
			Topics:      []string{query},
			Description: e.Description,
			Type:        "course",
		})
	}

	if err := s.cache.SetJSON(ctx, cacheKey, result, coursesCacheTTL); err != nil {
		log.Printf("Failed to cache Coursera search: %v", err)
	}
	return result, nil
}

func fallbackCourses(query string) *models.CourseSearchResult {
	return &models.CourseSearchResult{
		Source: models.SourceFallback,
		Courses: []models.Course{
			{
				Title:        fmt.Sprintf("%s Full Course", query),
				Platform:     "YouTube",
				Rating:       "4.8",
				Duration:     "10 hours",
				URL:          "https://www.youtube.com/results?search_query=" + url.QueryEscape(query+" full course"),
				Topics:       []string{query},
				Description:  fmt.Sprintf("Complete %s course for beginners through advanced topics.", query),
				ChannelTitle: "freeCodeCamp.org",
				Type:         "video",
			},
			{
				Title:       fmt.Sprintf("%s Specialization", query),
				Platform:    "Coursera",
				Rating:      "4.7",
				Duration:    "Self-paced",
				URL:         "https://www.coursera.org/search?query=" + url.QueryEscape(query),
				Topics:      []string{query},
				Description: fmt.Sprintf("University-backed %s specialization with hands-on projects.", query),
				Type:        "course",
			},
		},
	}
}
