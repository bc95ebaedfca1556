package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"careerhub/models"

	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

// YouTubeClient wraps the YouTube Data API for tutorial lookup and
// course search.
type YouTubeClient struct {
	svc *youtube.Service
}

func NewYouTubeClient(ctx context.Context, apiKey string) (*YouTubeClient, error) {
	if apiKey == "" {
		return nil, errors.New("youtube api key not configured")
	}
	svc, err := youtube.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}
	return &YouTubeClient{svc: svc}, nil
}

// FindTutorial returns a watch link for the first playable video
// matching the query, or an empty string when nothing matches.
func (y *YouTubeClient) FindTutorial(ctx context.Context, query string) (string, error) {
	if y == nil || y.svc == nil {
		return "", errors.New("youtube client not initialized")
	}

	resp, err := y.svc.Search.List([]string{"snippet"}).
		Q(query + " tutorial").
		Type("video").
		MaxResults(5).
		Context(ctx).
		Do()
	if err != nil {
		return "", err
	}

	for _, item := range resp.Items {
		if item.Id != nil && item.Id.VideoId != "" {
			return "https://www.youtube.com/watch?v=" + item.Id.VideoId, nil
		}
	}
	return "", nil
}

// SearchCourses searches videos and playlists for a topic and maps them
// to course recommendations.
func (y *YouTubeClient) SearchCourses(ctx context.Context, query string) ([]models.Course, error) {
	if y == nil || y.svc == nil {
		return nil, errors.New("youtube client not initialized")
	}

	resp, err := y.svc.Search.List([]string{"snippet"}).
		Q(query).
		Type("video", "playlist").
		Order("relevance").
		MaxResults(20).
		Context(ctx).
		Do()
	if err != nil {
		return nil, err
	}

	var videoIDs []string
	for _, item := range resp.Items {
		if item.Id != nil && item.Id.VideoId != "" {
			videoIDs = append(videoIDs, item.Id.VideoId)
		}
	}

	durations := map[string]string{}
	if len(videoIDs) > 0 {
		details, err := y.svc.Videos.List([]string{"contentDetails"}).
			Id(videoIDs...).
			Context(ctx).
			Do()
		if err == nil {
			for _, v := range details.Items {
				durations[v.Id] = formatISODuration(v.ContentDetails.Duration)
			}
		}
	}

	var courses []models.Course
	for _, item := range resp.Items {
		if item.Id == nil || item.Snippet == nil {
			continue
		}

		course := models.Course{
			Title:        item.Snippet.Title,
			Platform:     "YouTube",
			Rating:       "N/A",
			Topics:       []string{query},
			Description:  item.Snippet.Description,
			ChannelTitle: item.Snippet.ChannelTitle,
		}

		if item.Id.PlaylistId != "" {
			course.Type = "playlist"
			course.Duration = "Playlist"
			course.URL = "https://www.youtube.com/playlist?list=" + item.Id.PlaylistId
		} else if item.Id.VideoId != "" {
			course.Type = "video"
			course.Duration = durations[item.Id.VideoId]
			course.URL = "https://www.youtube.com/watch?v=" + item.Id.VideoId
		} else {
			continue
		}

		courses = append(courses, course)
	}

	return courses, nil
}

// formatISODuration turns an ISO 8601 duration (PT1H23M45S) into a
// readable "1:23:45" form.
func formatISODuration(iso string) string {
	if iso == "" {
		return "N/A"
	}

	var hours, minutes, seconds int
	rest := strings.TrimPrefix(iso, "PT")
	if i := strings.Index(rest, "H"); i >= 0 {
		fmt.Sscanf(rest[:i], "%d", &hours)
		rest = rest[i+1:]
	}
	if i := strings.Index(rest, "M"); i >= 0 {
		fmt.Sscanf(rest[:i], "%d", &minutes)
		rest = rest[i+1:]
	}
	if i := strings.Index(rest, "S"); i >= 0 {
		fmt.Sscanf(rest[:i], "%d", &seconds)
	}

	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%d:%02d", minutes, seconds)
}
