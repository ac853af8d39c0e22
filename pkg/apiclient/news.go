package apiclient

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// NewsItemResponse is an industry news article as served by the API.
type NewsItemResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Summary     string    `json:"summary"`
	Source      string    `json:"source"`
	URL         string    `json:"url"`
	ImageURL    string    `json:"image_url,omitempty"`
	Category    string    `json:"category"`
	PublishedAt time.Time `json:"published_at"`
	FetchedAt   time.Time `json:"fetched_at"`
	AIInsights  string    `json:"ai_insights,omitempty"`
}

// NewsQuery narrows a news listing.
type NewsQuery struct {
	Skip     int
	Limit    int
	Category string
}

// News returns a page of news articles.
func (c *Client) News(ctx context.Context, q NewsQuery) ([]NewsItemResponse, error) {
	vals := url.Values{}
	vals.Set("skip", strconv.Itoa(q.Skip))
	vals.Set("limit", strconv.Itoa(q.Limit))
	if q.Category != "" {
		vals.Set("category", q.Category)
	}

	var out []NewsItemResponse
	if err := c.do(ctx, http.MethodGet, "/news?"+vals.Encode(), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// NewsArticle fetches a single article.
func (c *Client) NewsArticle(ctx context.Context, articleID string) (*NewsItemResponse, error) {
	var out NewsItemResponse
	if err := c.do(ctx, http.MethodGet, "/news/"+url.PathEscape(articleID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// NewsCategories lists the available article categories.
func (c *Client) NewsCategories(ctx context.Context) ([]string, error) {
	var out []string
	if err := c.do(ctx, http.MethodGet, "/news/categories", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// FetchNews asks the backend to pull fresh articles from its sources.
func (c *Client) FetchNews(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/news/fetch", nil, nil)
}
