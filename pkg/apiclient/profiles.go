package apiclient

import (
	"context"
	"net/http"
	"net/url"
	"time"
)

// ProfileResponse is an actor profile as served by the API.
type ProfileResponse struct {
	ID     string `json:"id"`
	UserID string `json:"user_id"`

	// Basic info
	Name              string `json:"name"`
	Pronouns          string `json:"pronouns,omitempty"`
	AgeRange          string `json:"age_range"`
	Location          string `json:"location"`
	WillingToRelocate bool   `json:"willing_to_relocate"`

	// Physical profile
	Height    string `json:"height,omitempty"`
	Build     string `json:"build,omitempty"`
	EyeColor  string `json:"eye_color,omitempty"`
	HairColor string `json:"hair_color,omitempty"`
	Ethnicity string `json:"ethnicity,omitempty"`

	// Training and experience
	ActingSchools   []string `json:"acting_schools"`
	Workshops       []string `json:"workshops"`
	Coaches         []string `json:"coaches"`
	StageExperience bool     `json:"stage_experience"`
	FilmExperience  bool     `json:"film_experience"`
	SpecialSkills   []string `json:"special_skills"`
	UnionStatus     string   `json:"union_status,omitempty"`

	// Interests and aspirations
	PreferredGenres []string `json:"preferred_genres"`
	CareerGoals     string   `json:"career_goals,omitempty"`

	// Media
	Headshots   []string `json:"headshots"`
	Resume      string   `json:"resume,omitempty"`
	DemoReel    string   `json:"demo_reel,omitempty"`
	SocialLinks []string `json:"social_links"`

	Bio                  string    `json:"bio,omitempty"`
	Tagline              string    `json:"tagline,omitempty"`
	IsPublic             bool      `json:"is_public"`
	CompletionPercentage int       `json:"completion_percentage,omitempty"`
	ProfileURL           string    `json:"profile_url,omitempty"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// ProfileParams carries the profile builder's fields. For updates, zero
// values are sent as-is; use the typed client from a full profile snapshot.
type ProfileParams struct {
	Name              string   `json:"name"`
	Pronouns          string   `json:"pronouns,omitempty"`
	AgeRange          string   `json:"age_range"`
	Location          string   `json:"location"`
	WillingToRelocate bool     `json:"willing_to_relocate"`
	Height            string   `json:"height,omitempty"`
	Build             string   `json:"build,omitempty"`
	EyeColor          string   `json:"eye_color,omitempty"`
	HairColor         string   `json:"hair_color,omitempty"`
	Ethnicity         string   `json:"ethnicity,omitempty"`
	ActingSchools     []string `json:"acting_schools,omitempty"`
	Workshops         []string `json:"workshops,omitempty"`
	Coaches           []string `json:"coaches,omitempty"`
	StageExperience   bool     `json:"stage_experience"`
	FilmExperience    bool     `json:"film_experience"`
	SpecialSkills     []string `json:"special_skills,omitempty"`
	UnionStatus       string   `json:"union_status,omitempty"`
	PreferredGenres   []string `json:"preferred_genres,omitempty"`
	CareerGoals       string   `json:"career_goals,omitempty"`
	Headshots         []string `json:"headshots,omitempty"`
	Resume            string   `json:"resume,omitempty"`
	DemoReel          string   `json:"demo_reel,omitempty"`
	SocialLinks       []string `json:"social_links,omitempty"`
	Bio               string   `json:"bio,omitempty"`
	Tagline           string   `json:"tagline,omitempty"`
	IsPublic          bool     `json:"is_public"`
}

// InsightsResponse carries generated profile feedback.
type InsightsResponse struct {
	ProfileID string `json:"profile_id"`
	Insights  string `json:"insights"`
}

// CreateProfile creates the caller's actor profile and returns its id.
func (c *Client) CreateProfile(ctx context.Context, p ProfileParams) (string, error) {
	var out createdResponse
	if err := c.do(ctx, http.MethodPost, "/profiles", p, &out); err != nil {
		return "", err
	}
	return out.ID, nil
}

// Profile fetches a profile by its id.
func (c *Client) Profile(ctx context.Context, profileID string) (*ProfileResponse, error) {
	var out ProfileResponse
	if err := c.do(ctx, http.MethodGet, "/profiles/"+url.PathEscape(profileID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UserProfile fetches the profile belonging to a user.
func (c *Client) UserProfile(ctx context.Context, userID string) (*ProfileResponse, error) {
	var out ProfileResponse
	if err := c.do(ctx, http.MethodGet, "/profiles/user/"+url.PathEscape(userID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProfile replaces the caller's profile fields.
func (c *Client) UpdateProfile(ctx context.Context, profileID string, p ProfileParams) error {
	return c.do(ctx, http.MethodPut, "/profiles/"+url.PathEscape(profileID), p, nil)
}

// ProfileInsights fetches generated feedback for a profile.
func (c *Client) ProfileInsights(ctx context.Context, profileID string) (*InsightsResponse, error) {
	var out InsightsResponse
	if err := c.do(ctx, http.MethodGet, "/profiles/"+url.PathEscape(profileID)+"/ai-insights", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UserProfileInsights fetches generated feedback for a user's profile.
func (c *Client) UserProfileInsights(ctx context.Context, userID string) (*InsightsResponse, error) {
	var out InsightsResponse
	if err := c.do(ctx, http.MethodGet, "/profiles/user/"+url.PathEscape(userID)+"/ai-insights", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
