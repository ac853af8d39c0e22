package apiclient

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// PostType classifies a feed post.
type PostType string

const (
	PostText      PostType = "text"
	PostMonologue PostType = "monologue"
	PostReel      PostType = "reel"
	PostHeadshot  PostType = "headshot"
	PostResume    PostType = "resume"
)

// PostResponse is a feed post as served by the API.
type PostResponse struct {
	ID             string            `json:"id"`
	UserID         string            `json:"user_id"`
	AuthorName     string            `json:"author_name"`
	AuthorHeadshot string            `json:"author_headshot,omitempty"`
	Type           PostType          `json:"type"`
	Content        string            `json:"content"`
	MediaURL       string            `json:"media_url,omitempty"`
	LikesCount     int               `json:"likes_count"`
	IsLiked        bool              `json:"is_liked"`
	Comments       []CommentResponse `json:"comments"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

// CommentResponse is a comment attached to a post.
type CommentResponse struct {
	ID             string    `json:"id"`
	UserID         string    `json:"user_id"`
	AuthorName     string    `json:"author_name"`
	AuthorHeadshot string    `json:"author_headshot,omitempty"`
	Content        string    `json:"content"`
	CreatedAt      time.Time `json:"created_at"`
}

// LikeResponse reports the like state after toggling.
type LikeResponse struct {
	PostID     string `json:"post_id"`
	IsLiked    bool   `json:"is_liked"`
	LikesCount int    `json:"likes_count"`
}

// UploadResponse points at an uploaded media file.
type UploadResponse struct {
	FileURL string `json:"file_url"`
}

// CreatePostParams describes a new feed post.
type CreatePostParams struct {
	Content  string   `json:"content"`
	Type     PostType `json:"type"`
	MediaURL string   `json:"media_url,omitempty"`
}

// UpdatePostParams patches an existing post. Nil fields are untouched.
type UpdatePostParams struct {
	Content  *string `json:"content,omitempty"`
	MediaURL *string `json:"media_url,omitempty"`
}

type createdResponse struct {
	ID string `json:"id"`
}

// CreatePost publishes a post and returns its id.
func (c *Client) CreatePost(ctx context.Context, p CreatePostParams) (string, error) {
	if p.Type == "" {
		p.Type = PostText
	}
	var out createdResponse
	if err := c.do(ctx, http.MethodPost, "/posts", p, &out); err != nil {
		return "", err
	}
	return out.ID, nil
}

// Posts returns a page of the community feed.
func (c *Client) Posts(ctx context.Context, skip, limit int) ([]PostResponse, error) {
	var out []PostResponse
	if err := c.do(ctx, http.MethodGet, "/posts"+pageQuery(skip, limit), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Post fetches a single post.
func (c *Client) Post(ctx context.Context, postID string) (*PostResponse, error) {
	var out PostResponse
	if err := c.do(ctx, http.MethodGet, "/posts/"+url.PathEscape(postID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdatePost applies the patch to the caller's own post.
func (c *Client) UpdatePost(ctx context.Context, postID string, p UpdatePostParams) error {
	return c.do(ctx, http.MethodPut, "/posts/"+url.PathEscape(postID), p, nil)
}

// DeletePost removes the caller's own post.
func (c *Client) DeletePost(ctx context.Context, postID string) error {
	return c.do(ctx, http.MethodDelete, "/posts/"+url.PathEscape(postID), nil, nil)
}

// UserPosts returns a page of one user's posts.
func (c *Client) UserPosts(ctx context.Context, userID string, skip, limit int) ([]PostResponse, error) {
	path := "/users/" + url.PathEscape(userID) + "/posts" + pageQuery(skip, limit)
	var out []PostResponse
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ToggleLike flips the caller's like on a post.
func (c *Client) ToggleLike(ctx context.Context, postID string) (*LikeResponse, error) {
	var out LikeResponse
	if err := c.do(ctx, http.MethodPost, "/posts/"+url.PathEscape(postID)+"/like", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateComment attaches a comment to a post.
func (c *Client) CreateComment(ctx context.Context, postID, content string) (*CommentResponse, error) {
	body := struct {
		Content string `json:"content"`
	}{content}

	var out CommentResponse
	if err := c.do(ctx, http.MethodPost, "/posts/"+url.PathEscape(postID)+"/comments", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteComment removes the caller's own comment.
func (c *Client) DeleteComment(ctx context.Context, commentID string) error {
	return c.do(ctx, http.MethodDelete, "/comments/"+url.PathEscape(commentID), nil, nil)
}

// UploadFile streams a media file to the API as multipart form data and
// returns where it was stored. Byte handling past framing is the backend's
// concern.
func (c *Client) UploadFile(ctx context.Context, filename string, r io.Reader) (*UploadResponse, error) {
	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)

	go func() {
		part, err := mw.CreateFormFile("file", filename)
		if err != nil {
			pw.CloseWithError(err)
			return
		}
		if _, err := io.Copy(part, r); err != nil {
			pw.CloseWithError(err)
			return
		}
		pw.CloseWithError(mw.Close())
	}()

	req, err := c.newRequest(ctx, http.MethodPost, "/upload", pr)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("upload %s: %w", filename, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, c.errorFromResponse(resp)
	}

	var out UploadResponse
	if err := decodeJSON(resp.Body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func pageQuery(skip, limit int) string {
	q := url.Values{}
	q.Set("skip", strconv.Itoa(skip))
	q.Set("limit", strconv.Itoa(limit))
	return "?" + q.Encode()
}
