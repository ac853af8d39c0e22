package apiclient

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
)

// WorksheetResponse describes one downloadable worksheet in the catalog.
type WorksheetResponse struct {
	ID          string `json:"id"`
	Category    string `json:"category"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// WorksheetDownload is a streamed worksheet PDF. Callers own Content and
// must close it.
type WorksheetDownload struct {
	Filename string
	Content  io.ReadCloser
}

// Worksheets lists the downloadable worksheet catalog.
func (c *Client) Worksheets(ctx context.Context) ([]WorksheetResponse, error) {
	var out []WorksheetResponse
	if err := c.do(ctx, http.MethodGet, "/worksheets", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// DownloadWorksheet streams one worksheet PDF. The filename comes from the
// Content-Disposition header, falling back to "<itemID>.pdf".
func (c *Client) DownloadWorksheet(ctx context.Context, category, itemID string) (*WorksheetDownload, error) {
	path := "/worksheets/" + url.PathEscape(category) + "/" + url.PathEscape(itemID)
	req, err := c.newRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download worksheet %s/%s: %w", category, itemID, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer resp.Body.Close()
		return nil, c.errorFromResponse(resp)
	}

	filename := itemID + ".pdf"
	if cd := resp.Header.Get("Content-Disposition"); cd != "" {
		if _, params, err := mime.ParseMediaType(cd); err == nil && params["filename"] != "" {
			filename = params["filename"]
		}
	}

	return &WorksheetDownload{Filename: filename, Content: resp.Body}, nil
}
