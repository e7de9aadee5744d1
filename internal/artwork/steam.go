package artwork

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"
)

var ErrNoArtwork = errors.New("no artwork found")

type SteamSearchItem struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type SteamSearchResponse struct {
	Items []SteamSearchItem `json:"items"`
}

// Client talks to the Steam store search API and its image CDN.
type Client struct {
	HTTP     *http.Client
	StoreURL string
	CDNURL   string
}

func NewClient() *Client {
	return &Client{
		HTTP:     &http.Client{Timeout: 15 * time.Second},
		StoreURL: "https://store.steampowered.com",
		CDNURL:   "https://steamcdn-a.akamaihd.net",
	}
}

func (c *Client) get(ctx context.Context, u string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	return c.HTTP.Do(req)
}

// Search looks up games on the Steam store by name.
func (c *Client) Search(ctx context.Context, name string) ([]SteamSearchItem, error) {
	q := url.Values{}
	q.Set("term", name)
	q.Set("l", "english")
	q.Set("cc", "US")
	resp, err := c.get(ctx, c.StoreURL+"/api/storesearch/?"+q.Encode())
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to search steam: %d", resp.StatusCode)
	}

	var searchResp SteamSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&searchResp); err != nil {
		return nil, err
	}
	return searchResp.Items, nil
}

// Download saves the portrait library image for appID to destPath, falling
// back to the header image.
func (c *Client) Download(ctx context.Context, appID int, destPath string) error {
	urls := []string{
		fmt.Sprintf("%s/steam/apps/%d/library_600x900.jpg", c.CDNURL, appID),
		fmt.Sprintf("%s/steam/apps/%d/header.jpg", c.CDNURL, appID),
	}
	for _, u := range urls {
		ok, err := c.fetch(ctx, u, destPath)
		if err != nil {
			return err
		}
		if ok {
			return nil
		}
	}
	return fmt.Errorf("app %d: %w", appID, ErrNoArtwork)
}

func (c *Client) fetch(ctx context.Context, u, destPath string) (bool, error) {
	resp, err := c.get(ctx, u)
	if err != nil {
		if ctx.Err() != nil {
			return false, ctx.Err()
		}
		return false, nil
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return false, nil
	}

	out, err := os.Create(destPath)
	if err != nil {
		return false, err
	}
	if _, err := io.Copy(out, resp.Body); err != nil {
		out.Close()
		os.Remove(destPath)
		return false, nil
	}
	return true, out.Close()
}
