package bookingapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/patrickmn/go-cache"
)

const courtsCacheKey = "courts"

type Client struct {
	baseURL string
	client  *http.Client
	cache   *cache.Cache
}

type BookingAPI interface {
	GetCourts(ctx context.Context) ([]Court, error)
	GetSlots(ctx context.Context, courtID int, date string) ([]Slot, error)
	GetBookings(ctx context.Context, limit int) ([]Booking, error)
	Checkout(ctx context.Context, items []CheckoutItem) (*CheckoutResult, error)
}

// NewClient creates a client for the remote booking API. The courts list
// is cached for courtsTTL; slot availability is always fetched fresh so a
// just-booked slot never shows as free from a stale cache.
func NewClient(baseURL string, courtsTTL time.Duration) *Client {
	client := &http.Client{
		Timeout: 10 * time.Second,
	}
	return &Client{
		baseURL: baseURL,
		client:  client,
		cache:   cache.New(courtsTTL, 5*time.Minute),
	}
}

func (c *Client) GetCourts(ctx context.Context) ([]Court, error) {
	cachedCourts, found := c.cache.Get(courtsCacheKey)

	if found {
		return cachedCourts.([]Court), nil
	}

	var courts []Court

	if err := c.getJSON(ctx, &courts, nil, "courts"); err != nil {
		return nil, err
	}

	c.cache.Set(courtsCacheKey, courts, cache.DefaultExpiration)

	return courts, nil
}

func (c *Client) GetSlots(ctx context.Context, courtID int, date string) ([]Slot, error) {
	query := url.Values{"date": {date}}

	var slots []Slot

	if err := c.getJSON(ctx, &slots, query, "courts", strconv.Itoa(courtID), "slots"); err != nil {
		return nil, err
	}

	return slots, nil
}

func (c *Client) GetBookings(ctx context.Context, limit int) ([]Booking, error) {
	query := url.Values{"limit": {strconv.Itoa(limit)}}

	var bookings []Booking

	if err := c.getJSON(ctx, &bookings, query, "bookings"); err != nil {
		return nil, err
	}

	return bookings, nil
}

func (c *Client) Checkout(ctx context.Context, items []CheckoutItem) (*CheckoutResult, error) {
	checkoutURL, err := c.getURL("checkout")

	if err != nil {
		return nil, err
	}

	body, err := json.Marshal(map[string][]CheckoutItem{"items": items})

	if err != nil {
		return nil, fmt.Errorf("failed to marshal body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", checkoutURL, bytes.NewReader(body))

	if err != nil {
		return nil, fmt.Errorf("failed create new request: %w", err)
	}

	c.setHeaders(req)

	res, err := c.client.Do(req)

	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}

	defer res.Body.Close()

	bodyBytes, readErr := io.ReadAll(res.Body)

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		if readErr != nil {
			return nil, fmt.Errorf("request failed with status %d; also failed reading body: %w", res.StatusCode, readErr)
		}
		return nil, checkoutError(res.StatusCode, bodyBytes)
	}

	if readErr != nil {
		return nil, fmt.Errorf("failed to read body: %w", readErr)
	}

	var result CheckoutResult

	if err := json.Unmarshal(bodyBytes, &result); err != nil {
		return nil, fmt.Errorf("failed reading body: %w", err)
	}

	return &result, nil
}

// checkoutError extracts the server's error message from a non-2xx
// checkout response. Falls back to the HTTP status text when the body
// carries no usable message.
func checkoutError(status int, body []byte) *APIError {
	var payload struct {
		Error string `json:"error"`
	}

	if err := json.Unmarshal(body, &payload); err == nil && payload.Error != "" {
		return &APIError{Status: status, Message: payload.Error}
	}

	return &APIError{Status: status, Message: http.StatusText(status)}
}

func (c *Client) getJSON(ctx context.Context, dest any, query url.Values, elem ...string) error {
	reqURL, err := c.getURL(elem...)

	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, http.NoBody)

	if err != nil {
		return fmt.Errorf("failed create new request: %w", err)
	}

	if query != nil {
		req.URL.RawQuery = query.Encode()
	}

	c.setHeaders(req)

	res, err := c.client.Do(req)

	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}

	defer res.Body.Close()

	bodyBytes, readErr := io.ReadAll(res.Body)

	if res.StatusCode != http.StatusOK {
		if readErr != nil {
			return fmt.Errorf("request failed with status %d; also failed reading body: %w", res.StatusCode, readErr)
		}
		return fmt.Errorf("request failed with status '%v' and body:\n%v", res.StatusCode, string(bodyBytes))
	}

	if readErr != nil {
		return fmt.Errorf("failed to read body: %w", readErr)
	}

	if err := json.Unmarshal(bodyBytes, dest); err != nil {
		return fmt.Errorf("failed reading body: %w", err)
	}

	return nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
}

func (c *Client) getURL(elem ...string) (string, error) {
	clientURL, err := url.JoinPath(c.baseURL, elem...)

	if err != nil {
		return "", fmt.Errorf("failed to build URL: %w", err)
	}

	return clientURL, nil
}
