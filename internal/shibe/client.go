package shibe

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	// DefaultBaseURL - адрес публичного API с картинками.
	DefaultBaseURL = "https://shibe.online/api"
	// DefaultTimeout - общий таймаут запроса к upstream.
	DefaultTimeout = 17 * time.Second
)

var (
	// ErrRequest - сетевая ошибка, таймаут или не-2xx ответ upstream.
	ErrRequest = errors.New("shibe request failed")
	// ErrDecode - тело ответа не является JSON-массивом строк.
	ErrDecode = errors.New("shibe response decode failed")
)

// Client ходит в upstream API за ссылками на картинки.
// Безопасен для конкурентного использования.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient создаёт клиента. Пустой baseURL заменяется на DefaultBaseURL,
// nil client - на клиента с DefaultTimeout.
func NewClient(baseURL string, client *http.Client) *Client {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultBaseURL
	}
	if client == nil {
		client = &http.Client{Timeout: DefaultTimeout}
	}
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  client,
	}
}

// Fetch реализует app.Fetcher: запрашивает картинки и превращает их в PhotoResult.
func (c *Client) Fetch(ctx context.Context, query Query) ([]PhotoResult, error) {
	urls, err := c.Request(ctx, query)
	if err != nil {
		return nil, err
	}
	return MapURLs(urls), nil
}

// Request выполняет один GET <base>/<endpoint>?count=<n> без повторов.
// count ограничивается сверху MaxCount, сам query не меняется.
func (c *Client) Request(ctx context.Context, query Query) ([]string, error) {
	count := min(query.Count, MaxCount)

	log.Debug().
		Str("endpoint", query.Endpoint.String()).
		Int("count", count).
		Msg("Requesting images")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.requestURL(query.Endpoint, count), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %w", ErrRequest, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: do request: %w", ErrRequest, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: unexpected status %d", ErrRequest, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %w", ErrRequest, err)
	}

	return decodeURLs(body)
}

// decodeURLs принимает только JSON-массив строк. null вместо массива
// или вместо элемента - ошибка декодирования, а не пустая строка.
func decodeURLs(body []byte) ([]string, error) {
	var items []*string
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	if items == nil {
		return nil, fmt.Errorf("%w: expected JSON array, got %q", ErrDecode, strings.TrimSpace(string(body)))
	}

	urls := make([]string, 0, len(items))
	for i, item := range items {
		if item == nil {
			return nil, fmt.Errorf("%w: element %d is null", ErrDecode, i)
		}
		urls = append(urls, *item)
	}
	return urls, nil
}

func (c *Client) requestURL(ep Endpoint, count int) string {
	params := url.Values{}
	params.Set("count", strconv.Itoa(count))
	return c.baseURL + "/" + ep.String() + "?" + params.Encode()
}
