package telegram

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const DefaultBaseURL = "https://api.telegram.org"

// Client talks to the Telegram Bot API over plain HTTPS + JSON.
type Client struct {
	http  *resty.Client
	token string
}

func NewClient(baseURL string, token string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	r := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json")

	return &Client{http: r, token: token}
}

func (c *Client) GetMe(ctx context.Context) (*User, error) {
	var user User
	if err := c.call(ctx, "getMe", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) SendMessage(ctx context.Context, req SendMessageRequest) (*Message, error) {
	var msg Message
	if err := c.call(ctx, "sendMessage", req, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

func (c *Client) EditMessageText(ctx context.Context, req EditMessageTextRequest) error {
	return c.call(ctx, "editMessageText", req, nil)
}

func (c *Client) AnswerCallbackQuery(ctx context.Context, req AnswerCallbackQueryRequest) error {
	return c.call(ctx, "answerCallbackQuery", req, nil)
}

func (c *Client) GetUpdates(ctx context.Context, req GetUpdatesRequest) ([]Update, error) {
	var updates []Update
	if err := c.call(ctx, "getUpdates", req, &updates); err != nil {
		return nil, err
	}
	return updates, nil
}

func (c *Client) call(ctx context.Context, method string, payload any, result any) error {

	r := c.http.R().SetContext(ctx)
	if payload != nil {
		r.SetBody(payload)
	}

	response, err := r.Post(fmt.Sprintf("/bot%s/%s", c.token, method))
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		// transport errors carry the URL, and the URL carries the token
		return fmt.Errorf("%s request failed: %s", method, c.redact(err.Error()))
	}

	var body apiResponse
	if err := json.Unmarshal(response.Body(), &body); err != nil {
		switch {
		case response.StatusCode() == http.StatusTooManyRequests:
			return fmt.Errorf("%w", &ErrThrottle{RetryAfter: retryAfterHeader(response)})
		case response.StatusCode() >= http.StatusInternalServerError:
			return fmt.Errorf("%s: %w", method, ErrUnknown)
		default:
			return fmt.Errorf("%s: json parsing error %w", method, err)
		}
	}

	if !body.OK {
		if body.Parameters != nil && body.Parameters.RetryAfter > 0 {
			return fmt.Errorf("%w", &ErrThrottle{RetryAfter: body.Parameters.RetryAfter})
		}
		if response.StatusCode() == http.StatusTooManyRequests {
			return fmt.Errorf("%w", &ErrThrottle{RetryAfter: retryAfterHeader(response)})
		}
		code := body.ErrorCode
		if code == 0 {
			code = response.StatusCode()
		}
		return fmt.Errorf("%s: %w", method, &APIError{Code: code, Description: body.Description})
	}

	if result == nil || len(body.Result) == 0 {
		return nil
	}
	if err := json.Unmarshal(body.Result, result); err != nil {
		return fmt.Errorf("%s: json parsing error %w", method, err)
	}
	return nil
}

func (c *Client) redact(s string) string {
	if c.token == "" {
		return s
	}
	return strings.ReplaceAll(s, c.token, "<token>")
}

func retryAfterHeader(response *resty.Response) int {
	retry, err := strconv.Atoi(response.Header().Get("Retry-After"))
	if err != nil || retry <= 0 {
		return 1
	}
	return retry
}

// IsThrottle returns how long to wait when err is a throttle reply.
func IsThrottle(err error) (time.Duration, bool) {
	var errThrottle *ErrThrottle
	if errors.As(err, &errThrottle) {
		return time.Duration(errThrottle.RetryAfter) * time.Second, true
	}
	return 0, false
}
