package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/hackorsnooze/snooze/internal/logging"
	"github.com/hackorsnooze/snooze/internal/models"
)

// requestsPerSecond caps outbound calls to the public API. The limiter
// allows short bursts so a render-triggered batch of calls is not delayed.
const (
	requestsPerSecond = 5
	requestBurst      = 5
)

// RESTClient is the net/http implementation of Client, talking JSON over
// HTTPS to the Hack-or-Snooze API.
type RESTClient struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     logging.Logger
}

var _ Client = (*RESTClient)(nil)

// NewRESTClient builds a client for the API at baseURL. The timeout applies
// to every request end to end.
func NewRESTClient(baseURL string, timeout time.Duration, logger logging.Logger) *RESTClient {
	return &RESTClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		limiter:    rate.NewLimiter(rate.Limit(requestsPerSecond), requestBurst),
		logger:     logger,
	}
}

// wire DTOs

type userRecord struct {
	Username  string         `json:"username"`
	Name      string         `json:"name"`
	CreatedAt time.Time      `json:"createdAt"`
	Favorites []models.Story `json:"favorites"`
	Stories   []models.Story `json:"stories"`
}

// toUser maps a wire record to the model. The server's "stories" field holds
// the user's own stories.
func (r userRecord) toUser(token string) *models.User {
	u := &models.User{
		Username:   r.Username,
		Name:       r.Name,
		CreatedAt:  r.CreatedAt,
		Favorites:  r.Favorites,
		OwnStories: r.Stories,
		LoginToken: token,
	}
	if u.Favorites == nil {
		u.Favorites = []models.Story{}
	}
	if u.OwnStories == nil {
		u.OwnStories = []models.Story{}
	}
	return u
}

// errorBody matches the error payload shapes the API is known to produce.
type errorBody struct {
	Message string `json:"message"`
	Error   struct {
		Message string `json:"message"`
		Title   string `json:"title"`
	} `json:"error"`
}

func (b errorBody) message() string {
	if b.Error.Message != "" {
		return b.Error.Message
	}
	if b.Error.Title != "" {
		return b.Error.Title
	}
	return b.Message
}

// do executes one API request and decodes the 2xx response body into out
// (skipped when out is nil). Transport failures come back wrapped in
// ErrUnavailable; non-2xx responses come back as *Error.
func (c *RESTClient) do(ctx context.Context, method, path string, query url.Values, body any, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error(ctx, "api request failed",
			"method", method, "path", path, "request_id", requestID, "error", err.Error())
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		data, _ := io.ReadAll(resp.Body)
		var eb errorBody
		_ = json.Unmarshal(data, &eb)
		apiErr := &Error{StatusCode: resp.StatusCode, Message: eb.message()}
		c.logger.Warn(ctx, "api request rejected",
			"method", method, "path", path, "request_id", requestID, "status", resp.StatusCode)
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *RESTClient) Stories(ctx context.Context) ([]models.Story, error) {
	var out struct {
		Stories []models.Story `json:"stories"`
	}
	if err := c.do(ctx, http.MethodGet, "/stories", nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Stories, nil
}

func (c *RESTClient) CreateStory(ctx context.Context, token string, story NewStory) (models.Story, error) {
	body := struct {
		Token string   `json:"token"`
		Story NewStory `json:"story"`
	}{Token: token, Story: story}

	var out struct {
		Story models.Story `json:"story"`
	}
	if err := c.do(ctx, http.MethodPost, "/stories", nil, body, &out); err != nil {
		return models.Story{}, err
	}
	return out.Story, nil
}

func (c *RESTClient) DeleteStory(ctx context.Context, token, storyID string) (string, error) {
	query := url.Values{"token": {token}}

	var out struct {
		Message string `json:"message"`
	}
	if err := c.do(ctx, http.MethodDelete, "/stories/"+url.PathEscape(storyID), query, nil, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}

func (c *RESTClient) Signup(ctx context.Context, username, password, name string) (*models.User, error) {
	body := struct {
		User struct {
			Username string `json:"username"`
			Password string `json:"password"`
			Name     string `json:"name"`
		} `json:"user"`
	}{}
	body.User.Username = username
	body.User.Password = password
	body.User.Name = name

	var out struct {
		User  userRecord `json:"user"`
		Token string     `json:"token"`
	}
	if err := c.do(ctx, http.MethodPost, "/signup", nil, body, &out); err != nil {
		return nil, err
	}
	return out.User.toUser(out.Token), nil
}

func (c *RESTClient) Login(ctx context.Context, username, password string) (*models.User, error) {
	body := struct {
		User struct {
			Username string `json:"username"`
			Password string `json:"password"`
		} `json:"user"`
	}{}
	body.User.Username = username
	body.User.Password = password

	var out struct {
		User  userRecord `json:"user"`
		Token string     `json:"token"`
	}
	if err := c.do(ctx, http.MethodPost, "/login", nil, body, &out); err != nil {
		return nil, err
	}
	return out.User.toUser(out.Token), nil
}

func (c *RESTClient) GetUser(ctx context.Context, token, username string) (*models.User, error) {
	query := url.Values{"token": {token}}

	var out struct {
		User userRecord `json:"user"`
	}
	if err := c.do(ctx, http.MethodGet, "/users/"+url.PathEscape(username), query, nil, &out); err != nil {
		return nil, err
	}
	return out.User.toUser(token), nil
}

func (c *RESTClient) favoritePath(username, storyID string) string {
	return "/users/" + url.PathEscape(username) + "/favorites/" + url.PathEscape(storyID)
}

func (c *RESTClient) AddFavorite(ctx context.Context, token, username, storyID string) (string, error) {
	query := url.Values{"token": {token}}

	var out struct {
		Message string `json:"message"`
	}
	if err := c.do(ctx, http.MethodPost, c.favoritePath(username, storyID), query, nil, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}

func (c *RESTClient) RemoveFavorite(ctx context.Context, token, username, storyID string) (string, error) {
	query := url.Values{"token": {token}}

	var out struct {
		Message string `json:"message"`
	}
	if err := c.do(ctx, http.MethodDelete, c.favoritePath(username, storyID), query, nil, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}
