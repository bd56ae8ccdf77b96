package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/mlukin/go-expense-tracker/models"
)

type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type httpServerAdapter struct {
	client *resty.Client

	mu    sync.RWMutex
	token string
}

func NewHTTPServerAdapter(cfg HTTPClientConfig) ServerAdapter {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &httpServerAdapter{client: cli}
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) Register(ctx context.Context, request models.RegisterRequest) (models.AuthResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		Post("/api/auth/register")
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	var auth models.AuthResponse
	if err = json.Unmarshal(resp.Body(), &auth); err != nil {
		return models.AuthResponse{}, fmt.Errorf("decode register response: %w", err)
	}

	h.SetToken(auth.Token)
	return auth, nil
}

func (h *httpServerAdapter) Login(ctx context.Context, request models.LoginRequest) (models.AuthResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		Post("/api/auth/login")
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	var auth models.AuthResponse
	if err = json.Unmarshal(resp.Body(), &auth); err != nil {
		return models.AuthResponse{}, fmt.Errorf("decode login response: %w", err)
	}

	h.SetToken(auth.Token)
	return auth, nil
}

func (h *httpServerAdapter) UpdateProfile(ctx context.Context, request models.UpdateProfileRequest) (models.AuthResponse, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		Put("/api/auth/update")
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("update profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	var auth models.AuthResponse
	if err = json.Unmarshal(resp.Body(), &auth); err != nil {
		return models.AuthResponse{}, fmt.Errorf("decode update profile response: %w", err)
	}

	// the server rotates the token on profile updates
	h.SetToken(auth.Token)
	return auth, nil
}

func (h *httpServerAdapter) ListExpenses(ctx context.Context, query models.ExpenseQuery) ([]models.Expense, error) {
	req := h.authedRequest(ctx)
	if query.Category != "" {
		req.SetQueryParam("category", string(query.Category))
	}
	if query.Year != 0 {
		req.SetQueryParam("year", strconv.Itoa(query.Year))
	}
	if query.Month != 0 {
		req.SetQueryParam("month", strconv.Itoa(query.Month))
	}
	if query.Page != 0 {
		req.SetQueryParam("page", strconv.Itoa(query.Page))
	}
	if query.Limit != 0 {
		req.SetQueryParam("limit", strconv.Itoa(query.Limit))
	}

	resp, err := req.Get("/api/expenses")
	if err != nil {
		return nil, fmt.Errorf("list expenses request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var expenses []models.Expense
	if err = json.Unmarshal(resp.Body(), &expenses); err != nil {
		return nil, fmt.Errorf("decode list expenses response: %w", err)
	}

	return expenses, nil
}

func (h *httpServerAdapter) ExpenseSummary(ctx context.Context) (models.ExpenseSummary, error) {
	resp, err := h.authedRequest(ctx).Get("/api/expenses/summary")
	if err != nil {
		return models.ExpenseSummary{}, fmt.Errorf("expense summary request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ExpenseSummary{}, err
	}

	var summary models.ExpenseSummary
	if err = json.Unmarshal(resp.Body(), &summary); err != nil {
		return models.ExpenseSummary{}, fmt.Errorf("decode expense summary response: %w", err)
	}

	return summary, nil
}

func (h *httpServerAdapter) CreateExpense(ctx context.Context, request models.CreateExpenseRequest) (models.Expense, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		Post("/api/expenses")
	if err != nil {
		return models.Expense{}, fmt.Errorf("create expense request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Expense{}, err
	}

	var created models.Expense
	if err = json.Unmarshal(resp.Body(), &created); err != nil {
		return models.Expense{}, fmt.Errorf("decode create expense response: %w", err)
	}

	return created, nil
}

func (h *httpServerAdapter) UpdateExpense(ctx context.Context, expenseID int64, update models.ExpenseUpdate) (models.Expense, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(update).
		Put("/api/expenses/" + strconv.FormatInt(expenseID, 10))
	if err != nil {
		return models.Expense{}, fmt.Errorf("update expense request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Expense{}, err
	}

	var updated models.Expense
	if err = json.Unmarshal(resp.Body(), &updated); err != nil {
		return models.Expense{}, fmt.Errorf("decode update expense response: %w", err)
	}

	return updated, nil
}

func (h *httpServerAdapter) DeleteExpense(ctx context.Context, expenseID int64) (models.DeleteExpenseResponse, error) {
	resp, err := h.authedRequest(ctx).
		Delete("/api/expenses/" + strconv.FormatInt(expenseID, 10))
	if err != nil {
		return models.DeleteExpenseResponse{}, fmt.Errorf("delete expense request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.DeleteExpenseResponse{}, err
	}

	var deleted models.DeleteExpenseResponse
	if err = json.Unmarshal(resp.Body(), &deleted); err != nil {
		return models.DeleteExpenseResponse{}, fmt.Errorf("decode delete expense response: %w", err)
	}

	return deleted, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	message := serverMessage(resp.Body())
	if message == "" {
		message = http.StatusText(resp.StatusCode())
	}

	switch resp.StatusCode() {
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, message)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, message)
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, message)
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, message)
	}

	return fmt.Errorf("http %d: %s", resp.StatusCode(), message)
}

// serverMessage extracts the "message" field of the server's uniform JSON
// error body. Returns "" when the body is not in that shape.
func serverMessage(body []byte) string {
	var er models.ErrorResponse
	if err := json.Unmarshal(body, &er); err != nil {
		return strings.TrimSpace(string(body))
	}
	return er.Message
}
