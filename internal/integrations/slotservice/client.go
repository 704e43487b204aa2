package slotservice

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/jporcarn/dralia/internal/domain"
)

const metricsTarget = "slotservice"

// Client клиент внешнего API доступности слотов.
// Оба вызова идут с Basic auth и ограничены таймаутом httpClient;
// отмена контекста вызывающей стороны прерывает исходящий запрос.
type Client struct {
	baseURL    string
	username   string
	password   string
	httpClient *http.Client
	log        Logger
	metrics    MetricsObserver
}

// NewClient создает новый экземпляр клиента slot service
func NewClient(baseURL, username, password string, timeout time.Duration, log Logger, metrics MetricsObserver) *Client {
	return &Client{
		baseURL:  baseURL,
		username: username,
		password: password,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log:     log,
		metrics: metrics,
	}
}

// GetWeeklyAvailability получает сырую доступность недели по дате её понедельника.
// Operation path: GetWeeklyAvailability/{yyyyMMdd}
func (c *Client) GetWeeklyAvailability(ctx context.Context, monday time.Time) (*WeeklyAvailabilityDTO, error) {
	operationURL := fmt.Sprintf("%s/GetWeeklyAvailability/%s",
		c.baseURL, url.PathEscape(monday.Format(domain.MondayKeyFormat)))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, operationURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.SetBasicAuth(c.username, c.password)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.observe("GetWeeklyAvailability", "transport_error", start)
		c.log.Error("slotservice: GetWeeklyAvailability transport error: %v", err)
		return nil, c.transportError(err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		c.observe("GetWeeklyAvailability", "not_found", start)
		return nil, ErrWeekNotFound
	case http.StatusUnauthorized:
		c.observe("GetWeeklyAvailability", "unauthorized", start)
		return nil, ErrUnauthorized
	default:
		c.observe("GetWeeklyAvailability", "unexpected_status", start)
		body, _ := io.ReadAll(resp.Body)
		c.log.Error("slotservice: GetWeeklyAvailability unexpected status %d", resp.StatusCode)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrUnavailable, resp.StatusCode, string(body))
	}

	var week WeeklyAvailabilityDTO
	if err := json.NewDecoder(resp.Body).Decode(&week); err != nil {
		c.observe("GetWeeklyAvailability", "decode_error", start)
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	c.observe("GetWeeklyAvailability", "ok", start)
	return &week, nil
}

// TakeSlot передает команду резервирования апстриму.
// Апстрим - единственный авторитет по двойному бронированию: конфликт
// возвращается как ErrSlotAlreadyTaken и не ретраится.
func (c *Client) TakeSlot(ctx context.Context, takeSlot *TakeSlotDTO) error {
	operationURL := fmt.Sprintf("%s/TakeSlot", c.baseURL)

	body, err := json.Marshal(takeSlot)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal request body: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, operationURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.SetBasicAuth(c.username, c.password)
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.observe("TakeSlot", "transport_error", start)
		c.log.Error("slotservice: TakeSlot transport error: %v", err)
		return c.transportError(err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		c.observe("TakeSlot", "ok", start)
		return nil
	case resp.StatusCode == http.StatusConflict:
		c.observe("TakeSlot", "conflict", start)
		return ErrSlotAlreadyTaken
	case resp.StatusCode == http.StatusUnauthorized:
		c.observe("TakeSlot", "unauthorized", start)
		return ErrUnauthorized
	default:
		c.observe("TakeSlot", "unexpected_status", start)
		respBody, _ := io.ReadAll(resp.Body)
		c.log.Error("slotservice: TakeSlot unexpected status %d", resp.StatusCode)
		return fmt.Errorf("%w: reservation rejected with status %d: %s", ErrUnavailable, resp.StatusCode, string(respBody))
	}
}

// transportError различает таймаут и прочие транспортные сбои
func (c *Client) transportError(err error) error {
	var urlErr *url.Error

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	case errors.As(err, &urlErr) && urlErr.Timeout():
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	default:
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
}

func (c *Client) observe(operation, outcome string, start time.Time) {
	if c.metrics == nil {
		return
	}
	c.metrics.ObserveIntegrationCall(metricsTarget, operation, outcome, time.Since(start))
}
