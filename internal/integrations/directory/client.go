package directory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client клиент для работы со справочником салона (мастера, услуги,
// пользователи). Справочник - отдельный сервис, владеющий расписаниями
// мастеров и каталогом услуг; booking-сервис только читает его.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента справочника
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetProfessional получает мастера по ID
func (c *Client) GetProfessional(ctx context.Context, professionalID int64) (*Professional, error) {
	url := fmt.Sprintf("%s/internal/professionals/%d", c.baseURL, professionalID)

	var prof Professional
	if err := c.getJSON(ctx, url, &prof, ErrProfessionalNotFound); err != nil {
		return nil, err
	}
	return &prof, nil
}

// GetService получает услугу по ID
func (c *Client) GetService(ctx context.Context, serviceID int64) (*Service, error) {
	url := fmt.Sprintf("%s/internal/services/%d", c.baseURL, serviceID)

	var svc Service
	if err := c.getJSON(ctx, url, &svc, ErrServiceNotFound); err != nil {
		return nil, err
	}
	return &svc, nil
}

// GetServices получает несколько услуг за один проход.
// Порядок результата совпадает с порядком идентификаторов.
func (c *Client) GetServices(ctx context.Context, serviceIDs []int64) ([]*Service, error) {
	services := make([]*Service, 0, len(serviceIDs))
	for _, id := range serviceIDs {
		svc, err := c.GetService(ctx, id)
		if err != nil {
			if errors.Is(err, ErrServiceNotFound) {
				return nil, fmt.Errorf("%w: id=%d", ErrServiceNotFound, id)
			}
			return nil, err
		}
		services = append(services, svc)
	}
	return services, nil
}

// GetUser получает пользователя по ID
func (c *Client) GetUser(ctx context.Context, userID int64) (*User, error) {
	url := fmt.Sprintf("%s/internal/users/%d", c.baseURL, userID)

	var user User
	if err := c.getJSON(ctx, url, &user, ErrUserNotFound); err != nil {
		return nil, err
	}
	return &user, nil
}

// getJSON выполняет GET запрос и декодирует JSON ответ.
// 404 транслируется в переданную notFound ошибку.
func (c *Client) getJSON(ctx context.Context, url string, dst interface{}, notFound error) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return notFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return nil
}
