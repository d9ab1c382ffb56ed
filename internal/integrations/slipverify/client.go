package slipverify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с внешним сервисом проверки платежных слипов
// Сервис распознает QR на изображении слипа и возвращает сумму и время платежа
type Client struct {
	baseURL    string
	secretKey  string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента проверки слипов
func NewClient(baseURL, secretKey string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL:   baseURL,
		secretKey: secretKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// VerifySlipImage отправляет изображение слипа на распознавание
func (c *Client) VerifySlipImage(ctx context.Context, filename string, file io.Reader) (*VerificationResponse, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create form file: %v", ErrInternal, err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, fmt.Errorf("%w: failed to copy slip image: %v", ErrInternal, err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("%w: failed to finalize form: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/api/verify-slip/qr-image/info", &body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+c.secretKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return nil, ErrUnreadableSlip
	default:
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}

	var result VerificationResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &result, nil
}
