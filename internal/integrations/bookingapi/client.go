package bookingapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/alurfia/ALK-BookingService/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с Booking API
// Booking API владеет хранилищем комнат и бронирований; этот сервис
// оперирует только снимками данных на дату запроса
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента Booking API
func NewClient(baseURL, apiKey string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", c.apiKey)
	return req, nil
}

// ListRooms получает список комнат
func (c *Client) ListRooms(ctx context.Context) ([]*domain.Room, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/rooms", nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var rooms []Room
	if err := json.NewDecoder(resp.Body).Decode(&rooms); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	result := make([]*domain.Room, len(rooms))
	for i := range rooms {
		result[i] = rooms[i].ToDomain()
	}
	return result, nil
}

// GetRoom получает комнату по ID
func (c *Client) GetRoom(ctx context.Context, roomID string) (*domain.Room, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/rooms/"+url.PathEscape(roomID), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return nil, ErrRoomNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var room Room
	if err := json.NewDecoder(resp.Body).Decode(&room); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return room.ToDomain(), nil
}

// ListBookings получает бронирования по фильтру
// Для расписания на дату D запрашиваются даты D и D+1: хвост вчерашней смены
// числится на следующих календарных сутках
func (c *Client) ListBookings(ctx context.Context, filter domain.BookingsFilter) ([]*domain.BookingRecord, error) {
	q := url.Values{}
	if filter.RoomID != nil {
		q.Set("roomId", *filter.RoomID)
	}
	if filter.StartDate != nil {
		q.Set("startDate", filter.StartDate.Format(domain.DateFormat))
	}
	if filter.EndDate != nil {
		q.Set("endDate", filter.EndDate.Format(domain.DateFormat))
	}
	if filter.Status != nil {
		q.Set("status", string(*filter.Status))
	}
	if filter.IncludeInactive {
		q.Set("includeInactive", "true")
	}

	path := "/bookings"
	if encoded := q.Encode(); encoded != "" {
		path += "?" + encoded
	}

	req, err := c.newRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var bookings []Booking
	if err := json.NewDecoder(resp.Body).Decode(&bookings); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	result := make([]*domain.BookingRecord, 0, len(bookings))
	for i := range bookings {
		record, err := bookings[i].ToDomain()
		if err != nil {
			return nil, err
		}
		result = append(result, record)
	}
	return result, nil
}

// GetBooking получает бронирование по ID
func (c *Client) GetBooking(ctx context.Context, bookingID string) (*domain.BookingRecord, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/bookings/"+url.PathEscape(bookingID), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return nil, ErrBookingNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var booking Booking
	if err := json.NewDecoder(resp.Body).Decode(&booking); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return booking.ToDomain()
}

// CreateBooking создает бронирование (статус pending до подтверждения оплаты)
func (c *Client) CreateBooking(ctx context.Context, createReq *CreateBookingRequest) (*domain.BookingRecord, error) {
	payload, err := json.Marshal(createReq)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/bookings", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		// Продолжаем обработку
	case http.StatusConflict:
		return nil, ErrConflict
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var booking Booking
	if err := json.NewDecoder(resp.Body).Decode(&booking); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return booking.ToDomain()
}

// UpdateBookingStatus переводит бронирование в новый статус
func (c *Client) UpdateBookingStatus(ctx context.Context, bookingID string, status domain.BookingStatus, reason *string) (*domain.BookingRecord, error) {
	payload, err := json.Marshal(&UpdateStatusRequest{Status: string(status), Reason: reason})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	req, err := c.newRequest(ctx, http.MethodPatch,
		"/bookings/"+url.PathEscape(bookingID)+"/status", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return nil, ErrBookingNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var booking Booking
	if err := json.NewDecoder(resp.Body).Decode(&booking); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return booking.ToDomain()
}
