// Package mailer sends lead notifications to the office inbox through a
// JSON webhook provider. Sends are single-attempt and bounded by the client
// timeout: a failed or slow notification never blocks or undoes a booking.
package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/m04kA/SWC-BookingService/internal/domain"
)

// Client notification provider client
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	log        Logger
}

// NewClient creates a mailer client with the given request timeout
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

// SendBookingNotification notifies the office about a new booking
func (c *Client) SendBookingNotification(ctx context.Context, record *domain.BookingRecord) error {
	services := make([]string, 0, len(record.AdditionalServices))
	for _, svc := range record.AdditionalServices {
		services = append(services, string(svc))
	}

	payload := bookingPayload{
		Kind:             "booking",
		BookingReference: record.BookingReference,
		FullName:         record.FullName,
		Email:            record.Email,
		Phone:            record.Phone,
		Address:          record.Address,
		City:             record.City,
		Postcode:         record.Postcode,
		PropertyType:     string(record.PropertyType),
		Frequency:        string(record.Frequency),
		Services:         services,
		ContactMethod:    string(record.ContactMethod),
	}

	if record.RequiresManualQuote {
		payload.EstimatedPrice = "Quote Required"
	} else {
		payload.EstimatedPrice = fmt.Sprintf("£%.2f", record.EstimatedPrice)
	}
	if record.PreferredDate != nil {
		payload.PreferredDate = record.PreferredDate.Format(domain.DateFormat)
	}
	if record.Notes != nil {
		payload.Notes = *record.Notes
	}

	return c.send(ctx, payload)
}

// SendContactNotification notifies the office about a contact-form message
func (c *Client) SendContactNotification(ctx context.Context, req *domain.ContactRequest) error {
	return c.send(ctx, contactPayload{
		Kind:    "contact",
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
	})
}

func (c *Client) send(ctx context.Context, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal payload: %v", ErrInternal, err)
	}

	url := c.baseURL + "/v1/notifications"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	default:
		var provider providerResponse
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		if err := json.Unmarshal(raw, &provider); err != nil || provider.Message == "" {
			provider.Message = string(raw)
		}
		c.log.Warn("mailer: provider returned status=%d message=%q", resp.StatusCode, provider.Message)
		return fmt.Errorf("%w: status %d", ErrRejected, resp.StatusCode)
	}
}
