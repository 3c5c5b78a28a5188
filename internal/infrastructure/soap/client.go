package soap

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/erp/connector/internal/domain/erp"
	"github.com/erp/connector/internal/infrastructure/config"
	"go.uber.org/zap"
)

// maxResponseBytes caps how much of a response body is read into memory.
const maxResponseBytes = 4 << 20 // 4 MB

// Client is a SOAP 1.1 client over HTTP POST. Every failure below the
// business level (connection errors, non-2xx statuses, malformed envelopes,
// SOAP faults) is returned wrapping erp.ErrTransport so callers can classify
// with errors.Is.
type Client struct {
	endpoint   string
	username   string
	password   string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a new SOAP client from the ERP endpoint configuration.
func NewClient(cfg *config.ERPConfig, logger *zap.Logger) *Client {
	return &Client{
		endpoint: cfg.Endpoint,
		username: cfg.Username,
		password: cfg.Password,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger,
	}
}

// Call performs one SOAP request-response round trip. The payload's root
// element name is the operation name; the response body element is decoded
// into out.
func (c *Client) Call(ctx context.Context, action string, payload any, out any) error {
	payloadXML, err := xml.Marshal(payload)
	if err != nil {
		return fmt.Errorf("soap: marshal %s request: %w", action, err)
	}

	envelope, err := xml.Marshal(newRequestEnvelope(payloadXML))
	if err != nil {
		return fmt.Errorf("soap: marshal %s envelope: %w", action, err)
	}

	body := append([]byte(xml.Header), envelope...)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("soap: build %s request: %w", action, err)
	}
	req.Header.Set("Content-Type", "text/xml; charset=utf-8")
	req.Header.Set("SOAPAction", fmt.Sprintf("%q", serviceNamespace+"#"+action))
	if c.username != "" {
		req.SetBasicAuth(c.username, c.password)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("soap: %s call failed: %w: %v", action, erp.ErrTransport, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("soap: %s read response: %w: %v", action, erp.ErrTransport, err)
	}

	c.logger.Debug("soap call completed",
		zap.String("action", action),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)))

	var respEnvelope responseEnvelope
	if unmarshalErr := xml.Unmarshal(respBody, &respEnvelope); unmarshalErr != nil {
		return fmt.Errorf("soap: %s malformed envelope: %w: %v", action, erp.ErrTransport, unmarshalErr)
	}

	// Faults arrive with status 500; classify the fault before the status
	if fault := respEnvelope.Body.Fault; fault != nil {
		return fmt.Errorf("soap: %s fault %s: %w: %s", action, fault.Code, erp.ErrTransport, fault.String)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("soap: %s unexpected status %d: %w", action, resp.StatusCode, erp.ErrTransport)
	}

	if err := xml.Unmarshal(respEnvelope.Body.Payload, out); err != nil {
		return fmt.Errorf("soap: %s malformed response body: %w: %v", action, erp.ErrTransport, err)
	}
	return nil
}
