package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"assetnotifier/internal/domain/entity"
	"assetnotifier/pkg/errors"
)

// MailAPIService - mail delivery implementation over the gateway's HTTP API
type MailAPIService struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewMailAPIService(baseURL, apiKey string) *MailAPIService {
	return &MailAPIService{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type mailAPIError struct {
	Message string `json:"message"`
}

func (s *MailAPIService) SendEmail(ctx context.Context, req *entity.NotificationRequest) error {
	log.Printf("Submitting mail request: template=%s, recipients=%d", req.TemplateName, len(req.Recipients))

	payload, err := json.Marshal(req)
	if err != nil {
		return errors.Internal("Failed to encode mail request", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/api/v1/notifications/mail", bytes.NewBuffer(payload))
	if err != nil {
		return errors.Internal("Failed to build mail request", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if s.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+s.apiKey)
	}

	resp, err := s.httpClient.Do(httpReq)
	if err != nil {
		return errors.Unavailable("Mail delivery subsystem unreachable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		var apiErr mailAPIError
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Message != "" {
			return errors.Internal(fmt.Sprintf("Mail delivery rejected request (%d): %s", resp.StatusCode, apiErr.Message), nil)
		}
		return errors.Internal(fmt.Sprintf("Mail delivery rejected request (%d)", resp.StatusCode), nil)
	}

	log.Printf("Mail request accepted: template=%s", req.TemplateName)
	return nil
}
