package middleware

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"io"

	"github.com/labstack/echo/v4"

	"assetnotifier/pkg/errors"
	"assetnotifier/pkg/response"
)

const signatureHeader = "X-Webhook-Signature"

type WebhookMiddleware struct {
	secret []byte
}

func NewWebhookMiddleware(secret string) *WebhookMiddleware {
	return &WebhookMiddleware{
		secret: []byte(secret),
	}
}

// VerifySignature authenticates repository trigger calls: the header must
// carry the hex HMAC-SHA256 of the raw request body.
func (m *WebhookMiddleware) VerifySignature(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		signature := c.Request().Header.Get(signatureHeader)
		if signature == "" {
			return response.Error(c, errors.Unauthorized("Missing webhook signature", nil))
		}

		body, err := io.ReadAll(c.Request().Body)
		if err != nil {
			return response.Error(c, errors.BadRequest("Unable to read request body", err))
		}
		// The handler still needs the body for binding.
		c.Request().Body = io.NopCloser(bytes.NewReader(body))

		mac := hmac.New(sha256.New, m.secret)
		mac.Write(body)
		expected := hex.EncodeToString(mac.Sum(nil))

		if !hmac.Equal([]byte(expected), []byte(signature)) {
			return response.Error(c, errors.Unauthorized("Invalid webhook signature", nil))
		}

		return next(c)
	}
}
