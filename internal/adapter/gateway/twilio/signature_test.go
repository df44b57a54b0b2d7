package twilio

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/base64"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

// sign reproduces the provider's signing scheme for fixtures.
func sign(token, url string, params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	payload := url
	for _, k := range keys {
		payload += k + params[k]
	}
	mac := hmac.New(sha1.New, []byte(token))
	mac.Write([]byte(payload))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

func TestSignatureValidator(t *testing.T) {
	const token = "auth-token-123"
	url := "https://dashboard.example.com/api/v1/webhooks/twilio/status"
	params := map[string]string{
		"MessageSid":    "SM1",
		"MessageStatus": "delivered",
	}
	v := NewSignatureValidator(token)

	t.Run("valid signature", func(t *testing.T) {
		assert.True(t, v.Validate(url, params, sign(token, url, params)))
	})

	t.Run("tampered params", func(t *testing.T) {
		sig := sign(token, url, params)
		tampered := map[string]string{"MessageSid": "SM1", "MessageStatus": "failed"}
		assert.False(t, v.Validate(url, tampered, sig))
	})

	t.Run("wrong token", func(t *testing.T) {
		assert.False(t, v.Validate(url, params, sign("other", url, params)))
	})

	t.Run("missing signature", func(t *testing.T) {
		assert.False(t, v.Validate(url, params, ""))
	})
}
