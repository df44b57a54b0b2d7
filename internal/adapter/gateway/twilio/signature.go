package twilio

import "github.com/twilio/twilio-go/client"

// SignatureValidator implements ports.SignatureValidator using the
// X-Twilio-Signature scheme (HMAC-SHA1 over URL and sorted form params).
type SignatureValidator struct {
	validator client.RequestValidator
}

// NewSignatureValidator creates a validator keyed by the account auth token.
func NewSignatureValidator(authToken string) *SignatureValidator {
	return &SignatureValidator{validator: client.NewRequestValidator(authToken)}
}

// Validate reports whether signature matches url and params.
func (v *SignatureValidator) Validate(url string, params map[string]string, signature string) bool {
	if signature == "" {
		return false
	}
	return v.validator.Validate(url, params, signature)
}
