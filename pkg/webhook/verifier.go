package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

// SignatureHeader is the header carrying the webhook signature, matched
// case-insensitively.
const SignatureHeader = "X-Webhook-Signature"

// Verifier decides whether an inbound request is authentic. Implementations
// are pure: no I/O, no side effects, deterministic. A false return is the
// contract for rejection; verification never produces an error.
type Verifier interface {
	Verify(signature string, body []byte) bool
}

// SecretVerifier is the current upstream scheme: the header must carry the
// shared secret verbatim. The body is not covered by the check, which is why
// Verifier stays pluggable — HMACVerifier is the drop-in upgrade.
type SecretVerifier struct {
	secret string
}

// NewSecretVerifier builds the plain shared-secret verifier.
func NewSecretVerifier(secret string) *SecretVerifier {
	return &SecretVerifier{secret: secret}
}

// Verify reports whether signature equals the configured secret exactly.
// It fails closed: an empty signature or an empty secret never verifies.
func (v *SecretVerifier) Verify(signature string, _ []byte) bool {
	if signature == "" || v.secret == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(signature), []byte(v.secret)) == 1
}

// HMACVerifier checks a hex-encoded HMAC-SHA256 of the raw body keyed by the
// shared secret. It requires the adapter to hand over the wire bytes
// unmodified.
type HMACVerifier struct {
	secret []byte
}

// NewHMACVerifier builds the HMAC-SHA256 verifier.
func NewHMACVerifier(secret string) *HMACVerifier {
	return &HMACVerifier{secret: []byte(secret)}
}

func (v *HMACVerifier) Verify(signature string, body []byte) bool {
	if signature == "" || len(v.secret) == 0 {
		return false
	}
	expected, err := hex.DecodeString(signature)
	if err != nil {
		return false
	}
	mac := hmac.New(sha256.New, v.secret)
	mac.Write(body)
	return hmac.Equal(expected, mac.Sum(nil))
}

// Sign computes the signature HMACVerifier expects for body. Useful for
// tests and for local webhook simulation.
func (v *HMACVerifier) Sign(body []byte) string {
	mac := hmac.New(sha256.New, v.secret)
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}
