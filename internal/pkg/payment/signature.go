package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// VerifySignature recomputes the Razorpay payment signature, an HMAC-SHA256
// hex digest over "orderID|paymentID" keyed with the server-side secret, and
// compares it to the one supplied by the callback. The client never holds the
// secret, so a valid signature proves the gateway confirmed this payment.
//
// Missing fields fail closed, and the comparison runs in constant time via
// hmac.Equal regardless of how many prefix bytes match.
func VerifySignature(orderID, paymentID, signature, secret string) bool {
	orderID = strings.TrimSpace(orderID)
	paymentID = strings.TrimSpace(paymentID)
	sig := strings.TrimSpace(signature)
	if orderID == "" || paymentID == "" || sig == "" || secret == "" {
		return false
	}

	decodedSig, err := hex.DecodeString(strings.ToLower(sig))
	if err != nil {
		return false
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hmac.Equal(mac.Sum(nil), decodedSig)
}

// SignPayment produces the signature the gateway would attach to a successful
// payment. Exported for tests and local tooling; production signatures come
// from Razorpay.
func SignPayment(orderID, paymentID, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}
