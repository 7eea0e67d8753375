package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"
)

func TestVerifySignature(t *testing.T) {
	orderID := "order_Nxy123"
	paymentID := "pay_Abc456"
	secret := "top-secret"

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	validSig := hex.EncodeToString(mac.Sum(nil))

	if !VerifySignature(orderID, paymentID, validSig, secret) {
		t.Fatalf("expected signature to validate")
	}
	if VerifySignature(orderID, paymentID, validSig, "wrong-secret") {
		t.Fatalf("expected signature under wrong secret to fail")
	}
	if VerifySignature(orderID, "pay_Other", validSig, secret) {
		t.Fatalf("expected signature over different payment to fail")
	}
}

func TestVerifySignatureBitFlip(t *testing.T) {
	sig := SignPayment("order_1", "pay_1", "s3cret")

	// flipping any single character invalidates the signature
	for i := 0; i < len(sig); i++ {
		flipped := []byte(sig)
		if flipped[i] == 'a' {
			flipped[i] = 'b'
		} else {
			flipped[i] = 'a'
		}
		if string(flipped) == sig {
			continue
		}
		if VerifySignature("order_1", "pay_1", string(flipped), "s3cret") {
			t.Fatalf("expected flipped signature at index %d to fail", i)
		}
	}
}

func TestVerifySignatureFailsClosed(t *testing.T) {
	sig := SignPayment("order_1", "pay_1", "s3cret")

	tests := []struct {
		name                        string
		order, payment, sig, secret string
	}{
		{name: "missing order", order: "", payment: "pay_1", sig: sig, secret: "s3cret"},
		{name: "missing payment", order: "order_1", payment: "", sig: sig, secret: "s3cret"},
		{name: "missing signature", order: "order_1", payment: "pay_1", sig: "", secret: "s3cret"},
		{name: "missing secret", order: "order_1", payment: "pay_1", sig: sig, secret: ""},
		{name: "non-hex signature", order: "order_1", payment: "pay_1", sig: "zzzz", secret: "s3cret"},
	}

	for _, tt := range tests {
		if VerifySignature(tt.order, tt.payment, tt.sig, tt.secret) {
			t.Fatalf("%s: expected verification to fail", tt.name)
		}
	}
}

func TestVerifySignatureAcceptsUppercaseHex(t *testing.T) {
	sig := SignPayment("order_1", "pay_1", "s3cret")

	upper := ""
	for _, r := range sig {
		if r >= 'a' && r <= 'f' {
			upper += string(r - 32)
		} else {
			upper += string(r)
		}
	}
	if !VerifySignature("order_1", "pay_1", upper, "s3cret") {
		t.Fatalf("expected uppercase hex signature to validate")
	}
}
