package duitku

import (
	"crypto/hmac"
	"crypto/md5"
	"encoding/hex"
	"strconv"
)

// Duitku signs each direction with a different field order. Both schemes are
// part of the wire contract and must stay bit-exact.

// RequestSignature signs an outbound invoice request:
// hex(md5(merchantCode + merchantOrderId + amount + apiKey)).
func RequestSignature(merchantCode, merchantOrderID string, amount int64, apiKey string) string {
	sum := md5.Sum([]byte(merchantCode + merchantOrderID + strconv.FormatInt(amount, 10) + apiKey))
	return hex.EncodeToString(sum[:])
}

// CallbackSignature computes the expected signature of an inbound callback:
// hex(md5(merchantCode + amount + merchantOrderId + apiKey)).
// Amount is kept as the raw string the processor sent.
func CallbackSignature(merchantCode, amount, merchantOrderID, apiKey string) string {
	sum := md5.Sum([]byte(merchantCode + amount + merchantOrderID + apiKey))
	return hex.EncodeToString(sum[:])
}

// VerifyCallback compares the received signature in constant time.
func VerifyCallback(merchantCode, amount, merchantOrderID, apiKey, received string) bool {
	expected := CallbackSignature(merchantCode, amount, merchantOrderID, apiKey)
	return hmac.Equal([]byte(expected), []byte(received))
}
