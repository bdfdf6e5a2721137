// file: internals/features/finance/payments/service/midtrans_test.go
package service

import (
	"crypto/sha512"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerifyNotificationSignature(t *testing.T) {
	serverKeyForSignature = "SB-Mid-server-test"

	orderID, statusCode, grossAmount := "FEE-abc", "200", "500000.00"
	sum := sha512.Sum512([]byte(orderID + statusCode + grossAmount + serverKeyForSignature))
	valid := hex.EncodeToString(sum[:])

	assert.True(t, VerifyNotificationSignature(orderID, statusCode, grossAmount, valid))
	assert.False(t, VerifyNotificationSignature(orderID, statusCode, grossAmount, "deadbeef"))
	assert.False(t, VerifyNotificationSignature("FEE-other", statusCode, grossAmount, valid))
}
