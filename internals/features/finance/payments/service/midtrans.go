// file: internals/features/finance/payments/service/midtrans.go
package service

import (
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"

	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"

	paymentModel "uniportal_backend/internals/features/finance/payments/model"
)

var (
	SnapClient snap.Client

	// kept for webhook signature verification
	serverKeyForSignature string
)

// InitMidtrans initialises the Snap client with the server key.
func InitMidtrans(serverKey string, useProd bool) {
	env := midtrans.Sandbox
	if useProd {
		env = midtrans.Production
	}
	serverKeyForSignature = serverKey
	SnapClient.New(serverKey, env)
}

// VerifyNotificationSignature checks the gateway's signature_key, which is
// sha512(order_id + status_code + gross_amount + server_key).
func VerifyNotificationSignature(orderID, statusCode, grossAmount, signatureKey string) bool {
	sum := sha512.Sum512([]byte(orderID + statusCode + grossAmount + serverKeyForSignature))
	expected := hex.EncodeToString(sum[:])
	return subtle.ConstantTimeCompare([]byte(expected), []byte(signatureKey)) == 1
}

// GenerateSnapToken creates a Snap checkout token for one fee payment.
func GenerateSnapToken(p paymentModel.Payment, payerName, payerEmail string) (string, error) {
	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  p.PaymentOrderID,
			GrossAmt: int64(p.PaymentAmount),
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: payerName,
			Email: payerEmail,
		},
	}

	resp, err := SnapClient.CreateTransaction(req)
	if err != nil {
		return "", err
	}
	return resp.Token, nil
}
