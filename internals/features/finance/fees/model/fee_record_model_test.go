// file: internals/features/finance/fees/model/fee_record_model_test.go
package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func fptr(v float64) *float64 { return &v }

func TestOutstandingAmount(t *testing.T) {
	paid := FeeRecord{FeeRecordAmount: 1000, FeeRecordStatus: FeeStatusPaid, FeeRecordBalanceDue: fptr(400)}
	assert.Zero(t, paid.OutstandingAmount(), "paid rows owe nothing regardless of balance_due")

	partial := FeeRecord{FeeRecordAmount: 1000, FeeRecordStatus: FeeStatusPartial, FeeRecordBalanceDue: fptr(400)}
	assert.Equal(t, 400.0, partial.OutstandingAmount())

	pending := FeeRecord{FeeRecordAmount: 1000, FeeRecordStatus: FeeStatusPending}
	assert.Equal(t, 1000.0, pending.OutstandingAmount(), "nil balance_due means the full amount is due")
}

func TestPaidAmount(t *testing.T) {
	partial := FeeRecord{FeeRecordAmount: 1000, FeeRecordStatus: FeeStatusPartial, FeeRecordBalanceDue: fptr(400)}
	assert.Equal(t, 600.0, partial.PaidAmount())

	pending := FeeRecord{FeeRecordAmount: 1000, FeeRecordStatus: FeeStatusPending}
	assert.Zero(t, pending.PaidAmount())
}

func TestFeeStatusValid(t *testing.T) {
	assert.True(t, FeeStatusPaid.Valid())
	assert.True(t, FeeStatusPartial.Valid())
	assert.True(t, FeeStatusPending.Valid())
	assert.False(t, FeeStatus("refunded").Valid())
}
