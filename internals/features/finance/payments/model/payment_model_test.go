// file: internals/features/finance/payments/model/payment_model_test.go
package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDerivedStatePredicates(t *testing.T) {
	cases := []struct {
		name                     string
		paid, exempt, withPoints bool
		wantLedger, wantPoint    bool
	}{
		{"미납", false, false, false, false, false},
		{"현금납부", true, false, false, true, false},
		{"포인트납부", true, false, true, false, true},
		{"면제", true, true, false, false, false},
		{"면제+포인트", true, true, true, false, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := PaymentModel{
				PaymentIsPaid:         tc.paid,
				PaymentIsExempt:       tc.exempt,
				PaymentPaidWithPoints: tc.withPoints,
			}
			require.Equal(t, tc.wantLedger, p.LedgerShouldExist())
			require.Equal(t, tc.wantPoint, p.PointShouldExist())
			// 둘이 동시에 참일 수는 없다
			require.False(t, p.LedgerShouldExist() && p.PointShouldExist())
		})
	}
}

func TestBeforeSave_DerivesMonthFromDate(t *testing.T) {
	p := PaymentModel{
		PaymentDate:  time.Date(2025, 7, 23, 0, 0, 0, 0, time.UTC),
		PaymentMonth: "1999-12", // 손으로 넣은 값은 무시된다
	}
	require.NoError(t, p.BeforeSave(nil))
	require.Equal(t, "2025-07", p.PaymentMonth)
}
