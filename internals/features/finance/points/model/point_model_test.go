// file: internals/features/finance/points/model/point_model_test.go
package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSignedDelta(t *testing.T) {
	earn := PointModel{PointType: PointTypeEarn, PointAmount: 1000}
	bonus := PointModel{PointType: PointTypeBonus, PointAmount: 500}
	use := PointModel{PointType: PointTypeUse, PointAmount: 300}

	require.Equal(t, int64(1000), earn.SignedDelta())
	require.Equal(t, int64(500), bonus.SignedDelta())
	require.Equal(t, int64(-300), use.SignedDelta())

	// 합산하면 순 잔액
	require.Equal(t, int64(1200), earn.SignedDelta()+bonus.SignedDelta()+use.SignedDelta())
}
