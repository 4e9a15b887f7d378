package accounting

import (
	"testing"

	"github.com/SscSPs/homeledger/internal/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitEqually(t *testing.T) {
	t.Run("payer included in the division", func(t *testing.T) {
		splits, err := SplitEqually(d("100"), []string{"a", "b"}, true)
		require.NoError(t, err)
		require.Len(t, splits, 2)
		for _, s := range splits {
			assert.True(t, d("33.33").Equal(s.Amount.Round(2)), "got %s", s.Amount)
		}
		assert.True(t, splits[0].Amount.Equal(splits[1].Amount))
	})

	t.Run("participants only", func(t *testing.T) {
		splits, err := SplitEqually(d("90"), []string{"a", "b", "c"}, false)
		require.NoError(t, err)
		for _, s := range splits {
			assert.True(t, d("30").Equal(s.Amount))
		}
	})

	t.Run("no participants", func(t *testing.T) {
		_, err := SplitEqually(d("90"), nil, true)
		vErr, ok := apperrors.AsValidationError(err)
		require.True(t, ok)
		assert.Equal(t, apperrors.CodeNoParticipants, vErr.Code)
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})

	t.Run("non-positive amount", func(t *testing.T) {
		_, err := SplitEqually(d("0"), []string{"a"}, true)
		vErr, ok := apperrors.AsValidationError(err)
		require.True(t, ok)
		assert.Equal(t, apperrors.CodeInvalidAmount, vErr.Code)
	})
}

func TestSplitCustom(t *testing.T) {
	tests := []struct {
		name     string
		total    string
		amounts  []CustomAmount
		wantCode apperrors.ValidationCode
	}{
		{
			name:     "sums beyond tolerance",
			total:    "100",
			amounts:  []CustomAmount{{ContactID: "a", Amount: "60"}, {ContactID: "b", Amount: "41"}},
			wantCode: apperrors.CodeSumMismatch,
		},
		{
			name:    "exact sum",
			total:   "100",
			amounts: []CustomAmount{{ContactID: "a", Amount: "60"}, {ContactID: "b", Amount: "40"}},
		},
		{
			name:    "within tolerance",
			total:   "100",
			amounts: []CustomAmount{{ContactID: "a", Amount: "33.33"}, {ContactID: "b", Amount: "33.33"}, {ContactID: "c", Amount: "33.33"}},
		},
		{
			name:    "blank counts as zero",
			total:   "25",
			amounts: []CustomAmount{{ContactID: "a", Amount: "25"}, {ContactID: "b", Amount: ""}},
		},
		{
			name:     "non-positive total",
			total:    "0",
			amounts:  []CustomAmount{{ContactID: "a", Amount: "0"}},
			wantCode: apperrors.CodeInvalidTotal,
		},
		{
			name:     "unparseable amount",
			total:    "10",
			amounts:  []CustomAmount{{ContactID: "a", Amount: "ten"}},
			wantCode: apperrors.CodeInvalidAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			splits, err := SplitCustom(d(tt.total), tt.amounts)
			if tt.wantCode != "" {
				vErr, ok := apperrors.AsValidationError(err)
				require.True(t, ok, "expected validation error, got %v", err)
				assert.Equal(t, tt.wantCode, vErr.Code)
				assert.Nil(t, splits)
				return
			}
			require.NoError(t, err)
			require.Len(t, splits, len(tt.amounts))
			for i, a := range tt.amounts {
				assert.Equal(t, a.ContactID, splits[i].ContactID)
			}
		})
	}
}
