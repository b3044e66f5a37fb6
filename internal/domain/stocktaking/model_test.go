package stocktaking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Haarizz/inventory-registries/internal/core/apperror"
	"github.com/Haarizz/inventory-registries/internal/core/id"
)

func TestVariance(t *testing.T) {
	tests := []struct {
		name          string
		systemStock   int
		physicalStock int
		want          int
	}{
		{"shortage", 100, 95, -5},
		{"surplus", 100, 110, 10},
		{"exact match", 50, 50, 0},
		{"empty shelf", 30, 0, -30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Variance(tt.systemStock, tt.physicalStock))
		})
	}
}

func TestNextStatus(t *testing.T) {
	tests := []struct {
		name     string
		current  Status
		event    Event
		want     Status
		wantCode string
	}{
		{"draft approve", StatusDraft, EventApprove, StatusApproved, ""},
		{"draft reject", StatusDraft, EventReject, StatusRejected, ""},
		{"approved apply", StatusApproved, EventApply, StatusApplied, ""},

		{"draft apply", StatusDraft, EventApply, "", apperror.CodeNotApproved},
		{"rejected apply", StatusRejected, EventApply, "", apperror.CodeNotApproved},
		{"applied apply", StatusApplied, EventApply, "", apperror.CodeAlreadyApplied},

		{"approved approve", StatusApproved, EventApprove, "", apperror.CodeInvalidTransition},
		{"approved reject", StatusApproved, EventReject, "", apperror.CodeInvalidTransition},
		{"applied approve", StatusApplied, EventApprove, "", apperror.CodeInvalidTransition},
		{"applied reject", StatusApplied, EventReject, "", apperror.CodeInvalidTransition},
		{"rejected approve", StatusRejected, EventApprove, "", apperror.CodeInvalidTransition},
		{"rejected reject", StatusRejected, EventReject, "", apperror.CodeInvalidTransition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, err := NextStatus(tt.current, tt.event)
			if tt.wantCode == "" {
				require.NoError(t, err)
				assert.Equal(t, tt.want, next)
				return
			}
			require.Error(t, err)
			assert.True(t, apperror.HasCode(err, tt.wantCode), "got %v", err)
		})
	}
}

func TestStatusIsTerminal(t *testing.T) {
	assert.False(t, StatusDraft.IsTerminal())
	assert.False(t, StatusApproved.IsTerminal())
	assert.True(t, StatusApplied.IsTerminal())
	assert.True(t, StatusRejected.IsTerminal())
}

func TestNewStockTaking(t *testing.T) {
	productID := id.New()
	st := NewStockTaking(productID, 100, 95, "alice")

	assert.Equal(t, productID, st.ProductID)
	assert.Equal(t, 100, st.SystemStock)
	assert.Equal(t, 95, st.PhysicalStock)
	assert.Equal(t, -5, st.Variance)
	assert.Equal(t, StatusDraft, st.Status)
	assert.Equal(t, "alice", st.CreatedBy)
	assert.True(t, st.Active)
	assert.Nil(t, st.ApprovedBy)
	assert.NoError(t, st.Validate(context.Background()))
}

func TestStockTakingValidate(t *testing.T) {
	ctx := context.Background()

	t.Run("missing product", func(t *testing.T) {
		st := NewStockTaking(id.Nil(), 10, 10, "alice")
		err := st.Validate(ctx)
		assert.True(t, apperror.HasCode(err, apperror.CodeValidation))
	})

	t.Run("negative physical stock", func(t *testing.T) {
		st := NewStockTaking(id.New(), 10, 0, "alice")
		st.PhysicalStock = -1
		st.Variance = Variance(st.SystemStock, st.PhysicalStock)
		err := st.Validate(ctx)
		assert.True(t, apperror.HasCode(err, apperror.CodeValidation))
	})

	t.Run("tampered variance", func(t *testing.T) {
		st := NewStockTaking(id.New(), 10, 8, "alice")
		st.Variance = 0
		err := st.Validate(ctx)
		assert.True(t, apperror.HasCode(err, apperror.CodeValidation))
	})
}

func TestStockTakingApprove(t *testing.T) {
	st := NewStockTaking(id.New(), 10, 8, "alice")
	version := st.Version

	require.NoError(t, st.Approve("bob"))

	assert.Equal(t, StatusApproved, st.Status)
	require.NotNil(t, st.ApprovedBy)
	assert.Equal(t, "bob", *st.ApprovedBy)
	assert.Equal(t, version+1, st.Version)

	// second approval is invalid
	err := st.Approve("carol")
	assert.True(t, apperror.HasCode(err, apperror.CodeInvalidTransition))
	assert.Equal(t, "bob", *st.ApprovedBy)
}

func TestStockTakingReject(t *testing.T) {
	st := NewStockTaking(id.New(), 10, 8, "alice")

	require.NoError(t, st.Reject())
	assert.Equal(t, StatusRejected, st.Status)
	assert.Nil(t, st.ApprovedBy)

	err := st.Reject()
	assert.True(t, apperror.HasCode(err, apperror.CodeInvalidTransition))
}

func TestStockTakingMarkApplied(t *testing.T) {
	t.Run("approved record applies", func(t *testing.T) {
		st := NewStockTaking(id.New(), 10, 8, "alice")
		require.NoError(t, st.Approve("bob"))

		require.NoError(t, st.MarkApplied())
		assert.Equal(t, StatusApplied, st.Status)
	})

	t.Run("double apply", func(t *testing.T) {
		st := NewStockTaking(id.New(), 10, 8, "alice")
		require.NoError(t, st.Approve("bob"))
		require.NoError(t, st.MarkApplied())

		err := st.MarkApplied()
		assert.True(t, apperror.HasCode(err, apperror.CodeAlreadyApplied))
	})

	t.Run("unapproved draft", func(t *testing.T) {
		st := NewStockTaking(id.New(), 10, 8, "alice")

		err := st.MarkApplied()
		assert.True(t, apperror.HasCode(err, apperror.CodeNotApproved))
		assert.Equal(t, StatusDraft, st.Status)
	})

	t.Run("rejected record", func(t *testing.T) {
		st := NewStockTaking(id.New(), 10, 8, "alice")
		require.NoError(t, st.Reject())

		err := st.MarkApplied()
		assert.True(t, apperror.HasCode(err, apperror.CodeNotApproved))
	})
}

func TestStockTakingCanDelete(t *testing.T) {
	st := NewStockTaking(id.New(), 10, 8, "alice")
	assert.True(t, st.CanDelete())

	require.NoError(t, st.Approve("bob"))
	assert.False(t, st.CanDelete())
}

func TestStockTakingIsOpenDraft(t *testing.T) {
	st := NewStockTaking(id.New(), 10, 8, "alice")
	assert.True(t, st.IsOpenDraft())

	st.Deactivate()
	assert.False(t, st.IsOpenDraft())

	st.Restore()
	require.NoError(t, st.Approve("bob"))
	assert.False(t, st.IsOpenDraft())
}
