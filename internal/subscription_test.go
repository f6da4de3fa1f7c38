package internal

import (
	"testing"

	"github.com/stretchr/testify/require"

	"paybox/config"
	"paybox/entity"
)

func newTestSubscription(t *testing.T, conf *config.Config) *Subscription {
	t.Helper()
	builder := NewSubscription(conf, NewRoutes(conf), NewSigner(conf.Paybox.Secret))
	require.NoError(t, builder.SetReference("sub42"))
	require.NoError(t, builder.SetCustomer(testCustomer()))
	require.NoError(t, builder.SetCart(entity.Cart{TotalQuantity: 1}))
	return builder
}

func TestSubscriptionCompoundReference(t *testing.T) {
	builder := newTestSubscription(t, testConfig())
	require.NoError(t, builder.SetInitialAmount(2000, ""))
	require.NoError(t, builder.SetRecurringAmount(1050))
	require.NoError(t, builder.SetPaymentDay(5))
	require.NoError(t, builder.SetPaymentFrequency(1))
	require.NoError(t, builder.SetPaymentCount(12))
	require.NoError(t, builder.SetPaymentShift(0))

	p, err := builder.BuildParameters()
	require.NoError(t, err)

	want := "sub42" +
		"PBX_2MONT0000001050" +
		"PBX_QUAND05" +
		"PBX_FREQ01" +
		"PBX_NBPAIE12" +
		"PBX_DELAIS000"
	require.Equal(t, want, p.Get(FieldReference))

	// the compound suffix stays on the reference entry, no extra fields
	require.False(t, p.Has(FieldCaptureOnly))
	require.Equal(t, "2000", p.Get(FieldTotal))
	require.Equal(t, entity.CurrencyEUR, p.Get(FieldCurrency))
}

func TestSubscriptionDefaults(t *testing.T) {
	builder := newTestSubscription(t, testConfig())
	require.NoError(t, builder.SetInitialAmount(500, ""))

	p, err := builder.BuildParameters()
	require.NoError(t, err)

	// frequency defaults to monthly, everything else to zero
	want := "sub42" +
		"PBX_2MONT0000000000" +
		"PBX_QUAND00" +
		"PBX_FREQ01" +
		"PBX_NBPAIE00" +
		"PBX_DELAIS000"
	require.Equal(t, want, p.Get(FieldReference))
}

func TestSubscriptionInitialAmountCurrency(t *testing.T) {
	builder := newTestSubscription(t, testConfig())
	require.NoError(t, builder.SetInitialAmount(2000, entity.CurrencyGBP))

	p, err := builder.BuildParameters()
	require.NoError(t, err)
	require.Equal(t, entity.CurrencyGBP, p.Get(FieldCurrency))
}

func TestSubscriptionSettersAfterBuild(t *testing.T) {
	builder := newTestSubscription(t, testConfig())
	_, err := builder.BuildParameters()
	require.NoError(t, err)

	require.ErrorIs(t, builder.SetRecurringAmount(100), ErrFinalized)
	require.ErrorIs(t, builder.SetPaymentDay(1), ErrFinalized)
	require.ErrorIs(t, builder.SetInitialAmount(100, ""), ErrFinalized)
}
