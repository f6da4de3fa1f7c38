package internal

import (
	"paybox/config"
	"paybox/entity"
)

// Labels and widths of the compound suffix sub-values, in the order they
// are concatenated onto the reference field.
const (
	labelRecurringAmount = "PBX_2MONT"
	labelPaymentDay      = "PBX_QUAND"
	labelFrequency       = "PBX_FREQ"
	labelPaymentCount    = "PBX_NBPAIE"
	labelPaymentShift    = "PBX_DELAIS"

	widthRecurringAmount = 10
	widthPaymentDay      = 2
	widthFrequency       = 2
	widthPaymentCount    = 2
	widthPaymentShift    = 3
)

// Subscription encodes a recurring payment plan. The gateway reads the
// plan from a compound suffix on the reference field: each sub-value is
// its field label concatenated with a fixed-width zero-padded number, with
// no separators.
type Subscription struct {
	Authorization
	recurringAmount float64
	paymentDay      int
	frequency       int
	count           int
	shift           int
}

func NewSubscription(conf *config.Config, routes *Routes, signer *Signer) *Subscription {
	s := &Subscription{
		Authorization: *NewAuthorization(conf, routes, signer),
		frequency:     1,
	}
	s.extend = func(p *entity.Parameters) {
		p.Append(FieldReference, labelRecurringAmount+Pad(s.recurringAmount, widthRecurringAmount))
		p.Append(FieldReference, labelPaymentDay+Pad(float64(s.paymentDay), widthPaymentDay))
		p.Append(FieldReference, labelFrequency+Pad(float64(s.frequency), widthFrequency))
		p.Append(FieldReference, labelPaymentCount+Pad(float64(s.count), widthPaymentCount))
		p.Append(FieldReference, labelPaymentShift+Pad(float64(s.shift), widthPaymentShift))
	}
	return s
}

// SetInitialAmount sets the amount charged on subscription, bypassing the
// regular amount setter. An empty currency means EUR stays selected.
func (s *Subscription) SetInitialAmount(amount float64, currency string) error {
	if s.finalized {
		return ErrFinalized
	}
	s.amount = MinorUnits(amount)
	if currency != "" {
		s.currency = currency
	}
	return nil
}

// SetRecurringAmount sets the amount, in minor units, of every recurring
// charge.
func (s *Subscription) SetRecurringAmount(amount float64) error {
	if s.finalized {
		return ErrFinalized
	}
	s.recurringAmount = amount
	return nil
}

func (s *Subscription) SetPaymentDay(day int) error {
	if s.finalized {
		return ErrFinalized
	}
	s.paymentDay = day
	return nil
}

func (s *Subscription) SetPaymentFrequency(frequency int) error {
	if s.finalized {
		return ErrFinalized
	}
	s.frequency = frequency
	return nil
}

func (s *Subscription) SetPaymentCount(count int) error {
	if s.finalized {
		return ErrFinalized
	}
	s.count = count
	return nil
}

func (s *Subscription) SetPaymentShift(shift int) error {
	if s.finalized {
		return ErrFinalized
	}
	s.shift = shift
	return nil
}
