package internal

import (
	"fmt"
	"strconv"
	"time"

	"paybox/config"
	"paybox/entity"
)

// Suffixed field names for installments 2 to 4; the installment number
// minus one is appended to each.
const (
	FieldInstallmentAmount = "PBX_2MONT"
	FieldInstallmentDate   = "PBX_DATE"
)

const installmentLimit = 4

// installmentDateLayout renders day without a leading zero, two-digit
// month and four-digit year, as the gateway requires.
const installmentDateLayout = "2/01/2006"

type installment struct {
	date     time.Time
	amount   string
	currency string
}

// SeveralTimes spreads a payment over up to four installments. The first
// installment replaces the base amount and currency; the later ones are
// encoded as suffixed amount/date field pairs. Unset installments produce
// no fields.
type SeveralTimes struct {
	AuthorizationWithCapture
	payments map[int]installment
}

func NewSeveralTimes(conf *config.Config, routes *Routes, signer *Signer) *SeveralTimes {
	s := &SeveralTimes{
		AuthorizationWithCapture: *NewAuthorizationWithCapture(conf, routes, signer),
		payments:                 make(map[int]installment),
	}
	s.extend = func(p *entity.Parameters) {
		p.Set(FieldCaptureOnly, "N")
		for n := 1; n <= installmentLimit; n++ {
			payment, ok := s.payments[n]
			if !ok {
				continue
			}
			if n == 1 {
				p.Set(FieldTotal, payment.amount)
				p.Set(FieldCurrency, payment.currency)
				continue
			}
			suffix := strconv.Itoa(n - 1)
			p.Set(FieldInstallmentAmount+suffix, payment.amount)
			p.Set(FieldInstallmentDate+suffix, payment.date.Format(installmentDateLayout))
		}
	}
	return s
}

// SetPayment1 stores the immediate installment; its amount and currency
// override the base fields.
func (s *SeveralTimes) SetPayment1(amount float64, currency string) error {
	return s.SetPaymentN(1, time.Now(), amount, currency)
}

func (s *SeveralTimes) SetPayment2(date time.Time, amount float64) error {
	return s.SetPaymentN(2, date, amount, "")
}

func (s *SeveralTimes) SetPayment3(date time.Time, amount float64) error {
	return s.SetPaymentN(3, date, amount, "")
}

func (s *SeveralTimes) SetPayment4(date time.Time, amount float64) error {
	return s.SetPaymentN(4, date, amount, "")
}

// SetPaymentN stores installment n. Amount is given in minor units and an
// empty currency means EUR. Indices outside 1 to 4 are rejected.
func (s *SeveralTimes) SetPaymentN(n int, date time.Time, amount float64, currency string) error {
	if s.finalized {
		return ErrFinalized
	}
	if n < 1 || n > installmentLimit {
		return fmt.Errorf("installment number %d out of range 1-%d", n, installmentLimit)
	}
	if currency == "" {
		currency = entity.CurrencyEUR
	}
	s.payments[n] = installment{
		date:     date,
		amount:   MinorUnits(amount),
		currency: currency,
	}
	return nil
}
