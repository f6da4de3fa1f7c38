package internal

import (
	"encoding/xml"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"paybox/config"
	"paybox/entity"
)

// Gateway field names, as transmitted.
const (
	FieldSite        = "PBX_SITE"
	FieldRank        = "PBX_RANG"
	FieldIdentifiant = "PBX_IDENTIFIANT"
	FieldTotal       = "PBX_TOTAL"
	FieldCurrency    = "PBX_DEVISE"
	FieldLanguage    = "PBX_LANGUE"
	FieldReference   = "PBX_CMD"
	FieldHash        = "PBX_HASH"
	FieldHolder      = "PBX_PORTEUR"
	FieldReturn      = "PBX_RETOUR"
	FieldTime        = "PBX_TIME"
	FieldAccepted    = "PBX_EFFECTUE"
	FieldRefused     = "PBX_REFUSE"
	FieldAborted     = "PBX_ANNULE"
	FieldWaiting     = "PBX_ATTENTE"
	FieldVerify      = "PBX_REPONDRE_A"
	FieldCart        = "PBX_SHOPPING_CART"
	FieldBilling     = "PBX_BILLING"
	FieldCaptureOnly = "PBX_AUTOSEULE"
	FieldSignature   = "PBX_HMAC"
)

const hashAlgorithm = "SHA512"

// Outcome names a customer return route.
type Outcome string

const (
	OutcomeAccepted Outcome = "accepted"
	OutcomeRefused  Outcome = "refused"
	OutcomeAborted  Outcome = "aborted"
	OutcomeWaiting  Outcome = "waiting"
	OutcomeVerify   Outcome = "verify"
)

// ErrFinalized is returned by setters once the parameter mapping has been
// frozen by a successful build.
var ErrFinalized = errors.New("request already finalized")

// Routes resolves named return routes to absolute customer URLs.
type Routes struct {
	base  string
	paths map[Outcome]string
}

func NewRoutes(conf *config.Config) *Routes {
	return &Routes{
		base: strings.TrimSuffix(conf.Paybox.BaseUrl, "/"),
		paths: map[Outcome]string{
			OutcomeAccepted: conf.Paybox.ReturnRoutes.Accepted,
			OutcomeRefused:  conf.Paybox.ReturnRoutes.Refused,
			OutcomeAborted:  conf.Paybox.ReturnRoutes.Aborted,
			OutcomeWaiting:  conf.Paybox.ReturnRoutes.Waiting,
			OutcomeVerify:   conf.Paybox.ReturnRoutes.Verify,
		},
	}
}

// Url returns the absolute URL for an outcome. Routes configured as
// absolute URLs are returned as-is, paths are resolved against the base.
func (r *Routes) Url(outcome Outcome) string {
	path := r.paths[outcome]
	if path == "" || strings.Contains(path, "://") {
		return path
	}
	return r.base + path
}

// Authorization assembles the base parameter mapping for a payment
// authorization redirect. A builder serves exactly one payment request and
// is not safe for concurrent use. The zero currency is EUR and the zero
// language is French, matching the gateway defaults.
type Authorization struct {
	conf   *config.Config
	routes *Routes
	signer *Signer

	amount       string
	currency     string
	language     string
	reference    string
	customer     entity.Customer
	cart         entity.Cart
	returnFields []entity.ReturnField
	overrides    map[Outcome]string
	time         time.Time

	finalized bool
	built     *entity.Parameters

	// extend lets variant builders mutate the base mapping before it is
	// frozen; the base builder leaves it nil.
	extend func(p *entity.Parameters)
}

func NewAuthorization(conf *config.Config, routes *Routes, signer *Signer) *Authorization {
	return &Authorization{
		conf:      conf,
		routes:    routes,
		signer:    signer,
		currency:  entity.CurrencyEUR,
		language:  entity.LanguageFrench,
		overrides: make(map[Outcome]string),
	}
}

// SetAmount stores the amount, given in minor currency units, and the
// currency code. An empty currency keeps the current one.
func (a *Authorization) SetAmount(amount float64, currency string) error {
	if a.finalized {
		return ErrFinalized
	}
	a.amount = MinorUnits(amount)
	if currency != "" {
		a.currency = currency
	}
	return nil
}

func (a *Authorization) SetLanguage(language string) error {
	if a.finalized {
		return ErrFinalized
	}
	a.language = language
	return nil
}

func (a *Authorization) SetReference(reference string) error {
	if a.finalized {
		return ErrFinalized
	}
	a.reference = reference
	return nil
}

func (a *Authorization) SetCustomer(customer entity.Customer) error {
	if a.finalized {
		return ErrFinalized
	}
	a.customer = customer
	return nil
}

func (a *Authorization) SetCart(cart entity.Cart) error {
	if a.finalized {
		return ErrFinalized
	}
	a.cart = cart
	return nil
}

func (a *Authorization) SetReturnFields(fields []entity.ReturnField) error {
	if a.finalized {
		return ErrFinalized
	}
	a.returnFields = fields
	return nil
}

// SetReturnUrl overrides the configured route for one outcome.
func (a *Authorization) SetReturnUrl(outcome Outcome, url string) error {
	if a.finalized {
		return ErrFinalized
	}
	switch outcome {
	case OutcomeAccepted, OutcomeRefused, OutcomeAborted, OutcomeWaiting, OutcomeVerify:
	default:
		return fmt.Errorf("unknown outcome %q", outcome)
	}
	a.overrides[outcome] = url
	return nil
}

// SetTime fixes the request timestamp; without it the first build uses the
// current time.
func (a *Authorization) SetTime(t time.Time) error {
	if a.finalized {
		return ErrFinalized
	}
	a.time = t
	return nil
}

// BuildParameters assembles the mapping without the signature field. The
// first successful call freezes the mapping, including the timestamp;
// repeated calls return an identical copy so a retried redirect carries
// exactly the same fields.
func (a *Authorization) BuildParameters() (*entity.Parameters, error) {
	if a.finalized {
		return a.built.Clone(), nil
	}
	if a.customer.Email == "" {
		return nil, fmt.Errorf("customer email is required")
	}
	if a.time.IsZero() {
		a.time = time.Now()
	}

	p := entity.NewParameters()
	p.Set(FieldSite, a.conf.Paybox.Site)
	p.Set(FieldRank, a.conf.Paybox.Rank)
	p.Set(FieldIdentifiant, a.conf.Paybox.Identifiant)
	p.Set(FieldTotal, a.amount)
	p.Set(FieldCurrency, a.currency)
	p.Set(FieldLanguage, a.language)
	p.Set(FieldReference, a.reference)
	p.Set(FieldHash, hashAlgorithm)
	p.Set(FieldHolder, a.customer.Email)
	p.Set(FieldReturn, a.formattedReturnFields())
	p.Set(FieldTime, a.time.Format(time.RFC3339))
	p.Set(FieldAccepted, a.customerUrl(OutcomeAccepted))
	p.Set(FieldRefused, a.customerUrl(OutcomeRefused))
	p.Set(FieldAborted, a.customerUrl(OutcomeAborted))
	p.Set(FieldWaiting, a.customerUrl(OutcomeWaiting))
	p.Set(FieldVerify, a.customerUrl(OutcomeVerify))
	// the upstream integration assigns the card holder twice; with an
	// ordered mapping the second assignment lands on the original entry
	p.Set(FieldHolder, a.customer.Email)

	cart, err := a.cartXml()
	if err != nil {
		return nil, fmt.Errorf("shopping cart: %v", err)
	}
	p.Set(FieldCart, cart)

	billing, err := a.billingXml()
	if err != nil {
		return nil, fmt.Errorf("billing address: %v", err)
	}
	p.Set(FieldBilling, billing)

	if a.extend != nil {
		a.extend(p)
	}

	a.built = p
	a.finalized = true
	return a.built.Clone(), nil
}

// GetParameters returns the final mapping with the signature appended. The
// signature covers every other field in transmission order and never
// covers itself.
func (a *Authorization) GetParameters() (*entity.Parameters, error) {
	p, err := a.BuildParameters()
	if err != nil {
		return nil, err
	}
	signature, err := a.signer.Sign(p)
	if err != nil {
		return nil, err
	}
	p.Set(FieldSignature, signature)
	return p, nil
}

func (a *Authorization) formattedReturnFields() string {
	fields := a.returnFields
	if len(fields) == 0 {
		fields = a.conf.Paybox.ReturnFields
	}
	pairs := make([]string, 0, len(fields))
	for _, field := range fields {
		pairs = append(pairs, field.Key+":"+field.Value)
	}
	return strings.Join(pairs, ";")
}

func (a *Authorization) customerUrl(outcome Outcome) string {
	if url := a.overrides[outcome]; url != "" {
		return url
	}
	return a.routes.Url(outcome)
}

type cartTotal struct {
	TotalQuantity int `xml:"totalQuantity"`
}

type shoppingCart struct {
	XMLName xml.Name  `xml:"shoppingcart"`
	Total   cartTotal `xml:"total"`
}

func (a *Authorization) cartXml() (string, error) {
	// the gateway accepts 1 to 99 items
	quantity := a.cart.TotalQuantity
	if quantity < 1 {
		quantity = 1
	}
	if quantity > 99 {
		quantity = 99
	}
	return marshalXml(shoppingCart{Total: cartTotal{TotalQuantity: quantity}})
}

type billingAddress struct {
	FirstName string `xml:"FirstName"`
	LastName  string `xml:"LastName"`
	Address1  string `xml:"Address1"`
	ZipCode   string `xml:"ZipCode"`
	City      string `xml:"City"`
	Country   int    `xml:"Country"`
}

type billing struct {
	XMLName xml.Name       `xml:"Billing"`
	Address billingAddress `xml:"Address"`
}

func (a *Authorization) billingXml() (string, error) {
	digits := strings.ReplaceAll(FormatText(a.customer.Country, ClassN, 0), ".", "")
	country, _ := strconv.Atoi(digits)
	return marshalXml(billing{Address: billingAddress{
		FirstName: FormatText(a.customer.FirstName, ClassANP, 30),
		LastName:  FormatText(a.customer.LastName, ClassANP, 30),
		Address1:  FormatText(a.customer.Address, ClassANS, 50),
		ZipCode:   FormatText(a.customer.PostCode, ClassANS, 16),
		City:      FormatText(a.customer.City, ClassANS, 50),
		Country:   country,
	}})
}

func marshalXml(doc interface{}) (string, error) {
	data, err := xml.Marshal(doc)
	if err != nil {
		return "", err
	}
	value := xml.Header + string(data)
	return strings.ReplaceAll(value, "\n", ""), nil
}
