package internal

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"paybox/config"
	"paybox/entity"
	"paybox/metrics/counters"
	"paybox/services"
)

const (
	requestAuthorization = "authorization"
	requestCapture       = "capture"
	requestInstallments  = "installments"
	requestSubscription  = "subscription"
)

// Payments builds, signs, records and announces gateway payment requests.
// Every incoming order gets its own builder instance; the service itself
// holds no per-request state and is safe for concurrent use.
type Payments struct {
	conf      *config.Config
	database  services.Database
	publisher services.Publisher
	logger    services.LogHandler

	routes   *Routes
	signer   *Signer
	selector *ServerSelector
	renderer *Renderer
}

func NewPayments(conf *config.Config) *Payments {
	return &Payments{
		conf:     conf,
		routes:   NewRoutes(conf),
		signer:   NewSigner(conf.Paybox.Secret),
		selector: NewServerSelector(conf),
		renderer: NewRenderer(),
	}
}

func (p *Payments) SetDatabase(database services.Database) {
	p.database = database
}

func (p *Payments) SetPublisher(publisher services.Publisher) {
	p.publisher = publisher
}

func (p *Payments) SetLogger(logger services.LogHandler) {
	p.logger = logger
	p.selector.SetLogger(logger)
	if p.conf.Paybox.Secret == "" {
		p.logger.Warn("merchant secret not configured")
	}
}

// Authorize builds a plain authorization request.
func (p *Payments) Authorize(ctx context.Context, order *entity.OrderRequest) (*entity.BuiltRequest, error) {
	builder := NewAuthorization(p.conf, p.routes, p.signer)
	if err := p.configure(builder, order); err != nil {
		return nil, err
	}
	return p.finish(ctx, builder, requestAuthorization, order)
}

// AuthorizeWithCapture builds an authorization that captures immediately.
func (p *Payments) AuthorizeWithCapture(ctx context.Context, order *entity.OrderRequest) (*entity.BuiltRequest, error) {
	builder := NewAuthorizationWithCapture(p.conf, p.routes, p.signer)
	if err := p.configure(&builder.Authorization, order); err != nil {
		return nil, err
	}
	return p.finish(ctx, builder, requestCapture, order)
}

// AuthorizeInstallments builds a multi-installment request from the
// order's installment schedule.
func (p *Payments) AuthorizeInstallments(ctx context.Context, order *entity.OrderRequest) (*entity.BuiltRequest, error) {
	if len(order.Installments) == 0 {
		return nil, fmt.Errorf("installment schedule is empty")
	}
	builder := NewSeveralTimes(p.conf, p.routes, p.signer)
	if err := p.configure(&builder.Authorization, order); err != nil {
		return nil, err
	}
	for _, payment := range order.Installments {
		date := time.Now()
		if payment.Date != "" {
			parsed, err := time.Parse("2006-01-02", payment.Date)
			if err != nil {
				return nil, fmt.Errorf("installment %d: parse date: %v", payment.Number, err)
			}
			date = parsed
		}
		if err := builder.SetPaymentN(payment.Number, date, payment.Amount, payment.Currency); err != nil {
			return nil, err
		}
	}
	return p.finish(ctx, builder, requestInstallments, order)
}

// Subscribe builds a recurring payment request from the order's plan.
func (p *Payments) Subscribe(ctx context.Context, order *entity.OrderRequest) (*entity.BuiltRequest, error) {
	if order.Plan == nil {
		return nil, fmt.Errorf("subscription plan is required")
	}
	builder := NewSubscription(p.conf, p.routes, p.signer)
	if err := p.configure(&builder.Authorization, order); err != nil {
		return nil, err
	}
	if err := builder.SetInitialAmount(order.Amount, order.Currency); err != nil {
		return nil, err
	}
	if err := builder.SetRecurringAmount(order.Plan.Amount); err != nil {
		return nil, err
	}
	if err := builder.SetPaymentDay(order.Plan.Day); err != nil {
		return nil, err
	}
	if order.Plan.Frequency > 0 {
		if err := builder.SetPaymentFrequency(order.Plan.Frequency); err != nil {
			return nil, err
		}
	}
	if err := builder.SetPaymentCount(order.Plan.Count); err != nil {
		return nil, err
	}
	if err := builder.SetPaymentShift(order.Plan.Shift); err != nil {
		return nil, err
	}
	return p.finish(ctx, builder, requestSubscription, order)
}

// RedirectForm renders the browser redirect artifact for a built request.
func (p *Payments) RedirectForm(request *entity.BuiltRequest) (string, error) {
	return p.renderer.RedirectForm(request)
}

func (p *Payments) configure(builder *Authorization, order *entity.OrderRequest) error {
	if order.Reference == "" {
		order.Reference = "pay_" + uuid.NewString()
	}
	if err := builder.SetReference(order.Reference); err != nil {
		return err
	}
	if err := builder.SetAmount(order.Amount, order.Currency); err != nil {
		return err
	}
	if order.Language != "" {
		if err := builder.SetLanguage(order.Language); err != nil {
			return err
		}
	}
	if err := builder.SetCustomer(order.Customer); err != nil {
		return err
	}
	if err := builder.SetCart(order.Cart); err != nil {
		return err
	}
	if len(order.ReturnFields) > 0 {
		if err := builder.SetReturnFields(order.ReturnFields); err != nil {
			return err
		}
	}
	overrides := map[Outcome]string{
		OutcomeAccepted: order.ReturnUrls.Accepted,
		OutcomeRefused:  order.ReturnUrls.Refused,
		OutcomeAborted:  order.ReturnUrls.Aborted,
		OutcomeWaiting:  order.ReturnUrls.Waiting,
		OutcomeVerify:   order.ReturnUrls.Verify,
	}
	for outcome, url := range overrides {
		if url == "" {
			continue
		}
		if err := builder.SetReturnUrl(outcome, url); err != nil {
			return err
		}
	}
	return nil
}

type parameterSource interface {
	GetParameters() (*entity.Parameters, error)
}

func (p *Payments) finish(ctx context.Context, builder parameterSource, requestType string, order *entity.OrderRequest) (*entity.BuiltRequest, error) {
	parameters, err := builder.GetParameters()
	if err != nil {
		counters.CountBuildFailure(requestType)
		return nil, err
	}

	built := &entity.BuiltRequest{
		Url:        p.selector.Url(ctx),
		Reference:  order.Reference,
		Parameters: parameters,
	}

	record := &entity.RequestRecord{
		Reference:   order.Reference,
		RequestType: requestType,
		Amount:      parameters.Get(FieldTotal),
		Currency:    parameters.Get(FieldCurrency),
		Url:         built.Url,
		Fields:      parameters.Fields(),
		Signature:   parameters.Get(FieldSignature),
		TimeCreated: time.Now(),
	}
	if p.database != nil {
		if err := p.database.SaveRequestRecord(ctx, record); err != nil {
			p.logger.Error("save request record", err)
			return nil, err
		}
	}

	if p.publisher != nil {
		event := &entity.RequestEvent{
			Reference:   record.Reference,
			RequestType: record.RequestType,
			Amount:      record.Amount,
			Currency:    record.Currency,
			Time:        record.TimeCreated,
		}
		if err := p.publisher.Publish(event); err != nil {
			// the signed request is still usable; delivery is best effort
			p.logger.Error("publish request event", err)
		}
	}

	counters.CountRequest(requestType)
	p.logger.Info(fmt.Sprintf("%s request %s built for %s", requestType, order.Reference, secret(order.Customer.Email)))
	return built, nil
}

func secret(some string) string {
	if len(some) > 5 {
		return fmt.Sprintf("%s***", some[0:5])
	}
	if some == "" {
		return "?"
	}
	return "***"
}
