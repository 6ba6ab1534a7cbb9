// Package pagseguro is a client for the PagSeguro payment service. It
// registers and searches application authorizations, registers recurring
// payment plans and subscribes senders to them or cancels those
// subscriptions.
//
// Requests are built through validating factories (NewAuthorizationRegistration,
// NewPreApprovalSubscription, NewPreApprovalRequest) and sent through a Client:
//
//	client, err := pagseguro.NewFromEnv()
//	if err != nil {
//		return err
//	}
//	defer client.Close(ctx)
//
//	res, err := client.PreApprovals.CancelByCode(ctx, code)
//
// Every error returned by the client is one of *ValidationError,
// *TransportError, *DecodeError or *ServiceError.
package pagseguro

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/DanielPopoola/pagseguro-go/internal/adapters/telemetry"
	"github.com/DanielPopoola/pagseguro-go/internal/adapters/transport"
	"github.com/DanielPopoola/pagseguro-go/internal/config"
	"github.com/DanielPopoola/pagseguro-go/internal/core/domain"
	"github.com/DanielPopoola/pagseguro-go/internal/core/ports"
	"github.com/DanielPopoola/pagseguro-go/internal/core/service"
)

type (
	Config            = config.Config
	CredentialsConfig = config.CredentialsConfig
	HTTPConfig        = config.HTTPConfig
	RetryConfig       = config.RetryConfig
	LoggerConfig      = config.LoggerConfig
	TelemetryConfig   = config.TelemetryConfig

	Transport  = ports.Transport
	Request    = ports.Request
	Response   = ports.Response
	Observer   = ports.Observer
	CallInfo   = ports.CallInfo
	CallResult = ports.CallResult

	AuthorizationService = service.AuthorizationService
	PreApprovalService   = service.PreApprovalService
)

// Request objects.
type (
	AuthorizationRegistration       = domain.AuthorizationRegistration
	AuthorizationRegistrationParams = domain.AuthorizationRegistrationParams
	PreApprovalSubscription         = domain.PreApprovalSubscription
	PreApprovalSubscriptionParams   = domain.PreApprovalSubscriptionParams
	PreApprovalRequest              = domain.PreApprovalRequest
	PreApprovalRequestParams        = domain.PreApprovalRequestParams
	AuthorizationSearch             = domain.AuthorizationSearch
	AuthorizationSearchParams       = domain.AuthorizationSearchParams

	AccountSuggestion = domain.AccountSuggestion
	Person            = domain.Person
	Company           = domain.Company
	Partner           = domain.Partner
	Sender            = domain.Sender
	PaymentMethod     = domain.PaymentMethod
	CreditCard        = domain.CreditCard
	CardHolder        = domain.CardHolder
	Document          = domain.Document
	Phone             = domain.Phone
	Address           = domain.Address
	Item              = domain.Item
	Money             = domain.Money
	Date              = domain.Date

	Currency          = domain.Currency
	Permission        = domain.Permission
	AccountType       = domain.AccountType
	DocumentType      = domain.DocumentType
	PhoneType         = domain.PhoneType
	PaymentMethodType = domain.PaymentMethodType
	Charge            = domain.Charge
	Period            = domain.Period
)

// Results.
type (
	RegisteredAuthorization          = domain.RegisteredAuthorization
	RegisteredPreApproval            = domain.RegisteredPreApproval
	SubscribedPreApproval            = domain.SubscribedPreApproval
	CancelledPreApprovalSubscription = domain.CancelledPreApprovalSubscription
	Authorization                    = domain.Authorization
	AuthorizationPermission          = domain.AuthorizationPermission
	AuthorizationSearchResult        = domain.AuthorizationSearchResult
)

// Errors.
type (
	ValidationError    = domain.ValidationError
	TransportError     = domain.TransportError
	DecodeError        = domain.DecodeError
	ServiceError       = domain.ServiceError
	ServiceErrorDetail = domain.ServiceErrorDetail
	ErrorCategory      = domain.ErrorCategory
)

var (
	ErrValidation = domain.ErrValidation
	ErrTransport  = domain.ErrTransport
	ErrDecode     = domain.ErrDecode
	ErrService    = domain.ErrService
)

const (
	CurrencyBRL = domain.CurrencyBRL

	PermissionCreateCheckouts                = domain.PermissionCreateCheckouts
	PermissionReceiveTransactionNotification = domain.PermissionReceiveTransactionNotification
	PermissionSearchTransactions             = domain.PermissionSearchTransactions
	PermissionManagePaymentPreApprovals      = domain.PermissionManagePaymentPreApprovals
	PermissionDirectPayment                  = domain.PermissionDirectPayment
	PermissionRefundTransactions             = domain.PermissionRefundTransactions
	PermissionCancelTransactions             = domain.PermissionCancelTransactions

	AccountTypeSeller  = domain.AccountTypeSeller
	AccountTypeCompany = domain.AccountTypeCompany

	DocumentTypeCPF  = domain.DocumentTypeCPF
	DocumentTypeCNPJ = domain.DocumentTypeCNPJ

	PhoneTypeHome     = domain.PhoneTypeHome
	PhoneTypeMobile   = domain.PhoneTypeMobile
	PhoneTypeBusiness = domain.PhoneTypeBusiness

	PaymentMethodCreditCard = domain.PaymentMethodCreditCard

	ChargeAuto   = domain.ChargeAuto
	ChargeManual = domain.ChargeManual

	PeriodWeekly       = domain.PeriodWeekly
	PeriodMonthly      = domain.PeriodMonthly
	PeriodBimonthly    = domain.PeriodBimonthly
	PeriodTrimonthly   = domain.PeriodTrimonthly
	PeriodSemiannually = domain.PeriodSemiannually
	PeriodYearly       = domain.PeriodYearly

	CategoryTransient      = domain.CategoryTransient
	CategoryPermanent      = domain.CategoryPermanent
	CategoryBusinessRule   = domain.CategoryBusinessRule
	CategoryClientError    = domain.CategoryClientError
	CategoryInfrastructure = domain.CategoryInfrastructure
)

var (
	NewAuthorizationRegistration = domain.NewAuthorizationRegistration
	NewPreApprovalSubscription   = domain.NewPreApprovalSubscription
	NewPreApprovalRequest        = domain.NewPreApprovalRequest
	NewAuthorizationSearch       = domain.NewAuthorizationSearch

	NewMoney   = domain.NewMoney
	ParseMoney = domain.ParseMoney
	MustMoney  = domain.MustMoney
	NewDate    = domain.NewDate
	ParseDate  = domain.ParseDate

	NewInvalidFieldError = domain.NewInvalidFieldError

	IsValidationError = domain.IsValidationError
	IsTransportError  = domain.IsTransportError
	IsDecodeError     = domain.IsDecodeError
	IsServiceError    = domain.IsServiceError
	CategorizeError   = domain.CategorizeError
	IsRetryable       = domain.IsRetryable

	LoadConfig = config.LoadConfig
)

// Client groups the resource services. It is safe for concurrent use.
type Client struct {
	Authorizations *AuthorizationService
	PreApprovals   *PreApprovalService

	shutdown func(context.Context) error
}

type options struct {
	transport  Transport
	httpClient *http.Client
	logger     *slog.Logger
	observers  []Observer
}

type Option func(*options)

// WithTransport replaces the HTTP transport entirely, e.g. with a fake in
// tests. Retry settings from the config still apply on top of it.
func WithTransport(t Transport) Option {
	return func(o *options) { o.transport = t }
}

// WithHTTPClient sends calls through an existing *http.Client.
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) { o.httpClient = c }
}

// WithLogger overrides the logger built from the config.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithObserver adds a sink for call events next to the built-in ones.
func WithObserver(obs Observer) Option {
	return func(o *options) { o.observers = append(o.observers, obs) }
}

// NewFromEnv loads the configuration from PAGSEGURO_* environment variables
// (and a .env file, if present) and builds a Client.
func NewFromEnv(opts ...Option) (*Client, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	return New(cfg, opts...)
}

// New builds a Client from an explicit configuration. When telemetry is
// enabled it installs global OpenTelemetry providers; Close flushes them.
func New(cfg *Config, opts ...Option) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	shutdown, err := telemetry.Setup(context.Background(), cfg.Telemetry)
	if err != nil {
		return nil, err
	}

	logger := o.logger
	if logger == nil {
		logger = cfg.Logger.NewLogger()
	}

	observers := telemetry.Observers{telemetry.NewLogObserver(logger)}
	if cfg.Telemetry.Enabled {
		metrics, err := telemetry.NewMetricsObserver(nil)
		if err != nil {
			_ = shutdown(context.Background())
			return nil, err
		}
		observers = append(observers, telemetry.NewTraceObserver(nil), metrics)
	}
	observers = append(observers, o.observers...)

	client := service.NewClient(
		cfg.BaseURL(),
		cfg.Credentials.Query(),
		buildTransport(cfg, o),
		observers,
	)

	return &Client{
		Authorizations: service.NewAuthorizationService(client),
		PreApprovals:   service.NewPreApprovalService(client),
		shutdown:       shutdown,
	}, nil
}

func buildTransport(cfg *Config, o *options) Transport {
	t := o.transport
	if t == nil {
		if o.httpClient != nil {
			t = transport.NewHTTPClientWith(o.httpClient, cfg.HTTP.UserAgent)
		} else {
			var topts []transport.Option
			if cfg.Telemetry.Enabled {
				topts = append(topts, transport.WithTracing(nil))
			}
			t = transport.NewHTTPClient(cfg.HTTP, topts...)
		}
	}
	if cfg.Retry.MaxRetries > 1 {
		t = transport.NewRetryTransport(t, cfg.Retry)
	}
	return t
}

// Close flushes telemetry exporters, if any were started.
func (c *Client) Close(ctx context.Context) error {
	if c.shutdown == nil {
		return nil
	}
	return c.shutdown(ctx)
}
