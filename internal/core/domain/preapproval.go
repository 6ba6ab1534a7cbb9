package domain

import "fmt"

// PreApprovalSubscriptionParams adheres a sender to an existing plan.
type PreApprovalSubscriptionParams struct {
	Plan          string        `field:"plan" validate:"required,max=100"`
	Reference     string        `field:"reference" validate:"max=200"`
	Sender        Sender        `field:"sender"`
	PaymentMethod PaymentMethod `field:"paymentMethod"`
}

type PreApprovalSubscription struct {
	params PreApprovalSubscriptionParams
}

func NewPreApprovalSubscription(params PreApprovalSubscriptionParams) (PreApprovalSubscription, error) {
	sub := PreApprovalSubscription{params: params.clone()}
	if err := sub.Validate(); err != nil {
		return PreApprovalSubscription{}, err
	}
	return sub, nil
}

func (s PreApprovalSubscription) Params() PreApprovalSubscriptionParams {
	return s.params.clone()
}

func (s PreApprovalSubscription) Validate() error {
	return validateStruct(s.params)
}

func (p PreApprovalSubscriptionParams) clone() PreApprovalSubscriptionParams {
	p.Sender = p.Sender.clone()
	p.PaymentMethod = p.PaymentMethod.clone()
	return p
}

// Item is one line of a plan.
type Item struct {
	ID          string `field:"id" validate:"required,max=100"`
	Description string `field:"description" validate:"required,max=100"`
	Amount      Money  `field:"amount"`
	Quantity    int    `field:"quantity" validate:"min=1,max=999"`
}

// PreApprovalRequestParams registers a recurring payment plan.
type PreApprovalRequestParams struct {
	Currency             Currency `field:"currency" validate:"omitempty,enum"`
	Reference            string   `field:"reference" validate:"max=200"`
	RedirectURL          string   `field:"redirectURL" validate:"omitempty,url,max=255"`
	NotificationURL      string   `field:"notificationURL" validate:"omitempty,url,max=255"`
	ReviewURL            string   `field:"reviewURL" validate:"omitempty,url,max=255"`
	Charge               Charge   `field:"preApproval.charge" validate:"required,enum"`
	Name                 string   `field:"preApproval.name" validate:"required,max=100"`
	Details              string   `field:"preApproval.details" validate:"max=255"`
	Period               Period   `field:"preApproval.period" validate:"required,enum"`
	AmountPerPayment     *Money   `field:"preApproval.amountPerPayment"`
	MaxAmountPerPayment  *Money   `field:"preApproval.maxAmountPerPayment"`
	MaxTotalAmount       *Money   `field:"preApproval.maxTotalAmount"`
	MaxAmountPerPeriod   *Money   `field:"preApproval.maxAmountPerPeriod"`
	MaxPaymentsPerPeriod int      `field:"preApproval.maxPaymentsPerPeriod" validate:"min=0"`
	InitialDate          Date     `field:"preApproval.initialDate"`
	FinalDate            Date     `field:"preApproval.finalDate"`
	MembershipFee        *Money   `field:"preApproval.membershipFee"`
	TrialPeriodDuration  int      `field:"preApproval.trialPeriodDuration" validate:"min=0,max=1000000"`
	Items                []Item   `field:"items" validate:"dive"`
}

// CurrencyOrDefault returns BRL when no currency was given.
func (p PreApprovalRequestParams) CurrencyOrDefault() Currency {
	if p.Currency == "" {
		return CurrencyBRL
	}
	return p.Currency
}

type PreApprovalRequest struct {
	params PreApprovalRequestParams
}

func NewPreApprovalRequest(params PreApprovalRequestParams) (PreApprovalRequest, error) {
	req := PreApprovalRequest{params: params.clone()}
	if err := req.Validate(); err != nil {
		return PreApprovalRequest{}, err
	}
	return req, nil
}

func (r PreApprovalRequest) Params() PreApprovalRequestParams {
	return r.params.clone()
}

func (r PreApprovalRequest) Validate() error {
	p := r.params
	if err := validateStruct(p); err != nil {
		return err
	}

	if p.Charge == ChargeAuto && (p.AmountPerPayment == nil || !p.AmountPerPayment.IsPositive()) {
		return NewInvalidFieldError("preApproval.amountPerPayment", "is required and must be positive when charge is AUTO")
	}
	if p.AmountPerPayment != nil && p.MaxAmountPerPayment != nil &&
		p.AmountPerPayment.Decimal().GreaterThan(p.MaxAmountPerPayment.Decimal()) {
		return NewInvalidFieldError("preApproval.amountPerPayment", "cannot exceed preApproval.maxAmountPerPayment")
	}
	if !p.InitialDate.IsZero() && !p.FinalDate.IsZero() && p.FinalDate.Before(p.InitialDate) {
		return NewInvalidFieldError("preApproval.finalDate", "cannot be before preApproval.initialDate")
	}
	for i, item := range p.Items {
		if !item.Amount.IsPositive() {
			return NewInvalidFieldError(fmt.Sprintf("items[%d].amount", i), "must be positive")
		}
	}
	return nil
}

func (p PreApprovalRequestParams) clone() PreApprovalRequestParams {
	p.AmountPerPayment = clonePtr(p.AmountPerPayment)
	p.MaxAmountPerPayment = clonePtr(p.MaxAmountPerPayment)
	p.MaxTotalAmount = clonePtr(p.MaxTotalAmount)
	p.MaxAmountPerPeriod = clonePtr(p.MaxAmountPerPeriod)
	p.MembershipFee = clonePtr(p.MembershipFee)
	p.Items = cloneSlice(p.Items)
	return p
}
