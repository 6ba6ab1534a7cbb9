package domain

// Enumerations carry the service codes, never display labels.

type Currency string

const CurrencyBRL Currency = "BRL"

func (c Currency) Valid() bool {
	return c == CurrencyBRL
}

// Permission is an application authorization scope.
type Permission string

const (
	PermissionCreateCheckouts                Permission = "CREATE_CHECKOUTS"
	PermissionReceiveTransactionNotification Permission = "RECEIVE_TRANSACTION_NOTIFICATIONS"
	PermissionSearchTransactions             Permission = "SEARCH_TRANSACTIONS"
	PermissionManagePaymentPreApprovals      Permission = "MANAGE_PAYMENT_PRE_APPROVALS"
	PermissionDirectPayment                  Permission = "DIRECT_PAYMENT"
	PermissionRefundTransactions             Permission = "REFUND_TRANSACTIONS"
	PermissionCancelTransactions             Permission = "CANCEL_TRANSACTIONS"
)

func (p Permission) Valid() bool {
	switch p {
	case PermissionCreateCheckouts, PermissionReceiveTransactionNotification,
		PermissionSearchTransactions, PermissionManagePaymentPreApprovals,
		PermissionDirectPayment, PermissionRefundTransactions, PermissionCancelTransactions:
		return true
	}
	return false
}

type AccountType string

const (
	AccountTypeSeller  AccountType = "SELLER"
	AccountTypeCompany AccountType = "COMPANY"
)

func (t AccountType) Valid() bool {
	return t == AccountTypeSeller || t == AccountTypeCompany
}

type DocumentType string

const (
	DocumentTypeCPF  DocumentType = "CPF"
	DocumentTypeCNPJ DocumentType = "CNPJ"
)

func (t DocumentType) Valid() bool {
	return t == DocumentTypeCPF || t == DocumentTypeCNPJ
}

type PhoneType string

const (
	PhoneTypeHome     PhoneType = "HOME"
	PhoneTypeMobile   PhoneType = "MOBILE"
	PhoneTypeBusiness PhoneType = "BUSINESS"
)

func (t PhoneType) Valid() bool {
	return t == PhoneTypeHome || t == PhoneTypeMobile || t == PhoneTypeBusiness
}

type PaymentMethodType string

const PaymentMethodCreditCard PaymentMethodType = "CREDITCARD"

func (t PaymentMethodType) Valid() bool {
	return t == PaymentMethodCreditCard
}

// Charge tells whether the service or the merchant triggers each payment.
type Charge string

const (
	ChargeAuto   Charge = "AUTO"
	ChargeManual Charge = "MANUAL"
)

func (c Charge) Valid() bool {
	return c == ChargeAuto || c == ChargeManual
}

type Period string

const (
	PeriodWeekly       Period = "WEEKLY"
	PeriodMonthly      Period = "MONTHLY"
	PeriodBimonthly    Period = "BIMONTHLY"
	PeriodTrimonthly   Period = "TRIMONTHLY"
	PeriodSemiannually Period = "SEMIANNUALLY"
	PeriodYearly       Period = "YEARLY"
)

func (p Period) Valid() bool {
	switch p {
	case PeriodWeekly, PeriodMonthly, PeriodBimonthly, PeriodTrimonthly, PeriodSemiannually, PeriodYearly:
		return true
	}
	return false
}
