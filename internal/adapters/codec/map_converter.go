package codec

import (
	"strconv"
	"strings"

	"github.com/DanielPopoola/pagseguro-go/internal/core/domain"
)

// Converters below are pure: same request, same FieldMap. They validate first
// so a zero-value request fails before anything is built.

// AuthorizationRegistrationToMap builds the form body of
// POST /v2/authorizations/request.
func AuthorizationRegistrationToMap(reg domain.AuthorizationRegistration) (*FieldMap, error) {
	if err := reg.Validate(); err != nil {
		return nil, err
	}
	p := reg.Params()

	codes := make([]string, 0, len(p.Permissions))
	for _, perm := range p.Permissions {
		codes = append(codes, string(perm))
	}

	m := NewFieldMap()
	m.SetOptional("reference", p.Reference)
	m.Set("permissions", strings.Join(codes, ","))
	m.SetOptional("redirectURL", p.RedirectURL)
	m.SetOptional("notificationURL", p.NotificationURL)
	return m, nil
}

// PreApprovalSubscriptionToMap builds the form body of POST /pre-approvals.
func PreApprovalSubscriptionToMap(sub domain.PreApprovalSubscription) (*FieldMap, error) {
	if err := sub.Validate(); err != nil {
		return nil, err
	}
	p := sub.Params()

	m := NewFieldMap()
	m.Set("plan", p.Plan)
	m.SetOptional("reference", p.Reference)

	s := p.Sender
	m.SetOptional("sender.name", s.Name)
	m.Set("sender.email", s.Email)
	m.SetOptional("sender.ip", s.IP)
	m.SetOptional("sender.hash", s.Hash)
	putPhone(m, "sender.phone", s.Phone)
	putAddress(m, "sender.address", s.Address)
	putDocuments(m, "sender.documents", s.Documents)

	pm := p.PaymentMethod
	m.Set("paymentMethod.type", string(pm.TypeOrDefault()))
	m.Set("paymentMethod.creditCard.token", pm.CreditCard.Token)

	h := pm.CreditCard.Holder
	m.Set("paymentMethod.creditCard.holder.name", h.Name)
	m.SetOptional("paymentMethod.creditCard.holder.birthDate", h.BirthDate.String())
	putDocuments(m, "paymentMethod.creditCard.holder.documents", h.Documents)
	putPhone(m, "paymentMethod.creditCard.holder.phone", h.Phone)
	putAddress(m, "paymentMethod.creditCard.holder.billingAddress", h.BillingAddress)
	return m, nil
}

// PreApprovalRequestToMap builds the form body of POST /v2/pre-approvals/request.
func PreApprovalRequestToMap(req domain.PreApprovalRequest) (*FieldMap, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	p := req.Params()

	m := NewFieldMap()
	m.Set("currency", string(p.CurrencyOrDefault()))
	m.SetOptional("reference", p.Reference)
	m.SetOptional("redirectURL", p.RedirectURL)
	m.SetOptional("notificationURL", p.NotificationURL)
	m.SetOptional("reviewURL", p.ReviewURL)

	m.Set("preApproval.charge", string(p.Charge))
	m.Set("preApproval.name", p.Name)
	m.SetOptional("preApproval.details", p.Details)
	m.Set("preApproval.period", string(p.Period))
	putMoney(m, "preApproval.amountPerPayment", p.AmountPerPayment)
	putMoney(m, "preApproval.maxAmountPerPayment", p.MaxAmountPerPayment)
	putMoney(m, "preApproval.maxTotalAmount", p.MaxTotalAmount)
	putMoney(m, "preApproval.maxAmountPerPeriod", p.MaxAmountPerPeriod)
	putInt(m, "preApproval.maxPaymentsPerPeriod", p.MaxPaymentsPerPeriod)
	m.SetOptional("preApproval.initialDate", p.InitialDate.String())
	m.SetOptional("preApproval.finalDate", p.FinalDate.String())
	putMoney(m, "preApproval.membershipFee", p.MembershipFee)
	putInt(m, "preApproval.trialPeriodDuration", p.TrialPeriodDuration)

	for i, item := range p.Items {
		prefix := indexed("items", i)
		m.Set(prefix+".id", item.ID)
		m.Set(prefix+".description", item.Description)
		m.Set(prefix+".amount", item.Amount.String())
		m.Set(prefix+".quantity", strconv.Itoa(item.Quantity))
	}
	return m, nil
}

// searchDateLayout is the minute precision the search endpoints accept.
const searchDateLayout = "2006-01-02T15:04"

// AuthorizationSearchToMap builds the query of GET /v2/authorizations. Dates
// are written in the location they carry.
func AuthorizationSearchToMap(search domain.AuthorizationSearch) (*FieldMap, error) {
	if err := search.Validate(); err != nil {
		return nil, err
	}
	p := search.Params()

	m := NewFieldMap()
	m.Set("initialDate", p.InitialDate.Format(searchDateLayout))
	if !p.FinalDate.IsZero() {
		m.Set("finalDate", p.FinalDate.Format(searchDateLayout))
	}
	putInt(m, "page", p.Page)
	putInt(m, "maxPageResults", p.MaxPageResults)
	return m, nil
}

// indexed numbers repetitions from 0 in iteration order.
func indexed(prefix string, i int) string {
	return prefix + "." + strconv.Itoa(i)
}

func putMoney(m *FieldMap, key string, v *domain.Money) {
	if v == nil {
		return
	}
	m.Set(key, v.String())
}

func putInt(m *FieldMap, key string, v int) {
	if v == 0 {
		return
	}
	m.Set(key, strconv.Itoa(v))
}

func putPhone(m *FieldMap, prefix string, ph *domain.Phone) {
	if ph == nil {
		return
	}
	m.SetOptional(prefix+".type", string(ph.Type))
	m.Set(prefix+".areaCode", ph.AreaCode)
	m.Set(prefix+".number", ph.Number)
}

func putAddress(m *FieldMap, prefix string, a *domain.Address) {
	if a == nil {
		return
	}
	m.Set(prefix+".street", a.Street)
	m.Set(prefix+".number", a.Number)
	m.SetOptional(prefix+".complement", a.Complement)
	m.Set(prefix+".district", a.District)
	m.Set(prefix+".city", a.City)
	m.Set(prefix+".state", a.State)
	m.Set(prefix+".country", a.CountryOrDefault())
	m.Set(prefix+".postalCode", a.PostalCode)
}

func putDocuments(m *FieldMap, prefix string, docs []domain.Document) {
	for i, d := range docs {
		key := indexed(prefix, i)
		m.Set(key+".type", string(d.Type))
		m.Set(key+".value", d.Value)
	}
}
