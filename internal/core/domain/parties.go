package domain

// Building blocks shared by the request objects. They are plain values; the
// request objects copy them on construction and on read.

type Document struct {
	Type  DocumentType `field:"type" validate:"required,enum"`
	Value string       `field:"value" validate:"required,numeric,max=14"`
}

type Phone struct {
	Type     PhoneType `field:"type" validate:"omitempty,enum"`
	AreaCode string    `field:"areaCode" validate:"required,numeric,len=2"`
	Number   string    `field:"number" validate:"required,numeric,min=7,max=9"`
}

type Address struct {
	Street     string `field:"street" validate:"required,max=80"`
	Number     string `field:"number" validate:"required,max=20"`
	Complement string `field:"complement" validate:"max=40"`
	District   string `field:"district" validate:"required,max=60"`
	City       string `field:"city" validate:"required,max=60"`
	State      string `field:"state" validate:"required,len=2"`
	Country    string `field:"country" validate:"omitempty,len=3"`
	PostalCode string `field:"postalCode" validate:"required,numeric,len=8"`
}

// CountryOrDefault returns the ISO-3166 alpha-3 country, BRA when unset.
func (a Address) CountryOrDefault() string {
	if a.Country == "" {
		return "BRA"
	}
	return a.Country
}

// Person is the individual behind a seller account suggestion.
type Person struct {
	Name      string     `field:"name" validate:"required,max=50"`
	Documents []Document `field:"documents" validate:"dive"`
	BirthDate Date       `field:"birthDate"`
	Phones    []Phone    `field:"phones" validate:"dive"`
	Address   *Address   `field:"address" validate:"omitempty"`
}

type Partner struct {
	Name      string     `field:"name" validate:"required,max=50"`
	Documents []Document `field:"documents" validate:"dive"`
	BirthDate Date       `field:"birthDate"`
}

type Company struct {
	Name        string     `field:"name" validate:"required,max=50"`
	DisplayName string     `field:"displayName" validate:"max=50"`
	WebsiteURL  string     `field:"websiteURL" validate:"omitempty,url,max=255"`
	Documents   []Document `field:"documents" validate:"dive"`
	Phones      []Phone    `field:"phones" validate:"dive"`
	Address     *Address   `field:"address" validate:"omitempty"`
	Partner     *Partner   `field:"partner" validate:"omitempty"`
}

// AccountSuggestion pre-fills the account creation form shown to a user who
// has no account yet. Exactly one of Person or Company is set.
type AccountSuggestion struct {
	Email   string      `field:"email" validate:"required,email,max=60"`
	Type    AccountType `field:"type" validate:"required,enum"`
	Person  *Person     `field:"person" validate:"omitempty"`
	Company *Company    `field:"company" validate:"omitempty"`
}

type Sender struct {
	Name      string     `field:"name" validate:"omitempty,max=50"`
	Email     string     `field:"email" validate:"required,email,max=60"`
	IP        string     `field:"ip" validate:"omitempty,ip"`
	Hash      string     `field:"hash" validate:"max=100"`
	Phone     *Phone     `field:"phone" validate:"omitempty"`
	Address   *Address   `field:"address" validate:"omitempty"`
	Documents []Document `field:"documents" validate:"dive"`
}

type CardHolder struct {
	Name           string     `field:"name" validate:"required,max=50"`
	BirthDate      Date       `field:"birthDate"`
	Documents      []Document `field:"documents" validate:"dive"`
	Phone          *Phone     `field:"phone" validate:"omitempty"`
	BillingAddress *Address   `field:"billingAddress" validate:"omitempty"`
}

type CreditCard struct {
	Token  string     `field:"token" validate:"required,max=100"`
	Holder CardHolder `field:"holder"`
}

type PaymentMethod struct {
	// Type defaults to CREDITCARD, the only method the service accepts for
	// subscriptions.
	Type       PaymentMethodType `field:"type" validate:"omitempty,enum"`
	CreditCard CreditCard        `field:"creditCard"`
}

func (m PaymentMethod) TypeOrDefault() PaymentMethodType {
	if m.Type == "" {
		return PaymentMethodCreditCard
	}
	return m.Type
}

func cloneSlice[T any](s []T) []T {
	if s == nil {
		return nil
	}
	return append([]T(nil), s...)
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func (p *Person) clone() *Person {
	if p == nil {
		return nil
	}
	c := *p
	c.Documents = cloneSlice(p.Documents)
	c.Phones = cloneSlice(p.Phones)
	c.Address = clonePtr(p.Address)
	return &c
}

func (p *Partner) clone() *Partner {
	if p == nil {
		return nil
	}
	c := *p
	c.Documents = cloneSlice(p.Documents)
	return &c
}

func (co *Company) clone() *Company {
	if co == nil {
		return nil
	}
	c := *co
	c.Documents = cloneSlice(co.Documents)
	c.Phones = cloneSlice(co.Phones)
	c.Address = clonePtr(co.Address)
	c.Partner = co.Partner.clone()
	return &c
}

func (a *AccountSuggestion) clone() *AccountSuggestion {
	if a == nil {
		return nil
	}
	c := *a
	c.Person = a.Person.clone()
	c.Company = a.Company.clone()
	return &c
}

func (s Sender) clone() Sender {
	s.Phone = clonePtr(s.Phone)
	s.Address = clonePtr(s.Address)
	s.Documents = cloneSlice(s.Documents)
	return s
}

func (m PaymentMethod) clone() PaymentMethod {
	h := &m.CreditCard.Holder
	h.Documents = cloneSlice(h.Documents)
	h.Phone = clonePtr(h.Phone)
	h.BillingAddress = clonePtr(h.BillingAddress)
	return m
}
