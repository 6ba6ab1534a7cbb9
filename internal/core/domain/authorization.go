package domain

// AuthorizationRegistrationParams describes an application asking a seller
// for permissions on their account.
type AuthorizationRegistrationParams struct {
	Reference       string             `field:"reference" validate:"max=80"`
	Permissions     []Permission       `field:"permissions" validate:"min=1,dive,enum"`
	RedirectURL     string             `field:"redirectURL" validate:"omitempty,url,max=255"`
	NotificationURL string             `field:"notificationURL" validate:"omitempty,url,max=255"`
	Account         *AccountSuggestion `field:"account" validate:"omitempty"`
}

// AuthorizationRegistration is a validated, read-only registration request.
type AuthorizationRegistration struct {
	params AuthorizationRegistrationParams
}

// NewAuthorizationRegistration validates params and returns the request, or a
// *ValidationError naming the first invalid field.
func NewAuthorizationRegistration(params AuthorizationRegistrationParams) (AuthorizationRegistration, error) {
	reg := AuthorizationRegistration{params: params.clone()}
	if err := reg.Validate(); err != nil {
		return AuthorizationRegistration{}, err
	}
	return reg, nil
}

// Params returns a copy of the registration fields.
func (r AuthorizationRegistration) Params() AuthorizationRegistrationParams {
	return r.params.clone()
}

// Validate re-checks the request. Converters call it so that a zero value never
// reaches the wire.
func (r AuthorizationRegistration) Validate() error {
	if err := validateStruct(r.params); err != nil {
		return err
	}
	if a := r.params.Account; a != nil {
		if (a.Person == nil) == (a.Company == nil) {
			return NewInvalidFieldError("account", "must have exactly one of person or company")
		}
	}
	return nil
}

func (p AuthorizationRegistrationParams) clone() AuthorizationRegistrationParams {
	p.Permissions = cloneSlice(p.Permissions)
	p.Account = p.Account.clone()
	return p
}
