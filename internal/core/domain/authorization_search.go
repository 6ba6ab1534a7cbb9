package domain

import "time"

// AuthorizationSearchParams filters authorizations by creation date. Zero
// Page and MaxPageResults let the service pick its defaults.
type AuthorizationSearchParams struct {
	InitialDate    time.Time `field:"initialDate"`
	FinalDate      time.Time `field:"finalDate"`
	Page           int       `field:"page" validate:"min=0"`
	MaxPageResults int       `field:"maxPageResults" validate:"min=0,max=1000"`
}

// AuthorizationSearch is a validated date range query.
type AuthorizationSearch struct {
	params AuthorizationSearchParams
}

func NewAuthorizationSearch(params AuthorizationSearchParams) (AuthorizationSearch, error) {
	search := AuthorizationSearch{params: params}
	if err := search.Validate(); err != nil {
		return AuthorizationSearch{}, err
	}
	return search, nil
}

func (s AuthorizationSearch) Params() AuthorizationSearchParams {
	return s.params
}

func (s AuthorizationSearch) Validate() error {
	p := s.params
	if p.InitialDate.IsZero() {
		return NewMissingRequiredFieldError("initialDate")
	}
	if err := validateStruct(p); err != nil {
		return err
	}
	if !p.FinalDate.IsZero() && p.FinalDate.Before(p.InitialDate) {
		return NewInvalidFieldError("finalDate", "cannot be before initialDate")
	}
	return nil
}
