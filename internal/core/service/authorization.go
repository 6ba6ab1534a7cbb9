package service

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/DanielPopoola/pagseguro-go/internal/adapters/codec"
	"github.com/DanielPopoola/pagseguro-go/internal/core/domain"
	"github.com/DanielPopoola/pagseguro-go/internal/core/ports"
)

const (
	OpRegisterAuthorization               ports.Operation = "authorizations.register"
	OpRegisterAuthorizationWithSuggestion ports.Operation = "authorizations.register_with_suggestion"
	OpSearchAuthorizations                ports.Operation = "authorizations.search"
	OpSearchAuthorizationByCode           ports.Operation = "authorizations.search_by_code"
	OpSearchAuthorizationByNotification   ports.Operation = "authorizations.search_by_notification"

	authorizationRequestPath      = "/v2/authorizations/request"
	authorizationsPath            = "/v2/authorizations"
	authorizationNotificationPath = "/v2/authorizations/notifications/"
)

// AuthorizationService asks the service for permission to act on behalf of
// a seller account.
type AuthorizationService struct {
	client *Client
}

func NewAuthorizationService(client *Client) *AuthorizationService {
	return &AuthorizationService{client: client}
}

// Register sends the request as a form. Any account suggestion is ignored:
// only the XML variant can carry one.
func (s *AuthorizationService) Register(ctx context.Context, reg domain.AuthorizationRegistration) (*domain.RegisteredAuthorization, error) {
	return execute(ctx, s.client, call[domain.RegisteredAuthorization]{
		op:     OpRegisterAuthorization,
		method: http.MethodPost,
		path:   authorizationRequestPath,
		build: func() (payload, error) {
			m, err := codec.AuthorizationRegistrationToMap(reg)
			if err != nil {
				return payload{}, err
			}
			return formPayload(m)
		},
		decode: codec.DecodeRegisteredAuthorization,
	})
}

// RegisterWithSuggestion sends the request as an XML document so the
// account suggestion travels with it.
func (s *AuthorizationService) RegisterWithSuggestion(ctx context.Context, reg domain.AuthorizationRegistration) (*domain.RegisteredAuthorization, error) {
	return execute(ctx, s.client, call[domain.RegisteredAuthorization]{
		op:     OpRegisterAuthorizationWithSuggestion,
		method: http.MethodPost,
		path:   authorizationRequestPath,
		build: func() (payload, error) {
			doc, err := codec.AuthorizationRegistrationToXML(reg)
			if err != nil {
				return payload{}, err
			}
			return xmlPayload(doc), nil
		},
		decode: codec.DecodeRegisteredAuthorization,
	})
}

// Search lists the authorizations created in a date range, one page at a
// time.
func (s *AuthorizationService) Search(ctx context.Context, search domain.AuthorizationSearch) (*domain.AuthorizationSearchResult, error) {
	return execute(ctx, s.client, call[domain.AuthorizationSearchResult]{
		op:     OpSearchAuthorizations,
		method: http.MethodGet,
		path:   authorizationsPath,
		build: func() (payload, error) {
			m, err := codec.AuthorizationSearchToMap(search)
			if err != nil {
				return payload{}, err
			}
			return queryPayload(m)
		},
		decode: codec.DecodeAuthorizationSearchResult,
	})
}

// SearchByCode fetches one authorization by the code the seller approved.
func (s *AuthorizationService) SearchByCode(ctx context.Context, code string) (*domain.Authorization, error) {
	return execute(ctx, s.client, call[domain.Authorization]{
		op:     OpSearchAuthorizationByCode,
		method: http.MethodGet,
		path:   authorizationsPath + "/" + url.PathEscape(code),
		build:  requireCode("code", code),
		decode: codec.DecodeAuthorization,
	})
}

// SearchByNotificationCode resolves the code sent to the notification URL.
func (s *AuthorizationService) SearchByNotificationCode(ctx context.Context, notificationCode string) (*domain.Authorization, error) {
	return execute(ctx, s.client, call[domain.Authorization]{
		op:     OpSearchAuthorizationByNotification,
		method: http.MethodGet,
		path:   authorizationNotificationPath + url.PathEscape(notificationCode),
		build:  requireCode("notificationCode", notificationCode),
		decode: codec.DecodeAuthorization,
	})
}

// requireCode builds the empty payload of a lookup by path code, failing
// before any I/O when the code is blank.
func requireCode(field, code string) func() (payload, error) {
	return func() (payload, error) {
		if strings.TrimSpace(code) == "" {
			return payload{}, domain.NewMissingRequiredFieldError(field)
		}
		return payload{}, nil
	}
}
