package service

import (
	"context"
	"net/http"
	"net/url"

	"github.com/DanielPopoola/pagseguro-go/internal/adapters/codec"
	"github.com/DanielPopoola/pagseguro-go/internal/core/domain"
	"github.com/DanielPopoola/pagseguro-go/internal/core/ports"
)

const (
	OpSubscribePreApproval ports.Operation = "preapprovals.subscribe"
	OpCancelPreApproval    ports.Operation = "preapprovals.cancel"
	OpRequestPreApproval   ports.Operation = "preapprovals.request"

	subscribePath      = "/pre-approvals"
	cancelPathPrefix   = "/v2/pre-approvals/cancel/"
	preApprovalReqPath = "/v2/pre-approvals/request"
)

// PreApprovalService manages recurring payment plans and the subscriptions
// to them.
type PreApprovalService struct {
	client *Client
}

func NewPreApprovalService(client *Client) *PreApprovalService {
	return &PreApprovalService{client: client}
}

// Subscribe enrolls a sender in an existing plan.
func (s *PreApprovalService) Subscribe(ctx context.Context, sub domain.PreApprovalSubscription) (*domain.SubscribedPreApproval, error) {
	return execute(ctx, s.client, call[domain.SubscribedPreApproval]{
		op:     OpSubscribePreApproval,
		method: http.MethodPost,
		path:   subscribePath,
		build: func() (payload, error) {
			m, err := codec.PreApprovalSubscriptionToMap(sub)
			if err != nil {
				return payload{}, err
			}
			return formPayload(m)
		},
		decode: codec.DecodeSubscribedPreApproval,
	})
}

// CancelByCode cancels a subscription. The code is path-escaped as given.
func (s *PreApprovalService) CancelByCode(ctx context.Context, code string) (*domain.CancelledPreApprovalSubscription, error) {
	return execute(ctx, s.client, call[domain.CancelledPreApprovalSubscription]{
		op:     OpCancelPreApproval,
		method: http.MethodPut,
		path:   cancelPathPrefix + url.PathEscape(code),
		build:  requireCode("code", code),
		decode: codec.DecodeCancelledPreApprovalSubscription,
	})
}

// Request registers a new plan that senders can later subscribe to.
func (s *PreApprovalService) Request(ctx context.Context, req domain.PreApprovalRequest) (*domain.RegisteredPreApproval, error) {
	return execute(ctx, s.client, call[domain.RegisteredPreApproval]{
		op:     OpRequestPreApproval,
		method: http.MethodPost,
		path:   preApprovalReqPath,
		build: func() (payload, error) {
			m, err := codec.PreApprovalRequestToMap(req)
			if err != nil {
				return payload{}, err
			}
			return formPayload(m)
		},
		decode: codec.DecodeRegisteredPreApproval,
	})
}
