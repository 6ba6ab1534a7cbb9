package domain

import "time"

// Result objects are produced by the response decoder only.

// RegisteredAuthorization carries the code the seller must approve.
type RegisteredAuthorization struct {
	Code string    `json:"code"`
	Date time.Time `json:"date"`
}

// RegisteredPreApproval is a plan created by PreApprovalRequest.
type RegisteredPreApproval struct {
	Code string    `json:"code"`
	Date time.Time `json:"date"`
}

// SubscribedPreApproval identifies a sender's adhesion to a plan. The service
// does not always echo the date.
type SubscribedPreApproval struct {
	Code string     `json:"code"`
	Date *time.Time `json:"date,omitempty"`
}

type CancelledPreApprovalSubscription struct {
	Date   time.Time `json:"date"`
	Status string    `json:"status"`
}

// AuthorizationPermission is the state of one scope a seller granted.
type AuthorizationPermission struct {
	Code       Permission `json:"code"`
	Status     string     `json:"status"`
	LastUpdate time.Time  `json:"lastUpdate"`
}

// Authorization is a seller's grant to the application.
type Authorization struct {
	Code             string                    `json:"code"`
	CreationDate     time.Time                 `json:"creationDate"`
	Reference        string                    `json:"reference,omitempty"`
	AccountPublicKey string                    `json:"accountPublicKey,omitempty"`
	Permissions      []AuthorizationPermission `json:"permissions"`
}

// AuthorizationSearchResult is one page of a date range search.
type AuthorizationSearchResult struct {
	Date              time.Time       `json:"date"`
	CurrentPage       int             `json:"currentPage"`
	ResultsInThisPage int             `json:"resultsInThisPage"`
	TotalPages        int             `json:"totalPages"`
	Authorizations    []Authorization `json:"authorizations"`
}

func (r AuthorizationSearchResult) HasNextPage() bool {
	return r.CurrentPage < r.TotalPages
}
