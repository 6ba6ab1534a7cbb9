package service

import (
	"testing"

	"github.com/DanielPopoola/pagseguro-go/internal/core/domain"
	"github.com/stretchr/testify/require"
)

const (
	testBaseURL = "https://ws.sandbox.pagseguro.uol.com.br"
	xmlLatin1   = "application/xml;charset=ISO-8859-1"

	registeredAuthorizationXML = `<?xml version="1.0" encoding="ISO-8859-1" standalone="yes"?>
<authorizationRequest>
  <code>D2F1C2A8E4E4D5B4A3A0C9B9F2B1F2E0</code>
  <date>2011-02-05T15:46:12.000-02:00</date>
</authorizationRequest>`

	subscribedXML = `<?xml version="1.0" encoding="ISO-8859-1" standalone="yes"?>
<preApproval>
  <code>12D2F2A4B0B0CBB1144F7FA1F4C3B5A1</code>
  <date>2017-06-01T10:00:00-03:00</date>
</preApproval>`

	cancelledXML = `<?xml version="1.0" encoding="ISO-8859-1" standalone="yes"?>
<result>
  <date>2011-11-23T13:40:23.000-02:00</date>
  <status>OK</status>
</result>`

	planRegisteredXML = `<?xml version="1.0" encoding="ISO-8859-1" standalone="yes"?>
<preApprovalRequest>
  <code>DC2DAC98FBFBDD1554493F94E85FAE05</code>
  <date>2014-01-21T00:00:00.000-03:00</date>
</preApprovalRequest>`

	authorizationXML = `<?xml version="1.0" encoding="ISO-8859-1" standalone="yes"?>
<authorization>
  <code>9D7FF2E921216F1334EE9FBEB7B4EBBC</code>
  <creationDate>2011-03-30T15:35:44.000-03:00</creationDate>
  <reference>REF1234</reference>
  <permissions>
    <permission><code>CREATE_CHECKOUTS</code><status>APPROVED</status><lastUpdate>2011-03-30T15:35:44.000-03:00</lastUpdate></permission>
  </permissions>
</authorization>`

	authorizationSearchXML = `<?xml version="1.0" encoding="ISO-8859-1" standalone="yes"?>
<authorizationSearchResult>
  <date>2011-04-01T10:12:00.000-03:00</date>
  <authorizations>
    <authorization>
      <code>9D7FF2E921216F1334EE9FBEB7B4EBBC</code>
      <creationDate>2011-03-30T15:35:44.000-03:00</creationDate>
      <permissions>
        <permission><code>CREATE_CHECKOUTS</code><status>APPROVED</status><lastUpdate>2011-03-30T15:35:44.000-03:00</lastUpdate></permission>
      </permissions>
    </authorization>
  </authorizations>
  <resultsInThisPage>1</resultsInThisPage>
  <currentPage>2</currentPage>
  <totalPages>2</totalPages>
</authorizationSearchResult>`

	serviceErrorsXML = `<?xml version="1.0" encoding="ISO-8859-1" standalone="yes"?>
<errors>
  <error><code>11013</code><message>senderAreaCode invalid value.</message></error>
  <error><code>11014</code><message>senderPhone invalid value.</message></error>
</errors>`
)

var testCredentials = map[string]string{"email": "seller@example.com", "token": "secret-token"}

func newTestClient(transport *MockTransport, observer *MockObserver) *Client {
	// A nil *MockObserver must not become a non-nil interface.
	if observer == nil {
		return NewClient(testBaseURL, testCredentials, transport, nil)
	}
	return NewClient(testBaseURL, testCredentials, transport, observer)
}

func newRegistration(t *testing.T) domain.AuthorizationRegistration {
	t.Helper()
	reg, err := domain.NewAuthorizationRegistration(domain.AuthorizationRegistrationParams{
		Reference: "REF1234",
		Permissions: []domain.Permission{
			domain.PermissionCreateCheckouts,
			domain.PermissionSearchTransactions,
		},
		RedirectURL: "https://loja.example.com.br/retorno",
		Account: &domain.AccountSuggestion{
			Email: "antonio@example.com.br",
			Type:  domain.AccountTypeSeller,
			Person: &domain.Person{
				Name:      "Antônio Carlos",
				Documents: []domain.Document{{Type: domain.DocumentTypeCPF, Value: "23606838450"}},
			},
		},
	})
	require.NoError(t, err)
	return reg
}

func newSubscription(t *testing.T) domain.PreApprovalSubscription {
	t.Helper()
	sub, err := domain.NewPreApprovalSubscription(domain.PreApprovalSubscriptionParams{
		Plan: "FB9AD7F5FFFF8A8774A1EF9E8CB9A7CC",
		Sender: domain.Sender{
			Name:      "José Comprador",
			Email:     "comprador@example.com.br",
			Hash:      "sender-hash-value",
			Documents: []domain.Document{{Type: domain.DocumentTypeCPF, Value: "11475714734"}},
		},
		PaymentMethod: domain.PaymentMethod{
			CreditCard: domain.CreditCard{
				Token: "card-token-value",
				Holder: domain.CardHolder{
					Name:      "JOSE COMPRADOR",
					BirthDate: domain.NewDate(1990, 12, 20),
					Documents: []domain.Document{{Type: domain.DocumentTypeCPF, Value: "11475714734"}},
				},
			},
		},
	})
	require.NoError(t, err)
	return sub
}

func newPlan(t *testing.T) domain.PreApprovalRequest {
	t.Helper()
	amount := domain.MustMoney("49.9")
	req, err := domain.NewPreApprovalRequest(domain.PreApprovalRequestParams{
		Charge:           domain.ChargeAuto,
		Name:             "Academia mensal",
		Period:           domain.PeriodMonthly,
		AmountPerPayment: &amount,
		FinalDate:        domain.NewDate(2030, 1, 31),
	})
	require.NoError(t, err)
	return req
}
