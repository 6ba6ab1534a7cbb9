package codec_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/DanielPopoola/pagseguro-go/internal/core/domain"
	"github.com/stretchr/testify/require"
)

func loadFixture(t *testing.T, name string) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	return data
}

func testAddress() *domain.Address {
	return &domain.Address{
		Street:     "Av. Brig. Faria Lima",
		Number:     "1384",
		Complement: "5º andar",
		District:   "Jardim Paulistano",
		City:       "São Paulo",
		State:      "SP",
		PostalCode: "01452002",
	}
}

func registrationParams() domain.AuthorizationRegistrationParams {
	return domain.AuthorizationRegistrationParams{
		Reference: "REF1234",
		Permissions: []domain.Permission{
			domain.PermissionCreateCheckouts,
			domain.PermissionSearchTransactions,
		},
		RedirectURL:     "https://loja.example.com.br/retorno",
		NotificationURL: "https://loja.example.com.br/notificacao",
	}
}

func registrationWithPerson(t *testing.T) domain.AuthorizationRegistration {
	t.Helper()
	params := registrationParams()
	params.Account = &domain.AccountSuggestion{
		Email: "antonio@example.com.br",
		Type:  domain.AccountTypeSeller,
		Person: &domain.Person{
			Name:      "Antônio Carlos",
			Documents: []domain.Document{{Type: domain.DocumentTypeCPF, Value: "23606838450"}},
			BirthDate: domain.NewDate(1982, 2, 5),
			Phones: []domain.Phone{
				{Type: domain.PhoneTypeHome, AreaCode: "11", Number: "30302323"},
				{Type: domain.PhoneTypeMobile, AreaCode: "11", Number: "976302323"},
			},
			Address: testAddress(),
		},
	}
	reg, err := domain.NewAuthorizationRegistration(params)
	require.NoError(t, err)
	return reg
}

func subscriptionParams() domain.PreApprovalSubscriptionParams {
	return domain.PreApprovalSubscriptionParams{
		Plan:      "FB9AD7F5FFFF8A8774A1EF9E8CB9A7CC",
		Reference: "SUB-001",
		Sender: domain.Sender{
			Name:  "José Comprador",
			Email: "comprador@example.com.br",
			IP:    "192.168.0.1",
			Hash:  "hash-abc",
			Phone: &domain.Phone{AreaCode: "11", Number: "988881234"},
			Documents: []domain.Document{
				{Type: domain.DocumentTypeCPF, Value: "11475714734"},
			},
			Address: testAddress(),
		},
		PaymentMethod: domain.PaymentMethod{
			CreditCard: domain.CreditCard{
				Token: "5b97542cd1524b67a9e7b9a6b6b3f2e1",
				Holder: domain.CardHolder{
					Name:      "JOSE COMPRADOR",
					BirthDate: domain.NewDate(1990, 12, 20),
					Documents: []domain.Document{{Type: domain.DocumentTypeCPF, Value: "11475714734"}},
				},
			},
		},
	}
}

func planParams() domain.PreApprovalRequestParams {
	amount := domain.MustMoney("10")
	return domain.PreApprovalRequestParams{
		Reference:        "PLAN-01",
		Charge:           domain.ChargeAuto,
		Name:             "Academia mensal",
		Period:           domain.PeriodMonthly,
		AmountPerPayment: &amount,
		FinalDate:        domain.NewDate(2030, 1, 31),
		Items: []domain.Item{
			{ID: "0001", Description: "Mensalidade", Amount: domain.MustMoney("10"), Quantity: 1},
			{ID: "0002", Description: "Taxa", Amount: domain.MustMoney("10.005"), Quantity: 2},
			{ID: "0003", Description: "Toalha", Amount: domain.MustMoney("1234.5"), Quantity: 1},
		},
	}
}
