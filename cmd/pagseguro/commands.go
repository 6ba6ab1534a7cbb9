package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	pagseguro "github.com/DanielPopoola/pagseguro-go"
	"github.com/spf13/cobra"
)

func authorizeCmd() *cobra.Command {
	var (
		permissions     []string
		reference       string
		redirectURL     string
		notificationURL string
		suggestEmail    string
		suggestName     string
		suggestCPF      string
	)

	cmd := &cobra.Command{
		Use:   "authorize",
		Short: "Register an application authorization request",
		Long: `Registers an authorization request. With --suggest-email the request is
sent as XML and carries an account suggestion for a seller person.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			params := pagseguro.AuthorizationRegistrationParams{
				Reference:       reference,
				RedirectURL:     redirectURL,
				NotificationURL: notificationURL,
			}
			for _, p := range permissions {
				params.Permissions = append(params.Permissions, pagseguro.Permission(strings.ToUpper(p)))
			}
			if suggestEmail != "" {
				person := &pagseguro.Person{Name: suggestName}
				if suggestCPF != "" {
					person.Documents = []pagseguro.Document{{Type: pagseguro.DocumentTypeCPF, Value: suggestCPF}}
				}
				params.Account = &pagseguro.AccountSuggestion{
					Email:  suggestEmail,
					Type:   pagseguro.AccountTypeSeller,
					Person: person,
				}
			}

			reg, err := pagseguro.NewAuthorizationRegistration(params)
			if err != nil {
				return err
			}

			return withClient(cmd, func(ctx context.Context, c *pagseguro.Client) (any, error) {
				if params.Account != nil {
					return c.Authorizations.RegisterWithSuggestion(ctx, reg)
				}
				return c.Authorizations.Register(ctx, reg)
			})
		},
	}

	cmd.Flags().StringSliceVarP(&permissions, "permission", "p", nil, "Permission code (repeatable), e.g. CREATE_CHECKOUTS")
	cmd.Flags().StringVar(&reference, "reference", "", "Your reference for this request")
	cmd.Flags().StringVar(&redirectURL, "redirect-url", "", "Where the seller returns after approving")
	cmd.Flags().StringVar(&notificationURL, "notification-url", "", "Where authorization notifications are sent")
	cmd.Flags().StringVar(&suggestEmail, "suggest-email", "", "Suggest an account with this email")
	cmd.Flags().StringVar(&suggestName, "suggest-name", "", "Name of the suggested seller")
	cmd.Flags().StringVar(&suggestCPF, "suggest-cpf", "", "CPF of the suggested seller")
	_ = cmd.MarkFlagRequired("permission")

	return cmd
}

func subscribeCmd() *cobra.Command {
	var (
		plan            string
		reference       string
		senderName      string
		senderEmail     string
		senderIP        string
		senderHash      string
		senderCPF       string
		cardToken       string
		holderName      string
		holderBirthDate string
		holderCPF       string
	)

	cmd := &cobra.Command{
		Use:   "subscribe",
		Short: "Subscribe a sender to a pre-approval plan",
		RunE: func(cmd *cobra.Command, args []string) error {
			params := pagseguro.PreApprovalSubscriptionParams{
				Plan:      plan,
				Reference: reference,
				Sender: pagseguro.Sender{
					Name:  senderName,
					Email: senderEmail,
					IP:    senderIP,
					Hash:  senderHash,
				},
				PaymentMethod: pagseguro.PaymentMethod{
					Type: pagseguro.PaymentMethodCreditCard,
					CreditCard: pagseguro.CreditCard{
						Token:  cardToken,
						Holder: pagseguro.CardHolder{Name: holderName},
					},
				},
			}
			if senderCPF != "" {
				params.Sender.Documents = []pagseguro.Document{{Type: pagseguro.DocumentTypeCPF, Value: senderCPF}}
			}
			if holderCPF != "" {
				params.PaymentMethod.CreditCard.Holder.Documents = []pagseguro.Document{{Type: pagseguro.DocumentTypeCPF, Value: holderCPF}}
			}
			if holderBirthDate != "" {
				d, err := pagseguro.ParseDate(holderBirthDate)
				if err != nil {
					return err
				}
				params.PaymentMethod.CreditCard.Holder.BirthDate = d
			}

			sub, err := pagseguro.NewPreApprovalSubscription(params)
			if err != nil {
				return err
			}

			return withClient(cmd, func(ctx context.Context, c *pagseguro.Client) (any, error) {
				return c.PreApprovals.Subscribe(ctx, sub)
			})
		},
	}

	cmd.Flags().StringVar(&plan, "plan", "", "Plan code")
	cmd.Flags().StringVar(&reference, "reference", "", "Your reference for this subscription")
	cmd.Flags().StringVar(&senderName, "sender-name", "", "Sender name")
	cmd.Flags().StringVar(&senderEmail, "sender-email", "", "Sender email")
	cmd.Flags().StringVar(&senderIP, "sender-ip", "", "Sender IP address")
	cmd.Flags().StringVar(&senderHash, "sender-hash", "", "Sender fingerprint hash")
	cmd.Flags().StringVar(&senderCPF, "sender-cpf", "", "Sender CPF")
	cmd.Flags().StringVar(&cardToken, "card-token", "", "Credit card token")
	cmd.Flags().StringVar(&holderName, "holder-name", "", "Card holder name")
	cmd.Flags().StringVar(&holderBirthDate, "holder-birth-date", "", "Card holder birth date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&holderCPF, "holder-cpf", "", "Card holder CPF")
	_ = cmd.MarkFlagRequired("plan")
	_ = cmd.MarkFlagRequired("sender-email")
	_ = cmd.MarkFlagRequired("card-token")

	return cmd
}

func cancelCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cancel [code]",
		Short: "Cancel a pre-approval subscription",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd, func(ctx context.Context, c *pagseguro.Client) (any, error) {
				return c.PreApprovals.CancelByCode(ctx, args[0])
			})
		},
	}
}

func planCmd() *cobra.Command {
	var (
		name             string
		details          string
		reference        string
		charge           string
		period           string
		amountPerPayment string
		maxTotalAmount   string
		finalDate        string
		items            []string
	)

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Register a pre-approval plan",
		RunE: func(cmd *cobra.Command, args []string) error {
			params := pagseguro.PreApprovalRequestParams{
				Reference: reference,
				Charge:    pagseguro.Charge(strings.ToUpper(charge)),
				Name:      name,
				Details:   details,
				Period:    pagseguro.Period(strings.ToUpper(period)),
			}

			var err error
			if params.AmountPerPayment, err = optionalMoney(amountPerPayment); err != nil {
				return flagError("amount-per-payment", err)
			}
			if params.MaxTotalAmount, err = optionalMoney(maxTotalAmount); err != nil {
				return flagError("max-total-amount", err)
			}
			if finalDate != "" {
				if params.FinalDate, err = pagseguro.ParseDate(finalDate); err != nil {
					return flagError("final-date", err)
				}
			}
			for _, raw := range items {
				item, err := parseItem(raw)
				if err != nil {
					return err
				}
				params.Items = append(params.Items, item)
			}

			req, err := pagseguro.NewPreApprovalRequest(params)
			if err != nil {
				return err
			}

			return withClient(cmd, func(ctx context.Context, c *pagseguro.Client) (any, error) {
				return c.PreApprovals.Request(ctx, req)
			})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Plan name")
	cmd.Flags().StringVar(&details, "details", "", "Plan description")
	cmd.Flags().StringVar(&reference, "reference", "", "Your reference for this plan")
	cmd.Flags().StringVar(&charge, "charge", string(pagseguro.ChargeAuto), "AUTO or MANUAL")
	cmd.Flags().StringVar(&period, "period", string(pagseguro.PeriodMonthly), "Billing period, e.g. MONTHLY")
	cmd.Flags().StringVar(&amountPerPayment, "amount-per-payment", "", "Amount charged each period, e.g. 49.90")
	cmd.Flags().StringVar(&maxTotalAmount, "max-total-amount", "", "Ceiling for the whole plan")
	cmd.Flags().StringVar(&finalDate, "final-date", "", "Last day of the plan (YYYY-MM-DD)")
	cmd.Flags().StringArrayVar(&items, "item", nil, "Item as id:description:amount:quantity (repeatable)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func authorizationsCmd() *cobra.Command {
	var (
		code         string
		notification string
		from         string
		to           string
		page         int
		maxResults   int
	)

	cmd := &cobra.Command{
		Use:   "authorizations",
		Short: "Search application authorizations",
		Long: `Looks up one authorization with --code or --notification, or lists the
authorizations created between --from and --to (YYYY-MM-DD or YYYY-MM-DDTHH:MM,
local time) one page at a time.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch {
			case code != "":
				return withClient(cmd, func(ctx context.Context, c *pagseguro.Client) (any, error) {
					return c.Authorizations.SearchByCode(ctx, code)
				})
			case notification != "":
				return withClient(cmd, func(ctx context.Context, c *pagseguro.Client) (any, error) {
					return c.Authorizations.SearchByNotificationCode(ctx, notification)
				})
			}

			if from == "" {
				return pagseguro.NewInvalidFieldError("--from", "is required unless --code or --notification is given")
			}
			params := pagseguro.AuthorizationSearchParams{Page: page, MaxPageResults: maxResults}
			var err error
			if params.InitialDate, err = parseSearchTime(from); err != nil {
				return flagError("from", err)
			}
			if to != "" {
				if params.FinalDate, err = parseSearchTime(to); err != nil {
					return flagError("to", err)
				}
			}

			search, err := pagseguro.NewAuthorizationSearch(params)
			if err != nil {
				return err
			}

			return withClient(cmd, func(ctx context.Context, c *pagseguro.Client) (any, error) {
				return c.Authorizations.Search(ctx, search)
			})
		},
	}

	cmd.Flags().StringVar(&code, "code", "", "Authorization code")
	cmd.Flags().StringVar(&notification, "notification", "", "Notification code received on the notification URL")
	cmd.Flags().StringVar(&from, "from", "", "Start of the creation date range")
	cmd.Flags().StringVar(&to, "to", "", "End of the creation date range")
	cmd.Flags().IntVar(&page, "page", 0, "Page to fetch, starting at 1")
	cmd.Flags().IntVar(&maxResults, "max-results", 0, "Results per page")
	cmd.MarkFlagsMutuallyExclusive("code", "notification", "from")

	return cmd
}

func parseSearchTime(s string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02T15:04", "2006-01-02"} {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q: want YYYY-MM-DD or YYYY-MM-DDTHH:MM", s)
}

// flagError reports unparseable flag input as a validation error so it is
// categorized as a client error.
func flagError(flag string, err error) error {
	return pagseguro.NewInvalidFieldError("--"+flag, err.Error())
}

func optionalMoney(s string) (*pagseguro.Money, error) {
	if s == "" {
		return nil, nil
	}
	m, err := pagseguro.ParseMoney(s)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// parseItem reads "id:description:amount:quantity". The description may not
// contain ':'.
func parseItem(raw string) (pagseguro.Item, error) {
	parts := strings.Split(raw, ":")
	if len(parts) != 4 {
		return pagseguro.Item{}, flagError("item", fmt.Errorf("%q: want id:description:amount:quantity", raw))
	}
	amount, err := pagseguro.ParseMoney(parts[2])
	if err != nil {
		return pagseguro.Item{}, flagError("item", fmt.Errorf("%q: %w", raw, err))
	}
	qty, err := strconv.Atoi(parts[3])
	if err != nil {
		return pagseguro.Item{}, flagError("item", fmt.Errorf("%q: quantity: %w", raw, err))
	}
	return pagseguro.Item{ID: parts[0], Description: parts[1], Amount: amount, Quantity: qty}, nil
}
