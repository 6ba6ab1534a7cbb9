package codec

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/DanielPopoola/pagseguro-go/internal/core/domain"
)

// DecodeOption tunes a single decode call.
type DecodeOption func(*decodeConfig)

type decodeConfig struct {
	charset string
}

// WithCharset sets the charset announced by the transport (Content-Type).
// It is used only when the document itself carries no encoding declaration.
func WithCharset(label string) DecodeOption {
	return func(c *decodeConfig) {
		c.charset = label
	}
}

// envelope is a wire result document that knows its root element and how to
// turn itself into a result object.
type envelope[R any] interface {
	rootName() string
	toResult() (*R, error)
}

type serviceErrorsXML struct {
	XMLName xml.Name `xml:"errors"`
	Errors  []struct {
		Code    string `xml:"code"`
		Message string `xml:"message"`
	} `xml:"error"`
}

type authorizationResponseXML struct {
	XMLName xml.Name `xml:"authorizationRequest"`
	Code    string   `xml:"code"`
	Date    string   `xml:"date"`
}

func (*authorizationResponseXML) rootName() string { return RootAuthorizationRequest }

func (x *authorizationResponseXML) toResult() (*domain.RegisteredAuthorization, error) {
	code, err := required("code", x.Code)
	if err != nil {
		return nil, err
	}
	date, err := requiredTime("date", x.Date)
	if err != nil {
		return nil, err
	}
	return &domain.RegisteredAuthorization{Code: code, Date: date}, nil
}

type preApprovalRequestResponseXML struct {
	XMLName xml.Name `xml:"preApprovalRequest"`
	Code    string   `xml:"code"`
	Date    string   `xml:"date"`
}

func (*preApprovalRequestResponseXML) rootName() string { return RootPreApprovalRequest }

func (x *preApprovalRequestResponseXML) toResult() (*domain.RegisteredPreApproval, error) {
	code, err := required("code", x.Code)
	if err != nil {
		return nil, err
	}
	date, err := requiredTime("date", x.Date)
	if err != nil {
		return nil, err
	}
	return &domain.RegisteredPreApproval{Code: code, Date: date}, nil
}

type subscriptionResponseXML struct {
	XMLName xml.Name `xml:"preApproval"`
	Code    string   `xml:"code"`
	Date    string   `xml:"date"`
}

func (*subscriptionResponseXML) rootName() string { return RootPreApproval }

func (x *subscriptionResponseXML) toResult() (*domain.SubscribedPreApproval, error) {
	code, err := required("code", x.Code)
	if err != nil {
		return nil, err
	}
	date, err := optionalTime("date", x.Date)
	if err != nil {
		return nil, err
	}
	return &domain.SubscribedPreApproval{Code: code, Date: date}, nil
}

type cancelResponseXML struct {
	XMLName xml.Name `xml:"result"`
	Date    string   `xml:"date"`
	Status  string   `xml:"status"`
}

func (*cancelResponseXML) rootName() string { return RootCancelResult }

func (x *cancelResponseXML) toResult() (*domain.CancelledPreApprovalSubscription, error) {
	date, err := requiredTime("date", x.Date)
	if err != nil {
		return nil, err
	}
	status, err := required("status", x.Status)
	if err != nil {
		return nil, err
	}
	return &domain.CancelledPreApprovalSubscription{Date: date, Status: status}, nil
}

type authorizationXML struct {
	XMLName      xml.Name `xml:"authorization"`
	Code         string   `xml:"code"`
	CreationDate string   `xml:"creationDate"`
	Reference    string   `xml:"reference"`
	PublicKey    string   `xml:"account>publicKey"`
	Permissions  []struct {
		Code       string `xml:"code"`
		Status     string `xml:"status"`
		LastUpdate string `xml:"lastUpdate"`
	} `xml:"permissions>permission"`
}

func (*authorizationXML) rootName() string { return RootAuthorization }

func (x *authorizationXML) toResult() (*domain.Authorization, error) {
	code, err := required("code", x.Code)
	if err != nil {
		return nil, err
	}
	created, err := requiredTime("creationDate", x.CreationDate)
	if err != nil {
		return nil, err
	}

	auth := &domain.Authorization{
		Code:             code,
		CreationDate:     created,
		Reference:        strings.TrimSpace(x.Reference),
		AccountPublicKey: strings.TrimSpace(x.PublicKey),
		Permissions:      make([]domain.AuthorizationPermission, 0, len(x.Permissions)),
	}
	for _, p := range x.Permissions {
		permCode, err := required("permission>code", p.Code)
		if err != nil {
			return nil, err
		}
		updated, err := requiredTime("permission>lastUpdate", p.LastUpdate)
		if err != nil {
			return nil, err
		}
		auth.Permissions = append(auth.Permissions, domain.AuthorizationPermission{
			Code:       domain.Permission(permCode),
			Status:     strings.TrimSpace(p.Status),
			LastUpdate: updated,
		})
	}
	return auth, nil
}

type authorizationSearchResultXML struct {
	XMLName           xml.Name           `xml:"authorizationSearchResult"`
	Date              string             `xml:"date"`
	CurrentPage       string             `xml:"currentPage"`
	ResultsInThisPage string             `xml:"resultsInThisPage"`
	TotalPages        string             `xml:"totalPages"`
	Authorizations    []authorizationXML `xml:"authorizations>authorization"`
}

func (*authorizationSearchResultXML) rootName() string { return RootAuthorizationSearchResult }

func (x *authorizationSearchResultXML) toResult() (*domain.AuthorizationSearchResult, error) {
	date, err := requiredTime("date", x.Date)
	if err != nil {
		return nil, err
	}
	res := &domain.AuthorizationSearchResult{
		Date:           date,
		Authorizations: make([]domain.Authorization, 0, len(x.Authorizations)),
	}
	if res.CurrentPage, err = requiredInt("currentPage", x.CurrentPage); err != nil {
		return nil, err
	}
	if res.ResultsInThisPage, err = requiredInt("resultsInThisPage", x.ResultsInThisPage); err != nil {
		return nil, err
	}
	if res.TotalPages, err = requiredInt("totalPages", x.TotalPages); err != nil {
		return nil, err
	}
	for i := range x.Authorizations {
		auth, err := x.Authorizations[i].toResult()
		if err != nil {
			return nil, err
		}
		res.Authorizations = append(res.Authorizations, *auth)
	}
	return res, nil
}

func DecodeAuthorization(payload []byte, opts ...DecodeOption) (*domain.Authorization, error) {
	return decode[domain.Authorization](payload, &authorizationXML{}, opts...)
}

func DecodeAuthorizationSearchResult(payload []byte, opts ...DecodeOption) (*domain.AuthorizationSearchResult, error) {
	return decode[domain.AuthorizationSearchResult](payload, &authorizationSearchResultXML{}, opts...)
}

func DecodeRegisteredAuthorization(payload []byte, opts ...DecodeOption) (*domain.RegisteredAuthorization, error) {
	return decode[domain.RegisteredAuthorization](payload, &authorizationResponseXML{}, opts...)
}

func DecodeRegisteredPreApproval(payload []byte, opts ...DecodeOption) (*domain.RegisteredPreApproval, error) {
	return decode[domain.RegisteredPreApproval](payload, &preApprovalRequestResponseXML{}, opts...)
}

func DecodeSubscribedPreApproval(payload []byte, opts ...DecodeOption) (*domain.SubscribedPreApproval, error) {
	return decode[domain.SubscribedPreApproval](payload, &subscriptionResponseXML{}, opts...)
}

func DecodeCancelledPreApprovalSubscription(payload []byte, opts ...DecodeOption) (*domain.CancelledPreApprovalSubscription, error) {
	return decode[domain.CancelledPreApprovalSubscription](payload, &cancelResponseXML{}, opts...)
}

// DecodeServiceError parses an <errors> document. It returns a *DecodeError
// when the payload is anything else.
func DecodeServiceError(payload []byte, opts ...DecodeOption) (*domain.ServiceError, error) {
	cfg := newDecodeConfig(opts)
	root, err := rootElement(payload, cfg)
	if err != nil {
		return nil, err
	}
	if root != RootErrors {
		return nil, domain.NewDecodeError(fmt.Sprintf("unexpected root element <%s>, want <%s>", root, RootErrors), nil)
	}
	return parseServiceError(payload, cfg)
}

// decode dispatches on the root element: the expected result, the service
// error schema, or a decode error for anything else.
func decode[R any](payload []byte, into envelope[R], opts ...DecodeOption) (*R, error) {
	cfg := newDecodeConfig(opts)

	root, err := rootElement(payload, cfg)
	if err != nil {
		return nil, err
	}

	switch root {
	case RootErrors:
		svcErr, err := parseServiceError(payload, cfg)
		if err != nil {
			return nil, err
		}
		return nil, svcErr
	case into.rootName():
		if err := unmarshal(payload, cfg, root, into); err != nil {
			return nil, err
		}
		return into.toResult()
	default:
		return nil, domain.NewDecodeError(fmt.Sprintf("unexpected root element <%s>, want <%s>", root, into.rootName()), nil)
	}
}

func parseServiceError(payload []byte, cfg decodeConfig) (*domain.ServiceError, error) {
	var doc serviceErrorsXML
	if err := unmarshal(payload, cfg, RootErrors, &doc); err != nil {
		return nil, err
	}
	if len(doc.Errors) == 0 {
		return nil, domain.NewDecodeError("<errors> document has no <error> entries", nil)
	}

	svcErr := &domain.ServiceError{Errors: make([]domain.ServiceErrorDetail, 0, len(doc.Errors))}
	for _, e := range doc.Errors {
		svcErr.Errors = append(svcErr.Errors, domain.ServiceErrorDetail{
			Code:    strings.TrimSpace(e.Code),
			Message: strings.TrimSpace(e.Message),
		})
	}
	return svcErr, nil
}

// rootElement reads tokens up to the first start element. It fails on empty
// payloads, syntax errors and unsupported charsets.
func rootElement(payload []byte, cfg decodeConfig) (string, error) {
	if len(bytes.TrimSpace(payload)) == 0 {
		return "", domain.NewDecodeError("empty response body", nil)
	}

	dec, err := newXMLDecoder(payload, cfg)
	if err != nil {
		return "", err
	}
	for {
		tok, err := dec.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return "", domain.NewDecodeError("no root element", nil)
			}
			return "", domain.NewDecodeError("invalid xml", err)
		}
		if se, ok := tok.(xml.StartElement); ok {
			return se.Name.Local, nil
		}
	}
}

func newDecodeConfig(opts []DecodeOption) decodeConfig {
	var cfg decodeConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// unmarshal decodes the whole payload into v. Only whitespace, comments and
// processing instructions may follow the root element.
func unmarshal(payload []byte, cfg decodeConfig, root string, v any) error {
	dec, err := newXMLDecoder(payload, cfg)
	if err != nil {
		return err
	}
	if err := dec.Decode(v); err != nil {
		return domain.NewDecodeError("malformed <"+root+"> document", err)
	}

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return domain.NewDecodeError("invalid xml after <"+root+">", err)
		}
		switch t := tok.(type) {
		case xml.Comment, xml.ProcInst:
		case xml.CharData:
			if len(bytes.TrimSpace(t)) > 0 {
				return domain.NewDecodeError("unexpected text after <"+root+">", nil)
			}
		default:
			return domain.NewDecodeError("unexpected content after <"+root+">", nil)
		}
	}
}

// newXMLDecoder applies the transport charset when the document has no
// declaration. An unsupported label fails the same way an unsupported
// declaration does.
func newXMLDecoder(payload []byte, cfg decodeConfig) (*xml.Decoder, error) {
	var r io.Reader = bytes.NewReader(payload)
	if cfg.charset != "" && !hasEncodingDeclaration(payload) {
		enc, err := lookupEncoding(cfg.charset)
		if err != nil {
			return nil, domain.NewDecodeError("unsupported response charset", err)
		}
		if enc != nil {
			r = enc.NewDecoder().Reader(r)
		}
	}
	dec := xml.NewDecoder(r)
	dec.CharsetReader = charsetReader
	return dec, nil
}

func hasEncodingDeclaration(payload []byte) bool {
	head := payload
	if len(head) > 100 {
		head = head[:100]
	}
	head = bytes.TrimSpace(head)
	if !bytes.HasPrefix(head, []byte("<?xml")) {
		return false
	}
	end := bytes.Index(head, []byte("?>"))
	if end < 0 {
		end = len(head)
	}
	return bytes.Contains(head[:end], []byte("encoding="))
}

func required(element, value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", domain.NewMissingElementError(element)
	}
	return value, nil
}

func requiredInt(element, value string) (int, error) {
	value, err := required(element, value)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, domain.NewDecodeError(fmt.Sprintf("element <%s> is not an integer", element), err)
	}
	return n, nil
}

func requiredTime(element, value string) (time.Time, error) {
	value, err := required(element, value)
	if err != nil {
		return time.Time{}, err
	}
	return parseTime(element, value)
}

func optionalTime(element, value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	t, err := parseTime(element, value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// parseTime accepts RFC 3339 with optional fractional seconds, the format the
// service uses (2011-02-05T15:46:12.000-02:00).
func parseTime(element, value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, domain.NewDecodeError(fmt.Sprintf("element <%s> has invalid date %q", element, value), err)
	}
	return t, nil
}
