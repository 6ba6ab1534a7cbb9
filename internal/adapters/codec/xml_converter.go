package codec

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"reflect"
	"strings"

	"github.com/DanielPopoola/pagseguro-go/internal/core/domain"
)

// Root elements fixed by the service contract.
const (
	RootAuthorizationRequest      = "authorizationRequest"
	RootAuthorization             = "authorization"
	RootAuthorizationSearchResult = "authorizationSearchResult"
	RootPreApproval               = "preApproval"
	RootPreApprovalRequest        = "preApprovalRequest"
	RootCancelResult              = "result"
	RootErrors                    = "errors"
)

const xmlDeclaration = `<?xml version="1.0" encoding="` + Charset + `" standalone="yes"?>`

// Wire documents. Tag names and nesting are the remote schema; do not rename.

type authorizationRequestXML struct {
	XMLName         xml.Name       `xml:"authorizationRequest"`
	Reference       string         `xml:"reference,omitempty"`
	Permissions     permissionsXML `xml:"permissions"`
	RedirectURL     string         `xml:"redirectURL,omitempty"`
	NotificationURL string         `xml:"notificationURL,omitempty"`
	Account         *accountXML    `xml:"account,omitempty"`
}

type permissionsXML struct {
	Codes []string `xml:"code"`
}

type accountXML struct {
	Email   string      `xml:"email"`
	Type    string      `xml:"type"`
	Person  *personXML  `xml:"person,omitempty"`
	Company *companyXML `xml:"company,omitempty"`
}

type personXML struct {
	Name      string        `xml:"name"`
	Documents *documentsXML `xml:"documents,omitempty"`
	BirthDate string        `xml:"birthDate,omitempty"`
	Phones    *phonesXML    `xml:"phones,omitempty"`
	Address   *addressXML   `xml:"address,omitempty"`
}

type companyXML struct {
	Name        string        `xml:"name"`
	DisplayName string        `xml:"displayName,omitempty"`
	WebsiteURL  string        `xml:"websiteURL,omitempty"`
	Documents   *documentsXML `xml:"documents,omitempty"`
	Phones      *phonesXML    `xml:"phones,omitempty"`
	Address     *addressXML   `xml:"address,omitempty"`
	Partner     *partnerXML   `xml:"partner,omitempty"`
}

type partnerXML struct {
	Name      string        `xml:"name"`
	Documents *documentsXML `xml:"documents,omitempty"`
	BirthDate string        `xml:"birthDate,omitempty"`
}

type documentsXML struct {
	Documents []documentXML `xml:"document"`
}

type documentXML struct {
	Type  string `xml:"type"`
	Value string `xml:"value"`
}

type phonesXML struct {
	Phones []phoneXML `xml:"phone"`
}

type phoneXML struct {
	Type     string `xml:"type,omitempty"`
	AreaCode string `xml:"areaCode"`
	Number   string `xml:"number"`
}

type addressXML struct {
	PostalCode string `xml:"postalCode"`
	Street     string `xml:"street"`
	Number     string `xml:"number"`
	Complement string `xml:"complement,omitempty"`
	District   string `xml:"district"`
	City       string `xml:"city"`
	State      string `xml:"state"`
	Country    string `xml:"country"`
}

// AuthorizationRegistrationToXML builds the body of
// POST /v2/authorizations/request with an account suggestion. The returned
// bytes are ISO-8859-1.
func AuthorizationRegistrationToXML(reg domain.AuthorizationRegistration) ([]byte, error) {
	if err := reg.Validate(); err != nil {
		return nil, err
	}
	p := reg.Params()

	doc := authorizationRequestXML{
		Reference:       p.Reference,
		RedirectURL:     p.RedirectURL,
		NotificationURL: p.NotificationURL,
	}
	for _, perm := range p.Permissions {
		doc.Permissions.Codes = append(doc.Permissions.Codes, string(perm))
	}
	if a := p.Account; a != nil {
		doc.Account = &accountXML{
			Email:   a.Email,
			Type:    string(a.Type),
			Person:  toPersonXML(a.Person),
			Company: toCompanyXML(a.Company),
		}
	}

	return marshalWire(doc)
}

func marshalWire(doc interface{}) ([]byte, error) {
	if err := checkWireText(reflect.ValueOf(doc), ""); err != nil {
		return nil, err
	}

	body, err := xml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("error marshalling xml: %w", err)
	}

	// Marshal escapes markup but leaves non-ASCII text as UTF-8.
	enc, err := toWire("document", string(body))
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.Grow(len(xmlDeclaration) + len(enc))
	buf.WriteString(xmlDeclaration)
	buf.Write(enc)
	return buf.Bytes(), nil
}

// checkWireText walks a wire document and reports the first text value that
// the wire charset cannot carry, named by its element path.
func checkWireText(v reflect.Value, path string) error {
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface:
		if v.IsNil() {
			return nil
		}
		return checkWireText(v.Elem(), path)
	case reflect.String:
		_, err := toWire(path, v.String())
		return err
	case reflect.Slice:
		for i := 0; i < v.Len(); i++ {
			if err := checkWireText(v.Index(i), fmt.Sprintf("%s[%d]", path, i)); err != nil {
				return err
			}
		}
	case reflect.Struct:
		t := v.Type()
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if f.Name == "XMLName" {
				continue
			}
			name := strings.SplitN(f.Tag.Get("xml"), ",", 2)[0]
			child := name
			if path != "" {
				child = path + "." + name
			}
			if err := checkWireText(v.Field(i), child); err != nil {
				return err
			}
		}
	}
	return nil
}

func toPersonXML(p *domain.Person) *personXML {
	if p == nil {
		return nil
	}
	return &personXML{
		Name:      p.Name,
		Documents: toDocumentsXML(p.Documents),
		BirthDate: p.BirthDate.String(),
		Phones:    toPhonesXML(p.Phones),
		Address:   toAddressXML(p.Address),
	}
}

func toCompanyXML(c *domain.Company) *companyXML {
	if c == nil {
		return nil
	}
	out := &companyXML{
		Name:        c.Name,
		DisplayName: c.DisplayName,
		WebsiteURL:  c.WebsiteURL,
		Documents:   toDocumentsXML(c.Documents),
		Phones:      toPhonesXML(c.Phones),
		Address:     toAddressXML(c.Address),
	}
	if pt := c.Partner; pt != nil {
		out.Partner = &partnerXML{
			Name:      pt.Name,
			Documents: toDocumentsXML(pt.Documents),
			BirthDate: pt.BirthDate.String(),
		}
	}
	return out
}

func toDocumentsXML(docs []domain.Document) *documentsXML {
	if len(docs) == 0 {
		return nil
	}
	out := &documentsXML{Documents: make([]documentXML, 0, len(docs))}
	for _, d := range docs {
		out.Documents = append(out.Documents, documentXML{Type: string(d.Type), Value: d.Value})
	}
	return out
}

func toPhonesXML(phones []domain.Phone) *phonesXML {
	if len(phones) == 0 {
		return nil
	}
	out := &phonesXML{Phones: make([]phoneXML, 0, len(phones))}
	for _, ph := range phones {
		out.Phones = append(out.Phones, phoneXML{Type: string(ph.Type), AreaCode: ph.AreaCode, Number: ph.Number})
	}
	return out
}

func toAddressXML(a *domain.Address) *addressXML {
	if a == nil {
		return nil
	}
	return &addressXML{
		PostalCode: a.PostalCode,
		Street:     a.Street,
		Number:     a.Number,
		Complement: a.Complement,
		District:   a.District,
		City:       a.City,
		State:      a.State,
		Country:    a.CountryOrDefault(),
	}
}
