package request

import (
	"encoding/json"
	"errors"
	"strings"

	"vendor_registration/internal/domain/entities"
)

var ErrInvalidScalar = errors.New("expected a string, number or boolean")

// FlexString accepts a JSON string, number or boolean and keeps its text.
// Numeric form fields are often sent unquoted by JSON clients.
type FlexString string

func (f *FlexString) UnmarshalJSON(b []byte) error {
	raw := strings.TrimSpace(string(b))
	switch {
	case raw == "null":
		*f = ""
		return nil
	case strings.HasPrefix(raw, `"`):
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	case raw == "true" || raw == "false":
		*f = FlexString(raw)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return ErrInvalidScalar
	}
	*f = FlexString(n.String())
	return nil
}

// FlexBool accepts true/false, 1/0 and the strings "true", "on", "yes", "1".
type FlexBool bool

func (f *FlexBool) UnmarshalJSON(b []byte) error {
	raw := strings.TrimSpace(string(b))
	if raw == "null" {
		*f = false
		return nil
	}
	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = FlexBool(ParseBool(s))
		return nil
	}
	*f = FlexBool(ParseBool(raw))
	return nil
}

func ParseBool(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "on", "yes":
		return true
	}
	return false
}

// VendorRegistrationRequest is the body of POST /api/vendor-registration,
// either as JSON or as multipart form fields of the same names.
type VendorRegistrationRequest struct {
	CompanyName                FlexString `json:"companyName" example:"Acme Foods Ltd"`
	ContactPerson              FlexString `json:"contactPerson" example:"Jordan Lee"`
	Email                      FlexString `json:"email" example:"jordan@acme.example"`
	Phone                      FlexString `json:"phone" example:"+44 20 7946 0958"`
	Country                    FlexString `json:"country" example:"United Kingdom"`
	BusinessRegistrationNumber FlexString `json:"businessRegistrationNumber" example:"GB123456"`
	ProductCategory            FlexString `json:"productCategory" example:"Snacks"`
	ProductSubcategory         FlexString `json:"productSubcategory"`
	ProductDescription         FlexString `json:"productDescription"`
	MinimumOrderQuantity       FlexString `json:"minimumOrderQuantity" swaggertype:"string" example:"500"`
	PackagingType              FlexString `json:"packagingType" example:"Carton"`
	UnitPrice                  FlexString `json:"unitPrice" swaggertype:"string" example:"1.25"`
	Currency                   FlexString `json:"currency" example:"GBP"`
	Certifications             FlexString `json:"certifications"`
	TermsAccepted              FlexBool   `json:"termsAccepted" swaggertype:"boolean"`
	PrivacyAccepted            FlexBool   `json:"privacyAccepted" swaggertype:"boolean"`
	MarketingConsent           FlexBool   `json:"marketingConsent" swaggertype:"boolean"`
}

// FromFormValues builds the request from flat form fields.
func FromFormValues(get func(key string) string) VendorRegistrationRequest {
	s := func(k string) FlexString { return FlexString(get(k)) }
	b := func(k string) FlexBool { return FlexBool(ParseBool(get(k))) }
	return VendorRegistrationRequest{
		CompanyName:                s(entities.FieldCompanyName),
		ContactPerson:              s(entities.FieldContactPerson),
		Email:                      s(entities.FieldEmail),
		Phone:                      s(entities.FieldPhone),
		Country:                    s(entities.FieldCountry),
		BusinessRegistrationNumber: s(entities.FieldBusinessRegistrationNumber),
		ProductCategory:            s(entities.FieldProductCategory),
		ProductSubcategory:         s(entities.FieldProductSubcategory),
		ProductDescription:         s(entities.FieldProductDescription),
		MinimumOrderQuantity:       s(entities.FieldMinimumOrderQuantity),
		PackagingType:              s(entities.FieldPackagingType),
		UnitPrice:                  s(entities.FieldUnitPrice),
		Currency:                   s(entities.FieldCurrency),
		Certifications:             s(entities.FieldCertifications),
		TermsAccepted:              b(entities.FieldTermsAccepted),
		PrivacyAccepted:            b(entities.FieldPrivacyAccepted),
		MarketingConsent:           b(entities.FieldMarketingConsent),
	}
}

func (r VendorRegistrationRequest) ToEntity(docs []entities.Document) entities.VendorSubmission {
	return entities.VendorSubmission{
		CompanyName:                string(r.CompanyName),
		ContactPerson:              string(r.ContactPerson),
		Email:                      string(r.Email),
		Phone:                      string(r.Phone),
		Country:                    string(r.Country),
		BusinessRegistrationNumber: string(r.BusinessRegistrationNumber),
		ProductCategory:            string(r.ProductCategory),
		ProductSubcategory:         string(r.ProductSubcategory),
		ProductDescription:         string(r.ProductDescription),
		MinimumOrderQuantity:       string(r.MinimumOrderQuantity),
		PackagingType:              string(r.PackagingType),
		UnitPrice:                  string(r.UnitPrice),
		Currency:                   string(r.Currency),
		Certifications:             string(r.Certifications),
		TermsAccepted:              bool(r.TermsAccepted),
		PrivacyAccepted:            bool(r.PrivacyAccepted),
		MarketingConsent:           bool(r.MarketingConsent),
		Documents:                  docs,
	}
}
