package entities

import "strconv"

// Form field names. They are the JSON/multipart keys accepted by the
// registration endpoint and the keys used by the form schema tables.
const (
	FieldCompanyName                = "companyName"
	FieldContactPerson              = "contactPerson"
	FieldEmail                      = "email"
	FieldPhone                      = "phone"
	FieldCountry                    = "country"
	FieldBusinessRegistrationNumber = "businessRegistrationNumber"
	FieldProductCategory            = "productCategory"
	FieldProductSubcategory         = "productSubcategory"
	FieldProductDescription         = "productDescription"
	FieldMinimumOrderQuantity       = "minimumOrderQuantity"
	FieldPackagingType              = "packagingType"
	FieldUnitPrice                  = "unitPrice"
	FieldCurrency                   = "currency"
	FieldCertifications             = "certifications"
	FieldTermsAccepted              = "termsAccepted"
	FieldPrivacyAccepted            = "privacyAccepted"
	FieldMarketingConsent           = "marketingConsent"
)

// VendorSubmission is the canonical record of one vendor application.
//
// Numeric fields keep the caller's text so that validation can report a parse
// failure instead of silently coercing it. The record is never persisted
// locally: it either becomes a CRM record or is discarded.
type VendorSubmission struct {
	CompanyName                string
	ContactPerson              string
	Email                      string
	Phone                      string
	Country                    string
	BusinessRegistrationNumber string
	ProductCategory            string
	ProductSubcategory         string
	ProductDescription         string
	MinimumOrderQuantity       string
	PackagingType              string
	UnitPrice                  string
	Currency                   string
	Certifications             string

	TermsAccepted    bool
	PrivacyAccepted  bool
	MarketingConsent bool

	Documents []Document
}

// Values returns a flat field-name view of the scalar fields. Booleans are
// rendered as "true"/"false".
func (s VendorSubmission) Values() map[string]string {
	return map[string]string{
		FieldCompanyName:                s.CompanyName,
		FieldContactPerson:              s.ContactPerson,
		FieldEmail:                      s.Email,
		FieldPhone:                      s.Phone,
		FieldCountry:                    s.Country,
		FieldBusinessRegistrationNumber: s.BusinessRegistrationNumber,
		FieldProductCategory:            s.ProductCategory,
		FieldProductSubcategory:         s.ProductSubcategory,
		FieldProductDescription:         s.ProductDescription,
		FieldMinimumOrderQuantity:       s.MinimumOrderQuantity,
		FieldPackagingType:              s.PackagingType,
		FieldUnitPrice:                  s.UnitPrice,
		FieldCurrency:                   s.Currency,
		FieldCertifications:             s.Certifications,
		FieldTermsAccepted:              strconv.FormatBool(s.TermsAccepted),
		FieldPrivacyAccepted:            strconv.FormatBool(s.PrivacyAccepted),
		FieldMarketingConsent:           strconv.FormatBool(s.MarketingConsent),
	}
}

// MapStrings applies fn to every string field and returns the result.
// Booleans and documents are copied unchanged.
func (s VendorSubmission) MapStrings(fn func(string) string) VendorSubmission {
	out := s
	for _, p := range []*string{
		&out.CompanyName,
		&out.ContactPerson,
		&out.Email,
		&out.Phone,
		&out.Country,
		&out.BusinessRegistrationNumber,
		&out.ProductCategory,
		&out.ProductSubcategory,
		&out.ProductDescription,
		&out.MinimumOrderQuantity,
		&out.PackagingType,
		&out.UnitPrice,
		&out.Currency,
		&out.Certifications,
	} {
		*p = fn(*p)
	}
	return out
}

// Document is one uploaded file attached to a submission.
type Document struct {
	Name     string
	MimeType string
	Size     int64
	Content  []byte
}
