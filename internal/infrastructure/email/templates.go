package email

import (
	"bytes"
	"fmt"
	"html/template"

	"vendor_registration/internal/domain/entities"
)

type templateData struct {
	RecordID string
	Vendor   entities.VendorSubmission
	Files    int
}

func newTemplateData(v entities.VendorSubmission, recordID string) templateData {
	return templateData{RecordID: recordID, Vendor: v, Files: len(v.Documents)}
}

var vendorConfirmationTmpl = template.Must(template.New("vendor_confirmation").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #222;">
  <h2>Thank you for registering, {{.Vendor.ContactPerson}}</h2>
  <p>We have received the vendor registration for <strong>{{.Vendor.CompanyName}}</strong>.</p>
  <p>Our procurement team will review your application and get back to you.</p>
  <table cellpadding="4">
    <tr><td>Reference</td><td>{{.RecordID}}</td></tr>
    <tr><td>Product category</td><td>{{.Vendor.ProductCategory}}</td></tr>
    <tr><td>Documents received</td><td>{{.Files}}</td></tr>
  </table>
  <p>Please quote the reference above in any correspondence.</p>
</body>
</html>`))

var adminAlertTmpl = template.Must(template.New("admin_alert").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #222;">
  <h2>New vendor registration</h2>
  <table cellpadding="4">
    <tr><td>CRM record</td><td>{{.RecordID}}</td></tr>
    <tr><td>Company</td><td>{{.Vendor.CompanyName}}</td></tr>
    <tr><td>Contact</td><td>{{.Vendor.ContactPerson}}</td></tr>
    <tr><td>Email</td><td>{{.Vendor.Email}}</td></tr>
    <tr><td>Phone</td><td>{{.Vendor.Phone}}</td></tr>
    <tr><td>Country</td><td>{{.Vendor.Country}}</td></tr>
    <tr><td>Category</td><td>{{.Vendor.ProductCategory}}{{with .Vendor.ProductSubcategory}} / {{.}}{{end}}</td></tr>
    <tr><td>MOQ</td><td>{{.Vendor.MinimumOrderQuantity}}</td></tr>
    <tr><td>Unit price</td><td>{{.Vendor.UnitPrice}} {{.Vendor.Currency}}</td></tr>
    <tr><td>Marketing consent</td><td>{{if .Vendor.MarketingConsent}}yes{{else}}no{{end}}</td></tr>
    <tr><td>Documents</td><td>{{.Files}}</td></tr>
  </table>
  <p>{{.Vendor.ProductDescription}}</p>
</body>
</html>`))

func render(t *template.Template, data templateData) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render %s: %w", t.Name(), err)
	}
	return buf.String(), nil
}
