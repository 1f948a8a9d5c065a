package mapping

import (
	"encoding/json"
	"testing"
	"time"

	"vendor_registration/internal/domain/entities"
)

func testMapper() *Mapper {
	table := []FieldMapping{
		{FormField: entities.FieldCompanyName, RemoteField: "Vendor_Name", Kind: KindString},
		{FormField: entities.FieldUnitPrice, RemoteField: "Unit_Price", Kind: KindNumber},
		{FormField: entities.FieldMinimumOrderQuantity, RemoteField: "MOQ", Kind: KindNumber},
		{FormField: entities.FieldMarketingConsent, RemoteField: "Marketing_Opt_In", Kind: KindBoolean},
		{FormField: entities.FieldCertifications, RemoteField: "Certifications", Kind: KindString},
	}
	derived := DerivedFields{
		SourceField:         "Lead_Source",
		SourceValue:         "Vendor Portal",
		SubmittedAtField:    "Submitted_At",
		StatusField:         "Vendor_Status",
		StatusValue:         "Pending Review",
		EstimatedValueField: "Estimated_Order_Value",
	}
	now := func() time.Time { return time.Date(2026, 3, 4, 5, 6, 7, 0, time.FixedZone("X", 3600)) }
	return NewMapper(table, derived, now)
}

func TestMapper_MapToRemoteSchema(t *testing.T) {
	m := testMapper()

	t.Run("maps, converts and derives", func(t *testing.T) {
		out := m.MapToRemoteSchema(entities.VendorSubmission{
			CompanyName:          "Acme",
			UnitPrice:            "1.25",
			MinimumOrderQuantity: "500",
			MarketingConsent:     true,
		})

		if out["Vendor_Name"] != "Acme" {
			t.Fatalf("unexpected name: %v", out["Vendor_Name"])
		}
		if out["Unit_Price"] != 1.25 || out["MOQ"] != float64(500) {
			t.Fatalf("unexpected numbers: %v %v", out["Unit_Price"], out["MOQ"])
		}
		if out["Marketing_Opt_In"] != true {
			t.Fatalf("unexpected bool: %v", out["Marketing_Opt_In"])
		}
		if out["Estimated_Order_Value"] != 625.0 {
			t.Fatalf("unexpected estimate: %v", out["Estimated_Order_Value"])
		}
		if out["Submitted_At"] != "2026-03-04T04:06:07Z" {
			t.Fatalf("expected UTC timestamp, got %v", out["Submitted_At"])
		}
		if out["Lead_Source"] != "Vendor Portal" || out["Vendor_Status"] != "Pending Review" {
			t.Fatalf("unexpected derived values: %v", out)
		}
	})

	t.Run("empty optional fields are omitted", func(t *testing.T) {
		out := m.MapToRemoteSchema(entities.VendorSubmission{CompanyName: "Acme", Certifications: "  "})
		if _, ok := out["Certifications"]; ok {
			t.Fatalf("expected blank field to be omitted")
		}
		if _, ok := out["Estimated_Order_Value"]; ok {
			t.Fatalf("expected no estimate without operands")
		}
	})

	t.Run("malformed numbers become zero", func(t *testing.T) {
		out := m.MapToRemoteSchema(entities.VendorSubmission{UnitPrice: "abc", MinimumOrderQuantity: "10"})
		if out["Unit_Price"] != float64(0) {
			t.Fatalf("expected 0, got %v", out["Unit_Price"])
		}
		if _, ok := out["Estimated_Order_Value"]; ok {
			t.Fatalf("expected no estimate for malformed price")
		}
	})

	t.Run("non-finite numbers become zero", func(t *testing.T) {
		out := m.MapToRemoteSchema(entities.VendorSubmission{UnitPrice: "NaN", MinimumOrderQuantity: "Inf"})
		if out["Unit_Price"] != float64(0) || out["MOQ"] != float64(0) {
			t.Fatalf("expected zeros, got %v %v", out["Unit_Price"], out["MOQ"])
		}
		if _, ok := out["Estimated_Order_Value"]; ok {
			t.Fatalf("expected no estimate for non-finite operands")
		}
	})

	t.Run("overflowing estimate is omitted", func(t *testing.T) {
		out := m.MapToRemoteSchema(entities.VendorSubmission{UnitPrice: "1e200", MinimumOrderQuantity: "1e200"})
		if out["Unit_Price"] != 1e200 {
			t.Fatalf("unexpected price: %v", out["Unit_Price"])
		}
		if _, ok := out["Estimated_Order_Value"]; ok {
			t.Fatalf("expected overflowing estimate to be omitted, got %v", out["Estimated_Order_Value"])
		}
		if _, err := json.Marshal(out); err != nil {
			t.Fatalf("expected encodable record: %v", err)
		}
	})

	t.Run("false booleans are still sent", func(t *testing.T) {
		out := m.MapToRemoteSchema(entities.VendorSubmission{})
		if out["Marketing_Opt_In"] != false {
			t.Fatalf("expected explicit false, got %v", out["Marketing_Opt_In"])
		}
	})
}
