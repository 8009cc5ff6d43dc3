package validation

import (
	"testing"

	"product-service/models"
)

func variantSubmission() *models.ProductSubmission {
	v1 := models.VariantForm{
		"id":    models.StringValue("v1"),
		"title": models.StringValue("Black edition"),
		"color": models.StringValue("black"),
	}
	v2 := models.VariantForm{
		"id":    models.StringValue("v2"),
		"title": models.StringValue("White edition"),
		"color": models.StringValue("white"),
	}

	return &models.ProductSubmission{
		HasVariants: true,
		Identity: &models.SubmissionIdentity{
			Title:               "Wireless Headphones",
			Category:            "electronics",
			Subcategory:         "audio",
			BrandName:           "Soundly",
			NoExternalProductID: true,
		},
		Description: &models.SubmissionDescription{
			Description:  "Over-ear wireless headphones with long battery life.",
			BulletPoints: []*models.BulletPoint{{ID: "tmp-b1", Text: "40h battery"}},
		},
		Details: &models.SubmissionDetails{
			Shared:   models.VariantForm{"material": models.StringValue("plastic")},
			Variants: []models.VariantForm{v1, v2},
		},
		Offer: &models.SubmissionOffer{
			CurrencyCode:    "USD",
			FulfillmentType: models.FulfillmentSeller,
			ProcessingTime:  2,
			Variants: map[string]*models.OfferForm{
				"v1": {SKU: "HDP-B", Quantity: 5, Price: "99.99", Condition: models.ConditionNew},
				"v2": {SKU: "HDP-W", Quantity: 3, Price: "109.99", Condition: models.ConditionNew},
			},
		},
		Safety: models.VariantForm{models.SafetyAttestationField: models.BoolValue(true)},
	}
}

func TestPreSaveTranslationTableConsistency(t *testing.T) {
	result := PreSave(variantSubmission(), "user-1")
	pro := result.Product

	if len(result.VariantKeys) != 2 {
		t.Fatalf("expected 2 key translations, got %d", len(result.VariantKeys))
	}

	// The same transient key resolves to one stable key everywhere: the
	// variant list, the details map and the offer map all agree.
	for _, transient := range []string{"v1", "v2"} {
		stable, ok := result.VariantKeys[transient]
		if !ok || stable == "" {
			t.Fatalf("transient key %s has no stable translation", transient)
		}
		if stable == transient {
			t.Fatalf("stable key for %s not re-minted", transient)
		}
		if _, ok := pro.Details[stable]; !ok {
			t.Fatalf("details not re-keyed for %s", transient)
		}
		if _, ok := pro.Offer.Variants[stable]; !ok {
			t.Fatalf("offer not re-keyed for %s", transient)
		}
	}

	if result.VariantKeys["v1"] == result.VariantKeys["v2"] {
		t.Fatal("distinct transient keys must get distinct stable keys")
	}

	if len(pro.Variants) != 2 {
		t.Fatalf("expected 2 variants, got %d", len(pro.Variants))
	}
	if pro.Variants[0].ID != result.VariantKeys["v1"] || pro.Variants[0].Title != "Black edition" {
		t.Fatalf("first variant = %+v", pro.Variants[0])
	}
	if result.MainVariantKey != pro.Variants[0].ID {
		t.Fatal("main variant key must address the first submitted variant")
	}
}

func TestPreSaveStripsReservedFormFields(t *testing.T) {
	result := PreSave(variantSubmission(), "user-1")

	for stable, form := range result.Product.Details {
		if _, ok := form[models.FormFieldID]; ok {
			t.Fatalf("variant %s kept its id entry", stable)
		}
		if _, ok := form[models.FormFieldTitle]; ok {
			t.Fatalf("variant %s kept its title entry", stable)
		}
		if form["color"].Kind != models.AttrKindString {
			t.Fatalf("variant %s lost its schema attributes", stable)
		}
	}
}

func TestPreSaveFlatSubmission(t *testing.T) {
	sub := variantSubmission()
	sub.HasVariants = false
	sub.Details = &models.SubmissionDetails{
		Form: models.VariantForm{"color": models.StringValue("black")},
	}
	sub.Offer.Variants = nil
	sub.Offer.Form = &models.OfferForm{SKU: "HDP-1", Quantity: 5, Price: "99.99", Condition: models.ConditionNew}

	result := PreSave(sub, "user-1")
	pro := result.Product

	// The implicit variant carries the product title and anchors both the
	// details form and the flat offer form.
	if len(pro.Variants) != 1 {
		t.Fatalf("expected one implicit variant, got %d", len(pro.Variants))
	}
	main := pro.Variants[0]
	if main.ID != result.MainVariantKey || main.Title != pro.Title {
		t.Fatalf("implicit variant = %+v", main)
	}
	if result.VariantKeys[models.DefaultVariantKey] != main.ID {
		t.Fatal("default transient key not translated to the implicit variant")
	}
	if _, ok := pro.Details[main.ID]; !ok {
		t.Fatal("flat details form not keyed under the implicit variant")
	}
	if _, ok := pro.Offer.Variants[main.ID]; !ok {
		t.Fatal("flat offer form not keyed under the implicit variant")
	}
}

func TestPreSaveDiscardsSaleTrioWhenFlagOff(t *testing.T) {
	sub := variantSubmission()
	sub.Offer.Variants["v1"].HasSalePrice = false
	sub.Offer.Variants["v1"].SalePrice = "79.99"
	sub.Offer.Variants["v1"].SaleStartDate = "2026-09-01"
	sub.Offer.Variants["v1"].SaleEndDate = "2026-09-15"

	sub.Offer.Variants["v2"].HasSalePrice = true
	sub.Offer.Variants["v2"].SalePrice = "89.99"
	sub.Offer.Variants["v2"].SaleStartDate = "2026-09-01"

	result := PreSave(sub, "user-1")

	off := result.Product.Offer.Variants[result.VariantKeys["v1"]]
	if off.SalePrice != "" || off.SaleStartDate != "" || off.SaleEndDate != "" {
		t.Fatalf("sale trio survived a submission with the flag off: %+v", off)
	}

	kept := result.Product.Offer.Variants[result.VariantKeys["v2"]]
	if kept.SalePrice != "89.99" || kept.SaleStartDate != "2026-09-01" {
		t.Fatalf("flagged sale data lost: %+v", kept)
	}
}

func TestPreSaveMintsStableIdentifiers(t *testing.T) {
	sub := variantSubmission()
	result := PreSave(sub, "user-9")
	pro := result.Product

	if pro.ID == "" {
		t.Fatal("product id not minted")
	}
	if pro.UserID != "user-9" {
		t.Fatalf("user id = %s", pro.UserID)
	}
	if pro.Slug != "wireless-headphones" {
		t.Fatalf("slug = %s", pro.Slug)
	}
	if pro.Status != models.ProductStatusPending || pro.Version != 1 {
		t.Fatalf("status/version = %s/%d", pro.Status, pro.Version)
	}
	if pro.CreatedAt == 0 {
		t.Fatal("created_at not set")
	}

	if len(pro.BulletPoints) != 1 {
		t.Fatalf("expected 1 bullet point, got %d", len(pro.BulletPoints))
	}
	if pro.BulletPoints[0].ID == "" || pro.BulletPoints[0].ID == "tmp-b1" {
		t.Fatalf("bullet id not re-minted: %q", pro.BulletPoints[0].ID)
	}
	if pro.BulletPoints[0].Text != "40h battery" {
		t.Fatalf("bullet text = %q", pro.BulletPoints[0].Text)
	}
}

func TestPreSaveNoBrandClearsBrand(t *testing.T) {
	sub := variantSubmission()
	sub.Identity.NoBrand = true
	sub.Identity.BrandName = "ShouldVanish"

	result := PreSave(sub, "user-1")
	if result.Product.Brand != "" {
		t.Fatalf("brand = %q, want empty", result.Product.Brand)
	}
}
