package validation

import (
	"strings"
	"testing"

	"product-service/models"
)

func validOfferForm() *models.OfferForm {
	return &models.OfferForm{
		SKU:       "HDP-001",
		Quantity:  5,
		Price:     "99.99",
		Condition: models.ConditionNew,
	}
}

func flatOffer(form *models.OfferForm) *models.ProductSubmission {
	return &models.ProductSubmission{
		Offer: &models.SubmissionOffer{
			CurrencyCode:    "USD",
			FulfillmentType: models.FulfillmentSeller,
			ProcessingTime:  2,
			Form:            form,
		},
	}
}

func TestValidateOfferValid(t *testing.T) {
	errs := ValidateOffer(flatOffer(validOfferForm()), models.DefaultLimits())
	if !errs.Empty() {
		t.Fatalf("unexpected errors: %v", errs)
	}
}

func TestValidateOfferWideFields(t *testing.T) {
	limits := models.DefaultLimits()

	sub := flatOffer(validOfferForm())
	sub.Offer.CurrencyCode = "XXX"
	if errs := ValidateOffer(sub, limits); errs["offer.currency_code"] == nil {
		t.Fatal("unknown currency must fail")
	}

	sub = flatOffer(validOfferForm())
	sub.Offer.FulfillmentType = "dropship"
	if errs := ValidateOffer(sub, limits); errs["offer.fulfillment_type"] == nil {
		t.Fatal("unknown fulfillment type must fail")
	}

	sub = flatOffer(validOfferForm())
	sub.Offer.ProcessingTime = 0
	if errs := ValidateOffer(sub, limits); errs["offer.processing_time"] == nil {
		t.Fatal("non-positive processing time must fail")
	}
}

func TestValidateOfferPrice(t *testing.T) {
	limits := models.DefaultLimits()

	for _, price := range []string{"-5", "0", "abc", ""} {
		form := validOfferForm()
		form.Price = price
		errs := ValidateOffer(flatOffer(form), limits)
		if errs["offer.price"] == nil {
			t.Errorf("price %q accepted", price)
		}
	}
}

func TestValidateOfferSKUAndQuantity(t *testing.T) {
	limits := models.DefaultLimits()

	form := validOfferForm()
	form.SKU = "ab"
	if errs := ValidateOffer(flatOffer(form), limits); errs["offer.sku"] == nil {
		t.Fatal("short SKU must fail")
	}

	form = validOfferForm()
	form.Quantity = 0
	if errs := ValidateOffer(flatOffer(form), limits); errs["offer.quantity"] == nil {
		t.Fatal("zero quantity must fail")
	}
}

func TestValidateOfferUsedCondition(t *testing.T) {
	limits := models.DefaultLimits()

	form := validOfferForm()
	form.Condition = models.ConditionUsed
	if errs := ValidateOffer(flatOffer(form), limits); errs["offer.condition_note"] == nil {
		t.Fatal("used condition without a note must fail")
	}

	form.ConditionNote = "Light scratches on the back panel"
	if errs := ValidateOffer(flatOffer(form), limits); !errs.Empty() {
		t.Fatalf("unexpected errors: %v", errs)
	}

	form = validOfferForm()
	form.Condition = "refurbished"
	if errs := ValidateOffer(flatOffer(form), limits); errs["offer.condition"] == nil {
		t.Fatal("unknown condition must fail")
	}
}

func TestValidateOfferListPrice(t *testing.T) {
	limits := models.DefaultLimits()

	form := validOfferForm()
	form.ListPrice = "120.00"
	if errs := ValidateOffer(flatOffer(form), limits); !errs.Empty() {
		t.Fatalf("unexpected errors: %v", errs)
	}

	// List price must be strictly above the selling price.
	form.ListPrice = "99.99"
	if errs := ValidateOffer(flatOffer(form), limits); errs["offer.list_price"] == nil {
		t.Fatal("list price equal to price must fail")
	}
}

func TestValidateOfferSaleWindow(t *testing.T) {
	limits := models.DefaultLimits()

	form := validOfferForm()
	form.HasSalePrice = true
	form.SalePrice = "79.99"
	form.SaleStartDate = "2026-09-01"
	form.SaleEndDate = "2026-09-15"
	if errs := ValidateOffer(flatOffer(form), limits); !errs.Empty() {
		t.Fatalf("unexpected errors: %v", errs)
	}

	// Sale price must undercut the selling price.
	form.SalePrice = "99.99"
	if errs := ValidateOffer(flatOffer(form), limits); errs["offer.sale_price"] == nil {
		t.Fatal("sale price equal to price must fail")
	}

	form.SalePrice = "79.99"
	form.SaleStartDate = ""
	if errs := ValidateOffer(flatOffer(form), limits); errs["offer.sale_price_start"] == nil {
		t.Fatal("missing sale start date must fail")
	}

	form.SaleStartDate = "2026-09-15"
	form.SaleEndDate = "2026-09-15"
	if errs := ValidateOffer(flatOffer(form), limits); errs["offer.sale_price_end"] == nil {
		t.Fatal("sale end date must be strictly after the start")
	}
}

func TestValidateOfferMinimumOrders(t *testing.T) {
	limits := models.DefaultLimits()

	form := validOfferForm()
	form.MinimumOrders = []*models.MinimumOrder{
		{ID: "mo1", Quantity: 10, Price: "89.99"},
	}
	if errs := ValidateOffer(flatOffer(form), limits); !errs.Empty() {
		t.Fatalf("unexpected errors: %v", errs)
	}

	form.MinimumOrders = []*models.MinimumOrder{
		{ID: "mo1", Quantity: 0, Price: "-1"},
		{Quantity: 10, Price: "89.99"},
	}
	errs := ValidateOffer(flatOffer(form), limits)
	if errs["offer.minimum_orders.mo1.quantity"] == nil {
		t.Fatalf("bad quantity not keyed by entry id: %v", errs)
	}
	if errs["offer.minimum_orders.mo1.price"] == nil {
		t.Fatalf("bad price not keyed by entry id: %v", errs)
	}
	// Entries without an id fall back to their index.
	if errs["offer.minimum_orders.1.id"] == nil {
		t.Fatalf("missing entry id not reported: %v", errs)
	}

	form.MinimumOrders = make([]*models.MinimumOrder, limits.MinimumOrdersMax+1)
	for i := range form.MinimumOrders {
		form.MinimumOrders[i] = &models.MinimumOrder{ID: "mo", Quantity: 1, Price: "1"}
	}
	if errs := ValidateOffer(flatOffer(form), limits); errs["offer.minimum_orders"] == nil {
		t.Fatal("too many minimum orders must fail")
	}
}

func TestValidateOfferVariantsKeyedByTransientID(t *testing.T) {
	limits := models.DefaultLimits()

	bad := validOfferForm()
	bad.Price = "-5"
	sub := &models.ProductSubmission{
		HasVariants: true,
		Details: &models.SubmissionDetails{
			Variants: []models.VariantForm{
				variantForm("v1", "Black edition"),
				variantForm("v2", "White edition"),
			},
		},
		Offer: &models.SubmissionOffer{
			CurrencyCode:    "USD",
			FulfillmentType: models.FulfillmentMegacommerce,
			ProcessingTime:  1,
			Variants: map[string]*models.OfferForm{
				"v1": bad,
				"v2": validOfferForm(),
			},
		},
	}

	errs := ValidateOffer(sub, limits)
	if errs["offer.v1.price"] == nil {
		t.Fatalf("variant price error not keyed by transient id: %v", errs)
	}
	if errs["offer.v2.price"] != nil {
		t.Fatal("valid variant flagged")
	}
}

func TestValidateOfferMissingDeclaredVariant(t *testing.T) {
	limits := models.DefaultLimits()

	sub := &models.ProductSubmission{
		HasVariants: true,
		Details: &models.SubmissionDetails{
			Variants: []models.VariantForm{
				variantForm("v1", "Black edition"),
				variantForm("v2", "White edition"),
			},
		},
		Offer: &models.SubmissionOffer{
			CurrencyCode:    "USD",
			FulfillmentType: models.FulfillmentSeller,
			ProcessingTime:  2,
			Variants: map[string]*models.OfferForm{
				"v1": validOfferForm(),
			},
		},
	}

	errs := ValidateOffer(sub, limits)
	appErr := errs["offer.v2"]
	if appErr == nil || appErr.ID != "products.offer_form.error" {
		t.Fatalf("declared variant without a pricing form not flagged: %v", errs)
	}
	if errs["offer.v1.price"] != nil {
		t.Fatalf("covered variant flagged: %v", errs)
	}

	// An empty offer map fails every declared variant, not just the
	// offer-wide checks.
	sub.Offer.Variants = nil
	errs = ValidateOffer(sub, limits)
	if errs["offer.v1"] == nil || errs["offer.v2"] == nil {
		t.Fatalf("empty offer map passed the per-variant checks: %v", errs)
	}
}

func TestValidateOfferUndeclaredVariantKey(t *testing.T) {
	sub := &models.ProductSubmission{
		HasVariants: true,
		Details: &models.SubmissionDetails{
			Variants: []models.VariantForm{variantForm("v1", "Black edition")},
		},
		Offer: &models.SubmissionOffer{
			CurrencyCode:    "USD",
			FulfillmentType: models.FulfillmentSeller,
			ProcessingTime:  2,
			Variants: map[string]*models.OfferForm{
				"v1": validOfferForm(),
				"v9": validOfferForm(),
			},
		},
	}

	errs := ValidateOffer(sub, models.DefaultLimits())
	if errs["offer.v9"] == nil || errs["offer.v9"].ID != "products.variant_unknown.error" {
		t.Fatalf("offer form for an undeclared variant not flagged: %v", errs)
	}
}

func TestValidateOfferSKUTooLong(t *testing.T) {
	limits := models.DefaultLimits()
	form := validOfferForm()
	form.SKU = strings.Repeat("a", limits.SKUMax+1)
	if errs := ValidateOffer(flatOffer(form), limits); errs["offer.sku"] == nil {
		t.Fatal("over-long SKU must fail")
	}
}
