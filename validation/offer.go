package validation

import (
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"product-service/data"
	"product-service/models"
)

// saleDateLayout is the calendar-date format sale windows are submitted in.
const saleDateLayout = "2006-01-02"

// ValidateOffer checks the offer-wide fields (currency, fulfillment type,
// processing time) and then every pricing form: per-variant in variant mode,
// the single flat form otherwise.
func ValidateOffer(sub *models.ProductSubmission, limits models.Limits) models.ErrorMap {
	errs := models.ErrorMap{}
	offer := sub.Offer
	if offer == nil {
		offer = &models.SubmissionOffer{}
	}

	if !data.CurrencyExists(offer.CurrencyCode) {
		errs.Add(models.FieldPath(StageOffer, "currency_code"), models.NewAppError(
			models.ErrID("currency_code"),
			map[string]any{"Code": offer.CurrencyCode},
		))
	}

	switch offer.FulfillmentType {
	case models.FulfillmentMegacommerce, models.FulfillmentSeller:
	default:
		errs.Add(models.FieldPath(StageOffer, "fulfillment_type"), models.NewAppError(
			models.ErrID("fulfillment_type"),
			map[string]any{"Type": offer.FulfillmentType},
		))
	}

	if offer.ProcessingTime <= 0 {
		errs.Add(models.FieldPath(StageOffer, "processing_time"), models.NewAppError(models.ErrID("processing_time"), nil))
	}

	if sub.HasVariants {
		// Every declared variant needs its own pricing form; one the offer
		// section omitted is reported under the variant's id.
		declared := declaredVariantIDs(sub)
		for _, key := range declared {
			form, ok := offer.Variants[key]
			if !ok {
				errs.Add(models.FieldPath(StageOffer, key), models.NewAppError(
					models.ErrID("offer_form"),
					map[string]any{"ID": key},
				))
				continue
			}
			validateOfferForm(errs, models.FieldPath(StageOffer, key), form, limits)
		}
		for key := range offer.Variants {
			if !containsKey(declared, key) {
				errs.Add(models.FieldPath(StageOffer, key), unknownVariantError(key))
			}
		}
		return errs
	}

	validateOfferForm(errs, StageOffer, offer.Form, limits)
	return errs
}

func validateOfferForm(errs models.ErrorMap, base string, form *models.OfferForm, limits models.Limits) {
	if form == nil {
		form = &models.OfferForm{}
	}

	if form.Quantity < limits.MinInventoryQuantity {
		errs.Add(base+".quantity", models.NewAppError(
			models.ErrID("quantity"),
			map[string]any{"Min": limits.MinInventoryQuantity},
		))
	}

	if n := utf8.RuneCountInString(form.SKU); n < limits.SKUMin || n > limits.SKUMax {
		errs.Add(base+".sku", models.NewAppError(
			models.ErrID("sku"),
			map[string]any{"Min": limits.SKUMin, "Max": limits.SKUMax},
		))
	}

	price, priceOK := parsePositivePrice(form.Price)
	if !priceOK {
		errs.Add(base+".price", models.NewAppError(
			models.ErrID("price"),
			map[string]any{"Price": form.Price},
		))
	}

	switch form.Condition {
	case models.ConditionNew:
	case models.ConditionUsed:
		if n := utf8.RuneCountInString(form.ConditionNote); n < limits.ConditionNoteMin || n > limits.ConditionNoteMax {
			errs.Add(base+".condition_note", models.NewAppError(
				models.ErrID("condition_note"),
				map[string]any{"Min": limits.ConditionNoteMin, "Max": limits.ConditionNoteMax},
			))
		}
	default:
		errs.Add(base+".condition", models.NewAppError(
			models.ErrID("condition"),
			map[string]any{"Condition": form.Condition},
		))
	}

	if form.ListPrice != "" {
		listPrice, ok := parsePositivePrice(form.ListPrice)
		if !ok || (priceOK && !listPrice.GreaterThan(price)) {
			errs.Add(base+".list_price", models.NewAppError(
				models.ErrID("list_price"),
				map[string]any{"ListPrice": form.ListPrice},
			))
		}
	}

	if form.HasSalePrice {
		validateSaleWindow(errs, base, form, price, priceOK)
	}

	if len(form.MinimumOrders) > 0 {
		validateMinimumOrders(errs, base, form.MinimumOrders, limits)
	}
}

func validateSaleWindow(errs models.ErrorMap, base string, form *models.OfferForm, price decimal.Decimal, priceOK bool) {
	salePrice, ok := parsePositivePrice(form.SalePrice)
	if !ok || (priceOK && !salePrice.LessThan(price)) {
		errs.Add(base+".sale_price", models.NewAppError(
			models.ErrID("sale_price"),
			map[string]any{"SalePrice": form.SalePrice},
		))
	}

	start, err := time.Parse(saleDateLayout, form.SaleStartDate)
	if form.SaleStartDate == "" || err != nil {
		errs.Add(base+".sale_price_start", models.NewAppError(models.ErrID("sale_price_start"), nil))
		return
	}

	if form.SaleEndDate != "" {
		end, err := time.Parse(saleDateLayout, form.SaleEndDate)
		if err != nil || !end.After(start) {
			errs.Add(base+".sale_price_end", models.NewAppError(models.ErrID("sale_price_end"), nil))
		}
	}
}

func validateMinimumOrders(errs models.ErrorMap, base string, orders []*models.MinimumOrder, limits models.Limits) {
	if n := len(orders); n < limits.MinimumOrdersMin || n > limits.MinimumOrdersMax {
		errs.Add(base+".minimum_orders", models.NewAppError(
			models.ErrID("minimum_orders"),
			map[string]any{"Min": limits.MinimumOrdersMin, "Max": limits.MinimumOrdersMax},
		))
	}

	for i, mo := range orders {
		key := mo.ID
		if key == "" {
			key = strconv.Itoa(i)
			errs.Add(base+".minimum_orders."+key+".id", models.NewAppError(models.ErrID("minimum_order_id"), nil))
		}
		if mo.Quantity < limits.MinInventoryQuantity {
			errs.Add(base+".minimum_orders."+key+".quantity", models.NewAppError(
				models.ErrID("minimum_order_quantity"),
				map[string]any{"Min": limits.MinInventoryQuantity},
			))
		}
		if _, ok := parsePositivePrice(mo.Price); !ok {
			errs.Add(base+".minimum_orders."+key+".price", models.NewAppError(
				models.ErrID("minimum_order_price"),
				map[string]any{"Price": mo.Price},
			))
		}
	}
}

func parsePositivePrice(raw string) (decimal.Decimal, bool) {
	d, err := decimal.NewFromString(raw)
	if err != nil || !d.IsPositive() {
		return decimal.Decimal{}, false
	}
	return d, true
}
