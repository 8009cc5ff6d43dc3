package validation

import (
	"time"

	"github.com/google/uuid"

	"product-service/models"
	"product-service/utils"
)

// PreSave rewrites a fully validated submission into the normalized storage
// record. It mints stable identifiers for the product, every bullet point and
// every variant, and re-keys variant-scoped data (details, offer) from the
// client-supplied transient keys to the minted stable keys. One transient key
// always resolves to the same stable key within a single pass, so details and
// offer entries for the same submitted variant land under the same stored
// variant.
func PreSave(sub *models.ProductSubmission, userID string) *models.PreSaveResult {
	keys := map[string]string{}
	stableKey := func(transient string) string {
		if s, ok := keys[transient]; ok {
			return s
		}
		s := uuid.NewString()
		keys[transient] = s
		return s
	}

	identity := sub.Identity
	if identity == nil {
		identity = &models.SubmissionIdentity{}
	}

	pro := &models.Product{
		ID:            uuid.NewString(),
		UserID:        userID,
		Title:         identity.Title,
		Slug:          utils.NewSlug().Generate(identity.Title),
		Category:      identity.Category,
		Subcategory:   identity.Subcategory,
		Brand:         identity.BrandName,
		HasVariants:   sub.HasVariants,
		Status:        models.ProductStatusPending,
		Version:       1,
		SchemaVersion: models.SchemaVersion,
		CreatedAt:     time.Now().UnixMilli(),
	}
	if identity.NoBrand {
		pro.Brand = ""
	}

	if sub.Description != nil {
		pro.Description = sub.Description.Description
		for _, bp := range sub.Description.BulletPoints {
			pro.BulletPoints = append(pro.BulletPoints, &models.BulletPoint{
				ID:   uuid.NewString(),
				Text: bp.Text,
			})
		}
	}

	mainKey := normalizeDetails(sub, pro, stableKey)
	normalizeOffer(sub, pro, stableKey, mainKey)

	if len(sub.Safety) > 0 {
		pro.Safety = make(models.VariantForm, len(sub.Safety))
		for k, v := range sub.Safety {
			pro.Safety[k] = v
		}
	}

	return &models.PreSaveResult{
		Product:        pro,
		VariantKeys:    keys,
		MainVariantKey: mainKey,
	}
}

// normalizeDetails re-keys the per-variant attribute maps under stable keys,
// keeping the shared submission-level attributes as-is, and returns the main
// variant key.
func normalizeDetails(sub *models.ProductSubmission, pro *models.Product, stableKey func(string) string) string {
	details := sub.Details
	if details == nil {
		details = &models.SubmissionDetails{}
	}

	if len(details.Shared) > 0 {
		pro.SharedDetails = make(models.VariantForm, len(details.Shared))
		for k, v := range details.Shared {
			pro.SharedDetails[k] = v
		}
	}

	if !sub.HasVariants {
		main := stableKey(models.DefaultVariantKey)
		pro.Variants = []*models.ProductVariant{{ID: main, Title: pro.Title}}
		if len(details.Form) > 0 {
			pro.Details = map[string]models.VariantForm{main: stripReserved(details.Form)}
		}
		return main
	}

	main := ""
	pro.Details = make(map[string]models.VariantForm, len(details.Variants))
	for _, form := range details.Variants {
		stable := stableKey(form.ID())
		if main == "" {
			main = stable
		}

		title := ""
		if t, ok := form[models.FormFieldTitle]; ok && t.Kind == models.AttrKindString {
			title = t.Str
		}
		pro.Variants = append(pro.Variants, &models.ProductVariant{ID: stable, Title: title})
		pro.Details[stable] = stripReserved(form)
	}
	return main
}

// normalizeOffer re-keys pricing forms under stable variant keys. Whenever a
// form's sale-price flag is off, the submitted sale-price trio is discarded,
// not carried along.
func normalizeOffer(sub *models.ProductSubmission, pro *models.Product, stableKey func(string) string, mainKey string) {
	offer := sub.Offer
	if offer == nil {
		return
	}

	stored := &models.ProductOffer{
		CurrencyCode:    offer.CurrencyCode,
		FulfillmentType: offer.FulfillmentType,
		ProcessingTime:  offer.ProcessingTime,
		Variants:        map[string]*models.OfferForm{},
	}

	if sub.HasVariants {
		for transient, form := range offer.Variants {
			stored.Variants[stableKey(transient)] = normalizeOfferForm(form)
		}
	} else if offer.Form != nil {
		stored.Variants[mainKey] = normalizeOfferForm(offer.Form)
	}

	pro.Offer = stored
}

func normalizeOfferForm(form *models.OfferForm) *models.OfferForm {
	if form == nil {
		return nil
	}
	out := *form
	out.MinimumOrders = nil
	for _, mo := range form.MinimumOrders {
		m := *mo
		out.MinimumOrders = append(out.MinimumOrders, &m)
	}
	if !out.HasSalePrice {
		out.SalePrice = ""
		out.SaleStartDate = ""
		out.SaleEndDate = ""
	}
	return &out
}

// stripReserved copies a variant form without its reserved id/title entries;
// those live on the ProductVariant record instead.
func stripReserved(form models.VariantForm) models.VariantForm {
	out := make(models.VariantForm, len(form))
	for k, v := range form {
		if k == models.FormFieldID || k == models.FormFieldTitle {
			continue
		}
		out[k] = v
	}
	return out
}
