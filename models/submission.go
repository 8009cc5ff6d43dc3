package models

// ProductSubmission is the deserialized create request. Sections are optional;
// each validation stage treats an absent section as an empty one and reports
// its own errors. HasVariants is the single product-shape decision: Details,
// Media and Offer all read it from here, so the three sections can never
// disagree about whether the product has variants.
type ProductSubmission struct {
	HasVariants bool                   `json:"has_variants"`
	Identity    *SubmissionIdentity    `json:"identity,omitempty"`
	Description *SubmissionDescription `json:"description,omitempty"`
	Details     *SubmissionDetails     `json:"details,omitempty"`
	Media       *SubmissionMedia       `json:"media,omitempty"`
	Offer       *SubmissionOffer       `json:"offer,omitempty"`
	Safety      VariantForm            `json:"safety,omitempty"`
}

// SubmissionIdentity names the product and pins it to a subcategory schema.
type SubmissionIdentity struct {
	Title                 string `json:"title"`
	Category              string `json:"category"`
	Subcategory           string `json:"subcategory"`
	BrandName             string `json:"brand_name,omitempty"`
	NoBrand               bool   `json:"no_brand,omitempty"`
	ExternalProductID     string `json:"external_product_id,omitempty"`
	ExternalProductIDType string `json:"external_product_id_type,omitempty"`
	NoExternalProductID   bool   `json:"no_external_product_id,omitempty"`
}

type SubmissionDescription struct {
	Description  string         `json:"description"`
	BulletPoints []*BulletPoint `json:"bullet_points,omitempty"`
}

type BulletPoint struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// SubmissionDetails carries the schema-defined attributes. Shared holds
// attributes declared once at the submission level; Variants or Form holds the
// per-variant (or single flat) attribute forms depending on HasVariants.
type SubmissionDetails struct {
	Shared   VariantForm   `json:"shared,omitempty"`
	Variants []VariantForm `json:"variants,omitempty"`
	Form     VariantForm   `json:"form,omitempty"`
}

// SubmissionMedia carries image attachments, keyed by transient variant id in
// variant mode or flat otherwise.
type SubmissionMedia struct {
	Variants map[string][]*MediaAttachment `json:"variants,omitempty"`
	Images   []*MediaAttachment            `json:"images,omitempty"`
}

// MediaAttachment is one raw encoded image. Data is base64 on the wire.
type MediaAttachment struct {
	ID          string `json:"id"`
	ContentType string `json:"content_type,omitempty"`
	Data        []byte `json:"data,omitempty"`
}

// SubmissionOffer holds pricing. Currency, fulfillment and processing time are
// offer-wide; the pricing forms are per-variant or flat.
type SubmissionOffer struct {
	CurrencyCode    string                `json:"currency_code"`
	FulfillmentType string                `json:"fulfillment_type"`
	ProcessingTime  int                   `json:"processing_time"`
	Variants        map[string]*OfferForm `json:"variants,omitempty"`
	Form            *OfferForm            `json:"form,omitempty"`
}

// OfferForm is the pricing shape shared by the per-variant and flat cases.
type OfferForm struct {
	SKU           string          `json:"sku"`
	Quantity      int             `json:"quantity"`
	Price         string          `json:"price"`
	Condition     string          `json:"condition"`
	ConditionNote string          `json:"condition_note,omitempty"`
	ListPrice     string          `json:"list_price,omitempty"`
	HasSalePrice  bool            `json:"has_sale_price,omitempty"`
	SalePrice     string          `json:"sale_price,omitempty"`
	SaleStartDate string          `json:"sale_start_date,omitempty"`
	SaleEndDate   string          `json:"sale_end_date,omitempty"`
	MinimumOrders []*MinimumOrder `json:"minimum_orders,omitempty"`
}

type MinimumOrder struct {
	ID       string `json:"id"`
	Quantity int    `json:"quantity"`
	Price    string `json:"price"`
}

// Offering conditions.
const (
	ConditionNew  = "new"
	ConditionUsed = "used"
)

// Fulfillment types.
const (
	FulfillmentMegacommerce = "megacommerce"
	FulfillmentSeller       = "seller"
)

// SafetyAttestationField is the checkbox every safety form must set to true.
const SafetyAttestationField = "attestation"
