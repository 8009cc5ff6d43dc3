package models

// Validation bounds used by the create pipeline. Grouped in a struct so tests
// can tighten or relax individual bounds without touching package state.
type Limits struct {
	TitleMin int
	TitleMax int

	DescriptionMin int
	DescriptionMax int

	BulletPointsMin int
	BulletPointsMax int
	BulletTextMin   int
	BulletTextMax   int

	BrandMin int
	BrandMax int

	VariantTitleMin int
	VariantTitleMax int

	SKUMin int
	SKUMax int

	ConditionNoteMin int
	ConditionNoteMax int

	MinInventoryQuantity int
	MinimumOrdersMin     int
	MinimumOrdersMax     int

	ImagesMin      int
	ImagesMax      int
	ImageMaxBytes  int
	ImageFormats   []string
	ImageMinWidth  int
	ImageMinHeight int
	ImageMaxWidth  int
	ImageMaxHeight int
}

func DefaultLimits() Limits {
	return Limits{
		TitleMin:             5,
		TitleMax:             250,
		DescriptionMin:       20,
		DescriptionMax:       1024,
		BulletPointsMin:      1,
		BulletPointsMax:      10,
		BulletTextMin:        3,
		BulletTextMax:        255,
		BrandMin:             2,
		BrandMax:             100,
		VariantTitleMin:      3,
		VariantTitleMax:      250,
		SKUMin:               3,
		SKUMax:               60,
		ConditionNoteMin:     5,
		ConditionNoteMax:     500,
		MinInventoryQuantity: 1,
		MinimumOrdersMin:     1,
		MinimumOrdersMax:     10,
		ImagesMin:            1,
		ImagesMax:            10,
		ImageMaxBytes:        5 * 1024 * 1024,
		ImageFormats:         []string{"jpeg", "png", "webp", "gif"},
		ImageMinWidth:        200,
		ImageMinHeight:       200,
		ImageMaxWidth:        4000,
		ImageMaxHeight:       4000,
	}
}

type ProductStatus string

const (
	ProductStatusPending  ProductStatus = "pending"
	ProductStatusActive   ProductStatus = "active"
	ProductStatusRejected ProductStatus = "rejected"
	ProductStatusArchived ProductStatus = "archived"
)

// DefaultVariantKey is the transient key used to address the single implicit
// variant of a without-variants submission.
const DefaultVariantKey = "default"

// SchemaVersion is the storage schema revision written into new records.
const SchemaVersion = 1

// Product is the normalized storage record produced by the pre-save step.
// All identifiers are stable: minted once, kept forever.
type Product struct {
	ID            string                 `json:"id" bson:"_id" dynamodbav:"id"`
	UserID        string                 `json:"user_id" bson:"user_id" dynamodbav:"user_id"`
	Title         string                 `json:"title" bson:"title" dynamodbav:"title"`
	Slug          string                 `json:"slug" bson:"slug" dynamodbav:"slug"`
	Description   string                 `json:"description" bson:"description" dynamodbav:"description"`
	BulletPoints  []*BulletPoint         `json:"bullet_points,omitempty" bson:"bullet_points,omitempty" dynamodbav:"bullet_points,omitempty"`
	Category      string                 `json:"category" bson:"category" dynamodbav:"category"`
	Subcategory   string                 `json:"subcategory" bson:"subcategory" dynamodbav:"subcategory"`
	Brand         string                 `json:"brand,omitempty" bson:"brand,omitempty" dynamodbav:"brand,omitempty"`
	HasVariants   bool                   `json:"has_variants" bson:"has_variants" dynamodbav:"has_variants"`
	Variants      []*ProductVariant      `json:"variants,omitempty" bson:"variants,omitempty" dynamodbav:"variants,omitempty"`
	SharedDetails VariantForm            `json:"shared_details,omitempty" bson:"shared_details,omitempty" dynamodbav:"shared_details,omitempty"`
	Details       map[string]VariantForm `json:"details,omitempty" bson:"details,omitempty" dynamodbav:"details,omitempty"`
	Offer         *ProductOffer          `json:"offer,omitempty" bson:"offer,omitempty" dynamodbav:"offer,omitempty"`
	Safety        VariantForm            `json:"safety,omitempty" bson:"safety,omitempty" dynamodbav:"safety,omitempty"`
	Status        ProductStatus          `json:"status" bson:"status" dynamodbav:"status"`
	Version       int                    `json:"version" bson:"version" dynamodbav:"version"`
	SchemaVersion int                    `json:"schema_version" bson:"schema_version" dynamodbav:"schema_version"`
	CreatedAt     int64                  `json:"created_at" bson:"created_at" dynamodbav:"created_at"`
	PublishedAt   *int64                 `json:"published_at,omitempty" bson:"published_at,omitempty" dynamodbav:"published_at,omitempty"`
	UpdatedAt     *int64                 `json:"updated_at,omitempty" bson:"updated_at,omitempty" dynamodbav:"updated_at,omitempty"`
}

// ProductVariant pairs a stable variant key with its title.
type ProductVariant struct {
	ID    string `json:"id" bson:"id" dynamodbav:"id"`
	Title string `json:"title" bson:"title" dynamodbav:"title"`
}

// ProductOffer is the stored offer, with pricing forms re-keyed by stable
// variant id.
type ProductOffer struct {
	CurrencyCode    string                `json:"currency_code" bson:"currency_code" dynamodbav:"currency_code"`
	FulfillmentType string                `json:"fulfillment_type" bson:"fulfillment_type" dynamodbav:"fulfillment_type"`
	ProcessingTime  int                   `json:"processing_time" bson:"processing_time" dynamodbav:"processing_time"`
	Variants        map[string]*OfferForm `json:"variants,omitempty" bson:"variants,omitempty" dynamodbav:"variants,omitempty"`
}

// PreSaveResult is everything the caller needs after normalization: the
// record to persist, the transient-to-stable variant key table, and the
// stable key addressing the implicit variant of a flat submission.
type PreSaveResult struct {
	Product        *Product
	VariantKeys    map[string]string
	MainVariantKey string
}
