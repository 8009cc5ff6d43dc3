// Package validation implements the product-create pipeline: six ordered
// stage validators over a schema-driven submission, followed by the pre-save
// normalization that rewrites the submission into a storage record with
// stable identifiers.
package validation

import (
	"product-service/imaging"
	"product-service/models"
)

// Stage names, used as the first segment of every error map key.
const (
	StageIdentity    = "identity"
	StageDescription = "description"
	StageDetails     = "details"
	StageMedia       = "media"
	StageOffer       = "offer"
	StageSafety      = "safety"
)

// SchemaLookup resolves the attribute schema governing one subcategory. A nil
// result means no schema exists for the key, which the Identity stage reports
// as a validation error.
type SchemaLookup interface {
	SubcategoryData(category, subcategory, language string) *models.SubcategorySchema
}

// ImageDecoder decodes one raw attachment against a policy. Failures must be
// *imaging.DecodeError values so the Media stage can classify them.
type ImageDecoder interface {
	Decode(data []byte, policy imaging.Policy) (*imaging.Descriptor, error)
}

// DecodeResults holds the successful decodes of one validation pass, keyed by
// transient variant key and then attachment id. Flat submissions use
// models.DefaultVariantKey.
type DecodeResults map[string]map[string]*imaging.Descriptor

// Result is a successful pipeline run: the normalized record plus the decode
// descriptors the caller needs to perform the uploads.
type Result struct {
	Record  *models.PreSaveResult
	Decoded DecodeResults
}

// Pipeline runs the create validation stages in order. It holds no per-request
// state and is safe for concurrent use.
type Pipeline struct {
	schemas SchemaLookup
	decoder ImageDecoder
	limits  models.Limits
}

func NewPipeline(schemas SchemaLookup, decoder ImageDecoder, limits models.Limits) *Pipeline {
	return &Pipeline{schemas: schemas, decoder: decoder, limits: limits}
}

func (p *Pipeline) Limits() models.Limits { return p.limits }

// Run validates sub stage by stage and normalizes it on success. Each stage is
// a hard gate: the first stage with a non-empty error map stops the pipeline
// and its map is returned alone, never mixed with another stage's errors.
func (p *Pipeline) Run(ctx *models.SessionContext, sub *models.ProductSubmission) (*Result, models.ErrorMap) {
	identity := sub.Identity
	if identity == nil {
		identity = &models.SubmissionIdentity{}
	}

	schema := p.schemas.SubcategoryData(identity.Category, identity.Subcategory, ctx.Language())

	if errs := ValidateIdentity(identity, schema, p.limits); !errs.Empty() {
		return nil, errs
	}
	if errs := ValidateDescription(sub.Description, p.limits); !errs.Empty() {
		return nil, errs
	}
	if errs := ValidateDetails(sub, schema, p.limits); !errs.Empty() {
		return nil, errs
	}
	errs, decoded := ValidateMedia(sub, p.decoder, p.limits)
	if !errs.Empty() {
		return nil, errs
	}
	if errs := ValidateOffer(sub, p.limits); !errs.Empty() {
		return nil, errs
	}
	if errs := ValidateSafety(sub, schema); !errs.Empty() {
		return nil, errs
	}

	return &Result{
		Record:  PreSave(sub, ctx.UserID),
		Decoded: decoded,
	}, nil
}
