package models

type EventName string

const EventProductCreate EventName = "product_create"

type EventStatus string

const (
	EventStatusFail    EventStatus = "fail"
	EventStatusSuccess EventStatus = "success"
	EventStatusAttempt EventStatus = "attempt"
)

// EventParameterKey names an entry in an audit event's parameter map.
type EventParameterKey string

const EventParameterProductCreate EventParameterKey = "product_create"

type AuditEventActor struct {
	UserID        string `json:"user_id"`
	SessionID     string `json:"session_id"`
	Client        string `json:"client"`
	IPAddress     string `json:"ip_address"`
	XForwardedFor string `json:"x_forwarded_for"`
}

type AuditEventData struct {
	Parameters     map[string]any `json:"parameters"`
	PriorState     map[string]any `json:"prior_state,omitempty"`
	ResultingState map[string]any `json:"resulting_state,omitempty"`
	ObjectType     string         `json:"object_type,omitempty"`
}

type EventError struct {
	Description string `json:"description,omitempty"`
	StatusCode  *int   `json:"status_code,omitempty"`
}

// AuditRecord is one compliance-trail entry. Records start in their initial
// status (usually Fail) and are flipped to Success once the operation lands.
type AuditRecord struct {
	EventName EventName      `json:"event_name"`
	Status    EventStatus    `json:"status"`
	Event     AuditEventData `json:"event"`
	Actor     AuditEventActor `json:"actor"`
	Meta      map[string]any `json:"meta,omitempty"`
	Error     *EventError    `json:"error,omitempty"`
}

func NewAuditRecord(ctx *SessionContext, event EventName, initial EventStatus) *AuditRecord {
	rec := &AuditRecord{
		EventName: event,
		Status:    initial,
		Event:     AuditEventData{Parameters: map[string]any{}},
	}
	if ctx != nil {
		rec.Actor = AuditEventActor{
			UserID:        ctx.UserID,
			SessionID:     ctx.SessionID,
			Client:        ctx.UserAgent,
			IPAddress:     ctx.IPAddress,
			XForwardedFor: ctx.XForwardedFor,
		}
	}
	return rec
}

func (a *AuditRecord) Success() { a.Status = EventStatusSuccess }

func (a *AuditRecord) Fail() { a.Status = EventStatusFail }

func (a *AuditRecord) SetEventParameter(key EventParameterKey, val any) {
	a.Event.Parameters[string(key)] = val
}

func (a *AuditRecord) SetError(description string, statusCode *int) {
	a.Error = &EventError{Description: description, StatusCode: statusCode}
}

// ProductsCreateAuditable returns a deep copy of the submission safe to hand
// to the audit sink: every media attachment keeps its metadata but its raw
// encoded payload is replaced with a zero-length slice. The copy is produced
// for success and failure trails alike, so the redaction never depends on the
// validation outcome.
func ProductsCreateAuditable(sub *ProductSubmission) *ProductSubmission {
	if sub == nil {
		return nil
	}

	snap := &ProductSubmission{HasVariants: sub.HasVariants}

	if sub.Identity != nil {
		identity := *sub.Identity
		snap.Identity = &identity
	}

	if sub.Description != nil {
		desc := &SubmissionDescription{Description: sub.Description.Description}
		for _, bp := range sub.Description.BulletPoints {
			b := *bp
			desc.BulletPoints = append(desc.BulletPoints, &b)
		}
		snap.Description = desc
	}

	if sub.Details != nil {
		details := &SubmissionDetails{
			Shared: cloneForm(sub.Details.Shared),
			Form:   cloneForm(sub.Details.Form),
		}
		for _, v := range sub.Details.Variants {
			details.Variants = append(details.Variants, cloneForm(v))
		}
		snap.Details = details
	}

	if sub.Media != nil {
		media := &SubmissionMedia{}
		if sub.Media.Variants != nil {
			media.Variants = make(map[string][]*MediaAttachment, len(sub.Media.Variants))
			for key, atts := range sub.Media.Variants {
				media.Variants[key] = redactAttachments(atts)
			}
		}
		media.Images = redactAttachments(sub.Media.Images)
		snap.Media = media
	}

	if sub.Offer != nil {
		offer := &SubmissionOffer{
			CurrencyCode:    sub.Offer.CurrencyCode,
			FulfillmentType: sub.Offer.FulfillmentType,
			ProcessingTime:  sub.Offer.ProcessingTime,
		}
		if sub.Offer.Variants != nil {
			offer.Variants = make(map[string]*OfferForm, len(sub.Offer.Variants))
			for key, form := range sub.Offer.Variants {
				offer.Variants[key] = cloneOfferForm(form)
			}
		}
		offer.Form = cloneOfferForm(sub.Offer.Form)
		snap.Offer = offer
	}

	snap.Safety = cloneForm(sub.Safety)

	return snap
}

func cloneForm(form VariantForm) VariantForm {
	if form == nil {
		return nil
	}
	out := make(VariantForm, len(form))
	for k, v := range form {
		out[k] = v
	}
	return out
}

func cloneOfferForm(form *OfferForm) *OfferForm {
	if form == nil {
		return nil
	}
	out := *form
	out.MinimumOrders = nil
	for _, mo := range form.MinimumOrders {
		m := *mo
		out.MinimumOrders = append(out.MinimumOrders, &m)
	}
	return &out
}

func redactAttachments(atts []*MediaAttachment) []*MediaAttachment {
	if atts == nil {
		return nil
	}
	out := make([]*MediaAttachment, 0, len(atts))
	for _, att := range atts {
		out = append(out, &MediaAttachment{
			ID:          att.ID,
			ContentType: att.ContentType,
			Data:        []byte{},
		})
	}
	return out
}
