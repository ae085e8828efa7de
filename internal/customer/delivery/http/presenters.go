package http

import (
	"bytes"
	"encoding/json"
	"fmt"

	"cseboard/internal/customer"
)

// --- Request DTOs ---

// fieldsReq is the attribute set as submitted by the form. Missing keys and
// JSON null decode to nil; unknown keys are ignored.
type fieldsReq struct {
	CSEOwner                   *formValue `json:"CSE_Owner"                     binding:"omitempty,max=255"`
	BuildVersion               *formValue `json:"Build_Version"                 binding:"omitempty,max=255"`
	Reason                     *formValue `json:"Reason"                        binding:"omitempty,max=4000"`
	Remedy                     *formValue `json:"Remedy"                        binding:"omitempty,max=4000"`
	UpsellCrossSellOpportunity *formValue `json:"Upsell_Cross_sell_Opportunity" binding:"omitempty,max=4000"`
	ChurnRisk                  *formValue `json:"Churn_Risk"                    binding:"omitempty,max=255"`
	Health                     *formValue `json:"Health"                        binding:"omitempty,max=255"`
}

// toFields translates the form's "no selection" marker into absent values.
func (r fieldsReq) toFields() customer.Fields {
	return customer.FromForm(customer.Fields{
		CSEOwner:                   r.CSEOwner.ptr(),
		BuildVersion:               r.BuildVersion.ptr(),
		Reason:                     r.Reason.ptr(),
		Remedy:                     r.Remedy.ptr(),
		UpsellCrossSellOpportunity: r.UpsellCrossSellOpportunity.ptr(),
		ChurnRisk:                  r.ChurnRisk.ptr(),
		Health:                     r.Health.ptr(),
	})
}

// formValue is one submitted attribute. Strings pass through; numbers and
// booleans are stored as their JSON text. Objects and arrays are rejected.
type formValue string

func (v *formValue) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if string(b) == "null" {
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*v = formValue(s)
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return err
	}
	switch raw.(type) {
	case json.Number, bool:
		*v = formValue(b)
		return nil
	default:
		return fmt.Errorf("expected a string, number or boolean, got %s", b)
	}
}

func (v *formValue) ptr() *string {
	if v == nil {
		return nil
	}
	s := string(*v)
	return &s
}

type saveDataReq struct {
	Org string `json:"Org" binding:"max=255"`
	fieldsReq
}

func (r saveDataReq) toInput() customer.ApplyInput {
	return customer.ApplyInput{Org: r.Org, Fields: r.toFields()}
}

type applyReq struct {
	Org string `json:"-"` // populated from URI param
	fieldsReq
}

func (r applyReq) toInput() customer.ApplyInput {
	return customer.ApplyInput{Org: r.Org, Fields: r.toFields()}
}

// --- Response DTOs ---

type recordResp struct {
	Org                        string  `json:"Org"`
	CSEOwner                   *string `json:"CSE_Owner"`
	BuildVersion               *string `json:"Build_Version"`
	Reason                     *string `json:"Reason"`
	Remedy                     *string `json:"Remedy"`
	UpsellCrossSellOpportunity *string `json:"Upsell_Cross_sell_Opportunity"`
	ChurnRisk                  *string `json:"Churn_Risk"`
	Health                     *string `json:"Health"`
}

func newRecordResp(rec customer.Record) recordResp {
	return recordResp{
		Org:                        rec.Org,
		CSEOwner:                   rec.CSEOwner,
		BuildVersion:               rec.BuildVersion,
		Reason:                     rec.Reason,
		Remedy:                     rec.Remedy,
		UpsellCrossSellOpportunity: rec.UpsellCrossSellOpportunity,
		ChurnRisk:                  rec.ChurnRisk,
		Health:                     rec.Health,
	}
}

// messageResp is the body shape the legacy form client reads.
type messageResp struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
	Created *bool  `json:"created,omitempty"`
}

type listOrgsResp struct {
	Orgs []string `json:"orgs"`
}

func (h *handler) newListOrgsResp(out customer.ListOrgsOutput) listOrgsResp {
	return listOrgsResp{Orgs: out.Orgs}
}

type detailResp struct {
	Record recordResp `json:"record"`
}

func (h *handler) newDetailResp(out customer.DetailOutput) detailResp {
	return detailResp{Record: newRecordResp(out.Record)}
}

type applyResp struct {
	Org     string `json:"org"`
	Created bool   `json:"created"`
}

func (h *handler) newApplyResp(org string, out customer.ApplyOutput) applyResp {
	return applyResp{Org: org, Created: out.Created}
}
