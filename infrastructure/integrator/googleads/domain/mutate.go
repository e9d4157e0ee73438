package googleadsdomain

import "fmt"

// CpcBidUpdateMask é a máscara de campo para alterar somente o lance de CPC
const CpcBidUpdateMask = "cpcBidMicros"

type MutateAdGroupCriteriaRequest struct {
	Operations     []AdGroupCriterionOperation `json:"operations"`
	PartialFailure bool                        `json:"partialFailure"`
	ValidateOnly   bool                        `json:"validateOnly,omitempty"`
}

type AdGroupCriterionOperation struct {
	UpdateMask string                 `json:"updateMask"`
	Update     AdGroupCriterionUpdate `json:"update"`
}

type AdGroupCriterionUpdate struct {
	ResourceName string `json:"resourceName"`
	CpcBidMicros int64  `json:"cpcBidMicros,string"`
}

type MutateAdGroupCriteriaResponse struct {
	Results []MutateAdGroupCriterionResult `json:"results"`
}

type MutateAdGroupCriterionResult struct {
	ResourceName string `json:"resourceName"`
}

// AdGroupCriterionResourceName monta customers/{cid}/adGroupCriteria/{adGroupID}~{criterionID}
func AdGroupCriterionResourceName(customerID string, adGroupID int64, criterionID string) string {
	return fmt.Sprintf("customers/%s/adGroupCriteria/%d~%s", customerID, adGroupID, criterionID)
}
