package googleadsdomain

import (
	"bytes"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/keyword-bid-sync/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// SearchRequest é o corpo de GoogleAdsService.Search
type SearchRequest struct {
	Query     string `json:"query"`
	PageSize  int    `json:"pageSize,omitempty"`
	PageToken string `json:"pageToken,omitempty"`
}

// SearchResponse é uma página de GoogleAdsService.Search
type SearchResponse struct {
	Results       []GoogleAdsRow `json:"results"`
	NextPageToken string         `json:"nextPageToken"`
	FieldMask     string         `json:"fieldMask"`
}

// GoogleAdsRow contém apenas os recursos selecionados pela consulta de palavras-chave
type GoogleAdsRow struct {
	AdGroup          AdGroup          `json:"adGroup"`
	AdGroupCriterion AdGroupCriterion `json:"adGroupCriterion"`
}

type AdGroup struct {
	ResourceName string   `json:"resourceName"`
	ID           int64    `json:"id,string"`
	Name         string   `json:"name"`
	Status       string   `json:"status"`
	Campaign     string   `json:"campaign"`
	Labels       []string `json:"labels"`
}

type AdGroupCriterion struct {
	ResourceName string  `json:"resourceName"`
	Type         string  `json:"type"`
	CriterionID  int64   `json:"criterionId,string"`
	Keyword      Keyword `json:"keyword"`
	CpcBidMicros int64   `json:"cpcBidMicros,string"`
	Negative     bool    `json:"negative"`
	Status       string  `json:"status"`
}

type Keyword struct {
	Text      string         `json:"text"`
	MatchType MatchTypeValue `json:"matchType"`
}

// MatchTypeValue aceita o enum tanto pelo nome ("EXACT") quanto pelo código (2)
type MatchTypeValue struct {
	Code int
}

func (m *MatchTypeValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var name string
		if err := json.Unmarshal(data, &name); err != nil {
			return err
		}
		m.Code = domain.ParseMatchType(name).Code()
		return nil
	}

	var code int
	if err := json.Unmarshal(data, &code); err != nil {
		return err
	}
	m.Code = code

	return nil
}

func (m MatchTypeValue) MarshalJSON() ([]byte, error) {
	return json.Marshal(domain.MatchTypeFromCode(m.Code).String())
}
