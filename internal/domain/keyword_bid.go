package domain

import (
	"github.com/shopspring/decimal"
)

const (
	CriterionTypeKeyword   = "KEYWORD"
	CriterionStatusEnabled = "ENABLED"
	AdGroupStatusEnabled   = "ENABLED"

	// MicrosPerUnit é a quantidade de micro-unidades em uma unidade de moeda
	MicrosPerUnit = 1_000_000
)

// KeywordCriterionRow é uma linha crua da consulta criterion x ad group
type KeywordCriterionRow struct {
	AdGroupID        int64
	AdGroupName      string
	AdGroupStatus    string
	CampaignResource string
	CriterionType    string
	CriterionID      int64
	KeywordText      string
	MatchTypeCode    int
	CPCBidMicros     int64
	Negative         bool
	Status           string
}

// KeywordCriterionPage é uma página de resultados da consulta
type KeywordCriterionPage struct {
	Rows          []KeywordCriterionRow
	NextPageToken string
}

// KeywordQuery descreve a leitura de critérios de uma conta
type KeywordQuery struct {
	CustomerID    string
	LabelResource string
	PageSize      int
}

// KeywordBidRecord é o registro normalizado de lance de uma palavra-chave
type KeywordBidRecord struct {
	KeywordText     string          `json:"keyword_text"`
	MatchType       MatchType       `json:"match_type"`
	CPCBid          decimal.Decimal `json:"cpc_bid"`
	CPCBidMicros    int64           `json:"cpc_bid_micros"`
	CriterionID     string          `json:"criterion_id"`
	CriterionStatus string          `json:"criterion_status"`
	AdGroupName     string          `json:"ad_group_name"`
	AdGroupID       int64           `json:"ad_group_id"`
	CampaignID      int64           `json:"campaign_id"`
}

// MicrosToUnits converte micro-unidades para unidades de moeda sem perda
func MicrosToUnits(micros int64) decimal.Decimal {
	return decimal.New(micros, -6)
}
