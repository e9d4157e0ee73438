package bidsyncing

import (
	"fmt"

	"github.com/vfg2006/keyword-bid-sync/internal/domain"
)

func keywordRecord(adGroupName string, adGroupID int64, keyword string, matchType domain.MatchType, micros int64, criterionID string) domain.KeywordBidRecord {
	return domain.KeywordBidRecord{
		KeywordText:     keyword,
		MatchType:       matchType,
		CPCBid:          domain.MicrosToUnits(micros),
		CPCBidMicros:    micros,
		CriterionID:     criterionID,
		CriterionStatus: domain.CriterionStatusEnabled,
		AdGroupName:     adGroupName,
		AdGroupID:       adGroupID,
		CampaignID:      99,
	}
}

func keywordRow(adGroupID int64, adGroupName, keyword string, matchCode int, micros int64, criterionID int64) domain.KeywordCriterionRow {
	return domain.KeywordCriterionRow{
		AdGroupID:        adGroupID,
		AdGroupName:      adGroupName,
		AdGroupStatus:    domain.AdGroupStatusEnabled,
		CampaignResource: fmt.Sprintf("customers/1111111111/campaigns/%d", 500+adGroupID),
		CriterionType:    domain.CriterionTypeKeyword,
		CriterionID:      criterionID,
		KeywordText:      keyword,
		MatchTypeCode:    matchCode,
		CPCBidMicros:     micros,
		Status:           domain.CriterionStatusEnabled,
	}
}
