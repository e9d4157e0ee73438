package bidsyncing

import (
	"context"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/vfg2006/keyword-bid-sync/internal/domain"
	"github.com/vfg2006/keyword-bid-sync/pkg/log"
)

// Fetcher lê o conjunto completo de lances de palavras-chave de uma conta
type Fetcher struct {
	reader KeywordReader
}

func NewFetcher(reader KeywordReader) *Fetcher {
	return &Fetcher{reader: reader}
}

// Fetch percorre todas as páginas da leitura. Qualquer falha descarta os registros já lidos.
func (f *Fetcher) Fetch(ctx context.Context, account domain.AccountSettings, pageSize int) ([]domain.KeywordBidRecord, error) {
	logger := log.ForContext(ctx).WithFields(log.Fields{
		"account_alias": account.Alias,
		"customer_id":   account.CustomerID,
	})

	query := domain.KeywordQuery{
		CustomerID:    account.CustomerID,
		LabelResource: account.LabelResource(),
		PageSize:      pageSize,
	}

	records := make([]domain.KeywordBidRecord, 0)
	pageToken := ""
	pages := 0
	skipped := 0

	for {
		page, err := f.reader.SearchKeywordCriteria(ctx, query, pageToken)
		if err != nil {
			return nil, NewFetchError(account, err)
		}
		pages++

		if page == nil {
			break
		}

		for _, row := range page.Rows {
			if !IsSelectable(row) {
				skipped++
				continue
			}

			record, err := FactoryKeywordBidRecord(row)
			if err != nil {
				return nil, NewFetchError(account, err)
			}
			records = append(records, record)
		}

		if page.NextPageToken == "" {
			break
		}
		if page.NextPageToken == pageToken {
			return nil, NewFetchError(account, errors.Wrap(ErrRepeatedPageToken, page.NextPageToken))
		}
		pageToken = page.NextPageToken
	}

	logger.WithFields(log.Fields{
		"records": len(records),
		"pages":   pages,
		"skipped": skipped,
	}).Info("Lances de palavras-chave carregados")

	return records, nil
}

// IsSelectable aplica o mesmo predicado da consulta: palavra-chave ativa, não negativa, em grupo ativo
func IsSelectable(row domain.KeywordCriterionRow) bool {
	return row.CriterionType == domain.CriterionTypeKeyword &&
		row.Status == domain.CriterionStatusEnabled &&
		!row.Negative &&
		row.AdGroupStatus == domain.AdGroupStatusEnabled
}

// FactoryKeywordBidRecord deriva o registro normalizado de uma linha da consulta
func FactoryKeywordBidRecord(row domain.KeywordCriterionRow) (domain.KeywordBidRecord, error) {
	campaignID, err := CampaignIDFromResource(row.CampaignResource)
	if err != nil {
		return domain.KeywordBidRecord{}, err
	}

	return domain.KeywordBidRecord{
		KeywordText:     row.KeywordText,
		MatchType:       domain.MatchTypeFromCode(row.MatchTypeCode),
		CPCBid:          domain.MicrosToUnits(row.CPCBidMicros),
		CPCBidMicros:    row.CPCBidMicros,
		CriterionID:     strconv.FormatInt(row.CriterionID, 10),
		CriterionStatus: row.Status,
		AdGroupName:     row.AdGroupName,
		AdGroupID:       row.AdGroupID,
		CampaignID:      campaignID,
	}, nil
}

// CampaignIDFromResource extrai o último segmento de customers/{cid}/campaigns/{id}
func CampaignIDFromResource(resourceName string) (int64, error) {
	segments := strings.Split(resourceName, "/")
	last := segments[len(segments)-1]

	campaignID, err := strconv.ParseInt(last, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidCampaign, "%q", resourceName)
	}

	return campaignID, nil
}
