package googleads

import (
	"fmt"
	"strings"
)

// keywordCriteriaQuery seleciona critérios de palavra-chave ativos, não negativos,
// de grupos de anúncios ativos que possuem o rótulo informado
const keywordCriteriaQuery = `
SELECT
  ad_group.id,
  ad_group.name,
  ad_group.status,
  ad_group.labels,
  ad_group.campaign,
  ad_group_criterion.type,
  ad_group_criterion.criterion_id,
  ad_group_criterion.keyword.text,
  ad_group_criterion.keyword.match_type,
  ad_group_criterion.cpc_bid_micros,
  ad_group_criterion.negative,
  ad_group_criterion.status
FROM ad_group_criterion
WHERE ad_group_criterion.type = KEYWORD
  AND ad_group_criterion.status = ENABLED
  AND ad_group_criterion.negative = FALSE
  AND ad_group.status = ENABLED
  AND ad_group.labels CONTAINS ALL ('%s')`

// BuildKeywordCriteriaQuery monta a consulta GAQL para o rótulo informado
func BuildKeywordCriteriaQuery(labelResource string) string {
	escaped := strings.ReplaceAll(labelResource, "'", `\'`)
	return strings.TrimSpace(fmt.Sprintf(keywordCriteriaQuery, escaped))
}
