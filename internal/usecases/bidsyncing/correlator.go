package bidsyncing

import (
	"strings"
	"unicode"

	"github.com/vfg2006/keyword-bid-sync/internal/domain"
)

// isSeparator aceita qualquer pontuação ou símbolo isolado entre o nome base e o sufixo, como em "Grupo A - _2"
func isSeparator(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSymbol(r)
}

type nameKey struct {
	adGroup   string
	keyword   string
	matchType domain.MatchType
}

type idKey struct {
	adGroupID int64
	keyword   string
	matchType domain.MatchType
}

// Correlator junta os registros da origem aos registros espelhados no destino
type Correlator struct {
	destinationSuffix string
	mappings          map[int64]int64
}

// NewCorrelator recebe o sufixo do destino e mapeamentos explícitos (destino -> origem).
// Grupos com mapeamento explícito nunca usam a inferência por nome.
func NewCorrelator(destinationSuffix string, mappings []domain.AdGroupMapping) *Correlator {
	byDestination := make(map[int64]int64, len(mappings))
	for _, mapping := range mappings {
		byDestination[mapping.DestinationAdGroupID] = mapping.SourceAdGroupID
	}

	return &Correlator{
		destinationSuffix: destinationSuffix,
		mappings:          byDestination,
	}
}

// Join faz um inner join em (grupo, texto, tipo de correspondência) e devolve também os registros sem par
func (c *Correlator) Join(source, destination []domain.KeywordBidRecord) domain.JoinResult {
	byName := make(map[nameKey][]int, len(source))
	byID := make(map[idKey][]int, len(source))
	for i, record := range source {
		nk := nameKey{adGroup: record.AdGroupName, keyword: record.KeywordText, matchType: record.MatchType}
		byName[nk] = append(byName[nk], i)

		ik := idKey{adGroupID: record.AdGroupID, keyword: record.KeywordText, matchType: record.MatchType}
		byID[ik] = append(byID[ik], i)
	}

	result := domain.JoinResult{
		Pairs:                make([]domain.MatchedPair, 0),
		UnmatchedSource:      make([]domain.KeywordBidRecord, 0),
		UnmatchedDestination: make([]domain.KeywordBidRecord, 0),
	}
	used := make([]bool, len(source))

	for _, record := range destination {
		var matches []int
		if sourceAdGroupID, ok := c.mappings[record.AdGroupID]; ok {
			matches = byID[idKey{adGroupID: sourceAdGroupID, keyword: record.KeywordText, matchType: record.MatchType}]
		} else {
			key := nameKey{
				adGroup:   StripAdGroupSuffix(record.AdGroupName, c.destinationSuffix),
				keyword:   record.KeywordText,
				matchType: record.MatchType,
			}
			matches = byName[key]
		}

		if len(matches) == 0 {
			result.UnmatchedDestination = append(result.UnmatchedDestination, record)
			continue
		}

		for _, i := range matches {
			used[i] = true
			result.Pairs = append(result.Pairs, domain.MatchedPair{Source: source[i], Destination: record})
		}
	}

	for i, record := range source {
		if !used[i] {
			result.UnmatchedSource = append(result.UnmatchedSource, record)
		}
	}

	result.Pairs = Deduplicate(result.Pairs)

	return result
}

// StripAdGroupSuffix remove o sufixo do nome do grupo e o separador que ficar pendurado
func StripAdGroupSuffix(name, suffix string) string {
	stripped := strings.TrimRightFunc(name, unicode.IsSpace)
	if suffix == "" || !strings.HasSuffix(stripped, suffix) {
		return strings.TrimSpace(stripped)
	}

	stripped = strings.TrimRightFunc(strings.TrimSuffix(stripped, suffix), unicode.IsSpace)

	runes := []rune(stripped)
	if n := len(runes); n >= 2 && isSeparator(runes[n-1]) && unicode.IsSpace(runes[n-2]) {
		stripped = strings.TrimRightFunc(string(runes[:n-1]), unicode.IsSpace)
	}

	return strings.TrimSpace(stripped)
}

type recordKey struct {
	keywordText     string
	matchType       domain.MatchType
	cpcBid          string
	cpcBidMicros    int64
	criterionID     string
	criterionStatus string
	adGroupName     string
	adGroupID       int64
	campaignID      int64
}

type pairKey struct {
	source      recordKey
	destination recordKey
}

func keyOf(record domain.KeywordBidRecord) recordKey {
	return recordKey{
		keywordText:     record.KeywordText,
		matchType:       record.MatchType,
		cpcBid:          record.CPCBid.String(),
		cpcBidMicros:    record.CPCBidMicros,
		criterionID:     record.CriterionID,
		criterionStatus: record.CriterionStatus,
		adGroupName:     record.AdGroupName,
		adGroupID:       record.AdGroupID,
		campaignID:      record.CampaignID,
	}
}

// Deduplicate remove pares idênticos em todos os campos, mantendo a primeira ocorrência
func Deduplicate(pairs []domain.MatchedPair) []domain.MatchedPair {
	seen := make(map[pairKey]struct{}, len(pairs))
	unique := make([]domain.MatchedPair, 0, len(pairs))

	for _, pair := range pairs {
		key := pairKey{source: keyOf(pair.Source), destination: keyOf(pair.Destination)}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, pair)
	}

	return unique
}
