package domain

import "strings"

// MatchType representa o nível de correspondência de uma palavra-chave
type MatchType string

const (
	MatchTypeUnspecified MatchType = "UNSPECIFIED"
	MatchTypeUnknown     MatchType = "UNKNOWN"
	MatchTypeExact       MatchType = "EXACT"
	MatchTypePhrase      MatchType = "PHRASE"
	MatchTypeBroad       MatchType = "BROAD"
)

// matchTypeByCode segue a enumeração KeywordMatchType da API do Google Ads
var matchTypeByCode = map[int]MatchType{
	0: MatchTypeUnspecified,
	1: MatchTypeUnknown,
	2: MatchTypeExact,
	3: MatchTypePhrase,
	4: MatchTypeBroad,
}

// MatchTypeFromCode converte o código inteiro da API. Códigos fora da tabela viram UNKNOWN.
func MatchTypeFromCode(code int) MatchType {
	if matchType, ok := matchTypeByCode[code]; ok {
		return matchType
	}

	return MatchTypeUnknown
}

// ParseMatchType converte o nome textual retornado pela API REST
func ParseMatchType(name string) MatchType {
	matchType := MatchType(strings.ToUpper(strings.TrimSpace(name)))
	switch matchType {
	case MatchTypeUnspecified, MatchTypeUnknown, MatchTypeExact, MatchTypePhrase, MatchTypeBroad:
		return matchType
	case "":
		return MatchTypeUnspecified
	}

	return MatchTypeUnknown
}

// Code retorna o código inteiro correspondente ao tipo
func (m MatchType) Code() int {
	for code, matchType := range matchTypeByCode {
		if matchType == m {
			return code
		}
	}

	return 1
}

func (m MatchType) String() string {
	return string(m)
}
