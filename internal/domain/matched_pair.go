package domain

// MatchedPair une o registro da conta de origem ao registro espelhado no destino
type MatchedPair struct {
	Source      KeywordBidRecord `json:"source"`
	Destination KeywordBidRecord `json:"destination"`
}

// JoinResult é o resultado da correlação entre as duas contas
type JoinResult struct {
	Pairs                []MatchedPair      `json:"pairs"`
	UnmatchedSource      []KeywordBidRecord `json:"unmatched_source"`
	UnmatchedDestination []KeywordBidRecord `json:"unmatched_destination"`
}

// BidUpdate é a escrita de um novo lance para um critério
type BidUpdate struct {
	CustomerID   string
	AdGroupID    int64
	CriterionID  string
	CPCBidMicros int64
}
