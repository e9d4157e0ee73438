package bidsyncing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/keyword-bid-sync/internal/domain"
)

func TestStripAdGroupSuffix(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		suffix   string
		expected string
	}{
		{name: "sufixo separado por espaço", input: "Group A _2", suffix: "_2", expected: "Group A"},
		{name: "sufixo colado", input: "Group A_2", suffix: "_2", expected: "Group A"},
		{name: "separador pendurado", input: "Group A - _2", suffix: "_2", expected: "Group A"},
		{name: "separador pipe", input: "Shoes | _2", suffix: "_2", expected: "Shoes"},
		{name: "separador barra", input: "Group A / _2", suffix: "_2", expected: "Group A"},
		{name: "separador til", input: "Group A ~ _2", suffix: "_2", expected: "Group A"},
		{name: "separador sublinhado", input: "Group A _ _2", suffix: "_2", expected: "Group A"},
		{name: "separador travessão", input: "Group A — _2", suffix: "_2", expected: "Group A"},
		{name: "letra isolada não é separador", input: "Group A x _2", suffix: "_2", expected: "Group A x"},
		{name: "dígito isolado não é separador", input: "Group 7 _2", suffix: "_2", expected: "Group 7"},
		{name: "hífen parte do nome", input: "Anti-Age_2", suffix: "_2", expected: "Anti-Age"},
		{name: "espaços ao final", input: "Group A _2  ", suffix: "_2", expected: "Group A"},
		{name: "sem sufixo", input: "Group A", suffix: "_2", expected: "Group A"},
		{name: "sufixo vazio", input: "Group A _2", suffix: "", expected: "Group A _2"},
		{name: "sufixo no meio não é removido", input: "Group _2 A", suffix: "_2", expected: "Group _2 A"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, StripAdGroupSuffix(tt.input, tt.suffix))
		})
	}
}

func TestCorrelator_Join(t *testing.T) {
	t.Run("par espelhado pelo nome gera lance ajustado", func(t *testing.T) {
		source := []domain.KeywordBidRecord{
			keywordRecord("Group A", 10, "running shoes", domain.MatchTypeExact, 2_000_000, "1001"),
		}
		destination := []domain.KeywordBidRecord{
			keywordRecord("Group A _2", 20, "running shoes", domain.MatchTypeExact, 1_000_000, "2001"),
		}

		result := NewCorrelator("_2", nil).Join(source, destination)

		require.Len(t, result.Pairs, 1)
		assert.Equal(t, "1001", result.Pairs[0].Source.CriterionID)
		assert.Equal(t, "2001", result.Pairs[0].Destination.CriterionID)
		assert.Empty(t, result.UnmatchedDestination)
		assert.Empty(t, result.UnmatchedSource)

		newBid := AdjustBid(result.Pairs[0].Source.CPCBid, mustDecimal("0.55"))
		assert.Equal(t, "0.90", newBid.StringFixed(2))
		assert.Equal(t, int64(900000), BidMicros(newBid))
	})

	t.Run("tipo de correspondência diferente não casa", func(t *testing.T) {
		source := []domain.KeywordBidRecord{
			keywordRecord("Group A", 10, "running shoes", domain.MatchTypeExact, 2_000_000, "1001"),
		}
		destination := []domain.KeywordBidRecord{
			keywordRecord("Group A _2", 20, "running shoes", domain.MatchTypePhrase, 1_000_000, "2001"),
		}

		result := NewCorrelator("_2", nil).Join(source, destination)

		assert.Empty(t, result.Pairs)
		assert.Len(t, result.UnmatchedDestination, 1)
		assert.Len(t, result.UnmatchedSource, 1)
	})

	t.Run("destino sem grupo correspondente fica fora do join", func(t *testing.T) {
		source := []domain.KeywordBidRecord{
			keywordRecord("Group A", 10, "running shoes", domain.MatchTypeExact, 2_000_000, "1001"),
		}
		destination := []domain.KeywordBidRecord{
			keywordRecord("Group A _2", 20, "running shoes", domain.MatchTypeExact, 1_000_000, "2001"),
			keywordRecord("Group B _2", 21, "running shoes", domain.MatchTypeExact, 1_000_000, "2002"),
		}

		result := NewCorrelator("_2", nil).Join(source, destination)

		require.Len(t, result.Pairs, 1)
		assert.Equal(t, "2001", result.Pairs[0].Destination.CriterionID)
		require.Len(t, result.UnmatchedDestination, 1)
		assert.Equal(t, "Group B _2", result.UnmatchedDestination[0].AdGroupName)
	})

	t.Run("nome da origem não recebe remoção de sufixo", func(t *testing.T) {
		source := []domain.KeywordBidRecord{
			keywordRecord("Group A _1", 10, "running shoes", domain.MatchTypeExact, 2_000_000, "1001"),
		}
		destination := []domain.KeywordBidRecord{
			keywordRecord("Group A _2", 20, "running shoes", domain.MatchTypeExact, 1_000_000, "2001"),
		}

		result := NewCorrelator("_2", nil).Join(source, destination)

		assert.Empty(t, result.Pairs)
	})

	t.Run("mesmo grupo em campanhas diferentes gera todas as combinações", func(t *testing.T) {
		source := []domain.KeywordBidRecord{
			keywordRecord("Group A", 10, "running shoes", domain.MatchTypeExact, 2_000_000, "1001"),
			keywordRecord("Group A", 11, "running shoes", domain.MatchTypeExact, 3_000_000, "1002"),
		}
		destination := []domain.KeywordBidRecord{
			keywordRecord("Group A _2", 20, "running shoes", domain.MatchTypeExact, 1_000_000, "2001"),
		}

		result := NewCorrelator("_2", nil).Join(source, destination)

		assert.Len(t, result.Pairs, 2)
	})

	t.Run("linhas duplicadas viram um único par", func(t *testing.T) {
		source := []domain.KeywordBidRecord{
			keywordRecord("Group A", 10, "running shoes", domain.MatchTypeExact, 2_000_000, "1001"),
			keywordRecord("Group A", 10, "running shoes", domain.MatchTypeExact, 2_000_000, "1001"),
		}
		destination := []domain.KeywordBidRecord{
			keywordRecord("Group A _2", 20, "running shoes", domain.MatchTypeExact, 1_000_000, "2001"),
			keywordRecord("Group A _2", 20, "running shoes", domain.MatchTypeExact, 1_000_000, "2001"),
		}

		result := NewCorrelator("_2", nil).Join(source, destination)

		assert.Len(t, result.Pairs, 1)
	})

	t.Run("mapeamento explícito tem prioridade sobre o nome", func(t *testing.T) {
		source := []domain.KeywordBidRecord{
			keywordRecord("Group A", 10, "running shoes", domain.MatchTypeExact, 2_000_000, "1001"),
			keywordRecord("Legacy Group", 30, "running shoes", domain.MatchTypeExact, 4_000_000, "1003"),
		}
		destination := []domain.KeywordBidRecord{
			keywordRecord("Group A _2", 20, "running shoes", domain.MatchTypeExact, 1_000_000, "2001"),
		}
		mappings := []domain.AdGroupMapping{{SourceAdGroupID: 30, DestinationAdGroupID: 20}}

		result := NewCorrelator("_2", mappings).Join(source, destination)

		require.Len(t, result.Pairs, 1)
		assert.Equal(t, "1003", result.Pairs[0].Source.CriterionID)
		require.Len(t, result.UnmatchedSource, 1)
		assert.Equal(t, "1001", result.UnmatchedSource[0].CriterionID)
	})

	t.Run("grupos sem mapeamento continuam usando o nome", func(t *testing.T) {
		source := []domain.KeywordBidRecord{
			keywordRecord("Group A", 10, "running shoes", domain.MatchTypeExact, 2_000_000, "1001"),
			keywordRecord("Group B", 11, "trail shoes", domain.MatchTypeBroad, 2_500_000, "1002"),
		}
		destination := []domain.KeywordBidRecord{
			keywordRecord("Group A _2", 20, "running shoes", domain.MatchTypeExact, 1_000_000, "2001"),
			keywordRecord("Renamed _2", 21, "trail shoes", domain.MatchTypeBroad, 1_000_000, "2002"),
		}
		mappings := []domain.AdGroupMapping{{SourceAdGroupID: 11, DestinationAdGroupID: 21}}

		result := NewCorrelator("_2", mappings).Join(source, destination)

		assert.Len(t, result.Pairs, 2)
		assert.Empty(t, result.UnmatchedDestination)
	})
}

func TestDeduplicate(t *testing.T) {
	a := domain.MatchedPair{
		Source:      keywordRecord("Group A", 10, "running shoes", domain.MatchTypeExact, 2_000_000, "1001"),
		Destination: keywordRecord("Group A _2", 20, "running shoes", domain.MatchTypeExact, 1_000_000, "2001"),
	}
	b := domain.MatchedPair{
		Source:      keywordRecord("Group A", 10, "running shoes", domain.MatchTypeExact, 2_100_000, "1001"),
		Destination: keywordRecord("Group A _2", 20, "running shoes", domain.MatchTypeExact, 1_000_000, "2001"),
	}

	t.Run("mantém a primeira ocorrência e a ordem", func(t *testing.T) {
		result := Deduplicate([]domain.MatchedPair{a, b, a, b, a})
		assert.Equal(t, []domain.MatchedPair{a, b}, result)
	})

	t.Run("idempotente", func(t *testing.T) {
		once := Deduplicate([]domain.MatchedPair{a, a, b})
		twice := Deduplicate(once)
		assert.Equal(t, once, twice)
	})

	t.Run("mesmo valor com escala diferente é duplicata", func(t *testing.T) {
		c := a
		c.Source.CPCBid = mustDecimal("2.000")
		assert.Len(t, Deduplicate([]domain.MatchedPair{a, c}), 1)
	})

	t.Run("lista vazia", func(t *testing.T) {
		assert.Empty(t, Deduplicate(nil))
	})
}
