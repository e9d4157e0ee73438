package bidsyncing

import (
	"context"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/keyword-bid-sync/internal/domain"
	"github.com/vfg2006/keyword-bid-sync/pkg/log"
)

// WriteResult conta o desfecho das escritas de uma execução
type WriteResult struct {
	Updated int
	Failed  int
	Skipped int
}

// Writer aplica os lances ajustados no destino, um par por vez
type Writer struct {
	writer   KeywordWriter
	fraction decimal.Decimal
}

func NewWriter(writer KeywordWriter, fraction decimal.Decimal) *Writer {
	return &Writer{
		writer:   writer,
		fraction: fraction,
	}
}

// Apply tenta cada par de forma independente. Uma falha é registrada e o laço segue, sem retry.
func (w *Writer) Apply(ctx context.Context, destination domain.AccountSettings, pairs []domain.MatchedPair) WriteResult {
	logger := log.ForContext(ctx).WithFields(log.Fields{
		"account_alias": destination.Alias,
		"customer_id":   destination.CustomerID,
	})

	var result WriteResult
	for i, pair := range pairs {
		if ctx.Err() != nil {
			logger.WithError(ctx.Err()).Warnf("Escrita de lances interrompida após %d de %d pares", i, len(pairs))
			break
		}

		newBid := AdjustBid(pair.Source.CPCBid, w.fraction)
		update := domain.BidUpdate{
			CustomerID:   destination.CustomerID,
			AdGroupID:    pair.Destination.AdGroupID,
			CriterionID:  pair.Destination.CriterionID,
			CPCBidMicros: BidMicros(newBid),
		}

		pairLogger := logger.WithFields(log.Fields{
			"ad_group_id":    update.AdGroupID,
			"ad_group_name":  pair.Destination.AdGroupName,
			"criterion_id":   update.CriterionID,
			"keyword_text":   pair.Destination.KeywordText,
			"match_type":     pair.Destination.MatchType,
			"source_bid":     pair.Source.CPCBid.StringFixed(2),
			"new_bid":        newBid.StringFixed(2),
			"new_bid_micros": update.CPCBidMicros,
		})

		// palavra-chave sem lance próprio herda o do grupo e chega com zero micros
		if update.CPCBidMicros <= 0 {
			result.Skipped++
			pairLogger.Warn("Lance ajustado zerado, palavra-chave do destino mantida sem alteração")
			continue
		}

		if err := w.update(ctx, update); err != nil {
			result.Failed++
			LogAPIError(pairLogger, err, "Erro ao atualizar lance da palavra-chave")
			continue
		}

		result.Updated++
		pairLogger.Debug("Lance da palavra-chave atualizado")
	}

	return result
}

// update isola pânicos do escritor para que o próximo par ainda seja tentado
func (w *Writer) update(ctx context.Context, update domain.BidUpdate) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("panic ao atualizar lance: %v", r)
		}
	}()

	return w.writer.UpdateKeywordBid(ctx, update)
}
