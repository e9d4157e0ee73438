package bidsyncing

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/keyword-bid-sync/internal/config"
	"github.com/vfg2006/keyword-bid-sync/internal/domain"
	"github.com/vfg2006/keyword-bid-sync/pkg/log"
	"github.com/vfg2006/keyword-bid-sync/pkg/utils"
)

// Service executa o lote: lê a origem, lê o destino, correlaciona e escreve
type Service struct {
	source         domain.AccountSettings
	destination    domain.AccountSettings
	pageSize       int
	fraction       decimal.Decimal
	staticMappings []domain.AdGroupMapping

	fetcher  *Fetcher
	writer   *Writer
	mappings MappingSource
	runs     RunRecorder
	newID    func() (string, error)
}

// NewService monta o serviço. mappings e runs são opcionais (nil quando não há banco).
func NewService(
	cfg *config.Config,
	reader KeywordReader,
	writer KeywordWriter,
	mappings MappingSource,
	runs RunRecorder,
) *Service {
	return &Service{
		source:         cfg.SourceSettings(),
		destination:    cfg.DestinationSettings(),
		pageSize:       cfg.GoogleAds.PageSize,
		fraction:       cfg.BidSync.AdjustmentFraction,
		staticMappings: cfg.BidSync.AdGroupMappings,
		fetcher:        NewFetcher(reader),
		writer:         NewWriter(writer, cfg.BidSync.AdjustmentFraction),
		mappings:       mappings,
		runs:           runs,
		newID:          utils.GenerateID,
	}
}

// Run retorna erro apenas quando a leitura de uma das contas (ou dos mapeamentos) falha.
// Falhas de escrita ficam no relatório.
func (s *Service) Run(ctx context.Context) (*domain.SyncReport, error) {
	ctx, correlationID := log.WithCorrelationID(ctx)
	logger := log.ForContext(ctx)

	runID, err := s.newID()
	if err != nil {
		logger.WithError(err).Warn("Erro ao gerar id da execução, usando o id de correlação")
		runID = correlationID
	}

	report := &domain.SyncReport{
		ID:                 runID,
		CorrelationID:      correlationID,
		SourceAccount:      s.source.Alias,
		DestinationAccount: s.destination.Alias,
		StartedAt:          time.Now(),
	}

	logger.WithFields(log.Fields{
		"run_id":              runID,
		"source_account":      s.source.Alias,
		"destination_account": s.destination.Alias,
		"adjustment_fraction": s.fraction.String(),
		"source_prefix":       s.source.CampaignPrefix,
		"destination_prefix":  s.destination.CampaignPrefix,
	}).Info("Iniciando sincronização de lances")

	sourceRecords, err := s.fetcher.Fetch(ctx, s.source, s.pageSize)
	if err != nil {
		return s.abort(ctx, report, err)
	}
	report.SourceRecords = len(sourceRecords)

	destinationRecords, err := s.fetcher.Fetch(ctx, s.destination, s.pageSize)
	if err != nil {
		return s.abort(ctx, report, err)
	}
	report.DestinationRecords = len(destinationRecords)

	mappings, err := s.loadMappings(ctx)
	if err != nil {
		return s.abort(ctx, report, err)
	}

	joined := NewCorrelator(s.destination.AdGroupSuffix, mappings).Join(sourceRecords, destinationRecords)
	report.MatchedPairs = len(joined.Pairs)
	report.UnmatchedSource = len(joined.UnmatchedSource)
	report.UnmatchedDestination = len(joined.UnmatchedDestination)
	s.logUnmatched(logger, joined)

	written := s.writer.Apply(ctx, s.destination, joined.Pairs)
	report.UpdatedBids = written.Updated
	report.FailedBids = written.Failed
	report.SkippedBids = written.Skipped

	s.finish(ctx, report)

	logger.WithFields(log.Fields{
		"run_id":                runID,
		"matched_pairs":         report.MatchedPairs,
		"updated_bids":          report.UpdatedBids,
		"failed_bids":           report.FailedBids,
		"skipped_bids":          report.SkippedBids,
		"unmatched_source":      report.UnmatchedSource,
		"unmatched_destination": report.UnmatchedDestination,
		"duration":              report.CompletedAt.Sub(report.StartedAt).String(),
	}).Info("Sincronização de lances concluída")

	return report, nil
}

func (s *Service) abort(ctx context.Context, report *domain.SyncReport, err error) (*domain.SyncReport, error) {
	report.Error = err.Error()
	LogAPIError(log.ForContext(ctx).WithField("run_id", report.ID), err, "Erro na leitura, sincronização abortada")
	s.finish(ctx, report)

	return report, err
}

func (s *Service) finish(ctx context.Context, report *domain.SyncReport) {
	completedAt := time.Now()
	report.CompletedAt = &completedAt

	if s.runs == nil {
		return
	}

	if err := s.runs.SaveRun(ctx, report); err != nil {
		log.ForContext(ctx).WithError(err).WithField("run_id", report.ID).Warn("Erro ao salvar resumo da execução")
	}
}

// loadMappings combina os mapeamentos da configuração com os do banco; o banco prevalece
func (s *Service) loadMappings(ctx context.Context) ([]domain.AdGroupMapping, error) {
	if s.mappings == nil {
		return s.staticMappings, nil
	}

	stored, err := s.mappings.ListMappings(ctx)
	if err != nil {
		return nil, errors.Wrap(ErrMappingUnavailable, err.Error())
	}

	return append(append([]domain.AdGroupMapping{}, s.staticMappings...), stored...), nil
}

func (s *Service) logUnmatched(logger log.Logger, joined domain.JoinResult) {
	if len(joined.UnmatchedDestination) > 0 || len(joined.UnmatchedSource) > 0 {
		logger.WithFields(log.Fields{
			"unmatched_source":      len(joined.UnmatchedSource),
			"unmatched_destination": len(joined.UnmatchedDestination),
		}).Warn("Registros sem correspondência entre as contas")
	}

	for _, record := range joined.UnmatchedDestination {
		logger.WithFields(log.Fields{
			"ad_group_name": record.AdGroupName,
			"ad_group_id":   record.AdGroupID,
			"keyword_text":  record.KeywordText,
			"match_type":    record.MatchType,
		}).Debug("Palavra-chave do destino sem par na origem")
	}
}
