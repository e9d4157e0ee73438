package bidsyncing

import (
	"context"

	"github.com/vfg2006/keyword-bid-sync/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

// KeywordReader lê critérios de palavra-chave de uma conta, uma página por chamada
type KeywordReader interface {
	SearchKeywordCriteria(ctx context.Context, query domain.KeywordQuery, pageToken string) (*domain.KeywordCriterionPage, error)
}

// KeywordWriter substitui o lance de CPC de um critério
type KeywordWriter interface {
	UpdateKeywordBid(ctx context.Context, update domain.BidUpdate) error
}

// MappingSource fornece mapeamentos explícitos entre grupos de anúncios
type MappingSource interface {
	ListMappings(ctx context.Context) ([]domain.AdGroupMapping, error)
}

// RunRecorder persiste o resumo de cada execução
type RunRecorder interface {
	SaveRun(ctx context.Context, report *domain.SyncReport) error
}

// BidSyncer executa uma sincronização completa
type BidSyncer interface {
	Run(ctx context.Context) (*domain.SyncReport, error)
}
