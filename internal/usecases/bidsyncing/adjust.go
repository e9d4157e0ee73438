package bidsyncing

import (
	"github.com/shopspring/decimal"
	"github.com/vfg2006/keyword-bid-sync/pkg/utils"
)

// AdjustBid aplica o desconto e arredonda para centavos antes de qualquer conversão para micros
func AdjustBid(sourceBid, fraction decimal.Decimal) decimal.Decimal {
	return utils.RoundWithTwoDecimalPlace(sourceBid.Mul(decimal.NewFromInt(1).Sub(fraction)))
}

// BidMicros converte o lance já ajustado para micro-unidades (truncado)
func BidMicros(bid decimal.Decimal) int64 {
	return utils.UnitsToMicros(utils.RoundWithTwoDecimalPlace(bid))
}
