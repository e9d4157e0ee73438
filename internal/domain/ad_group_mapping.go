package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// AdGroupMapping liga explicitamente um grupo de anúncios do destino ao grupo da origem
type AdGroupMapping struct {
	ID                   string    `json:"id"`
	SourceAdGroupID      int64     `json:"source_ad_group_id"`
	DestinationAdGroupID int64     `json:"destination_ad_group_id"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// ParseAdGroupMappings interpreta entradas no formato "destino:origem"
func ParseAdGroupMappings(entries []string) ([]AdGroupMapping, error) {
	mappings := make([]AdGroupMapping, 0, len(entries))
	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		parts := strings.Split(entry, ":")
		if len(parts) != 2 {
			return nil, fmt.Errorf("mapeamento inválido %q: esperado destino:origem", entry)
		}

		destinationID, err := strconv.ParseInt(strings.TrimSpace(parts[0]), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("mapeamento inválido %q: %w", entry, err)
		}

		sourceID, err := strconv.ParseInt(strings.TrimSpace(parts[1]), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("mapeamento inválido %q: %w", entry, err)
		}

		mappings = append(mappings, AdGroupMapping{
			SourceAdGroupID:      sourceID,
			DestinationAdGroupID: destinationID,
		})
	}

	return mappings, nil
}
