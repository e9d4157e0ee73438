package domain

import (
	"fmt"
	"strings"
)

// AccountSettings agrupa a configuração de uma conta participante da sincronização
type AccountSettings struct {
	Alias          string
	CustomerID     string
	Label          string
	CampaignPrefix string
	AdGroupSuffix  string
}

// LabelResource retorna o nome de recurso do rótulo no escopo da conta
func (a AccountSettings) LabelResource() string {
	return LabelResourceName(a.CustomerID, a.Label)
}

// NormalizeCustomerID remove hifens e espaços do ID da conta (ex: 123-456-7890)
func NormalizeCustomerID(customerID string) string {
	return strings.NewReplacer("-", "", " ", "").Replace(strings.TrimSpace(customerID))
}

// LabelResourceName aceita "123", "/labels/123", "labels/123" ou "customers/x/labels/123"
func LabelResourceName(customerID, label string) string {
	label = strings.TrimSpace(label)
	if idx := strings.LastIndex(label, "labels/"); idx >= 0 {
		label = label[idx+len("labels/"):]
	}
	label = strings.Trim(label, "/")

	return fmt.Sprintf("customers/%s/labels/%s", NormalizeCustomerID(customerID), label)
}
