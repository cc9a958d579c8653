package billing

import (
	"context"
	"fmt"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"

	"github.com/justdogsza/dog-training-api/internal/models"
)

// PaymentLinker produces a hosted checkout URL for an invoice. A nil linker
// means billing is not configured and invoices are issued without a link.
type PaymentLinker interface {
	PaymentLink(ctx context.Context, inv *models.Invoice) (string, error)
}

type MercadoPago struct {
	preferences preference.Client
}

func NewMercadoPago(accessToken string) (*MercadoPago, error) {
	if accessToken == "" {
		return nil, nil
	}

	cfg, err := mpconfig.New(accessToken)
	if err != nil {
		return nil, fmt.Errorf("mercadopago config: %w", err)
	}

	return &MercadoPago{preferences: preference.NewClient(cfg)}, nil
}

func (m *MercadoPago) PaymentLink(ctx context.Context, inv *models.Invoice) (string, error) {
	req := preference.Request{
		ExternalReference: inv.InvoiceNumber,
		Items: []preference.ItemRequest{
			{
				Title:      inv.Description,
				Quantity:   1,
				CurrencyID: inv.Currency,
				UnitPrice:  float64(inv.AmountCents) / 100,
			},
		},
	}

	resp, err := m.preferences.Create(ctx, req)
	if err != nil {
		return "", fmt.Errorf("create preference: %w", err)
	}

	return resp.InitPoint, nil
}

var _ PaymentLinker = (*MercadoPago)(nil)
