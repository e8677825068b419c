package payments

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"

	"github.com/SparkleCleanOps/cleaning-ops/internal/models"
)

var ErrGatewayNotConfigured = errors.New("payment gateway not configured")

// MercadoPagoGateway wraps the Mercado Pago SDK for invoice payments.
// The invoice ID rides along as the external reference, so webhook
// notifications can be tied back to our records.
type MercadoPagoGateway struct {
	client payment.Client
}

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	if accessToken == "" {
		return nil, nil
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[payment][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(cfg)}, nil
}

// CreatePayment registers a pending payment for an issued invoice and
// returns the provider payment ID.
func (g *MercadoPagoGateway) CreatePayment(
	ctx context.Context,
	inv *models.Invoice,
	payerEmail string,
) (string, error) {

	if g == nil || g.client == nil {
		return "", ErrGatewayNotConfigured
	}

	req := payment.Request{
		TransactionAmount: inv.Total,
		Description:       fmt.Sprintf("Cleaning invoice #%d", inv.ID),
		ExternalReference: strconv.FormatUint(uint64(inv.ID), 10),
		Payer: &payment.PayerRequest{
			Email: payerEmail,
		},
	}

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		log.Printf("[payment][gateway] create failed invoice_id=%d err=%v", inv.ID, err)
		return "", err
	}

	log.Printf("[payment][gateway] create success invoice_id=%d provider_payment_id=%d provider_status=%s",
		inv.ID, resp.ID, resp.Status)

	return strconv.Itoa(resp.ID), nil
}

// LookupPayment resolves a webhook notification to (invoice ID, approved).
func (g *MercadoPagoGateway) LookupPayment(
	ctx context.Context,
	providerPaymentID string,
) (uint, bool, error) {

	if g == nil || g.client == nil {
		return 0, false, ErrGatewayNotConfigured
	}

	id, err := strconv.Atoi(providerPaymentID)
	if err != nil {
		return 0, false, fmt.Errorf("invalid provider payment id %q", providerPaymentID)
	}

	resp, err := g.client.Get(ctx, id)
	if err != nil {
		log.Printf("[payment][gateway] get failed provider_payment_id=%d err=%v", id, err)
		return 0, false, err
	}

	invoiceID, err := strconv.ParseUint(resp.ExternalReference, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("unexpected external reference %q", resp.ExternalReference)
	}

	return uint(invoiceID), resp.Status == "approved", nil
}
