// File: services/billing/billing.go
package billing

import (
	"fmt"
	"strconv"
	"strings"

	paymentRepo "dochouse/database/repository/payment"
	"dochouse/models"
	"dochouse/utils"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// BillingService creates payment intents and records completed payments.
type BillingService interface {
	// CreatePaymentIntent charges price (a JSON number or numeric
	// string) in USD and returns the gateway's client secret.
	CreatePaymentIntent(price interface{}) (string, error)
	ListPayments(email string) ([]models.Payment, error)
	RecordPayment(payment *models.Payment) (primitive.ObjectID, error)
}

// IntentCreator is the gateway call used to open a payment intent.
type IntentCreator func(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error)

// DefaultBillingService is the production BillingService.
type DefaultBillingService struct {
	Repo      paymentRepo.PaymentRepository
	NewIntent IntentCreator // defaults to paymentintent.New
}

func (s *DefaultBillingService) CreatePaymentIntent(price interface{}) (string, error) {
	amount, err := AmountFromPrice(price)
	if err != nil {
		return "", utils.NewError(utils.ErrBadRequest, err.Error())
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amount),
		Currency: stripe.String(string(stripe.CurrencyUSD)),
		PaymentMethodTypes: stripe.StringSlice([]string{
			"card",
		}),
	}

	create := s.NewIntent
	if create == nil {
		create = paymentintent.New
	}
	pi, err := create(params)
	if err != nil {
		utils.GetLogger().Error("payment intent creation failed", zap.Int64("amount", amount), zap.Error(err))
		return "", utils.NewError(utils.ErrUpstream, "payment gateway request failed")
	}

	utils.GetLogger().Info("payment intent created", zap.Int64("amount", amount), zap.String("intent", pi.ID))
	return pi.ClientSecret, nil
}

func (s *DefaultBillingService) ListPayments(email string) ([]models.Payment, error) {
	return s.Repo.GetByEmail(email)
}

func (s *DefaultBillingService) RecordPayment(payment *models.Payment) (primitive.ObjectID, error) {
	if payment.TransactionID == "" {
		payment.TransactionID = uuid.New().String()
	}
	return s.Repo.Create(payment)
}

// AmountFromPrice converts a decimal price to smallest-currency units,
// truncating past two fraction digits. The price arrives from JSON as
// either a number or a numeric string.
func AmountFromPrice(price interface{}) (int64, error) {
	str, err := priceString(price)
	if err != nil {
		return 0, err
	}
	return parseCents(str)
}

func priceString(price interface{}) (string, error) {
	switch p := price.(type) {
	case string:
		return p, nil
	case float64:
		// Shortest exact representation, so truncation happens in
		// parseCents rather than rounding here.
		return strconv.FormatFloat(p, 'f', -1, 64), nil
	case int:
		return fmt.Sprintf("%d", p), nil
	case int64:
		return fmt.Sprintf("%d", p), nil
	default:
		return "", fmt.Errorf("price must be a number or numeric string")
	}
}

// parseCents reads the decimal text directly so "19.99" yields exactly
// 1999 rather than drifting through binary floating point.
func parseCents(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "-") {
		return 0, fmt.Errorf("price must not be negative")
	}
	intPart, fracPart, _ := strings.Cut(s, ".")

	whole, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid price %q", s)
	}

	// Keep at most two fraction digits; anything past them truncates.
	if len(fracPart) > 2 {
		fracPart = fracPart[:2]
	}
	for len(fracPart) < 2 {
		fracPart += "0"
	}
	frac, err := strconv.ParseInt(fracPart, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid price %q", s)
	}

	return whole*100 + frac, nil
}
