package seed

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"

	"github.com/marcelsud/webhook-capture/capture"
)

// StripeEventTypes lists the event types the generator draws from.
var StripeEventTypes = []string{
	"payment_intent.created",
	"payment_intent.succeeded",
	"payment_intent.payment_failed",
	"payment_intent.canceled",
	"payment_intent.processing",
	"invoice.created",
	"invoice.finalized",
	"invoice.payment_succeeded",
	"invoice.payment_failed",
	"invoice.voided",
	"charge.pending",
	"charge.succeeded",
	"charge.failed",
	"charge.refunded",
	"checkout.session.completed",
	"checkout.session.expired",
	"customer.created",
	"customer.subscription.created",
	"customer.subscription.updated",
	"customer.subscription.deleted",
	"payment_method.attached",
	"payout.created",
	"payout.paid",
	"payout.canceled",
}

var stripePaths = []string{
	"/api/webhooks/stripe",
	"/integrations/stripe/webhooks",
	"/webhooks/stripe",
}

// Weighted toward success: most deliveries land on a healthy endpoint.
var statusCodes = []int{
	200, 200, 200, 200, 200, 200, 200, 204, 202, 400, 401, 403, 404, 409, 500, 503,
}

var stripeAPIVersions = []string{
	"2024-04-10",
	"2023-10-16",
	"2023-08-16",
	"2022-11-15",
	"2020-08-27",
}

const (
	lowerAlnumChars = "abcdefghijklmnopqrstuvwxyz0123456789"
	upperAlnumChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	hexChars        = "0123456789abcdef"
)

func randChars(n int, charset string) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = charset[gofakeit.Number(0, len(charset)-1)]
	}
	return string(b)
}

// stripeID renders ids like "pi_0a1b2c..." the way Stripe prefixes its objects
func stripeID(prefix string, length int) string {
	return prefix + "_" + randChars(length, lowerAlnumChars)
}

func pick[T any](items []T) T {
	return items[gofakeit.Number(0, len(items)-1)]
}

func buildDataObject(eventType string, amount int, currency string) map[string]interface{} {
	if strings.HasPrefix(eventType, "payment_intent") {
		return map[string]interface{}{
			"id":       stripeID("pi", 24),
			"object":   "payment_intent",
			"amount":   amount,
			"currency": currency,
			"status":   pick([]string{"requires_payment_method", "processing", "succeeded", "requires_action", "canceled"}),
			"customer": stripeID("cus", 14),
			"metadata": map[string]interface{}{
				"order_id": randChars(10, upperAlnumChars),
			},
		}
	}

	if strings.HasPrefix(eventType, "invoice") {
		return map[string]interface{}{
			"id":                 stripeID("in", 24),
			"object":             "invoice",
			"amount_due":         amount,
			"currency":           currency,
			"status":             pick([]string{"draft", "open", "paid", "uncollectible", "void"}),
			"customer":           stripeID("cus", 14),
			"hosted_invoice_url": gofakeit.URL(),
			"lines": map[string]interface{}{
				"data": []map[string]interface{}{
					{
						"id":          stripeID("il", 24),
						"amount":      amount,
						"description": gofakeit.ProductDescription(),
					},
				},
			},
		}
	}

	if strings.HasPrefix(eventType, "charge") {
		return map[string]interface{}{
			"id":             stripeID("ch", 24),
			"object":         "charge",
			"amount":         amount,
			"currency":       currency,
			"paid":           eventType == "charge.succeeded",
			"status":         pick([]string{"pending", "succeeded", "failed"}),
			"refunded":       eventType == "charge.refunded",
			"customer":       stripeID("cus", 14),
			"payment_method": stripeID("pm", 24),
		}
	}

	if strings.HasPrefix(eventType, "checkout.session") {
		return map[string]interface{}{
			"id":             stripeID("cs", 24),
			"object":         "checkout.session",
			"amount_total":   amount,
			"currency":       currency,
			"customer":       stripeID("cus", 14),
			"payment_status": pick([]string{"paid", "unpaid", "no_payment_required"}),
			"mode":           pick([]string{"subscription", "payment"}),
			"success_url":    gofakeit.URL(),
			"cancel_url":     gofakeit.URL(),
		}
	}

	if strings.HasPrefix(eventType, "customer") {
		return map[string]interface{}{
			"id":     stripeID("cus", 14),
			"object": "customer",
			"email":  gofakeit.Email(),
			"name":   gofakeit.Name(),
			"phone":  gofakeit.Phone(),
			"address": map[string]interface{}{
				"line1":       gofakeit.Street(),
				"city":        gofakeit.City(),
				"country":     gofakeit.CountryAbr(),
				"postal_code": gofakeit.Zip(),
			},
			"subscriptions": map[string]interface{}{
				"total_count": gofakeit.Number(0, 3),
			},
		}
	}

	if strings.HasPrefix(eventType, "payment_method") {
		return map[string]interface{}{
			"id":     stripeID("pm", 24),
			"object": "payment_method",
			"type":   pick([]string{"card", "bank_account", "ideal"}),
			"billing_details": map[string]interface{}{
				"email": gofakeit.Email(),
				"name":  gofakeit.Name(),
			},
			"customer": stripeID("cus", 14),
		}
	}

	if strings.HasPrefix(eventType, "payout") {
		return map[string]interface{}{
			"id":           stripeID("po", 24),
			"object":       "payout",
			"amount":       amount,
			"currency":     currency,
			"status":       pick([]string{"paid", "pending", "canceled"}),
			"arrival_date": gofakeit.DateRange(time.Now(), time.Now().AddDate(1, 0, 0)).Unix(),
			"method":       pick([]string{"instant", "standard"}),
		}
	}

	return map[string]interface{}{
		"id":       stripeID("obj", 16),
		"object":   "generic",
		"amount":   amount,
		"currency": currency,
		"status":   "processed",
	}
}

// Event builds one plausible captured Stripe webhook delivery. The body is
// valid indented JSON and ContentLength measures it, unlike live captures
// where the declared header is trusted as-is.
func Event(eventType string) (capture.Record, error) {
	currency := strings.ToLower(gofakeit.CurrencyShort())
	amount := gofakeit.Number(500, 250_000)
	createdAt := gofakeit.DateRange(time.Now().Add(-120*24*time.Hour), time.Now()).UTC()
	signatureTimestamp := createdAt.Unix()
	livemode := gofakeit.Bool()

	payload := map[string]interface{}{
		"id":          stripeID("evt", 24),
		"object":      "event",
		"api_version": pick(stripeAPIVersions),
		"created":     signatureTimestamp,
		"data": map[string]interface{}{
			"object": buildDataObject(eventType, amount, currency),
		},
		"livemode":         livemode,
		"pending_webhooks": gofakeit.Number(0, 3),
		"request": map[string]interface{}{
			"id":              stripeID("req", 24),
			"idempotency_key": randChars(24, lowerAlnumChars),
		},
		"type": eventType,
	}

	raw, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return capture.Record{}, fmt.Errorf("marshaling event payload: %w", err)
	}

	body := string(raw)
	contentType := "application/json"
	contentLength := int64(len(raw))

	headers := map[string]string{
		"user-agent":       "Stripe/1.0 (+https://stripe.com/docs/webhooks)",
		"stripe-signature": fmt.Sprintf("t=%d,v1=%s", signatureTimestamp, randChars(64, hexChars)),
		"content-type":     contentType,
		"stripe-trace-id":  randChars(32, lowerAlnumChars),
	}

	var queryParams map[string]string
	if gofakeit.Number(1, 100) <= 35 {
		queryParams = map[string]string{
			"livemode": strconv.FormatBool(livemode),
			"attempt":  strconv.Itoa(gofakeit.Number(1, 5)),
		}
	}

	id, err := uuid.NewV7()
	if err != nil {
		return capture.Record{}, fmt.Errorf("generating id: %w", err)
	}

	return capture.Record{
		ID:            id.String(),
		Method:        "POST",
		PathName:      pick(stripePaths),
		IP:            gofakeit.IPv4Address(),
		StatusCode:    pick(statusCodes),
		ContentType:   &contentType,
		ContentLength: &contentLength,
		QueryParams:   queryParams,
		Headers:       headers,
		Body:          &body,
		CreatedAt:     createdAt,
	}, nil
}

// RandomEvent picks an event type at random and builds it
func RandomEvent() (capture.Record, error) {
	return Event(pick(StripeEventTypes))
}
