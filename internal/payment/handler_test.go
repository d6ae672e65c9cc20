package payment

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
)

func makePaymentApp() *fiber.App {
	app := fiber.New()
	NewHandler(NewService(5 * time.Millisecond)).RegisterRoutes(app)
	return app
}

func TestProcessPayment(t *testing.T) {
	app := makePaymentApp()

	req := httptest.NewRequest("POST", "/api/payments/process",
		strings.NewReader(`{"amount":129.99,"paymentMethod":"credit_card","orderId":3}`))
	req.Header.Set("Content-Type", "application/json")

	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}

	b, _ := io.ReadAll(res.Body)
	body := string(b)
	for _, want := range []string{
		"Payment processed successfully",
		`"transactionId":"txn_`,
		`"amount":129.99`,
		`"currency":"USD"`,
		`"status":"completed"`,
		`"orderId":3`,
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("expected body to contain %q, got %s", want, body)
		}
	}
}

func TestPaymentStatus_IgnoresHistory(t *testing.T) {
	app := makePaymentApp()

	// the id was never processed; the stub fabricates a status anyway
	req := httptest.NewRequest("GET", "/api/payments/status/txn_nothere", nil)
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}

	b, _ := io.ReadAll(res.Body)
	body := string(b)
	if !strings.Contains(body, `"transactionId":"txn_nothere"`) {
		t.Fatalf("expected echoed transaction id, got %s", body)
	}
	if !strings.Contains(body, `"status":"completed"`) || !strings.Contains(body, `"amount":299.99`) {
		t.Fatalf("expected fixed fabricated status, got %s", body)
	}
}
