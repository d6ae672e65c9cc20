package cart

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func makeCartApp() *fiber.App {
	app := fiber.New()
	NewHandler(NewService(NewInMemoryRepository())).RegisterRoutes(app)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, body string) (int, string) {
	t.Helper()
	r := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		r.Header.Set("Content-Type", "application/json")
	}
	res, err := app.Test(r)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	b, _ := io.ReadAll(res.Body)
	return res.StatusCode, string(b)
}

func TestCartLifecycle(t *testing.T) {
	app := makeCartApp()

	// a user with no prior cart gets the empty default
	status, body := doJSON(t, app, "GET", "/api/cart/u1", "")
	if status != fiber.StatusOK {
		t.Fatalf("expected 200 for fresh cart, got %d", status)
	}
	if !strings.Contains(body, `"items":[]`) || !strings.Contains(body, `"total":0`) {
		t.Fatalf("expected empty default cart, got %s", body)
	}

	// add with omitted quantity defaults to 1
	status, body = doJSON(t, app, "POST", "/api/cart/u1/items", `{"productId":1}`)
	if status != fiber.StatusOK {
		t.Fatalf("expected 200 for add, got %d", status)
	}
	if !strings.Contains(body, "Item added to cart") || !strings.Contains(body, `"quantity":1`) {
		t.Fatalf("expected one unit of product 1, got %s", body)
	}

	// adding the same product accumulates instead of duplicating the line
	_, body = doJSON(t, app, "POST", "/api/cart/u1/items", `{"productId":1,"quantity":2}`)
	if !strings.Contains(body, `"quantity":3`) {
		t.Fatalf("expected accumulated quantity 3, got %s", body)
	}
	if strings.Count(body, `"productId":1`) != 1 {
		t.Fatalf("expected a single line for product 1, got %s", body)
	}

	// update sets the quantity outright
	status, body = doJSON(t, app, "PUT", "/api/cart/u1/items/1", `{"quantity":5}`)
	if status != fiber.StatusOK || !strings.Contains(body, `"quantity":5`) {
		t.Fatalf("expected quantity 5 after update, got %d %s", status, body)
	}

	// updating an item missing from an existing cart is a 404
	status, body = doJSON(t, app, "PUT", "/api/cart/u1/items/42", `{"quantity":1}`)
	if status != fiber.StatusNotFound || !strings.Contains(body, "Item not found in cart") {
		t.Fatalf("expected item 404, got %d %s", status, body)
	}

	// quantity zero removes the line
	_, body = doJSON(t, app, "PUT", "/api/cart/u1/items/1", `{"quantity":0}`)
	if strings.Contains(body, `"productId":1`) {
		t.Fatalf("expected product 1 removed at quantity 0, got %s", body)
	}

	// remove a line and clear
	doJSON(t, app, "POST", "/api/cart/u1/items", `{"productId":2,"quantity":4}`)
	status, body = doJSON(t, app, "DELETE", "/api/cart/u1/items/2", "")
	if status != fiber.StatusOK || !strings.Contains(body, "Item removed from cart") {
		t.Fatalf("expected remove to succeed, got %d %s", status, body)
	}

	status, body = doJSON(t, app, "DELETE", "/api/cart/u1", "")
	if status != fiber.StatusOK || !strings.Contains(body, "Cart cleared") {
		t.Fatalf("expected clear to succeed, got %d %s", status, body)
	}
	_, body = doJSON(t, app, "GET", "/api/cart/u1", "")
	if !strings.Contains(body, `"items":[]`) {
		t.Fatalf("expected empty cart after clear, got %s", body)
	}
}

func TestCart_MissingCartIsNotFoundForUpdateAndRemove(t *testing.T) {
	app := makeCartApp()

	status, body := doJSON(t, app, "PUT", "/api/cart/ghost/items/1", `{"quantity":1}`)
	if status != fiber.StatusNotFound || !strings.Contains(body, "Cart not found") {
		t.Fatalf("expected cart 404 on update, got %d %s", status, body)
	}

	status, body = doJSON(t, app, "DELETE", "/api/cart/ghost/items/1", "")
	if status != fiber.StatusNotFound || !strings.Contains(body, "Cart not found") {
		t.Fatalf("expected cart 404 on remove, got %d %s", status, body)
	}

	// clearing an absent cart still succeeds
	status, _ = doJSON(t, app, "DELETE", "/api/cart/ghost", "")
	if status != fiber.StatusOK {
		t.Fatalf("expected 200 clearing an absent cart, got %d", status)
	}
}

func TestCart_NonNumericItemIDKeepsCartFirstOrdering(t *testing.T) {
	app := makeCartApp()

	// with no cart stored, a garbage item id still reports the missing cart
	status, body := doJSON(t, app, "PUT", "/api/cart/ghost/items/abc", `{"quantity":1}`)
	if status != fiber.StatusNotFound || !strings.Contains(body, "Cart not found") {
		t.Fatalf("expected cart 404 before any item check, got %d %s", status, body)
	}

	// once the cart exists, the same id falls through to the item check
	doJSON(t, app, "POST", "/api/cart/u1/items", `{"productId":1}`)
	status, body = doJSON(t, app, "PUT", "/api/cart/u1/items/abc", `{"quantity":1}`)
	if status != fiber.StatusNotFound || !strings.Contains(body, "Item not found in cart") {
		t.Fatalf("expected item 404 for existing cart, got %d %s", status, body)
	}
}

func TestCart_RejectsInvalidProduct(t *testing.T) {
	app := makeCartApp()

	status, body := doJSON(t, app, "POST", "/api/cart/u1/items", `{"quantity":2}`)
	if status != fiber.StatusBadRequest || !strings.Contains(body, "invalid productId") {
		t.Fatalf("expected 400 for missing productId, got %d %s", status, body)
	}
}
