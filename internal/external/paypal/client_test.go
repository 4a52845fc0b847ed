package paypal

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coursepay/internal/domain/gateway"
)

func TestCreateExternalOrder(t *testing.T) {
	t.Run("posts the order and extracts the approve link", func(t *testing.T) {
		var captured createOrderReq

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			require.Equal(t, "/v2/checkout/orders", r.URL.Path)
			require.Equal(t, "application/json", r.Header.Get("Content-Type"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(orderResp{
				ID:     "EC-60385559L1062554J",
				Status: "CREATED",
				Links: []link{
					{Href: "https://api.sandbox.paypal.com/v2/checkout/orders/EC-60385559L1062554J", Rel: "self"},
					{Href: "https://www.sandbox.paypal.com/checkoutnow?token=EC-60385559L1062554J", Rel: "approve"},
				},
			})
		}))
		defer srv.Close()

		client := New(srv.URL, "/v2/checkout/orders", srv.Client())

		order, err := client.CreateExternalOrder(context.Background(), gateway.CreateOrderRequest{
			Amount:    88.00,
			Currency:  "USD",
			ReturnURL: "https://shop.test/return",
			CancelURL: "https://shop.test/cancel",
		})

		require.NoError(t, err)
		assert.Equal(t, "EC-60385559L1062554J", order.Token)
		assert.Equal(t, "https://www.sandbox.paypal.com/checkoutnow?token=EC-60385559L1062554J", order.ApprovalURL)

		assert.Equal(t, "CAPTURE", captured.Intent)
		require.Len(t, captured.PurchaseUnits, 1)
		assert.Equal(t, "USD", captured.PurchaseUnits[0].Amount.CurrencyCode)
		assert.Equal(t, "88.00", captured.PurchaseUnits[0].Amount.Value)
		require.NotNil(t, captured.ApplicationContext)
		assert.Equal(t, "https://shop.test/return", captured.ApplicationContext.ReturnURL)
	})

	t.Run("surfaces non-2xx responses", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"name":"UNPROCESSABLE_ENTITY"}`, http.StatusUnprocessableEntity)
		}))
		defer srv.Close()

		client := New(srv.URL, "/v2/checkout/orders", srv.Client())

		_, err := client.CreateExternalOrder(context.Background(), gateway.CreateOrderRequest{Amount: 10, Currency: "USD"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "UNPROCESSABLE_ENTITY")
	})

	t.Run("rejects a response without an order id", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{}`))
		}))
		defer srv.Close()

		client := New(srv.URL, "/v2/checkout/orders", srv.Client())

		_, err := client.CreateExternalOrder(context.Background(), gateway.CreateOrderRequest{Amount: 10, Currency: "USD"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "no order id")
	})
}

func TestFetchExternalOrder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/v2/checkout/orders/EC-1", r.URL.Path)

		_ = json.NewEncoder(w).Encode(orderResp{ID: "EC-1", Status: "APPROVED"})
	}))
	defer srv.Close()

	client := New(srv.URL, "/v2/checkout/orders", srv.Client())

	state, err := client.FetchExternalOrder(context.Background(), "EC-1")

	require.NoError(t, err)
	assert.Equal(t, gateway.ExternalOrderState{Token: "EC-1", Status: "APPROVED"}, state)
}
