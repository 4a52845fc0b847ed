// Package paypal implements the gateway provider port against a
// PayPal-compatible checkout orders API.
package paypal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"coursepay/internal/domain/gateway"
)

type Client struct {
	BaseURL   string
	OrdersURL string
	HTTP      *http.Client
}

func New(baseURL, ordersPath string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{
		BaseURL:   baseURL,
		OrdersURL: baseURL + ordersPath,
		HTTP:      httpClient,
	}
}

var _ gateway.Provider = (*Client)(nil)

type createOrderReq struct {
	Intent             string              `json:"intent"`
	PurchaseUnits      []purchaseUnit      `json:"purchase_units"`
	ApplicationContext *applicationContext `json:"application_context,omitempty"`
}

type purchaseUnit struct {
	Amount amount `json:"amount"`
}

type amount struct {
	CurrencyCode string `json:"currency_code"`
	Value        string `json:"value"`
}

type applicationContext struct {
	ReturnURL string `json:"return_url,omitempty"`
	CancelURL string `json:"cancel_url,omitempty"`
}

type orderResp struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Links  []link `json:"links"`
}

type link struct {
	Href string `json:"href"`
	Rel  string `json:"rel"`
}

func (c *Client) CreateExternalOrder(ctx context.Context, req gateway.CreateOrderRequest) (gateway.ExternalOrder, error) {
	body := createOrderReq{
		Intent: "CAPTURE",
		PurchaseUnits: []purchaseUnit{{
			Amount: amount{
				CurrencyCode: req.Currency,
				Value:        strconv.FormatFloat(req.Amount, 'f', 2, 64),
			},
		}},
		ApplicationContext: &applicationContext{
			ReturnURL: req.ReturnURL,
			CancelURL: req.CancelURL,
		},
	}

	j, err := json.Marshal(body)
	if err != nil {
		return gateway.ExternalOrder{}, fmt.Errorf("marshal: %w", err)
	}

	httpReq, _ := http.NewRequestWithContext(ctx, http.MethodPost, c.OrdersURL, bytes.NewReader(j))
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(httpReq)
	if err != nil {
		return gateway.ExternalOrder{}, fmt.Errorf("http: %w", err)
	}
	defer resp.Body.Close()
	raw, _ := io.ReadAll(resp.Body)

	if resp.StatusCode/100 != 2 {
		return gateway.ExternalOrder{}, fmt.Errorf("provider %s: %s", resp.Status, string(raw))
	}

	var out orderResp
	if err := json.Unmarshal(raw, &out); err != nil {
		return gateway.ExternalOrder{}, fmt.Errorf("unmarshal: %w", err)
	}
	if out.ID == "" {
		return gateway.ExternalOrder{}, fmt.Errorf("provider returned no order id")
	}

	return gateway.ExternalOrder{
		ApprovalURL: approvalLink(out.Links),
		Token:       out.ID,
	}, nil
}

func (c *Client) FetchExternalOrder(ctx context.Context, token string) (gateway.ExternalOrderState, error) {
	httpReq, _ := http.NewRequestWithContext(ctx, http.MethodGet, c.OrdersURL+"/"+token, nil)

	resp, err := c.HTTP.Do(httpReq)
	if err != nil {
		return gateway.ExternalOrderState{}, fmt.Errorf("http: %w", err)
	}
	defer resp.Body.Close()
	raw, _ := io.ReadAll(resp.Body)

	if resp.StatusCode/100 != 2 {
		return gateway.ExternalOrderState{}, fmt.Errorf("provider %s: %s", resp.Status, string(raw))
	}

	var out orderResp
	if err := json.Unmarshal(raw, &out); err != nil {
		return gateway.ExternalOrderState{}, fmt.Errorf("unmarshal: %w", err)
	}

	return gateway.ExternalOrderState{
		Token:  out.ID,
		Status: out.Status,
	}, nil
}

func approvalLink(links []link) string {
	for _, l := range links {
		if l.Rel == "approve" {
			return l.Href
		}
	}
	return ""
}
