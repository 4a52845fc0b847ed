// Package opensearch indexes settlement records for the earnings
// dashboard search.
package opensearch

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"coursepay/internal/domain/settlement"

	"github.com/opensearch-project/opensearch-go"
	"github.com/opensearch-project/opensearch-go/opensearchapi"
)

var _ settlement.EventSink = (*EventSink)(nil)

type EventSink struct {
	client *opensearch.Client
	index  string
}

func NewEventSink(ctx context.Context, urls []string, index string) (*EventSink, error) {
	if len(urls) == 0 {
		return nil, errors.New("no OpenSearch addresses configured")
	}

	cfg := opensearch.Config{
		Addresses: urls,
		Transport: &http.Transport{
			MaxIdleConnsPerHost: 10,
		},
	}
	client, err := opensearch.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("opensearch client: %w", err)
	}

	sink := &EventSink{client: client, index: index}

	if err := sink.ensureIndex(ctx); err != nil {
		return nil, err
	}
	return sink, nil
}

func (s *EventSink) ensureIndex(ctx context.Context) error {
	res, err := s.client.Indices.Exists([]string{s.index}, s.client.Indices.Exists.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("indices.exists: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusOK {
		return nil
	}

	body := map[string]any{
		"mappings": map[string]any{
			"properties": map[string]any{
				"order_id":        map[string]any{"type": "keyword"},
				"user_id":         map[string]any{"type": "keyword"},
				"paid_amount":     map[string]any{"type": "double"},
				"platform_amount": map[string]any{"type": "double"},
				"courses":         map[string]any{"type": "keyword"},
				"credits":         map[string]any{"type": "object", "enabled": true},
				"settled_at":      map[string]any{"type": "date"},
			},
		},
		"settings": map[string]any{
			"number_of_replicas": 0,
		},
	}
	buf, _ := json.Marshal(body)
	cr, err := s.client.Indices.Create(
		s.index,
		s.client.Indices.Create.WithBody(bytes.NewReader(buf)),
		s.client.Indices.Create.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("indices.create: %w", err)
	}
	defer cr.Body.Close()
	if cr.IsError() {
		return fmt.Errorf("indices.create error: %s", cr.String())
	}
	return nil
}

// IndexSettlement writes one settlement doc, keyed by order id so a
// retried announce overwrites instead of duplicating.
func (s *EventSink) IndexSettlement(ctx context.Context, doc settlement.Doc) error {
	buf, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal settlement doc: %w", err)
	}

	req := opensearchapi.IndexRequest{
		Index:      s.index,
		DocumentID: doc.OrderID.String(),
		Body:       bytes.NewReader(buf),
	}

	res, err := req.Do(ctx, s.client)
	if err != nil {
		return fmt.Errorf("index settlement: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return fmt.Errorf("index settlement: %s", res.String())
	}
	return nil
}
