package sheetdb

import (
	"context"
	"sort"
	"strconv"

	"github.com/AnNhien/companion-service/internal/model"
)

type requestsRepo struct {
	client *Client
}

func newRequestsRepo(client *Client) Requests {
	return &requestsRepo{
		client: client,
	}
}

func (r *requestsRepo) List(ctx context.Context) ([]*model.UserRequest, error) {
	records, err := r.client.List(ctx, SheetRequests)
	if err != nil {
		return nil, err
	}

	requests := make([]*model.UserRequest, 0, len(records))
	for _, record := range records {
		requests = append(requests, &model.UserRequest{
			ID:        record.String("id"),
			Type:      record.String("type"),
			Content:   record.String("content"),
			Contact:   record.String("contact"),
			CreatedAt: record.Int64("createdAt"),
		})
	}

	sort.Slice(requests, func(i, j int) bool {
		return requests[i].CreatedAt > requests[j].CreatedAt
	})

	return requests, nil
}

func (r *requestsRepo) Create(ctx context.Context, req model.UserRequest) error {
	return r.client.Create(ctx, SheetRequests, Record{
		"id":        req.ID,
		"type":      req.Type,
		"content":   req.Content,
		"contact":   req.Contact,
		"createdAt": strconv.FormatInt(req.CreatedAt, 10),
	})
}

func (r *requestsRepo) Delete(ctx context.Context, id string) error {
	return r.client.Delete(ctx, SheetRequests, id)
}
