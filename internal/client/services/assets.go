package services

import (
	"context"
	"net/url"

	"github.com/dmitrijs2005/sitrack/internal/client/models"
	"github.com/dmitrijs2005/sitrack/internal/client/store"
)

type Assets struct {
	*store.Collection[models.Asset]
}

func NewAssets(deps store.Deps) *Assets {
	return &Assets{store.New(deps, store.Entity[models.Asset]{
		Name: "Asset",
		Endpoints: store.Endpoints{
			Base:   "/api/asset",
			Detail: store.PathID(""),
			Update: store.PathID("/update"),
		},
		ID:                  func(a models.Asset) string { return a.AssetID },
		SetID:               func(a *models.Asset, id string) { a.AssetID = id },
		CreatedIDField:      "assetId",
		UpdateReturnsRecord: true,
	})}
}

type RequestAssets struct {
	*store.Collection[models.RequestAsset]
}

func NewRequestAssets(deps store.Deps) *RequestAssets {
	return &RequestAssets{store.New(deps, store.Entity[models.RequestAsset]{
		Name: "Request Asset",
		Endpoints: store.Endpoints{
			Base:   "/api/request-assets",
			Detail: store.QueryID("/detail"),
			Update: store.QueryID("/edit"),
		},
		ID:             func(r models.RequestAsset) string { return r.RequestAssetID },
		SetID:          func(r *models.RequestAsset, id string) { r.RequestAssetID = id },
		CreatedIDField: "requestAssetId",
	})}
}

// Approve sets the approval status and remark of request id.
func (r *RequestAssets) Approve(ctx context.Context, id string, status int, remark string) store.Result[models.RequestAsset] {
	return r.Transition(ctx, store.Transition[models.RequestAsset]{
		Action:  "mengupdate status",
		Success: "Status Request Asset berhasil diperbarui",
		Path:    "/approve",
		Query:   url.Values{"id": {id}},
		Body:    models.RequestAssetApproval{Status: status, RequestRemark: remark},
		ID:      id,
		Apply: func(ra *models.RequestAsset) {
			ra.Status = status
			ra.RequestRemark = remark
		},
	})
}
