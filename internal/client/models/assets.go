package models

type Asset struct {
	AssetID       string  `json:"assetId"`
	JenisAsset    string  `json:"jenisAsset"`
	JumlahStok    int     `json:"jumlahStok"`
	Brand         string  `json:"brand"`
	AssetRemark   string  `json:"assetRemark,omitempty"`
	RequestedStok int     `json:"requestedStok"`
	CreatedBy     string  `json:"createdBy,omitempty"`
	CreatedDate   Date    `json:"createdDate,omitzero"`
	UpdatedBy     string  `json:"updatedBy,omitempty"`
	UpdatedDate   Date    `json:"updatedDate,omitzero"`
	AssetPrice    float64 `json:"assetPrice"`
}

// Request asset status values.
const (
	RequestAssetPending  = 0
	RequestAssetApproved = 1
	RequestAssetRejected = 2
)

// RequestAsset asks the workshop store for stock.
type RequestAsset struct {
	RequestAssetID string             `json:"requestAssetId,omitempty"`
	RequestRemark  string             `json:"requestRemark,omitempty"`
	Status         int                `json:"status"`
	CreatedBy      string             `json:"createdBy,omitempty"`
	CreatedDate    Date               `json:"createdDate,omitzero"`
	UpdatedBy      string             `json:"updatedBy,omitempty"`
	UpdatedDate    Date               `json:"updatedDate,omitzero"`
	ApprovalBy     string             `json:"approvalBy,omitempty"`
	ApprovalDate   Date               `json:"approvalDate,omitzero"`
	Assets         []RequestAssetItem `json:"assets"`
}

type RequestAssetItem struct {
	AssetID           string `json:"assetId"`
	RequestedQuantity int    `json:"requestedQuantity"`
}

// RequestAssetApproval is the body of PUT /api/request-assets/approve.
type RequestAssetApproval struct {
	Status        int    `json:"status"`
	RequestRemark string `json:"requestRemark"`
}
