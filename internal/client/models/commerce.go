package models

type Customer struct {
	ID              string   `json:"id,omitempty"`
	SiteID          string   `json:"siteId"`
	Name            string   `json:"name"`
	Address         string   `json:"address,omitempty"`
	ContractNo      string   `json:"contractNo,omitempty"`
	CityOrigin      string   `json:"cityOrigin,omitempty"`
	CityDestination string   `json:"cityDestination,omitempty"`
	Commodity       string   `json:"commodity,omitempty"`
	Commission      float64  `json:"commission,omitempty"`
	Tariffs         []Tariff `json:"tariffs"`
	InsertedBy      string   `json:"insertedBy,omitempty"`
	UpdatedBy       string   `json:"updatedBy,omitempty"`
	InsertedDate    Date     `json:"insertedDate,omitzero"`
	UpdatedDate     Date     `json:"updatedDate,omitzero"`
}

// Tariff is one price line of a customer contract. TotalTariff is computed
// by the backend.
type Tariff struct {
	TariffID      string  `json:"tariffId,omitempty"`
	CustomerID    string  `json:"customerId,omitempty"`
	ChassisSize   int     `json:"chassisSize"`
	ContainerType string  `json:"containerType"`
	MoveType      string  `json:"moveType"`
	StdTariff     float64 `json:"stdTariff"`
	Insurance     float64 `json:"insurance"`
	Tips          float64 `json:"tips"`
	Police        float64 `json:"police"`
	Lolo          float64 `json:"lolo"`
	Others        float64 `json:"others"`
	TotalTariff   float64 `json:"totalTariff,omitempty"`
}

// Total sums the tariff components the way the backend does.
func (t Tariff) Total() float64 {
	return t.StdTariff + t.Insurance + t.Tips + t.Police + t.Lolo + t.Others
}

// Order status values.
const (
	OrderStatusPending  = 0
	OrderStatusApproved = 1
	OrderStatusRejected = 2
	OrderStatusDone     = 3
)

type Order struct {
	OrderID            string  `json:"orderId,omitempty"`
	OrderDate          Date    `json:"orderDate,omitzero"`
	CustomerID         string  `json:"customerId"`
	QtyChassis20       int     `json:"qtyChassis20,omitempty"`
	QtyChassis40       int     `json:"qtyChassis40,omitempty"`
	SiteID             string  `json:"siteId,omitempty"`
	RemarksOperasional string  `json:"remarksOperasional,omitempty"`
	RemarksSupervisor  string  `json:"remarksSupervisor,omitempty"`
	MoveType           string  `json:"moveType,omitempty"`
	DownPayment        float64 `json:"downPayment,omitempty"`
	OrderStatus        int     `json:"orderStatus"`

	Qty120mtfl    int `json:"qty120mtfl,omitempty"`
	Qty120mt      int `json:"qty120mt,omitempty"`
	Qty220mtfl    int `json:"qty220mtfl,omitempty"`
	Qty220mt      int `json:"qty220mt,omitempty"`
	Qty140mtfl    int `json:"qty140mtfl,omitempty"`
	Qty140mt      int `json:"qty140mt,omitempty"`
	Qty120mt120fl int `json:"qty120mt120fl,omitempty"`
	Qty120mt220fl int `json:"qty120mt220fl,omitempty"`
	Qty220mt120fl int `json:"qty220mt120fl,omitempty"`
	Qty220mt220fl int `json:"qty220mt220fl,omitempty"`
	QtyCh120fl    int `json:"qtyCh120fl,omitempty"`
	QtyCh220fl    int `json:"qtyCh220fl,omitempty"`
	QtyCh140fl    int `json:"qtyCh140fl,omitempty"`

	CreatedBy    string `json:"createdBy,omitempty"`
	CreatedDate  Date   `json:"createdDate,omitzero"`
	UpdatedBy    string `json:"updatedBy,omitempty"`
	UpdatedDate  Date   `json:"updatedDate,omitzero"`
	ApprovedBy   string `json:"approvedBy,omitempty"`
	ApprovedDate Date   `json:"approvedDate,omitzero"`
}

// OrderApproval is the body of PUT /api/order/approve.
type OrderApproval struct {
	OrderID           string `json:"orderId"`
	RemarksSupervisor string `json:"remarksSupervisor"`
	OrderStatus       int    `json:"orderStatus"`
}

// Spj is a shipment order: one trip of a vehicle, driver and chassis for an
// order.
type Spj struct {
	ID                 string  `json:"id,omitempty"`
	OrderID            string  `json:"orderId"`
	CustomerID         string  `json:"customerId"`
	VehicleID          string  `json:"vehicleId"`
	ChassisID          string  `json:"chassisId"`
	DriverID           string  `json:"driverId"`
	ChassisSize        int     `json:"chassisSize"`
	ContainerType      string  `json:"containerType"`
	ContainerQty       int     `json:"containerQty"`
	DateOut            Date    `json:"dateOut,omitzero"`
	DateIn             Date    `json:"dateIn,omitzero"`
	ActualDateIn       Date    `json:"actualDateIn,omitzero"`
	Commission         float64 `json:"commission,omitempty"`
	OtherCommission    float64 `json:"otherCommission,omitempty"`
	RemarksOperasional string  `json:"remarksOperasional,omitempty"`
	RemarksSupervisor  string  `json:"remarksSupervisor,omitempty"`
	Status             int     `json:"status"`
	InsertedBy         string  `json:"insertedBy,omitempty"`
	InsertedDate       Date    `json:"insertedDate,omitzero"`
	UpdatedBy          string  `json:"updatedBy,omitempty"`
	UpdatedDate        Date    `json:"updatedDate,omitzero"`
	ApprovedBy         string  `json:"approvedBy,omitempty"`
	ApprovedDate       Date    `json:"approvedDate,omitzero"`
}

// SpjApproval is the body of PUT /api/spj/approve.
type SpjApproval struct {
	SpjID             string `json:"spjId"`
	Status            int    `json:"status"`
	RemarksSupervisor string `json:"remarksSupervisor"`
}

// Komisi is the commission paid per truck for a location.
type Komisi struct {
	KomisiID        string  `json:"komisiId,omitempty"`
	TruckID         string  `json:"truckId"`
	Location        string  `json:"location"`
	TruckList       []Truck `json:"truckList,omitempty"`
	CommissionFee   float64 `json:"commissionFee"`
	TruckCommission float64 `json:"truckCommission"`
	CreatedBy       string  `json:"createdBy,omitempty"`
	CreatedDate     Date    `json:"createdDate,omitzero"`
	UpdatedBy       string  `json:"updatedBy,omitempty"`
	UpdatedDate     Date    `json:"updatedDate,omitzero"`
}
