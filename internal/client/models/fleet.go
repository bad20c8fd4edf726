package models

// Truck is a tractor unit (vehicle). VehicleID is assigned by the backend.
type Truck struct {
	VehicleID               string  `json:"vehicleId,omitempty"`
	VehicleBrand            string  `json:"vehicleBrand"`
	VehicleYear             string  `json:"vehicleYear"`
	VehiclePlateNo          string  `json:"vehiclePlateNo"`
	VehicleSTNKDate         Date    `json:"vehicleSTNKDate,omitzero"`
	VehicleKIRNo            string  `json:"vehicleKIRNo"`
	VehicleKIRDate          Date    `json:"vehicleKIRDate,omitzero"`
	VehicleCylinder         string  `json:"vehicleCylinder,omitempty"`
	VehicleChassisNo        string  `json:"vehicleChassisNo,omitempty"`
	VehicleEngineNo         string  `json:"vehicleEngineNo,omitempty"`
	VehicleBizLicenseNo     string  `json:"vehicleBizLicenseNo,omitempty"`
	VehicleBizLicenseDate   Date    `json:"vehicleBizLicenseDate,omitzero"`
	VehicleDispensationNo   string  `json:"vehicleDispensationNo,omitempty"`
	VehicleDispensationDate Date    `json:"vehicleDispensationDate,omitzero"`
	VehicleRemarks          string  `json:"vehicleRemarks,omitempty"`
	SiteID                  string  `json:"siteId,omitempty"`
	VehicleType             string  `json:"vehicleType,omitempty"`
	Division                string  `json:"division"`
	Dept                    string  `json:"dept"`
	RowStatus               string  `json:"rowStatus"`
	RecordStatus            string  `json:"recordStatus"`
	VehicleNumber           string  `json:"vehicleNumber,omitempty"`
	VehicleFuelConsumption  float64 `json:"vehicleFuelConsumption"`
	VehicleCommission       float64 `json:"vehicleCommission,omitempty"`
	InsertedBy              string  `json:"insertedBy,omitempty"`
	InsertedDate            Date    `json:"insertedDate,omitzero"`
	UpdatedBy               string  `json:"updatedBy,omitempty"`
	UpdatedDate             Date    `json:"updatedDate,omitzero"`
}

// Chassis sizes and types accepted by the backend.
const (
	ChassisSize20 = "20"
	ChassisSize40 = "40"

	ChassisTypeFlatbed = "F"
	ChassisTypeTrailer = "T"
)

type Chassis struct {
	ChassisID      string `json:"chassisId,omitempty"`
	ChassisSize    string `json:"chassisSize,omitempty"`
	ChassisYear    string `json:"chassisYear,omitempty"`
	ChassisNumber  string `json:"chassisNumber,omitempty"`
	ChassisAxle    string `json:"chassisAxle,omitempty"`
	ChassisKIRNo   string `json:"chassisKIRNo,omitempty"`
	ChassisKIRDate Date   `json:"chassisKIRDate,omitzero"`
	ChassisType    string `json:"chassisType,omitempty"`
	ChassisRemarks string `json:"chassisRemarks,omitempty"`
	InsertedBy     string `json:"insertedBy,omitempty"`
	InsertedDate   Date   `json:"insertedDate,omitzero"`
	UpdatedBy      string `json:"updatedBy,omitempty"`
	UpdatedDate    Date   `json:"updatedDate,omitzero"`
	Division       string `json:"division"`
	Dept           string `json:"dept"`
	RowStatus      string `json:"rowStatus"`
	SiteID         string `json:"siteId"`
}

// Driver is the "sopir" resource.
type Driver struct {
	DriverID        string `json:"driverId,omitempty"`
	DriverName      string `json:"driverName"`
	DriverKTPNo     string `json:"driver_KTP_No"`
	DriverKTPDate   Date   `json:"driver_KTP_Date,omitzero"`
	DriverSIMNo     string `json:"driver_SIM_No"`
	DriverSIMDate   Date   `json:"driver_SIM_Date,omitzero"`
	DriverCo        string `json:"driverCo"`
	DriverCoContact string `json:"driverCoContact"`
	SiteID          string `json:"siteId"`
	DriverContact   string `json:"driverContact"`
	DriverNumber    string `json:"driverNumber"`
	DriverRemarks   string `json:"driverRemarks"`
	RecordStatus    string `json:"recordStatus"`
	DriverType      string `json:"driverType"`
	DriverJoinDate  Date   `json:"driverJoinDate,omitzero"`
	RowStatus       string `json:"rowStatus"`
	CreatedBy       string `json:"createdBy,omitempty"`
	CreatedDate     Date   `json:"createdDate,omitzero"`
	UpdatedBy       string `json:"updatedBy,omitempty"`
	UpdatedDate     Date   `json:"updatedDate,omitzero"`
}

// ReportTruck is a workshop repair report for one vehicle.
type ReportTruck struct {
	ReportTruckID  string             `json:"reportTruckId,omitempty"`
	Date           Date               `json:"date,omitzero"`
	StartRepair    Date               `json:"startRepair,omitzero"`
	FinishRepair   Date               `json:"finishRepair,omitzero"`
	VehicleID      string             `json:"vehicleId"`
	VehiclePlateNo string             `json:"vehiclePlateNo,omitempty"`
	VehicleType    string             `json:"vehicleType,omitempty"`
	Description    string             `json:"description"`
	CreatedBy      string             `json:"createdBy,omitempty"`
	Assets         []ReportTruckAsset `json:"assets"`
}

type ReportTruckAsset struct {
	AssetID  string `json:"assetId"`
	Quantity int    `json:"quantity"`
}
