package services

import (
	"github.com/dmitrijs2005/sitrack/internal/client/models"
	"github.com/dmitrijs2005/sitrack/internal/client/store"
)

type Trucks struct {
	*store.Collection[models.Truck]
}

func NewTrucks(deps store.Deps) *Trucks {
	return &Trucks{store.New(deps, store.Entity[models.Truck]{
		Name: "Truck",
		Endpoints: store.Endpoints{
			Base:   "/api/truck",
			Detail: store.QueryID("/detail"),
			Update: store.QueryID("/update"),
		},
		ID:             func(t models.Truck) string { return t.VehicleID },
		SetID:          func(t *models.Truck, id string) { t.VehicleID = id },
		CreatedIDField: "vehicleId",
	})}
}

type Chassis struct {
	*store.Collection[models.Chassis]
}

func NewChassis(deps store.Deps) *Chassis {
	return &Chassis{store.New(deps, store.Entity[models.Chassis]{
		Name: "Chassis",
		Endpoints: store.Endpoints{
			Base:   "/api/chassis",
			Detail: store.QueryID("/detail"),
			Update: store.QueryID("/update"),
		},
		ID:             func(c models.Chassis) string { return c.ChassisID },
		SetID:          func(c *models.Chassis, id string) { c.ChassisID = id },
		CreatedIDField: "chassisId",
	})}
}

// Drivers is the "sopir" resource.
type Drivers struct {
	*store.Collection[models.Driver]
}

func NewDrivers(deps store.Deps) *Drivers {
	return &Drivers{store.New(deps, store.Entity[models.Driver]{
		Name: "Sopir",
		Endpoints: store.Endpoints{
			Base:   "/api/sopir",
			Detail: store.PathID("/detail"),
			Update: store.PathID("/update"),
		},
		ID:                  func(d models.Driver) string { return d.DriverID },
		SetID:               func(d *models.Driver, id string) { d.DriverID = id },
		UpdateReturnsRecord: true,
	})}
}

// ReportTrucks holds workshop repair reports. The backend offers only list
// and add.
type ReportTrucks struct {
	*store.Collection[models.ReportTruck]
}

func NewReportTrucks(deps store.Deps) *ReportTrucks {
	return &ReportTrucks{store.New(deps, store.Entity[models.ReportTruck]{
		Name:           "Report Truck",
		Endpoints:      store.Endpoints{Base: "/api/report-truck"},
		ID:             func(r models.ReportTruck) string { return r.ReportTruckID },
		SetID:          func(r *models.ReportTruck, id string) { r.ReportTruckID = id },
		CreatedIDField: "reportTruckId",
	})}
}
