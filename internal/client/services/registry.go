package services

import (
	"github.com/dmitrijs2005/sitrack/internal/client/export"
	"github.com/dmitrijs2005/sitrack/internal/client/store"
)

// Registry holds one store per entity, all sharing the same transport,
// session and notifier.
type Registry struct {
	Trucks        *Trucks
	Chassis       *Chassis
	Drivers       *Drivers
	Customers     *Customers
	Assets        *Assets
	RequestAssets *RequestAssets
	Orders        *Orders
	Spjs          *Spjs
	Komisi        *Komisi
	ReportTrucks  *ReportTrucks
	Users         *Users
	Notifications *Notifications
	Reporting     *Reporting
}

func NewRegistry(deps store.Deps, sink export.Sink) *Registry {
	return &Registry{
		Trucks:        NewTrucks(deps),
		Chassis:       NewChassis(deps),
		Drivers:       NewDrivers(deps),
		Customers:     NewCustomers(deps),
		Assets:        NewAssets(deps),
		RequestAssets: NewRequestAssets(deps),
		Orders:        NewOrders(deps),
		Spjs:          NewSpjs(deps),
		Komisi:        NewKomisi(deps),
		ReportTrucks:  NewReportTrucks(deps),
		Users:         NewUsers(deps),
		Notifications: NewNotifications(deps),
		Reporting:     NewReporting(deps, sink),
	}
}
