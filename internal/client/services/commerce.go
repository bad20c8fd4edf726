package services

import (
	"context"
	"net/url"

	"github.com/dmitrijs2005/sitrack/internal/client/models"
	"github.com/dmitrijs2005/sitrack/internal/client/store"
)

type Customers struct {
	*store.Collection[models.Customer]
}

func NewCustomers(deps store.Deps) *Customers {
	return &Customers{store.New(deps, store.Entity[models.Customer]{
		Name: "Customer",
		Endpoints: store.Endpoints{
			Base:   "/api/customer",
			Detail: store.PathID("/detail"),
			Update: store.PathID("/update"),
			Delete: store.PathID("/delete"),
		},
		ID:                  func(c models.Customer) string { return c.ID },
		SetID:               func(c *models.Customer, id string) { c.ID = id },
		UpdateReturnsRecord: true,
	})}
}

type Orders struct {
	*store.Collection[models.Order]
}

func NewOrders(deps store.Deps) *Orders {
	return &Orders{store.New(deps, store.Entity[models.Order]{
		Name: "Order",
		Endpoints: store.Endpoints{
			Base:   "/api/order",
			Detail: store.QueryID("/detail"),
			Update: store.PathID("/update"),
		},
		ID:             func(o models.Order) string { return o.OrderID },
		SetID:          func(o *models.Order, id string) { o.OrderID = id },
		CreatedIDField: "orderId",
	})}
}

// Approve records the supervisor decision on an order.
func (o *Orders) Approve(ctx context.Context, a models.OrderApproval) store.Result[models.Order] {
	return o.Transition(ctx, store.Transition[models.Order]{
		Action:  "meng-approve",
		Success: "Order berhasil di-approve!",
		Path:    "/approve",
		Body:    a,
		ID:      a.OrderID,
		Apply: func(ord *models.Order) {
			ord.OrderStatus = a.OrderStatus
			ord.RemarksSupervisor = a.RemarksSupervisor
		},
	})
}

// Done marks an order as completed.
func (o *Orders) Done(ctx context.Context, id string) store.Result[models.Order] {
	return o.Transition(ctx, store.Transition[models.Order]{
		Action:  "menandai selesai",
		Success: "Order berhasil ditandai sebagai selesai",
		Path:    "/done/" + url.PathEscape(id),
		ID:      id,
		Apply:   func(ord *models.Order) { ord.OrderStatus = models.OrderStatusDone },
	})
}

// Spjs holds shipment orders. The list endpoints are the gate views:
// vehicles going out and vehicles coming back.
type Spjs struct {
	*store.Collection[models.Spj]
}

func NewSpjs(deps store.Deps) *Spjs {
	return &Spjs{store.New(deps, store.Entity[models.Spj]{
		Name: "SPJ",
		Endpoints: store.Endpoints{
			Base:   "/api/spj",
			List:   "/vehicle-out",
			Detail: store.PathID("/detail"),
		},
		ID:    func(s models.Spj) string { return s.ID },
		SetID: func(s *models.Spj, id string) { s.ID = id },
	})}
}

func (s *Spjs) FetchVehicleOut(ctx context.Context) store.Result[[]models.Spj] {
	return s.FetchFrom(ctx, "/vehicle-out", nil)
}

func (s *Spjs) FetchVehicleIn(ctx context.Context) store.Result[[]models.Spj] {
	return s.FetchFrom(ctx, "/vehicle-in", nil)
}

// Approve records the supervisor decision. The backend returns the updated
// shipment order.
func (s *Spjs) Approve(ctx context.Context, a models.SpjApproval) store.Result[models.Spj] {
	return s.Transition(ctx, store.Transition[models.Spj]{
		Action:       "approval",
		Success:      "Approval SPJ berhasil!",
		Path:         "/approve",
		Body:         a,
		ID:           a.SpjID,
		FromResponse: true,
		Apply: func(sp *models.Spj) {
			sp.Status = a.Status
			sp.RemarksSupervisor = a.RemarksSupervisor
		},
	})
}

// Done closes a shipment order when the vehicle is back.
func (s *Spjs) Done(ctx context.Context, id string) store.Result[models.Spj] {
	return s.Transition(ctx, store.Transition[models.Spj]{
		Action:       "menyelesaikan",
		Success:      "SPJ berhasil diselesaikan!",
		Path:         "/done/" + url.PathEscape(id),
		ID:           id,
		FromResponse: true,
	})
}

type Komisi struct {
	*store.Collection[models.Komisi]
}

func NewKomisi(deps store.Deps) *Komisi {
	return &Komisi{store.New(deps, store.Entity[models.Komisi]{
		Name: "Komisi",
		Endpoints: store.Endpoints{
			Base:   "/api/komisi",
			Detail: store.PathID("/detail"),
			Update: store.PathID("/update"),
		},
		ID:                  func(k models.Komisi) string { return k.KomisiID },
		SetID:               func(k *models.Komisi, id string) { k.KomisiID = id },
		UpdateReturnsRecord: true,
	})}
}
