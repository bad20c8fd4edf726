package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dmitrijs2005/sitrack/internal/client/models"
	"github.com/dmitrijs2005/sitrack/internal/client/services"
	"github.com/dmitrijs2005/sitrack/internal/client/store"
)

// entity is the type-erased command surface of one collection store.
// Methods return false when the store reported a failure; the failure was
// already shown by the notifier.
type entity interface {
	Name() string
	Route() string
	List(ctx context.Context, w io.Writer, args []string) bool
	Show(ctx context.Context, w io.Writer, id string) bool
	Add(ctx context.Context, w io.Writer, fields []models.Field) (bool, error)
	Update(ctx context.Context, w io.Writer, id string, fields []models.Field) (bool, error)
	Delete(ctx context.Context, w io.Writer, id string) bool
}

type resource[T any] struct {
	route   string
	coll    *store.Collection[T]
	id      func(T) string
	summary func(T) string
	// fetch overrides FetchAll, e.g. for the SPJ gate lists.
	fetch func(ctx context.Context, args []string) store.Result[[]T]
}

func (r *resource[T]) Name() string  { return r.coll.Name() }
func (r *resource[T]) Route() string { return r.route }

func (r *resource[T]) List(ctx context.Context, w io.Writer, args []string) bool {
	var res store.Result[[]T]
	if r.fetch != nil {
		res = r.fetch(ctx, args)
	} else {
		res = r.coll.FetchAll(ctx)
	}
	if !res.OK {
		return false
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, v := range r.coll.Items() {
		fmt.Fprintf(tw, "%s\t%s\n", r.id(v), r.summary(v))
	}
	_ = tw.Flush()
	return true
}

// Show prints the backend record. Entities without a detail endpoint fall
// back to the local list.
func (r *resource[T]) Show(ctx context.Context, w io.Writer, id string) bool {
	if !r.coll.HasDetail() {
		v, ok := r.coll.Find(id)
		if !ok {
			fmt.Fprintf(w, "%s %s not in the local list, run list first\n", r.Name(), id)
			return false
		}
		return printJSON(w, v) == nil
	}
	res := r.coll.FetchByID(ctx, id)
	if !res.OK {
		return false
	}
	return printJSON(w, res.Value) == nil
}

func (r *resource[T]) Add(ctx context.Context, w io.Writer, fields []models.Field) (bool, error) {
	var v T
	if err := models.ApplyFields(&v, fields); err != nil {
		return false, err
	}
	res := r.coll.Create(ctx, v)
	if !res.OK {
		return false, nil
	}
	fmt.Fprintf(w, "id: %s\n", r.id(res.Value))
	return true, nil
}

// Update applies fields on top of the current record: the local copy, or
// the backend's when the record has not been listed. The whole record is
// sent, so it never starts from an empty one.
func (r *resource[T]) Update(ctx context.Context, w io.Writer, id string, fields []models.Field) (bool, error) {
	v, found := r.coll.Find(id)
	if !found {
		if !r.coll.HasDetail() {
			fmt.Fprintf(w, "%s %s not in the local list, run list first\n", r.Name(), id)
			return false, nil
		}
		res := r.coll.FetchByID(ctx, id)
		if !res.OK {
			return false, nil
		}
		v = res.Value
	}
	if err := models.ApplyFields(&v, fields); err != nil {
		return false, err
	}
	res := r.coll.Update(ctx, id, v)
	if res.Stale {
		fmt.Fprintf(w, "%s %s is not in the local list, run list to refresh\n", r.Name(), id)
	}
	return res.OK, nil
}

func (r *resource[T]) Delete(ctx context.Context, _ io.Writer, id string) bool {
	return r.coll.Delete(ctx, id).OK
}

func printJSON(w io.Writer, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}

// catalog maps the command-line noun of every entity to its store.
func catalog(reg *services.Registry) map[string]entity {
	return map[string]entity{
		"trucks": &resource[models.Truck]{
			route: "/trucks", coll: reg.Trucks.Collection,
			id: func(t models.Truck) string { return t.VehicleID },
			summary: func(t models.Truck) string {
				return fmt.Sprintf("%s\t%s %s", t.VehiclePlateNo, t.VehicleBrand, t.VehicleYear)
			},
		},
		"chassis": &resource[models.Chassis]{
			route: "/chassis", coll: reg.Chassis.Collection,
			id: func(c models.Chassis) string { return c.ChassisID },
			summary: func(c models.Chassis) string {
				return fmt.Sprintf("%s\t%s %s", c.ChassisNumber, c.ChassisSize, c.ChassisType)
			},
		},
		"drivers": &resource[models.Driver]{
			route: "/drivers", coll: reg.Drivers.Collection,
			id: func(d models.Driver) string { return d.DriverID },
			summary: func(d models.Driver) string {
				return fmt.Sprintf("%s\tSIM %s", d.DriverName, d.DriverSIMNo)
			},
		},
		"customers": &resource[models.Customer]{
			route: "/customers", coll: reg.Customers.Collection,
			id: func(c models.Customer) string { return c.ID },
			summary: func(c models.Customer) string {
				return fmt.Sprintf("%s\t%d tariffs", c.Name, len(c.Tariffs))
			},
		},
		"assets": &resource[models.Asset]{
			route: "/assets", coll: reg.Assets.Collection,
			id: func(x models.Asset) string { return x.AssetID },
			summary: func(x models.Asset) string {
				return fmt.Sprintf("%s %s\tstok %d", x.JenisAsset, x.Brand, x.JumlahStok)
			},
		},
		"request-assets": &resource[models.RequestAsset]{
			route: "/request-assets", coll: reg.RequestAssets.Collection,
			id: func(x models.RequestAsset) string { return x.RequestAssetID },
			summary: func(x models.RequestAsset) string {
				return fmt.Sprintf("status %d\t%d items\t%s", x.Status, len(x.Assets), x.RequestRemark)
			},
		},
		"orders": &resource[models.Order]{
			route: "/orders", coll: reg.Orders.Collection,
			id: func(o models.Order) string { return o.OrderID },
			summary: func(o models.Order) string {
				return fmt.Sprintf("%s\t%s\tstatus %d", o.CustomerID, o.OrderDate, o.OrderStatus)
			},
		},
		"spj": &resource[models.Spj]{
			route: "/spj", coll: reg.Spjs.Collection,
			id: func(s models.Spj) string { return s.ID },
			summary: func(s models.Spj) string {
				return fmt.Sprintf("order %s\t%s\tstatus %d", s.OrderID, s.VehicleID, s.Status)
			},
			fetch: func(ctx context.Context, args []string) store.Result[[]models.Spj] {
				if len(args) > 0 && args[0] == "in" {
					return reg.Spjs.FetchVehicleIn(ctx)
				}
				return reg.Spjs.FetchVehicleOut(ctx)
			},
		},
		"komisi": &resource[models.Komisi]{
			route: "/komisi", coll: reg.Komisi.Collection,
			id: func(k models.Komisi) string { return k.KomisiID },
			summary: func(k models.Komisi) string {
				return fmt.Sprintf("%s\t%.0f", k.Location, k.CommissionFee)
			},
		},
		"report-truck": &resource[models.ReportTruck]{
			route: "/report-truck", coll: reg.ReportTrucks.Collection,
			id: func(r models.ReportTruck) string { return r.ReportTruckID },
			summary: func(r models.ReportTruck) string {
				return fmt.Sprintf("%s\t%s", r.VehicleID, r.Description)
			},
		},
		"users": &resource[models.User]{
			route: "/users", coll: reg.Users.Collection,
			id: models.User.Key,
			summary: func(u models.User) string {
				return fmt.Sprintf("%s\t%s", u.Username, u.Role)
			},
		},
	}
}
