package cli

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/sitrack/internal/client/models"
)

// lookup resolves the entity named by args[0] and checks the route guard.
func (a *App) lookup(args []string, usage string) (entity, bool, error) {
	if len(args) == 0 {
		return nil, false, fmt.Errorf("%w: %s (entities: %s)", errUsage, usage, strings.Join(a.entityNames(), ", "))
	}
	e, ok := a.entities[args[0]]
	if !ok {
		return nil, false, fmt.Errorf("unknown entity %q", args[0])
	}
	return e, a.guard(e.Route()), nil
}

func (a *App) entityNames() []string {
	names := make([]string, 0, len(a.entities))
	for n := range a.entities {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func (a *App) List(ctx context.Context, args []string) error {
	e, ok, err := a.lookup(args, "list <entity>")
	if err != nil || !ok {
		return err
	}
	e.List(ctx, a.out, args[1:])
	return nil
}

func (a *App) Show(ctx context.Context, args []string) error {
	e, ok, err := a.lookup(args, "show <entity> <id>")
	if err != nil || !ok {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: show %s <id>", errUsage, args[0])
	}
	e.Show(ctx, a.out, args[1])
	return nil
}

// Add creates a record from name=value pairs given inline or, when none
// are given, entered one per line.
func (a *App) Add(ctx context.Context, args []string) error {
	e, ok, err := a.lookup(args, "add <entity> [name=value ...]")
	if err != nil || !ok {
		return err
	}

	fields, err := a.fields(args[1:])
	if err != nil {
		return err
	}
	_, err = e.Add(ctx, a.out, fields)
	return err
}

func (a *App) Update(ctx context.Context, args []string) error {
	e, ok, err := a.lookup(args, "update <entity> <id> [name=value ...]")
	if err != nil || !ok {
		return err
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: update %s <id> [name=value ...]", errUsage, args[0])
	}

	fields, err := a.fields(args[2:])
	if err != nil {
		return err
	}
	_, err = e.Update(ctx, a.out, args[1], fields)
	return err
}

func (a *App) Delete(ctx context.Context, args []string) error {
	e, ok, err := a.lookup(args, "delete <entity> <id>")
	if err != nil || !ok {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: delete %s <id>", errUsage, args[0])
	}
	e.Delete(ctx, a.out, args[1])
	return nil
}

func (a *App) fields(args []string) ([]models.Field, error) {
	if len(args) == 0 {
		lines, err := GetFields(a.reader, a.out)
		if err != nil {
			return nil, err
		}
		args = lines
	}
	return models.FieldsFromArgs(args)
}

// Approve records a supervisor decision:
//
//	approve orders <id> <status> [remark...]
//	approve spj <id> <status> [remark...]
//	approve request-assets <id> <status> [remark...]
func (a *App) Approve(ctx context.Context, args []string) error {
	const usage = "approve <orders|spj|request-assets> <id> <status> [remark]"
	if len(args) < 3 {
		return fmt.Errorf("%w: %s", errUsage, usage)
	}
	status, err := strconv.Atoi(args[2])
	if err != nil {
		return fmt.Errorf("%w: status must be a number", errUsage)
	}
	id, remark := args[1], strings.Join(args[3:], " ")

	switch args[0] {
	case "orders":
		if a.guard("/orders") {
			a.registry.Orders.Approve(ctx, models.OrderApproval{OrderID: id, RemarksSupervisor: remark, OrderStatus: status})
		}
	case "spj":
		if a.guard("/spj") {
			a.registry.Spjs.Approve(ctx, models.SpjApproval{SpjID: id, Status: status, RemarksSupervisor: remark})
		}
	case "request-assets":
		if a.guard("/request-assets") {
			a.registry.RequestAssets.Approve(ctx, id, status, remark)
		}
	default:
		return fmt.Errorf("%w: %s", errUsage, usage)
	}
	return nil
}

func (a *App) Done(ctx context.Context, args []string) error {
	const usage = "done <orders|spj> <id>"
	if len(args) != 2 {
		return fmt.Errorf("%w: %s", errUsage, usage)
	}

	switch args[0] {
	case "orders":
		if a.guard("/orders") {
			a.registry.Orders.Done(ctx, args[1])
		}
	case "spj":
		if a.guard("/spj") {
			a.registry.Spjs.Done(ctx, args[1])
		}
	default:
		return fmt.Errorf("%w: %s", errUsage, usage)
	}
	return nil
}
