package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/dmitrijs2005/sitrack/internal/client/models"
)

const notificationsPath = "/notifications"

// Notif manages the notification inbox:
//
//	notif [list]            fetch and list
//	notif unread            number of unread notifications
//	notif refs              document-expiry notifications
//	notif read <id>         mark as read
//	notif delete <id...>    delete several
//	notif category <name>   list one category from the backend
//	notif check             run the document expiry check now
func (a *App) Notif(ctx context.Context, args []string) error {
	if !a.guard(notificationsPath) {
		return nil
	}
	n := a.registry.Notifications

	sub := "list"
	if len(args) > 0 {
		sub = args[0]
	}

	switch sub {
	case "list":
		if res := n.Fetch(ctx); res.OK {
			printNotifications(a.out, n.Items())
		}

	case "unread":
		fmt.Fprintf(a.out, "%d unread\n", n.UnreadCount())

	case "refs":
		printNotifications(a.out, n.References())

	case "read":
		if len(args) != 2 {
			return fmt.Errorf("%w: notif read <id>", errUsage)
		}
		n.MarkRead(ctx, args[1])

	case "delete":
		if len(args) < 2 {
			return fmt.Errorf("%w: notif delete <id...>", errUsage)
		}
		ids := make([]int64, 0, len(args)-1)
		for _, s := range args[1:] {
			id, err := strconv.ParseInt(s, 10, 64)
			if err != nil {
				return fmt.Errorf("%w: notification id %q is not a number", errUsage, s)
			}
			ids = append(ids, id)
		}
		if res := n.BulkDelete(ctx, ids); res.OK {
			fmt.Fprintf(a.out, "%d removed\n", res.Value)
		}

	case "category":
		if len(args) != 2 {
			return fmt.Errorf("%w: notif category <name>", errUsage)
		}
		if res := n.ByCategory(ctx, args[1]); res.OK {
			printNotifications(a.out, res.Value)
		}

	case "check":
		if res := n.TriggerCheck(ctx); res.OK {
			fmt.Fprintln(a.out, "Document check started")
		}

	default:
		return fmt.Errorf("%w: notif [list|unread|refs|read|delete|category|check]", errUsage)
	}
	return nil
}

func printNotifications(w io.Writer, list []models.Notification) {
	for _, x := range list {
		mark := " "
		if !x.IsRead {
			mark = "*"
		}
		fmt.Fprintf(w, "%s %d [%s] %s: %s\n", mark, x.ID, x.Category, x.Title, x.Message)
	}
}
