package services

import (
	"strconv"

	"github.com/dmitrijs2005/sitrack/internal/client/models"
	"github.com/dmitrijs2005/sitrack/internal/client/store"
)

// Users lists backend accounts. Identifiers are numeric.
type Users struct {
	*store.Collection[models.User]
}

func NewUsers(deps store.Deps) *Users {
	return &Users{store.New(deps, store.Entity[models.User]{
		Name:      "User",
		Endpoints: store.Endpoints{Base: "/api/user"},
		ID:        models.User.Key,
		SetID: func(u *models.User, id string) {
			u.ID, _ = strconv.ParseInt(id, 10, 64)
		},
	})}
}
