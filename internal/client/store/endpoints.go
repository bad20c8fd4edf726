package store

import "net/url"

// Locator builds the path and query addressing one record under base.
type Locator func(base, id string) (string, url.Values)

// PathID addresses a record as base+segment+"/"+id.
func PathID(segment string) Locator {
	return func(base, id string) (string, url.Values) {
		return base + segment + "/" + url.PathEscape(id), nil
	}
}

// QueryID addresses a record as base+segment?id=id.
func QueryID(segment string) Locator {
	return func(base, id string) (string, url.Values) {
		return base + segment, url.Values{"id": {id}}
	}
}

// Endpoints is the endpoint family of one entity. A nil Locator means the
// backend does not offer that operation.
type Endpoints struct {
	Base   string
	List   string
	Create string
	Detail Locator
	Update Locator
	Delete Locator
}

func (e Endpoints) withDefaults() Endpoints {
	if e.List == "" {
		e.List = "/all"
	}
	if e.Create == "" {
		e.Create = "/add"
	}
	return e
}
