// Package services binds the generic remote collection to each SITRACK
// entity and adds the entity-specific calls: approvals, completion, the
// shipment-order gate lists, notifications and reporting.
package services
