package kernel

import (
	"fmt"

	"routeplan/internal/pkg/errs"
)

// EntityStatus is the lifecycle flag shared by locations, vehicles, and
// orders. Entities are never physically removed while referenced; deletion
// flips the status to Deleted.
type EntityStatus int

const (
	// EntityStatusUnknown is an invalid zero value.
	EntityStatusUnknown EntityStatus = iota

	// EntityActive is the normal state of a usable entity.
	EntityActive

	// EntityDeleted marks a logically removed entity. Deleted entities stay
	// queryable by id so snapshots and routes referencing them keep resolving.
	EntityDeleted
)

// EntityStatusFromString parses a persisted status name.
func EntityStatusFromString(s string) (EntityStatus, error) {
	switch s {
	case "active":
		return EntityActive, nil
	case "deleted":
		return EntityDeleted, nil
	default:
		return 0, errs.NewValueIsInvalidErrorWithCause("entity status",
			fmt.Errorf("%q is not a valid entity status", s))
	}
}

// String implements fmt.Stringer.
func (s EntityStatus) String() string {
	switch s {
	case EntityActive:
		return "active"
	case EntityDeleted:
		return "deleted"
	default:
		return "unknown"
	}
}

// Validate rejects values outside the known set.
func (s EntityStatus) Validate() error {
	if s != EntityActive && s != EntityDeleted {
		return errs.NewValueIsInvalidErrorWithCause("entity status",
			fmt.Errorf("%d is not a valid entity status", s))
	}
	return nil
}

// Delete transitions the status to EntityDeleted. Deleting an already deleted
// entity is rejected.
func (s EntityStatus) Delete() (EntityStatus, error) {
	if s != EntityActive {
		return 0, errs.NewValueIsInvalidErrorWithCause("entity status",
			fmt.Errorf("%s is not a valid status to delete", s))
	}
	return EntityDeleted, nil
}
