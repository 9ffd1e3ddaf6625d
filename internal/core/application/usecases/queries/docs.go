// Package queries contains the read side of the service. Query handlers read
// straight from the database with SQL and return flat read models; they never
// load aggregates and never write.
//
// Every handler follows the same shape:
//
//	query, err := NewGetManagerDashboardQuery(principal, time.Now())
//	if err != nil {
//	    return err
//	}
//	dashboard, err := NewGetManagerDashboardQueryHandler(db).Handle(ctx, query)
package queries

import (
	"github.com/google/uuid"

	"fueldelivery/internal/core/domain/model/kernel"
)

func toKernelUUID(id uuid.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(id[:])
}

func toKernelUUIDPtr(id uuid.NullUUID) (*kernel.UUID, error) {
	if !id.Valid {
		return nil, nil
	}
	converted, err := toKernelUUID(id.UUID)
	if err != nil {
		return nil, err
	}
	return &converted, nil
}
