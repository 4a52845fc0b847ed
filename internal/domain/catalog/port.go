// Package catalog defines the narrow contracts the payment pipeline
// consumes from the course catalog and user directory. Both are owned by
// other parts of the platform; here they are read-only lookups.
package catalog

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockgen -source port.go -destination mock_port.go -package catalog

// Course is the subset of catalog data the pipeline needs: the current
// price for cart snapshots and the instructor to credit at settlement.
type Course struct {
	ID           uuid.UUID
	Title        string
	Price        float64
	InstructorID uuid.UUID
}

type CourseCatalog interface {
	GetCourse(ctx context.Context, courseID uuid.UUID) (Course, error)
}

type UserDirectory interface {
	UserExists(ctx context.Context, userID uuid.UUID) (bool, error)
}
