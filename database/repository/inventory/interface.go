package inventoryRepo

import (
	"context"

	"github.com/liamintemann/sierra-backend/models"
)

// InventoryRepository exposes room availability. Nothing decrements it.
type InventoryRepository interface {
	Snapshot(ctx context.Context) (models.RoomAvailability, error)
}

// DefaultRooms is the inventory the process starts with.
func DefaultRooms() models.RoomAvailability {
	return models.RoomAvailability{
		"Deluxe King":         5,
		"Deluxe Double Queen": 3,
		"Junior Suite":        2,
		"Signature Suite":     1,
		"Penthouse Suite":     0,
	}
}

type memoryInventoryRepo struct {
	rooms models.RoomAvailability
}

// NewMemoryInventoryRepo seeds an inventory with the given rooms.
func NewMemoryInventoryRepo(rooms models.RoomAvailability) InventoryRepository {
	seeded := make(models.RoomAvailability, len(rooms))
	for name, count := range rooms {
		seeded[name] = count
	}
	return &memoryInventoryRepo{rooms: seeded}
}

// Snapshot returns a copy so callers cannot change the seeded counts.
func (r *memoryInventoryRepo) Snapshot(ctx context.Context) (models.RoomAvailability, error) {
	out := make(models.RoomAvailability, len(r.rooms))
	for name, count := range r.rooms {
		out[name] = count
	}
	return out, nil
}
