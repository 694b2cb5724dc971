// Package ports defines interfaces (ports) that connect core domain to infrastructure.
// These interfaces follow the ports and adapters (hexagonal) architecture pattern.
//
// Ports are defined here in the core layer, while implementations (adapters)
// live in src/infra/repo. This ensures the core has no dependency on infrastructure.
package ports

import (
	"context"

	"restaurant/src/core/domain"
)

// Repository is the base interface for all repositories.
// Concrete repositories should embed this and add entity-specific methods.
type Repository interface {
	// Health checks if the underlying storage is reachable.
	Health(ctx context.Context) error
}

// NewMenuItem is the input for creating a menu item.
type NewMenuItem struct {
	Name            string
	Description     string
	Price           float64
	Currency        string
	Category        string
	MealType        string
	Image           string
	Ingredients     []string
	Allergens       []string
	Condiments      []string
	Available       bool
	PreparationTime string
	Calories        int
	SpicyLevel      int
	IsVegetarian    bool
	IsVegan         bool
	IsGlutenFree    bool
}

// NewOrder is the input for creating an order.
type NewOrder struct {
	TableID       string
	Items         []domain.OrderItem
	Status        domain.OrderStatus
	Total         float64
	Tax           float64
	Subtotal      float64
	WaiterID      string
	WaiterName    string
	EstimatedTime int
}

// NewReservation is the input for creating a reservation.
type NewReservation struct {
	CustomerName    string
	Email           string
	Phone           string
	Date            string
	Time            string
	Guests          int
	SpecialRequests string
	PreOrderItems   []domain.OrderItem
	Total           float64
}

// StorageStats describes the state of the storage connection pool.
type StorageStats struct {
	TotalConns    int32 `json:"total_conns"`
	IdleConns     int32 `json:"idle_conns"`
	AcquiredConns int32 `json:"acquired_conns"`
	MaxConns      int32 `json:"max_conns"`
	LeaksDetected int64 `json:"leaks_detected"`
}

// RestaurantRepository persists the restaurant's operational data.
type RestaurantRepository interface {
	Repository

	// Stats reports connection pool usage.
	Stats() StorageStats

	// Menu
	ListAvailableMenuItems(ctx context.Context) ([]domain.MenuItem, error)
	CreateMenuItem(ctx context.Context, item NewMenuItem) (int64, error)

	// Staff
	ListStaff(ctx context.Context) ([]domain.Staff, error)
	CreateStaff(ctx context.Context, staff domain.Staff) (string, error)
	FindActiveStaffByCredentials(ctx context.Context, username, password string) (*domain.Staff, error)

	// Tables
	ListTables(ctx context.Context) ([]domain.Table, error)
	CreateTable(ctx context.Context, table domain.Table) (string, error)

	// Orders
	ListOrders(ctx context.Context) ([]domain.Order, error)
	CreateOrder(ctx context.Context, order NewOrder) (string, error)
	UpdateOrderStatus(ctx context.Context, id string, status domain.OrderStatus) error

	// Reservations
	ListReservations(ctx context.Context) ([]domain.Reservation, error)
	CreateReservation(ctx context.Context, r NewReservation) (string, error)
	UpdateReservationStatus(ctx context.Context, id string, status domain.ReservationStatus) error

	// Waiter calls
	ListWaiterCalls(ctx context.Context) ([]domain.WaiterCall, error)
	CreateWaiterCall(ctx context.Context, tableID string) (string, error)
	UpdateWaiterCallStatus(ctx context.Context, id string, status domain.WaiterCallStatus, waiterID string) error
}
