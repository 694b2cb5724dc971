package domain

import "time"

// Role is the role returned on login.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleWaiter Role = "waiter"
)

// StaffStatus controls whether a staff member can log in.
type StaffStatus string

const (
	StaffActive   StaffStatus = "active"
	StaffInactive StaffStatus = "inactive"
)

// TableStatus represents the occupancy of a table.
type TableStatus string

const (
	TableAvailable TableStatus = "available"
	TableOccupied  TableStatus = "occupied"
	TableReserved  TableStatus = "reserved"
)

// OrderStatus represents lifecycle of an order.
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderPreparing OrderStatus = "preparing"
	OrderReady     OrderStatus = "ready"
	OrderServed    OrderStatus = "served"
	OrderCompleted OrderStatus = "completed"
	OrderCancelled OrderStatus = "cancelled"
)

// ReservationStatus represents lifecycle of a reservation.
type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "pending"
	ReservationConfirmed ReservationStatus = "confirmed"
	ReservationCancelled ReservationStatus = "cancelled"
	ReservationCompleted ReservationStatus = "completed"
)

// WaiterCallStatus represents lifecycle of a call for service.
type WaiterCallStatus string

const (
	WaiterCallPending      WaiterCallStatus = "pending"
	WaiterCallAcknowledged WaiterCallStatus = "acknowledged"
	WaiterCallCompleted    WaiterCallStatus = "completed"
)

// MenuItem is a dish on the menu.
type MenuItem struct {
	ID              int64    `json:"id" db:"id"`
	Name            string   `json:"name" db:"name"`
	Description     string   `json:"description" db:"description"`
	Price           float64  `json:"price" db:"price"`
	Currency        string   `json:"currency" db:"currency"`
	Category        string   `json:"category" db:"category"`
	MealType        string   `json:"meal_type" db:"meal_type"`
	Image           string   `json:"image" db:"image"`
	Ingredients     []string `json:"ingredients" db:"ingredients"`
	Allergens       []string `json:"allergens" db:"allergens"`
	Condiments      []string `json:"condiments" db:"condiments"`
	Available       bool     `json:"available" db:"available"`
	PreparationTime string   `json:"preparation_time" db:"preparation_time"`
	Calories        int      `json:"calories" db:"calories"`
	SpicyLevel      int      `json:"spicy_level" db:"spicy_level"`
	IsVegetarian    bool     `json:"is_vegetarian" db:"is_vegetarian"`
	IsVegan         bool     `json:"is_vegan" db:"is_vegan"`
	IsGlutenFree    bool     `json:"is_gluten_free" db:"is_gluten_free"`
}

// Shift is a staff member's working hours.
type Shift struct {
	Start string   `json:"start" db:"shift_start"`
	End   string   `json:"end" db:"shift_end"`
	Days  []string `json:"days" db:"shift_days"`
}

// Staff is a waiter account.
type Staff struct {
	ID        string      `json:"id" db:"id"`
	Name      string      `json:"name" db:"name"`
	Email     string      `json:"email" db:"email"`
	Phone     string      `json:"phone" db:"phone"`
	Shift     Shift       `json:"shift" db:",squash"`
	Username  string      `json:"username" db:"username"`
	Password  string      `json:"-" db:"password"`
	Status    StaffStatus `json:"status" db:"status"`
	CreatedAt time.Time   `json:"created_at" db:"created_at"`
}

// Table is a dining table.
type Table struct {
	ID        string      `json:"id" db:"id"`
	Number    string      `json:"number" db:"number"`
	Seats     int         `json:"seats" db:"seats"`
	Location  string      `json:"location" db:"location"`
	Status    TableStatus `json:"status" db:"status"`
	CreatedAt time.Time   `json:"created_at" db:"created_at"`
}

// OrderItem is one line of an order or pre-order. Stored as JSON, so the
// db tags match the JSON keys.
type OrderItem struct {
	MenuItemID int64   `json:"menuItemId" db:"menuItemId"`
	Name       string  `json:"name" db:"name"`
	Quantity   int     `json:"quantity" db:"quantity"`
	Price      float64 `json:"price" db:"price"`
	Notes      string  `json:"notes,omitempty" db:"notes"`
}

// Order is a set of items served to a table.
type Order struct {
	ID            string      `json:"id" db:"id"`
	TableID       string      `json:"table_id" db:"table_id"`
	TableNumber   string      `json:"table_number" db:"table_number"`
	Items         []OrderItem `json:"items" db:"items"`
	Status        OrderStatus `json:"status" db:"status"`
	Total         float64     `json:"total" db:"total"`
	Tax           float64     `json:"tax" db:"tax"`
	Subtotal      float64     `json:"subtotal" db:"subtotal"`
	WaiterID      string      `json:"waiter_id" db:"waiter_id"`
	WaiterName    string      `json:"waiter_name" db:"waiter_name"`
	EstimatedTime int         `json:"estimated_time" db:"estimated_time"`
	CreatedAt     time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at" db:"updated_at"`
}

// Reservation is a booking, optionally with items ordered ahead.
type Reservation struct {
	ID              string            `json:"id" db:"id"`
	CustomerName    string            `json:"customer_name" db:"customer_name"`
	Email           string            `json:"email" db:"email"`
	Phone           string            `json:"phone" db:"phone"`
	Date            string            `json:"date" db:"date"`
	Time            string            `json:"time" db:"time"`
	Guests          int               `json:"guests" db:"guests"`
	SpecialRequests string            `json:"special_requests" db:"special_requests"`
	Status          ReservationStatus `json:"status" db:"status"`
	PreOrderItems   []OrderItem       `json:"pre_order_items" db:"pre_order_items"`
	Total           float64           `json:"total" db:"total"`
	CreatedAt       time.Time         `json:"created_at" db:"created_at"`
}

// WaiterCall is a table asking for service.
type WaiterCall struct {
	ID               string           `json:"id" db:"id"`
	TableID          string           `json:"table_id" db:"table_id"`
	TableNumber      string           `json:"table_number" db:"table_number"`
	Status           WaiterCallStatus `json:"status" db:"status"`
	AssignedWaiterID string           `json:"assigned_waiter_id" db:"assigned_waiter_id"`
	CreatedAt        time.Time        `json:"created_at" db:"created_at"`
}

// Identity is the result of a successful login.
type Identity struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role Role   `json:"role"`
}
