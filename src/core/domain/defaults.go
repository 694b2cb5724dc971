package domain

// AdminIdentity is returned when the configured admin credentials match.
var AdminIdentity = Identity{ID: "admin", Name: "Admin", Role: RoleAdmin}

// DefaultCurrency is used for menu items created without one.
const DefaultCurrency = "USD"

// Valid reports whether s is a known order status.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderPreparing, OrderReady, OrderServed, OrderCompleted, OrderCancelled:
		return true
	}
	return false
}

// Valid reports whether s is a known reservation status.
func (s ReservationStatus) Valid() bool {
	switch s {
	case ReservationPending, ReservationConfirmed, ReservationCancelled, ReservationCompleted:
		return true
	}
	return false
}

// Valid reports whether s is a known waiter call status.
func (s WaiterCallStatus) Valid() bool {
	switch s {
	case WaiterCallPending, WaiterCallAcknowledged, WaiterCallCompleted:
		return true
	}
	return false
}

// Valid reports whether s is a known table status.
func (s TableStatus) Valid() bool {
	switch s {
	case TableAvailable, TableOccupied, TableReserved:
		return true
	}
	return false
}

// Valid reports whether s is a known staff status.
func (s StaffStatus) Valid() bool {
	return s == StaffActive || s == StaffInactive
}
