package dto

import (
	"restaurant/src/core/domain"
	"restaurant/src/core/ports"
)

// CreateMenuItemRequest is the payload for POST /api/menu.
type CreateMenuItemRequest struct {
	Name            string   `json:"name" binding:"required"`
	Description     string   `json:"description"`
	Price           float64  `json:"price" binding:"gte=0"`
	Currency        string   `json:"currency"`
	Category        string   `json:"category" binding:"required"`
	MealType        string   `json:"mealType" binding:"required"`
	Image           string   `json:"image"`
	Ingredients     []string `json:"ingredients"`
	Allergens       []string `json:"allergens"`
	Condiments      []string `json:"condiments"`
	Available       *bool    `json:"available"`
	PreparationTime string   `json:"preparationTime"`
	Calories        int      `json:"calories"`
	SpicyLevel      int      `json:"spicyLevel"`
	IsVegetarian    bool     `json:"isVegetarian"`
	IsVegan         bool     `json:"isVegan"`
	IsGlutenFree    bool     `json:"isGlutenFree"`
}

// ToInput converts the request; items are available unless stated otherwise.
func (r *CreateMenuItemRequest) ToInput() ports.NewMenuItem {
	available := true
	if r.Available != nil {
		available = *r.Available
	}
	return ports.NewMenuItem{
		Name:            r.Name,
		Description:     r.Description,
		Price:           r.Price,
		Currency:        r.Currency,
		Category:        r.Category,
		MealType:        r.MealType,
		Image:           r.Image,
		Ingredients:     r.Ingredients,
		Allergens:       r.Allergens,
		Condiments:      r.Condiments,
		Available:       available,
		PreparationTime: r.PreparationTime,
		Calories:        r.Calories,
		SpicyLevel:      r.SpicyLevel,
		IsVegetarian:    r.IsVegetarian,
		IsVegan:         r.IsVegan,
		IsGlutenFree:    r.IsGlutenFree,
	}
}

// ShiftRequest is a staff member's working hours.
type ShiftRequest struct {
	Start string   `json:"start" binding:"required"`
	End   string   `json:"end" binding:"required"`
	Days  []string `json:"days"`
}

// CreateStaffRequest is the payload for POST /api/staff.
type CreateStaffRequest struct {
	Name     string       `json:"name" binding:"required"`
	Email    string       `json:"email" binding:"required,email"`
	Phone    string       `json:"phone" binding:"required"`
	Shift    ShiftRequest `json:"shift" binding:"required"`
	Username string       `json:"username" binding:"required"`
	Password string       `json:"password" binding:"required"`
	Status   string       `json:"status"`
}

func (r *CreateStaffRequest) ToDomain() domain.Staff {
	return domain.Staff{
		Name:     r.Name,
		Email:    r.Email,
		Phone:    r.Phone,
		Shift:    domain.Shift{Start: r.Shift.Start, End: r.Shift.End, Days: r.Shift.Days},
		Username: r.Username,
		Password: r.Password,
		Status:   domain.StaffStatus(r.Status),
	}
}

// CreateTableRequest is the payload for POST /api/tables.
type CreateTableRequest struct {
	Number   string `json:"number" binding:"required"`
	Seats    int    `json:"seats" binding:"required,gt=0"`
	Location string `json:"location" binding:"required"`
	Status   string `json:"status"`
}

func (r *CreateTableRequest) ToDomain() domain.Table {
	return domain.Table{
		Number:   r.Number,
		Seats:    r.Seats,
		Location: r.Location,
		Status:   domain.TableStatus(r.Status),
	}
}

// OrderItemRequest is one line of an order.
type OrderItemRequest struct {
	MenuItemID int64   `json:"menuItemId" binding:"required"`
	Name       string  `json:"name" binding:"required"`
	Quantity   int     `json:"quantity" binding:"required,gt=0"`
	Price      float64 `json:"price" binding:"gte=0"`
	Notes      string  `json:"notes"`
}

func toOrderItems(in []OrderItemRequest) []domain.OrderItem {
	out := make([]domain.OrderItem, len(in))
	for i, it := range in {
		out[i] = domain.OrderItem{
			MenuItemID: it.MenuItemID,
			Name:       it.Name,
			Quantity:   it.Quantity,
			Price:      it.Price,
			Notes:      it.Notes,
		}
	}
	return out
}

// CreateOrderRequest is the payload for POST /api/orders.
type CreateOrderRequest struct {
	TableID       string             `json:"tableId" binding:"required"`
	Items         []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
	Status        string             `json:"status"`
	Total         float64            `json:"total" binding:"gte=0"`
	Tax           float64            `json:"tax" binding:"gte=0"`
	Subtotal      float64            `json:"subtotal" binding:"gte=0"`
	WaiterID      string             `json:"waiterId"`
	WaiterName    string             `json:"waiterName"`
	EstimatedTime int                `json:"estimatedTime"`
}

func (r *CreateOrderRequest) ToInput() ports.NewOrder {
	return ports.NewOrder{
		TableID:       r.TableID,
		Items:         toOrderItems(r.Items),
		Status:        domain.OrderStatus(r.Status),
		Total:         r.Total,
		Tax:           r.Tax,
		Subtotal:      r.Subtotal,
		WaiterID:      r.WaiterID,
		WaiterName:    r.WaiterName,
		EstimatedTime: r.EstimatedTime,
	}
}

// CreateReservationRequest is the payload for POST /api/reservations.
type CreateReservationRequest struct {
	CustomerName    string             `json:"customerName" binding:"required"`
	Email           string             `json:"email" binding:"required,email"`
	Phone           string             `json:"phone" binding:"required"`
	Date            string             `json:"date" binding:"required"`
	Time            string             `json:"time" binding:"required"`
	Guests          int                `json:"guests" binding:"required,gt=0"`
	SpecialRequests string             `json:"specialRequests"`
	PreOrderItems   []OrderItemRequest `json:"preOrderItems" binding:"dive"`
	Total           float64            `json:"total" binding:"gte=0"`
}

func (r *CreateReservationRequest) ToInput() ports.NewReservation {
	return ports.NewReservation{
		CustomerName:    r.CustomerName,
		Email:           r.Email,
		Phone:           r.Phone,
		Date:            r.Date,
		Time:            r.Time,
		Guests:          r.Guests,
		SpecialRequests: r.SpecialRequests,
		PreOrderItems:   toOrderItems(r.PreOrderItems),
		Total:           r.Total,
	}
}

// CreateWaiterCallRequest is the payload for POST /api/waiter-calls.
type CreateWaiterCallRequest struct {
	TableID string `json:"tableId" binding:"required"`
}

// UpdateStatusRequest is the payload for the PATCH .../status endpoints.
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`

	// WaiterID assigns a waiter call; ignored elsewhere.
	WaiterID string `json:"waiterId"`
}

// LoginRequest is the payload for POST /api/auth/login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}
