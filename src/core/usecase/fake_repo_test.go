package usecase_test

import (
	"context"
	"fmt"
	"sync"

	"restaurant/src/core/domain"
	"restaurant/src/core/ports"
)

// fakeRepo is an in-memory ports.RestaurantRepository.
type fakeRepo struct {
	mu sync.Mutex

	healthErr error
	stats     ports.StorageStats
	err       error // returned by every data method when set

	menu         []domain.MenuItem
	staff        []domain.Staff
	tables       []domain.Table
	orders       []domain.Order
	reservations []domain.Reservation
	calls        []domain.WaiterCall
	nextID       int
}

var _ ports.RestaurantRepository = (*fakeRepo)(nil)

func (f *fakeRepo) id(prefix string) string {
	f.nextID++
	return fmt.Sprintf("%s-%d", prefix, f.nextID)
}

func (f *fakeRepo) Health(context.Context) error { return f.healthErr }
func (f *fakeRepo) Stats() ports.StorageStats    { return f.stats }

func (f *fakeRepo) ListAvailableMenuItems(context.Context) ([]domain.MenuItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	var out []domain.MenuItem
	for _, m := range f.menu {
		if m.Available {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeRepo) CreateMenuItem(_ context.Context, item ports.NewMenuItem) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return 0, f.err
	}
	id := int64(len(f.menu) + 1)
	f.menu = append(f.menu, domain.MenuItem{
		ID: id, Name: item.Name, Price: item.Price, Currency: item.Currency,
		Category: item.Category, MealType: item.MealType, Available: item.Available,
		Ingredients: item.Ingredients, Allergens: item.Allergens, Condiments: item.Condiments,
	})
	return id, nil
}

func (f *fakeRepo) ListStaff(context.Context) ([]domain.Staff, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]domain.Staff(nil), f.staff...), f.err
}

func (f *fakeRepo) CreateStaff(_ context.Context, s domain.Staff) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return "", f.err
	}
	for _, existing := range f.staff {
		if existing.Username == s.Username {
			return "", domain.NewConflictError("username already taken")
		}
	}
	s.ID = f.id("staff")
	f.staff = append(f.staff, s)
	return s.ID, nil
}

func (f *fakeRepo) FindActiveStaffByCredentials(_ context.Context, username, password string) (*domain.Staff, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	for _, s := range f.staff {
		if s.Username == username && s.Password == password && s.Status == domain.StaffActive {
			return &s, nil
		}
	}
	return nil, domain.NewNotFoundError("staff")
}

func (f *fakeRepo) ListTables(context.Context) ([]domain.Table, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]domain.Table(nil), f.tables...), f.err
}

func (f *fakeRepo) CreateTable(_ context.Context, t domain.Table) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return "", f.err
	}
	t.ID = f.id("table")
	f.tables = append(f.tables, t)
	return t.ID, nil
}

func (f *fakeRepo) ListOrders(context.Context) ([]domain.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]domain.Order(nil), f.orders...), f.err
}

func (f *fakeRepo) CreateOrder(_ context.Context, o ports.NewOrder) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return "", f.err
	}
	id := f.id("order")
	f.orders = append(f.orders, domain.Order{
		ID: id, TableID: o.TableID, Items: o.Items, Status: o.Status,
		Total: o.Total, Tax: o.Tax, Subtotal: o.Subtotal,
	})
	for i := range f.tables {
		if f.tables[i].ID == o.TableID {
			f.tables[i].Status = domain.TableOccupied
		}
	}
	return id, nil
}

func (f *fakeRepo) UpdateOrderStatus(_ context.Context, id string, status domain.OrderStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	for i := range f.orders {
		if f.orders[i].ID == id {
			f.orders[i].Status = status
			return nil
		}
	}
	return domain.NewNotFoundError("order")
}

func (f *fakeRepo) ListReservations(context.Context) ([]domain.Reservation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]domain.Reservation(nil), f.reservations...), f.err
}

func (f *fakeRepo) CreateReservation(_ context.Context, r ports.NewReservation) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return "", f.err
	}
	id := f.id("res")
	f.reservations = append(f.reservations, domain.Reservation{
		ID: id, CustomerName: r.CustomerName, Date: r.Date, Time: r.Time,
		Guests: r.Guests, Status: domain.ReservationPending, PreOrderItems: r.PreOrderItems,
	})
	return id, nil
}

func (f *fakeRepo) UpdateReservationStatus(_ context.Context, id string, status domain.ReservationStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.reservations {
		if f.reservations[i].ID == id {
			f.reservations[i].Status = status
			return nil
		}
	}
	return domain.NewNotFoundError("reservation")
}

func (f *fakeRepo) ListWaiterCalls(context.Context) ([]domain.WaiterCall, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]domain.WaiterCall(nil), f.calls...), f.err
}

func (f *fakeRepo) CreateWaiterCall(_ context.Context, tableID string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return "", f.err
	}
	id := f.id("call")
	f.calls = append(f.calls, domain.WaiterCall{ID: id, TableID: tableID, Status: domain.WaiterCallPending})
	return id, nil
}

func (f *fakeRepo) UpdateWaiterCallStatus(_ context.Context, id string, status domain.WaiterCallStatus, waiterID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.calls {
		if f.calls[i].ID == id {
			f.calls[i].Status = status
			if waiterID != "" {
				f.calls[i].AssignedWaiterID = waiterID
			}
			return nil
		}
	}
	return domain.NewNotFoundError("waiter call")
}
