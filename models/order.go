package models

type OrderStatus string

const (
	OrderStatusOpen      OrderStatus = "open"
	OrderStatusCompleted OrderStatus = "completed"
)

// OrderLine adalah satu baris order dengan harga saat order dibuat.
type OrderLine struct {
	ID       string  `json:"_id"`
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// Subtotal returns price x quantity for the line.
func (l OrderLine) Subtotal() float64 {
	return l.Price * float64(l.Quantity)
}

type Order struct {
	ID          string      `json:"_id"`
	TableNumber *int        `json:"tableNumber"`
	OrderItems  []OrderLine `json:"orderItems"`
	TotalAmount float64     `json:"totalAmount"`
	Status      OrderStatus `json:"status"`
}

// Completed reports whether the order already reached its final status.
func (o Order) Completed() bool {
	return o.Status == OrderStatusCompleted
}

// OrderRequest is the payload sent by the submission flow.
// A nil TableNumber is encoded as JSON null.
type OrderRequest struct {
	TableNumber *int        `json:"tableNumber"`
	OrderItems  []OrderLine `json:"orderItems"`
	TotalAmount float64     `json:"totalAmount"`
}

// OrderStatusUpdate is the body of PUT /api/orders/:id.
type OrderStatusUpdate struct {
	Status OrderStatus `json:"status"`
}
