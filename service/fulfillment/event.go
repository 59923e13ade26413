package fulfillment

// OrderPlacedEvent is written to the outbox inside the fulfillment transaction
// and relayed to Kafka for the staff dashboard.
type OrderPlacedEvent struct {
	OrderID    string           `json:"order_id"`
	CustomerID int64            `json:"customer_id"`
	AddressID  int64            `json:"address_id"`
	Delivery   bool             `json:"delivery"`
	Lines      []OrderLineEvent `json:"lines"`
}

type OrderLineEvent struct {
	MenuItemID int64 `json:"menu_item_id"`
	Quantity   int   `json:"quantity"`
}

func newOrderPlacedEvent(orderID string, input PlaceOrderInput) OrderPlacedEvent {
	event := OrderPlacedEvent{
		OrderID:    orderID,
		CustomerID: input.CustomerID,
		AddressID:  input.AddressID,
		Delivery:   input.Delivery,
	}
	for _, item := range input.Items {
		event.Lines = append(event.Lines, OrderLineEvent{
			MenuItemID: item.MenuItemID,
			Quantity:   item.Quantity,
		})
	}
	return event
}
