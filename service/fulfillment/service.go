package fulfillment

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/mohitahujaa/pizzeria-management/errs"
	"github.com/mohitahujaa/pizzeria-management/kafka"
	"github.com/mohitahujaa/pizzeria-management/model"
	"github.com/mohitahujaa/pizzeria-management/service/catalog"
	"github.com/mohitahujaa/pizzeria-management/service/stock"
	"go.uber.org/zap"
)

type LineRequest struct {
	MenuItemID int64 `json:"menu_item_id"`
	Quantity   int   `json:"quantity"`
}

type PlaceOrderInput struct {
	CustomerID int64         `json:"customer_id"`
	AddressID  int64         `json:"address_id"`
	Delivery   bool          `json:"delivery"`
	Items      []LineRequest `json:"items"`
}

type IService interface {
	PlaceOrder(ctx context.Context, input PlaceOrderInput) (string, error)
	RelayMessages(ctx context.Context, limit int) error
	ListRecentOrders(ctx context.Context, limit int) ([]model.OrderSummary, error)
}

func NewService(
	repo IRepo,
	resolver catalog.IService,
	ledger stock.IService,
	producer kafka.IProducer,
	logger *zap.Logger,
) IService {
	return &service{
		repo:     repo,
		resolver: resolver,
		ledger:   ledger,
		producer: producer,
		logger:   logger,
	}
}

type service struct {
	repo     IRepo
	resolver catalog.IService
	ledger   stock.IService
	producer kafka.IProducer
	logger   *zap.Logger
}

// PlaceOrder fulfills a proposed order in one transaction: every ingredient of
// every line is decremented before any order row is written, so a failure
// anywhere leaves stock and orders untouched. Returns the new order id only
// after commit.
func (s service) PlaceOrder(ctx context.Context, input PlaceOrderInput) (string, error) {
	if err := validateInput(input); err != nil {
		return "", err
	}

	ok, err := s.repo.CustomerExists(ctx, input.CustomerID)
	if err != nil {
		return "", errs.Transaction("check customer", err)
	}
	if !ok {
		return "", errs.NotFound("customer", input.CustomerID)
	}

	ok, err = s.repo.AddressExists(ctx, input.AddressID)
	if err != nil {
		return "", errs.Transaction("check address", err)
	}
	if !ok {
		return "", errs.NotFound("address", input.AddressID)
	}

	orderID := uuid.NewString()
	err = s.repo.Transact(ctx, func(ctx context.Context) error {
		for _, item := range input.Items {
			required, err := s.resolver.Resolve(ctx, item.MenuItemID, item.Quantity)
			if err != nil {
				return err
			}
			for _, req := range required {
				if _, err := s.ledger.Decrement(ctx, req.IngredientID, req.Quantity); err != nil {
					return err
				}
			}
		}

		err := s.repo.CreateOrder(ctx, model.Order{
			ID:         orderID,
			CustomerID: input.CustomerID,
			AddressID:  input.AddressID,
			Delivery:   input.Delivery,
		})
		if err != nil {
			return errs.Transaction("insert order", err)
		}

		lines := make([]model.OrderLine, 0, len(input.Items))
		for _, item := range input.Items {
			lines = append(lines, model.OrderLine{
				OrderID:    orderID,
				MenuItemID: item.MenuItemID,
				Quantity:   item.Quantity,
			})
		}
		if err := s.repo.CreateOrderLines(ctx, lines); err != nil {
			return errs.Transaction("insert order lines", err)
		}

		content, err := json.Marshal(newOrderPlacedEvent(orderID, input))
		if err != nil {
			return errs.Transaction("encode order event", err)
		}
		if err := s.repo.CreateOutbox(ctx, model.Outbox{Content: content}); err != nil {
			return errs.Transaction("insert outbox", err)
		}
		return nil
	})
	if err != nil {
		if errs.KindOf(err) == errs.KindUnknown {
			err = errs.Transaction("fulfillment transaction", err)
		}
		s.logger.Warn("place order failed",
			zap.Int64("customer_id", input.CustomerID),
			zap.Error(err),
		)
		return "", err
	}

	s.logger.Info("order placed",
		zap.String("order_id", orderID),
		zap.Int64("customer_id", input.CustomerID),
		zap.Int("items", len(input.Items)),
	)
	return orderID, nil
}

func validateInput(input PlaceOrderInput) error {
	if len(input.Items) == 0 {
		return errs.InvalidRequest("order has no items")
	}
	for i, item := range input.Items {
		if item.Quantity <= 0 {
			return errs.InvalidRequest("item %d: quantity must be positive", i+1)
		}
	}
	return nil
}

// RelayMessages pushes pending outbox events to Kafka and marks them done.
func (s service) RelayMessages(ctx context.Context, limit int) error {
	outboxes, err := s.repo.GetPendingOutbox(ctx, limit)
	if err != nil {
		return errs.Transaction("read pending outbox", err)
	}
	if len(outboxes) == 0 {
		return nil
	}

	if err := s.producer.Push(extractContents(outboxes)); err != nil {
		return err
	}

	if err := s.repo.MarkDoneOutboxes(ctx, extractIDs(outboxes)); err != nil {
		return errs.Transaction("mark outbox done", err)
	}
	s.logger.Info("relayed order events", zap.Int("count", len(outboxes)))
	return nil
}

func extractIDs(outboxes []model.Outbox) []int64 {
	var res []int64
	for _, outbox := range outboxes {
		res = append(res, outbox.ID)
	}
	return res
}

func extractContents(outboxes []model.Outbox) [][]byte {
	var res [][]byte
	for _, outbox := range outboxes {
		res = append(res, outbox.Content)
	}
	return res
}

func (s service) ListRecentOrders(ctx context.Context, limit int) ([]model.OrderSummary, error) {
	orders, err := s.repo.ListRecentOrders(ctx, limit)
	if err != nil {
		return nil, errs.Transaction("list recent orders", err)
	}
	return orders, nil
}
