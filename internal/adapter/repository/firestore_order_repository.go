package repository

import (
	"context"

	"cloud.google.com/go/firestore"

	"bazroba/internal/domain/entity"
	"bazroba/internal/domain/repository"
	"bazroba/internal/infrastructure/docstore"
	"bazroba/pkg/errors"
)

const ordersCollection = "orders"

type firestoreOrderRepository struct {
	store *docstore.Store
}

func NewFirestoreOrderRepository(store *docstore.Store) repository.OrderRepository {
	return &firestoreOrderRepository{store: store}
}

func (r *firestoreOrderRepository) Create(ctx context.Context, order *entity.Order) error {
	return r.store.Create(ctx, ordersCollection, order)
}

func (r *firestoreOrderRepository) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	var order entity.Order
	found, err := r.store.FindByID(ctx, ordersCollection, id, &order)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, errors.NotFound("Order", nil)
	}
	return &order, nil
}

func (r *firestoreOrderRepository) FindByOrderNumber(ctx context.Context, orderNumber string) (*entity.Order, error) {
	var order entity.Order
	found, err := r.store.FindOneBy(ctx, ordersCollection, "orderNumber", orderNumber, &order)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &order, nil
}

func (r *firestoreOrderRepository) ListByBuyer(ctx context.Context, buyerID string) ([]*entity.Order, error) {
	q := r.store.Query(ordersCollection).
		Where("buyerId", "==", buyerID).
		OrderBy("createdAt", firestore.Desc)
	return docstore.FindAll[entity.Order](ctx, q)
}

func (r *firestoreOrderRepository) ListAll(ctx context.Context) ([]*entity.Order, error) {
	q := r.store.Query(ordersCollection).OrderBy("createdAt", firestore.Desc)
	return docstore.FindAll[entity.Order](ctx, q)
}

func (r *firestoreOrderRepository) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	return r.store.Update(ctx, ordersCollection, id, fields)
}
