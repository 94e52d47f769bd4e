package order

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// ErrItemIsNotConstructed is returned for Item values not built by NewItem or RestoreItem.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is one purchased product line. It belongs to exactly one Order and is
// only reachable through it.
type Item struct {
	id                kernel.UUID
	product           kernel.ProductRef
	quantity          int
	price             kernel.Money
	resourcesUploaded bool

	isConstructed bool
}

// NewItem creates an order line with resources not yet uploaded.
func NewItem(id kernel.UUID, product kernel.ProductRef, quantity int, price kernel.Money) (*Item, error) {
	item := &Item{isConstructed: true}

	if err := errors.Join(
		item.setID(id),
		item.setProduct(product),
		item.setQuantity(quantity),
	); err != nil {
		return nil, err
	}
	item.price = price

	return item, nil
}

// RestoreItem rebuilds an item from persistence.
func RestoreItem(
	id kernel.UUID,
	product kernel.ProductRef,
	quantity int,
	price kernel.Money,
	resourcesUploaded bool,
) (*Item, error) {
	item, err := NewItem(id, product, quantity, price)
	if err != nil {
		return nil, err
	}
	item.resourcesUploaded = resourcesUploaded
	return item, nil
}

func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

func (i *Item) ID() kernel.UUID {
	return i.id
}

func (i *Item) Product() kernel.ProductRef {
	return i.product
}

func (i *Item) Quantity() int {
	return i.quantity
}

func (i *Item) Price() kernel.Money {
	return i.price
}

// Subtotal is price times quantity.
func (i *Item) Subtotal() kernel.Money {
	return i.price.Multiply(i.quantity)
}

func (i *Item) ResourcesUploaded() bool {
	return i.resourcesUploaded
}

func (i *Item) markResourcesUploaded() {
	i.resourcesUploaded = true
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setProduct(product kernel.ProductRef) error {
	if err := product.Validate(); err != nil {
		return err
	}
	i.product = product
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid", fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}
