package checklist

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// ErrTemplateItemIsNotConstructed is returned for TemplateItem literals.
var ErrTemplateItemIsNotConstructed = errors.New("TemplateItem must be created via NewTemplateItem constructor")

// TemplateItem is a reusable task definition attached to a catalog product.
type TemplateItem struct {
	id                kernel.UUID
	product           kernel.ProductRef
	name              string
	description       string
	orderIndex        int
	isOptional        bool
	estimatedDuration time.Duration

	isConstructed bool
}

// NewTemplateItem validates a template row read from the catalog.
func NewTemplateItem(
	id kernel.UUID,
	product kernel.ProductRef,
	name string,
	description string,
	orderIndex int,
	isOptional bool,
	estimatedDuration time.Duration,
) (*TemplateItem, error) {
	var nameErr, indexErr, durationErr error
	if strings.TrimSpace(name) == "" {
		nameErr = errs.NewValueIsRequiredError("template item name")
	}
	if orderIndex < 0 {
		indexErr = errs.NewValueIsInvalidErrorWithCause("order index", fmt.Errorf("%d is negative", orderIndex))
	}
	if estimatedDuration < 0 {
		durationErr = errs.NewValueIsInvalidErrorWithCause("estimated duration", fmt.Errorf("%s is negative", estimatedDuration))
	}

	if err := errors.Join(id.Validate(), product.Validate(), nameErr, indexErr, durationErr); err != nil {
		return nil, err
	}

	return &TemplateItem{
		id:                id,
		product:           product,
		name:              strings.TrimSpace(name),
		description:       description,
		orderIndex:        orderIndex,
		isOptional:        isOptional,
		estimatedDuration: estimatedDuration,
		isConstructed:     true,
	}, nil
}

func (t *TemplateItem) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTemplateItemIsNotConstructed
	}
	return nil
}

func (t *TemplateItem) ID() kernel.UUID                  { return t.id }
func (t *TemplateItem) Product() kernel.ProductRef       { return t.product }
func (t *TemplateItem) Name() string                     { return t.name }
func (t *TemplateItem) Description() string              { return t.description }
func (t *TemplateItem) OrderIndex() int                  { return t.orderIndex }
func (t *TemplateItem) IsOptional() bool                 { return t.isOptional }
func (t *TemplateItem) EstimatedDuration() time.Duration { return t.estimatedDuration }
