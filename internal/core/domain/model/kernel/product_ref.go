package kernel

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// ProductKind tags which catalog table a ProductRef points to.
type ProductKind string

const (
	ProductKindPackage  ProductKind = "package"
	ProductKindCampaign ProductKind = "campaign"
)

// Validate accepts only the known product kinds.
func (k ProductKind) Validate() error {
	switch k {
	case ProductKindPackage, ProductKindCampaign:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("product kind", fmt.Errorf("%q is not a product kind", string(k)))
	}
}

// ProductRef is a {kind, id} pair resolving an order item to a catalog product.
// Packages and campaigns are told apart only by Kind; every lookup goes through
// the same catalog port.
type ProductRef struct {
	kind ProductKind
	id   int64
}

// NewProductRef validates the kind and requires a positive catalog id.
func NewProductRef(kind ProductKind, id int64) (ProductRef, error) {
	if err := kind.Validate(); err != nil {
		return ProductRef{}, err
	}
	if id <= 0 {
		return ProductRef{}, errs.NewValueIsInvalidErrorWithCause("product id", fmt.Errorf("%d is not greater than 0", id))
	}
	return ProductRef{kind: kind, id: id}, nil
}

func (r ProductRef) Kind() ProductKind {
	return r.kind
}

func (r ProductRef) ID() int64 {
	return r.id
}

func (r ProductRef) IsEqual(other ProductRef) bool {
	return r.kind == other.kind && r.id == other.id
}

// Key is a stable map key, e.g. "package:12".
func (r ProductRef) Key() string {
	return fmt.Sprintf("%s:%d", r.kind, r.id)
}

func (r ProductRef) String() string {
	return r.Key()
}

// Validate rejects the zero value.
func (r ProductRef) Validate() error {
	if r.id <= 0 {
		return errs.NewValueIsRequiredError("product reference")
	}
	return r.kind.Validate()
}
