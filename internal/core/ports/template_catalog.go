package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/checklist"
	"fulfillment/internal/core/domain/model/kernel"
)

// TemplateCatalog is the read-only view of the product catalog's checklist
// templates. Catalog maintenance happens elsewhere.
type TemplateCatalog interface {
	// ItemsFor returns the template items attached to product, in no
	// particular order. A product without templates yields an empty slice.
	ItemsFor(ctx context.Context, product kernel.ProductRef) ([]*checklist.TemplateItem, error)
}
