// Package checklist models the per-order checklist and the catalog templates
// it is materialized from.
//
// TemplateItem belongs to the catalog and is read-only here. Item is the
// order-owned copy: later template edits never reach an existing Item.
// ComputeProgress counts required items only; optional items never move the
// percentage.
package checklist
