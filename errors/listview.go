package errors

const (
	FetchFailedErrorCode        = 300_001
	DeleteFailedErrorCode       = 300_002
	DeleteInProgressErrorCode   = 300_003
	SortFieldInvalidErrorCode   = 300_004
	ExportFieldInvalidErrorCode = 300_005
	EntityNotFoundErrorCode     = 300_006
	DraftKeyInvalidErrorCode    = 300_007
	PageSizeInvalidErrorCode    = 300_008
	SortOrderInvalidErrorCode   = 300_009
)

// FetchFailedError indicates loading the collection from its source failed
var FetchFailedError = new(FetchFailedErrorCode, "FetchFailed", "Loading %s failed: %v")

// DeleteFailedError indicates the source refused or failed to delete an item
var DeleteFailedError = new(DeleteFailedErrorCode, "DeleteFailed", "Deleting %s failed: %v")

// DeleteInProgressError indicates a delete for the same item is still running
var DeleteInProgressError = new(DeleteInProgressErrorCode, "DeleteInProgress", "Item with ID %s is already being deleted")

// SortFieldInvalidError indicates user sorts by a field which is unknown or not sortable
var SortFieldInvalidError = new(SortFieldInvalidErrorCode, "SortFieldInvalid", "Field %s can not be used for sorting")

// ExportFieldInvalidError indicates user exports a field which is unknown
var ExportFieldInvalidError = new(ExportFieldInvalidErrorCode, "ExportFieldInvalid", "Field %s can not be exported")

// EntityNotFoundError indicates user asks for a list which is not registered
var EntityNotFoundError = new(EntityNotFoundErrorCode, "EntityNotFound", "List %s is not exist")

// DraftKeyInvalidError indicates user reads or writes a draft under an unsupported key
var DraftKeyInvalidError = new(DraftKeyInvalidErrorCode, "DraftKeyInvalid", "Draft key %s is invalid or unsupported")

// PageSizeInvalidError indicates a list is configured with non-positive page size
var PageSizeInvalidError = new(PageSizeInvalidErrorCode, "PageSizeInvalid", "Page size can be only positive integer, got %d")

// SortOrderInvalidError indicates user sorts with an order other than asc or desc
var SortOrderInvalidError = new(SortOrderInvalidErrorCode, "SortOrderInvalid", "Sort order %s is invalid or unsupported")
