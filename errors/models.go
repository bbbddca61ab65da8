package errors

const (
	CurrentPageInvalidErrorCode = 200_001
	ObjectIDNotFoundErrorCode   = 200_002
	DuplicatedObjectIDErrorCode = 200_003
)

// CurrentPageInvalidError indicates user gives invalid current page when paging items
var CurrentPageInvalidError = new(CurrentPageInvalidErrorCode, "CurrentPageInvalid", "Current page can be only positive integer")

// ObjectIDNotFoundError indicates user gives invalid item ID
var ObjectIDNotFoundError = new(ObjectIDNotFoundErrorCode, "ObjectIDNotFound", "Item with ID %s is not exist")

// DuplicatedObjectIDError indicates user create item using item ID that already in used
var DuplicatedObjectIDError = new(DuplicatedObjectIDErrorCode, "DuplicatedObjectID", "item ID %s is already used")
