package constant

// Routing keys published on the domain events exchange.
const (
	EventUserRegistered      = "user.registered"
	EventCategoryCreated     = "category.created"
	EventCategoryUpdated     = "category.updated"
	EventCategoryDeleted     = "category.deleted"
	EventProductCreated      = "product.created"
	EventProductUpdated      = "product.updated"
	EventProductDeleted      = "product.deleted"
	EventVerificationCreated = "verification.created"
)

// Storage folders for uploaded assets.
const (
	FolderCategories    = "categories"
	FolderProducts      = "products"
	FolderVerifications = "verifications"
)
