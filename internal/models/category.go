package models

// Categories offered by the add-transaction form. The store keeps
// category as free text, so these are a UI vocabulary rather than a
// database constraint.
const (
	CategoryGeneral   = "general"
	CategoryFood      = "food"
	CategoryTransport = "transport"
	CategoryLodging   = "lodging"
	CategoryEquipment = "equipment"
	CategoryMedical   = "medical"
	CategorySalary    = "salary"
	CategoryCosmetics = "cosmetics"
	CategoryGift      = "gift"
)

// AllCategories returns all valid category constants
func AllCategories() []string {
	return []string{
		CategoryGeneral,
		CategoryFood,
		CategoryTransport,
		CategoryLodging,
		CategoryEquipment,
		CategoryMedical,
		CategorySalary,
		CategoryCosmetics,
		CategoryGift,
	}
}

// IsValidCategory checks if a category string is valid
func IsValidCategory(category string) bool {
	for _, validCategory := range AllCategories() {
		if category == validCategory {
			return true
		}
	}
	return false
}
