package physics

// Category classifies an actor by the structure of what it produces.
// Labels outside the known set are allowed and take the default arm
// of every lookup.
type Category string

const (
	CategoryPhysicalCrop   Category = "PHYSICAL_CROP"
	CategoryInfrastructure Category = "INFRASTRUCTURE"
	CategoryService        Category = "SERVICE"
	CategorySpeculation    Category = "SPECULATION"
)

// Default values for categories outside the known set.
const (
	DefaultCoefficient = 0.5
	DefaultPersistence = 1.0
)

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryPhysicalCrop, CategoryInfrastructure, CategoryService, CategorySpeculation:
		return true
	}
	return false
}

// Categories returns the known categories from most to least structured.
func Categories() []Category {
	return []Category{
		CategoryPhysicalCrop,
		CategoryInfrastructure,
		CategoryService,
		CategorySpeculation,
	}
}

// Coefficient returns the structural density (alpha) of c, in [0, 1].
func Coefficient(c Category) float64 {
	switch c {
	case CategoryPhysicalCrop:
		return 0.9
	case CategoryInfrastructure:
		return 0.8
	case CategoryService:
		return 0.5
	case CategorySpeculation:
		return 0.1
	default:
		return DefaultCoefficient
	}
}

// Persistence returns the temporal multiplier of c. Only physical crops
// carry a bonus.
func Persistence(c Category) float64 {
	if c == CategoryPhysicalCrop {
		return 2.0
	}
	return DefaultPersistence
}
