package vanilla

// ChromeClass is a typed identifier for semantic chrome CSS classes.
type ChromeClass string

const (
	ClassForm    ChromeClass = "lettergen-form"
	ClassHeader  ChromeClass = "lettergen-header"
	ClassSection ChromeClass = "lettergen-section"
	ClassField   ChromeClass = "lettergen-field"
	ClassGroup   ChromeClass = "lettergen-group"
	ClassCharges ChromeClass = "lettergen-charges"
)
