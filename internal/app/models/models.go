package models

// Category defines the user account category
type Category string

const (
	CategoryAdmin      Category = "ADMIN"
	CategoryInstructor Category = "INSTRUCTOR"
	CategoryStudent    Category = "STUDENT"
)

// categoryLabels maps stored categories to the labels the web client uses.
var categoryLabels = map[Category]string{
	CategoryAdmin:      "Admin",
	CategoryInstructor: "Instructor",
	CategoryStudent:    "Student",
}

// Label returns the client-facing form of the category ("Admin", "Instructor", "Student").
func (c Category) Label() string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}
	return string(c)
}

// ParseCategory resolves a client-facing label to a Category.
// Returns false for unknown labels.
func ParseCategory(label string) (Category, bool) {
	for cat, l := range categoryLabels {
		if l == label || string(cat) == label {
			return cat, true
		}
	}
	return "", false
}

// IsValid reports whether the category is one of the known account categories.
func (c Category) IsValid() bool {
	_, ok := categoryLabels[c]
	return ok
}
