// Package pricing holds the lesson package catalogue shown on the site and
// referenced by inquiry emails.
package pricing

import "slices"

// PackageType identifies a lesson package.
type PackageType string

const (
	General  PackageType = "general"
	Single   PackageType = "single"
	Package3 PackageType = "package_3"
	Package5 PackageType = "package_5"
)

// ListPricePerLesson is the undiscounted price of one lesson in pounds.
const ListPricePerLesson = 29

// Package describes a purchasable bundle of lessons.
type Package struct {
	Type        PackageType `json:"type"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Lessons     int         `json:"lessons"`
	Price       int         `json:"price"`
	Features    []string    `json:"features"`
	Popular     bool        `json:"popular"`
}

// ListPrice is what the lessons would cost bought one at a time.
func (p Package) ListPrice() int {
	return ListPricePerLesson * p.Lessons
}

// Savings is the discount against the list price.
func (p Package) Savings() int {
	if saved := p.ListPrice() - p.Price; saved > 0 {
		return saved
	}
	return 0
}

var catalogue = []Package{
	{
		Type:        Single,
		Name:        "Single Lesson",
		Description: "Perfect for trying out or occasional practice",
		Lessons:     1,
		Price:       29,
		Features:    []string{"1-hour session", "Personalized coaching", "Equipment provided", "Flexible scheduling"},
	},
	{
		Type:        Package3,
		Name:        "3-Lesson Package",
		Description: "Great for getting started",
		Lessons:     3,
		Price:       82,
		Features:    []string{"3 one-hour sessions", "Progress tracking", "Equipment provided", "Flexible scheduling"},
		Popular:     true,
	},
	{
		Type:        Package5,
		Name:        "5-Lesson Package",
		Description: "Best value for committed players",
		Lessons:     5,
		Price:       130,
		Features:    []string{"5 one-hour sessions", "Progress tracking", "Equipment provided", "Flexible scheduling"},
	},
}

// Packages returns the purchasable packages in display order.
func Packages() []Package {
	out := make([]Package, len(catalogue))
	for i, pkg := range catalogue {
		pkg.Features = slices.Clone(pkg.Features)
		out[i] = pkg
	}
	return out
}

// Lookup finds a purchasable package by type.
func Lookup(t PackageType) (Package, bool) {
	for _, pkg := range catalogue {
		if pkg.Type == t {
			pkg.Features = slices.Clone(pkg.Features)
			return pkg, true
		}
	}
	return Package{}, false
}

// Label returns the human readable name of a package choice made on the
// contact form, including the non-purchasable general inquiry. Unknown values
// return "".
func Label(t PackageType) string {
	if t == General {
		return "General Inquiry"
	}
	if pkg, ok := Lookup(t); ok {
		return pkg.Name
	}
	return ""
}
