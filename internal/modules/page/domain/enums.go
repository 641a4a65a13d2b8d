//go:generate go run github.com/abice/go-enum --file=$GOFILE --names --nocase

package domain

// Variant selects which page is rendered
// ENUM(top,blog)
type Variant string
