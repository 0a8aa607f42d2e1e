// Package provider defines the result types shared between external food
// catalog providers and the services that consume them.
package provider

// FoodResult is one product returned by an external catalog search.
// Calories are whole kcal per serving when the source reports a serving
// size, otherwise per 100g.
type FoodResult struct {
	Name     string
	Brand    string
	Calories int
	ImageURL *string
}
