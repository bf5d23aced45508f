// Package strategy holds the pricing strategies used by price-war simulations.
package strategy

// Context is what a strategy sees when deciding its price for a week.
type Context struct {
	Week         int
	BasePrice    float64
	CurrentPrice float64
}

// Decision is a strategy's pricing move for one week.
type Decision struct {
	// ChangeRate is the intended fractional cut, before the price floor.
	ChangeRate float64
	Price      float64
}

type Strategy interface {
	Name() string
	Decide(ctx Context) Decision
}
