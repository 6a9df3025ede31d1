// Package greeting holds small functions that take, return and capture
// other functions.
package greeting

import "fmt"

// SayHello is a plain function value
var SayHello = func() string {
	return "Hello!"
}

// Greeting returns a function that greets a name with greet
func Greeting(greet string) func(name string) string {
	return func(name string) string {
		return fmt.Sprintf("%s %s", greet, name)
	}
}

// GreetNested builds its result in a nested function that reads name from
// the enclosing scope.
func GreetNested(name string) string {
	displayName := func() string {
		return "Hello " + name
	}
	return displayName()
}

// OuterFunction returns a closure over a variable local to OuterFunction.
// The variable outlives the call that declared it.
func OuterFunction() func() string {
	outerVariable := "I am from the outer function"

	return func() string {
		return outerVariable
	}
}
