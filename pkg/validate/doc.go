// Package validate provides reusable validation predicates for askit
// conditions.
//
// Every helper returns a func(T) bool suitable for askit.AskFunc and
// askit.VarFunc. Rules are plain predicates rather than error-carrying
// structs because the ask loop owns the user-facing message: a rejected
// value always prints the ask's condition-error text.
//
// Usage:
//
//	age, err := askit.AskFunc(p, "Age: ", validate.Between(18, 130),
//		askit.WithConditionError("age must be between 18 and 130"))
//
// Rules compose:
//
//	name, err := askit.AskFunc(p, "Username: ",
//		validate.All(validate.MinLen(3), validate.Match(userRe)))
//
// Each lifts a scalar rule over a sequence:
//
//	scores, err := askit.AskFunc(p, "Scores: ", validate.Each(validate.Min(0)))
package validate
