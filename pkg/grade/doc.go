// Package grade maps numeric scores in [0, 100] to letter grades.
//
// Bands include their lower bound and exclude their upper bound, except A
// which includes 100:
//
//	[90, 100] A
//	[80, 90)  B
//	[70, 80)  C
//	[60, 70)  D
//	[0, 60)   F
//
// Scores that are NaN, infinite or outside the range fail with
// validator.ErrInvalidArgument.
//
//	g, err := grade.Assign(89.99) // grade.B
package grade
