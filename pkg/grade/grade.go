package grade

import "github.com/dmitrymomot/cartkit/pkg/validator"

// Grade is a letter grade.
type Grade string

const (
	A Grade = "A"
	B Grade = "B"
	C Grade = "C"
	D Grade = "D"
	F Grade = "F"
)

const (
	MinScore = 0
	MaxScore = 100
)

// All lists grades from best to worst.
var All = []Grade{A, B, C, D, F}

// band lower bounds, highest first.
var bands = []struct {
	floor float64
	grade Grade
}{
	{90, A},
	{80, B},
	{70, C},
	{60, D},
}

func (g Grade) String() string {
	return string(g)
}

// Assign returns the letter grade for score.
func Assign(score float64) (Grade, error) {
	if err := validator.First(
		validator.Finite("score", score).WithKind(validator.ErrInvalidArgument),
		validator.NumBetween("score", score, MinScore, MaxScore).WithKind(validator.ErrInvalidArgument),
	); err != nil {
		return "", err
	}

	for _, b := range bands {
		if score >= b.floor {
			return b.grade, nil
		}
	}
	return F, nil
}

// AssignValue is Assign for untyped input. Non-numeric values fail with
// validator.ErrInvalidArgument.
func AssignValue(score any) (Grade, error) {
	n, err := validator.Number("score", score)
	if err != nil {
		errs := validator.ExtractValidationErrors(err)
		for i := range errs {
			errs[i].Kind = validator.ErrInvalidArgument
		}
		return "", errs
	}
	return Assign(n)
}

// Distribution counts the grade of every score. Every grade is present in
// the result, with zero counts where no score landed. It fails on the first
// invalid score.
func Distribution(scores ...float64) (map[Grade]int, error) {
	counts := make(map[Grade]int, len(All))
	for _, g := range All {
		counts[g] = 0
	}
	for _, s := range scores {
		g, err := Assign(s)
		if err != nil {
			return nil, err
		}
		counts[g]++
	}
	return counts, nil
}
