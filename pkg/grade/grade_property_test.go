//go:build property

package grade_test

import (
	"slices"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/dmitrymomot/cartkit/pkg/grade"
	"github.com/dmitrymomot/cartkit/pkg/validator"
)

// TestGradeProperties checks band invariants over generated scores.
func TestGradeProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.Rng.Seed(9090)
	parameters.MinSuccessfulTests = 500

	properties := gopter.NewProperties(parameters)

	properties.Property("every score in range gets a grade", prop.ForAll(
		func(score float64) bool {
			g, err := grade.Assign(score)
			return err == nil && slices.Contains(grade.All, g)
		},
		gen.Float64Range(grade.MinScore, grade.MaxScore),
	))

	properties.Property("grades never improve as scores drop", prop.ForAll(
		func(a, b float64) bool {
			if a < b {
				a, b = b, a
			}
			ga, errA := grade.Assign(a)
			gb, errB := grade.Assign(b)
			if errA != nil || errB != nil {
				return false
			}
			return slices.Index(grade.All, ga) <= slices.Index(grade.All, gb)
		},
		gen.Float64Range(grade.MinScore, grade.MaxScore),
		gen.Float64Range(grade.MinScore, grade.MaxScore),
	))

	properties.Property("scores above range are rejected", prop.ForAll(
		func(score float64) bool {
			_, err := grade.Assign(score)
			return validator.IsValidationError(err)
		},
		gen.Float64Range(grade.MaxScore+1e-9, 1e12),
	))

	properties.Property("negative scores are rejected", prop.ForAll(
		func(score float64) bool {
			_, err := grade.Assign(score)
			return validator.IsValidationError(err)
		},
		gen.Float64Range(-1e12, -1e-9),
	))

	properties.Property("distribution counts every score", prop.ForAll(
		func(scores []int) bool {
			in := make([]float64, len(scores))
			for i, s := range scores {
				in[i] = float64(s)
			}
			counts, err := grade.Distribution(in...)
			if err != nil {
				return false
			}
			total := 0
			for _, n := range counts {
				total += n
			}
			return total == len(scores)
		},
		gen.SliceOf(gen.IntRange(grade.MinScore, grade.MaxScore)),
	))

	properties.TestingRun(t)
}
