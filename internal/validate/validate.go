package validate

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/unicode/norm"
)

const (
	MinRating     = 1
	MaxRating     = 5
	DefaultRating = 5
)

var (
	reID    = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)
	checker = validator.New(validator.WithRequiredStructEnabled())
)

// Text normalizes visitor input: NFC composition, then surrounding
// whitespace trimmed.
func Text(s string) string {
	return strings.TrimSpace(norm.NFC.String(s))
}

// min on strings counts runes, not bytes.
func minRunes(s, tag string) (string, bool) {
	s = Text(s)
	return s, checker.Var(s, tag) == nil
}

func ReviewName(s string) (string, bool) { return minRunes(s, "min=2") }
func City(s string) (string, bool)       { return minRunes(s, "min=2") }
func Message(s string) (string, bool)    { return minRunes(s, "min=8") }

// ReviewText holds the free-text fields of a review submission.
type ReviewText struct {
	Name    string `validate:"min=2"`
	City    string `validate:"min=2"`
	Message string `validate:"min=8"`
}

// NewReviewText normalizes raw form values with Text.
func NewReviewText(name, city, message string) ReviewText {
	return ReviewText{Name: Text(name), City: Text(city), Message: Text(message)}
}

// Problems lists the failing fields, lower-cased, in form order. It is
// empty when every field passes.
func (r ReviewText) Problems() []string {
	err := checker.Struct(r)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}
	out := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, strings.ToLower(fe.Field()))
	}
	return out
}

// Rating coerces a form value into [MinRating, MaxRating]. Anything that is
// not a number, the empty string included, yields DefaultRating.
func Rating(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return DefaultRating
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !isRangeErr(err) {
		return DefaultRating
	}
	return RatingNumber(f)
}

func isRangeErr(err error) bool {
	ne, ok := err.(*strconv.NumError)
	return ok && ne.Err == strconv.ErrRange
}

// RatingNumber clamps f into [MinRating, MaxRating] and drops any fraction.
func RatingNumber(f float64) int {
	if math.IsNaN(f) {
		return DefaultRating
	}
	f = math.Max(MinRating, math.Min(MaxRating, f))
	return int(math.Trunc(f))
}

// ID validates a simple resource identifier (product ids).
func ID(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reID.MatchString(s)
}
