// Package fill evaluates the generation expressions stored as field values
// in the local template catalog and produces synthetic Vietnamese document
// data: names with proper diacritics, 12-digit citizen IDs, dates of birth,
// mobile phone numbers, and addresses. Synthetic values give a controlled
// dataset with known content, so downstream pipelines can be validated
// without touching real personal data.
//
// An expression is a generator name with an optional colon-separated
// argument:
//
//	name         full name, random gender
//	name:female  full name, fixed gender ("male" or "female")
//	cccd         12-digit citizen ID
//	dob          date of birth, DD/MM/YYYY, between 1960 and 2000
//	phone        10-digit mobile number with a common carrier prefix
//	address      street number, street, district, city
//	email        synthetic address under example.com
//	digits:N     N random digits
//	choice:A|B   one of the listed options
//	const:text   the literal text
package fill

import (
	"fmt"
	"math/rand"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/paperfold/formsync/pkg/catalogs"
	"github.com/paperfold/formsync/pkg/errors"
)

// dobStart and dobEnd bound generated dates of birth.
var (
	dobStart = time.Date(1960, 1, 1, 0, 0, 0, 0, time.UTC)
	dobEnd   = time.Date(2000, 12, 31, 0, 0, 0, 0, time.UTC)
)

// Filler evaluates generation expressions. It is not safe for concurrent
// use; create one per goroutine.
type Filler struct {
	rng *rand.Rand
}

// Option configures a Filler.
type Option func(*Filler)

// WithSeed fixes the random source, making output deterministic for tests.
func WithSeed(seed int64) Option {
	return func(f *Filler) {
		f.rng = rand.New(rand.NewSource(seed))
	}
}

// New creates a Filler with options applied.
func New(opts ...Option) *Filler {
	f := &Filler{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fill evaluates every field of the template and returns field name to
// generated value. Unresolved sentinel fields are collected into a single
// error listing all of them, so operators see every remaining TODO at once
// instead of one per run. Fields are evaluated in sorted name order so a
// seeded Filler produces stable output.
func (f *Filler) Fill(t catalogs.Template) (map[string]string, error) {
	names := make([]string, 0, len(t.Fields))
	for name := range t.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	values := make(map[string]string, len(names))
	var unresolved []string
	for _, name := range names {
		expr := t.Fields[name]
		if expr == catalogs.UnresolvedValue {
			unresolved = append(unresolved, name)
			continue
		}
		value, err := f.Value(expr)
		if err != nil {
			return nil, errors.WrapResource("fill", "template", t.Name,
				fmt.Errorf("field %q: %w", name, err))
		}
		values[name] = value
	}

	if len(unresolved) > 0 {
		return nil, fmt.Errorf("template %q has %d field(s) without a generation expression (%s): %w",
			t.Name, len(unresolved), strings.Join(unresolved, ", "), errors.ErrUnresolved)
	}
	return values, nil
}

// Value evaluates a single generation expression.
func (f *Filler) Value(expr string) (string, error) {
	if expr == catalogs.UnresolvedValue {
		return "", errors.ErrUnresolved
	}

	gen, arg, _ := strings.Cut(expr, ":")
	switch gen {
	case "name":
		return f.fullName(arg)
	case "cccd":
		return f.digits(12), nil
	case "dob":
		return f.dateOfBirth(), nil
	case "phone":
		return f.phone(), nil
	case "address":
		return f.address(), nil
	case "email":
		return f.email(), nil
	case "digits":
		n, err := strconv.Atoi(arg)
		if err != nil || n <= 0 {
			return "", &errors.ValidationError{
				Field:   "expression",
				Value:   expr,
				Message: "digits requires a positive count, e.g. digits:12",
			}
		}
		return f.digits(n), nil
	case "choice":
		options := strings.Split(arg, "|")
		if arg == "" || len(options) == 0 {
			return "", &errors.ValidationError{
				Field:   "expression",
				Value:   expr,
				Message: "choice requires options, e.g. choice:A|B",
			}
		}
		return options[f.rng.Intn(len(options))], nil
	case "const":
		return arg, nil
	default:
		return "", &errors.ValidationError{
			Field:   "expression",
			Value:   expr,
			Message: "unknown generator " + strconv.Quote(gen),
		}
	}
}

// fullName generates a Vietnamese full name. gender is "male", "female",
// or empty for random.
func (f *Filler) fullName(gender string) (string, error) {
	switch gender {
	case "":
		if f.rng.Intn(2) == 0 {
			gender = "male"
		} else {
			gender = "female"
		}
	case "male", "female":
	default:
		return "", &errors.ValidationError{
			Field:   "expression",
			Value:   "name:" + gender,
			Message: `gender must be "male" or "female"`,
		}
	}

	given := givenNamesMale
	if gender == "female" {
		given = givenNamesFemale
	}
	return strings.Join([]string{
		surnames[f.rng.Intn(len(surnames))],
		middleNames[f.rng.Intn(len(middleNames))],
		given[f.rng.Intn(len(given))],
	}, " "), nil
}

// digits generates n random decimal digits.
func (f *Filler) digits(n int) string {
	var b strings.Builder
	b.Grow(n)
	for i := 0; i < n; i++ {
		b.WriteByte(byte('0' + f.rng.Intn(10)))
	}
	return b.String()
}

// dateOfBirth generates a date in DD/MM/YYYY format between 1960 and 2000.
func (f *Filler) dateOfBirth() string {
	days := int(dobEnd.Sub(dobStart).Hours() / 24)
	d := dobStart.AddDate(0, 0, f.rng.Intn(days+1))
	return d.Format("02/01/2006")
}

// phone generates a 10-digit mobile number with a common carrier prefix.
func (f *Filler) phone() string {
	return mobilePrefixes[f.rng.Intn(len(mobilePrefixes))] + f.digits(8)
}

// address generates a street number, street, district, and city.
func (f *Filler) address() string {
	return fmt.Sprintf("%d %s, %s, %s",
		1+f.rng.Intn(500),
		streets[f.rng.Intn(len(streets))],
		districts[f.rng.Intn(len(districts))],
		cities[f.rng.Intn(len(cities))],
	)
}

// email generates a synthetic address under example.com.
func (f *Filler) email() string {
	return fmt.Sprintf("%s%d@example.com",
		emailLocalParts[f.rng.Intn(len(emailLocalParts))],
		f.rng.Intn(900)+100,
	)
}
