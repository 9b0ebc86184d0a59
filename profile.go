package advisor

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Profile holds the user's financial situation and goals.
//
// A Profile is a value: it is built once per analysis, validated, and then
// passed to every computation. Nothing in this package modifies it.
type Profile struct {
	Age       int           `yaml:"age"`
	Objective Objective     `yaml:"objective"`
	Initial   Money         `yaml:"initial"`
	Monthly   Money         `yaml:"monthly"`
	Horizon   int           `yaml:"horizon"` // in years
	Risk      RiskTolerance `yaml:"risk"`
	ESG       bool          `yaml:"esg"`
	Liquidity bool          `yaml:"liquidity"` // short-term liquidity need

	RetirementAge    int   `yaml:"retirement_age"`
	RetirementIncome Money `yaml:"retirement_income"` // desired yearly income
	RetirementYears  int   `yaml:"retirement_years"`

	Knowledge     Knowledge `yaml:"knowledge"`
	Household     string    `yaml:"household,omitempty"`
	EmergencyFund bool      `yaml:"emergency_fund"`
}

// Limits of the profile form.
const (
	MinAge     = 18
	MaxAge     = 100
	MaxHorizon = 50
)

// DefaultProfile returns the profile used when the user has not entered one.
func DefaultProfile() Profile {
	return Profile{
		Age:              30,
		Objective:        Retirement,
		Initial:          M(1000, ""),
		Monthly:          M(100, ""),
		Horizon:          10,
		Risk:             ModerateRisk,
		RetirementAge:    65,
		RetirementIncome: M(25000, ""),
		RetirementYears:  25,
		Knowledge:        Beginner,
		EmergencyFund:    true,
	}
}

// Validate checks every field range and returns all failures joined.
// Each failure wraps ErrInvalidInput.
func (p Profile) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, invalidf(format, args...))
		}
	}
	check(p.Age >= MinAge && p.Age <= MaxAge, "age %d must be between %d and %d", p.Age, MinAge, MaxAge)
	check(p.Horizon >= 1 && p.Horizon <= MaxHorizon, "horizon %d must be between 1 and %d years", p.Horizon, MaxHorizon)
	check(!p.Initial.IsNegative(), "initial amount %v must not be negative", p.Initial)
	check(!p.Monthly.IsNegative(), "monthly contribution %v must not be negative", p.Monthly)
	check(p.RetirementAge >= p.Age && p.RetirementAge <= MaxAge, "retirement age %d must be between age %d and %d", p.RetirementAge, p.Age, MaxAge)
	check(!p.RetirementIncome.IsNegative(), "retirement income %v must not be negative", p.RetirementIncome)
	check(p.RetirementYears >= 1 && p.RetirementYears <= MaxHorizon, "retirement years %d must be between 1 and %d", p.RetirementYears, MaxHorizon)
	check(p.Initial.Compatible(p.Monthly), "initial amount and monthly contribution use different currencies")
	return errors.Join(errs...)
}

// InCurrency returns a copy of p where amounts without a currency are in cur.
func (p Profile) InCurrency(cur string) Profile {
	p.Initial = p.Initial.WithCurrency(cur)
	p.Monthly = p.Monthly.WithCurrency(cur)
	p.RetirementIncome = p.RetirementIncome.WithCurrency(cur)
	return p
}

// YearsToRetirement returns the number of years left before retirement, or the
// horizon if the user is already at retirement age.
func (p Profile) YearsToRetirement() int {
	if n := p.RetirementAge - p.Age; n >= 1 {
		return n
	}
	return p.Horizon
}

// DecodeProfile reads a YAML profile. Missing fields keep their DefaultProfile value.
func DecodeProfile(r io.Reader) (Profile, error) {
	p := DefaultProfile()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil && !errors.Is(err, io.EOF) {
		return Profile{}, fmt.Errorf("decoding profile: %w", err)
	}
	if err := p.Validate(); err != nil {
		return Profile{}, err
	}
	return p, nil
}

// EncodeProfile writes p as YAML.
func EncodeProfile(w io.Writer, p Profile) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(p); err != nil {
		return err
	}
	return enc.Close()
}
