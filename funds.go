package advisor

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Fund describes an exchange-traded fund of the comparator.
type Fund struct {
	Symbol      string
	Name        string
	MeanReturn  Percent // historical mean annual return
	Risk        RiskTolerance
	Fee         Percent // management expense ratio
	StdDev      Percent // standard deviation of the annual return
	Description string
}

// DefaultFunds returns the reference all-in-one ETFs.
func DefaultFunds() []Fund {
	return []Fund{
		{"VEQT", "Vanguard All-Equity ETF Portfolio", 8, HighRisk, 0.25, 15, "Global portfolio, 100% equities."},
		{"XEQT", "iShares Core Equity ETF Portfolio", 7.8, HighRisk, 0.20, 14.5, "All-in-one equity ETF."},
		{"VCNS", "Vanguard Conservative ETF Portfolio", 5, LowRisk, 0.25, 7, "Conservative portfolio."},
		{"VGRO", "Vanguard Growth ETF Portfolio", 6.5, ModerateRisk, 0.25, 10, "Balanced growth portfolio."},
		{"ZBAL", "BMO Balanced ETF", 6, ModerateRisk, 0.22, 9, "BMO balanced portfolio."},
		{"XGRO", "iShares Core Growth ETF Portfolio", 6.3, ModerateRisk, 0.18, 9.5, "BlackRock growth ETF."},
	}
}

// FindFund returns the fund with the given symbol, case insensitive.
func FindFund(funds []Fund, symbol string) (Fund, bool) {
	for _, f := range funds {
		if strings.EqualFold(f.Symbol, symbol) {
			return f, true
		}
	}
	return Fund{}, false
}

// FundComparison holds the differences a - b between two funds.
type FundComparison struct {
	A, B       Fund
	MeanReturn Percent
	Fee        Percent
	StdDev     Percent
}

// CompareFunds computes the differences between two funds.
func CompareFunds(a, b Fund) FundComparison {
	return FundComparison{
		A:          a,
		B:          b,
		MeanReturn: a.MeanReturn - b.MeanReturn,
		Fee:        a.Fee - b.Fee,
		StdDev:     a.StdDev - b.StdDev,
	}
}

// Sharpe returns the mean return per unit of volatility, net of fees.
func (f Fund) Sharpe() float64 {
	if f.StdDev == 0 {
		return 0
	}
	return float64(f.MeanReturn-f.Fee) / float64(f.StdDev)
}

var fundHeader = []string{"symbol", "name", "return", "risk", "fee", "stddev", "description"}

// ReadFunds reads a fund universe in CSV with the header
// symbol,name,return,risk,fee,stddev,description. Percentages may carry a
// trailing "%".
func ReadFunds(r io.Reader) ([]Fund, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = len(fundHeader)
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("reading fund header: %w", err)
	}
	for i, h := range header {
		if !strings.EqualFold(strings.TrimSpace(h), fundHeader[i]) {
			return nil, invalidf("fund column %d is %q, want %q", i+1, h, fundHeader[i])
		}
	}
	var funds []Fund
	var errs []error
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading funds: %w", err)
		}
		line, _ := cr.FieldPos(0)
		f, err := parseFund(rec)
		if err != nil {
			errs = append(errs, fmt.Errorf("line %d: %w", line, err))
			continue
		}
		funds = append(funds, f)
	}
	return funds, errors.Join(errs...)
}

func parseFund(rec []string) (Fund, error) {
	risk, err := ParseRiskTolerance(rec[3])
	if err != nil {
		return Fund{}, err
	}
	var pcts [3]Percent
	for i, col := range []int{2, 4, 5} {
		s := strings.TrimSuffix(strings.TrimSpace(rec[col]), "%")
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return Fund{}, invalidf("%s %q is not a number", fundHeader[col], rec[col])
		}
		pcts[i] = Percent(v)
	}
	return Fund{
		Symbol:      strings.ToUpper(strings.TrimSpace(rec[0])),
		Name:        strings.TrimSpace(rec[1]),
		MeanReturn:  pcts[0],
		Risk:        risk,
		Fee:         pcts[1],
		StdDev:      pcts[2],
		Description: strings.TrimSpace(rec[6]),
	}, nil
}
