package advisor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseWatchlist(t *testing.T) {
	testCases := []struct {
		in   string
		want []string
	}{
		{DefaultWatchlist, []string{"AAPL", "MSFT", "TSLA"}},
		{"aapl, msft;TSLA  aapl\nGOOG", []string{"AAPL", "MSFT", "TSLA", "GOOG"}},
		{" ,, ", nil},
		{"", nil},
		{"^GSPC,veqt.to", []string{"^GSPC", "VEQT.TO"}},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.want, ParseWatchlist(tc.in), "ParseWatchlist(%q)", tc.in)
	}
}
