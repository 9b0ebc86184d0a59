package cmd

import (
	"flag"

	"github.com/etnz/advisor"
	"github.com/etnz/advisor/date"
	"github.com/etnz/advisor/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Complete handles shell completion. It exits when the shell is asking for
// completions and returns otherwise. Install with COMP_INSTALL=1 adv.
func Complete() {
	Completion().Complete("adv")
}

// Completion returns the completion tree of adv.
func Completion() *complete.Command {
	root := &complete.Command{
		Sub:   map[string]*complete.Command{},
		Flags: flagPredictors(flag.CommandLine),
	}
	for _, cmds := range Groups() {
		for _, c := range cmds {
			fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
			c.SetFlags(fs)
			root.Sub[c.Name()] = &complete.Command{
				Flags: flagPredictors(fs),
				Args:  argPredictor(c.Name()),
			}
		}
	}
	return root
}

// flagPredictors predicts the values of well known flags.
func flagPredictors(fs *flag.FlagSet) map[string]complete.Predictor {
	res := map[string]complete.Predictor{}
	fs.VisitAll(func(f *flag.Flag) {
		var p complete.Predictor = predict.Something
		if b, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
			p = predict.Nothing
		}
		switch f.Name {
		case "config", "profile":
			p = predict.Files("*.yaml")
		case "csv":
			p = predict.Files("*.csv")
		case "o":
			p = predict.Files("*")
		case "objective":
			p = stringers(advisor.Objectives)
		case "risk":
			p = predict.Set{advisor.LowRisk.String(), advisor.ModerateRisk.String(), advisor.HighRisk.String()}
		case "period":
			p = stringers(date.Periods)
		}
		res[f.Name] = p
	})
	return res
}

func argPredictor(name string) complete.Predictor {
	switch name {
	case "topic":
		topics, _ := docs.GetAllTopics()
		return predict.Set(topics)
	case "funds":
		var symbols predict.Set
		for _, f := range advisor.DefaultFunds() {
			symbols = append(symbols, f.Symbol)
		}
		return symbols
	}
	return nil
}

func stringers[T interface{ String() string }](values []T) predict.Set {
	res := make(predict.Set, 0, len(values))
	for _, v := range values {
		res = append(res, v.String())
	}
	return res
}
