// Package codegen turns a compiled automaton into a standalone Go source
// file: the transition table as data plus an ε-closure matcher function.
package codegen

import (
	"bytes"
	"fmt"

	"github.com/dave/jennifer/jen"

	"github.com/Daniilkaaaa/taifya-lab5/regexlib"
)

// Config holds the settings for one generated file.
type Config struct {
	Package string // package clause, defaults to "main"
	Name    string // identifier suffix: Name "Token" yields MatchToken
	Pattern string // original pattern, recorded in the file header
}

// Generate renders a gofmt-formatted Go source file for the automaton.
func Generate(cfg Config, a *regexlib.Automaton) ([]byte, error) {
	if cfg.Package == "" {
		cfg.Package = "main"
	}
	name := Identifier(cfg.Name)
	if name == "" {
		name = "Pattern"
	}
	matchName := "Match" + name
	transName := LowerFirst(matchName) + "Trans"
	epsName := LowerFirst(matchName) + "Eps"
	startName := LowerFirst(matchName) + "Start"
	finalName := LowerFirst(matchName) + "Final"
	closureName := LowerFirst(matchName) + "Closure"

	order := a.StateOrder()
	idx := make(map[regexlib.StateID]int, len(order))
	for i, s := range order {
		idx[s] = i
	}

	f := jen.NewFile(cfg.Package)
	f.HeaderComment("Code generated by nfagen. DO NOT EDIT.")
	f.HeaderComment(fmt.Sprintf("Pattern: %s", cfg.Pattern))

	f.Var().Id(transName).Op("=").Map(jen.Int()).Map(jen.Rune()).Index().Int().Values(
		jen.DictFunc(func(d jen.Dict) {
			for _, s := range order {
				symbols := a.SymbolsAt(s)
				if len(symbols) == 0 {
					continue
				}
				d[jen.Lit(idx[s])] = jen.Values(jen.DictFunc(func(inner jen.Dict) {
					for _, sym := range symbols {
						var targets []jen.Code
						for _, t := range a.Targets(s, sym) {
							targets = append(targets, jen.Lit(idx[t]))
						}
						inner[jen.LitRune(sym)] = jen.Values(targets...)
					}
				}))
			}
		}),
	)

	f.Var().Id(epsName).Op("=").Map(jen.Int()).Index().Int().Values(
		jen.DictFunc(func(d jen.Dict) {
			for _, s := range order {
				eps := a.EpsilonTargets(s)
				if len(eps) == 0 {
					continue
				}
				var targets []jen.Code
				for _, t := range eps {
					targets = append(targets, jen.Lit(idx[t]))
				}
				d[jen.Lit(idx[s])] = jen.Values(targets...)
			}
		}),
	)

	f.Const().Defs(
		jen.Id(startName).Op("=").Lit(idx[a.Start]),
		jen.Id(finalName).Op("=").Lit(idx[a.Final]),
	)

	f.Comment(fmt.Sprintf("%s reports whether input is in the language of the pattern.", matchName))
	f.Func().Id(matchName).Params(jen.Id(inputName).String()).Bool().Block(
		jen.Id(currName).Op(":=").Map(jen.Int()).Bool().Values(jen.Dict{
			jen.Id(startName): jen.True(),
		}),
		jen.Id(closureName).Call(jen.Id(currName)),
		jen.For(jen.List(jen.Id("_"), jen.Id("r")).Op(":=").Range().Id(inputName)).Block(
			jen.Id(nextName).Op(":=").Map(jen.Int()).Bool().Values(),
			jen.For(jen.Id("s").Op(":=").Range().Id(currName)).Block(
				jen.For(jen.List(jen.Id("_"), jen.Id("t")).Op(":=").Range().Id(transName).Index(jen.Id("s")).Index(jen.Id("r"))).Block(
					jen.Id(nextName).Index(jen.Id("t")).Op("=").True(),
				),
			),
			jen.If(jen.Len(jen.Id(nextName)).Op("==").Lit(0)).Block(
				jen.Return(jen.False()),
			),
			jen.Id(closureName).Call(jen.Id(nextName)),
			jen.Id(currName).Op("=").Id(nextName),
		),
		jen.Return(jen.Id(currName).Index(jen.Id(finalName))),
	)

	f.Func().Id(closureName).Params(jen.Id(setName).Map(jen.Int()).Bool()).Block(
		jen.Id(stackName).Op(":=").Make(jen.Index().Int(), jen.Lit(0), jen.Len(jen.Id(setName))),
		jen.For(jen.Id("s").Op(":=").Range().Id(setName)).Block(
			jen.Id(stackName).Op("=").Append(jen.Id(stackName), jen.Id("s")),
		),
		jen.For(jen.Len(jen.Id(stackName)).Op(">").Lit(0)).Block(
			jen.Id("s").Op(":=").Id(stackName).Index(jen.Len(jen.Id(stackName)).Op("-").Lit(1)),
			jen.Id(stackName).Op("=").Id(stackName).Index(jen.Empty(), jen.Len(jen.Id(stackName)).Op("-").Lit(1)),
			jen.For(jen.List(jen.Id("_"), jen.Id("t")).Op(":=").Range().Id(epsName).Index(jen.Id("s"))).Block(
				jen.If(jen.Op("!").Id(setName).Index(jen.Id("t"))).Block(
					jen.Id(setName).Index(jen.Id("t")).Op("=").True(),
					jen.Id(stackName).Op("=").Append(jen.Id(stackName), jen.Id("t")),
				),
			),
		),
	)

	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return nil, fmt.Errorf("render %s: %w", matchName, err)
	}
	return buf.Bytes(), nil
}
