package lrtables

import (
	"fmt"

	"github.com/dekarrin/rosed"
	"github.com/jkugelman/kang/grammar"
)

// String renders the combined ACTION/GOTO table, one row per state, for
// diagnostics — this is never consulted by the driver, only printed.
func (t *Tables) String() string {
	terminals := append(append([]string{}, t.Grammar.Terminals()...), grammar.EndTerminalName)
	nonTerminals := t.Grammar.NonTerminals()

	data := [][]string{}

	headers := []string{"state", "|"}
	for _, term := range terminals {
		headers = append(headers, "A:"+term)
	}
	headers = append(headers, "|")
	for _, nt := range nonTerminals {
		headers = append(headers, "G:"+nt)
	}
	data = append(data, headers)

	for _, s := range t.Automaton.States {
		row := []string{fmt.Sprintf("%d", s.ID), "|"}

		for _, term := range terminals {
			cell := ""
			if act, ok := t.Action[s.ID][term]; ok {
				switch act.Kind {
				case ActionShift:
					cell = fmt.Sprintf("s%d", act.State)
				case ActionReduce:
					cell = fmt.Sprintf("r(%s)", act.Rule.String())
				case ActionAccept:
					cell = "acc"
				}
			}
			row = append(row, cell)
		}

		row = append(row, "|")

		for _, nt := range nonTerminals {
			cell := ""
			if target, ok := t.Goto[s.ID][nt]; ok {
				cell = fmt.Sprintf("%d", target)
			}
			row = append(row, cell)
		}

		data = append(data, row)
	}

	return rosed.Edit("").
		InsertTableOpts(0, data, 10, rosed.Options{
			TableHeaders:             true,
			NoTrailingLineSeparators: true,
		}).
		String()
}
