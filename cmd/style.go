package main

import (
	"strconv"
	"strings"

	"github.com/luca-patrignani/solitaire/domain/cards"
	"github.com/luca-patrignani/solitaire/domain/solitaire"
	"github.com/pterm/pterm"
)

func getActionPanel(a solitaire.Action, err error) pterm.Panel {
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	var actionString string
	if err != nil {
		actionString = pterm.Sprintfln("%s: %s", a, pterm.LightRed(err.Error()))
	} else {
		actionString = pterm.Sprintfln("%s", a)
	}
	return pterm.Panel{Data: pbox.WithTitle(pterm.LightYellow("|LAST ACTION|")).WithTitleTopCenter().Sprintf(actionString)}
}

func printState(s *solitaire.Session, additionalPanel ...pterm.Panel) {
	top := []pterm.Panel{
		{Data: printStockInfo(s)},
		{Data: printTalonInfo(s)},
	}
	for i := 0; i < solitaire.FoundationCount; i++ {
		top = append(top, pterm.Panel{Data: printFoundationInfo(s.Foundation(i))})
	}
	var tableau []pterm.Panel
	for i := 0; i < solitaire.TableauCount; i++ {
		tableau = append(tableau, pterm.Panel{Data: printTableauInfo(s.Tableau(i))})
	}
	dashboard := []pterm.Panel{{Data: printScoreInfo(s)}, {Data: printHistoryInfo(s, 3)}}
	dashboard = append(dashboard, additionalPanel...)

	pterm.DefaultPanel.WithPanels([][]pterm.Panel{
		top,
		tableau,
		dashboard,
	}).Render()
}

func printStockInfo(s *solitaire.Session) string {
	pbox := pterm.DefaultBox.WithHorizontalPadding(2)
	content := "  "
	if !s.Stock().Empty() {
		content = cards.FaceDown + cards.FaceDown
	}
	return pbox.WithTitle("stock").WithTitleTopLeft().Sprintf("%s\n%d", content, s.Stock().Len())
}

func printTalonInfo(s *solitaire.Session) string {
	pbox := pterm.DefaultBox.WithHorizontalPadding(2)
	cs := s.Talon().Collection().Cards()
	if len(cs) > 3 {
		cs = cs[len(cs)-3:]
	}
	return pbox.WithTitle("talon (w)").WithTitleTopLeft().Sprintf("%s\n%d", joinCards(cs), s.Talon().Collection().Len())
}

func printFoundationInfo(f *solitaire.Foundation) string {
	pbox := pterm.DefaultBox.WithHorizontalPadding(2)
	top, ok := f.Collection().Top()
	content := "--"
	if ok {
		content = top.String()
	}
	return pbox.WithTitle(f.Name()).WithTitleTopLeft().Sprintf("%s\n%d", content, f.Collection().Len())
}

func printTableauInfo(p *solitaire.TableauPile) string {
	pbox := pterm.DefaultBox.WithHorizontalPadding(1)
	lines := make([]string, 0, p.FaceDown().Len()+p.Collection().Len())
	for range p.FaceDown().Len() {
		lines = append(lines, cards.FaceDown+cards.FaceDown)
	}
	for _, c := range p.Collection().Cards() {
		lines = append(lines, c.String())
	}
	if len(lines) == 0 {
		lines = append(lines, "--")
	}
	return pbox.WithTitle(p.Name()).WithTitleTopLeft().Sprint(strings.Join(lines, "\n"))
}

func printScoreInfo(s *solitaire.Session) string {
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	status := pterm.LightGreen("Playing")
	if s.Won() {
		status = pterm.LightYellow("Won!")
	}
	return pbox.WithTitle("score").WithTitleTopLeft().Sprintf("%s\nScore: %s\nMoves: %d\n",
		status, pterm.LightCyan(strconv.Itoa(s.Score())), s.Log().Len())
}

func joinCards(cs []*cards.Card) string {
	if len(cs) == 0 {
		return "--"
	}
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.String()
	}
	return strings.Join(out, " ")
}

// printHistoryInfo lists the last n committed moves, newest first.
func printHistoryInfo(s *solitaire.Session, n int) string {
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	log := s.Log()
	var lines []string
	for i := log.Len(); i > 0 && len(lines) < n; i-- {
		block, err := log.GetByIndex(i)
		if err != nil {
			break
		}
		extra := block.Metadata.Extra
		lines = append(lines, pterm.Sprintf("%s: %s → %s", extra["cards"], extra["from"], extra["to"]))
	}
	if len(lines) == 0 {
		lines = append(lines, "--")
	}
	return pbox.WithTitle("history").WithTitleTopLeft().Sprint(strings.Join(lines, "\n"))
}
