package main

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"

	"github.com/luca-patrignani/blackjack/application"
	"github.com/luca-patrignani/blackjack/domain/blackjack"
)

func printTable(s application.Snapshot, additionalPanel ...pterm.Panel) {
	dealer := pterm.Panel{Data: printHandInfo("Dealer", s.Dealer, s.DealerValue, s.HoleHidden, "")}
	hands := []pterm.Panel{
		{Data: printHandInfo("Player", s.Player, s.PlayerValue, false, fmt.Sprintf("Bet: %d", s.Bet))},
	}
	if len(s.Split) > 0 {
		hands = append(hands, pterm.Panel{Data: printHandInfo("Split", s.Split, s.SplitValue, false, fmt.Sprintf("Bet: %d", s.SplitBet))})
	}
	bankroll := pterm.Panel{Data: pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1).
		WithTitle("Wallet").WithTitleTopLeft().Sprintf("Round: %d\nBankroll: %d", s.Round, s.Wallet)}
	hands = append(hands, bankroll)

	pterm.DefaultPanel.WithPanels([][]pterm.Panel{
		{dealer},
		hands,
		additionalPanel,
	}).Render()
}

func printHandInfo(title string, cards []blackjack.Card, value uint8, hidden bool, footer string) string {
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	body := pterm.BgGreen.Sprint(cardsLine(cards, hidden)) + "\n" + valueLabel(value)
	if footer != "" {
		body += "\n" + footer
	}
	return pbox.WithTitle(title).WithTitleTopLeft().Sprint(body)
}

func cardsLine(cards []blackjack.Card, hidden bool) string {
	parts := make([]string, 0, len(cards)+1)
	for _, c := range cards {
		parts = append(parts, c.String())
	}
	if hidden {
		parts = append(parts, pterm.FgDarkGray.Sprint("??"))
	}
	return strings.Join(parts, " - ")
}

func valueLabel(value uint8) string {
	switch {
	case value > 21:
		return pterm.LightRed(fmt.Sprintf("Value: %d (bust)", value))
	case value == 21:
		return pterm.LightGreen(fmt.Sprintf("Value: %d", value))
	default:
		return fmt.Sprintf("Value: %d", value)
	}
}

func getOutcomePanel(s application.Snapshot, outcome []blackjack.GameStatus) pterm.Panel {
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	info := ""
	for i, status := range outcome {
		hand := "Main hand"
		if i == 1 {
			hand = "Split hand"
		}
		info += pterm.Sprintfln("%s: %s", hand, statusLabel(status))
	}
	info += pterm.Sprintf("Wallet: %d", s.Wallet)
	return pterm.Panel{Data: pbox.WithTitle(pterm.LightYellow("|RESULT|")).WithTitleTopCenter().Sprint(info)}
}

func statusLabel(status blackjack.GameStatus) string {
	switch status {
	case blackjack.Win:
		return pterm.LightGreen("You win")
	case blackjack.Tie:
		return pterm.LightYellow("Tie")
	default:
		return pterm.LightRed("You lose")
	}
}

// actionHint lists the offered actions with their key, e.g.
// "Hit, Stand or Double? [h/s/d]".
func actionHint(p application.ActionPrompt) string {
	names := make([]string, len(p.Options))
	keys := make([]string, len(p.Options))
	for i, a := range p.Options {
		names[i] = a.String()
		keys[i] = a.Key()
	}
	hint := names[0]
	if len(names) > 1 {
		hint = strings.Join(names[:len(names)-1], ", ") + " or " + names[len(names)-1]
	}
	hint = fmt.Sprintf("%s hand at %d. %s? [%s]", p.Hand, p.Value, hint, strings.Join(keys, "/"))
	if p.Advice != blackjack.None {
		hint += " (basic strategy: " + p.Advice.String() + ")"
	}
	return hint
}

func renderSummary(s application.Summary) {
	pterm.DefaultSection.Println("Basic strategy simulation")
	pterm.DefaultTable.WithHasHeader().WithData(pterm.TableData{
		{"Rounds", "Wins", "Ties", "Losses", "Split hands", "Win rate", "Wallet"},
		{
			fmt.Sprint(s.Rounds),
			fmt.Sprint(s.Wins),
			fmt.Sprint(s.Ties),
			fmt.Sprint(s.Losses),
			fmt.Sprint(s.SplitHands),
			fmt.Sprintf("%.1f%%", s.WinRate()*100),
			fmt.Sprint(s.Wallet),
		},
	}).Render()
	if s.Rounds == 0 {
		return
	}
	pterm.DefaultBarChart.WithHorizontal().WithShowValue().WithBars(pterm.Bars{
		{Label: "Win", Value: s.Wins},
		{Label: "Tie", Value: s.Ties},
		{Label: "Lose", Value: s.Losses},
	}).Render()
}
