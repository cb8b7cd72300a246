package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/luca-patrignani/solitaire/config"
	"github.com/luca-patrignani/solitaire/domain/deck"
	"github.com/luca-patrignani/solitaire/domain/solitaire"
)

func main() {
	if len(os.Args) > 2 {
		fmt.Fprintf(os.Stderr, "usage: %s [config.yaml]\n", os.Args[0])
		os.Exit(1)
	}
	if len(os.Args) == 2 {
		os.Setenv(config.EnvConfig, os.Args[1])
	}
	cfg, err := config.FromEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	level, _ := cfg.Level()

	// Create a new slog handler with the default PTerm logger
	handler := pterm.NewSlogHandler(pterm.DefaultLogger.WithLevel(ptermLevel(level)))

	// Create a new slog logger with the handler
	logger := slog.New(handler)

	pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("K", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("londike", pterm.FgDarkGray.ToStyle()),
	).Render()

	opts := []solitaire.Option{
		solitaire.WithLogger(logger),
		solitaire.WithScoring(cfg.Rules()),
	}
	if cfg.Shuffle.Seed != nil {
		pterm.Info.Printfln("Dealing with seed %d", *cfg.Shuffle.Seed)
		opts = append(opts, solitaire.WithSource(deck.SeededSource(*cfg.Shuffle.Seed)))
	}
	session, err := solitaire.NewSession(opts...)
	if err != nil {
		logger.Error("failed to deal", "error", err)
		os.Exit(1)
	}
	manager := solitaire.NewManager(session)

	printState(session)
	for {
		action, quit := inputAction(manager)
		if quit {
			break
		}
		err := manager.Apply(action)
		if err != nil {
			logger.Debug("action rejected", "action", action.String(), "error", err)
		}
		printState(session, getActionPanel(action, err))

		if session.Won() {
			pterm.Success.Printfln("You won with %d points!", session.Score())
			again, _ := pterm.DefaultInteractiveConfirm.WithDefaultText("Play again?").WithDefaultValue(true).Show()
			if !again {
				break
			}
			if err := manager.Apply(manager.ActionNewGame()); err != nil {
				logger.Error("failed to deal", "error", err)
				os.Exit(1)
			}
			printState(session)
		}
	}
	pterm.Info.Printfln("Final score: %d", session.Score())
}

// inputAction asks for the next action until it can be built. It reports true
// when the player wants to quit.
func inputAction(m *solitaire.Manager) (solitaire.Action, bool) {
	actions := []string{"Draw", "Move", "Undo", "New game", "Quit"}
	for {
		selectedAction, _ := pterm.DefaultInteractiveSelect.WithDefaultText("Select your next action").WithOptions(actions).Show()
		switch selectedAction {
		case "Draw":
			return m.ActionDraw(), false
		case "Undo":
			return m.ActionUndo(), false
		case "New game":
			if confirm, _ := pterm.DefaultInteractiveConfirm.WithDefaultText("Abandon this game?").WithDefaultValue(false).Show(); confirm {
				return m.ActionNewGame(), false
			}
		case "Move":
			input, _ := pterm.DefaultInteractiveTextInput.WithDefaultText("Enter the move, e.g. t3 f0 or t2:3 t5 (w is the talon)").Show()
			action, err := parseMove(input)
			if err != nil {
				pterm.Warning.Println(err.Error())
				continue
			}
			return action, false
		case "Quit":
			return solitaire.Action{}, true
		}
	}
}

func ptermLevel(level slog.Level) pterm.LogLevel {
	switch {
	case level <= slog.LevelDebug:
		return pterm.LogLevelDebug
	case level <= slog.LevelInfo:
		return pterm.LogLevelInfo
	case level <= slog.LevelWarn:
		return pterm.LogLevelWarn
	default:
		return pterm.LogLevelError
	}
}
