// Command twenty48 plays sliding-tile board games in the terminal.
//
// It supports four subcommands:
//  1. "play" (default) – interactive game loop on stdin/stdout
//  2. "configs"        – list the available board configurations
//  3. "sessions"       – list saved game sessions
//  4. "highscore"      – show or reset the persisted best score
//
// Flags control the config directory, the data directory for saved
// sessions and the high score, and debug logging.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v3"

	"github.com/slidegrid/twenty48/game/config"
	"github.com/slidegrid/twenty48/game/engine"
	"github.com/slidegrid/twenty48/game/service"
	"github.com/slidegrid/twenty48/game/session"
)

// Version information
const (
	Version = "1.0.0"
	AppName = "twenty48"
)

// keyBindings maps the single-letter commands of the play loop to directions.
var keyBindings = map[string]engine.Direction{
	"w": engine.Up,
	"a": engine.Left,
	"s": engine.Down,
	"d": engine.Right,
}

func main() {
	// Load .env file if it exists (ignore error if not found)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "Warning: error loading .env file: %v\n", err)
	}

	cmd := &cli.Command{
		Name:    AppName,
		Usage:   "sliding-tile board game engine and terminal player",
		Version: Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config-dir",
				Value:   "configs",
				Usage:   "directory containing board configurations",
				Sources: cli.EnvVars("TWENTY48_CONFIG_DIR"),
			},
			&cli.StringFlag{
				Name:    "data-dir",
				Value:   defaultDataDir(),
				Usage:   "directory for saved sessions and the high score",
				Sources: cli.EnvVars("TWENTY48_DATA_DIR"),
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "enable debug logging",
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "play",
				Usage: "play a game interactively",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "config",
						Usage: "board configuration to play (default: classic)",
					},
					&cli.StringFlag{
						Name:  "session",
						Usage: "resume an existing session by ID",
					},
				},
				Action: runPlay,
			},
			{
				Name:   "configs",
				Usage:  "list available board configurations",
				Action: runConfigs,
			},
			{
				Name:   "sessions",
				Usage:  "list saved game sessions",
				Action: runSessions,
			},
			{
				Name:  "highscore",
				Usage: "show the persisted best score",
				Commands: []*cli.Command{
					{
						Name:   "reset",
						Usage:  "clear the persisted best score",
						Action: runHighScoreReset,
					},
				},
				Action: runHighScore,
			},
		},
		DefaultCommand: "play",
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// defaultDataDir picks a per-user data directory, falling back to the
// working directory when the home directory cannot be determined.
func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".twenty48"
	}
	return filepath.Join(home, ".twenty48")
}

func newLogger(cmd *cli.Command) zerolog.Logger {
	level := zerolog.InfoLevel
	if cmd.Bool("debug") {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
}

// servicesForCommand builds the game service from the global flags.
func servicesForCommand(cmd *cli.Command) (service.GameService, error) {
	return initializeServices(cmd.String("config-dir"), cmd.String("data-dir"), newLogger(cmd))
}

// initializeServices wires the config manager, session persistence, and
// high-score store behind a game service.
func initializeServices(configDir, dataDir string, log zerolog.Logger) (service.GameService, error) {
	configManager, err := config.NewManager(configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to create config manager: %w", err)
	}

	persistence, err := session.NewFilePersistence(filepath.Join(dataDir, "sessions"), configManager)
	if err != nil {
		return nil, fmt.Errorf("failed to create session persistence: %w", err)
	}

	sessionManager := session.NewManagerWithPersistence(persistence)
	if err := sessionManager.LoadPersistedSessions(); err != nil {
		log.Warn().Err(err).Msg("failed to load persisted sessions")
	}

	scores := session.NewHighScoreFile(filepath.Join(dataDir, "highscore.json"))

	return service.NewGameService(sessionManager, configManager, scores, log), nil
}

// runPlay drives the interactive game loop: render the board, read a
// command, apply it, repeat until the player quits.
func runPlay(ctx context.Context, cmd *cli.Command) error {
	svc, err := servicesForCommand(cmd)
	if err != nil {
		return err
	}

	var sess *service.SessionInfo
	if id := cmd.String("session"); id != "" {
		sess, err = svc.GetSession(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to resume session %s: %w", id, err)
		}
		fmt.Printf("Resumed session %s (%s)\n", sess.ID, sess.GameConfig.Name)
	} else {
		sess, err = svc.CreateSession(ctx, cmd.String("config"))
		if err != nil {
			return err
		}
		fmt.Printf("New game: %s (%dx%d, target %d)\n",
			sess.GameConfig.Name, sess.GameConfig.GridSize, sess.GameConfig.GridSize, sess.GameConfig.WinValue)
		fmt.Printf("Session ID: %s\n", sess.ID)
	}

	best, err := svc.HighScore(ctx)
	if err != nil {
		best = 0
	}

	state, err := svc.GetGameState(ctx, sess.ID)
	if err != nil {
		return err
	}
	printBoard(state, best)
	fmt.Println("Commands: w=up a=left s=down d=right r=restart q=quit")

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		input := strings.ToLower(strings.TrimSpace(scanner.Text()))
		switch input {
		case "":
			continue
		case "q", "quit", "exit":
			fmt.Printf("Saved. Resume with: %s play --session %s\n", AppName, sess.ID)
			return nil
		case "r", "restart":
			state, err = svc.Reset(ctx, sess.ID)
			if err != nil {
				return err
			}
			fmt.Println("Board reset.")
			printBoard(state, best)
			continue
		}

		dir, ok := keyBindings[input]
		if !ok {
			fmt.Printf("Unknown command %q (w/a/s/d, r, q)\n", input)
			continue
		}

		result, err := svc.Move(ctx, sess.ID, dir)
		if err != nil {
			fmt.Printf("Move failed: %v\n", err)
			continue
		}
		if !result.Changed {
			fmt.Printf("Nothing moves %s.\n", dir)
			continue
		}

		if result.HighScore > best {
			best = result.HighScore
		}
		printBoard(result.GameState, best)

		if result.ScoreDelta > 0 {
			fmt.Printf("+%d points\n", result.ScoreDelta)
		}
		if result.NewHighScore {
			fmt.Printf("New high score: %d!\n", result.HighScore)
		}

		switch result.Status {
		case engine.StatusWon:
			fmt.Printf("You win! Reached %d with score %d.\n", sess.GameConfig.WinValue, result.GameState.Score)
			fmt.Println("Press r to play again or q to quit.")
		case engine.StatusLost:
			fmt.Printf("Game over. Final score: %d.\n", result.GameState.Score)
			fmt.Println("Press r to play again or q to quit.")
		}
	}
	return scanner.Err()
}

// printBoard renders the grid with fixed-width cells plus the score line.
func printBoard(state *engine.GameState, highScore int) {
	size := state.Grid.Size()
	border := strings.Repeat("-", size*7+1)

	fmt.Println()
	fmt.Println(border)
	for _, row := range state.Grid {
		var sb strings.Builder
		sb.WriteString("|")
		for _, v := range row {
			if v == 0 {
				sb.WriteString("      |")
			} else {
				sb.WriteString(fmt.Sprintf("%5d |", v))
			}
		}
		fmt.Println(sb.String())
		fmt.Println(border)
	}
	fmt.Printf("Score: %d   Best: %d   Moves: %d\n\n", state.Score, highScore, state.TotalMoves)
}

func runConfigs(ctx context.Context, cmd *cli.Command) error {
	svc, err := servicesForCommand(cmd)
	if err != nil {
		return err
	}

	configs, err := svc.ListConfigs(ctx)
	if err != nil {
		return err
	}
	if len(configs) == 0 {
		fmt.Println("No configurations found.")
		return nil
	}

	fmt.Printf("%-12s %-20s %-8s %-8s %s\n", "ID", "NAME", "BOARD", "TARGET", "DESCRIPTION")
	for _, cfg := range configs {
		fmt.Printf("%-12s %-20s %-8s %-8d %s\n",
			cfg.ConfigID, cfg.Name, fmt.Sprintf("%dx%d", cfg.GridSize, cfg.GridSize), cfg.WinValue, cfg.Description)
	}
	return nil
}

func runSessions(ctx context.Context, cmd *cli.Command) error {
	svc, err := servicesForCommand(cmd)
	if err != nil {
		return err
	}

	sessions, err := svc.ListSessions(ctx)
	if err != nil {
		return err
	}
	if len(sessions) == 0 {
		fmt.Println("No saved sessions.")
		return nil
	}

	fmt.Printf("%-38s %-12s %-8s %-12s %s\n", "SESSION", "CONFIG", "SCORE", "STATUS", "LAST PLAYED")
	for _, s := range sessions {
		fmt.Printf("%-38s %-12s %-8d %-12s %s\n",
			s.ID, s.ConfigName, s.GameState.Score, s.GameState.Status,
			s.LastAccessedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

func runHighScore(ctx context.Context, cmd *cli.Command) error {
	svc, err := servicesForCommand(cmd)
	if err != nil {
		return err
	}

	best, err := svc.HighScore(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("High score: %d\n", best)
	return nil
}

func runHighScoreReset(ctx context.Context, cmd *cli.Command) error {
	svc, err := servicesForCommand(cmd)
	if err != nil {
		return err
	}

	if err := svc.ResetHighScore(ctx); err != nil {
		return err
	}
	fmt.Println("High score reset.")
	return nil
}
