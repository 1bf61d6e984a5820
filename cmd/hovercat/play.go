package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/redkatdev/hovercat/internal/audio"
	"github.com/redkatdev/hovercat/internal/config"
	"github.com/redkatdev/hovercat/internal/core"
	"github.com/redkatdev/hovercat/internal/game"
	"github.com/redkatdev/hovercat/internal/platform/tui"
	"github.com/redkatdev/hovercat/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagMute       bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a game session in the current terminal.

Controls:
  Space/Up/W - Flap
  P          - Pause
  M          - Toggle music
  Esc        - Quit prompt
  Q/Ctrl+C   - Quit
  Ctrl+S     - Save a screenshot

Difficulty options:
  easy   - Slower ramp, wider gaps
  normal - Default ramp
  hard   - Faster start, faster ramp, narrower gaps
  fixed  - No speed progression at all

Examples:
  hovercat play
  hovercat play --difficulty hard
  hovercat play --config ./my-hovercat.yaml
  hovercat play --seed 42 --mute`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable all audio")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameCfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if flagDifficulty != "" {
		config.ApplyPreset(&gameCfg, config.DifficultyPreset(flagDifficulty))
	}
	gameCfg.Normalize()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     seed,
	}

	// Open score storage; fall back to a plain-text file when the
	// database is unavailable so the high score still survives restarts.
	var highStore game.HighScoreStore
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
		highStore = storage.NewFileStore(fallbackHighScorePath())
	} else {
		highStore = store
	}

	var player game.AudioPlayer = game.NopAudio{}
	if !flagMute {
		engine, audioErr := audio.NewEngine()
		if audioErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: audio unavailable: %v\n", audioErr)
		} else {
			player = engine
		}
	}

	session := game.NewSession(gameCfg, seed, player, highStore)
	caps := game.Capabilities{Touch: true, WindowFocus: true}

	runErr := tui.Run(session, store, cfg, caps)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

func fallbackHighScorePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "highscore.txt"
	}
	return filepath.Join(home, ".hovercat", "highscore.txt")
}
