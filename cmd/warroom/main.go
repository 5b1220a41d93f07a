package main

import (
	_ "embed"
	"flag"
	"log"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/abelbrown/warroom/internal/complaint"
	"github.com/abelbrown/warroom/internal/config"
	"github.com/abelbrown/warroom/internal/enrich"
	"github.com/abelbrown/warroom/internal/logging"
	"github.com/abelbrown/warroom/internal/state"
	"github.com/abelbrown/warroom/internal/ui"
)

// Bundled dataset, used when no -data flag, WARROOM_DATA variable or
// config data_file points at a complaints file.
//
//go:embed complaints.json
var bundledDataset []byte

func main() {
	// Optional .env for WARROOM_* variables.
	_ = godotenv.Load()

	dataFlag := flag.String("data", "", "path to a complaints JSON file")
	compactFlag := flag.Bool("compact", false, "single-line complaint cards")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *dataFlag != "" {
		cfg.DataFile = *dataFlag
	}
	if *compactFlag {
		cfg.UI.CompactMode = true
	}

	dataDir := config.Dir()
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		log.Fatalf("Failed to create data directory: %v", err)
	}

	if err := logging.Init(dataDir); err != nil {
		log.Fatalf("Failed to init logging: %v", err)
	}
	defer logging.Close()

	st, err := state.Open(stateDBPath(dataDir))
	if err != nil {
		log.Fatalf("Failed to open state database: %v", err)
	}
	defer st.Close()

	pipeline := enrich.New()

	appCfg := ui.AppConfig{
		LoadDataset: func() tea.Cmd {
			return func() tea.Msg {
				ds, err := loadDataset(cfg.DataFile)
				if err != nil {
					logging.Error("dataset load failed", "path", cfg.DataFile, "err", err)
					return ui.DatasetLoaded{Err: err}
				}
				items := pipeline.Enrich(ds.Complaints)
				logging.Info("dataset loaded", "complaints", len(items))
				return ui.DatasetLoaded{Items: items, KeywordsIndex: ds.KeywordsIndex}
			}
		},
		LoadState: func() tea.Cmd {
			return func() tea.Msg {
				starred, err := st.Starred()
				if err != nil {
					return ui.StateLoaded{Err: err}
				}
				done, err := st.TutorialCompleted()
				return ui.StateLoaded{Starred: starred, TutorialDone: done, Err: err}
			}
		},
		SetStarred: func(id int, starred bool) tea.Cmd {
			return func() tea.Msg {
				return ui.StarSaved{ID: id, Err: st.SetStarred(id, starred)}
			}
		},
		SetTutorialDone: func() tea.Cmd {
			return func() tea.Msg {
				return ui.TutorialSaved{Err: st.SetTutorialCompleted(true)}
			}
		},
		CompactMode:  cfg.UI.CompactMode,
		KeywordLimit: cfg.UI.KeywordLimit,
		MinLoadTime:  time.Duration(cfg.UI.MinLoadMillis) * time.Millisecond,
	}

	app := ui.New(appCfg)
	program := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := program.Run(); err != nil {
		logging.Error("program exited with error", "err", err)
		log.Printf("Error running program: %v", err)
	}
}

// loadDataset prefers an explicit file over the bundled records.
func loadDataset(path string) (complaint.Dataset, error) {
	if path != "" {
		return complaint.LoadDataset(path)
	}
	return complaint.ParseDataset(bundledDataset), nil
}

func stateDBPath(dataDir string) string {
	return filepath.Join(dataDir, "warroom.db")
}
