package launch

import (
	"errors"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"game-library/internal/library"
)

var ErrNotFound = errors.New("executable not found")

// Launcher starts games. Windows executables on other systems go through
// Runner (umu-run by default), optionally pinned to a Proton build. When
// GameID knows the Steam app of a game, umu gets it so protonfixes apply.
type Launcher struct {
	Runner string
	Proton string
	GOOS   string
	GameID func(library.Game) (int, bool)
}

func New(runner, proton string) *Launcher {
	return &Launcher{Runner: runner, Proton: proton, GOOS: runtime.GOOS}
}

func (l *Launcher) needsRunner(path string) bool {
	return l.GOOS != "windows" && strings.EqualFold(filepath.Ext(path), ".exe") && l.Runner != ""
}

// Command builds the process for g without starting it.
func (l *Launcher) Command(g library.Game) (*exec.Cmd, error) {
	info, err := os.Stat(g.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", g.Path, ErrNotFound)
		}
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory: %w", g.Path, ErrNotFound)
	}

	var cmd *exec.Cmd
	if l.needsRunner(g.Path) {
		cmd = exec.Command(l.Runner, g.Path)
	} else {
		cmd = exec.Command(g.Path)
	}
	cmd.Dir = filepath.Dir(g.Path)
	cmd.Env = os.Environ()

	if l.needsRunner(g.Path) && l.Proton != "" {
		protonPath := l.Proton
		if !filepath.IsAbs(protonPath) {
			home, _ := os.UserHomeDir()
			protonPath = filepath.Join(home, ".steam/steam/compatibilitytools.d", l.Proton)
		}
		cmd.Env = append(cmd.Env, "PROTONPATH="+protonPath)
	}
	if l.needsRunner(g.Path) && l.GameID != nil {
		if id, ok := l.GameID(g); ok {
			cmd.Env = append(cmd.Env, fmt.Sprintf("GAMEID=umu-%d", id), "STORE=steam")
		}
	}

	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd, nil
}

// Start launches g and returns without waiting for it to exit.
func (l *Launcher) Start(g library.Game) error {
	cmd, err := l.Command(g)
	if err != nil {
		return err
	}
	log.Println("Launching", g.Name)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start %s: %w", g.Name, err)
	}
	go func() {
		if err := cmd.Wait(); err != nil {
			log.Printf("%s exited: %v", g.Name, err)
		}
	}()
	return nil
}
