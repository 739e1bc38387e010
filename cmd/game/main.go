package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/tomz197/shootmoop/internal/config"
	"github.com/tomz197/shootmoop/internal/loop"
	"golang.org/x/term"
)

func main() {
	logOut := io.Discard
	if path := config.GetEnv("LOG_FILE", ""); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logOut = f
	}
	logger := config.NewLogger(logOut, "game")

	opts := loop.Options{
		Logger: logger,
		Seed:   int64(config.GetEnvInt("SHOOTMOOP_SEED", 0)),
	}
	if config.GetEnvBool("SHOOTMOOP_SOUND", false) {
		sounds, err := startSound()
		if err != nil {
			logger.Warn("sound disabled", "err", err)
		} else {
			opts.Sounds = sounds
		}
	}

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to enable raw mode: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	logger.Info("game started", "seed", opts.Seed)
	reader := bufio.NewReader(os.Stdin)
	if err := loop.Run(reader, os.Stdout, opts); err != nil {
		_ = term.Restore(fd, oldState)
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
	logger.Info("game ended")
}
