// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/driftview/main.go
// Summary: Terminal pager with momentum scrolling, elastic edges and fading scroll thumbs.
// Usage: driftview [-config path] [-watch] [-log path] FILE

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"golang.org/x/term"

	"github.com/framegrace/texeldrift/config"
	"github.com/framegrace/texeldrift/internal/viewer"
)

func main() {
	configPath := flag.String("config", "", "path to driftview.toml (default: user config dir)")
	watch := flag.Bool("watch", true, "reload the file and config when they change")
	logPath := flag.String("log", filepath.Join(os.TempDir(), "driftview.log"), "log file")
	initConfig := flag.Bool("init-config", false, "write the default config if none exists, then exit")
	dumpConfig := flag.Bool("dump-config", false, "print the effective config as TOML, then exit")
	flag.Parse()

	logFile, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.Fatalf("driftview: open log: %v", err)
	}
	defer logFile.Close()
	log.SetOutput(logFile)

	path := *configPath
	if path == "" {
		if path, err = config.DefaultPath(); err != nil {
			log.Printf("Config: Failed to resolve config path: %v", err)
		}
	}

	switch {
	case *initConfig:
		wrote, err := config.EnsureDefault(path)
		if err != nil {
			fatal(err)
		}
		if wrote {
			fmt.Println(path)
		}
		return
	case *dumpConfig:
		cfg, err := config.Load(path)
		if err != nil {
			fatal(err)
		}
		data, err := config.Encode(cfg)
		if err != nil {
			fatal(err)
		}
		os.Stdout.Write(data)
		return
	}

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: driftview [flags] FILE")
		flag.PrintDefaults()
		os.Exit(2)
	}
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fatal(fmt.Errorf("stdout is not a terminal"))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Println("Viewer: starting")
	if err := viewer.Run(ctx, viewer.Options{File: flag.Arg(0), ConfigPath: path, Watch: *watch}); err != nil {
		fatal(err)
	}
	log.Println("Viewer: stopped cleanly")
}

func fatal(err error) {
	log.Printf("driftview: %v", err)
	fmt.Fprintf(os.Stderr, "driftview: %v\n", err)
	os.Exit(1)
}
