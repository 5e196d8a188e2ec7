// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package common

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/blinklabs-io/arbitrary/corpus"
)

// Config holds settings that can come from a TOML file. Command line flags take
// precedence over the file.
type Config struct {
	Corpus  string `toml:"corpus"`
	Archive string `toml:"archive"`
	Format  string `toml:"format"`
	Workers int    `toml:"workers"`
	Bounded bool   `toml:"bounded"`
	Verify  bool   `toml:"verify"`
	Debug   bool   `toml:"debug"`
}

type GlobalFlags struct {
	Flagset    *flag.FlagSet
	ConfigFile string
	Config
	// Parsed from Config.Format
	ArchiveFormat corpus.Format
}

func NewGlobalFlags() *GlobalFlags {
	f := &GlobalFlags{
		Flagset: flag.NewFlagSet(os.Args[0], flag.ExitOnError),
	}
	f.Flagset.StringVar(
		&f.ConfigFile,
		"config",
		"",
		"path to TOML config file",
	)
	f.Flagset.StringVar(
		&f.Corpus,
		"corpus",
		"",
		"directory containing one corpus entry per file",
	)
	f.Flagset.StringVar(
		&f.Archive,
		"archive",
		"",
		"corpus archive file (overrides -corpus)",
	)
	f.Flagset.StringVar(
		&f.Format,
		"format",
		"auto",
		"corpus archive format (auto, cbor or msgpack)",
	)
	f.Flagset.IntVar(
		&f.Workers,
		"workers",
		0,
		"number of concurrent workers (defaults to GOMAXPROCS)",
	)
	f.Flagset.BoolVar(
		&f.Bounded,
		"bounded",
		false,
		"leave trailing bytes unused instead of giving them to the last value",
	)
	f.Flagset.BoolVar(&f.Verify, "verify", false, "check that every entry generates deterministically")
	f.Flagset.BoolVar(&f.Debug, "debug", false, "enable debug logging")
	return f
}

func (f *GlobalFlags) Parse() {
	if err := f.Flagset.Parse(os.Args[1:]); err != nil {
		fmt.Printf("failed to parse command args: %s\n", err)
		os.Exit(1)
	}
	if f.ConfigFile != "" {
		if err := f.loadConfig(); err != nil {
			fmt.Printf("failed to load config: %s\n", err)
			os.Exit(1)
		}
	}
	format, err := corpus.ParseFormat(f.Format)
	if err != nil {
		fmt.Printf("Invalid format specified: %s\n", f.Format)
		os.Exit(1)
	}
	f.ArchiveFormat = format
	if f.Corpus == "" && f.Archive == "" {
		fmt.Println("one of -corpus or -archive is required")
		os.Exit(1)
	}
}

// loadConfig fills any setting not given on the command line from the config file
func (f *GlobalFlags) loadConfig() error {
	var cfg Config
	if _, err := toml.DecodeFile(f.ConfigFile, &cfg); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("config file %s does not exist", f.ConfigFile)
		}
		return err
	}
	set := map[string]bool{}
	f.Flagset.Visit(func(fl *flag.Flag) {
		set[fl.Name] = true
	})
	if !set["corpus"] && cfg.Corpus != "" {
		f.Corpus = cfg.Corpus
	}
	if !set["archive"] && cfg.Archive != "" {
		f.Archive = cfg.Archive
	}
	if !set["format"] && cfg.Format != "" {
		f.Format = cfg.Format
	}
	if !set["workers"] && cfg.Workers != 0 {
		f.Workers = cfg.Workers
	}
	if !set["bounded"] {
		f.Bounded = cfg.Bounded
	}
	if !set["verify"] {
		f.Verify = cfg.Verify
	}
	if !set["debug"] {
		f.Debug = cfg.Debug
	}
	return nil
}

// Logger returns a text logger on stderr at the level selected by -debug
func (f *GlobalFlags) Logger() *slog.Logger {
	level := slog.LevelInfo
	if f.Debug {
		level = slog.LevelDebug
	}
	return slog.New(
		slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}),
	)
}

// LoadEntries reads the corpus selected by the flags
func (f *GlobalFlags) LoadEntries() ([]corpus.Entry, error) {
	if f.Archive != "" {
		file, err := os.Open(f.Archive)
		if err != nil {
			return nil, err
		}
		defer file.Close()
		return corpus.ReadArchive(file, f.ArchiveFormat)
	}
	return corpus.NewStore(f.Corpus).Load()
}
