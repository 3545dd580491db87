/*
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Package config holds globally available configuration variables which
// are either set by defaults, read from a config file or set by command
// line options.
package config

import (
	"fmt"
	"log"
	"os"
	"reflect"
	"strings"

	"github.com/BurntSushi/toml"
)

// globally available config values.
var (
	// ConfFile holds the path to the used config file.
	ConfFile = "./engine.toml"

	// LogLevel is the general log level, can be overwritten by cmd line options or config file.
	LogLevel = 4 // logging.INFO

	// SearchLogLevel is the search trace log level.
	SearchLogLevel = 2 // logging.WARNING

	// Settings is the global configuration read in from file.
	Settings conf

	initialized = false
)

// LogLevels maps the human readable level names accepted on the command
// line to the integer levels used by github.com/op/go-logging.
var LogLevels = map[string]int{
	"critical": 0,
	"error":    1,
	"warning":  2,
	"notice":   3,
	"info":     4,
	"debug":    5,
}

type conf struct {
	Log    logConfiguration
	Search searchConfiguration
	Eval   evalConfiguration
}

type logConfiguration struct {
	LogPath string
}

func init() {
	Settings.Log.LogPath = "./logs"
}

func setupLogLvl() {}

// Setup reads the configuration file and sets defaults for anything not
// found in it. Idempotent: a second call is a no-op.
func Setup() {
	if initialized {
		return
	}
	if _, err := toml.DecodeFile(ConfFile, &Settings); err != nil {
		log.Println("Config file not found. Using defaults. (", err, ")")
	}
	setupLogLvl()
	setupSearch()
	setupEval()
	initialized = true
}

// String prints the current configuration settings and values using
// reflection, the same debug dump the teacher's config package produces.
func (settings *conf) String() string {
	var b strings.Builder
	b.WriteString("Search Config:\n")
	dumpStruct(&b, reflect.ValueOf(&settings.Search).Elem())
	b.WriteString("\nEvaluation Config:\n")
	dumpStruct(&b, reflect.ValueOf(&settings.Eval).Elem())
	return b.String()
}

func dumpStruct(b *strings.Builder, v reflect.Value) {
	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		f := v.Field(i)
		fmt.Fprintf(b, "%-2d: %-22s %-6s = %v\n", i, t.Field(i).Name, f.Type(), f.Interface())
	}
}

// ResolveFile resolves path relative to the current working directory,
// falling back to the raw path if the working directory can't be read.
func ResolveFile(path string) (string, error) {
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return path, err
	}
	return cwd + string(os.PathSeparator) + path, nil
}
