// Copyright 2025 The Charsetd Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package conf

import (
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/ini.v1"
	log "unknwon.dev/clog/v2"
)

// Log settings
var Log struct {
	RootPath string
	Modes    []string
	Levels   []log.Level
}

var logLevels = map[string]log.Level{
	"trace": log.LevelTrace,
	"info":  log.LevelInfo,
	"warn":  log.LevelWarn,
	"error": log.LevelError,
	"fatal": log.LevelFatal,
}

// parseLogLevel maps a configured level name to its clog level, defaulting
// to trace for unrecognized names.
func parseLogLevel(name string) log.Level {
	level, ok := logLevels[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return log.LevelTrace
	}
	return level
}

// logModes parses the [log] MODE value into individual logger modes.
func logModes(file *ini.File) []string {
	modes := strings.Split(file.Section("log").Key("MODE").MustString("console"), ",")
	for i := range modes {
		modes[i] = strings.ToLower(strings.TrimSpace(modes[i]))
	}
	return modes
}

// InitLogging initializes the logging service of the application.
//
// Because a console logger is always created as the primary logger at init
// time, it is removed in case the user does not configure one here.
func InitLogging() {
	sec := File.Section("log")
	Log.RootPath = sec.Key("ROOT_PATH").MustString(filepath.Join(WorkDir(), "log"))
	Log.Modes = logModes(File)
	Log.Levels = make([]log.Level, 0, len(Log.Modes))

	hasConsole := false
	for _, mode := range Log.Modes {
		modeSec := File.Section("log." + mode)
		level := parseLogLevel(modeSec.Key("LEVEL").MustString("trace"))
		buffer := modeSec.Key("BUFFER_LEN").MustInt64(100)

		var err error
		switch mode {
		case log.DefaultConsoleName:
			hasConsole = true
			err = log.NewConsole(buffer, log.ConsoleConfig{
				Level: level,
			})

		case log.DefaultFileName:
			logPath := filepath.Join(Log.RootPath, "charsetd.log")
			err = os.MkdirAll(filepath.Dir(logPath), os.ModePerm)
			if err != nil {
				log.Fatal("Failed to create log directory %q: %v", filepath.Dir(logPath), err)
				return
			}
			err = log.NewFile(buffer, log.FileConfig{
				Level:    level,
				Filename: logPath,
				FileRotationConfig: log.FileRotationConfig{
					Rotate:  modeSec.Key("LOG_ROTATE").MustBool(true),
					Daily:   modeSec.Key("DAILY_ROTATE").MustBool(true),
					MaxDays: modeSec.Key("MAX_DAYS").MustInt64(7),
				},
			})

		default:
			continue
		}

		if err != nil {
			log.Fatal("Failed to init %s logger: %v", mode, err)
			return
		}
		Log.Levels = append(Log.Levels, level)
		log.Trace("Log mode: %s (%s)", mode, strings.ToLower(level.String()))
	}

	if !hasConsole {
		log.Remove(log.DefaultConsoleName)
	}

	log.Trace("Charsetd %s", App.Version)
}
