// Copyright 2025 The Charsetd Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package conf

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
)

var (
	appPath     string
	appPathOnce sync.Once
)

// AppPath returns the absolute path of the application's binary.
func AppPath() string {
	appPathOnce.Do(func() {
		var err error
		appPath, err = exec.LookPath(os.Args[0])
		if err != nil {
			panic("look executable path: " + err.Error())
		}

		appPath, err = filepath.Abs(appPath)
		if err != nil {
			panic("get absolute executable path: " + err.Error())
		}

		appPath = strings.ReplaceAll(appPath, "\\", "/")
	})

	return appPath
}

var (
	workDir     string
	workDirOnce sync.Once
)

// WorkDir returns the absolute path of work directory. It reads the value of
// the environment variable CHARSETD_WORK_DIR when set. Otherwise, it uses the
// directory where the application's binary is located.
func WorkDir() string {
	workDirOnce.Do(func() {
		workDir = os.Getenv("CHARSETD_WORK_DIR")
		if workDir == "" {
			workDir = filepath.Dir(AppPath())
		}

		workDir = strings.ReplaceAll(workDir, "\\", "/")
	})

	return workDir
}
