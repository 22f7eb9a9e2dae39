// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx is the logging ambient stack; cmd/ddcomp is its only caller.
// It mirrors gofem's inp/logging.go almost exactly: a single process-wide
// log file, opened once by the driver, with Err/ErrCond helpers that log
// and report whether the caller should stop.
package logx

import (
	"log"
	"os"

	"github.com/cpmech/gosl/io"
)

var logFile *os.File

// Init opens the log file "<dirout>/<fnamekey>.log" and connects the
// standard logger to it.
func Init(dirout, fnamekey string) (err error) {
	logFile, err = os.Create(io.Sf("%s/%s.log", dirout, fnamekey))
	if err != nil {
		return
	}
	log.SetOutput(logFile)
	return nil
}

// Flush closes the log file.
func Flush() {
	if logFile != nil {
		logFile.Close()
	}
}

// Err logs a non-nil error and reports whether the caller should stop.
func Err(err error, msg string) (stop bool) {
	if err != nil {
		log.Printf("ERROR: %s: %v", msg, err)
		return true
	}
	return false
}

// ErrCond logs when condition is true and reports whether the caller should
// stop. Used for both hard errors and, when the caller already knows the
// condition corresponds to a warning-level errs.Kind, for informational
// logging only (the caller decides whether to honor the returned bool).
func ErrCond(condition bool, msg string, args ...interface{}) (stop bool) {
	if condition {
		log.Printf("ERROR: "+msg, args...)
		return true
	}
	return false
}

// Warn logs an informational message without affecting control flow.
func Warn(msg string, args ...interface{}) {
	log.Printf("WARN: "+msg, args...)
}
