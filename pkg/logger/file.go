/*
Copyright 2025 Codenotary Inc. All rights reserved.

SPDX-License-Identifier: BUSL-1.1
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    https://mariadb.com/bsl11/

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package logger

import (
	"errors"
	"log"
	"os"
	"path/filepath"
)

// FileLogger ...
type FileLogger struct {
	Logger   *log.Logger
	LogLevel LogLevel
	out      *os.File
}

// NewFileLogger ...
func NewFileLogger(name string, file string) (logger Logger, out *os.File, err error) {
	return NewFileLoggerWithLevel(name, file, LogLevelFromEnvironment())
}

// NewFileLoggerWithLevel ...
func NewFileLoggerWithLevel(name string, file string, level LogLevel) (logger Logger, out *os.File, err error) {
	out, err = setup(file)
	if err != nil {
		return nil, nil, err
	}
	logger = &FileLogger{
		out:      out,
		Logger:   log.New(out, name, log.LstdFlags),
		LogLevel: level,
	}
	return logger, out, nil
}

func setup(file string) (out *os.File, err error) {
	if _, err = os.Stat(filepath.Dir(file)); os.IsNotExist(err) {
		if err = os.MkdirAll(filepath.Dir(file), os.FileMode(0755)); err != nil {
			return nil, errors.New("Unable to create log folder")
		}
	}
	out, err = os.OpenFile(file, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return nil, errors.New("Unable to create log file")
	}
	return out, nil
}

// Errorf ...
func (l *FileLogger) Errorf(f string, v ...interface{}) {
	if l.LogLevel <= LogError {
		l.Logger.Printf("ERROR: "+f, v...)
	}
}

// Warningf ...
func (l *FileLogger) Warningf(f string, v ...interface{}) {
	if l.LogLevel <= LogWarn {
		l.Logger.Printf("WARNING: "+f, v...)
	}
}

// Infof ...
func (l *FileLogger) Infof(f string, v ...interface{}) {
	if l.LogLevel <= LogInfo {
		l.Logger.Printf("INFO: "+f, v...)
	}
}

// Debugf ...
func (l *FileLogger) Debugf(f string, v ...interface{}) {
	if l.LogLevel <= LogDebug {
		l.Logger.Printf("DEBUG: "+f, v...)
	}
}

// CloneWithLevel shares the underlying file; only the original closes it.
func (l *FileLogger) CloneWithLevel(level LogLevel) Logger {
	return &FileLogger{
		Logger:   l.Logger,
		LogLevel: level,
	}
}

// Close the logger ...
func (l *FileLogger) Close() error {
	if l.out != nil {
		return l.out.Close()
	}
	return nil
}
