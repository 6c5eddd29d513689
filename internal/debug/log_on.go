// Licensed to the Apache Software Foundation (ASF) under one
// or more contributor license agreements.  See the NOTICE file
// distributed with this work for additional information
// regarding copyright ownership.  The ASF licenses this file
// to you under the Apache License, Version 2.0 (the
// "License"); you may not use this file except in compliance
// with the License.  You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

//go:build debug

package debug

import (
	"sync"

	"go.uber.org/zap"
)

var (
	logger     *zap.Logger
	loggerOnce sync.Once
)

func current() *zap.Logger {
	loggerOnce.Do(func() {
		if logger != nil {
			return
		}
		l, err := zap.NewDevelopment(zap.AddCallerSkip(1))
		if err != nil {
			l = zap.NewNop()
		}
		logger = l.Named("stl")
	})
	return logger
}

// SetLogger replaces the logger used by Log. It must be called before
// the first call to Log.
func SetLogger(l *zap.Logger) {
	logger = l
}

// Log writes msg at debug level.
//
// msg must be a string, func() string or fmt.Stringer.
func Log(msg interface{}, fields ...zap.Field) {
	current().Debug(getStringValue(msg), fields...)
}
