/*
Velociraptor - Dig Deeper
Copyright (C) 2019-2025 Rapid7 Inc.

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU Affero General Public License as published
by the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU Affero General Public License for more details.

You should have received a copy of the GNU Affero General Public License
along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/
package logging

import (
	"fmt"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

const max_memory_logs = 5000

var (
	memory_hook = &memoryHook{}
)

// Keeps the most recent log lines in memory. Tests use this to
// assert that recoverable conditions were reported.
type memoryHook struct {
	mu    sync.Mutex
	lines []string
}

func (self *memoryHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (self *memoryHook) Fire(entry *logrus.Entry) error {
	component, _ := entry.Data["component"].(string)
	line := fmt.Sprintf("[%s] %s: %s",
		strings.ToUpper(entry.Level.String()), component, entry.Message)

	self.mu.Lock()
	defer self.mu.Unlock()

	self.lines = append(self.lines, line)
	if len(self.lines) > max_memory_logs {
		self.lines = self.lines[len(self.lines)-max_memory_logs:]
	}
	return nil
}

func GetMemoryLogs() []string {
	memory_hook.mu.Lock()
	defer memory_hook.mu.Unlock()

	return append([]string{}, memory_hook.lines...)
}

func ClearMemoryLogs() {
	memory_hook.mu.Lock()
	defer memory_hook.mu.Unlock()

	memory_hook.lines = nil
}
