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
package reporting

import (
	"path/filepath"

	"github.com/stretchr/testify/suite"
	"www.velocidex.com/golang/artifact_report/config"
	"www.velocidex.com/golang/artifact_report/logging"
	"www.velocidex.com/golang/artifact_report/vtesting"
)

// Shared setup for the suites in this package. Each test gets a fresh
// report root.
type ReportingTestSuite struct {
	suite.Suite

	config_obj *config.Config
	root       string
}

func (self *ReportingTestSuite) SetupTest() {
	root, err := filepath.EvalSymlinks(self.T().TempDir())
	if err != nil {
		self.T().Fatalf("EvalSymlinks: %v", err)
	}
	self.root = root

	self.config_obj = config.GetDefaultConfig()
	self.config_obj.Report.FragmentExtension = ".fraghtml"

	logging.SuppressLogging = true
	logging.Manager.Reset()
	logging.ClearMemoryLogs()
}

func (self *ReportingTestSuite) writeFragment(relative, body string) string {
	return vtesting.WriteFile(self.T(), self.root, relative, body)
}

func (self *ReportingTestSuite) path(relative string) string {
	return filepath.Join(self.root, filepath.FromSlash(relative))
}

// The three fragment tree used throughout the tests.
func (self *ReportingTestSuite) writeScenario() {
	self.writeFragment("Calendar/Events.fraghtml", "<p>Calendar events</p>")
	self.writeFragment("Accounts/Account Profile.fraghtml", "<p>Profiles</p>")
	self.writeFragment("Accounts/Account Auth.fraghtml", "<p>Auth tokens</p>")
}

func (self *ReportingTestSuite) writeScriptLogs() {
	self.writeFragment("Script Logs/DeviceInfo.html", "<p>iPhone 12 Pro</p>")
	self.writeFragment("Script Logs/Screen Output.html", "<p>Run started</p>")
	self.writeFragment("Script Logs/ProcessedFilesLog.html", "<p>sms.db</p>")
}
