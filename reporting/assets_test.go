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
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"www.velocidex.com/golang/artifact_report/constants"
	"www.velocidex.com/golang/artifact_report/vtesting"
)

type AssetsTestSuite struct {
	ReportingTestSuite

	source fstest.MapFS
}

func (self *AssetsTestSuite) SetupTest() {
	self.ReportingTestSuite.SetupTest()

	self.source = fstest.MapFS{
		"logo.jpg":            {Data: []byte("JPEG")},
		"dashboard.css":       {Data: []byte("body {}")},
		"feather.min.js":      {Data: []byte("var feather = {};")},
		"dark-mode.css":       {Data: []byte(".dark {}")},
		"dark-mode-switch.js": {Data: []byte("// switch")},
		"chats.css":           {Data: []byte(".chat {}")},
		constants.VENDOR_UI_TOOLKIT_DIR + "/css/mdb.min.css": {
			Data: []byte(".mdb {}")},
		constants.VENDOR_UI_TOOLKIT_DIR + "/js/mdb.min.js": {
			Data: []byte("mdb()")},
	}
}

func (self *AssetsTestSuite) deployer() *AssetDeployer {
	return NewAssetDeployer(self.config_obj).WithSources(self.source)
}

func (self *AssetsTestSuite) TestDeploy() {
	dest := self.path("_elements")

	summary, err := self.deployer().Deploy(dest)
	require.NoError(self.T(), err)

	assert.Equal(self.T(), []string{
		"logo.jpg", "dashboard.css", "feather.min.js", "dark-mode.css",
		"dark-mode-switch.js", "chats.css", constants.VENDOR_UI_TOOLKIT_DIR,
	}, summary.Copied)
	assert.Empty(self.T(), summary.Skipped)
	assert.Empty(self.T(), summary.Failed)
	assert.Equal(self.T(), uint64(65), summary.Bytes)

	assert.Equal(self.T(), []string{
		"MDB-Free_4.13.0/",
		"MDB-Free_4.13.0/css/",
		"MDB-Free_4.13.0/css/mdb.min.css",
		"MDB-Free_4.13.0/js/",
		"MDB-Free_4.13.0/js/mdb.min.js",
		"chats.css",
		"dark-mode-switch.js",
		"dark-mode.css",
		"dashboard.css",
		"feather.min.js",
		"logo.jpg",
	}, vtesting.ListTree(self.T(), dest))

	assert.Equal(self.T(), "body {}",
		string(vtesting.ReadFile(self.T(), filepath.Join(dest, "dashboard.css"))))
}

func (self *AssetsTestSuite) TestDeployTwice() {
	dest := self.path("_elements")

	_, err := self.deployer().Deploy(dest)
	require.NoError(self.T(), err)

	// Local modifications to the vendor tree survive a second run,
	// plain files are refreshed.
	vtesting.WriteFile(self.T(), dest, "MDB-Free_4.13.0/css/mdb.min.css", "local")
	vtesting.WriteFile(self.T(), dest, "dashboard.css", "local")

	summary, err := self.deployer().Deploy(dest)
	require.NoError(self.T(), err)

	assert.Equal(self.T(), []string{constants.VENDOR_UI_TOOLKIT_DIR},
		summary.Skipped)
	assert.Equal(self.T(), 6, len(summary.Copied))
	assert.Empty(self.T(), summary.Failed)

	assert.Equal(self.T(), "local", string(vtesting.ReadFile(self.T(),
		filepath.Join(dest, "MDB-Free_4.13.0/css/mdb.min.css"))))
	assert.Equal(self.T(), "body {}", string(vtesting.ReadFile(self.T(),
		filepath.Join(dest, "dashboard.css"))))

	vtesting.MemoryLogsContain(self.T(), "already exists")
}

func (self *AssetsTestSuite) TestMissingEntries() {
	delete(self.source, "logo.jpg")
	delete(self.source, "chats.css")

	dest := self.path("_elements")
	summary, err := self.deployer().Deploy(dest)
	require.NoError(self.T(), err)

	assert.Equal(self.T(), []string{"logo.jpg", "chats.css"}, summary.Failed)
	assert.Equal(self.T(), 5, len(summary.Copied))
	assert.True(self.T(), vtesting.FileExists(filepath.Join(dest, "dashboard.css")))

	vtesting.MemoryLogsContain(self.T(), "logo.jpg not found in any asset source")
}

func (self *AssetsTestSuite) TestLayeredSources() {
	override := fstest.MapFS{
		"dashboard.css": {Data: []byte("override")},
		// A directory where a file is expected is not a match.
		"logo.jpg/readme.txt": {Data: []byte("")},
	}

	dest := self.path("_elements")
	summary, err := self.deployer().WithSources(override, self.source).
		Deploy(dest)
	require.NoError(self.T(), err)
	assert.Empty(self.T(), summary.Failed)

	assert.Equal(self.T(), "override", string(vtesting.ReadFile(self.T(),
		filepath.Join(dest, "dashboard.css"))))
	assert.Equal(self.T(), "JPEG", string(vtesting.ReadFile(self.T(),
		filepath.Join(dest, "logo.jpg"))))
}

func (self *AssetsTestSuite) TestDestinationNotCreatable() {
	blocker := self.writeFragment("blocker", "a file")

	_, err := self.deployer().Deploy(filepath.Join(blocker, "_elements"))
	assert.Error(self.T(), err)
}

func (self *AssetsTestSuite) TestConfiguredDirectory() {
	assets_dir := self.T().TempDir()
	require.NoError(self.T(), os.WriteFile(
		filepath.Join(assets_dir, "logo.jpg"), []byte("on disk"), 0644))
	self.config_obj.Assets.Directory = assets_dir

	dest := self.path("_elements")
	summary, err := NewAssetDeployer(self.config_obj).Deploy(dest)
	require.NoError(self.T(), err)

	assert.Equal(self.T(), "on disk", string(vtesting.ReadFile(self.T(),
		filepath.Join(dest, "logo.jpg"))))

	// The stylesheets come from the embedded bundle.
	assert.Contains(self.T(), summary.Copied, "dashboard.css")
	assert.Contains(self.T(), summary.Copied, "dark-mode-switch.js")
	assert.Contains(self.T(), summary.Failed, constants.VENDOR_UI_TOOLKIT_DIR)
}

func (self *AssetsTestSuite) TestSummaryToDict() {
	summary := &DeploySummary{
		Copied: []string{"a"},
		Bytes:  2048,
	}
	dict := summary.ToDict()

	size, _ := dict.GetString("Size")
	assert.Equal(self.T(), "2.0 kB", size)
	assert.Equal(self.T(), []string{"Copied", "Skipped", "Failed", "Size"},
		dict.Keys())
}

func TestAssets(t *testing.T) {
	suite.Run(t, &AssetsTestSuite{})
}
