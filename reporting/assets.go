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
	"embed"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/Velocidex/ordereddict"
	"github.com/dustin/go-humanize"
	errors "github.com/go-errors/errors"
	"www.velocidex.com/golang/artifact_report/config"
	"www.velocidex.com/golang/artifact_report/constants"
	"www.velocidex.com/golang/artifact_report/logging"
	"www.velocidex.com/golang/artifact_report/utils"
)

//go:embed static
var static_fs embed.FS

type AssetEntry struct {
	Name  string
	IsDir bool
}

// Everything the pages reference under _elements/
var AssetManifest = []AssetEntry{
	{Name: "logo.jpg"},
	{Name: "dashboard.css"},
	{Name: "feather.min.js"},
	{Name: "dark-mode.css"},
	{Name: "dark-mode-switch.js"},
	{Name: "chats.css"},
	{Name: constants.VENDOR_UI_TOOLKIT_DIR, IsDir: true},
}

type DeploySummary struct {
	Copied  []string
	Skipped []string
	Failed  []string
	Bytes   uint64
}

func (self *DeploySummary) ToDict() *ordereddict.Dict {
	return ordereddict.NewDict().
		Set("Copied", self.Copied).
		Set("Skipped", self.Skipped).
		Set("Failed", self.Failed).
		Set("Size", humanize.Bytes(self.Bytes))
}

type AssetDeployer struct {
	config_obj *config.Config
	sources    []fs.FS
	manifest   []AssetEntry
}

// NewAssetDeployer searches the configured asset directory first and
// then the assets compiled into the binary.
func NewAssetDeployer(config_obj *config.Config) *AssetDeployer {
	sources := []fs.FS{}
	if config_obj != nil && config_obj.Assets != nil &&
		config_obj.Assets.Directory != "" {
		sources = append(sources, os.DirFS(config_obj.Assets.Directory))
	}

	embedded, err := fs.Sub(static_fs, "static")
	if err == nil {
		sources = append(sources, embedded)
	}

	return &AssetDeployer{
		config_obj: config_obj,
		sources:    sources,
		manifest:   AssetManifest,
	}
}

func (self *AssetDeployer) WithSources(sources ...fs.FS) *AssetDeployer {
	result := *self
	result.sources = sources
	return &result
}

func (self *AssetDeployer) WithManifest(manifest []AssetEntry) *AssetDeployer {
	result := *self
	result.manifest = manifest
	return &result
}

func (self *AssetDeployer) findSource(entry AssetEntry) (fs.FS, error) {
	for _, source := range self.sources {
		stat, err := fs.Stat(source, entry.Name)
		if err != nil {
			continue
		}

		if entry.IsDir && stat.IsDir() ||
			!entry.IsDir && stat.Mode().IsRegular() {
			return source, nil
		}
	}
	return nil, utils.NotFoundError
}

// Deploy copies the manifest into dest. Only failing to create dest is
// an error - every page depends on it. Problems with individual
// entries are logged and recorded in the summary.
func (self *AssetDeployer) Deploy(dest string) (*DeploySummary, error) {
	err := os.MkdirAll(dest, 0755)
	if err != nil {
		return nil, errors.Wrap(err, 0)
	}

	logger := logging.GetLogger(self.config_obj, &logging.ReportComponent)
	summary := &DeploySummary{}

	for _, entry := range self.manifest {
		target := filepath.Join(dest, entry.Name)

		source, err := self.findSource(entry)
		if err != nil {
			logger.Warn("Assets: %v not found in any asset source", entry.Name)
			summary.Failed = append(summary.Failed, entry.Name)
			assetCopyFailures.Inc()
			continue
		}

		var n int64
		if entry.IsDir {
			n, err = utils.CopyTreeFromFS(source, entry.Name, target)
			if errors.Is(err, utils.AlreadyExistsError) {
				logger.Info("Assets: %v already exists, probably "+
					"deployed earlier", target)
				summary.Skipped = append(summary.Skipped, entry.Name)
				continue
			}
		} else {
			n, err = utils.CopyFileFromFS(source, entry.Name, target, 0644)
		}

		if err != nil {
			logger.Warn("Assets: unable to copy %v: %v", entry.Name, err)
			summary.Failed = append(summary.Failed, entry.Name)
			assetCopyFailures.Inc()
			continue
		}

		summary.Copied = append(summary.Copied, entry.Name)
		summary.Bytes += uint64(n)
	}

	logger.Info("Assets: deployed %d entries (%s) into %v",
		len(summary.Copied), humanize.Bytes(summary.Bytes), dest)

	return summary, nil
}
