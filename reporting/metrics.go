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
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	fragmentsCollected = promauto.NewCounter(prometheus.CounterOpts{
		Name: "report_fragments_collected",
		Help: "Number of artifact fragments found in the report tree.",
	})

	pagesComposed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "report_pages_composed",
		Help: "Number of artifact pages written.",
	})

	navActiveMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "report_nav_active_misses",
		Help: "Pages rendered without an active sidebar entry.",
	})

	templateErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "report_template_errors",
		Help: "Pages composed from a shell missing some slots.",
	})

	assetCopyFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "report_asset_copy_failures",
		Help: "Shared asset entries which could not be deployed.",
	})
)

// WriteMetrics dumps the default registry in the textfile collector
// format. Report generation is a batch job so there is nothing to
// scrape.
func WriteMetrics(path string) error {
	err := prometheus.WriteToTextfile(path, prometheus.DefaultGatherer)
	if err != nil {
		return errors.WithStack(err)
	}
	return nil
}
