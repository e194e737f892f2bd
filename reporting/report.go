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

	"github.com/Velocidex/ordereddict"
	"www.velocidex.com/golang/artifact_report/config"
	"www.velocidex.com/golang/artifact_report/constants"
	"www.velocidex.com/golang/artifact_report/logging"
)

type ReportSummary struct {
	// Category name -> number of pages, in sidebar order.
	Categories *ordereddict.Dict

	Pages          []string
	NavMisses      int
	TemplateErrors int

	// Script logs which were not available for the index page.
	MissingAuxLogs int

	// Pages which replaced a page written earlier in the same run
	// because two categories hold artifacts of the same name.
	DuplicatePages int

	Assets *DeploySummary
}

// GenerateReport assembles the final report in root. All parsers must
// have finished writing their fragments before this is called.
//
// Only problems which leave us unable to produce a report are
// returned. Everything else is logged and the report is completed as
// well as possible.
func GenerateReport(
	config_obj *config.Config,
	root string,
	case_metadata *CaseMetadata) (*ReportSummary, error) {

	logger := logging.GetLogger(config_obj, &logging.ReportComponent)

	categories, err := CollectFragments(
		root, config_obj.Report.FragmentExtension)
	if err != nil {
		return nil, err
	}

	summary := &ReportSummary{
		Categories: ordereddict.NewDict(),
	}

	fragments := categories.Fragments()
	fragmentsCollected.Add(float64(len(fragments)))
	logger.Info("Report: found %d fragments in %d categories",
		len(fragments), categories.Len())

	nav := BuildNavigation(categories)

	compositor, err := NewPageCompositor(config_obj, root)
	if err != nil {
		return nil, err
	}

	// Page filename -> category which produced it.
	written := make(map[string]string)
	checkDuplicate := func(filename, category string) {
		previous, pres := written[filename]
		if pres {
			logger.Warn("Report: %v written more than once, %v overwrites the page from %v",
				filename, category, previous)
			summary.DuplicatePages++
		}
		written[filename] = category
	}

	for _, category := range categories.Items() {
		for _, fragment := range category.Fragments {
			variant := nav.ActiveVariant(config_obj, fragment.Filename)
			_, found := variant.Active()
			if !found {
				summary.NavMisses++
			}

			page, err := compositor.Process(fragment, variant)
			if err != nil {
				return nil, err
			}

			checkDuplicate(page.Filename, category.Name)
			summary.TemplateErrors += countTemplateErrors(page)
			summary.Pages = append(summary.Pages, page.Filename)
		}
		summary.Categories.Set(category.Name, len(category.Fragments))
	}

	index_composer, err := NewIndexComposer(config_obj, root)
	if err != nil {
		return nil, err
	}

	page, err := index_composer.Process(case_metadata, nav)
	if err != nil {
		return nil, err
	}
	checkDuplicate(page.Filename, constants.INDEX_PAGE)
	summary.TemplateErrors += countTemplateErrors(page)
	summary.MissingAuxLogs += countErrors(page, IsMissingAuxLog)
	summary.Pages = append(summary.Pages, page.Filename)

	summary.Assets, err = NewAssetDeployer(config_obj).Deploy(
		filepath.Join(root, constants.ELEMENTS_DIR))
	if err != nil {
		return nil, err
	}

	logger.Info("Report: wrote %d pages into %v", len(summary.Pages), root)
	return summary, nil
}

func countTemplateErrors(page *ReportPage) int {
	return countErrors(page, IsTemplateError)
}

func countErrors(page *ReportPage, matches func(err error) bool) int {
	count := 0
	for _, err := range page.Errors {
		if matches(err) {
			count++
		}
	}
	return count
}
