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
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
)

// SummaryToTable lists the categories of a finished report together
// with the number of pages generated for each. The caller renders it.
func SummaryToTable(summary *ReportSummary, out io.Writer) *tablewriter.Table {
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Category", "Pages"})
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)

	if summary.Categories != nil {
		for _, name := range summary.Categories.Keys() {
			count, _ := summary.Categories.Get(name)
			table.Append([]string{name, fmt.Sprintf("%v", count)})
		}
	}

	table.SetFooter([]string{"Total", fmt.Sprintf("%d", len(summary.Pages))})

	captions := []string{}
	if summary.Assets != nil {
		captions = append(captions, fmt.Sprintf(
			"Assets: %d copied, %d skipped, %d failed (%s)",
			len(summary.Assets.Copied), len(summary.Assets.Skipped),
			len(summary.Assets.Failed), humanize.Bytes(summary.Assets.Bytes)))
	}

	if summary.MissingAuxLogs > 0 {
		captions = append(captions, fmt.Sprintf(
			"Missing script logs: %d", summary.MissingAuxLogs))
	}

	if summary.DuplicatePages > 0 {
		captions = append(captions, fmt.Sprintf(
			"Overwritten pages: %d", summary.DuplicatePages))
	}

	if len(captions) > 0 {
		table.SetCaption(true, strings.Join(captions, ". "))
	}

	return table
}
