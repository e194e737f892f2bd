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
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/Velocidex/ordereddict"
	"github.com/alecthomas/kingpin/v2"
	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"www.velocidex.com/golang/artifact_report/json"
	"www.velocidex.com/golang/artifact_report/logging"
	"www.velocidex.com/golang/artifact_report/reporting"
	"www.velocidex.com/golang/artifact_report/utils"
)

const REPORT_ID_LABEL = "Report ID"

var (
	// Extraction types the parsers know how to read. Others are
	// accepted but flagged.
	extraction_types = []string{"fs", "tar", "zip", "gz", "itunes"}

	report_command = app.Command("report",
		"Assemble the report from the fragments in an output directory.")

	report_command_output_dir = report_command.Arg(
		"output_dir", "The directory the parsers wrote their fragments to.").
		Required().ExistingDir()

	report_command_source = report_command.Flag(
		"source", "The extraction location (image file or directory).").
		Required().String()

	report_command_type = report_command.Flag(
		"type", "The extraction type.").Default("fs").String()

	report_command_elapsed = report_command.Flag(
		"elapsed", "How long the extraction took (e.g. 1m30s).").
		Default("0s").Duration()

	report_command_case = report_command.Flag(
		"case", "Additional case information as KEY=VALUE. May be repeated.").
		Strings()

	report_command_zip = report_command.Flag(
		"zip", "Also export the finished report into this zip file.").
		String()

	report_command_metrics = report_command.Flag(
		"metrics_file", "Write report metrics in textfile format to this file.").
		String()

	report_command_format = report_command.Flag(
		"format", "How to print the summary.").
		Default("json").Enum("json", "table")
)

func doReport() {
	config_obj := load_config()
	logger := logging.GetLogger(config_obj, &logging.ToolComponent)
	start := time.Now()

	if !utils.InString(extraction_types, *report_command_type) {
		logger.Warn("Unknown extraction type %v", *report_command_type)
	}

	extra, err := parseCaseFields(*report_command_case)
	kingpin.FatalIfError(err, "Invalid case information")

	_, pres := extra.Get(REPORT_ID_LABEL)
	if !pres {
		extra.Set(REPORT_ID_LABEL, uuid.New().String())
	}

	case_metadata := reporting.NewCaseMetadata(
		*report_command_source, *report_command_type,
		*report_command_output_dir, *report_command_elapsed, extra)

	summary, err := reporting.GenerateReport(
		config_obj, *report_command_output_dir, case_metadata)
	kingpin.FatalIfError(err, "Generating report")

	result := ordereddict.NewDict().
		Set("Report", *report_command_output_dir).
		Set("Pages", len(summary.Pages)).
		Set("Categories", summary.Categories).
		Set("NavMisses", summary.NavMisses).
		Set("TemplateErrors", summary.TemplateErrors).
		Set("MissingAuxLogs", summary.MissingAuxLogs).
		Set("DuplicatePages", summary.DuplicatePages).
		Set("Assets", summary.Assets.ToDict())

	if *report_command_zip != "" {
		err = reporting.ExportReportToZip(
			*report_command_output_dir, *report_command_zip)
		kingpin.FatalIfError(err, "Exporting report")

		stat, err := os.Stat(*report_command_zip)
		kingpin.FatalIfError(err, "Exporting report")

		logger.Info("Exported report to %v (%s)", *report_command_zip,
			humanize.Bytes(uint64(stat.Size())))
		result.Set("Zip", *report_command_zip)
	}

	if *report_command_metrics != "" {
		err = reporting.WriteMetrics(*report_command_metrics)
		kingpin.FatalIfError(err, "Writing metrics")
	}

	result.Set("Duration", time.Since(start).Round(time.Millisecond))

	if *report_command_format == "table" {
		reporting.SummaryToTable(summary, os.Stdout).Render()
		return
	}

	serialized, err := json.MarshalIndent(result)
	kingpin.FatalIfError(err, "Encoding summary")

	fmt.Println(string(serialized))
}

func init() {
	command_handlers = append(command_handlers, func(command string) bool {
		switch command {
		case report_command.FullCommand():
			doReport()

		default:
			return false
		}
		return true
	})
}
