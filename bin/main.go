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

	"github.com/alecthomas/kingpin/v2"
	"www.velocidex.com/golang/artifact_report/config"
	"www.velocidex.com/golang/artifact_report/json"
	"www.velocidex.com/golang/artifact_report/logging"
)

type CommandHandler func(command string) bool

var (
	app = kingpin.New("artifact_report",
		"Assembles parsed forensic artifacts into a browsable html report.")

	config_path = app.Flag("config", "The configuration file.").Short('c').
			Envar("ARTIFACT_REPORT_CONFIG").String()

	verbose_flag = app.Flag(
		"verbose", "Enable verbose logging.").Short('v').
		Default("false").Bool()

	logging_flag = app.Flag(
		"logfile", "Also write JSON logs to this file.").String()

	command_handlers []CommandHandler
)

func load_config() *config.Config {
	if *config_path != "" {
		Prelog("Loading config from %v", *config_path)
	}

	config_obj, err := config.LoadConfig(*config_path)
	kingpin.FatalIfError(err, "Unable to load config file")

	if *logging_flag != "" {
		config_obj.Logging.Filename = *logging_flag
	}

	// Initialize the logging now that we have loaded the config.
	err = logging.InitLogging(config_obj)
	kingpin.FatalIfError(err, "Logging")

	return config_obj
}

func Prelog(format string, v ...interface{}) {
	// Real logging is only available once the config is loaded. With
	// --logfile, problems loading it still end up in the log.
	if *logging_flag != "" {
		fd, err := os.OpenFile(*logging_flag,
			os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0600)
		if err == nil {
			// Write a JSONL log line
			_, _ = fd.Write([]byte(json.Format(
				`{"level":"prelog","msg":%q,"time":%q}`,
				fmt.Sprintf(format, v...), time.Now(),
			)))
			_, _ = fd.Write([]byte("\n"))
			fd.Close()
			return
		}
	}

	logging.Prelog(format, v...)
}

func main() {
	app.HelpFlag.Short('h')
	app.UsageTemplate(kingpin.CompactUsageTemplate).DefaultEnvars()

	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	if !*verbose_flag {
		logging.SuppressLogging = true
		logging.Manager.Reset()
	}

	for _, command_handler := range command_handlers {
		if command_handler(command) {
			break
		}
	}
}
