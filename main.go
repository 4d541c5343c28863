package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"datehound/extract"
	"datehound/locale"
	"datehound/log"
	"datehound/oops"
)

func main() {
	var monthFirst bool
	var separators []string
	var localeLists []string
	var localesPath string
	var presetYear, presetMonth, presetDay int

	rootCmd := &cobra.Command{ //nolint:exhaustruct
		Use:   "datehound [text...]",
		Short: "Extract a calendar date from free-form text",
		Args:  cobra.ArbitraryArgs,
		Run: func(_ *cobra.Command, args []string) {
			loc := locale.New()
			loc.SetDayFirst(!monthFirst)
			for _, separator := range separators {
				loc.AddSeparator(separator)
			}
			for _, list := range localeLists {
				if err := loc.AddMonthLocale(strings.Split(list, ",")); err != nil {
					log.Error().Err(err).Str("locale", list).Msg("Bad locale")
					os.Exit(1)
				}
			}
			if localesPath != "" {
				if err := addLocalesFromFile(loc, localesPath); err != nil {
					log.Error().Err(err).Str("path", localesPath).Msg("Bad locales file")
					os.Exit(1)
				}
			}

			var presets extract.DateFields
			if presetYear != 0 {
				presets.Year = presetYear
				presets.YearIsSet = true
			}
			if presetMonth != 0 {
				presets.Month = presetMonth
				presets.MonthIsSet = true
			}
			if presetDay != 0 {
				presets.Day = presetDay
				presets.DayIsSet = true
			}

			var maybeInput *string
			if len(args) > 0 {
				input := strings.Join(args, " ")
				maybeInput = &input
			}

			fields := extract.New(loc).ParseWithPresets(maybeInput, presets)

			output := fields.StructuredMap()
			output["complete"] = fields.IsComplete()
			if date, err := fields.CalendarDate(); err == nil {
				output["date"] = date.String()
			}
			outputJson, err := json.Marshal(output)
			if err != nil {
				panic(err)
			}
			fmt.Println(string(outputJson))
		},
	}

	flags := rootCmd.Flags()
	flags.BoolVar(&monthFirst, "month-first", false, "resolve ambiguous numeric dates month before day")
	flags.StringArrayVar(&separators, "separator", nil, "extra separator (repeatable)")
	flags.StringArrayVar(
		&localeLists, "locale", nil, "extra locale: 12 comma-separated month names, January first (repeatable)",
	)
	flags.StringVar(&localesPath, "locales-file", "", "YAML file with extra locales")
	flags.IntVar(&presetYear, "year", 0, "preset year")
	flags.IntVar(&presetMonth, "month", 0, "preset month")
	flags.IntVar(&presetDay, "day", 0, "preset day")

	if err := rootCmd.Execute(); err != nil {
		panic(err)
	}
}

type localesFile struct {
	Locales map[string][]string `yaml:"locales"`
}

func addLocalesFromFile(loc *locale.Locale, path string) error {
	contents, err := os.ReadFile(path)
	if err != nil {
		return oops.Wrap(err)
	}
	var file localesFile
	if err := yaml.Unmarshal(contents, &file); err != nil {
		return oops.Wrap(err)
	}
	for name, names := range file.Locales {
		if err := loc.AddMonthLocale(names); err != nil {
			return oops.Wrapf(err, "locale %q", name)
		}
	}
	return nil
}
