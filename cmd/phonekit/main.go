package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/davidleathers/phonekit"
	"github.com/davidleathers/phonekit/metadata"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// app holds what every subcommand needs once the root command has run its
// setup.
type app struct {
	cfg    *Config
	log    *zap.Logger
	engine *phonekit.Util
}

func newRootCmd() *cobra.Command {
	a := &app{}
	var configFile string

	root := &cobra.Command{
		Use:           "phonekit",
		Short:         "Parse, validate and format phone numbers",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configFile)
			if err != nil {
				return err
			}
			// Flags win over file and environment.
			if f := cmd.Flags().Lookup("metadata"); f != nil && f.Changed {
				cfg.MetadataPath, _ = cmd.Flags().GetString("metadata")
			}
			if f := cmd.Flags().Lookup("loglevel"); f != nil && f.Changed {
				cfg.LogLevel, _ = cmd.Flags().GetString("loglevel")
			}
			logger, err := setupLogger(cfg.LogLevel)
			if err != nil {
				return err
			}
			store, err := loadStore(cfg.MetadataPath)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.log = logger
			a.engine = phonekit.New(store, logger)
			return nil
		},
	}
	root.PersistentFlags().StringVar(&configFile, "config", "", "config file (YAML)")
	root.PersistentFlags().String("metadata", "", "path to the numbering plan JSON")
	root.PersistentFlags().String("loglevel", "", "log level (debug, info, warn, error)")

	root.AddCommand(newParseCmd(a))
	root.AddCommand(newFormatCmd(a))
	root.AddCommand(newValidateCmd(a))
	root.AddCommand(newExampleCmd(a))
	return root
}

func setupLogger(level string) (*zap.Logger, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	return cfg.Build()
}

func loadStore(path string) (*metadata.Store, error) {
	if path == "" {
		return nil, fmt.Errorf("no numbering plan metadata: set --metadata, PHONEKIT_METADATA or the config file")
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return metadata.FromJSON(f)
}

func newParseCmd(a *app) *cobra.Command {
	var region string
	var keepRaw bool
	cmd := &cobra.Command{
		Use:   "parse <number>",
		Short: "Parse a number and print its components",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			number, err := a.parseInput(args[0], region, keepRaw)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "country code:    %d\n", number.CountryCode)
			fmt.Fprintf(out, "national number: %s\n", number.NationalSignificantNumber())
			if number.Extension != "" {
				fmt.Fprintf(out, "extension:       %s\n", number.Extension)
			}
			if keepRaw {
				fmt.Fprintf(out, "raw input:       %s\n", number.RawInput)
			}
			fmt.Fprintf(out, "e164:            %s\n", a.engine.Format(number, phonekit.FormatE164))
			return nil
		},
	}
	cmd.Flags().StringVar(&region, "region", "", "region the number was dialled from")
	cmd.Flags().BoolVar(&keepRaw, "keep-raw", false, "keep the raw input on the parsed number")
	return cmd
}

func newFormatCmd(a *app) *cobra.Command {
	var region, style, from string
	cmd := &cobra.Command{
		Use:   "format <number>",
		Short: "Parse a number and print it in one format",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			number, err := a.parseInput(args[0], region, false)
			if err != nil {
				return err
			}
			if from != "" {
				fmt.Fprintln(cmd.OutOrStdout(), a.engine.FormatOutOfCountryCallingNumber(number, from))
				return nil
			}
			format, err := formatFromString(style)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), a.engine.Format(number, format))
			return nil
		},
	}
	cmd.Flags().StringVar(&region, "region", "", "region the number was dialled from")
	cmd.Flags().StringVar(&style, "style", "international", "e164, international, national or rfc3966")
	cmd.Flags().StringVar(&from, "from", "", "format for dialling from this region instead")
	return cmd
}

func newValidateCmd(a *app) *cobra.Command {
	var region string
	cmd := &cobra.Command{
		Use:   "validate <number>",
		Short: "Report possibility, validity and type of a number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			number, err := a.parseInput(args[0], region, false)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "possible: %v (%s)\n",
				a.engine.IsPossibleNumber(number), a.engine.IsPossibleNumberWithReason(number))
			fmt.Fprintf(out, "valid:    %v\n", a.engine.IsValidNumber(number))
			fmt.Fprintf(out, "type:     %s\n", a.engine.GetNumberType(number))
			fmt.Fprintf(out, "region:   %s\n", a.engine.GetRegionCodeForNumber(number))
			return nil
		},
	}
	cmd.Flags().StringVar(&region, "region", "", "region the number was dialled from")
	return cmd
}

func newExampleCmd(a *app) *cobra.Command {
	var typeName string
	cmd := &cobra.Command{
		Use:   "example <region|calling code>",
		Short: "Print an example number for a region or a non-geographic calling code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var number *phonekit.PhoneNumber
			var err error
			if countryCode, convErr := strconv.Atoi(args[0]); convErr == nil {
				number, err = a.engine.GetExampleNumberForNonGeoEntity(countryCode)
			} else {
				numberType, typeErr := typeFromString(typeName)
				if typeErr != nil {
					return typeErr
				}
				number, err = a.engine.GetExampleNumberForType(strings.ToUpper(args[0]), numberType)
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), a.engine.Format(number, phonekit.FormatInternational))
			return nil
		},
	}
	cmd.Flags().StringVar(&typeName, "type", "fixed-line", "number type for the example")
	return cmd
}

func (a *app) parseInput(input, region string, keepRaw bool) (*phonekit.PhoneNumber, error) {
	if region == "" {
		region = a.cfg.DefaultRegion
	}
	region = strings.ToUpper(region)
	if keepRaw {
		return a.engine.ParseAndKeepRawInput(input, region)
	}
	return a.engine.Parse(input, region)
}

func formatFromString(style string) (phonekit.PhoneNumberFormat, error) {
	switch strings.ToLower(style) {
	case "e164":
		return phonekit.FormatE164, nil
	case "international":
		return phonekit.FormatInternational, nil
	case "national":
		return phonekit.FormatNational, nil
	case "rfc3966":
		return phonekit.FormatRFC3966, nil
	default:
		return 0, fmt.Errorf("unknown format style %q", style)
	}
}

func typeFromString(name string) (phonekit.PhoneNumberType, error) {
	switch strings.ToLower(name) {
	case "fixed-line":
		return phonekit.TypeFixedLine, nil
	case "mobile":
		return phonekit.TypeMobile, nil
	case "fixed-line-or-mobile":
		return phonekit.TypeFixedLineOrMobile, nil
	case "toll-free":
		return phonekit.TypeTollFree, nil
	case "premium-rate":
		return phonekit.TypePremiumRate, nil
	case "shared-cost":
		return phonekit.TypeSharedCost, nil
	case "voip":
		return phonekit.TypeVoIP, nil
	case "personal":
		return phonekit.TypePersonalNumber, nil
	case "pager":
		return phonekit.TypePager, nil
	case "uan":
		return phonekit.TypeUAN, nil
	case "voicemail":
		return phonekit.TypeVoicemail, nil
	default:
		return phonekit.TypeUnknown, fmt.Errorf("unknown number type %q", name)
	}
}
