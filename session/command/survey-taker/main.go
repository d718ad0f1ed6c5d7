package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
	"googlemaps.github.io/maps"

	"github.com/pariparajuli/geosurvey/external/audio"
	"github.com/pariparajuli/geosurvey/external/surveyapi"
	"github.com/pariparajuli/geosurvey/geo"
	"github.com/pariparajuli/geosurvey/schema"
	"github.com/pariparajuli/geosurvey/session"
	"github.com/pariparajuli/geosurvey/utils"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func initLog() {
	logLevel, err := log.ParseLevel(viper.GetString("log.level"))
	if err != nil {
		log.SetLevel(log.WarnLevel)
	} else {
		log.SetLevel(logLevel)
	}

	log.SetOutput(os.Stderr)

	log.SetFormatter(&prefixed.TextFormatter{
		ForceFormatting: true,
		FullTimestamp:   true,
	})
}

func loadConfig(file string) {
	viper.SetConfigType("yaml")
	if file != "" {
		viper.SetConfigFile(file)
	}

	viper.AddConfigPath(".")
	if err := viper.ReadInConfig(); err != nil {
		viper.AllowEmptyEnv(false)
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("geosurvey")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	viper.SetDefault("client.endpoint", "http://localhost:5000")
	viper.SetDefault("client.timeout", 15)
	viper.SetDefault("client.language", "en")
	viper.SetDefault("recording.dir", "./recordings")
}

func newRootCmd() *cobra.Command {
	var configFile string

	root := &cobra.Command{
		Use:           "survey-taker",
		Short:         "Take location aware surveys from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			loadConfig(configFile)
			initLog()
		},
	}
	root.PersistentFlags().StringVarP(&configFile, "config", "c", "", "path of configuration file")
	root.PersistentFlags().String("endpoint", "", "survey backend url")
	_ = viper.BindPFlag("client.endpoint", root.PersistentFlags().Lookup("endpoint"))

	root.AddCommand(newRegisterCmd())
	root.AddCommand(newListCmd())
	root.AddCommand(newTakeCmd())
	return root
}

func newClient() surveyapi.Client {
	return surveyapi.New(
		viper.GetString("client.endpoint"),
		time.Duration(viper.GetInt("client.timeout"))*time.Second)
}

func newRegisterCmd() *cobra.Command {
	var req surveyapi.RegisterRequest

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register a new user",
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := newClient().Register(context.Background(), req)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s (user id %d)\n", result.Message, result.UserID)
			return nil
		},
	}
	cmd.Flags().StringVar(&req.Username, "username", "", "username")
	cmd.Flags().StringVar(&req.Password, "password", "", "password")
	cmd.Flags().StringVar(&req.PhoneNumber, "phone", "", "phone number")
	return cmd
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available surveys",
		RunE: func(cmd *cobra.Command, _ []string) error {
			surveys, err := newClient().ListSurveys(context.Background())
			if err != nil {
				return err
			}
			if len(surveys) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no surveys")
				return nil
			}
			for _, s := range surveys {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%d questions\n", s.ID, s.Name, len(s.Questions))
			}
			return nil
		},
	}
}

func newTakeCmd() *cobra.Command {
	var username, password string
	var record bool

	cmd := &cobra.Command{
		Use:   "take <survey-id>",
		Short: "Answer a survey and submit it from the current location",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			surveyID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid survey id %q", args[0])
			}

			if err := sentry.Init(sentry.ClientOptions{
				Dsn:         viper.GetString("sentry.dsn"),
				Environment: viper.GetString("sentry.environment"),
			}); err != nil {
				log.WithError(err).Warn("init sentry")
			}
			defer sentry.Flush(2 * time.Second)

			ctx := context.Background()
			client := newClient()

			auth, err := client.Login(ctx, username, password)
			if err != nil {
				return err
			}
			client.SetToken(auth.Token)

			device, err := newAudioDevice()
			if err != nil {
				return err
			}

			c := session.NewController(
				client,
				newLocator(),
				session.NewRecorder(device, viper.GetString("recording.dir")),
				session.NewMessages(newLocalizer()),
				session.Config{
					Identity: schema.Identity{UserID: auth.UserID, Username: username},
				},
			)

			p := newPrompter(bufio.NewReader(cmd.InOrStdin()), cmd.OutOrStdout())
			return runSession(ctx, c, surveyID, record, p)
		},
	}
	cmd.Flags().StringVar(&username, "username", "", "username")
	cmd.Flags().StringVar(&password, "password", "", "password")
	cmd.Flags().BoolVar(&record, "record", false, "record audio while answering")
	return cmd
}

// newLocator prefers the Google Geolocation API and falls back to a
// configured position
func newLocator() geo.Locator {
	var locators []geo.Locator

	if key := viper.GetString("location.google_api_key"); key != "" {
		client, err := maps.NewClient(maps.WithAPIKey(key))
		if err != nil {
			log.WithError(err).Warn("create google maps client")
		} else {
			locators = append(locators, geo.NewGoogleLocator(client))
		}
	}

	if viper.IsSet("location.latitude") && viper.IsSet("location.longitude") {
		locators = append(locators, geo.NewStaticLocator(&schema.Location{
			Latitude:  viper.GetFloat64("location.latitude"),
			Longitude: viper.GetFloat64("location.longitude"),
		}))
	}

	return geo.NewMultipleLocator(locators...)
}

func newAudioDevice() (session.AudioDevice, error) {
	line := viper.GetString("recording.command")
	if line == "" {
		return nil, nil
	}

	d, err := audio.ParseCommand(line)
	if err != nil {
		return nil, err
	}
	return d, nil
}

func newLocalizer() *i18n.Localizer {
	if !viper.IsSet("i18n.dir") {
		return nil
	}
	utils.InitI18NBundle()
	return utils.NewLocalizer(viper.GetString("client.language"))
}
