package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/getsentry/sentry-go"
	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"

	"github.com/pariparajuli/geosurvey/api"
	"github.com/pariparajuli/geosurvey/external/geoinfo"
	"github.com/pariparajuli/geosurvey/store"
	"github.com/pariparajuli/geosurvey/utils"
)

var (
	server     *api.Server
	ormDB      *gorm.DB
	mongoStore store.MongoStore
)

func initLog() {
	logLevel, err := log.ParseLevel(viper.GetString("log.level"))
	if err != nil {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(logLevel)
	}

	log.SetOutput(os.Stdout)

	log.SetFormatter(&prefixed.TextFormatter{
		ForceFormatting: true,
		FullTimestamp:   true,
	})
}

func loadConfig(file string) {
	// Config from file
	viper.SetConfigType("yaml")
	if file != "" {
		viper.SetConfigFile(file)
	}

	viper.AddConfigPath("/.config/")
	viper.AddConfigPath(".")
	err := viper.ReadInConfig()
	if err != nil {
		fmt.Println("No config file. Read config from env.")
		viper.AllowEmptyEnv(false)
	}

	// Config from env if possible
	viper.AutomaticEnv()
	viper.SetEnvPrefix("geosurvey")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	viper.SetDefault("server.port", "5000")
	viper.SetDefault("jwt.expire", 24)
	viper.SetDefault("mongo.database", "geosurvey")
	viper.SetDefault("mongo.pool", 20)
	viper.SetDefault("i18n.dir", "./i18n")
}

func main() {
	var configFile string

	c := make(chan os.Signal, 2)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Info("Server is preparing to shutdown")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if server != nil {
			log.Info("Shutdown survey api server")
			if err := server.Shutdown(ctx); err != nil {
				log.Error("Server Shutdown:", err)
			}
		}

		if ormDB != nil {
			log.Info("Shutting down db store")
			if err := ormDB.Close(); err != nil {
				log.Error(err)
			}
		}

		if mongoStore != nil {
			mongoStore.Close()
		}

		sentry.Flush(2 * time.Second)
		os.Exit(1)
	}()

	flag.StringVar(&configFile, "c", "./config.yaml", "[optional] path of configuration file")
	flag.Parse()

	loadConfig(configFile)

	initLog()

	// Sentry
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              viper.GetString("sentry.dsn"),
		AttachStacktrace: true,
		Environment:      viper.GetString("sentry.environment"),
		Dist:             viper.GetString("sentry.dist"),
	}); err != nil {
		log.Error(err)
	}
	log.WithField("prefix", "init").Info("Initialized sentry")

	utils.InitI18NBundle()
	log.WithField("prefix", "init").Info("Loaded i18n bundle")

	jwtSecret := viper.GetString("jwt.secret")
	if jwtSecret == "" {
		log.Panic("jwt.secret is not set")
	}

	var err error
	ormDB, err = gorm.Open("postgres", viper.GetString("orm.conn"))
	if err != nil {
		log.Panic(err)
	}

	// initialise mongodb connections
	opts := options.Client().ApplyURI(viper.GetString("mongo.conn"))
	opts.SetMaxPoolSize(viper.GetUint64("mongo.pool"))
	mongoClient, err := mongo.NewClient(opts)
	if nil != err {
		log.Panicf("create mongo client with error: %s", err)
	}

	err = mongoClient.Connect(context.Background())
	if nil != err {
		log.Panicf("connect mongo database with error: %s", err)
	}
	mongoStore = store.NewMongoStore(mongoClient, viper.GetString("mongo.database"))

	var geoClient geoinfo.GeoInfo
	if key := viper.GetString("location.google_api_key"); key != "" {
		geoClient, err = geoinfo.New(key)
		if err != nil {
			log.Panic(err)
		}
		log.WithField("prefix", "init").Info("Initialized geo info client")
	}

	// Init http server
	server = api.NewServer(
		store.NewSurveyStore(ormDB),
		mongoStore,
		geoClient,
		[]byte(jwtSecret),
		time.Duration(viper.GetInt("jwt.expire"))*time.Hour)
	log.WithField("prefix", "init").Info("Initialized http server")

	log.Fatal(server.Run(":" + viper.GetString("server.port")))
}
