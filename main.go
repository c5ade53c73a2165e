package main

import (
	"os"
	"os/signal"
	"syscall"

	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/wthomasmiii/stripe-integration-ms/api"
	"github.com/wthomasmiii/stripe-integration-ms/db"
	"github.com/wthomasmiii/stripe-integration-ms/stripe"
	"go.vocdoni.io/dvote/log"
)

func main() {
	log.Init("debug", "stdout", nil)
	// define flags
	flag.StringP("host", "h", "0.0.0.0", "listen address")
	flag.IntP("port", "p", 8080, "listen port")
	flag.String("mongo-url", "", "The URL of the MongoDB server")
	flag.String("mongo-db", "stripe-integration", "The name of the MongoDB database")
	flag.String("stripe-secret-key", "", "Stripe API secret key")
	flag.String("stripe-public-key", "", "Stripe API publishable key")
	flag.String("stripe-webhook-secret", "", "Stripe webhook signing secret")
	// parse flags
	flag.Parse()
	// initialize Viper
	viper.SetEnvPrefix("STRIPEMS")
	if err := viper.BindPFlags(flag.CommandLine); err != nil {
		panic(err)
	}
	viper.AutomaticEnv()
	// read the configuration
	host := viper.GetString("host")
	port := viper.GetInt("port")
	mongoURL := viper.GetString("mongo-url")
	mongoDB := viper.GetString("mongo-db")
	stripeConfig := &stripe.Config{
		SecretKey:     viper.GetString("stripe-secret-key"),
		PublicKey:     viper.GetString("stripe-public-key"),
		WebhookSecret: viper.GetString("stripe-webhook-secret"),
	}
	if err := stripeConfig.Validate(); err != nil {
		log.Fatal(err)
	}
	// initialize the MongoDB database
	database, err := db.New(mongoURL, mongoDB)
	if err != nil {
		log.Fatalf("could not create the MongoDB database: %v", err)
	}
	defer database.Close()
	// create the Stripe client and the webhook service
	stripeClient := stripe.NewClient(stripeConfig)
	webhookService := stripe.NewService(stripeClient)
	// create the local API server
	api.New(&api.Config{
		Host:     host,
		Port:     port,
		DB:       database,
		Stripe:   stripeClient,
		Webhooks: webhookService,
	}).Start()
	// wait forever, as the server is running in a goroutine
	log.Infow("server started", "host", host, "port", port)
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c
}
