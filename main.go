package main

import (
	"flag"

	"paybox/config"
	"paybox/internal"
	"paybox/metrics"
	"paybox/services"
)

func main() {

	logger := internal.NewLogger("internal", false, nil)

	configPath := flag.String("conf", "config.yml", "path to config file")
	flag.Parse()

	logger.Info("using config file: " + *configPath)
	conf, err := config.GetConfig(*configPath)
	if err != nil {
		logger.Error("boot", err)
		return
	}

	var mongo services.Database
	if conf.Mongo.Enabled {
		mongo, err = internal.NewMongoClient(conf)
		if err != nil {
			logger.Error("mongo client", err)
			return
		}
		logger.Info("mongo client initialized")
	}

	payments := internal.NewPayments(conf)
	payments.SetLogger(internal.NewLogger("payments", conf.IsDebug, mongo))
	payments.SetDatabase(mongo)

	if conf.Kafka.Enabled {
		producer, err := internal.NewProducer(conf)
		if err != nil {
			logger.Error("kafka producer", err)
			return
		}
		defer func() {
			_ = producer.Close()
		}()
		payments.SetPublisher(producer)
		logger.Info("kafka producer initialized")
	}

	go func() {
		if err := metrics.Listen(conf); err != nil {
			logger.Error("metrics server", err)
		}
	}()

	server := internal.NewServer(conf)
	server.SetLogger(internal.NewLogger("server", conf.IsDebug, mongo))
	server.SetPaymentsService(payments)

	err = server.Start()
	if err != nil {
		logger.Error("server start", err)
		return
	}

}
