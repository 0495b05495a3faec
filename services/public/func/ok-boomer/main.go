package main

import (
	"fmt"
	"ok-boomer/internal/response"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/sirupsen/logrus"
)

const (
	SEVERITY    = "severity"
	MESSAGE     = "message"
	TIMESTAMP   = "timestamp"
	COMPONENT   = "component"
	SERVICENAME = "ok-boomer"
)

type EnvVars struct {
	logLevel logrus.Level
}

func getEnvironmentVariables() (envVars *EnvVars, err error) {
	logLevel := logrus.InfoLevel
	if value := os.Getenv("LOG_LEVEL"); value != "" {
		logLevel, err = logrus.ParseLevel(value)
		if err != nil {
			return nil, fmt.Errorf("LOG_LEVEL is invalid: %w", err)
		}
	}

	return &EnvVars{
		logLevel: logLevel,
	}, nil
}

func main() {
	logrus.SetFormatter(&logrus.JSONFormatter{
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime:  TIMESTAMP,
			logrus.FieldKeyLevel: SEVERITY,
			logrus.FieldKeyMsg:   MESSAGE,
		},
	})
	logger := logrus.WithField(COMPONENT, SERVICENAME)

	envVars, err := getEnvironmentVariables()
	if err != nil {
		logger.WithError(err).Error("Failed to get environment variables")
		panic(err)
	}
	logrus.SetLevel(envVars.logLevel)

	def, err := response.LoadDefinition()
	if err != nil {
		logger.WithError(err).Error("Failed to load response definition")
		panic(err)
	}

	handler := NewHandler(logger, response.NewBuilder(def))

	lambda.Start(handler.EventHandler)
}
