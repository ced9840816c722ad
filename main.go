package main

import (
	"changeflow/backup"
	"changeflow/bizerror"
	"changeflow/client/s3"
	"changeflow/event"
	"changeflow/infra/tracing"
	"changeflow/persistence"
	"changeflow/projectfile"
	"changeflow/report"
	"changeflow/security"
	"changeflow/servehttp"
	"changeflow/settings"
	"context"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	logrus.Infoln("service start")

	tracingCloser, err := tracing.Bootstrap()
	if err != nil {
		logrus.Warnf("tracing disabled: %v\n", err)
	} else {
		defer tracingCloser.Close()
	}

	dbConfig, err := persistence.ParseDatabaseConfigFromEnv()
	if err != nil {
		logrus.Warnf("settings persistence disabled: %v\n", err)
	} else {
		// create database (no conflict)
		if dbConfig.DriverType == "mysql" {
			if err := persistence.PrepareMysqlDatabase(dbConfig.DriverArgs); err != nil {
				logrus.Fatalf("failed to prepare database %v\n", err)
			}
		}

		// connect database
		ds := &persistence.DataSourceManager{DatabaseConfig: dbConfig}
		if err := ds.Start(); err != nil {
			logrus.Fatalf("database connection failed %v\n", err)
		}
		defer ds.Stop()

		// database migration (race condition)
		err = ds.GormDB(context.Background()).
			AutoMigrate(&persistence.StoredValue{}, &event.EventRecord{}).Error
		if err != nil {
			logrus.Fatalf("database migration failed %v\n", err)
		}

		persistence.ActiveDataSourceManager = ds
	}

	if os.Getenv("OSS_ENDPOINT") != "" {
		s3.Bootstrap()
	}

	settings.Bootstrap(context.Background())

	engine := gin.Default()
	engine.Use(bizerror.ErrorHandling(), tracing.TracingIngress())
	engine.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "changeflow")
	})

	servehttp.RegisterChangeOrderHandler(engine)
	settings.RegisterSettingsRestAPI(engine)
	projectfile.RegisterProjectFileRestAPI(engine)
	report.RegisterReportRestAPI(engine)
	backup.RegisterBackupRestAPI(engine)
	security.RegisterSessionsHandler(engine)

	err = engine.Run(":80")
	if err != nil {
		panic(err)
	}
}
