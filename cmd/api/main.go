package main

import (
	"context"
	"os"
	"path"
	"runtime"

	"github.com/orbicity/hotel-ops-api/infrastructure/integrator/rows"
	"github.com/orbicity/hotel-ops-api/infrastructure/integrator/rows/rowsclient"
	"github.com/orbicity/hotel-ops-api/internal/api"
	"github.com/orbicity/hotel-ops-api/internal/config"
	"github.com/orbicity/hotel-ops-api/internal/scheduler"
	"github.com/orbicity/hotel-ops-api/internal/usecases/authenticating"
	"github.com/orbicity/hotel-ops-api/internal/usecases/instagram"
	"github.com/orbicity/hotel-ops-api/pkg/log"
	"github.com/sirupsen/logrus"
)

func main() {
	chdirToSource()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel := log.Configure(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if _, ok := cfg.Rows.Source(); !ok {
		logrus.Warn("ROWS_API_KEY ou ROWS_INSTAGRAM_SOURCE ausentes, as rotas do Instagram vão servir dados sintéticos")
	}

	rowsClient := rowsclient.NewClient(cfg)
	resolver := rows.NewResolver(rowsClient, rows.NewResolutionCache(), rows.WithFlightTimeout(cfg.Rows.RequestTimeout))
	instagramService := instagram.NewService(cfg, rowsClient, resolver)

	authenticator := authenticating.NewService(cfg)

	sourceProbeService := scheduler.NewSourceProbeService(instagramService, cfg)
	if err := sourceProbeService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de verificação da origem do Instagram")
	} else {
		logrus.Info("Agendador de verificação da origem do Instagram iniciado com sucesso")
	}

	server, err := api.New(cfg, instagramService, authenticator, sourceProbeService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// chdirToSource aponta o diretório de trabalho para o do binário em execução
// local, para que o .env na raiz do repositório seja encontrado.
func chdirToSource() {
	_, file, _, _ := runtime.Caller(0)
	if err := os.Chdir(path.Dir(file)); err != nil {
		logrus.WithError(err).Debug("Não foi possível mudar o diretório de trabalho")
	}
}
