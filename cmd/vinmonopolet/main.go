package main

import (
	"context"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/vinmonopolet-cli/infrastructure/integrator/vinmonopolet/vinmonopoletclient"
	"github.com/vfg2006/vinmonopolet-cli/internal/cli"
	"github.com/vfg2006/vinmonopolet-cli/internal/config"
	"github.com/vfg2006/vinmonopolet-cli/pkg/log"
)

type exitCoder interface {
	ExitCode() int
}

func main() {
	// Até a configuração ser lida, só avisos e erros vão para o stderr
	if err := log.Configure("warn", os.Stderr); err != nil {
		logrus.Fatal(err)
	}

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	if err := log.Configure(cfg.App.LogLevel, os.Stderr); err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'warn'", cfg.App.LogLevel)
	}

	// Sem a chave de assinatura nenhuma requisição é possível
	if err := cfg.Validate(); err != nil {
		logrus.Fatal(err)
	}

	client, err := vinmonopoletclient.NewClient(cfg.Vinmonopolet)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := cli.Execute(context.Background(), client, os.Args[1:]); err != nil {
		msg := strings.Join(strings.Fields(err.Error()), " ")
		if msg == "" {
			msg = "error"
		}
		_, _ = os.Stderr.WriteString(msg + "\n")

		code := 1
		if ec, ok := err.(exitCoder); ok {
			if c := ec.ExitCode(); c != 0 {
				code = c
			}
		}
		os.Exit(code)
	}
}
